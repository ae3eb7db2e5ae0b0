package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/elijahgives/webhook-client/internal/config"
	"github.com/elijahgives/webhook-client/internal/logger"
	"github.com/elijahgives/webhook-client/webhook"
)

var opts struct {
	Config string `long:"config" env:"HOOK_CONFIG" description:"path to the webhook profile yaml"`

	Content     string   `long:"content" short:"c" description:"message content"`
	Title       string   `long:"title" description:"embed title"`
	Description string   `long:"description" description:"embed description"`
	URL         string   `long:"url" description:"embed url"`
	Colour      string   `long:"colour" description:"embed colour as hex, e.g. '#e74c3c'"`
	Fields      []string `long:"field" description:"embed field as name=value (repeatable)"`
	Image       string   `long:"image" description:"embed image url"`
	Thumbnail   string   `long:"thumbnail" description:"embed thumbnail url"`
	Footer      string   `long:"footer" description:"embed footer text"`
	Timestamp   bool     `long:"timestamp" description:"stamp the embed with the current time"`

	TTS      bool   `long:"tts" description:"request text-to-speech delivery"`
	ThreadID string `long:"thread-id" description:"route the message to a sub-thread"`
}

func main() {
	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(1)
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading profile: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.RequireWebhookURL(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel, cfg.PrettyLog)
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Error("send failed", logger.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, log logger.Logger) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	embed, err := buildEmbed()
	if err != nil {
		return err
	}
	if opts.Content == "" && embed == nil {
		return fmt.Errorf("nothing to send: provide --content or at least one embed flag")
	}

	clientOpts := []webhook.ClientOption{
		webhook.WithLogger(log.Zap()),
		webhook.WithTimeout(cfg.Timeout),
	}
	if cfg.Username != "" {
		clientOpts = append(clientOpts, webhook.WithUsername(cfg.Username))
	}
	if cfg.AvatarURL != "" {
		clientOpts = append(clientOpts, webhook.WithAvatarURL(cfg.AvatarURL))
	}
	if cfg.StrictLimits {
		clientOpts = append(clientOpts, webhook.WithStrictLimits())
	}

	client, err := webhook.NewClient(ctx, cfg.WebhookURL, clientOpts...)
	if err != nil {
		return err
	}

	msg := webhook.Message{
		Content:  opts.Content,
		TTS:      opts.TTS,
		ThreadID: opts.ThreadID,
	}
	if embed != nil {
		msg.Embeds = []*webhook.Embed{embed}
		log.Info("embed assembled",
			logger.String("title", embed.Title()),
			logger.Int("length", embed.Len()),
		)
	}

	if err := client.Send(ctx, msg); err != nil {
		return err
	}
	log.Info("message sent")
	return nil
}

// buildEmbed assembles an embed from the flags, or returns nil when no embed
// flag was given.
func buildEmbed() (*webhook.Embed, error) {
	embedOpts := webhook.EmbedOptions{
		Title:       opts.Title,
		Description: opts.Description,
		URL:         opts.URL,
	}

	hasEmbed := opts.Title != "" || opts.Description != "" || opts.URL != "" ||
		opts.Colour != "" || len(opts.Fields) > 0 || opts.Image != "" ||
		opts.Thumbnail != "" || opts.Footer != "" || opts.Timestamp
	if !hasEmbed {
		return nil, nil
	}

	if opts.Colour != "" {
		c, err := webhook.ParseColour(opts.Colour)
		if err != nil {
			return nil, err
		}
		embedOpts.Color = &c
	}
	if opts.Timestamp {
		embedOpts.Timestamp = time.Now()
	}

	embed := webhook.NewEmbed(embedOpts)
	for _, f := range opts.Fields {
		name, value, ok := strings.Cut(f, "=")
		if !ok {
			return nil, fmt.Errorf("field %q is not in name=value form", f)
		}
		embed.AddField(name, value)
	}
	if opts.Image != "" {
		embed.SetImage(opts.Image)
	}
	if opts.Thumbnail != "" {
		embed.SetThumbnail(opts.Thumbnail)
	}
	if opts.Footer != "" {
		embed.SetFooter(opts.Footer, "")
	}

	return embed, nil
}
