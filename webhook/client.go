package webhook

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const defaultTimeout = 10 * time.Second

// Client delivers messages to a single webhook endpoint.
type Client struct {
	url       string
	username  string
	avatarURL string
	strict    bool
	probe     bool
	timeout   time.Duration
	log       *zap.Logger
	http      *resty.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithUsername overrides the webhook's display name on every message.
func WithUsername(name string) ClientOption {
	return func(c *Client) { c.username = name }
}

// WithAvatarURL overrides the webhook's avatar on every message.
func WithAvatarURL(u string) ClientOption {
	return func(c *Client) { c.avatarURL = u }
}

// WithLogger attaches a logger. The default discards everything.
func WithLogger(log *zap.Logger) ClientOption {
	return func(c *Client) { c.log = log }
}

// WithTimeout sets the HTTP timeout for the probe and every send.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.timeout = d }
}

// WithStrictLimits validates every embed against the platform limits before
// sending.
func WithStrictLimits() ClientOption {
	return func(c *Client) { c.strict = true }
}

// WithoutProbe skips the endpoint reachability probe. Use for endpoints
// already known to be valid.
func WithoutProbe() ClientOption {
	return func(c *Client) { c.probe = false }
}

// NewClient validates webhookURL, applies opts and probes the endpoint once.
// A failed probe returns ErrInvalidWebhook.
func NewClient(ctx context.Context, webhookURL string, opts ...ClientOption) (*Client, error) {
	u, err := url.Parse(webhookURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q is not an http(s) URL", ErrInvalidWebhook, webhookURL)
	}

	c := &Client{
		url:     webhookURL,
		probe:   true,
		timeout: defaultTimeout,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.http = resty.New().SetTimeout(c.timeout)

	if c.probe {
		if err := c.checkWebhook(ctx); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// checkWebhook performs the one-time reachability probe. The platform
// answers GET on a valid webhook with 200; 204 covers plain sinks.
func (c *Client) checkWebhook(ctx context.Context) error {
	resp, err := c.http.R().SetContext(ctx).Get(c.url)
	if err != nil {
		return fmt.Errorf("%w: probing endpoint: %v", ErrInvalidWebhook, err)
	}
	if code := resp.StatusCode(); code != http.StatusOK && code != http.StatusNoContent {
		return fmt.Errorf("%w: endpoint answered %d to the probe", ErrInvalidWebhook, code)
	}
	c.log.Debug("webhook probe succeeded", zap.Int("status", resp.StatusCode()))
	return nil
}

// Message is one outgoing webhook post.
type Message struct {
	Content string
	Embeds  []*Embed

	// Buttons are rendered as a single action row under the message.
	Buttons []Button

	// TTS requests text-to-speech delivery.
	TTS bool

	// ThreadID routes the message to a sub-thread when set.
	ThreadID string
}

// Send assembles the envelope around msg and posts it. With strict limits
// enabled, every embed is validated first and nothing is sent on violation.
func (c *Client) Send(ctx context.Context, msg Message) error {
	if c.strict {
		for i, e := range msg.Embeds {
			if err := e.Validate(); err != nil {
				return fmt.Errorf("embed %d: %w", i, err)
			}
		}
	}

	req := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(c.buildPayload(msg))
	if msg.ThreadID != "" {
		req.SetQueryParam("thread_id", msg.ThreadID)
	}

	resp, err := req.Post(c.url)
	if err != nil {
		return fmt.Errorf("posting webhook: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("webhook endpoint answered %d: %s", resp.StatusCode(), resp.String())
	}

	c.log.Info("webhook delivered",
		zap.Int("status", resp.StatusCode()),
		zap.Int("embeds", len(msg.Embeds)),
	)
	return nil
}

// buildPayload produces the outer envelope around the embed documents.
func (c *Client) buildPayload(msg Message) Document {
	embeds := make([]Document, 0, len(msg.Embeds))
	for _, e := range msg.Embeds {
		embeds = append(embeds, e.ToDocument())
	}

	payload := Document{
		"content": msg.Content,
		"embeds":  embeds,
		"tts":     msg.TTS,
	}
	if c.username != "" {
		payload["username"] = c.username
	}
	if c.avatarURL != "" {
		payload["avatar_url"] = c.avatarURL
	}
	if len(msg.Buttons) > 0 {
		payload["components"] = []Document{actionRow(msg.Buttons)}
	}
	return payload
}
