package webhook

import "errors"

var (
	// ErrColourRange is returned when a colour value does not fit in 24 bits.
	ErrColourRange = errors.New("colour value out of range")

	// ErrInvalidWebhook is returned when the webhook URL is malformed or the
	// endpoint fails the reachability probe.
	ErrInvalidWebhook = errors.New("invalid webhook")

	// ErrLimitExceeded is returned by Embed.Validate when an embed exceeds
	// one of the platform's published size limits.
	ErrLimitExceeded = errors.New("embed limit exceeded")

	// ErrRequiredField is returned by Embed.Validate when a sub-object is
	// present without its mandatory member (footer text, author name).
	ErrRequiredField = errors.New("required embed field missing")
)
