package webhook

import (
	"fmt"
	"unicode/utf8"

	"go.uber.org/multierr"
)

// Platform limits for a single embed. The library does not enforce these by
// default; call Validate (or enable WithStrictLimits on the client) to opt
// in.
const (
	MaxFields         = 25
	MaxTitleLen       = 256
	MaxDescriptionLen = 4096
	MaxFieldNameLen   = 256
	MaxFieldValueLen  = 1024
	MaxFooterTextLen  = 2048
	MaxAuthorNameLen  = 256
	MaxTotalLen       = 6000
)

var knownTypes = map[string]bool{
	TypeRich:    true,
	TypeImage:   true,
	TypeVideo:   true,
	TypeGifv:    true,
	TypeArticle: true,
	TypeLink:    true,
}

// Validate checks the embed against the platform's published limits and the
// required members of present sub-objects. All violations are collected and
// returned together.
func (e *Embed) Validate() error {
	var errs error

	if e.typ != nil && !knownTypes[*e.typ] {
		errs = multierr.Append(errs, fmt.Errorf("%w: unknown embed type %q", ErrRequiredField, *e.typ))
	}
	if n := runeLen(e.title); n > MaxTitleLen {
		errs = multierr.Append(errs, lengthErr("title", n, MaxTitleLen))
	}
	if n := runeLen(e.description); n > MaxDescriptionLen {
		errs = multierr.Append(errs, lengthErr("description", n, MaxDescriptionLen))
	}

	if len(e.fields) > MaxFields {
		errs = multierr.Append(errs, fmt.Errorf("%w: %d fields, limit %d", ErrLimitExceeded, len(e.fields), MaxFields))
	}
	for i, f := range e.fields {
		name := docString(f, "name")
		value := docString(f, "value")
		if name == "" {
			errs = multierr.Append(errs, fmt.Errorf("%w: field %d has no name", ErrRequiredField, i))
		}
		if value == "" {
			errs = multierr.Append(errs, fmt.Errorf("%w: field %d has no value", ErrRequiredField, i))
		}
		if n := utf8.RuneCountInString(name); n > MaxFieldNameLen {
			errs = multierr.Append(errs, lengthErr(fmt.Sprintf("field %d name", i), n, MaxFieldNameLen))
		}
		if n := utf8.RuneCountInString(value); n > MaxFieldValueLen {
			errs = multierr.Append(errs, lengthErr(fmt.Sprintf("field %d value", i), n, MaxFieldValueLen))
		}
	}

	if e.footer != nil {
		text := docString(e.footer, "text")
		if text == "" {
			errs = multierr.Append(errs, fmt.Errorf("%w: footer has no text", ErrRequiredField))
		}
		if n := utf8.RuneCountInString(text); n > MaxFooterTextLen {
			errs = multierr.Append(errs, lengthErr("footer text", n, MaxFooterTextLen))
		}
	}

	if e.author != nil {
		name := docString(e.author, "name")
		if name == "" {
			errs = multierr.Append(errs, fmt.Errorf("%w: author has no name", ErrRequiredField))
		}
		if n := utf8.RuneCountInString(name); n > MaxAuthorNameLen {
			errs = multierr.Append(errs, lengthErr("author name", n, MaxAuthorNameLen))
		}
	}

	if n := e.Len(); n > MaxTotalLen {
		errs = multierr.Append(errs, lengthErr("embed", n, MaxTotalLen))
	}

	return errs
}

func lengthErr(what string, n, limit int) error {
	return fmt.Errorf("%w: %s is %d characters, limit %d", ErrLimitExceeded, what, n, limit)
}
