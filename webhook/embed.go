// Package webhook builds and delivers rich messages (text, embeds, buttons)
// to a Discord-style webhook endpoint.
package webhook

import (
	"fmt"
	"time"
	"unicode/utf8"
)

// Document is the generic key-value shape an embed travels in on the wire.
type Document = map[string]any

// Embed types understood by the platform.
const (
	TypeRich    = "rich"
	TypeImage   = "image"
	TypeVideo   = "video"
	TypeGifv    = "gifv"
	TypeArticle = "article"
	TypeLink    = "link"
)

// Embed is one structured message embed. Every field is independently
// optional; a field that was never set does not appear in the serialized
// document at all, which is distinct from a field set to an empty string.
//
// Nested sub-objects (footer, image, author, ...) are held in their wire
// shape. FromDocument copies them through without validating their internals;
// Validate offers opt-in strict checking.
type Embed struct {
	title       *string
	description *string
	url         *string
	typ         *string
	colour      *Colour
	timestamp   *time.Time

	footer    Document
	image     Document
	thumbnail Document
	video     Document
	provider  Document
	author    Document
	fields    []Document
}

// EmbedOptions configures NewEmbed. The zero value of each field means
// "absent": the corresponding key will not appear in the serialized document.
type EmbedOptions struct {
	Title       string
	Description string
	URL         string

	// Type defaults to TypeRich.
	Type string

	// Color is the primary spelling, Colour the legacy alias. When both are
	// supplied and non-empty, Color wins. A zero-valued colour counts as
	// empty for precedence purposes.
	Color  *Colour
	Colour *Colour

	// Timestamp is serialized as UTC RFC 3339. The zero value means no
	// timestamp.
	Timestamp time.Time
}

// NewEmbed builds an embed from opts.
func NewEmbed(opts EmbedOptions) *Embed {
	e := &Embed{}

	if opts.Title != "" {
		e.title = strPtr(opts.Title)
	}
	if opts.Description != "" {
		e.description = strPtr(opts.Description)
	}
	if opts.URL != "" {
		e.url = strPtr(opts.URL)
	}

	typ := opts.Type
	if typ == "" {
		typ = TypeRich
	}
	e.typ = strPtr(typ)

	e.colour = pickColour(opts.Color, opts.Colour)

	if !opts.Timestamp.IsZero() {
		ts := opts.Timestamp
		e.timestamp = &ts
	}

	return e
}

// pickColour resolves the dual-spelling colour option: the non-empty one
// wins, primary first.
func pickColour(primary, alias *Colour) *Colour {
	if primary != nil && primary.value != 0 {
		return primary
	}
	if alias != nil && alias.value != 0 {
		return alias
	}
	if primary != nil {
		return primary
	}
	return alias
}

// FromDocument builds an embed from a document in the platform's wire shape.
// Ingest is permissive: unknown keys are ignored, a malformed colour value is
// dropped without error, and nested sub-objects are copied through as-is.
// A timestamp that does not parse as RFC 3339 is likewise dropped.
func FromDocument(doc Document) *Embed {
	e := &Embed{
		title:       docText(doc, "title"),
		typ:         docText(doc, "type"),
		description: docText(doc, "description"),
		url:         docText(doc, "url"),
	}

	if raw, ok := doc["color"]; ok {
		if v, ok := docColourValue(raw); ok {
			if c, err := NewColour(v); err == nil {
				e.colour = &c
			}
		}
	}

	if raw, ok := doc["timestamp"].(string); ok {
		if ts, err := time.Parse(time.RFC3339Nano, raw); err == nil {
			e.timestamp = &ts
		}
	}

	e.footer = docObject(doc, "footer")
	e.image = docObject(doc, "image")
	e.thumbnail = docObject(doc, "thumbnail")
	e.video = docObject(doc, "video")
	e.provider = docObject(doc, "provider")
	e.author = docObject(doc, "author")
	e.fields = docObjectList(doc, "fields")

	return e
}

// ToDocument serializes the embed using the wire key names. Only fields that
// were explicitly set are emitted; the colour is additionally omitted when
// zero-valued. The timestamp is always converted to UTC.
func (e *Embed) ToDocument() Document {
	doc := Document{}

	if e.footer != nil {
		doc["footer"] = e.footer
	}
	if e.image != nil {
		doc["image"] = e.image
	}
	if e.thumbnail != nil {
		doc["thumbnail"] = e.thumbnail
	}
	if e.video != nil {
		doc["video"] = e.video
	}
	if e.provider != nil {
		doc["provider"] = e.provider
	}
	if e.author != nil {
		doc["author"] = e.author
	}
	if e.fields != nil {
		doc["fields"] = e.fields
	}
	if e.colour != nil && e.colour.value != 0 {
		doc["color"] = int(e.colour.value)
	}
	if e.timestamp != nil {
		doc["timestamp"] = e.timestamp.UTC().Format(time.RFC3339Nano)
	}
	if e.typ != nil {
		doc["type"] = *e.typ
	}
	if e.description != nil {
		doc["description"] = *e.description
	}
	if e.url != nil {
		doc["url"] = *e.url
	}
	if e.title != nil {
		doc["title"] = *e.title
	}

	return doc
}

// Copy returns an independent embed by round-tripping through the document
// form. Nested sub-objects are not deep-cloned beyond that conversion.
func (e *Embed) Copy() *Embed {
	return FromDocument(e.ToDocument())
}

// SetFooter sets the footer. Empty arguments are left out of the footer
// record; an entirely empty call still creates an empty footer rather than
// clearing it.
func (e *Embed) SetFooter(text, iconURL string) *Embed {
	footer := Document{}
	if text != "" {
		footer["text"] = text
	}
	if iconURL != "" {
		footer["icon_url"] = iconURL
	}
	e.footer = footer
	return e
}

// SetImage sets the image URL. An empty url removes the image entirely.
func (e *Embed) SetImage(url string) *Embed {
	if url == "" {
		e.image = nil
		return e
	}
	e.image = Document{"url": url}
	return e
}

// SetThumbnail sets the thumbnail URL. An empty url removes the thumbnail
// entirely.
func (e *Embed) SetThumbnail(url string) *Embed {
	if url == "" {
		e.thumbnail = nil
		return e
	}
	e.thumbnail = Document{"url": url}
	return e
}

// SetAuthor sets the author. The name is always stored; url and iconURL only
// when non-empty.
func (e *Embed) SetAuthor(name, url, iconURL string) *Embed {
	author := Document{"name": name}
	if url != "" {
		author["url"] = url
	}
	if iconURL != "" {
		author["icon_url"] = iconURL
	}
	e.author = author
	return e
}

// SetColour sets the embed colour.
func (e *Embed) SetColour(c Colour) *Embed {
	e.colour = &c
	return e
}

// SetTimestamp sets the embed timestamp.
func (e *Embed) SetTimestamp(t time.Time) *Embed {
	e.timestamp = &t
	return e
}

// AddField appends an inline field. Insertion order is preserved through
// serialization.
func (e *Embed) AddField(name, value string) *Embed {
	return e.appendField(name, value, true)
}

// AddBlockField appends a field rendered on its own row.
func (e *Embed) AddBlockField(name, value string) *Embed {
	return e.appendField(name, value, false)
}

func (e *Embed) appendField(name, value string, inline bool) *Embed {
	e.fields = append(e.fields, Document{
		"name":   name,
		"value":  value,
		"inline": inline,
	})
	return e
}

// Len returns the embed's character count: title, description, field names
// and values, footer text and author name. Counts are in runes, not bytes.
func (e *Embed) Len() int {
	total := runeLen(e.title) + runeLen(e.description)
	for _, f := range e.fields {
		total += utf8.RuneCountInString(docString(f, "name"))
		total += utf8.RuneCountInString(docString(f, "value"))
	}
	if e.footer != nil {
		total += utf8.RuneCountInString(docString(e.footer, "text"))
	}
	if e.author != nil {
		total += utf8.RuneCountInString(docString(e.author, "name"))
	}
	return total
}

// IsEmpty reports whether nothing displayable has been set. The type field
// alone does not make an embed non-empty, and neither does a zero-valued
// colour.
func (e *Embed) IsEmpty() bool {
	return !(strSet(e.title) ||
		strSet(e.url) ||
		strSet(e.description) ||
		(e.colour != nil && e.colour.value != 0) ||
		len(e.fields) > 0 ||
		e.timestamp != nil ||
		e.author != nil ||
		e.thumbnail != nil ||
		e.footer != nil ||
		e.image != nil ||
		e.provider != nil ||
		e.video != nil)
}

// Title returns the title, or "" when absent.
func (e *Embed) Title() string { return strOr(e.title) }

// Description returns the description, or "" when absent.
func (e *Embed) Description() string { return strOr(e.description) }

// URL returns the url, or "" when absent.
func (e *Embed) URL() string { return strOr(e.url) }

// Type returns the embed type, or "" when absent.
func (e *Embed) Type() string { return strOr(e.typ) }

// Colour returns the colour and whether one is set.
func (e *Embed) Colour() (Colour, bool) {
	if e.colour == nil {
		return Colour{}, false
	}
	return *e.colour, true
}

// Timestamp returns the timestamp and whether one is set.
func (e *Embed) Timestamp() (time.Time, bool) {
	if e.timestamp == nil {
		return time.Time{}, false
	}
	return *e.timestamp, true
}

// document helpers

// docText extracts a textual value. Scalars are stringified; null and
// structured values are treated as absent.
func docText(doc Document, key string) *string {
	v, ok := doc[key]
	if !ok || v == nil {
		return nil
	}
	switch t := v.(type) {
	case string:
		return &t
	case fmt.Stringer:
		return strPtr(t.String())
	case bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return strPtr(fmt.Sprint(t))
	}
	return nil
}

// docColourValue extracts a non-negative integral colour value from the
// numeric types a decoded document can carry.
func docColourValue(v any) (uint32, bool) {
	switch n := v.(type) {
	case int:
		if n >= 0 && n <= MaxColourValue {
			return uint32(n), true
		}
	case int64:
		if n >= 0 && n <= MaxColourValue {
			return uint32(n), true
		}
	case uint32:
		return n, n <= MaxColourValue
	case float64:
		if n >= 0 && n <= MaxColourValue && n == float64(int64(n)) {
			return uint32(n), true
		}
	}
	return 0, false
}

func docObject(doc Document, key string) Document {
	v, _ := doc[key].(Document)
	return v
}

func docObjectList(doc Document, key string) []Document {
	switch v := doc[key].(type) {
	case []Document:
		out := make([]Document, len(v))
		copy(out, v)
		return out
	case []any:
		var out []Document
		for _, item := range v {
			if m, ok := item.(Document); ok {
				out = append(out, m)
			}
		}
		return out
	}
	return nil
}

func docString(doc Document, key string) string {
	s, _ := doc[key].(string)
	return s
}

func strPtr(s string) *string { return &s }

func strOr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func strSet(s *string) bool { return s != nil && *s != "" }

func runeLen(s *string) int {
	if s == nil {
		return 0
	}
	return utf8.RuneCountInString(*s)
}
