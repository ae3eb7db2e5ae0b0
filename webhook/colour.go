package webhook

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxColourValue is the largest encodable colour value (white).
const MaxColourValue = 0xFFFFFF

// Colour is an immutable 24-bit RGB colour. The zero value is the platform's
// default colour and is treated as "no colour" when an embed is serialized.
type Colour struct {
	value uint32
}

// Color is an alias for Colour matching the wire spelling.
type Color = Colour

// NewColour validates value and wraps it in a Colour.
func NewColour(value uint32) (Colour, error) {
	if value > MaxColourValue {
		return Colour{}, fmt.Errorf("%w: %#x", ErrColourRange, value)
	}
	return Colour{value: value}, nil
}

// ColourFromRGB composes a colour from its channels.
func ColourFromRGB(r, g, b uint8) Colour {
	return Colour{value: uint32(r)<<16 | uint32(g)<<8 | uint32(b)}
}

// ParseColour parses a hex colour string such as "#e74c3c", "e74c3c" or
// "0xe74c3c".
func ParseColour(s string) (Colour, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(s, "#"), "0x")
	v, err := strconv.ParseUint(trimmed, 16, 32)
	if err != nil {
		return Colour{}, fmt.Errorf("parsing colour %q: %w", s, err)
	}
	return NewColour(uint32(v))
}

// Value returns the packed 24-bit value.
func (c Colour) Value() uint32 { return c.value }

// R returns the red channel.
func (c Colour) R() uint8 { return uint8(c.value >> 16 & 0xFF) }

// G returns the green channel.
func (c Colour) G() uint8 { return uint8(c.value >> 8 & 0xFF) }

// B returns the blue channel.
func (c Colour) B() uint8 { return uint8(c.value & 0xFF) }

// Hex returns the colour in "#rrggbb" form.
func (c Colour) Hex() string { return fmt.Sprintf("#%06x", c.value) }

// Preset colours in the tradition of the platform's client libraries.
var (
	ColourDefault = Colour{value: 0x000000}
	ColourTeal    = Colour{value: 0x1ABC9C}
	ColourGreen   = Colour{value: 0x2ECC71}
	ColourBlue    = Colour{value: 0x3498DB}
	ColourPurple  = Colour{value: 0x9B59B6}
	ColourGold    = Colour{value: 0xF1C40F}
	ColourOrange  = Colour{value: 0xE67E22}
	ColourRed     = Colour{value: 0xE74C3C}
	ColourBlurple = Colour{value: 0x5865F2}
	ColourGreyple = Colour{value: 0x99AAB5}
)
