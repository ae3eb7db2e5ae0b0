package webhook

import (
	"errors"
	"testing"
)

func TestNewColourRange(t *testing.T) {
	tests := []struct {
		name    string
		value   uint32
		wantErr bool
	}{
		{"zero", 0, false},
		{"mid", 0x7FFFFF, false},
		{"max", 0xFFFFFF, false},
		{"one past max", 0x1000000, true},
		{"far past max", 0xFFFFFFFF, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewColour(tt.value)
			if tt.wantErr {
				if !errors.Is(err, ErrColourRange) {
					t.Fatalf("NewColour(%#x) error = %v, want ErrColourRange", tt.value, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewColour(%#x) unexpected error: %v", tt.value, err)
			}
			if c.Value() != tt.value {
				t.Errorf("Value() = %#x, want %#x", c.Value(), tt.value)
			}
		})
	}
}

func TestColourFromRGB(t *testing.T) {
	tests := []struct {
		r, g, b uint8
		want    uint32
	}{
		{0, 0, 0, 0x000000},
		{255, 255, 255, 0xFFFFFF},
		{0x12, 0x34, 0x56, 0x123456},
		{231, 76, 60, 0xE74C3C},
	}

	for _, tt := range tests {
		c := ColourFromRGB(tt.r, tt.g, tt.b)
		if c.Value() != tt.want {
			t.Errorf("ColourFromRGB(%d, %d, %d) = %#x, want %#x", tt.r, tt.g, tt.b, c.Value(), tt.want)
		}
		if c.R() != tt.r || c.G() != tt.g || c.B() != tt.b {
			t.Errorf("accessors (%d, %d, %d) do not invert composition of (%d, %d, %d)",
				c.R(), c.G(), c.B(), tt.r, tt.g, tt.b)
		}
	}
}

func TestParseColour(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    uint32
		wantErr bool
	}{
		{"hash prefix", "#e74c3c", 0xE74C3C, false},
		{"bare", "5865F2", 0x5865F2, false},
		{"0x prefix", "0x1abc9c", 0x1ABC9C, false},
		{"black", "#000000", 0, false},
		{"not hex", "zzz", 0, true},
		{"empty", "", 0, true},
		{"out of range", "#1000000", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseColour(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseColour(%q) expected error, got %#x", tt.in, c.Value())
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColour(%q) unexpected error: %v", tt.in, err)
			}
			if c.Value() != tt.want {
				t.Errorf("ParseColour(%q) = %#x, want %#x", tt.in, c.Value(), tt.want)
			}
		})
	}
}

func TestColourHex(t *testing.T) {
	if got := ColourRed.Hex(); got != "#e74c3c" {
		t.Errorf("ColourRed.Hex() = %q, want %q", got, "#e74c3c")
	}
	if got := ColourDefault.Hex(); got != "#000000" {
		t.Errorf("ColourDefault.Hex() = %q, want %q", got, "#000000")
	}
}

func TestColourPresets(t *testing.T) {
	if ColourBlurple.Value() != 0x5865F2 {
		t.Errorf("ColourBlurple = %#x, want 0x5865f2", ColourBlurple.Value())
	}
	if ColourDefault.Value() != 0 {
		t.Errorf("ColourDefault = %#x, want 0", ColourDefault.Value())
	}
}
