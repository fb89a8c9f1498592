package utils

import (
	"image/color"
	"log"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseHexColor parses "#rrggbb" or "#rgb" into an opaque NRGBA color.
// Invalid input logs a warning and returns fallback.
func ParseHexColor(s string, fallback color.NRGBA) color.NRGBA {
	c, err := parseHex(s)
	if err != nil {
		log.Printf("[Utils] 警告：无效颜色 %q，使用默认值: %v", s, err)
		return fallback
	}
	return ToNRGBA(c)
}

// ValidHexColor reports whether s parses as a hex color.
func ValidHexColor(s string) bool {
	_, err := parseHex(s)
	return err == nil
}

func parseHex(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	return colorful.Hex(s)
}

// ToNRGBA converts a colorful color to an opaque NRGBA.
func ToNRGBA(c colorful.Color) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// HexString formats c as "#rrggbb" (alpha dropped).
func HexString(c color.NRGBA) string {
	cc := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	return cc.Hex()
}

// BlendColors blends from toward to in Lab space at t ∈ [0, 1].
func BlendColors(from, to color.NRGBA, t float64) color.NRGBA {
	a, _ := colorful.MakeColor(opaque(from))
	b, _ := colorful.MakeColor(opaque(to))
	out := ToNRGBA(a.BlendLab(b, Clamp01(t)))
	out.A = uint8(Lerp(float64(from.A), float64(to.A), Clamp01(t)) + 0.5)
	return out
}

// WithAlpha returns c with alpha scaled by a ∈ [0, 1].
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(float64(c.A)*Clamp01(a) + 0.5)
	return c
}

func opaque(c color.NRGBA) color.NRGBA {
	c.A = 255
	return c
}
