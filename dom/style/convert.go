package style

import (
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// NamedColor looks up a CSS color keyword. 'transparent' is fully
// transparent black; 'currentcolor' is not a color in its own right and is
// not found here.
func NamedColor(name string) (color.RGBA, bool) {
	name = strings.ToLower(name)
	if name == "transparent" {
		return color.RGBA{}, true
	}
	c, ok := colornames.Map[name]
	return c, ok
}

// HexColor parses the hex notations #rgb, #rgba, #rrggbb and #rrggbbaa.
// The leading '#' is optional.
func HexColor(hex string) (color.RGBA, bool) {
	hex = strings.TrimPrefix(hex, "#")
	var digits [8]uint8
	for i := 0; i < len(hex); i++ {
		if i >= len(digits) {
			return color.RGBA{}, false
		}
		d, err := strconv.ParseUint(hex[i:i+1], 16, 8)
		if err != nil {
			return color.RGBA{}, false
		}
		digits[i] = uint8(d)
	}
	switch len(hex) {
	case 3, 4:
		c := color.RGBA{digits[0] * 17, digits[1] * 17, digits[2] * 17, 0xff}
		if len(hex) == 4 {
			c.A = digits[3] * 17
		}
		return c, true
	case 6, 8:
		c := color.RGBA{digits[0]<<4 | digits[1], digits[2]<<4 | digits[3], digits[4]<<4 | digits[5], 0xff}
		if len(hex) == 8 {
			c.A = digits[6]<<4 | digits[7]
		}
		return c, true
	}
	return color.RGBA{}, false
}

// ColorOf converts a value to a color. Color values convert trivially,
// keywords are looked up as named colors. Anything else, including
// 'currentcolor' and unresolved functions, yields nil.
func ColorOf(v Value) color.Color {
	v = v.Unwrap()
	switch v.Kind {
	case KindColor:
		return v.Color
	case KindKeyword:
		if c, ok := NamedColor(v.Text); ok {
			return c
		}
	}
	return nil
}

// ColorString returns a short, human readable name for a color, suitable for
// debugging output. Colors without an exact CSS name are printed in hex
// notation.
func ColorString(c color.Color) string {
	if c == nil {
		return "powderblue" // X11 color and CSS color
	}
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	for _, name := range colornames.Names {
		if colornames.Map[name] == rgba {
			return name
		}
	}
	return RGBA(rgba).String()
}
