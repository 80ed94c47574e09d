package render

import "image/color"

var palette = map[string]color.RGBA{
	"black":  {R: 0, G: 0, B: 0, A: 255},
	"white":  {R: 255, G: 255, B: 255, A: 255},
	"red":    {R: 255, G: 0, B: 0, A: 255},
	"green":  {R: 0, G: 200, B: 0, A: 255},
	"blue":   {R: 64, G: 164, B: 223, A: 255},
	"yellow": {R: 255, G: 220, B: 0, A: 255},
	"gray":   {R: 160, G: 160, B: 170, A: 255},
}

// Color resolves a colour name. Unknown names fall back to white.
func Color(name string) color.RGBA {
	if c, ok := palette[name]; ok {
		return c
	}
	return palette["white"]
}

// rgba8 splits c into 8-bit channels.
func rgba8(c color.Color) (r, g, b, a uint8) {
	cr, cg, cb, ca := c.RGBA()
	return uint8(cr >> 8), uint8(cg >> 8), uint8(cb >> 8), uint8(ca >> 8)
}
