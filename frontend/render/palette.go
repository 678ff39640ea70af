package render

import "image/color"

// pieceColors fills locked tiles, indexed by piece.
var pieceColors = [...]color.NRGBA{
	{140, 90, 180, 255},
	{0, 115, 211, 255},
	{210, 165, 34, 255},
	{148, 173, 222, 255},
	{211, 115, 50, 255},
	{157, 27, 48, 255},
	{137, 158, 131, 255},
}

// highlightColors fill the live piece, the slam blur and the lock flash.
var highlightColors = [...]color.NRGBA{
	{160, 100, 200, 255},
	{50, 115, 255, 255},
	{220, 170, 40, 255},
	{185, 216, 255, 255},
	{220, 120, 50, 255},
	{196, 34, 60, 255},
	{171, 198, 164, 255},
}

var (
	gradientBottom = color.NRGBA{30, 64, 119, 255}
	gradientTop    = color.NRGBA{49, 106, 197, 229}
)

// backdrops change every two levels and stop at the last one.
var backdrops = [...]color.NRGBA{
	{214, 226, 196, 255},
	{196, 214, 230, 255},
	{60, 72, 96, 255},
	{32, 28, 40, 255},
}

var (
	outlineColor = color.NRGBA{0, 0, 0, 255}
	seamColor    = color.NRGBA{0, 0, 0, 96}
	white        = color.NRGBA{255, 255, 255, 255}
)

func backdropIndex(level int) int {
	return min(level/2, len(backdrops)-1)
}

// boardGradient is the backboard colour at the bottom edge. It cycles through the piece
// colours as the level rises.
func boardGradient(level int) color.NRGBA {
	i := (len(pieceColors) + level) % (len(pieceColors) + 1)
	if i == len(pieceColors) {
		return gradientBottom
	}
	return pieceColors[i]
}

func pieceColor(c uint8) color.NRGBA {
	return pieceColors[int(c)%len(pieceColors)]
}

func highlightColor(index int) color.NRGBA {
	return highlightColors[index%len(highlightColors)]
}

func withAlpha(c color.NRGBA, a float32) color.NRGBA {
	c.A = uint8(float32(c.A) * clamp(a))
	return c
}

func lerp(a, b color.NRGBA, t float32) color.NRGBA {
	t = clamp(t)
	mix := func(x, y uint8) uint8 {
		return uint8(float32(x) + (float32(y)-float32(x))*t + 0.5)
	}
	return color.NRGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}

func clamp(v float32) float32 {
	return min(max(v, 0), 1)
}
