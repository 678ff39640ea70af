package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/plus3/tetrita/tetris"
)

// Debug font metrics.
const (
	glyphWidth  = 6
	lineHeight  = 16
	textPadding = 4
)

const endDialog = "Do you want to play again?\n\n        Y / N"

var helpButtons = []struct {
	label  string
	button tetris.Button
}{
	{"Quit", tetris.ButtonQuit},
	{"Rotate", tetris.ButtonRotate},
	{"Left", tetris.ButtonLeft},
	{"Right", tetris.ButtonRight},
	{"Faster", tetris.ButtonAccelerate},
	{"Slam", tetris.ButtonSlam},
	{"Pause", tetris.ButtonPause},
}

// WelcomeText is the start screen: a greeting, one line per bound control and the prompt.
// Buttons without keys are left out.
func WelcomeText(keys map[tetris.Button][]string) string {
	var sb strings.Builder
	sb.WriteString("Welcome to Tetrita 1.0\n\n")
	for _, h := range helpButtons {
		names := keys[h.button]
		if len(names) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "%-8s%s\n", h.label+":", strings.Join(names, " or "))
	}
	sb.WriteString("\nPress any key to start.")
	return sb.String()
}

// ScoreText is shown beside the board while a game is on.
func ScoreText(s *tetris.Snapshot) string {
	return fmt.Sprintf("score: %d\nlevel: %d", s.Score, s.Level)
}

// textSize measures text in the debug font, in view pixels.
func textSize(text string) (w, h int) {
	lines := strings.Split(text, "\n")
	for _, line := range lines {
		w = max(w, runewidth.StringWidth(line))
	}
	return w * glyphWidth, len(lines) * lineHeight
}

// textBox is the padded box around text with its top left corner at (x, y).
func textBox(text string, x, y int) rect {
	w, h := textSize(text)
	return rect{
		X: float32(x),
		Y: float32(y),
		W: float32(w + 2*textPadding),
		H: float32(h + 2*textPadding),
	}
}
