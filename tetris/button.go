package tetris

import "strings"

//go:generate go tool stringer -type=Button -trimprefix=Button

// Button is a logical input. Drivers map physical keys onto buttons.
type Button int

const (
	ButtonAny Button = iota
	ButtonAccelerate
	ButtonSlam
	ButtonLeft
	ButtonRight
	ButtonRotate
	ButtonYes
	ButtonNo
	ButtonQuit
	ButtonPause
)

// Buttons lists every button in declaration order.
var Buttons = []Button{
	ButtonAny, ButtonAccelerate, ButtonSlam, ButtonLeft, ButtonRight,
	ButtonRotate, ButtonYes, ButtonNo, ButtonQuit, ButtonPause,
}

// ParseButton looks a button up by name, ignoring case.
func ParseButton(name string) (Button, bool) {
	for _, b := range Buttons {
		if strings.EqualFold(b.String(), name) {
			return b, true
		}
	}
	return 0, false
}
