package tetris

import (
	"fmt"
	"strconv"
	"strings"
)

// State is a lifecycle stage of the game. Values are distinct bits so sets of states can be
// combined with |.
type State uint16

const (
	Intro State = 1 << iota
	StartQuery
	Play
	Paused
	Completing
	Slamming
	Settle
	Locking
	EndQuery
	Done
)

// Groups of states that share rendering and input behaviour.
const (
	// Menus covers the states in which the board is hidden.
	Menus = Intro | Paused | StartQuery
	// Falling covers the states with a live piece and a visible queue.
	Falling = Play | Slamming | Settle | Locking | Completing
	// Animating covers the states that run a Duration-long flash.
	Animating = Locking | Completing
	// Steerable covers the states in which the piece accepts moves.
	Steerable = Play | Settle
)

var stateNames = map[State]string{
	Intro:      "Intro",
	StartQuery: "StartQuery",
	Play:       "Play",
	Paused:     "Paused",
	Completing: "Completing",
	Slamming:   "Slamming",
	Settle:     "Settle",
	Locking:    "Locking",
	EndQuery:   "EndQuery",
	Done:       "Done",
}

// In reports whether s is one of the states in set.
func (s State) In(set State) bool {
	return s&set != 0
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	var parts []string
	for bit := Intro; bit <= Done; bit <<= 1 {
		if s&bit != 0 {
			parts = append(parts, stateNames[bit])
		}
	}
	if len(parts) == 0 || s >= Done<<1 {
		return "State(" + strconv.Itoa(int(s)) + ")"
	}
	return strings.Join(parts, "|")
}

// MarshalText renders the state name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a name produced by MarshalText, including combined sets.
func (s *State) UnmarshalText(text []byte) error {
	var out State
	for _, part := range strings.Split(string(text), "|") {
		found := false
		for bit, name := range stateNames {
			if name == part {
				out |= bit
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("unknown state %q", part)
		}
	}
	*s = out
	return nil
}
