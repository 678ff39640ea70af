package frontend

import (
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/tetrita/frontend/input"
	"github.com/plus3/tetrita/loop"
	"github.com/plus3/tetrita/tetris"
)

// InputSystem polls the keyboard and window focus and queues button events.
type InputSystem struct {
	Game   *tetris.Game
	Mapper *input.Mapper
	Log    *slog.Logger
	// Captured reports whether another consumer owns the keyboard this tick.
	Captured func() bool

	focused bool
	pressed []ebiten.Key
	release []ebiten.Key
	keysIn  []input.Key
	keysOut []input.Key
}

func (s *InputSystem) Execute(frame *loop.Frame) {
	state := s.Game.State()
	s.focus(frame, state)

	if s.Captured != nil && s.Captured() {
		return
	}

	s.pressed = inpututil.AppendJustPressedKeys(s.pressed[:0])
	s.release = inpututil.AppendJustReleasedKeys(s.release[:0])
	s.keysIn = toInputKeys(s.keysIn[:0], s.pressed)
	s.keysOut = toInputKeys(s.keysOut[:0], s.release)

	dt := time.Duration(frame.DeltaTime * float64(time.Second))
	s.Mapper.Update(state, dt, s.keysIn, s.keysOut, frame.Commands)
}

// focus pauses the game while the window is in the background.
func (s *InputSystem) focus(frame *loop.Frame, state tetris.State) {
	focused := ebiten.IsFocused()
	if focused == s.focused {
		return
	}
	s.focused = focused

	if !focused {
		s.Log.Debug("window lost focus")
		s.Mapper.Reset()
		frame.Commands.Press(tetris.ButtonPause)
		return
	}
	s.Log.Debug("window gained focus")
	if state == tetris.Paused {
		frame.Commands.Release(tetris.ButtonPause)
	}
}

// QuitSystem stops the frontend once the game is done.
type QuitSystem struct {
	Game *tetris.Game
	Done func()
}

func (s *QuitSystem) Execute(frame *loop.Frame) {
	if s.Game.State() == tetris.Done {
		frame.Commands.Defer(s.Done)
	}
}
