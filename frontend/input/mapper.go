package input

import (
	"time"

	"github.com/plus3/tetrita/tetris"
)

// Sink receives button events. *loop.Commands and *tetris.Game both satisfy it.
type Sink interface {
	Press(b tetris.Button)
	Release(b tetris.Button)
}

type heldKey struct {
	key    Key
	button tetris.Button
	wait   time.Duration
}

// Mapper converts key transitions into button events.
//
// Every key release also releases ButtonAny, which is what leaves the start screen. The
// yes and no buttons act on release only, since pressing them ends the game. Pause
// toggles on press. Held Left, Right and Rotate keys press their button again after the
// repeat delay and then once per repeat interval.
type Mapper struct {
	bindings *Bindings
	delay    time.Duration
	rate     time.Duration
	held     []heldKey
}

func NewMapper(b *Bindings, delay, rate time.Duration) *Mapper {
	return &Mapper{bindings: b, delay: delay, rate: rate}
}

func repeats(b tetris.Button) bool {
	return b == tetris.ButtonLeft || b == tetris.ButtonRight || b == tetris.ButtonRotate
}

// Update handles the keys that went down and up since the last call, dt ago, and sends
// the resulting events to sink. state is the game state the events will act on.
func (m *Mapper) Update(state tetris.State, dt time.Duration, pressed, released []Key, sink Sink) {
	m.repeat(dt, sink)

	for _, k := range pressed {
		b, ok := m.bindings.Button(k)
		if !ok {
			continue
		}
		switch b {
		case tetris.ButtonYes, tetris.ButtonNo:
		case tetris.ButtonPause:
			if state == tetris.Paused {
				sink.Release(tetris.ButtonPause)
			} else {
				sink.Press(tetris.ButtonPause)
			}
		default:
			sink.Press(b)
			if repeats(b) {
				m.hold(k, b)
			}
		}
	}

	for _, k := range released {
		sink.Release(tetris.ButtonAny)
		b, ok := m.bindings.Button(k)
		if !ok {
			continue
		}
		m.drop(k)
		switch b {
		case tetris.ButtonNo:
			if state == tetris.EndQuery {
				sink.Press(tetris.ButtonNo)
			}
		case tetris.ButtonPause:
		default:
			sink.Release(b)
		}
	}
}

// Reset forgets held keys, for example after the window lost focus.
func (m *Mapper) Reset() {
	m.held = m.held[:0]
}

// Held is the number of keys currently repeating.
func (m *Mapper) Held() int {
	return len(m.held)
}

func (m *Mapper) hold(k Key, b tetris.Button) {
	m.drop(k)
	m.held = append(m.held, heldKey{key: k, button: b, wait: m.delay})
}

func (m *Mapper) drop(k Key) {
	for i, h := range m.held {
		if h.key == k {
			m.held = append(m.held[:i], m.held[i+1:]...)
			return
		}
	}
}

func (m *Mapper) repeat(dt time.Duration, sink Sink) {
	if m.rate <= 0 {
		return
	}
	for i := range m.held {
		h := &m.held[i]
		h.wait -= dt
		for h.wait <= 0 {
			sink.Press(h.button)
			h.wait += m.rate
		}
	}
}
