package input_test

import (
	"testing"
	"time"

	"github.com/plus3/tetrita/config"
	"github.com/plus3/tetrita/frontend/input"
	"github.com/plus3/tetrita/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keyCodes = map[string]input.Key{
	"Left": 1, "Right": 2, "Up": 3, "Down": 4, "Space": 5,
	"Y": 6, "N": 7, "Q": 8, "P": 9, "Z": 10,
}

func lookup(name string) (input.Key, bool) {
	k, ok := keyCodes[name]
	return k, ok
}

type recorder struct {
	events []string
}

func (r *recorder) Press(b tetris.Button)   { r.events = append(r.events, "+"+b.String()) }
func (r *recorder) Release(b tetris.Button) { r.events = append(r.events, "-"+b.String()) }

func (r *recorder) take() []string {
	e := r.events
	r.events = nil
	return e
}

func testBindings(t *testing.T) *input.Bindings {
	t.Helper()
	b, err := input.NewBindings(map[tetris.Button][]string{
		tetris.ButtonLeft:       {"Left"},
		tetris.ButtonRight:      {"Right"},
		tetris.ButtonRotate:     {"Up"},
		tetris.ButtonAccelerate: {"Down"},
		tetris.ButtonSlam:       {"Space"},
		tetris.ButtonYes:        {"Y"},
		tetris.ButtonNo:         {"N"},
		tetris.ButtonQuit:       {"Q"},
		tetris.ButtonPause:      {"P"},
	}, lookup)
	require.NoError(t, err)
	return b
}

func keys(names ...string) []input.Key {
	out := make([]input.Key, len(names))
	for i, n := range names {
		out[i] = keyCodes[n]
	}
	return out
}

func TestBindings(t *testing.T) {
	b := testBindings(t)
	assert.Equal(t, 9, b.Len())
	assert.Equal(t, keys("Left", "Right", "Up", "Down", "Space", "Y", "N", "Q", "P"), b.Keys())

	button, ok := b.Button(keyCodes["Space"])
	assert.True(t, ok)
	assert.Equal(t, tetris.ButtonSlam, button)

	_, ok = b.Button(keyCodes["Z"])
	assert.False(t, ok)
}

func TestBindingsFirstButtonWins(t *testing.T) {
	b, err := input.NewBindings(map[tetris.Button][]string{
		tetris.ButtonQuit: {"Space"},
		tetris.ButtonSlam: {"Space"},
	}, lookup)
	require.NoError(t, err)

	button, _ := b.Button(keyCodes["Space"])
	assert.Equal(t, tetris.ButtonSlam, button)
	assert.Equal(t, 1, b.Len())
}

func TestBindingsUnknownKey(t *testing.T) {
	_, err := input.NewBindings(map[tetris.Button][]string{
		tetris.ButtonLeft: {"Left", "Hyper"},
	}, lookup)
	assert.ErrorIs(t, err, input.ErrUnknownKey)
	assert.ErrorContains(t, err, "Hyper")
}

func TestDefaultKeyNamesResolve(t *testing.T) {
	bound, err := config.Default().Bindings()
	require.NoError(t, err)

	var names []string
	b, err := input.NewBindings(bound, func(name string) (input.Key, bool) {
		names = append(names, name)
		return input.Key(len(names)), true
	})
	require.NoError(t, err)
	assert.Equal(t, len(names), b.Len())
}

func TestMapperPressAndRelease(t *testing.T) {
	m := input.NewMapper(testBindings(t), time.Second, time.Second)
	r := &recorder{}

	m.Update(tetris.Play, 0, keys("Left", "Down"), nil, r)
	assert.Equal(t, []string{"+Left", "+Accelerate"}, r.take())

	m.Update(tetris.Play, 0, nil, keys("Left"), r)
	assert.Equal(t, []string{"-Any", "-Left"}, r.take())
}

func TestMapperUnboundKeyReleasesAny(t *testing.T) {
	m := input.NewMapper(testBindings(t), time.Second, time.Second)
	r := &recorder{}

	m.Update(tetris.StartQuery, 0, keys("Z"), nil, r)
	assert.Empty(t, r.take())

	m.Update(tetris.StartQuery, 0, nil, keys("Z"), r)
	assert.Equal(t, []string{"-Any"}, r.take())
}

func TestMapperDialogKeys(t *testing.T) {
	m := input.NewMapper(testBindings(t), time.Second, time.Second)
	r := &recorder{}

	t.Run("yes acts on release", func(t *testing.T) {
		m.Update(tetris.EndQuery, 0, keys("Y"), nil, r)
		assert.Empty(t, r.take())
		m.Update(tetris.EndQuery, 0, nil, keys("Y"), r)
		assert.Equal(t, []string{"-Any", "-Yes"}, r.take())
	})

	t.Run("no only answers the end dialog", func(t *testing.T) {
		m.Update(tetris.Play, 0, keys("N"), keys("N"), r)
		assert.Equal(t, []string{"-Any"}, r.take())

		m.Update(tetris.EndQuery, 0, keys("N"), keys("N"), r)
		assert.Equal(t, []string{"-Any", "+No"}, r.take())
	})

	t.Run("quit acts on press", func(t *testing.T) {
		m.Update(tetris.Play, 0, keys("Q"), nil, r)
		assert.Equal(t, []string{"+Quit"}, r.take())
	})
}

func TestMapperPauseToggles(t *testing.T) {
	m := input.NewMapper(testBindings(t), time.Second, time.Second)
	r := &recorder{}

	m.Update(tetris.Play, 0, keys("P"), keys("P"), r)
	assert.Equal(t, []string{"+Pause", "-Any"}, r.take())

	m.Update(tetris.Paused, 0, keys("P"), nil, r)
	assert.Equal(t, []string{"-Pause"}, r.take())
}

func TestMapperRepeat(t *testing.T) {
	const (
		delay = 200 * time.Millisecond
		rate  = 50 * time.Millisecond
		tick  = 10 * time.Millisecond
	)
	m := input.NewMapper(testBindings(t), delay, rate)
	r := &recorder{}

	m.Update(tetris.Play, 0, keys("Right", "Down"), nil, r)
	assert.Equal(t, []string{"+Right", "+Accelerate"}, r.take())
	assert.Equal(t, 1, m.Held(), "only movement keys repeat")

	for range 19 {
		m.Update(tetris.Play, tick, nil, nil, r)
	}
	assert.Empty(t, r.take())

	m.Update(tetris.Play, tick, nil, nil, r)
	assert.Equal(t, []string{"+Right"}, r.take())

	for range 5 {
		m.Update(tetris.Play, tick, nil, nil, r)
	}
	assert.Equal(t, []string{"+Right"}, r.take())

	m.Update(tetris.Play, 2*rate, nil, nil, r)
	assert.Equal(t, []string{"+Right", "+Right"}, r.take())

	m.Update(tetris.Play, tick, nil, keys("Right"), r)
	assert.Equal(t, []string{"-Any", "-Right"}, r.take())
	assert.Zero(t, m.Held())

	m.Update(tetris.Play, time.Second, nil, nil, r)
	assert.Empty(t, r.take())
}

func TestMapperReset(t *testing.T) {
	m := input.NewMapper(testBindings(t), 0, time.Millisecond)
	r := &recorder{}

	m.Update(tetris.Play, 0, keys("Left", "Up"), nil, r)
	assert.Equal(t, 2, m.Held())

	m.Reset()
	r.take()
	m.Update(tetris.Play, time.Second, nil, nil, r)
	assert.Empty(t, r.take())
}

func TestMapperDrivesGame(t *testing.T) {
	g := tetris.New(tetris.WithSeed(5), tetris.WithStartState(tetris.StartQuery))
	m := input.NewMapper(testBindings(t), time.Second, time.Second)

	m.Update(g.State(), 0, keys("Z"), keys("Z"), g)
	require.Equal(t, tetris.Play, g.State())

	col := g.Snapshot().Current.Col
	m.Update(g.State(), 0, keys("Left"), keys("Left"), g)
	assert.Equal(t, col-1, g.Snapshot().Current.Col)

	m.Update(g.State(), 0, keys("P"), keys("P"), g)
	assert.Equal(t, tetris.Paused, g.State())
	m.Update(g.State(), 0, keys("P"), keys("P"), g)
	assert.Equal(t, tetris.Play, g.State())
}
