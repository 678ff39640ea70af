package frontend

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/tetrita/frontend/input"
)

var keyNames = func() map[string]ebiten.Key {
	names := make(map[string]ebiten.Key, int(ebiten.KeyMax)+1)
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		names[strings.ToLower(k.String())] = k
	}
	return names
}()

// LookupKey resolves an ebiten key name, ignoring case.
func LookupKey(name string) (input.Key, bool) {
	k, ok := keyNames[strings.ToLower(name)]
	return input.Key(k), ok
}

func toInputKeys(dst []input.Key, keys []ebiten.Key) []input.Key {
	for _, k := range keys {
		dst = append(dst, input.Key(k))
	}
	return dst
}
