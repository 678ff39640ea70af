// Package input turns key transitions into game button events: the binding table, the
// yes/no dialog keys, pause toggling and key repeat for held movement keys.
package input

import (
	"errors"
	"fmt"
	"slices"

	"github.com/kamstrup/intmap"
	"github.com/plus3/tetrita/tetris"
)

// Key is a frontend key code.
type Key int

// ErrUnknownKey marks a binding that names a key the frontend does not have.
var ErrUnknownKey = errors.New("unknown key")

// Bindings maps keys to buttons. A key drives at most one button.
type Bindings struct {
	buttons *intmap.Map[Key, tetris.Button]
	keys    []Key
}

// NewBindings resolves key names with lookup. A key bound twice keeps the binding of the
// button that comes first in tetris.Buttons.
func NewBindings(bound map[tetris.Button][]string, lookup func(name string) (Key, bool)) (*Bindings, error) {
	b := &Bindings{buttons: intmap.New[Key, tetris.Button](32)}
	var errs []error
	for _, button := range tetris.Buttons {
		for _, name := range bound[button] {
			k, ok := lookup(name)
			if !ok {
				errs = append(errs, fmt.Errorf("%w %q for %s", ErrUnknownKey, name, button))
				continue
			}
			if b.buttons.Has(k) {
				continue
			}
			b.buttons.Put(k, button)
			b.keys = append(b.keys, k)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	slices.Sort(b.keys)
	return b, nil
}

// Button returns the button bound to k.
func (b *Bindings) Button(k Key) (tetris.Button, bool) {
	return b.buttons.Get(k)
}

// Keys returns the bound keys in ascending order.
func (b *Bindings) Keys() []Key {
	return slices.Clone(b.keys)
}

// Len is the number of bound keys.
func (b *Bindings) Len() int {
	return b.buttons.Len()
}
