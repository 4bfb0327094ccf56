// Package input tracks keyboard state as an ECS singleton.
package input

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// Keyboard is the per-tick keyboard state. Systems read it through an
// ecs.Singleton[Keyboard]; PollSystem refreshes it at the start of every update.
type Keyboard struct {
	pressed     map[ebiten.Key]bool
	justPressed map[ebiten.Key]bool
}

func NewKeyboard() Keyboard {
	return Keyboard{
		pressed:     make(map[ebiten.Key]bool),
		justPressed: make(map[ebiten.Key]bool),
	}
}

// Press marks key as held. It counts as just pressed if it was not held before.
func (k *Keyboard) Press(key ebiten.Key) {
	k.ensure()
	if !k.pressed[key] {
		k.justPressed[key] = true
	}
	k.pressed[key] = true
}

// Release marks key as no longer held.
func (k *Keyboard) Release(key ebiten.Key) {
	k.ensure()
	delete(k.pressed, key)
}

// ClearJustPressed forgets the edge-triggered state of the previous tick.
func (k *Keyboard) ClearJustPressed() {
	clear(k.justPressed)
}

func (k *Keyboard) Pressed(key ebiten.Key) bool {
	return k.pressed[key]
}

func (k *Keyboard) JustPressed(key ebiten.Key) bool {
	return k.justPressed[key]
}

// AnyPressed reports whether any of keys is held.
func (k *Keyboard) AnyPressed(keys ...ebiten.Key) bool {
	return slices.ContainsFunc(keys, k.Pressed)
}

// PressedKeys returns the held keys in key order.
func (k *Keyboard) PressedKeys() []ebiten.Key {
	keys := make([]ebiten.Key, 0, len(k.pressed))
	for key := range k.pressed {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

func (k *Keyboard) ensure() {
	if k.pressed == nil {
		*k = NewKeyboard()
	}
}
