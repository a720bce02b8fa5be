package input

// Source reports which keys are held during the current frame.
type Source interface {
	IsKeyDown(k Key) bool
}

// KeyState is a fixed set of held keys.
type KeyState map[Key]bool

// Held returns a KeyState with the given keys held.
func Held(keys ...Key) KeyState {
	s := make(KeyState, len(keys))
	s.Press(keys...)
	return s
}

// IsKeyDown reports whether k is held.
func (s KeyState) IsKeyDown(k Key) bool {
	return s[k]
}

// Press marks keys as held.
func (s KeyState) Press(keys ...Key) {
	for _, k := range keys {
		s[k] = true
	}
}

// Release marks keys as not held.
func (s KeyState) Release(keys ...Key) {
	for _, k := range keys {
		delete(s, k)
	}
}

// None is a Source with nothing held.
var None Source = KeyState{}
