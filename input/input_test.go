package input

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		name string
		want Key
	}{
		{"W", KeyW},
		{"w", KeyW},
		{"space", KeySpace},
		{"left-shift", KeyLeftShift},
		{"Left Shift", KeyLeftShift},
		{"7", KeySeven},
		{"KP_7", KeyKp7},
		{"F11", KeyF11},
		{"UP", KeyUp},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKey(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseKeyUnknown(t *testing.T) {
	_, err := ParseKey("HYPER")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownKey))
	assert.Contains(t, err.Error(), "HYPER")
}

func TestKeyStringRoundtrip(t *testing.T) {
	for _, name := range Names() {
		k, err := ParseKey(name)
		require.NoError(t, err)
		assert.Equal(t, name, k.String())
	}
	assert.Equal(t, "KEY(9999)", Key(9999).String())
}

func TestKeyYAML(t *testing.T) {
	var v struct {
		Fire Key   `yaml:"fire"`
		Keys []Key `yaml:"keys"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("fire: space\nkeys: [I, J]\n"), &v))
	assert.Equal(t, KeySpace, v.Fire)
	assert.Equal(t, []Key{KeyI, KeyJ}, v.Keys)

	out, err := yaml.Marshal(v)
	require.NoError(t, err)
	assert.Contains(t, string(out), "fire: SPACE")

	err = yaml.Unmarshal([]byte("fire: nope\n"), &v)
	assert.True(t, errors.Is(err, ErrUnknownKey))
}

func TestKeyState(t *testing.T) {
	s := Held(KeyW, KeySpace)
	assert.True(t, s.IsKeyDown(KeyW))
	assert.True(t, s.IsKeyDown(KeySpace))
	assert.False(t, s.IsKeyDown(KeyS))

	s.Release(KeyW)
	assert.False(t, s.IsKeyDown(KeyW))
	assert.False(t, None.IsKeyDown(KeyW))
}

func TestScriptKeys(t *testing.T) {
	s, err := ParseScript([]byte(`
steps:
  - {from: 0, to: 10, hold: [W]}
  - {from: 5, to: 8, hold: [SPACE]}
`))
	require.NoError(t, err)

	assert.True(t, s.Keys(0).IsKeyDown(KeyW))
	assert.False(t, s.Keys(0).IsKeyDown(KeySpace))
	assert.True(t, s.Keys(5).IsKeyDown(KeySpace))
	assert.True(t, s.Keys(7).IsKeyDown(KeyW))
	assert.False(t, s.Keys(8).IsKeyDown(KeySpace))
	assert.False(t, s.Keys(10).IsKeyDown(KeyW))
	assert.Equal(t, int32(10), s.End())
}

func TestScriptValidation(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"negative start", "steps: [{from: -1, to: 3, hold: [W]}]"},
		{"empty range", "steps: [{from: 3, to: 3, hold: [W]}]"},
		{"unknown key", "steps: [{from: 0, to: 3, hold: [WHAT]}]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScript([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestNilScript(t *testing.T) {
	var s *Script
	assert.Empty(t, s.Keys(3))
	assert.Equal(t, int32(0), s.End())
}
