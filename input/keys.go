// Package input models keyboard state independently of the windowing layer.
//
// Key values match raylib key codes so the raylib host can pass them straight
// through to rl.IsKeyDown.
package input

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Key identifies a keyboard key.
type Key int32

// ErrUnknownKey is returned when a key name cannot be resolved.
var ErrUnknownKey = errors.New("unknown key")

// Key codes (raylib values).
const (
	KeyNull         Key = 0
	KeySpace        Key = 32
	KeyApostrophe   Key = 39
	KeyComma        Key = 44
	KeyMinus        Key = 45
	KeyPeriod       Key = 46
	KeySlash        Key = 47
	KeyZero         Key = 48
	KeyOne          Key = 49
	KeyTwo          Key = 50
	KeyThree        Key = 51
	KeyFour         Key = 52
	KeyFive         Key = 53
	KeySix          Key = 54
	KeySeven        Key = 55
	KeyEight        Key = 56
	KeyNine         Key = 57
	KeySemicolon    Key = 59
	KeyEqual        Key = 61
	KeyA            Key = 65
	KeyB            Key = 66
	KeyC            Key = 67
	KeyD            Key = 68
	KeyE            Key = 69
	KeyF            Key = 70
	KeyG            Key = 71
	KeyH            Key = 72
	KeyI            Key = 73
	KeyJ            Key = 74
	KeyK            Key = 75
	KeyL            Key = 76
	KeyM            Key = 77
	KeyN            Key = 78
	KeyO            Key = 79
	KeyP            Key = 80
	KeyQ            Key = 81
	KeyR            Key = 82
	KeyS            Key = 83
	KeyT            Key = 84
	KeyU            Key = 85
	KeyV            Key = 86
	KeyW            Key = 87
	KeyX            Key = 88
	KeyY            Key = 89
	KeyZ            Key = 90
	KeyLeftBracket  Key = 91
	KeyBackslash    Key = 92
	KeyRightBracket Key = 93
	KeyGrave        Key = 96
	KeyEscape       Key = 256
	KeyEnter        Key = 257
	KeyTab          Key = 258
	KeyBackspace    Key = 259
	KeyInsert       Key = 260
	KeyDelete       Key = 261
	KeyRight        Key = 262
	KeyLeft         Key = 263
	KeyDown         Key = 264
	KeyUp           Key = 265
	KeyPageUp       Key = 266
	KeyPageDown     Key = 267
	KeyHome         Key = 268
	KeyEnd          Key = 269
	KeyF1           Key = 290
	KeyF2           Key = 291
	KeyF3           Key = 292
	KeyF4           Key = 293
	KeyF5           Key = 294
	KeyF6           Key = 295
	KeyF7           Key = 296
	KeyF8           Key = 297
	KeyF9           Key = 298
	KeyF10          Key = 299
	KeyF11          Key = 300
	KeyF12          Key = 301
	KeyKp0          Key = 320
	KeyKp1          Key = 321
	KeyKp2          Key = 322
	KeyKp3          Key = 323
	KeyKp4          Key = 324
	KeyKp5          Key = 325
	KeyKp6          Key = 326
	KeyKp7          Key = 327
	KeyKp8          Key = 328
	KeyKp9          Key = 329
	KeyKpDecimal    Key = 330
	KeyKpDivide     Key = 331
	KeyKpMultiply   Key = 332
	KeyKpSubtract   Key = 333
	KeyKpAdd        Key = 334
	KeyKpEnter      Key = 335
	KeyLeftShift    Key = 340
	KeyLeftControl  Key = 341
	KeyLeftAlt      Key = 342
	KeyRightShift   Key = 344
	KeyRightControl Key = 345
	KeyRightAlt     Key = 346
)

var keyNames = map[string]Key{
	"SPACE":         KeySpace,
	"APOSTROPHE":    KeyApostrophe,
	"COMMA":         KeyComma,
	"MINUS":         KeyMinus,
	"PERIOD":        KeyPeriod,
	"SLASH":         KeySlash,
	"SEMICOLON":     KeySemicolon,
	"EQUAL":         KeyEqual,
	"LEFT_BRACKET":  KeyLeftBracket,
	"BACKSLASH":     KeyBackslash,
	"RIGHT_BRACKET": KeyRightBracket,
	"GRAVE":         KeyGrave,
	"ESCAPE":        KeyEscape,
	"ENTER":         KeyEnter,
	"TAB":           KeyTab,
	"BACKSPACE":     KeyBackspace,
	"INSERT":        KeyInsert,
	"DELETE":        KeyDelete,
	"RIGHT":         KeyRight,
	"LEFT":          KeyLeft,
	"DOWN":          KeyDown,
	"UP":            KeyUp,
	"PAGE_UP":       KeyPageUp,
	"PAGE_DOWN":     KeyPageDown,
	"HOME":          KeyHome,
	"END":           KeyEnd,
	"KP_DECIMAL":    KeyKpDecimal,
	"KP_DIVIDE":     KeyKpDivide,
	"KP_MULTIPLY":   KeyKpMultiply,
	"KP_SUBTRACT":   KeyKpSubtract,
	"KP_ADD":        KeyKpAdd,
	"KP_ENTER":      KeyKpEnter,
	"LEFT_SHIFT":    KeyLeftShift,
	"LEFT_CONTROL":  KeyLeftControl,
	"LEFT_ALT":      KeyLeftAlt,
	"RIGHT_SHIFT":   KeyRightShift,
	"RIGHT_CONTROL": KeyRightControl,
	"RIGHT_ALT":     KeyRightAlt,
}

// keyLabels is the reverse of keyNames, filled in init.
var keyLabels map[Key]string

func init() {
	for c := 'A'; c <= 'Z'; c++ {
		keyNames[string(c)] = KeyA + Key(c-'A')
	}
	for d := '0'; d <= '9'; d++ {
		keyNames[string(d)] = KeyZero + Key(d-'0')
		keyNames["KP_"+string(d)] = KeyKp0 + Key(d-'0')
	}
	for i := 1; i <= 12; i++ {
		keyNames[fmt.Sprintf("F%d", i)] = KeyF1 + Key(i-1)
	}

	keyLabels = make(map[Key]string, len(keyNames))
	for name, k := range keyNames {
		keyLabels[k] = name
	}
}

// ParseKey resolves a key name such as "W", "space" or "LEFT_SHIFT".
// Names are case-insensitive; dashes and spaces are treated as underscores.
func ParseKey(name string) (Key, error) {
	norm := strings.ToUpper(strings.TrimSpace(name))
	norm = strings.NewReplacer("-", "_", " ", "_").Replace(norm)
	if k, ok := keyNames[norm]; ok {
		return k, nil
	}
	return KeyNull, fmt.Errorf("%w: %q", ErrUnknownKey, name)
}

// String returns the canonical key name.
func (k Key) String() string {
	if name, ok := keyLabels[k]; ok {
		return name
	}
	return fmt.Sprintf("KEY(%d)", int32(k))
}

// Names returns all known key names, sorted.
func Names() []string {
	names := make([]string, 0, len(keyNames))
	for name := range keyNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// UnmarshalYAML decodes a key from its name.
func (k *Key) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return fmt.Errorf("decoding key: %w", err)
	}
	parsed, err := ParseKey(name)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*k = parsed
	return nil
}

// MarshalYAML encodes a key as its name.
func (k Key) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}
