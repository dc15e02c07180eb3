package input

import (
	"fmt"
	"sort"
	"strings"
)

// Key is a keyboard key. Values match raylib's KeyboardKey codes so the
// platform layer can pass them straight through.
type Key int32

const (
	KeyNull       Key = 0
	KeySpace      Key = 32
	KeyApostrophe Key = 39
	KeyComma      Key = 44
	KeyMinus      Key = 45
	KeyPeriod     Key = 46
	KeySlash      Key = 47
	KeyZero       Key = 48
	KeyOne        Key = 49
	KeyTwo        Key = 50
	KeyThree      Key = 51
	KeyFour       Key = 52
	KeyFive       Key = 53
	KeySix        Key = 54
	KeySeven      Key = 55
	KeyEight      Key = 56
	KeyNine       Key = 57
	KeySemicolon  Key = 59
	KeyEqual      Key = 61
	KeyA          Key = 65
	KeyB          Key = 66
	KeyC          Key = 67
	KeyD          Key = 68
	KeyE          Key = 69
	KeyF          Key = 70
	KeyG          Key = 71
	KeyH          Key = 72
	KeyI          Key = 73
	KeyJ          Key = 74
	KeyK          Key = 75
	KeyL          Key = 76
	KeyM          Key = 77
	KeyN          Key = 78
	KeyO          Key = 79
	KeyP          Key = 80
	KeyQ          Key = 81
	KeyR          Key = 82
	KeyS          Key = 83
	KeyT          Key = 84
	KeyU          Key = 85
	KeyV          Key = 86
	KeyW          Key = 87
	KeyX          Key = 88
	KeyY          Key = 89
	KeyZ          Key = 90
	KeyEscape     Key = 256
	KeyEnter      Key = 257
	KeyTab        Key = 258
	KeyBackspace  Key = 259
	KeyRight      Key = 262
	KeyLeft       Key = 263
	KeyDown       Key = 264
	KeyUp         Key = 265
	KeyF1         Key = 290
	KeyF2         Key = 291
	KeyF3         Key = 292
	KeyF4         Key = 293
	KeyF5         Key = 294
	KeyLeftShift  Key = 340
)

// names maps every accepted spelling to a key. Several spellings may share a
// key (",", "comma"); the canonical name is the one in canonical below.
var names = map[string]Key{
	"space": KeySpace, "'": KeyApostrophe, "apostrophe": KeyApostrophe,
	",": KeyComma, "comma": KeyComma, "<": KeyComma,
	"-": KeyMinus, "minus": KeyMinus,
	".": KeyPeriod, "period": KeyPeriod, ">": KeyPeriod,
	"/": KeySlash, "slash": KeySlash,
	";": KeySemicolon, "semicolon": KeySemicolon,
	"=": KeyEqual, "equal": KeyEqual,
	"escape": KeyEscape, "esc": KeyEscape,
	"enter": KeyEnter, "return": KeyEnter,
	"tab": KeyTab, "backspace": KeyBackspace,
	"right": KeyRight, "left": KeyLeft, "down": KeyDown, "up": KeyUp,
	"f1": KeyF1, "f2": KeyF2, "f3": KeyF3, "f4": KeyF4, "f5": KeyF5,
	"shift": KeyLeftShift, "leftshift": KeyLeftShift,
}

var canonical = map[Key]string{}

// all lists every key the input state polls each tick.
var all []Key

func init() {
	for d := KeyZero; d <= KeyNine; d++ {
		digit := string(rune('0' + d - KeyZero))
		names[digit] = d
		names["alpha"+digit] = d
	}
	for c := KeyA; c <= KeyZ; c++ {
		names[string(rune('a'+c-KeyA))] = c
	}

	spellings := make([]string, 0, len(names))
	for name := range names {
		spellings = append(spellings, name)
	}
	// Longest word wins as canonical name so "comma" beats ",".
	sort.Slice(spellings, func(i, j int) bool {
		if len(spellings[i]) != len(spellings[j]) {
			return len(spellings[i]) > len(spellings[j])
		}
		return spellings[i] < spellings[j]
	})
	for _, name := range spellings {
		k := names[name]
		if _, ok := canonical[k]; ok {
			continue
		}
		canonical[k] = name
		all = append(all, k)
	}
	// Single letters and digits read better than "alpha1".
	for d := KeyZero; d <= KeyNine; d++ {
		canonical[d] = string(rune('0' + d - KeyZero))
	}
	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })
}

// ParseKey resolves a key name from a config or scene file. Matching is
// case-insensitive.
func ParseKey(s string) (Key, error) {
	k, ok := names[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return KeyNull, fmt.Errorf("unknown key %q", s)
	}
	return k, nil
}

func (k Key) String() string {
	if name, ok := canonical[k]; ok {
		return strings.ToUpper(name)
	}
	return fmt.Sprintf("Key(%d)", int32(k))
}
