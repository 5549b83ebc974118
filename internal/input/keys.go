package input

import "strings"

// Key is a physical key code in the DOM "code" naming scheme ("KeyR", "ArrowLeft").
type Key string

const (
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeyA          Key = "KeyA"
	KeyB          Key = "KeyB"
	KeyD          Key = "KeyD"
	KeyH          Key = "KeyH"
	KeyJ          Key = "KeyJ"
	KeyK          Key = "KeyK"
	KeyL          Key = "KeyL"
	KeyQ          Key = "KeyQ"
	KeyR          Key = "KeyR"
	KeyV          Key = "KeyV"
	KeyW          Key = "KeyW"
)

var arrowNames = map[string]Key{
	"arrowleft":  KeyArrowLeft,
	"arrowright": KeyArrowRight,
	"arrowup":    "ArrowUp",
	"arrowdown":  "ArrowDown",
	"left":       KeyArrowLeft,
	"right":      KeyArrowRight,
}

// Normalize maps loose key names ("r", "R", "keyr", "arrowleft") to codes.
// Names it does not recognize are returned unchanged.
func Normalize(name string) Key {
	lower := strings.ToLower(name)
	if k, ok := arrowNames[lower]; ok {
		return k
	}
	letter := lower
	if len(lower) == 4 && strings.HasPrefix(lower, "key") {
		letter = lower[3:]
	}
	if len(letter) == 1 && letter[0] >= 'a' && letter[0] <= 'z' {
		return Key("Key" + strings.ToUpper(letter))
	}
	return Key(name)
}

// Letter returns the code for a letter rune, or "" for anything else.
func Letter(r rune) Key {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	if r < 'a' || r > 'z' {
		return ""
	}
	return Key("Key" + strings.ToUpper(string(r)))
}
