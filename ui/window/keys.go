package window

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

var keyNames = map[int32]string{
	rl.KeyUp:    "Up",
	rl.KeyDown:  "Down",
	rl.KeyLeft:  "Left",
	rl.KeyRight: "Right",
}

// KeyName maps a raylib key code to the name the game understands.
func KeyName(key int32) (string, bool) {
	name, ok := keyNames[key]
	return name, ok
}

// PressedKeys drains raylib's key queue for this frame and returns the named
// keys in press order.
func PressedKeys() []string {
	var keys []string
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if name, ok := KeyName(key); ok {
			keys = append(keys, name)
		}
	}
	return keys
}
