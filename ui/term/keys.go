package term

import (
	"github.com/gdamore/tcell/v2"
)

var keyNames = map[tcell.Key]string{
	tcell.KeyUp:    "Up",
	tcell.KeyDown:  "Down",
	tcell.KeyLeft:  "Left",
	tcell.KeyRight: "Right",
}

// KeyName maps an arrow key to the name the game understands.
func KeyName(ev *tcell.EventKey) (string, bool) {
	name, ok := keyNames[ev.Key()]
	return name, ok
}

// IsQuit reports whether ev asks to leave: Esc, Ctrl-C or q.
func IsQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
