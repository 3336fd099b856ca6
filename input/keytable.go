package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/term-snake/game"
)

// ActionKind classifies what a key does
type ActionKind uint8

const (
	ActionNone ActionKind = iota
	ActionTurn
	ActionQuit
)

// Action is the result of a key lookup
type Action struct {
	Kind      ActionKind
	Direction game.Direction // valid for ActionTurn
}

func turn(d game.Direction) Action {
	return Action{Kind: ActionTurn, Direction: d}
}

var quit = Action{Kind: ActionQuit}

// KeyTable maps runes and special keys to actions
type KeyTable struct {
	Runes map[rune]Action
	Keys  map[tcell.Key]Action
}

// DefaultKeyTable returns arrows, wasd and hjkl for turning, q/Esc/Ctrl-C for quit
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]Action{
			tcell.KeyUp:     turn(game.Up),
			tcell.KeyDown:   turn(game.Down),
			tcell.KeyLeft:   turn(game.Left),
			tcell.KeyRight:  turn(game.Right),
			tcell.KeyEscape: quit,
			tcell.KeyCtrlC:  quit,
		},
		Runes: map[rune]Action{
			'w': turn(game.Up),
			'a': turn(game.Left),
			's': turn(game.Down),
			'd': turn(game.Right),
			'k': turn(game.Up),
			'h': turn(game.Left),
			'j': turn(game.Down),
			'l': turn(game.Right),
			'q': quit,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	c := &KeyTable{
		Runes: make(map[rune]Action, len(kt.Runes)),
		Keys:  make(map[tcell.Key]Action, len(kt.Keys)),
	}
	for k, v := range kt.Runes {
		c.Runes[k] = v
	}
	for k, v := range kt.Keys {
		c.Keys[k] = v
	}
	return c
}

// Lookup resolves a key event; unbound keys yield ActionNone
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.Keys[ev.Key()]
}

// MergeKeyTable returns base overridden by override; ActionNone entries unbind the key
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	for k, v := range override.Runes {
		if v.Kind == ActionNone {
			delete(result.Runes, k)
		} else {
			result.Runes[k] = v
		}
	}
	for k, v := range override.Keys {
		if v.Kind == ActionNone {
			delete(result.Keys, k)
		} else {
			result.Keys[k] = v
		}
	}
	return result
}
