package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/term-snake/game"
)

func TestDefaultKeyTable(t *testing.T) {
	kt := DefaultKeyTable()

	cases := []struct {
		name string
		ev   *tcell.EventKey
		want Action
	}{
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), turn(game.Up)},
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), turn(game.Left)},
		{"w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), turn(game.Up)},
		{"s", tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), turn(game.Down)},
		{"l", tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone), turn(game.Right)},
		{"h", tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), turn(game.Left)},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), quit},
		{"esc", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), quit},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), quit},
		{"unbound rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), Action{}},
		{"unbound key", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), Action{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := kt.Lookup(tc.ev); got != tc.want {
				t.Errorf("Expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestCloneIsIndependent(t *testing.T) {
	base := DefaultKeyTable()
	c := base.Clone()
	c.Runes['w'] = quit

	if base.Runes['w'] != turn(game.Up) {
		t.Error("Clone shares rune map with the source table")
	}
}

func TestMergeKeyTable(t *testing.T) {
	base := DefaultKeyTable()
	override := &KeyTable{
		Runes: map[rune]Action{
			'i': turn(game.Up),
			'w': {}, // unbind
		},
		Keys: map[tcell.Key]Action{
			tcell.KeyEnter: quit,
		},
	}

	merged := MergeKeyTable(base, override)

	if _, ok := merged.Runes['w']; ok {
		t.Error("Expected 'w' to be unbound")
	}
	if merged.Runes['i'] != turn(game.Up) {
		t.Errorf("Expected 'i' bound to up, got %+v", merged.Runes['i'])
	}
	if merged.Keys[tcell.KeyEnter] != quit {
		t.Error("Expected Enter bound to quit")
	}
	if merged.Runes['a'] != turn(game.Left) {
		t.Error("Expected untouched default 'a' to survive")
	}
	if _, ok := base.Runes['w']; !ok {
		t.Error("Merge mutated base table")
	}
}
