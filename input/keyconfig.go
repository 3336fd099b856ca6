package input

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/term-snake/game"
)

// Named keys accepted in keymap files
var keyNames = map[string]tcell.Key{
	"up":     tcell.KeyUp,
	"down":   tcell.KeyDown,
	"left":   tcell.KeyLeft,
	"right":  tcell.KeyRight,
	"esc":    tcell.KeyEscape,
	"escape": tcell.KeyEscape,
	"enter":  tcell.KeyEnter,
	"tab":    tcell.KeyTab,
	"ctrl-c": tcell.KeyCtrlC,
	"ctrl-q": tcell.KeyCtrlQ,
	"ctrl-d": tcell.KeyCtrlD,
}

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

type keyFile struct {
	Turn map[string]string `toml:"turn"`
	Quit struct {
		Keys []string `toml:"keys"`
	} `toml:"quit"`
}

// LoadKeyConfig parses TOML keymap data into a sparse override KeyTable
// [turn] maps key -> direction name or "none"; [quit] keys lists quit keys
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var raw keyFile
	meta, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("keymap: unknown key %q", undecoded[0].String())
	}

	kt := &KeyTable{
		Runes: make(map[rune]Action),
		Keys:  make(map[tcell.Key]Action),
	}

	for keyStr, dirName := range raw.Turn {
		action, err := resolveTurn(dirName)
		if err != nil {
			return nil, fmt.Errorf("[turn] key %q: %w", keyStr, err)
		}
		if err := kt.bind(keyStr, action); err != nil {
			return nil, fmt.Errorf("[turn] %w", err)
		}
	}

	for _, keyStr := range raw.Quit.Keys {
		if err := kt.bind(keyStr, quit); err != nil {
			return nil, fmt.Errorf("[quit] %w", err)
		}
	}

	return kt, nil
}

// LoadKeyConfigFile reads a keymap file and merges it over the defaults
func LoadKeyConfigFile(path string) (*KeyTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("keymap: %w", err)
	}
	override, err := LoadKeyConfig(data)
	if err != nil {
		return nil, fmt.Errorf("keymap %s: %w", path, err)
	}
	return MergeKeyTable(DefaultKeyTable(), override), nil
}

func (kt *KeyTable) bind(keyStr string, action Action) error {
	lower := strings.ToLower(keyStr)
	if k, ok := keyNames[lower]; ok {
		kt.Keys[k] = action
		return nil
	}
	if r, ok := runeAliases[lower]; ok {
		kt.Runes[r] = action
		return nil
	}
	runes := []rune(keyStr)
	if len(runes) == 1 {
		kt.Runes[runes[0]] = action
		return nil
	}
	return fmt.Errorf("unknown key name: %q", keyStr)
}

func resolveTurn(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "none" {
		return Action{}, nil
	}
	d, ok := game.ParseDirection(name)
	if !ok {
		return Action{}, fmt.Errorf("unknown direction: %q", name)
	}
	return turn(d), nil
}
