package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/term-snake/game"
)

func TestStyleFor(t *testing.T) {
	tests := []struct {
		symbol game.Symbol
		fg     tcell.Color
	}{
		{game.SymbolWall, RgbWall},
		{game.SymbolSnakeBody, RgbSnakeBody},
		{game.SymbolSnakeHead, RgbSnakeHead},
		{game.SymbolApple, RgbApple},
	}

	for _, tt := range tests {
		t.Run(tt.symbol.String(), func(t *testing.T) {
			fg, bg, _ := StyleFor(tt.symbol).Decompose()
			if fg != tt.fg {
				t.Errorf("Expected foreground %v, got %v", tt.fg, fg)
			}
			if bg != RgbBackground {
				t.Errorf("Expected background %v, got %v", RgbBackground, bg)
			}
		})
	}
}

func TestStyleForHeadIsBold(t *testing.T) {
	_, _, attrs := StyleFor(game.SymbolSnakeHead).Decompose()
	if attrs&tcell.AttrBold == 0 {
		t.Error("Expected bold head")
	}
	_, _, attrs = StyleFor(game.SymbolSnakeBody).Decompose()
	if attrs&tcell.AttrBold != 0 {
		t.Error("Expected regular body")
	}
}

func TestStyleForEmpty(t *testing.T) {
	_, bg, _ := StyleFor(game.SymbolEmpty).Decompose()
	if bg != RgbBackground {
		t.Errorf("Expected background %v, got %v", RgbBackground, bg)
	}
}
