package constants

// Glyphs
const (
	GlyphWall      = '#'
	GlyphSnakeBody = '#'
	GlyphHeadUp    = '▲'
	GlyphHeadLeft  = '◄'
	GlyphHeadRight = '►'
	GlyphHeadDown  = '▼'
	GlyphApple     = '♥'
	GlyphEmpty     = ' '
)

// Status Line
const (
	// StatusLineHeight is reserved under the grid when the status line is enabled
	StatusLineHeight = 1

	// AutopilotTag is shown in the status line while the bot steers
	AutopilotTag = "[autopilot]"
)
