package core

// Color is the semantic role of a screen cell. The platform layer maps each
// role to a concrete terminal color, so game rendering never names ANSI codes.
type Color uint8

// Cell roles used by the maze views.
const (
	ColorDefault Color = iota
	ColorWall
	ColorFloor
	ColorPlayer
	ColorExit
	ColorStart
	ColorTrail
	ColorText
	ColorTitle
	ColorAccent
	ColorMuted
	ColorSelected
	ColorWarning
	ColorBorder
)

// String returns the role name, used in debug output and tests.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorWall:
		return "wall"
	case ColorFloor:
		return "floor"
	case ColorPlayer:
		return "player"
	case ColorExit:
		return "exit"
	case ColorStart:
		return "start"
	case ColorTrail:
		return "trail"
	case ColorText:
		return "text"
	case ColorTitle:
		return "title"
	case ColorAccent:
		return "accent"
	case ColorMuted:
		return "muted"
	case ColorSelected:
		return "selected"
	case ColorWarning:
		return "warning"
	case ColorBorder:
		return "border"
	default:
		return "unknown"
	}
}
