package theme

import "strconv"

// Foreground is an 8-bit (256 palette) text color.
type Foreground uint8

// Background is an 8-bit (256 palette) fill color.
//
// Foreground and Background share a representation but are distinct
// types so one cannot be passed where the other is expected. Use
// DividerForeground for the one sanctioned conversion.
type Background uint8

func (f Foreground) String() string { return strconv.Itoa(int(f)) }

func (b Background) String() string { return strconv.Itoa(int(b)) }

// DividerForeground returns the foreground that paints a divider glyph
// in the color of the segment it closes.
func DividerForeground(b Background) Foreground {
	return Foreground(b)
}

// Warning is the foreground of critical context/workspace markers.
const Warning Foreground = 196

// Pair is the color pair of one visual role.
type Pair struct {
	FG Foreground
	BG Background
}
