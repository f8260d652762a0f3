package core

// Color is a foreground colour for a screen cell. The platform maps it to a
// terminal colour through ANSI.
type Color uint8

// Colours used by the brick3d renderer. Comments name the main user.
const (
	ColorDefault Color = iota // HUD text, borders
	ColorRed                  // Explosive bricks
	ColorGreen                // Power-up carriers
	ColorYellow               // Reverse bricks
	ColorBlue                 // Normal bricks
	ColorMagenta              // Warp bricks
	ColorCyan                 // Strong bricks
	ColorWhite                // Armored bricks
	ColorBrightRed            // Lasers, paddle with laser
	ColorBrightGreen          // Falling pickups
	ColorBrightYellow         // Overlay titles, difficulty notices
	ColorBrightBlue           // Slowed balls
	ColorBrightMagenta        // Crazy bricks and balls
	ColorBrightCyan           // Paddle
	ColorBrightWhite          // Balls, shaking bricks
	ColorOrange               // Shrink bricks
	ColorGray                 // Weak and unbreakable bricks

	colorCount
)

// ansiCodes maps colours to 256-colour palette indexes.
var ansiCodes = [colorCount]string{
	ColorRed:           "1",
	ColorGreen:         "2",
	ColorYellow:        "3",
	ColorBlue:          "4",
	ColorMagenta:       "5",
	ColorCyan:          "6",
	ColorWhite:         "7",
	ColorBrightRed:     "9",
	ColorBrightGreen:   "10",
	ColorBrightYellow:  "11",
	ColorBrightBlue:    "12",
	ColorBrightMagenta: "13",
	ColorBrightCyan:    "14",
	ColorBrightWhite:   "15",
	ColorOrange:        "208",
	ColorGray:          "245",
}

// ANSI returns the 256-colour code of c, or "" for the terminal default.
// Unknown values fall back to the default.
func (c Color) ANSI() string {
	if c >= colorCount {
		return ""
	}
	return ansiCodes[c]
}

// Colors returns every defined colour in order, ColorDefault first.
func Colors() []Color {
	out := make([]Color, colorCount)
	for i := range out {
		out[i] = Color(i)
	}
	return out
}
