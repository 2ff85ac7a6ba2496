package ctdf

import (
	"fmt"
	"strconv"
	"strings"
)

// Colour is a decoded RGB triple. Channels are 3 decimal digits so values above 255 are possible
// when the upstream sends them; they are passed through untouched.
type Colour struct {
	R uint16
	G uint16
	B uint16
}

// WalkingColour is the upstream convention for a walking leg with no real line colour
var WalkingColour = Colour{R: 230, G: 230, B: 230}

// DecodeColour decodes the packed RRRGGGBBB decimal form. The sign is ignored and the absolute value
// is left padded to 9 digits before being split into three 3 digit channels.
func DecodeColour(raw string) (Colour, bool) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimLeft(raw, "+-")

	if !isDigits(raw) {
		return Colour{}, false
	}

	if len(raw) < 9 {
		raw = strings.Repeat("0", 9-len(raw)) + raw
	}

	channels := [3]uint16{}
	for i := range channels {
		value, err := strconv.ParseUint(raw[i*3:i*3+3], 10, 16)
		if err != nil {
			return Colour{}, false
		}
		channels[i] = uint16(value)
	}

	return Colour{R: channels[0], G: channels[1], B: channels[2]}, true
}

func (c Colour) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

func (c Colour) IsWalking() bool {
	return c == WalkingColour
}
