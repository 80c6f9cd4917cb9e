package coloring

import (
	"fmt"
	"strconv"
	"strings"
)

// Encode renders the color vector as "c0:c1:...:cV-1" (Uncolored as -1).
func (c *Coloring) Encode() string {
	var sb strings.Builder
	sb.Grow(3 * len(c.colors))
	for v, col := range c.colors {
		if v > 0 {
			sb.WriteByte(':')
		}
		sb.WriteString(strconv.Itoa(col))
	}
	return sb.String()
}

// Format renders "nb_uncolored,penalty,nb_colors,c0:c1:..." (see HeaderCSV).
func (c *Coloring) Format() string {
	return fmt.Sprintf("%d,%d,%d,%s", c.uncolored.Len(), c.penalty, c.numColors, c.Encode())
}

// String is Format.
func (c *Coloring) String() string { return c.Format() }

// DecodeColors parses the output of Encode back into a color vector.
func DecodeColors(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	fields := strings.Split(s, ":")
	out := make([]int, len(fields))
	for i, f := range fields {
		col, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("DecodeColors: field %d: %w", i, err)
		}
		if col < Uncolored {
			return nil, fmt.Errorf("DecodeColors: field %d color %d: %w", i, col, ErrColorOutOfRange)
		}
		out[i] = col
	}
	return out, nil
}
