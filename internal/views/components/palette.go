package components

import (
	"fmt"
	"image/color"
)

// labelHex is the cycle of colours used for label buttons and file list entries.
var labelHex = []string{
	"#3cb44b", "#ffe119", "#e6194b", "#4363d8", "#f58231",
	"#911eb4", "#42d4f4", "#f032e6", "#bfef45", "#fabebe",
	"#469990", "#e6beff", "#9a6324", "#fffac8", "#800000",
	"#aaffc3", "#808000", "#ffd8b1", "#000075", "#808080",
}

var labelColors = mustParsePalette(labelHex)

// Unlabeled is the text colour of files without a label.
var Unlabeled color.Color = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}

// LabelColor returns the palette colour for the label at index, cycling when
// there are more labels than colours. Negative indexes get Unlabeled.
func LabelColor(index int) color.Color {
	if index < 0 {
		return Unlabeled
	}
	return labelColors[index%len(labelColors)]
}

func mustParsePalette(hex []string) []color.NRGBA {
	out := make([]color.NRGBA, len(hex))
	for i, h := range hex {
		c, err := ParseHexColor(h)
		if err != nil {
			panic(err)
		}
		out[i] = c
	}
	return out
}

// ParseHexColor parses "#rrggbb".
func ParseHexColor(s string) (color.NRGBA, error) {
	c := color.NRGBA{A: 0xff}
	if len(s) != 7 || s[0] != '#' {
		return c, fmt.Errorf("invalid colour %q", s)
	}
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return c, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return c, nil
}
