package render

import (
	"strings"

	"golang.org/x/image/font"
)

// Fixed layout constants, in pixels.
const (
	// Padding is the margin kept clear on all four sides of the panel.
	Padding = 5
	// LineSpacing is added to the font size to get the line height.
	LineSpacing = 2
)

// LineHeight returns the vertical advance for one line at fontSize.
func LineHeight(fontSize int) int {
	return fontSize + LineSpacing
}

// MaxLines returns how many lines at fontSize fit between the top and bottom
// padding of drawHeight.
func MaxLines(fontSize, drawHeight int) int {
	usable := drawHeight - 2*Padding
	if usable <= 0 {
		return 0
	}
	return usable / LineHeight(fontSize)
}

// Wrap splits text into lines whose measured pixel width stays within
// usableWidth. Tokens (whitespace-separated) are appended greedily to the
// current line, joined by single spaces, until the next token would push the
// measured width past the budget. A token that is wider than usableWidth all
// by itself is never split; it occupies its own over-width line.
//
// Empty or all-whitespace text yields no lines.
func Wrap(text string, face font.Face, usableWidth int) []string {
	var lines []string
	cur := ""
	for _, tok := range strings.Fields(text) {
		switch {
		case cur == "":
			cur = tok
		case font.MeasureString(face, cur+" "+tok).Ceil() <= usableWidth:
			cur += " " + tok
		default:
			lines = append(lines, cur)
			cur = tok
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

// Fit truncates lines to the ones that fully fit in drawHeight. Dropped
// lines are silently discarded; there is no ellipsis or scrolling.
func Fit(lines []string, fontSize, drawHeight int) []string {
	max := MaxLines(fontSize, drawHeight)
	if len(lines) > max {
		return lines[:max]
	}
	return lines
}
