package ui

import "github.com/mattn/go-runewidth"

// truncateCells shortens s to at most width terminal cells. Wide runes
// count double, so CJK titles are cut at the same visual width.
func truncateCells(s string, width int) string {
	return runewidth.Truncate(s, width, EllipsisTail)
}
