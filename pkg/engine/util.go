package engine

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer formats diagnostic numbers with thousands separators for
// human-facing log lines. The machine-parsed UCI "nps" field itself stays
// a bare integer and is formatted independently by the uci package.
var printer = message.NewPrinter(language.English)

// FormatNodeRate renders a node count and elapsed time as a human-readable
// "N nodes, M nps" string, grouping both numbers with thousands
// separators.
func FormatNodeRate(nodes uint64, elapsed time.Duration) string {
	if elapsed <= 0 {
		return printer.Sprintf("%d nodes", nodes)
	}
	nps := uint64(float64(nodes) / elapsed.Seconds())
	return printer.Sprintf("%d nodes, %d nps", nodes, nps)
}
