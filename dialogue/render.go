// Package dialogue renders stress results and runs the interactive round loop.
package dialogue

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"hop.computer/seq/stress"
)

// FormatValues prints values the way the containers are dumped on the
// terminal: space separated, in order.
func FormatValues(values []int) string {
	var b strings.Builder
	for i, v := range values {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, v)
	}
	return b.String()
}

// RenderResults lays out one line per container. When styled is false no
// escape sequences or padding are emitted.
func RenderResults(results []stress.Result, styled bool) string {
	if !styled {
		var b strings.Builder
		for _, r := range results {
			fmt.Fprintf(&b, "%s (%d rounds, %s): %s\n",
				r.Container, r.Rounds, r.Elapsed.Round(time.Microsecond), FormatValues(r.Values))
		}
		return b.String()
	}

	lines := make([]string, 0, len(results)+1)
	lines = append(lines, titleStyle.Render("Container contents"))
	for _, r := range results {
		line := fmt.Sprintf("%s %s %s",
			containerStyle.Render(r.Container),
			timeStyle.Render(r.Elapsed.Round(time.Microsecond).String()),
			valueStyle.Render(FormatValues(r.Values)),
		)
		lines = append(lines, itemStyle.Render(line))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
