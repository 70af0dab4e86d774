package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tablero/internal/tui/theme"
)

// ManageRow is one line of the manage widgets panel
type ManageRow struct {
	Name    string
	Origin  string
	Checked bool
}

// RenderManageList renders the checkbox list of the manage widgets panel.
// Only the rows around the cursor that fit in height are drawn.
//
//	> [x] Cloud Accounts            CSPM Executive Dashboard
//	  [ ] Workload Alerts           CWPP Dashboard
func RenderManageList(rows []ManageRow, cursor int, width int, height int) string {
	if len(rows) == 0 {
		return EmptyStateStyle.Render("No widgets on the dashboard")
	}

	visible := max(height, 1)
	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := min(start+visible, len(rows))

	nameWidth := max(width/2, 10)
	cursorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Highlight)).Bold(true)
	checkedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Create))
	originStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	var b strings.Builder
	if start > 0 {
		b.WriteString(IndicatorStyle.Render("▲ more above") + "\n")
	}
	for i := start; i < end; i++ {
		row := rows[i]

		prefix := "  "
		if i == cursor {
			prefix = cursorStyle.Render("> ")
		}

		box := "[ ]"
		if row.Checked {
			box = checkedStyle.Render("[x]")
		}

		name := fmt.Sprintf("%-*s", nameWidth, truncate(row.Name, nameWidth-3))
		if i == cursor {
			name = cursorStyle.Render(name)
		}

		b.WriteString(prefix + box + " " + name + " " + originStyle.Render(row.Origin))
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	if end < len(rows) {
		b.WriteString("\n" + IndicatorStyle.Render("▼ more below"))
	}

	return b.String()
}
