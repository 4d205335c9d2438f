package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"porchlight/internal/community"
)

// directorPage renders the staff dashboard into a scrollable viewport.
type directorPage struct {
	comm   *community.Community
	styles Styles

	viewport viewport.Model

	width  int
	height int
}

func newDirectorPage(comm *community.Community, styles Styles) directorPage {
	return directorPage{
		comm:     comm,
		styles:   styles,
		viewport: viewport.New(76, 18),
	}
}

func (p *directorPage) SetSize(w, h int) {
	p.width = w
	p.height = h
	p.viewport.Width = w - 2
	p.viewport.Height = h - 2
	p.refresh()
}

func (p *directorPage) refresh() {
	st := p.comm.Stats()

	var sb strings.Builder
	sb.WriteString(p.styles.Title.Render("Director dashboard"))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("Residents:  %d\n", st.Residents))
	sb.WriteString(fmt.Sprintf("Lights on:  %d\n", st.OpenCount))
	sb.WriteString(fmt.Sprintf("Newcomers:  %d\n", st.NewCount))
	sb.WriteString(fmt.Sprintf("Threads:    %d (%d sent, %d received)\n",
		st.Threads, st.MessagesSent, st.MessagesReceived))

	if len(st.Engagement) > 0 {
		sb.WriteString("\n")
		sb.WriteString(p.styles.Title.Render("Conversations"))
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%-24s | %-4s | %-8s | %s\n",
			"Resident", "Sent", "Received", "Last activity"))
		sb.WriteString(strings.Repeat("-", 62))
		sb.WriteString("\n")
		for _, row := range st.Engagement {
			sb.WriteString(fmt.Sprintf("%-24s | %-4d | %-8d | %s\n",
				truncate(row.Name, 24), row.Sent, row.Received,
				row.LastActivity.Local().Format("Jan 2 15:04")))
		}
	}

	p.viewport.SetContent(sb.String())
}

func truncate(s string, l int) string {
	if len(s) > l {
		return s[:l-3] + "..."
	}
	return s
}

func (p directorPage) Update(msg tea.Msg) (directorPage, tea.Cmd) {
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

func (p directorPage) View() string {
	return p.viewport.View()
}
