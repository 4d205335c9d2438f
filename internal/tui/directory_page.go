package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"porchlight/internal/community"
	"porchlight/internal/directory"
	"porchlight/internal/model"
)

type filterMode int

const (
	modeAll filterMode = iota
	modeLit
	modeNew
)

func (f filterMode) label() string {
	switch f {
	case modeLit:
		return "Lit"
	case modeNew:
		return "New"
	default:
		return "All"
	}
}

// directoryPage is the roster browser: a live filter bar over a table.
type directoryPage struct {
	comm   *community.Community
	styles Styles

	table       table.Model
	filterInput textinput.Model
	mode        filterMode
	focused     bool

	// visible mirrors the table rows so the cursor maps back to a resident.
	visible []model.Resident

	width  int
	height int
}

func newDirectoryPage(comm *community.Community, styles Styles) directoryPage {
	t := table.New(
		table.WithColumns(directoryColumns(76)),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	fi := textinput.New()
	fi.Placeholder = "Search names and bios..."
	fi.CharLimit = 60
	fi.Width = 36

	p := directoryPage{
		comm:        comm,
		styles:      styles,
		table:       t,
		filterInput: fi,
	}
	p.refresh()
	return p
}

func directoryColumns(width int) []table.Column {
	bio := width - 40
	if bio < 16 {
		bio = 16
	}
	return []table.Column{
		{Title: " ", Width: 3},
		{Title: "Name", Width: 24},
		{Title: "", Width: 5},
		{Title: "Bio", Width: bio},
	}
}

func (p *directoryPage) filters() directory.Filters {
	f := directory.Filters{Query: p.filterInput.Value()}
	switch p.mode {
	case modeLit:
		f.AvailableOnly = true
	case modeNew:
		f.NewOnly = true
	}
	return f
}

// refresh reruns the pipeline and rebuilds the table rows.
func (p *directoryPage) refresh() {
	p.visible = p.comm.Directory(p.filters())

	rows := make([]table.Row, 0, len(p.visible))
	for _, r := range p.visible {
		light := ""
		if r.Available {
			light = "*"
		}
		badge := ""
		if r.New {
			badge = "new"
		}
		rows = append(rows, table.Row{light, r.Name, badge, r.Bio})
	}
	p.table.SetRows(rows)
	if c := p.table.Cursor(); c >= len(rows) && len(rows) > 0 {
		p.table.SetCursor(len(rows) - 1)
	}
}

func (p directoryPage) typing() bool { return p.focused }

func (p directoryPage) selected() (model.Resident, bool) {
	i := p.table.Cursor()
	if i < 0 || i >= len(p.visible) {
		return model.Resident{}, false
	}
	return p.visible[i], true
}

func (p directoryPage) Update(msg tea.Msg) (directoryPage, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "/":
			p.focused = !p.focused
			if p.focused {
				p.filterInput.Focus()
				return p, textinput.Blink
			}
			p.filterInput.Blur()
			return p, nil
		case "tab":
			if !p.focused {
				p.mode = (p.mode + 1) % 3
				p.refresh()
				return p, nil
			}
		case "esc":
			if p.focused {
				p.focused = false
				p.filterInput.Blur()
				return p, nil
			}
		case "enter":
			if p.focused {
				p.focused = false
				p.filterInput.Blur()
				return p, nil
			}
			if r, ok := p.selected(); ok {
				id := r.ID
				return p, func() tea.Msg { return openThread{residentID: id} }
			}
		}
	}

	if p.focused {
		p.filterInput, cmd = p.filterInput.Update(msg)
		p.refresh() // filter as they type
	} else {
		p.table, cmd = p.table.Update(msg)
	}
	return p, cmd
}

func (p directoryPage) View() string {
	var sb strings.Builder

	sb.WriteString(p.renderFilterBar())
	sb.WriteString("\n")
	sb.WriteString(p.table.View())

	total := len(p.comm.Roster())
	if len(p.visible) != total {
		sb.WriteString("\n")
		sb.WriteString(p.styles.Muted.Render(
			fmt.Sprintf("Showing %d of %d residents", len(p.visible), total)))
	}
	return sb.String()
}

func (p directoryPage) renderFilterBar() string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.styles.Theme.Border).
		Padding(0, 1)
	if p.focused {
		boxStyle = boxStyle.BorderForeground(p.styles.Theme.Primary)
	}

	var modes strings.Builder
	for _, mode := range []filterMode{modeAll, modeLit, modeNew} {
		style := p.styles.Muted
		if p.mode == mode {
			style = lipgloss.NewStyle().
				Foreground(p.styles.Theme.Primary).
				Bold(true).
				Underline(true)
		}
		modes.WriteString(style.Render(mode.label()))
		modes.WriteString("  ")
	}

	return lipgloss.JoinHorizontal(lipgloss.Center,
		boxStyle.Render(p.filterInput.View()),
		"  ",
		modes.String(),
	)
}

func (p *directoryPage) SetSize(w, h int) {
	p.width = w
	p.height = h
	p.table.SetColumns(directoryColumns(w - 4))
	p.table.SetWidth(w - 4)
	p.table.SetHeight(h - 6)
}
