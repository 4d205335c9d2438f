package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"porchlight/internal/community"
	"porchlight/internal/config"
	"porchlight/internal/model"
)

// threadPage is one conversation: history in a viewport, compose box below.
type threadPage struct {
	comm   *community.Community
	cfg    *config.Config
	styles Styles

	resident model.Resident
	viewport viewport.Model
	input    textinput.Model
	err      error

	width  int
	height int
}

func newThreadPage(comm *community.Community, cfg *config.Config, styles Styles) threadPage {
	ti := textinput.New()
	ti.Placeholder = "Write something neighborly..."
	ti.CharLimit = 280
	ti.Width = 60
	ti.Prompt = "> "
	ti.PromptStyle = styles.Prompt
	ti.Focus()

	return threadPage{
		comm:     comm,
		cfg:      cfg,
		styles:   styles,
		viewport: viewport.New(76, 18),
		input:    ti,
	}
}

// open points the page at a resident and rebuilds the history.
func (p *threadPage) open(r model.Resident) {
	p.resident = r
	p.err = nil
	p.input.SetValue("")
	p.input.Focus()
	p.refresh()
}

func (p *threadPage) refresh() {
	msgs := p.comm.Thread(p.resident.ID)

	var sb strings.Builder
	for _, m := range msgs {
		who := p.resident.Name
		nameStyle := p.styles.Title
		if m.Outgoing {
			who = p.cfg.ViewerName
			nameStyle = p.styles.Bold
		}
		sb.WriteString(p.styles.Muted.Render(m.SentAt.Local().Format("15:04")))
		sb.WriteString(" ")
		sb.WriteString(nameStyle.Render(who + ":"))
		sb.WriteString(" ")
		sb.WriteString(m.Text)
		sb.WriteString("\n")
	}
	if len(msgs) == 0 {
		sb.WriteString(p.styles.Muted.Render("No messages yet. Say hello!"))
		sb.WriteString("\n")
	}

	p.viewport.SetContent(sb.String())
	p.viewport.GotoBottom()
}

func (p threadPage) Update(msg tea.Msg) (threadPage, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		return p, p.send()
	}

	var tiCmd, vpCmd tea.Cmd
	p.input, tiCmd = p.input.Update(msg)
	p.viewport, vpCmd = p.viewport.Update(msg)
	return p, tea.Batch(tiCmd, vpCmd)
}

// send pushes the composed text into the thread and, when auto replies are
// on, schedules the neighbor's response.
func (p *threadPage) send() tea.Cmd {
	text := strings.TrimSpace(p.input.Value())
	if text == "" {
		return nil
	}

	if _, err := p.comm.SendMessage(context.Background(), p.resident.ID, text); err != nil {
		p.err = err
		return nil
	}
	p.err = nil
	p.input.SetValue("")
	p.refresh()

	if !p.cfg.Reply.Enabled {
		return nil
	}
	id := p.resident.ID
	return tea.Tick(p.cfg.GetReplyDelay(), func(time.Time) tea.Msg {
		return replyDue{residentID: id}
	})
}

func (p threadPage) View() string {
	var sb strings.Builder

	title := p.resident.Name
	if p.resident.Available {
		title += "  " + p.styles.Lit.Render("light on")
	}
	if p.resident.New {
		title += "  " + p.styles.Badge.Render("new")
	}
	sb.WriteString(p.styles.Title.Render(title))
	sb.WriteString("\n\n")
	sb.WriteString(p.viewport.View())
	sb.WriteString("\n")
	sb.WriteString(p.input.View())
	if p.err != nil {
		sb.WriteString("\n")
		sb.WriteString(p.styles.Error.Render(p.err.Error()))
	}
	return sb.String()
}

func (p *threadPage) SetSize(w, h int) {
	p.width = w
	p.height = h
	p.viewport.Width = w - 2
	p.viewport.Height = h - 5
	p.input.Width = w - 6
}
