package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"porchlight/internal/community"
	"porchlight/internal/config"
	"porchlight/internal/telemetry"
)

type page int

const (
	pageDirectory page = iota
	pageThread
	pageDirector
)

// Messages private to the UI loop.
type (
	telemetryTick time.Time
	replyDue      struct{ residentID string }
	openThread    struct{ residentID string }
)

// App is the root model. Every community mutation happens inside Update, on
// the program's single event loop, so the pages never need locking.
type App struct {
	comm   *community.Community
	cfg    *config.Config
	styles Styles

	page      page
	directory directoryPage
	thread    threadPage
	director  directorPage

	watch   *telemetry.Simulator
	reading telemetry.Reading

	width  int
	height int
	ready  bool
	err    error
}

// New assembles the UI over a loaded community.
func New(comm *community.Community, cfg *config.Config) App {
	styles := NewStyles(ThemeByName(cfg.UI.Theme))
	watch := telemetry.NewSimulator(cfg.Telemetry.Seed)
	return App{
		comm:      comm,
		cfg:       cfg,
		styles:    styles,
		directory: newDirectoryPage(comm, styles),
		thread:    newThreadPage(comm, cfg, styles),
		director:  newDirectorPage(comm, styles),
		watch:     watch,
		reading:   watch.Next(),
	}
}

func (m App) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.telemetryCmd())
}

func (m App) telemetryCmd() tea.Cmd {
	return tea.Tick(m.cfg.GetTelemetryPeriod(), func(t time.Time) tea.Msg {
		return telemetryTick(t)
	})
}

func (m App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		body := msg.Height - 4 // header, footer, blank lines between
		m.directory.SetSize(msg.Width, body)
		m.thread.SetSize(msg.Width, body)
		m.director.SetSize(msg.Width, body)
		return m, nil

	case telemetryTick:
		m.reading = m.watch.Next()
		return m, m.telemetryCmd()

	case openThread:
		r, err := m.comm.Resolve(msg.residentID)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.thread.open(r)
		m.page = pageThread
		return m, nil

	case replyDue:
		if _, err := m.comm.AppendReply(context.Background(), msg.residentID); err == nil {
			if m.page == pageThread && m.thread.resident.ID == msg.residentID {
				m.thread.refresh()
			}
		}
		return m, nil

	case tea.KeyMsg:
		m.err = nil
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.page != pageDirectory {
				m.page = pageDirectory
				m.directory.refresh()
				return m, nil
			}
			if !m.directory.typing() {
				return m, tea.Quit
			}
		case "q":
			if m.page == pageDirectory && !m.directory.typing() {
				return m, tea.Quit
			}
		case "s":
			if m.page == pageDirectory && !m.directory.typing() {
				m.director.refresh()
				m.page = pageDirector
				return m, nil
			}
		case "g":
			if m.page == pageDirectory && !m.directory.typing() {
				on := !m.comm.SelfAvailable()
				if err := m.comm.SetSelfAvailable(context.Background(), on); err != nil {
					m.err = err
				}
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.page {
	case pageThread:
		m.thread, cmd = m.thread.Update(msg)
	case pageDirector:
		m.director, cmd = m.director.Update(msg)
	default:
		m.directory, cmd = m.directory.Update(msg)
	}
	return m, cmd
}

func (m App) View() string {
	if !m.ready {
		return "lighting the porch..."
	}

	var sb strings.Builder
	sb.WriteString(m.headerView())
	sb.WriteString("\n\n")

	switch m.page {
	case pageThread:
		sb.WriteString(m.thread.View())
	case pageDirector:
		sb.WriteString(m.director.View())
	default:
		sb.WriteString(m.directory.View())
	}

	sb.WriteString("\n")
	sb.WriteString(m.footerView())
	return sb.String()
}

func (m App) headerView() string {
	light := m.styles.Muted.Render("your light is off")
	if m.comm.SelfAvailable() {
		light = m.styles.Lit.Render("your light is on")
	}
	return m.styles.Header.Render("porchlight") + "  " + light
}

func (m App) footerView() string {
	sum := m.comm.Summary()
	counts := fmt.Sprintf("%d lights on, %d new", sum.Open, sum.New)
	watch := fmt.Sprintf("hr %d, %d steps, battery %d%%",
		m.reading.HeartRate, m.reading.Steps, m.reading.Battery)

	hints := "[enter] open  [/] filter  [tab] mode  [g] light  [s] director  [q] quit"
	switch m.page {
	case pageThread:
		hints = "[enter] send  [esc] back"
	case pageDirector:
		hints = "[esc] back"
	}

	line := counts + "  |  " + watch + "  |  " + hints
	if m.err != nil {
		line += "  " + m.styles.Error.Render(m.err.Error())
	}
	return m.styles.Footer.Render(line)
}
