package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestApp(t *testing.T) App {
	t.Helper()
	app := New(newTestCommunity(t), testConfig())
	m, _ := app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m.(App)
}

func TestAppStartsOnDirectory(t *testing.T) {
	app := New(newTestCommunity(t), testConfig())

	if got := app.View(); got != "lighting the porch..." {
		t.Errorf("expected the placeholder before the first resize, got %q", got)
	}

	m, _ := app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	app = m.(App)

	if app.page != pageDirectory {
		t.Errorf("expected directory page first, got %v", app.page)
	}
	view := app.View()
	if !strings.Contains(view, "porchlight") {
		t.Error("expected app title in header")
	}
	if !strings.Contains(view, "your light is on") {
		t.Error("expected own light state in header")
	}
	if !strings.Contains(view, "7 lights on, 2 new") {
		t.Error("expected summary counts in footer")
	}
}

func TestAppToggleOwnLight(t *testing.T) {
	app := newTestApp(t)

	m, _ := app.Update(keyRunes("g"))
	app = m.(App)

	if app.comm.SelfAvailable() {
		t.Fatal("expected g to switch the light off")
	}
	view := app.View()
	if !strings.Contains(view, "your light is off") {
		t.Error("expected header to follow the toggle")
	}
	if !strings.Contains(view, "6 lights on") {
		t.Error("expected the summary to drop by one")
	}

	m, _ = app.Update(keyRunes("g"))
	app = m.(App)
	if !app.comm.SelfAvailable() {
		t.Error("expected g to switch the light back on")
	}
}

func TestAppDirectorPageAndBack(t *testing.T) {
	app := newTestApp(t)

	m, _ := app.Update(keyRunes("s"))
	app = m.(App)
	if app.page != pageDirector {
		t.Fatalf("expected director page, got %v", app.page)
	}
	if !strings.Contains(app.View(), "Director dashboard") {
		t.Error("expected dashboard content")
	}

	m, _ = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app = m.(App)
	if app.page != pageDirectory {
		t.Errorf("expected esc to return to the directory, got %v", app.page)
	}
}

func TestAppOpensThreadFromDirectory(t *testing.T) {
	app := newTestApp(t)

	m, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app = m.(App)
	if cmd == nil {
		t.Fatal("expected enter to produce an open command")
	}

	m, _ = app.Update(cmd())
	app = m.(App)
	if app.page != pageThread {
		t.Fatalf("expected thread page, got %v", app.page)
	}
	if app.thread.resident.ID != "r01" {
		t.Errorf("expected the selected resident's thread, got %s", app.thread.resident.ID)
	}
	if !strings.Contains(app.View(), "Alice Tran") {
		t.Error("expected resident name on the thread page")
	}
}

func TestAppOpenThreadUnknownResident(t *testing.T) {
	app := newTestApp(t)

	m, _ := app.Update(openThread{residentID: "nobody"})
	app = m.(App)

	if app.page != pageDirectory {
		t.Error("expected to stay on the directory")
	}
	if app.err == nil {
		t.Fatal("expected the miss to be surfaced")
	}
	if !strings.Contains(app.View(), "resident not found") {
		t.Error("expected the error in the footer")
	}
}

func TestAppDeliversDueReply(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t)

	if _, err := app.comm.SendMessage(ctx, "r03", "book club tonight?"); err != nil {
		t.Fatalf("send: %v", err)
	}

	m, _ := app.Update(replyDue{residentID: "r03"})
	app = m.(App)

	thread := app.comm.Thread("r03")
	if len(thread) != 2 {
		t.Fatalf("expected the reply to land, got %d messages", len(thread))
	}
	if thread[1].Outgoing {
		t.Error("expected an incoming reply")
	}
}

func TestAppReplyRefreshesOpenThread(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t)

	if _, err := app.comm.SendMessage(ctx, "r05", "chess?"); err != nil {
		t.Fatalf("send: %v", err)
	}
	m, _ := app.Update(openThread{residentID: "r05"})
	app = m.(App)

	m, _ = app.Update(replyDue{residentID: "r05"})
	app = m.(App)

	reply := app.comm.Thread("r05")[1]
	if !strings.Contains(app.View(), reply.Text) {
		t.Error("expected the reply to appear in the open thread")
	}
}

func TestAppTelemetryTick(t *testing.T) {
	app := newTestApp(t)
	before := app.reading

	m, cmd := app.Update(telemetryTick(time.Now()))
	app = m.(App)

	if cmd == nil {
		t.Error("expected the tick to rearm itself")
	}
	if app.reading.Steps < before.Steps {
		t.Error("expected steps to keep counting up")
	}
	if app.reading.Battery > before.Battery {
		t.Error("expected the battery to only drain")
	}
	if !strings.Contains(app.View(), "battery") {
		t.Error("expected the watch readout in the footer")
	}
}

func TestAppQuitKeys(t *testing.T) {
	t.Run("q quits from the directory", func(t *testing.T) {
		app := newTestApp(t)
		_, cmd := app.Update(keyRunes("q"))
		if cmd == nil {
			t.Fatal("expected a quit command")
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("expected QuitMsg, got %T", cmd())
		}
	})

	t.Run("q is just a letter while typing", func(t *testing.T) {
		app := newTestApp(t)
		m, _ := app.Update(keyRunes("/"))
		app = m.(App)

		m, cmd := app.Update(keyRunes("q"))
		app = m.(App)
		if cmd != nil {
			if _, ok := cmd().(tea.QuitMsg); ok {
				t.Fatal("expected q to type into the filter, not quit")
			}
		}
		if app.directory.filterInput.Value() != "q" {
			t.Errorf("expected the letter in the filter, got %q",
				app.directory.filterInput.Value())
		}
	})

	t.Run("esc walks back before quitting", func(t *testing.T) {
		app := newTestApp(t)
		m, _ := app.Update(keyRunes("s"))
		app = m.(App)

		m, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEsc})
		app = m.(App)
		if app.page != pageDirectory {
			t.Fatal("expected esc to land on the directory first")
		}
		if cmd != nil {
			if _, ok := cmd().(tea.QuitMsg); ok {
				t.Fatal("expected the first esc not to quit")
			}
		}

		_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
		if cmd == nil {
			t.Fatal("expected the second esc to quit")
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("expected QuitMsg, got %T", cmd())
		}
	})
}

func TestAppKeyClearsStaleError(t *testing.T) {
	app := newTestApp(t)

	m, _ := app.Update(openThread{residentID: "nobody"})
	app = m.(App)
	if app.err == nil {
		t.Fatal("expected an error to clear")
	}

	m, _ = app.Update(tea.KeyMsg{Type: tea.KeyDown})
	app = m.(App)
	if app.err != nil {
		t.Error("expected the next keypress to clear the error")
	}
}
