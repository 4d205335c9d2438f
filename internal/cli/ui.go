package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"porchlight/internal/tui"
)

func init() {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive directory",
		Long:  "Open the full-screen UI: directory browser, message threads, director dashboard, and the watch readout.",
		Run:   runUI,
	}

	RootCmd.AddCommand(cmd)
}

func runUI(cmd *cobra.Command, args []string) {
	c, err := openCommunity(cmd)
	if err != nil {
		exitErr("open community", err)
	}
	defer c.Close()

	app := tui.New(c, cfg)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		exitErr("ui", err)
	}
}
