package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the whole community as JSON",
		Long:  "Export the roster, your availability, and every thread as one JSON document. Feed it back with import.",
		Run:   runExport,
	}

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	c, err := openCommunity(cmd)
	if err != nil {
		exitErr("open community", err)
	}
	defer c.Close()

	printJSON(c.Export())
}
