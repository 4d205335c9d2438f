package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"porchlight/internal/community"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a community snapshot from JSON",
		Long:  "Import a snapshot (stdin or file) in the format produced by export. Replaces the current state.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runImport,
	}

	RootCmd.AddCommand(cmd)
}

func runImport(cmd *cobra.Command, args []string) {
	var data []byte
	var err error
	if len(args) == 1 {
		data, err = os.ReadFile(args[0])
		if err != nil {
			exitErr("read file", err)
		}
	} else {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			exitErr("read stdin", err)
		}
	}

	var snap community.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		exitErr("parse json", err)
	}

	c, err := openCommunity(cmd)
	if err != nil {
		exitErr("open community", err)
	}
	defer c.Close()

	if err := c.Import(cmd.Context(), snap); err != nil {
		exitErr("import", err)
	}

	fmt.Printf(`{"ok":true,"residents":%d,"threads":%d}`+"\n",
		len(snap.Residents), len(snap.Threads))
}
