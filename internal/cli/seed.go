package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write the built-in roster",
		Long:  "Write the dozen-resident fixture the demo starts with. Refuses to overwrite an existing roster unless --force is given.",
		Run:   runSeed,
	}

	cmd.Flags().Bool("force", false, "Overwrite an existing roster")

	RootCmd.AddCommand(cmd)
}

func runSeed(cmd *cobra.Command, args []string) {
	force, _ := cmd.Flags().GetBool("force")

	c, err := openCommunity(cmd)
	if err != nil {
		exitErr("open community", err)
	}
	defer c.Close()

	if err := c.Seed(cmd.Context(), force); err != nil {
		exitErr("seed", err)
	}

	fmt.Printf(`{"ok":true,"residents":%d}`+"\n", len(c.Roster()))
}
