package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show the director dashboard",
		Run:   runStats,
	}

	RootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) {
	c, err := openCommunity(cmd)
	if err != nil {
		exitErr("open community", err)
	}
	defer c.Close()

	st := c.Stats()

	if formatFlag == "text" {
		fmt.Printf("residents:  %d\n", st.Residents)
		fmt.Printf("lights on:  %d (new residents: %d)\n", st.OpenCount, st.NewCount)
		fmt.Printf("threads:    %d (%d sent, %d received)\n",
			st.Threads, st.MessagesSent, st.MessagesReceived)
		for _, row := range st.Engagement {
			fmt.Printf("  %-24s %d sent, %d received, last %s\n",
				row.Name, row.Sent, row.Received,
				row.LastActivity.Local().Format("Jan 2 15:04"))
		}
		return
	}

	printJSON(st)
}
