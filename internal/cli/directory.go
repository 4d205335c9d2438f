package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"porchlight/internal/directory"
	"porchlight/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "directory",
		Short: "Browse the resident directory",
		Long:  "List residents the way the directory screen shows them: lit porch lights first, then newcomers, then by name.",
		Run:   runDirectory,
	}

	cmd.Flags().StringP("query", "q", "", "Match names and bios (case-insensitive)")
	cmd.Flags().Bool("available", false, "Only residents with their light on")
	cmd.Flags().Bool("new", false, "Only new residents")

	RootCmd.AddCommand(cmd)
}

func runDirectory(cmd *cobra.Command, args []string) {
	query, _ := cmd.Flags().GetString("query")
	availableOnly, _ := cmd.Flags().GetBool("available")
	newOnly, _ := cmd.Flags().GetBool("new")

	c, err := openCommunity(cmd)
	if err != nil {
		exitErr("open community", err)
	}
	defer c.Close()

	residents := c.Directory(directory.Filters{
		Query:         query,
		AvailableOnly: availableOnly,
		NewOnly:       newOnly,
	})
	sum := c.Summary()

	if formatFlag == "text" {
		for _, r := range residents {
			light := " "
			if r.Available {
				light = "*"
			}
			badge := ""
			if r.New {
				badge = " (new)"
			}
			fmt.Printf("%s %-8s %s%s  %s\n", light, r.ID, r.Name, badge, r.Bio)
		}
		fmt.Printf("\n%d lights on, %d new residents\n", sum.Open, sum.New)
		return
	}

	printJSON(struct {
		Residents []model.Resident  `json:"residents"`
		Summary   directory.Summary `json:"summary"`
	}{residents, sum})
}
