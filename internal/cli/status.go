package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "status [on|off]",
		Short: "Show or set your own porch light",
		Args:  cobra.MaximumNArgs(1),
		Run:   runStatus,
	}

	RootCmd.AddCommand(cmd)
}

func runStatus(cmd *cobra.Command, args []string) {
	c, err := openCommunity(cmd)
	if err != nil {
		exitErr("open community", err)
	}
	defer c.Close()

	if len(args) == 1 {
		var on bool
		switch args[0] {
		case "on":
			on = true
		case "off":
			on = false
		default:
			exitErr("status", fmt.Errorf("expected on or off, got %q", args[0]))
		}
		if err := c.SetSelfAvailable(cmd.Context(), on); err != nil {
			exitErr("status", err)
		}
	}

	if formatFlag == "text" {
		state := "off"
		if c.SelfAvailable() {
			state = "on"
		}
		fmt.Printf("porch light %s\n", state)
		return
	}
	fmt.Printf(`{"available":%v}`+"\n", c.SelfAvailable())
}
