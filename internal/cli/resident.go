package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"porchlight/internal/community"
)

func init() {
	resCmd := &cobra.Command{
		Use:   "resident",
		Short: "Manage the resident roster",
	}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a resident",
		Run:   runResidentAdd,
	}
	addCmd.Flags().String("name", "", "Display name")
	addCmd.Flags().String("bio", "", "A line about their interests")
	addCmd.Flags().Bool("new", true, "Mark as a new resident")
	addCmd.Flags().Bool("available", false, "Start with the porch light on")

	rmCmd := &cobra.Command{
		Use:   "rm <resident>",
		Short: "Remove a resident and their thread",
		Args:  cobra.ExactArgs(1),
		Run:   runResidentRm,
	}

	setCmd := &cobra.Command{
		Use:   "set <resident>",
		Short: "Update a resident's porch light or newcomer badge",
		Args:  cobra.ExactArgs(1),
		Run:   runResidentSet,
	}
	setCmd.Flags().Bool("available", false, "Porch light on or off")
	setCmd.Flags().Bool("new", false, "Newcomer badge on or off")

	resCmd.AddCommand(addCmd, rmCmd, setCmd)
	RootCmd.AddCommand(resCmd)
}

func runResidentAdd(cmd *cobra.Command, args []string) {
	name, _ := cmd.Flags().GetString("name")
	bio, _ := cmd.Flags().GetString("bio")
	isNew, _ := cmd.Flags().GetBool("new")
	available, _ := cmd.Flags().GetBool("available")

	c, err := openCommunity(cmd)
	if err != nil {
		exitErr("open community", err)
	}
	defer c.Close()

	r, err := c.AddResident(cmd.Context(), community.AddParams{
		Name:      name,
		Bio:       bio,
		New:       isNew,
		Available: available,
	})
	if err != nil {
		exitErr("add resident", err)
	}

	b, _ := json.Marshal(r)
	fmt.Println(string(b))
}

func runResidentRm(cmd *cobra.Command, args []string) {
	c, err := openCommunity(cmd)
	if err != nil {
		exitErr("open community", err)
	}
	defer c.Close()

	r, err := c.Resolve(args[0])
	if err != nil {
		exitErr("resolve resident", err)
	}
	if err := c.RemoveResident(cmd.Context(), r.ID); err != nil {
		exitErr("rm", err)
	}

	fmt.Printf(`{"ok":true,"removed":%q}`+"\n", r.ID)
}

func runResidentSet(cmd *cobra.Command, args []string) {
	var p community.SetFlagsParams
	if cmd.Flags().Changed("available") {
		v, _ := cmd.Flags().GetBool("available")
		p.Available = &v
	}
	if cmd.Flags().Changed("new") {
		v, _ := cmd.Flags().GetBool("new")
		p.New = &v
	}
	if p.Available == nil && p.New == nil {
		exitErr("set", fmt.Errorf("nothing to change, pass --available or --new"))
	}

	c, err := openCommunity(cmd)
	if err != nil {
		exitErr("open community", err)
	}
	defer c.Close()

	r, err := c.Resolve(args[0])
	if err != nil {
		exitErr("resolve resident", err)
	}

	updated, err := c.SetFlags(cmd.Context(), r.ID, p)
	if err != nil {
		exitErr("set", err)
	}

	b, _ := json.Marshal(updated)
	fmt.Println(string(b))
}
