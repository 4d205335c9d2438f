package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"porchlight/internal/model"
)

func init() {
	msgCmd := &cobra.Command{
		Use:   "message",
		Short: "Message threads with residents",
	}

	sendCmd := &cobra.Command{
		Use:   "send <resident> <text>...",
		Short: "Send a message to a resident",
		Long:  "Send a message. The resident can be an id or a name prefix. Unless replies are disabled, the simulated reply lands right away.",
		Args:  cobra.MinimumNArgs(2),
		Run:   runMessageSend,
	}
	sendCmd.Flags().Bool("reply", true, "Append the simulated reply")

	readCmd := &cobra.Command{
		Use:   "read <resident>",
		Short: "Read the thread with a resident",
		Args:  cobra.ExactArgs(1),
		Run:   runMessageRead,
	}

	msgCmd.AddCommand(sendCmd, readCmd)
	RootCmd.AddCommand(msgCmd)
}

func runMessageSend(cmd *cobra.Command, args []string) {
	text := strings.Join(args[1:], " ")
	if strings.TrimSpace(text) == "" {
		exitErr("send", fmt.Errorf("message text is empty"))
	}

	doReply := cfg.Reply.Enabled
	if cmd.Flags().Changed("reply") {
		doReply, _ = cmd.Flags().GetBool("reply")
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

	msg, err := c.SendMessage(cmd.Context(), r.ID, text)
	if err != nil {
		exitErr("send", err)
	}
	out := []model.Message{msg}

	if doReply {
		reply, err := c.AppendReply(cmd.Context(), r.ID)
		if err != nil {
			exitErr("reply", err)
		}
		out = append(out, reply)
	}

	if formatFlag == "text" {
		printThread(r.Name, out)
		return
	}
	b, _ := json.Marshal(out)
	fmt.Println(string(b))
}

func runMessageRead(cmd *cobra.Command, args []string) {
	c, err := openCommunity(cmd)
	if err != nil {
		exitErr("open community", err)
	}
	defer c.Close()

	r, err := c.Resolve(args[0])
	if err != nil {
		exitErr("resolve resident", err)
	}

	thread := c.Thread(r.ID)

	if formatFlag == "text" {
		if len(thread) == 0 {
			fmt.Printf("no messages with %s yet\n", r.Name)
			return
		}
		printThread(r.Name, thread)
		return
	}
	printJSON(thread)
}

func printThread(name string, msgs []model.Message) {
	for _, m := range msgs {
		who := name
		if m.Outgoing {
			who = cfg.ViewerName
		}
		fmt.Printf("[%s] %s: %s\n", m.SentAt.Local().Format("Jan 2 15:04"), who, m.Text)
	}
}
