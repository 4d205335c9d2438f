package community

import (
	"context"

	"github.com/oklog/ulid/v2"

	"porchlight/internal/model"
)

// Canned neighborly replies. The demo has no second party, so conversations
// are kept alive by picking one of these on the other resident's behalf.
var replyLines = []string{
	"Oh how nice to hear from you! Stop by any time.",
	"Lovely! I was just thinking about you.",
	"That sounds wonderful. See you in the community room?",
	"Thanks for the note, dear. My porch light is on for you.",
	"What a treat! Let's catch up over coffee.",
	"You read my mind. Same time as last week?",
}

// Message ids are ULIDs, so they carry the send time. Thread order itself is
// positional: append-only, oldest first.
func (c *Community) newMessageID() string {
	return ulid.MustNew(ulid.Timestamp(c.now()), c.entropy).String()
}

// Thread returns a copy of the conversation with the given resident, oldest
// first. A resident without messages has an empty thread, not an error.
func (c *Community) Thread(residentID string) []model.Message {
	return append([]model.Message(nil), c.threads[residentID]...)
}

// SendMessage appends an outgoing message to the resident's thread and
// persists it. The resident must exist.
func (c *Community) SendMessage(ctx context.Context, residentID, text string) (model.Message, error) {
	if _, err := c.byID(residentID); err != nil {
		return model.Message{}, err
	}
	msg := model.Message{
		ID:       c.newMessageID(),
		Outgoing: true,
		Text:     text,
		SentAt:   c.now().UTC(),
	}
	c.appendToThread(residentID, msg)
	return msg, c.persistThreads(ctx)
}

// ComposeReply builds a canned incoming message from the resident, stamped
// with the controller's clock. Nothing is stored; scheduling is the caller's
// concern.
func (c *Community) ComposeReply(residentID string) (model.Message, error) {
	if _, err := c.byID(residentID); err != nil {
		return model.Message{}, err
	}
	return model.Message{
		ID:       c.newMessageID(),
		Outgoing: false,
		Text:     replyLines[c.entropy.Intn(len(replyLines))],
		SentAt:   c.now().UTC(),
	}, nil
}

// AppendReply composes a reply from the resident, appends it to the thread,
// and persists. The CLI calls this right after sending; the UI calls it
// after a short delay so the conversation feels lived-in.
func (c *Community) AppendReply(ctx context.Context, residentID string) (model.Message, error) {
	msg, err := c.ComposeReply(residentID)
	if err != nil {
		return model.Message{}, err
	}
	c.appendToThread(residentID, msg)
	return msg, c.persistThreads(ctx)
}

func (c *Community) appendToThread(residentID string, msg model.Message) {
	prev := c.threads[residentID]
	next := make([]model.Message, 0, len(prev)+1)
	next = append(next, prev...)
	next = append(next, msg)
	c.threads[residentID] = next
}
