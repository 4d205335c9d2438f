package community

import (
	"sort"
	"time"

	"porchlight/internal/directory"
)

// Stats holds the director dashboard numbers.
type Stats struct {
	Residents        int             `json:"residents"`
	OpenCount        int             `json:"open_count"`
	NewCount         int             `json:"new_count"`
	Threads          int             `json:"threads"`
	MessagesSent     int             `json:"messages_sent"`
	MessagesReceived int             `json:"messages_received"`
	Engagement       []EngagementRow `json:"engagement,omitempty"`
}

// EngagementRow summarizes one conversation for the director view.
type EngagementRow struct {
	ResidentID   string    `json:"resident_id"`
	Name         string    `json:"name"`
	Sent         int       `json:"sent"`
	Received     int       `json:"received"`
	LastActivity time.Time `json:"last_activity"`
}

// Stats assembles the director view from current state: community counts
// plus per-thread engagement, most recent conversation first.
func (c *Community) Stats() Stats {
	st := Stats{
		Residents: len(c.roster),
		Threads:   len(c.threads),
	}
	sum := directory.Summarize(c.roster, c.selfAvailable)
	st.OpenCount = sum.Open
	st.NewCount = sum.New

	names := make(map[string]string, len(c.roster))
	for _, r := range c.roster {
		names[r.ID] = r.Name
	}

	for id, msgs := range c.threads {
		row := EngagementRow{ResidentID: id, Name: names[id]}
		if row.Name == "" {
			// Threads can outlive an imported roster; fall back to the id.
			row.Name = id
		}
		for _, m := range msgs {
			if m.Outgoing {
				row.Sent++
			} else {
				row.Received++
			}
			if m.SentAt.After(row.LastActivity) {
				row.LastActivity = m.SentAt
			}
		}
		st.MessagesSent += row.Sent
		st.MessagesReceived += row.Received
		st.Engagement = append(st.Engagement, row)
	}

	sort.Slice(st.Engagement, func(i, j int) bool {
		a, b := st.Engagement[i], st.Engagement[j]
		if !a.LastActivity.Equal(b.LastActivity) {
			return a.LastActivity.After(b.LastActivity)
		}
		return a.ResidentID < b.ResidentID
	})

	return st
}
