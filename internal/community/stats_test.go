package community

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"go.uber.org/zap"

	"porchlight/internal/store"
)

func TestStats(t *testing.T) {
	ctx := context.Background()
	c := New(store.NewMemory(), zap.NewNop())
	c.entropy = rand.New(rand.NewSource(9))

	// Advance a minute per message so last-activity ordering is observable.
	tick := 0
	c.now = func() time.Time {
		tick++
		return time.Date(2026, 6, 1, 10, tick, 0, 0, time.UTC)
	}
	c.Load(ctx)

	c.SendMessage(ctx, "r01", "morning!")
	c.AppendReply(ctx, "r01")
	c.SendMessage(ctx, "r02", "crossword hint?")

	st := c.Stats()

	if st.Residents != 12 {
		t.Errorf("expected 12 residents, got %d", st.Residents)
	}
	if st.OpenCount != 7 || st.NewCount != 2 {
		t.Errorf("expected community counts 7/2, got %d/%d", st.OpenCount, st.NewCount)
	}
	if st.Threads != 2 {
		t.Errorf("expected 2 threads, got %d", st.Threads)
	}
	if st.MessagesSent != 2 || st.MessagesReceived != 1 {
		t.Errorf("expected 2 sent / 1 received, got %d/%d", st.MessagesSent, st.MessagesReceived)
	}

	if len(st.Engagement) != 2 {
		t.Fatalf("expected 2 engagement rows, got %d", len(st.Engagement))
	}
	if st.Engagement[0].ResidentID != "r02" {
		t.Errorf("expected most recent thread first, got %s", st.Engagement[0].ResidentID)
	}
	if st.Engagement[0].Name != "Bev Okafor" {
		t.Errorf("expected resident name on row, got %q", st.Engagement[0].Name)
	}
	if st.Engagement[1].Sent != 1 || st.Engagement[1].Received != 1 {
		t.Errorf("expected 1/1 on r01 row, got %d/%d",
			st.Engagement[1].Sent, st.Engagement[1].Received)
	}
	if st.Engagement[0].LastActivity.IsZero() {
		t.Error("expected last activity to be stamped")
	}
}

func TestStatsOnQuietCommunity(t *testing.T) {
	c, _ := newTestCommunity(t)

	st := c.Stats()
	if st.Threads != 0 || st.MessagesSent != 0 || st.MessagesReceived != 0 {
		t.Errorf("expected quiet stats, got %+v", st)
	}
	if len(st.Engagement) != 0 {
		t.Errorf("expected no engagement rows, got %d", len(st.Engagement))
	}
}

func TestStatsNamesDepartedThreadsById(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCommunity(t)

	c.SendMessage(ctx, "r07", "mahjong?")
	snap := c.Export()
	snap.Residents = snap.Residents[:6] // r07 departs, thread kept in snapshot

	if err := c.Import(ctx, snap); err != nil {
		t.Fatalf("import: %v", err)
	}

	st := c.Stats()
	if len(st.Engagement) != 1 {
		t.Fatalf("expected 1 engagement row, got %d", len(st.Engagement))
	}
	if st.Engagement[0].Name != "r07" {
		t.Errorf("expected id fallback for departed resident, got %q", st.Engagement[0].Name)
	}
}
