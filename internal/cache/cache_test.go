package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/redis/go-redis/v9"

	"github.com/cfbdynasty/roster-stats/internal/models"
)

func newTestCache(t *testing.T, ttl time.Duration) (*TableCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return New(client, ttl), mr
}

func TestTableCache_RoundTrip(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	table := &models.CountTable{
		Keys: []string{"position", "dev_trait"},
		Rows: []models.CountRow{
			{Group: "QB", Values: []string{"star"}, Ranks: []int{2}, Count: 1},
			{Group: "QB", Values: []string{"elite"}, Ranks: []int{3}, Count: 0},
		},
	}

	if _, ok, err := c.GetTable(ctx, "roster:stanford:2027:star-elite:position"); err != nil || ok {
		t.Fatalf("GetTable() before set = ok %v, err %v", ok, err)
	}
	if err := c.SetTable(ctx, "roster:stanford:2027:star-elite:position", table); err != nil {
		t.Fatalf("SetTable() error = %v", err)
	}

	got, ok, err := c.GetTable(ctx, "roster:stanford:2027:star-elite:position")
	if err != nil || !ok {
		t.Fatalf("GetTable() = ok %v, err %v", ok, err)
	}
	if diff := cmp.Diff(table, got); diff != "" {
		t.Errorf("GetTable() mismatch (-want +got):\n%s", diff)
	}

	if ttl := mr.TTL("roster:stanford:2027:star-elite:position"); ttl != time.Minute {
		t.Errorf("TTL = %v, want 1m", ttl)
	}
	mr.FastForward(2 * time.Minute)
	if _, ok, _ := c.GetTable(ctx, "roster:stanford:2027:star-elite:position"); ok {
		t.Error("GetTable() hit after expiry")
	}
}

func TestTableCache_CorruptEntry(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	if err := mr.Set("roster:bad", "{not json"); err != nil {
		t.Fatal(err)
	}
	if _, _, err := c.GetTable(context.Background(), "roster:bad"); err == nil {
		t.Error("GetTable() expected decode error")
	}
}

func TestOpen(t *testing.T) {
	mr := miniredis.RunT(t)

	c, client, err := Open(context.Background(), "redis://"+mr.Addr()+"/0", time.Minute)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer client.Close()
	if c == nil {
		t.Fatal("Open() returned nil cache")
	}

	if _, _, err := Open(context.Background(), "not a url", time.Minute); err == nil {
		t.Error("Open() expected error for bad url")
	}
}
