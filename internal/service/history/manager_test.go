package history_test

import (
	"fmt"
	"testing"

	"github.com/kreators/easyslang/backend/internal/service/history"
)

func TestSelectSingleCandidate(t *testing.T) {
	m := history.NewManager(10)

	for i := 0; i < 3; i++ {
		if got := m.Select([]string{"only one"}, "reaction"); got != "only one" {
			t.Fatalf("expected sole candidate, got %q", got)
		}
	}

	stats := m.Stats()
	if stats.TotalTemplatesUsed != 1 {
		t.Fatalf("expected 1 tracked template, got %d", stats.TotalTemplatesUsed)
	}
}

func TestSelectEmptyCandidates(t *testing.T) {
	m := history.NewManager(10)
	if got := m.Select(nil, "reaction"); got != "" {
		t.Fatalf("expected empty string for empty candidates, got %q", got)
	}
}

func TestSelectNeverRepeatsConsecutively(t *testing.T) {
	m := history.NewManager(10)
	pool := []string{"a", "b", "c", "d", "e"}

	prev := m.Select(pool, "emotion")
	for i := 0; i < 500; i++ {
		got := m.Select(pool, "emotion")
		if got == prev {
			t.Fatalf("iteration %d: selected %q twice in a row", i, got)
		}
		prev = got
	}
}

func TestSelectDistributionApproachesUniform(t *testing.T) {
	m := history.NewManager(10)
	pool := make([]string, 5)
	for i := range pool {
		pool[i] = fmt.Sprintf("template-%d", i)
	}

	counts := make(map[string]int, len(pool))
	const draws = 5000
	for i := 0; i < draws; i++ {
		counts[m.Select(pool, "continuation")]++
	}

	minCount, maxCount := draws, 0
	for _, template := range pool {
		c := counts[template]
		if c < minCount {
			minCount = c
		}
		if c > maxCount {
			maxCount = c
		}
	}

	if minCount == 0 {
		t.Fatal("a template was never selected")
	}
	if ratio := float64(maxCount) / float64(minCount); ratio > 2.0 {
		t.Fatalf("usage spread too wide: max/min = %.2f (max=%d min=%d)", ratio, maxCount, minCount)
	}
}

func TestRecencyQueueBoundedByCapacity(t *testing.T) {
	m := history.NewManager(3)
	pool := []string{"a", "b", "c", "d", "e", "f"}

	seen := make(map[string]bool, len(pool))
	for i := 0; i < 200; i++ {
		got := m.Select(pool, "reaction")
		if got == "" {
			t.Fatalf("iteration %d: empty selection", i)
		}
		seen[got] = true

		if queued := m.Stats().RecentByCategory["reaction"]; queued > 3 {
			t.Fatalf("iteration %d: recency queue holds %d entries, capacity is 3", i, queued)
		}
	}

	// Oldest entries drop silently, so every candidate cycles back in.
	if len(seen) != len(pool) {
		t.Fatalf("only %d of %d candidates ever selected: %v", len(seen), len(pool), seen)
	}
}

func TestStatsTracksLastUsed(t *testing.T) {
	m := history.NewManager(10)
	m.Select([]string{"only one"}, "reaction")

	stats := m.Stats()
	if len(stats.MostUsed) != 1 {
		t.Fatalf("expected one usage entry, got %d", len(stats.MostUsed))
	}
	if stats.MostUsed[0].LastUsed.IsZero() {
		t.Fatal("last-used timestamp not recorded")
	}
}

func TestCategoriesAreIndependent(t *testing.T) {
	m := history.NewManager(10)

	first := m.Select([]string{"x", "y"}, "reaction")
	// Last-selected tracking is per category, so the other category may pick
	// the same text freely.
	got := m.Select([]string{first}, "emotion")
	if got != first {
		t.Fatalf("expected %q, got %q", first, got)
	}
}

func TestResetClearsLedger(t *testing.T) {
	m := history.NewManager(10)
	m.Select([]string{"a", "b"}, "reaction")
	m.Reset()

	stats := m.Stats()
	if stats.TotalTemplatesUsed != 0 {
		t.Fatalf("expected empty ledger after reset, got %d", stats.TotalTemplatesUsed)
	}
}
