// Package history tracks template usage across all sessions and selects
// templates with a bias against recent repeats, so a long conversation does
// not sound like a looping tape.
package history

import (
	"log"
	"math/rand"
	"sync"
	"time"
)

// DefaultCapacity is the per-category recency queue size.
const DefaultCapacity = 10

// Stats 返回当前使用统计快照。
type Stats struct {
	TotalTemplatesUsed int            `json:"totalTemplatesUsed"`
	RecentByCategory   map[string]int `json:"recentByCategory"`
	MostUsed           []UsageEntry   `json:"mostUsed"`
}

// UsageEntry pairs a template with its usage count and last selection time.
type UsageEntry struct {
	Template string    `json:"template"`
	Count    int       `json:"count"`
	LastUsed time.Time `json:"lastUsed"`
}

// Manager is the process-wide usage ledger. It is shared by every session and
// internally synchronized; all mutation goes through Select.
type Manager struct {
	mu       sync.Mutex
	capacity int
	usage    map[string]int
	lastUsed map[string]time.Time
	recent   map[string][]string
	last     map[string]string
	rng      *rand.Rand
}

// NewManager creates a Manager with the given recency queue capacity.
// Non-positive capacities fall back to DefaultCapacity.
func NewManager(capacity int) *Manager {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Manager{
		capacity: capacity,
		usage:    make(map[string]int),
		lastUsed: make(map[string]time.Time),
		recent:   make(map[string][]string),
		last:     make(map[string]string),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Select picks one template from candidates for the given category, avoiding
// immediate repeats and preferring less-used templates. The selection is
// recorded before returning. An empty candidate list returns "".
func (m *Manager) Select(candidates []string, categoryName string) string {
	if len(candidates) == 0 {
		return ""
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if len(candidates) == 1 {
		m.record(candidates[0], categoryName)
		return candidates[0]
	}

	available := candidates

	// Drop recently used candidates unless that would empty the set.
	if recentSet := m.recentSet(categoryName); len(recentSet) > 0 {
		nonRecent := make([]string, 0, len(available))
		for _, c := range available {
			if !recentSet[c] {
				nonRecent = append(nonRecent, c)
			}
		}
		if len(nonRecent) > 0 {
			available = nonRecent
		}
	}

	// Never pick the exact same template twice in a row if avoidable.
	if last, ok := m.last[categoryName]; ok && len(available) > 1 {
		filtered := make([]string, 0, len(available))
		for _, c := range available {
			if c != last {
				filtered = append(filtered, c)
			}
		}
		if len(filtered) > 0 {
			available = filtered
		}
	}

	selected := m.weightedPick(available)
	m.record(selected, categoryName)
	return selected
}

// weightedPick draws by cumulative-weight roulette where less-used templates
// carry higher weight: weight = maxUsage − usage + 1.
func (m *Manager) weightedPick(candidates []string) string {
	if len(candidates) == 1 {
		return candidates[0]
	}

	counts := make([]int, len(candidates))
	maxUsage := 1
	for i, c := range candidates {
		count := m.usage[c]
		if count < 1 {
			count = 1
		}
		counts[i] = count
		if count > maxUsage {
			maxUsage = count
		}
	}

	total := 0
	weights := make([]int, len(candidates))
	for i, count := range counts {
		weights[i] = maxUsage - count + 1
		total += weights[i]
	}
	if total <= 0 {
		return candidates[m.rng.Intn(len(candidates))]
	}

	draw := m.rng.Intn(total)
	cumulative := 0
	for i, w := range weights {
		cumulative += w
		if draw < cumulative {
			return candidates[i]
		}
	}
	return candidates[len(candidates)-1]
}

func (m *Manager) record(template, categoryName string) {
	m.usage[template]++
	m.lastUsed[template] = time.Now()
	m.last[categoryName] = template

	queue := append(m.recent[categoryName], template)
	if len(queue) > m.capacity {
		queue = queue[len(queue)-m.capacity:]
	}
	m.recent[categoryName] = queue
}

func (m *Manager) recentSet(categoryName string) map[string]bool {
	queue := m.recent[categoryName]
	if len(queue) == 0 {
		return nil
	}
	set := make(map[string]bool, len(queue))
	for _, t := range queue {
		set[t] = true
	}
	return set
}

// Stats returns a snapshot of the ledger for diagnostics.
func (m *Manager) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()

	recentByCategory := make(map[string]int, len(m.recent))
	for categoryName, queue := range m.recent {
		recentByCategory[categoryName] = len(queue)
	}

	mostUsed := make([]UsageEntry, 0, len(m.usage))
	for template, count := range m.usage {
		mostUsed = append(mostUsed, UsageEntry{
			Template: template,
			Count:    count,
			LastUsed: m.lastUsed[template],
		})
	}
	// Keep only the top five, simple selection since the set is small.
	for i := 0; i < len(mostUsed) && i < 5; i++ {
		maxIdx := i
		for j := i + 1; j < len(mostUsed); j++ {
			if mostUsed[j].Count > mostUsed[maxIdx].Count {
				maxIdx = j
			}
		}
		mostUsed[i], mostUsed[maxIdx] = mostUsed[maxIdx], mostUsed[i]
	}
	if len(mostUsed) > 5 {
		mostUsed = mostUsed[:5]
	}

	return Stats{
		TotalTemplatesUsed: len(m.usage),
		RecentByCategory:   recentByCategory,
		MostUsed:           mostUsed,
	}
}

// Reset clears every queue, pointer, and usage count.
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.usage = make(map[string]int)
	m.lastUsed = make(map[string]time.Time)
	m.recent = make(map[string][]string)
	m.last = make(map[string]string)
	log.Printf("[history] usage ledger reset")
}
