// Package template provides the read-only localized template pools the flow
// engine selects response fragments from. Pools are loaded once at process
// start and never mutated afterwards, so no locking is required.
package template

import "fmt"

// Top-level pool categories. Sub narrows a category to a topic or a
// classification value, e.g. {Category: CategoryReactions, Sub: "comfort"}.
const (
	CategoryGreetings     = "greetings"
	CategoryTopics        = "topics"
	CategoryReactions     = "reactions"
	CategoryEmotions      = "emotions"
	CategoryContinuations = "continuations"
	CategoryFinishers     = "finishers"
)

// Key addresses one localized template pool.
type Key struct {
	Category string
	Sub      string
	From     string
	To       string
}

// AssetPath returns the object-storage path segment for this pool, matching
// the layout the audio generation pipeline writes fragments under.
func (k Key) AssetPath() string {
	if k.Sub == "" {
		return k.Category
	}
	return k.Category + "/" + k.Sub
}

// Store exposes template pool lookups.
type Store struct {
	pools map[Key][]string
}

// NewStore returns a Store over the supplied pools. The map is referenced,
// not copied; callers must not mutate it afterwards.
func NewStore(pools map[Key][]string) *Store {
	return &Store{pools: pools}
}

// Pool returns the templates for key. The result is never empty: a missing
// (category, sub, language-pair) combination yields a single generic fallback
// line so the conversation can always produce some text.
func (s *Store) Pool(key Key) []string {
	if templates, ok := s.pools[key]; ok && len(templates) > 0 {
		return templates
	}
	return []string{fallbackLine(key)}
}

// Has reports whether an exact pool exists for key.
func (s *Store) Has(key Key) bool {
	templates, ok := s.pools[key]
	return ok && len(templates) > 0
}

// Keys returns every seeded pool key. Used to pre-build the audio fragment
// index when no generated metadata is available.
func (s *Store) Keys() []Key {
	keys := make([]Key, 0, len(s.pools))
	for key := range s.pools {
		keys = append(keys, key)
	}
	return keys
}

func fallbackLine(key Key) string {
	switch key.Category {
	case CategoryTopics, CategoryGreetings:
		if key.Sub != "" {
			return fmt.Sprintf("Hello! I can see you're feeling %s. Let's talk about it!", key.Sub)
		}
		return "Hello! Let's talk about how you feel today."
	case CategoryFinishers:
		return "Thank you for sharing your feelings with me today. You did great!"
	case CategoryEmotions:
		return fmt.Sprintf("That sounds like you might be feeling %s.", key.Sub)
	case CategoryContinuations:
		return "Can you tell me a little more about that?"
	default:
		return "I hear you. Thank you for telling me."
	}
}
