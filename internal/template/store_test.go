package template_test

import (
	"strings"
	"testing"

	"github.com/kreators/easyslang/backend/internal/template"
)

func TestPoolSeededPair(t *testing.T) {
	store := template.NewStore(template.Seed())
	key := template.Key{Category: template.CategoryTopics, Sub: "feelings", From: template.LangKorean, To: template.LangEnglish}

	if !store.Has(key) {
		t.Fatal("seeded pool should exist")
	}
	pool := store.Pool(key)
	if len(pool) < 2 {
		t.Fatalf("seeded pool suspiciously small: %d", len(pool))
	}
}

func TestPoolUnseededPairFallsBack(t *testing.T) {
	store := template.NewStore(template.Seed())
	// English→Korean is not seeded; the store must still answer.
	key := template.Key{Category: template.CategoryTopics, Sub: "happy", From: template.LangEnglish, To: template.LangKorean}

	if store.Has(key) {
		t.Fatal("unseeded pool should not report as present")
	}
	pool := store.Pool(key)
	if len(pool) != 1 {
		t.Fatalf("expected a single fallback line, got %d", len(pool))
	}
	if strings.TrimSpace(pool[0]) == "" {
		t.Fatal("fallback line must not be empty")
	}
	if !strings.Contains(pool[0], "happy") {
		t.Fatalf("topic fallback should mention the sub, got %q", pool[0])
	}
}

func TestPoolFallbackCoversEveryCategory(t *testing.T) {
	store := template.NewStore(nil)
	keys := []template.Key{
		{Category: template.CategoryGreetings},
		{Category: template.CategoryTopics, Sub: "sad"},
		{Category: template.CategoryReactions, Sub: "comfort"},
		{Category: template.CategoryEmotions, Sub: "sad"},
		{Category: template.CategoryContinuations, Sub: "emotion_learning"},
		{Category: template.CategoryFinishers, Sub: "sad"},
	}

	for _, key := range keys {
		pool := store.Pool(key)
		if len(pool) != 1 || strings.TrimSpace(pool[0]) == "" {
			t.Fatalf("key %+v: expected one non-empty fallback line, got %v", key, pool)
		}
	}
}

func TestAssetPath(t *testing.T) {
	key := template.Key{Category: template.CategoryReactions, Sub: "empathy"}
	if got := key.AssetPath(); got != "reactions/empathy" {
		t.Fatalf("asset path = %q", got)
	}
	bare := template.Key{Category: template.CategoryGreetings}
	if got := bare.AssetPath(); got != "greetings" {
		t.Fatalf("bare asset path = %q", got)
	}
}
