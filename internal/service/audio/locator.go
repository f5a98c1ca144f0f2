// Package audio locates pre-rendered speech fragments for template strings
// and stitches them into one playable artifact per response.
package audio

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"path"
	"strings"

	"github.com/kreators/easyslang/backend/internal/storage"
	"github.com/kreators/easyslang/backend/internal/template"
)

// Index maps category path → source lang → target lang → ordered fragment
// URLs, mirroring the metadata the audio generation pipeline emits.
type Index map[string]map[string]map[string][]string

// MetadataKey is where the generation pipeline uploads its fragment index.
const MetadataKey = "conversation_starters/audio_metadata.json"

// TextHash returns the short content hash embedded in fragment filenames.
// It must match the generation-time scheme byte for byte: hex md5, first 8.
func TextHash(text string) string {
	sum := md5.Sum([]byte(text))
	return hex.EncodeToString(sum[:])[:8]
}

// Locator resolves (template text, category, language pair) to a fragment
// URL. The index is immutable after construction; lookups are lock-free.
type Locator struct {
	index Index
}

// NewLocator 基于已加载的索引创建定位器。
func NewLocator(index Index) *Locator {
	if index == nil {
		index = Index{}
	}
	return &Locator{index: index}
}

// Locate returns the fragment URL for the given template text. A hash match
// wins; if the language bucket exists but no filename embeds the hash, the
// first URL is returned as a soft fallback; an absent bucket is a miss.
// Lookup is idempotent and never fails hard.
func (l *Locator) Locate(text, categoryPath, fromLang, toLang string) (string, bool) {
	byFrom, ok := l.index[categoryPath]
	if !ok {
		return "", false
	}
	byTo, ok := byFrom[fromLang]
	if !ok {
		return "", false
	}
	urls := byTo[toLang]
	if len(urls) == 0 {
		return "", false
	}

	marker := "_" + TextHash(text) + "."
	for _, u := range urls {
		if u == "" {
			continue
		}
		if strings.Contains(path.Base(u), marker) {
			return u, true
		}
	}

	// Fragment was never generated for this exact text; serve the bucket's
	// first entry so the turn still has audio.
	for _, u := range urls {
		if u != "" {
			log.Printf("[audio] no hash match in %s/%s_%s, soft fallback", categoryPath, fromLang, toLang)
			return u, true
		}
	}
	return "", false
}

// metadataFile is the on-storage shape of the generated fragment index.
type metadataFile struct {
	Greetings     map[string]map[string][]string            `json:"greetings"`
	Topics        map[string]map[string]map[string][]string `json:"topics"`
	Reactions     map[string]map[string]map[string][]string `json:"reactions"`
	Emotions      map[string]map[string]map[string][]string `json:"emotions"`
	Continuations map[string]map[string]map[string][]string `json:"continuations"`
	Finishers     map[string]map[string]map[string][]string `json:"finishers"`
}

// LoadIndex reads the generated fragment metadata from object storage.
// Returns storage.ErrNotFound when no metadata has been generated yet.
func LoadIndex(ctx context.Context, store storage.ObjectStore, key string) (Index, error) {
	data, err := store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("load audio metadata: %w", err)
	}

	var meta metadataFile
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("decode audio metadata: %w", err)
	}

	index := Index{}
	if meta.Greetings != nil {
		index[template.CategoryGreetings] = meta.Greetings
	}
	mergeSubbed(index, template.CategoryTopics, meta.Topics)
	mergeSubbed(index, template.CategoryReactions, meta.Reactions)
	mergeSubbed(index, template.CategoryEmotions, meta.Emotions)
	mergeSubbed(index, template.CategoryContinuations, meta.Continuations)
	mergeSubbed(index, template.CategoryFinishers, meta.Finishers)
	return index, nil
}

func mergeSubbed(index Index, categoryName string, entries map[string]map[string]map[string][]string) {
	for sub, byFrom := range entries {
		index[categoryName+"/"+sub] = byFrom
	}
}

// BuildIndex synthesizes a fragment index from the seeded template pools,
// assuming the standard asset layout under assetBase. Used when no generated
// metadata exists yet so lookups still resolve deterministically.
func BuildIndex(pools map[template.Key][]string, assetBase string) Index {
	assetBase = strings.TrimRight(assetBase, "/")
	index := Index{}

	for key, templates := range pools {
		categoryPath := key.AssetPath()
		byFrom, ok := index[categoryPath]
		if !ok {
			byFrom = map[string]map[string][]string{}
			index[categoryPath] = byFrom
		}
		byTo, ok := byFrom[key.From]
		if !ok {
			byTo = map[string][]string{}
			byFrom[key.From] = byTo
		}

		urls := make([]string, 0, len(templates))
		for i, text := range templates {
			urls = append(urls, fmt.Sprintf("%s/conversation_starters/%s/%s_%s/%d_%s.mp3",
				assetBase, categoryPath, key.From, key.To, i, TextHash(text)))
		}
		byTo[key.To] = urls
	}
	return index
}
