package audio

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/kreators/easyslang/backend/internal/storage"
)

// stubDecoder treats the downloaded bytes as raw PCM at a fixed rate so tests
// don't need real MP3 payloads.
func stubDecoder(rate int) decodeFunc {
	return func(data []byte) (*clip, error) {
		if len(data) == 0 {
			return nil, fmt.Errorf("empty fragment")
		}
		return &clip{sampleRate: rate, pcm: data}, nil
	}
}

func TestAssembleEmpty(t *testing.T) {
	a := NewAssembler(storage.NewMemory("https://cdn.example"))
	if url, ok := a.Assemble(context.Background(), nil); ok || url != "" {
		t.Fatalf("expected no audio for empty input, got %q", url)
	}
}

func TestAssembleSinglePassthrough(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	store := storage.NewMemory("https://cdn.example")
	a := NewAssembler(store, WithHTTPClient(srv.Client()))

	input := srv.URL + "/fragment.mp3"
	url, ok := a.Assemble(context.Background(), []string{input})
	if !ok || url != input {
		t.Fatalf("expected passthrough, got %q ok=%v", url, ok)
	}
	if hits.Load() != 0 {
		t.Fatalf("expected no downloads for a single fragment, got %d", hits.Load())
	}
	if store.GetCalls != 0 {
		t.Fatalf("expected no storage reads for a single fragment, got %d", store.GetCalls)
	}
	if got := len(store.Keys()); got != 0 {
		t.Fatalf("expected no uploads for a single fragment, got %d objects", got)
	}
}

func TestAssembleMultipleFragments(t *testing.T) {
	const rate = 8000
	// One second of stereo 16-bit PCM per fragment.
	fragment := make([]byte, rate*4)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(fragment)
	}))
	defer srv.Close()

	store := storage.NewMemory("https://cdn.example")
	a := NewAssembler(store,
		WithHTTPClient(srv.Client()),
		WithGap(500*time.Millisecond),
		withDecoder(stubDecoder(rate)),
	)

	inputs := []string{srv.URL + "/a.mp3", srv.URL + "/b.mp3"}
	url, ok := a.Assemble(context.Background(), inputs)
	if !ok {
		t.Fatal("expected combined audio")
	}
	for _, input := range inputs {
		if url == input {
			t.Fatalf("combined URL must differ from inputs, got %q", url)
		}
	}
	if !strings.Contains(url, combinedPrefix) {
		t.Fatalf("combined URL %q not under %q", url, combinedPrefix)
	}

	keys := store.Keys()
	if len(keys) != 1 {
		t.Fatalf("expected exactly one uploaded artifact, got %d", len(keys))
	}
	data, _ := store.Object(keys[0])

	// Duration must cover both fragments plus the inserted gap.
	pcmBytes := len(data) - wavHeaderSize
	gotSeconds := float64(pcmBytes) / float64(rate*4)
	wantAtLeast := 2.0 + 0.5
	if gotSeconds < wantAtLeast {
		t.Fatalf("combined duration %.2fs, want >= %.2fs", gotSeconds, wantAtLeast)
	}
}

func TestAssembleSkipsFailedFragment(t *testing.T) {
	const rate = 8000
	fragment := make([]byte, rate*4)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "missing") {
			http.NotFound(w, r)
			return
		}
		w.Write(fragment)
	}))
	defer srv.Close()

	store := storage.NewMemory("https://cdn.example")
	a := NewAssembler(store, WithHTTPClient(srv.Client()), withDecoder(stubDecoder(rate)))

	url, ok := a.Assemble(context.Background(), []string{srv.URL + "/ok.mp3", srv.URL + "/missing.mp3"})
	if !ok {
		t.Fatalf("expected combined audio despite one failed fragment, got ok=%v", ok)
	}
	if url == "" {
		t.Fatal("expected a URL")
	}
}

func TestAssembleAllFragmentsFail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	store := storage.NewMemory("https://cdn.example")
	a := NewAssembler(store, WithHTTPClient(srv.Client()))

	url, ok := a.Assemble(context.Background(), []string{srv.URL + "/a.mp3", srv.URL + "/b.mp3"})
	if ok || url != "" {
		t.Fatalf("expected no audio when every fragment fails, got %q", url)
	}
	if got := len(store.Keys()); got != 0 {
		t.Fatalf("expected no uploads, got %d", got)
	}
}

func TestResamplePCM(t *testing.T) {
	halved := resamplePCM(make([]byte, 16000*4), 16000, 8000)
	if len(halved) != 8000*4 {
		t.Fatalf("resample to half rate: got %d bytes, want %d", len(halved), 8000*4)
	}
	same := make([]byte, 1024)
	if got := resamplePCM(same, 8000, 8000); len(got) != len(same) {
		t.Fatalf("same-rate resample changed length: %d", len(got))
	}
}
