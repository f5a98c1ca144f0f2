package audio

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/hajimehoshi/go-mp3"
	"golang.org/x/sync/errgroup"

	"github.com/kreators/easyslang/backend/internal/storage"
)

const (
	defaultGap             = 500 * time.Millisecond
	defaultFragmentTimeout = 10 * time.Second
	combinedPrefix         = "flow_conversations/combined"
	pcmChannels            = 2 // go-mp3 always emits 16-bit stereo
)

// clip is the common decoded representation every fragment is normalized to.
type clip struct {
	sampleRate int
	pcm        []byte // 16-bit stereo little-endian
}

func (c *clip) frames() int { return len(c.pcm) / (pcmChannels * 2) }

type decodeFunc func(data []byte) (*clip, error)

func decodeMP3(data []byte) (*clip, error) {
	decoder, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("mp3 decode: %w", err)
	}
	pcm, err := io.ReadAll(decoder)
	if err != nil {
		return nil, fmt.Errorf("mp3 read: %w", err)
	}
	return &clip{sampleRate: decoder.SampleRate(), pcm: pcm}, nil
}

// Assembler downloads located fragments and produces one combined artifact.
type Assembler struct {
	store           storage.ObjectStore
	client          *http.Client
	decode          decodeFunc
	gap             time.Duration
	fragmentTimeout time.Duration
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithGap sets the silence inserted between fragments.
func WithGap(d time.Duration) Option {
	return func(a *Assembler) { a.gap = d }
}

// WithFragmentTimeout bounds each fragment download independently.
func WithFragmentTimeout(d time.Duration) Option {
	return func(a *Assembler) { a.fragmentTimeout = d }
}

// WithHTTPClient overrides the download client.
func WithHTTPClient(c *http.Client) Option {
	return func(a *Assembler) { a.client = c }
}

// withDecoder swaps the fragment decoder; tests use it to feed synthetic PCM.
func withDecoder(fn decodeFunc) Option {
	return func(a *Assembler) { a.decode = fn }
}

// NewAssembler 创建音频拼接器，store 用于上传合成产物。
func NewAssembler(store storage.ObjectStore, opts ...Option) *Assembler {
	a := &Assembler{
		store:           store,
		client:          &http.Client{},
		decode:          decodeMP3,
		gap:             defaultGap,
		fragmentTimeout: defaultFragmentTimeout,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble turns fragment URLs into one playable URL.
//
// Zero URLs yield no audio. One URL is returned unchanged without any network
// round-trip. Multiple URLs are downloaded concurrently with per-fragment
// timeouts; failed fragments are skipped, and as long as one decodes the rest
// are stitched with a fixed silence gap, re-encoded, uploaded under a
// timestamp+hash key, and served as a fresh URL. Only a total failure
// reports no audio.
func (a *Assembler) Assemble(ctx context.Context, urls []string) (string, bool) {
	switch len(urls) {
	case 0:
		return "", false
	case 1:
		return urls[0], true
	}

	clips := make([]*clip, len(urls))
	eg, fetchCtx := errgroup.WithContext(ctx)
	for i, u := range urls {
		eg.Go(func() error {
			data, err := a.fetch(fetchCtx, u)
			if err != nil {
				log.Printf("[audio] fragment download failed, skipping: url=%s err=%v", u, err)
				return nil
			}
			decoded, err := a.decode(data)
			if err != nil {
				log.Printf("[audio] fragment decode failed, skipping: url=%s err=%v", u, err)
				return nil
			}
			clips[i] = decoded
			return nil
		})
	}
	_ = eg.Wait()

	decoded := clips[:0:0]
	for _, c := range clips {
		if c != nil {
			decoded = append(decoded, c)
		}
	}
	if len(decoded) == 0 {
		log.Printf("[audio] all %d fragments failed, no combined audio", len(urls))
		return "", false
	}

	combined := a.concatenate(decoded)
	wav := encodeWAV(combined.pcm, combined.sampleRate, pcmChannels)

	sum := md5.Sum(wav)
	key := fmt.Sprintf("%s/%d_%s.wav", combinedPrefix, time.Now().Unix(), hex.EncodeToString(sum[:])[:12])

	url, err := a.store.Put(ctx, key, wav, "audio/wav")
	if err != nil {
		log.Printf("[audio] combined upload failed: key=%s err=%v", key, err)
		return "", false
	}
	return url, true
}

func (a *Assembler) fetch(ctx context.Context, url string) ([]byte, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, a.fragmentTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(fetchCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := a.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// concatenate joins clips at the first clip's sample rate with a silence gap
// between successive fragments.
func (a *Assembler) concatenate(clips []*clip) *clip {
	rate := clips[0].sampleRate
	gapFrames := int(a.gap.Seconds() * float64(rate))
	silence := make([]byte, gapFrames*pcmChannels*2)

	var out bytes.Buffer
	for i, c := range clips {
		if i > 0 {
			out.Write(silence)
		}
		out.Write(resamplePCM(c.pcm, c.sampleRate, rate))
	}
	return &clip{sampleRate: rate, pcm: out.Bytes()}
}

// resamplePCM converts 16-bit stereo PCM between sample rates by
// nearest-frame selection. Good enough for speech snippets; fragments are
// normally generated at one rate anyway.
func resamplePCM(pcm []byte, fromRate, toRate int) []byte {
	if fromRate == toRate || fromRate <= 0 {
		return pcm
	}
	const frameSize = pcmChannels * 2
	frames := len(pcm) / frameSize
	outFrames := int(int64(frames) * int64(toRate) / int64(fromRate))

	out := make([]byte, outFrames*frameSize)
	for i := 0; i < outFrames; i++ {
		src := int(int64(i) * int64(fromRate) / int64(toRate))
		copy(out[i*frameSize:(i+1)*frameSize], pcm[src*frameSize:(src+1)*frameSize])
	}
	return out
}
