package flow

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kreators/easyslang/backend/internal/model/category"
	model "github.com/kreators/easyslang/backend/internal/model/flow"
	"github.com/kreators/easyslang/backend/internal/service/classify"
	"github.com/kreators/easyslang/backend/internal/service/history"
	"github.com/kreators/easyslang/backend/internal/template"
)

type stubClassifier struct {
	triple classify.Triple
}

func (s stubClassifier) Classify(ctx context.Context, text, fromLang string) classify.Triple {
	return s.triple
}

type stubLocator struct{}

func (stubLocator) Locate(text, categoryPath, fromLang, toLang string) (string, bool) {
	return "https://cdn.example/" + categoryPath + "/fragment.mp3", true
}

type missLocator struct{}

func (missLocator) Locate(text, categoryPath, fromLang, toLang string) (string, bool) {
	return "", false
}

type stubAssembler struct {
	calls [][]string
}

func (s *stubAssembler) Assemble(ctx context.Context, urls []string) (string, bool) {
	s.calls = append(s.calls, urls)
	if len(urls) == 0 {
		return "", false
	}
	return "https://cdn.example/combined.wav", true
}

func newTestService(maxTurns int) (*Service, *stubAssembler) {
	assembler := &stubAssembler{}
	svc := NewService(
		template.NewStore(template.Seed()),
		history.NewManager(history.DefaultCapacity),
		stubClassifier{triple: classify.Triple{
			Reaction:     category.Comfort,
			Emotion:      category.Sad,
			Continuation: category.Exploration,
		}},
		stubLocator{},
		assembler,
		maxTurns,
	)
	return svc, assembler
}

func TestPickTopicUnknown(t *testing.T) {
	svc, _ := newTestService(0)
	if _, err := svc.PickTopic(context.Background(), "quantum physics", template.LangKorean, template.LangEnglish); !errors.Is(err, ErrUnknownTopic) {
		t.Fatalf("expected ErrUnknownTopic, got %v", err)
	}
}

func TestPickTopicStartsSession(t *testing.T) {
	svc, _ := newTestService(0)

	resp, err := svc.PickTopic(context.Background(), "feelings", template.LangKorean, template.LangEnglish)
	if err != nil {
		t.Fatalf("PickTopic err: %v", err)
	}
	if resp.SessionID == "" {
		t.Fatal("expected a session id")
	}
	if resp.Stage != model.StageStarter {
		t.Fatalf("stage = %s, want starter", resp.Stage)
	}
	if resp.ResponseText == "" {
		t.Fatal("expected starter text")
	}
	if resp.AudioURL == nil {
		t.Fatal("expected starter audio")
	}
	if resp.Completed {
		t.Fatal("fresh session must not be completed")
	}
	if resp.TargetWords == nil || len(resp.TargetWords) != 0 {
		t.Fatalf("starter must carry an empty word list, got %v", resp.TargetWords)
	}

	snap, err := svc.GetSession(resp.SessionID)
	if err != nil {
		t.Fatalf("GetSession err: %v", err)
	}
	if snap.Turns != 0 || snap.Topic != "feelings" {
		t.Fatalf("unexpected snapshot: turns=%d topic=%s", snap.Turns, snap.Topic)
	}
}

func TestVoiceInputParaphraseTurn(t *testing.T) {
	svc, assembler := newTestService(0)
	start, _ := svc.PickTopic(context.Background(), "sad", template.LangKorean, template.LangEnglish)

	resp, err := svc.VoiceInput(context.Background(), start.SessionID, "오늘 너무 슬펐어요")
	if err != nil {
		t.Fatalf("VoiceInput err: %v", err)
	}
	if resp.Stage != model.StageParaphrase {
		t.Fatalf("stage = %s, want paraphrase", resp.Stage)
	}
	if resp.Completed {
		t.Fatal("intermediate turn must not complete the session")
	}
	if len(resp.TargetWords) == 0 {
		t.Fatal("paraphrase turn must teach words")
	}
	if resp.AudioURL == nil {
		t.Fatal("expected combined audio")
	}
	// Three fragments: reaction, emotion explainer, continuation.
	if len(assembler.calls) != 1 || len(assembler.calls[0]) != 3 {
		t.Fatalf("expected one assembly of 3 fragments, got %v", assembler.calls)
	}
	if got := len(strings.Fields(resp.ResponseText)); got < 3 {
		t.Fatalf("paraphrase text suspiciously short: %q", resp.ResponseText)
	}

	snap, _ := svc.GetSession(start.SessionID)
	if snap.Turns != 1 {
		t.Fatalf("turns = %d, want 1", snap.Turns)
	}
	if len(snap.UserInputs) != 1 {
		t.Fatalf("user inputs = %d, want 1", len(snap.UserInputs))
	}
}

func TestVoiceInputTurnCapFinishes(t *testing.T) {
	svc, _ := newTestService(0)
	start, _ := svc.PickTopic(context.Background(), "happy", template.LangKorean, template.LangEnglish)

	var resp *model.Response
	var err error
	for i := 0; i < DefaultMaxTurns; i++ {
		resp, err = svc.VoiceInput(context.Background(), start.SessionID, "another thing happened")
		if err != nil {
			t.Fatalf("turn %d err: %v", i+1, err)
		}
		if i < DefaultMaxTurns-1 {
			if resp.Completed || resp.Stage != model.StageParaphrase {
				t.Fatalf("turn %d: stage=%s completed=%v", i+1, resp.Stage, resp.Completed)
			}
		}
	}

	if resp.Stage != model.StageFinisher {
		t.Fatalf("final stage = %s, want finisher", resp.Stage)
	}
	if !resp.Completed {
		t.Fatal("capped turn must complete the session")
	}
	if resp.NextAction != string(model.ActionRestart) {
		t.Fatalf("next action = %s, want restart", resp.NextAction)
	}

	snap, _ := svc.GetSession(start.SessionID)
	if snap.Turns != DefaultMaxTurns {
		t.Fatalf("turns = %d, want %d", snap.Turns, DefaultMaxTurns)
	}

	// A completed session only accepts restart.
	if _, err := svc.VoiceInput(context.Background(), start.SessionID, "one more"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition after completion, got %v", err)
	}
}

func TestVocabularyNotRepeatedAcrossTurns(t *testing.T) {
	svc, _ := newTestService(0)
	start, _ := svc.PickTopic(context.Background(), "sad", template.LangKorean, template.LangEnglish)

	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		resp, err := svc.VoiceInput(context.Background(), start.SessionID, "it still hurts")
		if err != nil {
			t.Fatalf("turn %d err: %v", i+1, err)
		}
		for _, w := range resp.TargetWords {
			if seen[w.Word] {
				t.Fatalf("word %q taught twice", w.Word)
			}
			seen[w.Word] = true
		}
	}
}

func TestVoiceInputValidation(t *testing.T) {
	svc, _ := newTestService(0)
	start, _ := svc.PickTopic(context.Background(), "feelings", template.LangKorean, template.LangEnglish)

	if _, err := svc.VoiceInput(context.Background(), start.SessionID, "   "); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
	if _, err := svc.VoiceInput(context.Background(), "no-such-session", "hello"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestRestartResetsSession(t *testing.T) {
	svc, _ := newTestService(2)
	start, _ := svc.PickTopic(context.Background(), "proud", template.LangKorean, template.LangEnglish)

	svc.VoiceInput(context.Background(), start.SessionID, "I won the contest")
	final, _ := svc.VoiceInput(context.Background(), start.SessionID, "thank you")
	if !final.Completed {
		t.Fatal("expected completion at the cap")
	}

	resp, err := svc.Restart(context.Background(), start.SessionID)
	if err != nil {
		t.Fatalf("Restart err: %v", err)
	}
	if resp.Stage != model.StageStarter || resp.Completed {
		t.Fatalf("restart: stage=%s completed=%v", resp.Stage, resp.Completed)
	}

	snap, _ := svc.GetSession(start.SessionID)
	if snap.Turns != 0 || len(snap.LearnedWords) != 0 || len(snap.UserInputs) != 0 {
		t.Fatalf("restart did not reset: turns=%d words=%d inputs=%d",
			snap.Turns, len(snap.LearnedWords), len(snap.UserInputs))
	}
	if snap.Topic != "proud" {
		t.Fatalf("restart must keep the topic, got %s", snap.Topic)
	}
}

func TestDeleteSession(t *testing.T) {
	svc, _ := newTestService(0)
	start, _ := svc.PickTopic(context.Background(), "feelings", template.LangKorean, template.LangEnglish)

	if err := svc.DeleteSession(start.SessionID); err != nil {
		t.Fatalf("DeleteSession err: %v", err)
	}
	if _, err := svc.GetSession(start.SessionID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after delete, got %v", err)
	}
	if err := svc.DeleteSession(start.SessionID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound on double delete, got %v", err)
	}
}

func TestMissingAudioStillAdvances(t *testing.T) {
	assembler := &stubAssembler{}
	svc := NewService(
		template.NewStore(template.Seed()),
		history.NewManager(history.DefaultCapacity),
		stubClassifier{triple: classify.Triple{
			Reaction:     category.Empathy,
			Emotion:      category.Happy,
			Continuation: category.Learning,
		}},
		missLocator{},
		assembler,
		0,
	)

	start, err := svc.PickTopic(context.Background(), "happy", template.LangKorean, template.LangEnglish)
	if err != nil {
		t.Fatalf("PickTopic err: %v", err)
	}
	if start.AudioURL != nil {
		t.Fatal("starter audio should be nil when no fragment resolves")
	}

	resp, err := svc.VoiceInput(context.Background(), start.SessionID, "everything is great")
	if err != nil {
		t.Fatalf("VoiceInput err: %v", err)
	}
	if resp.AudioURL != nil {
		t.Fatal("paraphrase audio should be nil when no fragments resolve")
	}
	if resp.ResponseText == "" || len(resp.TargetWords) == 0 {
		t.Fatal("text and words must still be produced without audio")
	}
}

func TestUnseededLanguagePairStillSpeaks(t *testing.T) {
	svc, _ := newTestService(0)

	// English→Korean has no seeded pools; fallback lines keep the turn alive.
	start, err := svc.PickTopic(context.Background(), "feelings", template.LangEnglish, template.LangKorean)
	if err != nil {
		t.Fatalf("PickTopic err: %v", err)
	}
	if strings.TrimSpace(start.ResponseText) == "" {
		t.Fatal("starter must produce text for an unseeded language pair")
	}

	resp, err := svc.VoiceInput(context.Background(), start.SessionID, "I feel a little strange today")
	if err != nil {
		t.Fatalf("VoiceInput err: %v", err)
	}
	if strings.TrimSpace(resp.ResponseText) == "" {
		t.Fatal("paraphrase must produce text for an unseeded language pair")
	}
	if len(resp.TargetWords) == 0 {
		t.Fatal("paraphrase must still teach words")
	}
}

func TestTopicsListsEmotionsAndStandingTopics(t *testing.T) {
	svc, _ := newTestService(0)
	topics := svc.Topics()
	if len(topics) != 3+len(category.Emotions()) {
		t.Fatalf("topics = %d, want %d", len(topics), 3+len(category.Emotions()))
	}
	if topics[0] != "favorites" || topics[1] != "feelings" || topics[2] != "ootd" {
		t.Fatalf("standing topics out of order: %v", topics[:3])
	}
}
