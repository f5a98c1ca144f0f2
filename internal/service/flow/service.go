// Package flow implements the staged conversation engine: topic starters,
// classified paraphrase turns, and a finishing farewell once the turn cap is
// reached.
package flow

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kreators/easyslang/backend/internal/model/category"
	model "github.com/kreators/easyslang/backend/internal/model/flow"
	"github.com/kreators/easyslang/backend/internal/service/classify"
	"github.com/kreators/easyslang/backend/internal/service/history"
	"github.com/kreators/easyslang/backend/internal/template"
)

// DefaultMaxTurns is the voice-input cap after which the session finishes.
const DefaultMaxTurns = 7

// wordsPerTurn is how many new vocabulary entries a paraphrase turn teaches.
const wordsPerTurn = 3

var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrInvalidTransition = errors.New("session already completed, restart it first")
	ErrUnknownTopic      = errors.New("unknown topic")
	ErrEmptyInput        = errors.New("empty user input")
)

// Classifier decides the three response axes for a user utterance.
type Classifier interface {
	Classify(ctx context.Context, text, fromLang string) classify.Triple
}

// Locator resolves a template text to its pre-rendered audio fragment URL.
type Locator interface {
	Locate(text, categoryPath, fromLang, toLang string) (string, bool)
}

// Assembler combines fragment URLs into one playable URL.
type Assembler interface {
	Assemble(ctx context.Context, urls []string) (string, bool)
}

// Service drives the conversation state machine. Sessions live in memory;
// each one is mutated under its own lock so slow turns don't serialize the
// whole process.
type Service struct {
	templates  *template.Store
	history    *history.Manager
	classifier Classifier
	locator    Locator
	assembler  Assembler
	maxTurns   int

	mu       sync.RWMutex
	sessions map[string]*session
}

type session struct {
	mu   sync.Mutex
	data model.Session
}

// NewService 创建会话流程服务。maxTurns 非正时使用 DefaultMaxTurns。
func NewService(templates *template.Store, hist *history.Manager, classifier Classifier, locator Locator, assembler Assembler, maxTurns int) *Service {
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}
	return &Service{
		templates:  templates,
		history:    hist,
		classifier: classifier,
		locator:    locator,
		assembler:  assembler,
		maxTurns:   maxTurns,
		sessions:   make(map[string]*session),
	}
}

// Topics lists the selectable conversation topics: the standing ones first,
// then one per emotion.
func (s *Service) Topics() []string {
	topics := []string{"favorites", "feelings", "ootd"}
	for _, e := range category.Emotions() {
		topics = append(topics, string(e))
	}
	return topics
}

func (s *Service) validTopic(topic string) bool {
	for _, t := range s.Topics() {
		if t == topic {
			return true
		}
	}
	return false
}

// PickTopic creates a session and returns its opening starter. The starter
// does not consume a turn.
func (s *Service) PickTopic(ctx context.Context, topic, fromLang, toLang string) (*model.Response, error) {
	if !s.validTopic(topic) {
		return nil, ErrUnknownTopic
	}

	now := time.Now()
	sess := &session{data: model.Session{
		ID:        uuid.NewString(),
		Topic:     topic,
		FromLang:  fromLang,
		ToLang:    toLang,
		Stage:     model.StageStarter,
		CreatedAt: now,
		UpdatedAt: now,
	}}

	resp := s.starterResponse(&sess.data)

	s.mu.Lock()
	s.sessions[sess.data.ID] = sess
	s.mu.Unlock()

	log.Printf("[flow] session created: id=%s topic=%s langs=%s→%s", sess.data.ID, topic, fromLang, toLang)
	return resp, nil
}

// VoiceInput advances the session by one turn. Turns below the cap produce a
// paraphrase (reaction + emotion explainer + continuation); the capped turn
// produces the topic finisher and marks the session completed.
func (s *Service) VoiceInput(ctx context.Context, sessionID, userText string) (*model.Response, error) {
	if strings.TrimSpace(userText) == "" {
		return nil, ErrEmptyInput
	}
	sess, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	data := &sess.data
	if data.Stage == model.StageFinisher {
		return nil, ErrInvalidTransition
	}
	data.Turns++
	data.UserInputs = append(data.UserInputs, userText)

	if data.Turns >= s.maxTurns {
		return s.finisherResponse(data, userText), nil
	}
	return s.paraphraseResponse(ctx, data, userText), nil
}

// Restart resets the session to its starter stage, keeping the topic and
// language pair but dropping turns, inputs, and learned words.
func (s *Service) Restart(ctx context.Context, sessionID string) (*model.Response, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	data := &sess.data
	data.Stage = model.StageStarter
	data.Turns = 0
	data.LearnedWords = nil
	data.UserInputs = nil

	log.Printf("[flow] session restarted: id=%s topic=%s", data.ID, data.Topic)
	return s.starterResponse(data), nil
}

// GetSession returns a read-only snapshot of the session.
func (s *Service) GetSession(sessionID string) (*model.Snapshot, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	data := sess.data
	return &model.Snapshot{
		SessionID:    data.ID,
		Topic:        data.Topic,
		FromLang:     data.FromLang,
		ToLang:       data.ToLang,
		Stage:        data.Stage,
		Turns:        data.Turns,
		LearnedWords: append([]category.LearnWord{}, data.LearnedWords...),
		UserInputs:   append([]string{}, data.UserInputs...),
		CreatedAt:    data.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    data.UpdatedAt.Format(time.RFC3339),
	}, nil
}

// DeleteSession evicts the session from memory.
func (s *Service) DeleteSession(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, sessionID)
	log.Printf("[flow] session deleted: id=%s", sessionID)
	return nil
}

func (s *Service) lookup(sessionID string) (*session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// starterResponse picks a topic starter and its single pre-rendered fragment.
// Caller holds the session lock (or exclusively owns a fresh session).
func (s *Service) starterResponse(data *model.Session) *model.Response {
	key := template.Key{Category: template.CategoryTopics, Sub: data.Topic, From: data.FromLang, To: data.ToLang}
	text := s.history.Select(s.templates.Pool(key), key.AssetPath())

	var audioURL *string
	if url, ok := s.locator.Locate(text, key.AssetPath(), data.FromLang, data.ToLang); ok {
		audioURL = &url
	}

	data.Stage = model.StageStarter
	data.UpdatedAt = time.Now()
	data.History = append(data.History, model.TurnLog{
		Turn:      data.Turns,
		Stage:     model.StageStarter,
		Response:  text,
		Timestamp: data.UpdatedAt,
	})

	return &model.Response{
		SessionID:    data.ID,
		Stage:        model.StageStarter,
		ResponseText: text,
		AudioURL:     audioURL,
		TargetWords:  []category.LearnWord{},
		NextAction:   string(model.ActionVoiceInput),
	}
}

func (s *Service) paraphraseResponse(ctx context.Context, data *model.Session, userText string) *model.Response {
	triple := s.classifier.Classify(ctx, userText, data.FromLang)
	log.Printf("[flow] turn classified: id=%s turn=%d reaction=%s emotion=%s continuation=%s",
		data.ID, data.Turns, triple.Reaction, triple.Emotion, triple.Continuation)

	parts := []struct {
		category string
		sub      string
	}{
		{template.CategoryReactions, string(triple.Reaction)},
		{template.CategoryEmotions, string(triple.Emotion)},
		{template.CategoryContinuations, string(triple.Continuation)},
	}

	texts := make([]string, 0, len(parts))
	fragments := make([]string, 0, len(parts))
	for _, p := range parts {
		key := template.Key{Category: p.category, Sub: p.sub, From: data.FromLang, To: data.ToLang}
		text := s.history.Select(s.templates.Pool(key), key.AssetPath())
		if text == "" {
			continue
		}
		texts = append(texts, text)
		if url, ok := s.locator.Locate(text, key.AssetPath(), data.FromLang, data.ToLang); ok {
			fragments = append(fragments, url)
		}
	}
	responseText := strings.Join(texts, " ")

	var audioURL *string
	if url, ok := s.assembler.Assemble(ctx, fragments); ok {
		audioURL = &url
	}

	words := s.teachWords(data, triple.Emotion)

	data.Stage = model.StageParaphrase
	data.UpdatedAt = time.Now()
	data.History = append(data.History, model.TurnLog{
		Turn:      data.Turns,
		Stage:     model.StageParaphrase,
		UserInput: userText,
		Response:  responseText,
		Timestamp: data.UpdatedAt,
	})

	return &model.Response{
		SessionID:    data.ID,
		Stage:        model.StageParaphrase,
		ResponseText: responseText,
		AudioURL:     audioURL,
		TargetWords:  words,
		NextAction:   string(model.ActionVoiceInput),
	}
}

func (s *Service) finisherResponse(data *model.Session, userText string) *model.Response {
	key := template.Key{Category: template.CategoryFinishers, Sub: data.Topic, From: data.FromLang, To: data.ToLang}
	text := s.history.Select(s.templates.Pool(key), key.AssetPath())

	var audioURL *string
	if url, ok := s.locator.Locate(text, key.AssetPath(), data.FromLang, data.ToLang); ok {
		audioURL = &url
	}

	data.Stage = model.StageFinisher
	data.UpdatedAt = time.Now()
	data.History = append(data.History, model.TurnLog{
		Turn:      data.Turns,
		Stage:     model.StageFinisher,
		UserInput: userText,
		Response:  text,
		Timestamp: data.UpdatedAt,
	})

	log.Printf("[flow] session completed: id=%s turns=%d", data.ID, data.Turns)
	return &model.Response{
		SessionID:    data.ID,
		Stage:        model.StageFinisher,
		ResponseText: text,
		AudioURL:     audioURL,
		TargetWords:  []category.LearnWord{},
		Completed:    true,
		NextAction:   string(model.ActionRestart),
	}
}

// teachWords picks up to wordsPerTurn vocabulary entries for the emotion that
// the session hasn't learned yet, and records them on the session.
func (s *Service) teachWords(data *model.Session, emotion category.Emotion) []category.LearnWord {
	learned := make(map[string]bool, len(data.LearnedWords))
	for _, w := range data.LearnedWords {
		learned[w.Word] = true
	}

	words := make([]category.LearnWord, 0, wordsPerTurn)
	for _, w := range category.Vocabulary(emotion) {
		if learned[w.Word] {
			continue
		}
		words = append(words, w)
		if len(words) == wordsPerTurn {
			break
		}
	}
	data.LearnedWords = append(data.LearnedWords, words...)
	return words
}
