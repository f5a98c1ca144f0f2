// Package classify maps a free-text user turn to the (reaction, emotion,
// continuation) triple that drives content selection. The primary path asks
// the LLM; any transport or parse failure falls back to keyword rules so the
// conversation never stalls on model downtime.
package classify

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/kreators/easyslang/backend/internal/model/category"
)

// Triple 是一次分类的结果，三个轴各自保证是合法枚举值。
type Triple struct {
	Reaction     category.Reaction
	Emotion      category.Emotion
	Continuation category.Continuation
}

// Config 控制分类服务的行为。
type Config struct {
	Enabled bool
	Timeout time.Duration
}

// Service classifies user turns. A nil chat model degrades to fallback-only
// operation; Classify never returns an error.
type Service struct {
	enabled bool
	chain   compose.Runnable[map[string]any, *schema.Message]
	timeout time.Duration
}

// NewService 创建分类服务。chatModel 可复用进程内已有的模型实例。
func NewService(ctx context.Context, chatModel model.ChatModel, cfg Config) (*Service, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	svc := &Service{
		enabled: cfg.Enabled && chatModel != nil,
		timeout: timeout,
	}

	if !svc.enabled {
		return svc, nil
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage(classifierSystemPrompt),
		schema.UserMessage(classifierUserPrompt),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile classifier chain: %w", err)
	}

	svc.chain = runnable
	return svc, nil
}

// Enabled 返回 LLM 分类路径是否可用。
func (s *Service) Enabled() bool {
	return s != nil && s.enabled && s.chain != nil
}

// Classify returns the category triple for a user turn. The LLM path is tried
// first when enabled; every failure mode degrades to the keyword fallback and
// is logged, never surfaced.
func (s *Service) Classify(ctx context.Context, text, fromLang string) Triple {
	if !s.Enabled() {
		return fallbackTriple(text)
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	msg, err := s.chain.Invoke(callCtx, map[string]any{
		"user_text": strings.TrimSpace(text),
		"from_lang": fromLang,
	})
	if err != nil {
		log.Printf("[classify] chain invoke failed, using fallback: %v", err)
		return fallbackTriple(text)
	}
	if msg == nil || strings.TrimSpace(msg.Content) == "" {
		log.Printf("[classify] empty model output, using fallback")
		return fallbackTriple(text)
	}

	payload, err := parseTripleOutput(msg.Content)
	if err != nil {
		log.Printf("[classify] output parse failed, using fallback: %v", err)
		return fallbackTriple(text)
	}

	return payload.triple()
}

// triple validates each axis independently; an unrecognized name only resets
// that axis to its default, the other two survive.
func (p *triplePayload) triple() Triple {
	result := Triple{
		Reaction:     category.DefaultReaction,
		Emotion:      category.DefaultEmotion,
		Continuation: category.DefaultContinuation,
	}

	if reaction, ok := category.ParseReaction(p.Reaction); ok {
		result.Reaction = reaction
	} else {
		log.Printf("[classify] unknown reaction %q, using default", p.Reaction)
	}
	if emotion, ok := category.ParseEmotion(p.Emotion); ok {
		result.Emotion = emotion
	} else {
		log.Printf("[classify] unknown emotion %q, using default", p.Emotion)
	}
	if continuation, ok := category.ParseContinuation(p.Continuation); ok {
		result.Continuation = continuation
	} else {
		log.Printf("[classify] unknown continuation %q, using default", p.Continuation)
	}

	return result
}
