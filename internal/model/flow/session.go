// Package flow holds the data model for the staged language-learning
// conversation: sessions, stages, actions, and the per-turn response envelope.
package flow

import (
	"time"

	"github.com/kreators/easyslang/backend/internal/model/category"
)

// Stage 表示会话状态机中的当前阶段。
type Stage string

const (
	StageStarter    Stage = "starter"
	StageParaphrase Stage = "paraphrase"
	StageFinisher   Stage = "finisher"
)

// Action 表示一次入站请求要执行的操作。
type Action string

const (
	ActionPickTopic  Action = "pick_topic"
	ActionVoiceInput Action = "voice_input"
	ActionRestart    Action = "restart"
)

// ParseAction 解析动作名。
func ParseAction(raw string) (Action, bool) {
	switch Action(raw) {
	case ActionPickTopic, ActionVoiceInput, ActionRestart:
		return Action(raw), true
	}
	return "", false
}

// TurnLog is one audit entry appended on every transition.
type TurnLog struct {
	Turn      int       `json:"turn"`
	Stage     Stage     `json:"stage"`
	UserInput string    `json:"userInput,omitempty"`
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}

// Session captures the state of one staged conversation. It is owned
// exclusively by the flow service and mutated only under its per-session lock.
type Session struct {
	ID           string               `json:"id"`
	Topic        string               `json:"topic"`
	FromLang     string               `json:"fromLang"`
	ToLang       string               `json:"toLang"`
	Stage        Stage                `json:"stage"`
	Turns        int                  `json:"turns"`
	LearnedWords []category.LearnWord `json:"learnedWords"`
	UserInputs   []string             `json:"userInputs"`
	History      []TurnLog            `json:"history"`
	CreatedAt    time.Time            `json:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt"`
}
