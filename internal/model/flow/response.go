package flow

import "github.com/kreators/easyslang/backend/internal/model/category"

// Response is the envelope returned for every flow action. AudioURL is nil
// whenever no audio could be produced; the conversation still advances.
type Response struct {
	SessionID    string               `json:"session_id"`
	Stage        Stage                `json:"stage"`
	ResponseText string               `json:"response_text"`
	AudioURL     *string              `json:"audio_url"`
	TargetWords  []category.LearnWord `json:"target_words"`
	Completed    bool                 `json:"completed"`
	NextAction   string               `json:"next_action,omitempty"`
}

// Snapshot is the read-only session view returned by the session lookup
// endpoint.
type Snapshot struct {
	SessionID    string               `json:"session_id"`
	Topic        string               `json:"topic"`
	FromLang     string               `json:"from_lang"`
	ToLang       string               `json:"to_lang"`
	Stage        Stage                `json:"stage"`
	Turns        int                  `json:"turns"`
	LearnedWords []category.LearnWord `json:"learned_words"`
	UserInputs   []string             `json:"user_inputs"`
	CreatedAt    string               `json:"created_at"`
	UpdatedAt    string               `json:"updated_at"`
}
