package classify

import (
	"encoding/json"
	"fmt"
	"strings"
)

const classifierSystemPrompt = `You are a classifier for an emotion-themed language-learning conversation.
Given one user message, choose exactly one value per axis.

Axis "reaction" (how the tutor should react first):
- empathy: the user shares an everyday experience or feeling; mirror it.
- acceptance: the user expresses self-doubt or something they feel bad about; validate it.
- surprise: the user shares unexpected or remarkable news.
- comfort: the user is in pain, grief, fear, or distress; console them.
- joy_sharing: the user shares good news or happiness; celebrate with them.
- confirmation: the user states something factual or asks to be understood; reflect it back.
- slow_questioning: the message is very short, hesitant, or unclear; ask gently for more.

Axis "emotion" (which feeling to explain this turn):
happy, sad, angry, scared, shy, sleepy, upset, confused, bored, love, proud, nervous.
Pick the emotion most present in the message.

Axis "continuation" (how to steer the next turn):
- emotion_exploration: ask the user to dig deeper into the feeling.
- emotion_learning: teach vocabulary for the feeling.
- emotion_transition: guide gently toward a lighter subject.

Respond with only a JSON object shaped like
{{"reaction": "...", "emotion": "...", "continuation": "..."}}
using the exact names above. No prose, no code fences.`

const classifierUserPrompt = `User message (source language {from_lang}):
{user_text}`

// triplePayload is the decoded shape of the model's JSON answer.
type triplePayload struct {
	Reaction     string `json:"reaction"`
	Emotion      string `json:"emotion"`
	Continuation string `json:"continuation"`
}

// parseTripleOutput extracts and decodes the one JSON object in the model
// output. All "try simpler extraction" behavior lives here: the outermost
// brace pair is taken so code fences or leading prose don't break decoding.
func parseTripleOutput(content string) (*triplePayload, error) {
	trimmed := strings.TrimSpace(content)
	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start == -1 || end == -1 || end <= start {
		return nil, fmt.Errorf("missing json object")
	}

	payload := &triplePayload{}
	if err := json.Unmarshal([]byte(trimmed[start:end+1]), payload); err != nil {
		return nil, err
	}
	return payload, nil
}
