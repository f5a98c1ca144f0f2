// Package category defines the three classification axes used to pick
// response content for a conversation turn: how to react, which emotion to
// explain, and how to continue the dialogue.
package category

import "strings"

// Reaction 表示对用户发言的即时反应类型。
type Reaction string

const (
	Empathy         Reaction = "empathy"
	Acceptance      Reaction = "acceptance"
	Surprise        Reaction = "surprise"
	Comfort         Reaction = "comfort"
	JoySharing      Reaction = "joy_sharing"
	Confirmation    Reaction = "confirmation"
	SlowQuestioning Reaction = "slow_questioning"
)

// Emotion 表示本轮要讲解的情绪主题。
type Emotion string

const (
	Happy    Emotion = "happy"
	Sad      Emotion = "sad"
	Angry    Emotion = "angry"
	Scared   Emotion = "scared"
	Shy      Emotion = "shy"
	Sleepy   Emotion = "sleepy"
	Upset    Emotion = "upset"
	Confused Emotion = "confused"
	Bored    Emotion = "bored"
	Love     Emotion = "love"
	Proud    Emotion = "proud"
	Nervous  Emotion = "nervous"
)

// Continuation 表示回复结尾引导对话走向的方式。
type Continuation string

const (
	Exploration Continuation = "emotion_exploration"
	Learning    Continuation = "emotion_learning"
	Transition  Continuation = "emotion_transition"
)

// Per-axis defaults used when classification cannot produce a valid value.
const (
	DefaultReaction     = Empathy
	DefaultEmotion      = Happy
	DefaultContinuation = Exploration
)

// Reactions lists every reaction category in a stable order.
func Reactions() []Reaction {
	return []Reaction{Empathy, Acceptance, Surprise, Comfort, JoySharing, Confirmation, SlowQuestioning}
}

// Emotions lists every emotion category in a stable order.
func Emotions() []Emotion {
	return []Emotion{Happy, Sad, Angry, Scared, Shy, Sleepy, Upset, Confused, Bored, Love, Proud, Nervous}
}

// Continuations lists every continuation category in a stable order.
func Continuations() []Continuation {
	return []Continuation{Exploration, Learning, Transition}
}

// ParseReaction 解析反应类别名，大小写不敏感。
func ParseReaction(raw string) (Reaction, bool) {
	normalized := Reaction(normalize(raw))
	for _, r := range Reactions() {
		if r == normalized {
			return r, true
		}
	}
	return "", false
}

// ParseEmotion 解析情绪类别名，大小写不敏感。
func ParseEmotion(raw string) (Emotion, bool) {
	normalized := Emotion(normalize(raw))
	for _, e := range Emotions() {
		if e == normalized {
			return e, true
		}
	}
	return "", false
}

// ParseContinuation 解析延续类别名，大小写不敏感。
func ParseContinuation(raw string) (Continuation, bool) {
	normalized := Continuation(normalize(raw))
	for _, c := range Continuations() {
		if c == normalized {
			return c, true
		}
	}
	return "", false
}

func normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// reactionEmotions maps a reaction to the emotions it plausibly responds to.
// Used by the fallback classifier when no emotion keyword matches.
var reactionEmotions = map[Reaction][]Emotion{
	Empathy:         {Sad, Upset, Confused, Nervous},
	Acceptance:      {Sad, Shy, Bored, Sleepy},
	Surprise:        {Happy, Scared, Confused},
	Comfort:         {Sad, Scared, Upset, Nervous},
	JoySharing:      {Happy, Proud, Love},
	Confirmation:    {Happy, Proud, Confused},
	SlowQuestioning: {Confused, Shy, Nervous, Bored},
}

// CandidateEmotions returns the emotions associated with a reaction. Never
// returns an empty slice.
func CandidateEmotions(r Reaction) []Emotion {
	if emotions, ok := reactionEmotions[r]; ok {
		return emotions
	}
	return []Emotion{DefaultEmotion}
}

// emotionContinuations maps an emotion to the continuations that suit it.
var emotionContinuations = map[Emotion][]Continuation{
	Happy:    {Exploration, Learning},
	Sad:      {Exploration, Transition},
	Angry:    {Transition, Exploration},
	Scared:   {Transition, Exploration},
	Shy:      {Exploration, Learning},
	Sleepy:   {Transition},
	Upset:    {Transition, Exploration},
	Confused: {Exploration, Learning},
	Bored:    {Transition, Learning},
	Love:     {Exploration, Learning},
	Proud:    {Learning, Exploration},
	Nervous:  {Transition, Exploration},
}

// CandidateContinuations returns the continuations associated with an emotion.
// Never returns an empty slice.
func CandidateContinuations(e Emotion) []Continuation {
	if continuations, ok := emotionContinuations[e]; ok {
		return continuations
	}
	return []Continuation{DefaultContinuation}
}
