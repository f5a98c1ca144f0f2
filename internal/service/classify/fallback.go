package classify

import (
	"math/rand"
	"strings"
	"unicode/utf8"

	"github.com/kreators/easyslang/backend/internal/model/category"
)

// Messages shorter than this (in runes) are treated as hesitant input.
const shortMessageRunes = 10

var reactionKeywords = map[category.Reaction][]string{
	category.JoySharing: {
		"기뻐", "기쁘", "좋아", "행복", "신나", "최고", "대박", "합격", "성공",
		"happy", "great", "awesome", "amazing", "yay", "glad", "excited", "passed",
	},
	category.Comfort: {
		"슬퍼", "슬프", "아파", "아프", "힘들", "울었", "눈물", "괴로", "무서", "두려",
		"sad", "hurt", "pain", "cry", "cried", "scared", "afraid", "lonely", "miss",
	},
	category.Surprise: {
		"깜짝", "놀랐", "놀라", "갑자기", "믿을 수 없", "세상에", "헐",
		"surprised", "suddenly", "unexpected", "can't believe", "shocking", "wow",
	},
	category.SlowQuestioning: {
		"글쎄", "잘 모르", "모르겠", "음...", "그냥", "아마",
		"maybe", "not sure", "i guess", "dunno", "hmm", "perhaps",
	},
}

var emotionKeywords = map[category.Emotion][]string{
	category.Happy:    {"행복", "기뻐", "기쁘", "좋았", "즐거", "웃었", "happy", "joy", "fun", "smile", "laughed"},
	category.Sad:      {"슬퍼", "슬프", "우울", "눈물", "울었", "그리워", "sad", "cry", "tears", "down", "blue"},
	category.Angry:    {"화가", "화나", "짜증", "열받", "분노", "angry", "mad", "furious", "annoyed", "rage"},
	category.Scared:   {"무서", "두려", "겁이", "무섭", "scared", "afraid", "fear", "terrified", "frightened"},
	category.Shy:      {"부끄", "수줍", "쑥스", "민망", "shy", "embarrassed", "bashful", "timid"},
	category.Sleepy:   {"졸려", "졸리", "피곤", "잠이", "sleepy", "tired", "drowsy", "exhausted"},
	category.Upset:    {"속상", "서운", "마음이 안 좋", "답답", "upset", "bothered", "troubled", "hurt my feelings"},
	category.Confused: {"헷갈", "혼란", "모르겠", "이해가 안", "confused", "puzzled", "lost", "don't understand"},
	category.Bored:    {"지루", "심심", "재미없", "따분", "bored", "boring", "nothing to do", "dull"},
	category.Love:     {"사랑", "좋아해", "설레", "보고 싶", "love", "crush", "adore", "miss you"},
	category.Proud:    {"뿌듯", "자랑", "해냈", "성공했", "proud", "accomplished", "achieved", "nailed it"},
	category.Nervous:  {"긴장", "떨려", "불안", "초조", "nervous", "anxious", "worried", "jittery"},
}

var learningIntentKeywords = []string{
	"가르쳐", "알려줘", "배우고 싶", "어떻게 말해", "영어로",
	"teach me", "how do i say", "how to say", "what's the word", "in english",
}

// fallbackTriple runs the rule-based classification used whenever the LLM
// path is unavailable. Lower quality than the model, but always answers.
func fallbackTriple(text string) Triple {
	normalized := strings.ToLower(strings.TrimSpace(text))

	reaction := fallbackReaction(normalized)
	emotion := fallbackEmotion(normalized, reaction)
	continuation := fallbackContinuation(normalized, reaction, emotion)

	return Triple{Reaction: reaction, Emotion: emotion, Continuation: continuation}
}

func fallbackReaction(normalized string) category.Reaction {
	if utf8.RuneCountInString(normalized) < shortMessageRunes {
		return category.SlowQuestioning
	}

	best := category.DefaultReaction
	bestScore := 0
	// Stable iteration so ties resolve the same way every call.
	for _, reaction := range []category.Reaction{category.JoySharing, category.Comfort, category.Surprise, category.SlowQuestioning} {
		score := keywordScore(normalized, reactionKeywords[reaction])
		if score > bestScore {
			best = reaction
			bestScore = score
		}
	}
	return best
}

func fallbackEmotion(normalized string, reaction category.Reaction) category.Emotion {
	best := category.Emotion("")
	bestScore := 0
	for _, emotion := range category.Emotions() {
		score := keywordScore(normalized, emotionKeywords[emotion])
		if score > bestScore {
			best = emotion
			bestScore = score
		}
	}
	if bestScore > 0 {
		return best
	}

	// No lexical signal: derive from the reaction and pick uniformly.
	candidates := category.CandidateEmotions(reaction)
	return candidates[rand.Intn(len(candidates))]
}

func fallbackContinuation(normalized string, reaction category.Reaction, emotion category.Emotion) category.Continuation {
	if utf8.RuneCountInString(normalized) < shortMessageRunes {
		return category.Exploration
	}
	for _, keyword := range learningIntentKeywords {
		if strings.Contains(normalized, keyword) {
			return category.Learning
		}
	}

	switch reaction {
	case category.Comfort, category.Acceptance:
		return category.Transition
	case category.SlowQuestioning:
		return category.Exploration
	}

	candidates := category.CandidateContinuations(emotion)
	return candidates[rand.Intn(len(candidates))]
}

func keywordScore(normalized string, keywords []string) int {
	score := 0
	for _, keyword := range keywords {
		if keyword == "" {
			continue
		}
		if strings.Contains(normalized, strings.ToLower(keyword)) {
			score++
		}
	}
	return score
}
