package template

import "github.com/kreators/easyslang/backend/internal/model/category"

// Default language pair for the seeded pools. Additional pairs are added by
// loading generated pool data; the Korean→English pair ships built in.
const (
	LangKorean  = "Korean"
	LangEnglish = "English"
)

// Seed 返回内置的 Korean→English 模板池。
func Seed() map[Key][]string {
	pools := make(map[Key][]string)
	add := func(cat, sub string, lines ...string) {
		pools[Key{Category: cat, Sub: sub, From: LangKorean, To: LangEnglish}] = lines
	}

	add(CategoryGreetings, "",
		"Hi there! I'm so glad you came to talk with me today.",
		"Hello! It's great to see you. How are you doing?",
		"Welcome back! I've been looking forward to our chat.",
	)

	// Topic starters: the three standing topics plus one per emotion, since
	// an emotion can be picked directly as the conversation topic.
	add(CategoryTopics, "favorites",
		"Let's talk about your favorite things! What do you love most these days?",
		"I'd love to hear about something you really like. What comes to mind?",
		"Everyone has favorites. What's one of yours?",
	)
	add(CategoryTopics, "feelings",
		"Let's talk about feelings today. How are you feeling right now?",
		"Feelings can be hard to put into words. How is your heart today?",
		"I'm here to listen. What's on your mind and in your heart?",
	)
	add(CategoryTopics, "ootd",
		"Let's talk about your outfit of the day! What are you wearing?",
		"Fashion time! Tell me about today's look.",
	)
	add(CategoryTopics, "happy",
		"Hi there! I can see you're feeling happy today. That's wonderful!",
		"You look happy! I'd love to hear what's going so well.",
	)
	add(CategoryTopics, "sad",
		"Hello. I notice you might be feeling a bit sad. I'm here to listen.",
		"It's okay to feel sad sometimes. Want to tell me about it?",
	)
	add(CategoryTopics, "angry",
		"I can sense you're feeling angry right now. Let's talk about it.",
		"Something made you angry? I want to understand what happened.",
	)
	add(CategoryTopics, "scared",
		"Hey, I understand you might be feeling scared. You're safe here.",
		"Feeling scared is natural. Let's face it together, slowly.",
	)
	add(CategoryTopics, "shy",
		"Hi! I see you're feeling a bit shy. That's perfectly okay.",
		"No rush at all. We can start whenever you feel comfortable.",
	)
	add(CategoryTopics, "sleepy",
		"Hello there! Feeling sleepy? Let's have a gentle conversation.",
		"A quiet, cozy chat sounds perfect for a sleepy day.",
	)
	add(CategoryTopics, "upset",
		"I can tell you're feeling upset. I'm here to help you through this.",
		"Something's bothering you, isn't it? Let's talk it over.",
	)
	add(CategoryTopics, "confused",
		"Hi! I sense you're feeling confused about something. Let's figure it out together.",
		"Confusion is the first step to understanding. What's puzzling you?",
	)
	add(CategoryTopics, "bored",
		"Hey! Feeling bored? Let's make this conversation interesting!",
		"Boredom, begone! Tell me what a fun day would look like for you.",
	)
	add(CategoryTopics, "love",
		"Hello! I can feel the love in your heart. That's beautiful!",
		"Love is a lovely topic. Who or what fills your heart these days?",
	)
	add(CategoryTopics, "proud",
		"Hi there! I can sense you're feeling proud. That's amazing!",
		"You've achieved something, haven't you? I'd love to hear about it!",
	)
	add(CategoryTopics, "nervous",
		"Hello! I notice you're feeling nervous. Take a deep breath with me.",
		"Nerves mean you care. Let's talk through what's coming up.",
	)

	add(CategoryFinishers, "favorites",
		"It was so fun hearing about your favorite things! Keep enjoying them!",
	)
	add(CategoryFinishers, "feelings",
		"Thank you for opening up about your feelings today. That takes courage!",
	)
	add(CategoryFinishers, "ootd",
		"Loved hearing about your style today! See you next time, fashionista!",
	)
	add(CategoryFinishers, "happy",
		"I'm so glad we talked about your happiness! Keep spreading those positive vibes!",
	)
	add(CategoryFinishers, "sad",
		"Thank you for sharing your feelings with me. Remember, it's okay to feel sad sometimes.",
	)
	add(CategoryFinishers, "angry",
		"I'm proud of you for expressing your anger in a healthy way. You did great!",
	)
	add(CategoryFinishers, "scared",
		"You were very brave to talk about your fears. You're stronger than you think!",
	)
	add(CategoryFinishers, "shy",
		"You did wonderfully opening up to me. Your shyness is part of what makes you special!",
	)
	add(CategoryFinishers, "sleepy",
		"Thanks for staying awake to chat with me! Hope you get some good rest soon!",
	)
	add(CategoryFinishers, "upset",
		"I'm glad you shared what was upsetting you. You're not alone in this.",
	)
	add(CategoryFinishers, "confused",
		"Great job working through your confusion with me! You're learning so much!",
	)
	add(CategoryFinishers, "bored",
		"I hope our conversation made things more interesting for you!",
	)
	add(CategoryFinishers, "love",
		"Your love and warmth really touched my heart. Keep spreading that love!",
	)
	add(CategoryFinishers, "proud",
		"Your pride is well-deserved! Keep celebrating your achievements!",
	)
	add(CategoryFinishers, "nervous",
		"You handled your nervousness so well. I'm proud of how you expressed yourself!",
	)

	add(CategoryReactions, string(category.Empathy),
		"I really understand how you feel.",
		"That makes so much sense. I'd feel the same way.",
		"I hear you. Thank you for telling me.",
		"Mm, I can imagine how that felt for you.",
	)
	add(CategoryReactions, string(category.Acceptance),
		"It's completely okay to feel that way.",
		"Whatever you're feeling is valid.",
		"There's no wrong way to feel about this.",
		"I accept that, and I'm glad you said it out loud.",
	)
	add(CategoryReactions, string(category.Surprise),
		"Oh wow, really? I didn't expect that!",
		"No way! That's quite a surprise!",
		"Whoa, tell me more about that!",
		"That caught me off guard, in a good way!",
	)
	add(CategoryReactions, string(category.Comfort),
		"I'm here with you. You're not alone in this.",
		"That sounds really hard. Take all the time you need.",
		"It's going to be okay. Let's breathe together for a moment.",
		"Sending you a big warm hug right now.",
	)
	add(CategoryReactions, string(category.JoySharing),
		"That's wonderful news! I'm so happy for you!",
		"Yay! Your joy is contagious!",
		"Amazing! Let's celebrate that together!",
		"I love hearing that! What a great moment!",
	)
	add(CategoryReactions, string(category.Confirmation),
		"So what you're saying is, it really mattered to you.",
		"Got it. That's exactly how I understood it too.",
		"Right, I see what you mean.",
		"Yes, that's a very fair way to put it.",
	)
	add(CategoryReactions, string(category.SlowQuestioning),
		"Take your time. What happened first?",
		"No hurry at all. Could you tell me a bit more?",
		"Let's go slowly. How did that start?",
		"It's okay to pause. What would you like to say next?",
	)

	add(CategoryEmotions, string(category.Happy),
		"Happiness like that is worth holding on to.",
		"When we feel happy, even small things start to shine.",
		"That bright feeling you have is called joy, and it suits you.",
	)
	add(CategoryEmotions, string(category.Sad),
		"Sadness shows how much something meant to you.",
		"When we feel sad, our heart is asking for a little rest.",
		"It's a heavy feeling, but sadness always softens with time.",
	)
	add(CategoryEmotions, string(category.Angry),
		"Anger often means something important to you was crossed.",
		"Feeling angry is your heart standing up for itself.",
		"That fire you feel is anger, and it can be let out safely.",
	)
	add(CategoryEmotions, string(category.Scared),
		"Fear is your mind trying to protect you.",
		"Feeling scared means you're facing something new.",
		"Everyone feels fear. Naming it already makes it smaller.",
	)
	add(CategoryEmotions, string(category.Shy),
		"Shyness is just care about how we meet others.",
		"Feeling shy means the moment matters to you.",
		"A little shyness makes your openness even braver.",
	)
	add(CategoryEmotions, string(category.Sleepy),
		"Sleepiness is your body asking kindly for rest.",
		"Feeling drowsy means you've used your energy well today.",
	)
	add(CategoryEmotions, string(category.Upset),
		"Being upset means something didn't sit right with you.",
		"That unsettled feeling is worth listening to.",
		"When we're upset, talking it out helps untangle it.",
	)
	add(CategoryEmotions, string(category.Confused),
		"Confusion is the feeling of learning something new.",
		"A puzzled mind is a mind that's paying attention.",
		"It's okay not to have it figured out yet.",
	)
	add(CategoryEmotions, string(category.Bored),
		"Boredom is your curiosity looking for a new door.",
		"Feeling bored means you're ready for something fresh.",
	)
	add(CategoryEmotions, string(category.Love),
		"Love is the warmest feeling we get to share.",
		"That warmth in your chest is affection, plain and simple.",
		"Caring that deeply for someone is a gift.",
	)
	add(CategoryEmotions, string(category.Proud),
		"Pride is the glow of effort paying off.",
		"Feeling proud means you honored your own hard work.",
		"You earned that feeling. Let it stay a while.",
	)
	add(CategoryEmotions, string(category.Nervous),
		"Nervousness is excitement wearing a disguise.",
		"Feeling jittery means you truly care about what's next.",
		"A racing heart before a big moment is completely normal.",
	)

	add(CategoryContinuations, string(category.Exploration),
		"What do you think made you feel that way?",
		"When did you first notice this feeling?",
		"Where do you feel it most, in your body or your thoughts?",
		"If this feeling had a color, what would it be?",
	)
	add(CategoryContinuations, string(category.Learning),
		"Let me teach you a few English words for this feeling.",
		"Here are some new expressions you can use next time.",
		"Shall we learn how to say this feeling in English?",
		"These words will help you describe this moment in English.",
	)
	add(CategoryContinuations, string(category.Transition),
		"Let's take a small step toward something lighter.",
		"How about we talk about what could make tomorrow a bit better?",
		"Would you like to shift to a happier memory for a moment?",
		"Let's set that down gently and look at something hopeful.",
	)

	return pools
}
