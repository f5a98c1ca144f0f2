package category

// LearnWord is a vocabulary item taught during a conversation turn.
type LearnWord struct {
	Word          string `json:"word"`
	Meaning       string `json:"meaning"`
	Example       string `json:"example"`
	Pronunciation string `json:"pronunciation"`
}

// vocabulary 按情绪列出教学单词，顺序即教学顺序。
var vocabulary = map[Emotion][]LearnWord{
	Happy: {
		{Word: "joyful", Meaning: "기쁨에 찬", Example: "She gave a joyful laugh.", Pronunciation: "JOY-fuhl"},
		{Word: "delighted", Meaning: "아주 기뻐하는", Example: "I'm delighted to see you.", Pronunciation: "dih-LY-tid"},
		{Word: "cheerful", Meaning: "쾌활한", Example: "He greeted us with a cheerful smile.", Pronunciation: "CHEER-fuhl"},
		{Word: "content", Meaning: "만족하는", Example: "She felt content with her life.", Pronunciation: "kuhn-TENT"},
		{Word: "pleased", Meaning: "기뻐하는", Example: "I'm pleased with the result.", Pronunciation: "PLEEZD"},
	},
	Sad: {
		{Word: "sorrowful", Meaning: "슬픔에 잠긴", Example: "He gave a sorrowful sigh.", Pronunciation: "SOR-oh-fuhl"},
		{Word: "melancholy", Meaning: "우울한", Example: "A melancholy song played on the radio.", Pronunciation: "MEL-uhn-kol-ee"},
		{Word: "disappointed", Meaning: "실망한", Example: "She was disappointed by the news.", Pronunciation: "dis-uh-POYN-tid"},
		{Word: "heartbroken", Meaning: "비탄에 빠진", Example: "He was heartbroken after the loss.", Pronunciation: "HART-broh-kuhn"},
		{Word: "gloomy", Meaning: "침울한", Example: "The weather made everyone gloomy.", Pronunciation: "GLOO-mee"},
	},
	Angry: {
		{Word: "furious", Meaning: "몹시 화가 난", Example: "She was furious about the delay.", Pronunciation: "FYOOR-ee-uhs"},
		{Word: "irritated", Meaning: "짜증이 난", Example: "He felt irritated by the noise.", Pronunciation: "IR-ih-tay-tid"},
		{Word: "annoyed", Meaning: "성가신", Example: "I was annoyed at the interruption.", Pronunciation: "uh-NOYD"},
		{Word: "outraged", Meaning: "격분한", Example: "They were outraged by the decision.", Pronunciation: "OUT-rayjd"},
		{Word: "frustrated", Meaning: "좌절한", Example: "She felt frustrated with her progress.", Pronunciation: "FRUHS-tray-tid"},
	},
	Scared: {
		{Word: "terrified", Meaning: "겁에 질린", Example: "He was terrified of the dark.", Pronunciation: "TER-ih-fyd"},
		{Word: "anxious", Meaning: "불안한", Example: "She felt anxious before the exam.", Pronunciation: "ANGK-shuhs"},
		{Word: "worried", Meaning: "걱정하는", Example: "I'm worried about tomorrow.", Pronunciation: "WUR-eed"},
		{Word: "nervous", Meaning: "긴장한", Example: "He gets nervous on stage.", Pronunciation: "NUR-vuhs"},
		{Word: "frightened", Meaning: "무서워하는", Example: "The child was frightened by the thunder.", Pronunciation: "FRY-tuhnd"},
	},
	Shy: {
		{Word: "bashful", Meaning: "수줍어하는", Example: "He gave a bashful smile.", Pronunciation: "BASH-fuhl"},
		{Word: "timid", Meaning: "소심한", Example: "The timid kitten hid under the bed.", Pronunciation: "TIM-id"},
		{Word: "reserved", Meaning: "말수가 적은", Example: "She is reserved around strangers.", Pronunciation: "rih-ZURVD"},
		{Word: "modest", Meaning: "겸손한", Example: "He stayed modest about his success.", Pronunciation: "MOD-ist"},
		{Word: "self-conscious", Meaning: "남의 시선을 의식하는", Example: "She felt self-conscious in the new dress.", Pronunciation: "self-KON-shuhs"},
	},
	Sleepy: {
		{Word: "drowsy", Meaning: "졸린", Example: "The medicine made him drowsy.", Pronunciation: "DROW-zee"},
		{Word: "tired", Meaning: "피곤한", Example: "I'm too tired to cook tonight.", Pronunciation: "TY-erd"},
		{Word: "exhausted", Meaning: "기진맥진한", Example: "She was exhausted after the marathon.", Pronunciation: "ig-ZAWS-tid"},
		{Word: "weary", Meaning: "지친", Example: "The weary travelers finally rested.", Pronunciation: "WEER-ee"},
		{Word: "fatigued", Meaning: "피로한", Example: "He felt fatigued after the long shift.", Pronunciation: "fuh-TEEGD"},
	},
	Upset: {
		{Word: "distressed", Meaning: "괴로워하는", Example: "She was distressed by the argument.", Pronunciation: "dih-STREST"},
		{Word: "troubled", Meaning: "근심하는", Example: "He looked troubled all morning.", Pronunciation: "TRUH-buhld"},
		{Word: "bothered", Meaning: "신경 쓰이는", Example: "I'm bothered by what she said.", Pronunciation: "BOTH-erd"},
		{Word: "agitated", Meaning: "동요한", Example: "The crowd grew agitated.", Pronunciation: "AJ-ih-tay-tid"},
		{Word: "disturbed", Meaning: "심란한", Example: "He was disturbed by the dream.", Pronunciation: "dih-STURBD"},
	},
	Confused: {
		{Word: "puzzled", Meaning: "어리둥절한", Example: "She looked puzzled by the question.", Pronunciation: "PUH-zuhld"},
		{Word: "bewildered", Meaning: "당황한", Example: "He was bewildered by the directions.", Pronunciation: "bih-WIL-derd"},
		{Word: "perplexed", Meaning: "난처한", Example: "The riddle left everyone perplexed.", Pronunciation: "per-PLEKST"},
		{Word: "uncertain", Meaning: "확신이 없는", Example: "I'm uncertain about the plan.", Pronunciation: "un-SUR-tuhn"},
		{Word: "lost", Meaning: "갈피를 못 잡는", Example: "I felt lost in the lecture.", Pronunciation: "LAWST"},
	},
	Bored: {
		{Word: "uninterested", Meaning: "흥미 없는", Example: "He seemed uninterested in the movie.", Pronunciation: "un-IN-truh-stid"},
		{Word: "restless", Meaning: "안절부절못하는", Example: "The students grew restless.", Pronunciation: "REST-lis"},
		{Word: "weary", Meaning: "싫증 난", Example: "She was weary of the same routine.", Pronunciation: "WEER-ee"},
		{Word: "disengaged", Meaning: "관심이 떠난", Example: "He looked disengaged during the meeting.", Pronunciation: "dis-en-GAYJD"},
		{Word: "listless", Meaning: "무기력한", Example: "The heat made everyone listless.", Pronunciation: "LIST-lis"},
	},
	Love: {
		{Word: "affectionate", Meaning: "다정한", Example: "She gave him an affectionate hug.", Pronunciation: "uh-FEK-shuh-nit"},
		{Word: "devoted", Meaning: "헌신적인", Example: "He is devoted to his family.", Pronunciation: "dih-VOH-tid"},
		{Word: "caring", Meaning: "배려하는", Example: "She has a caring nature.", Pronunciation: "KAIR-ing"},
		{Word: "passionate", Meaning: "열렬한", Example: "They share a passionate love of music.", Pronunciation: "PASH-uh-nit"},
		{Word: "tender", Meaning: "애틋한", Example: "He spoke in a tender voice.", Pronunciation: "TEN-der"},
	},
	Proud: {
		{Word: "accomplished", Meaning: "성취한", Example: "She is an accomplished pianist.", Pronunciation: "uh-KOM-plisht"},
		{Word: "satisfied", Meaning: "흡족한", Example: "He felt satisfied with his work.", Pronunciation: "SAT-is-fyd"},
		{Word: "confident", Meaning: "자신감 있는", Example: "She walked in looking confident.", Pronunciation: "KON-fih-duhnt"},
		{Word: "triumphant", Meaning: "의기양양한", Example: "The team returned triumphant.", Pronunciation: "try-UHM-fuhnt"},
		{Word: "honored", Meaning: "영광스러운", Example: "I'm honored to be here.", Pronunciation: "ON-erd"},
	},
	Nervous: {
		{Word: "anxious", Meaning: "초조한", Example: "He was anxious before the interview.", Pronunciation: "ANGK-shuhs"},
		{Word: "tense", Meaning: "긴장된", Example: "The room felt tense before the announcement.", Pronunciation: "TENS"},
		{Word: "uneasy", Meaning: "불편한", Example: "She felt uneasy about the silence.", Pronunciation: "un-EE-zee"},
		{Word: "jittery", Meaning: "조마조마한", Example: "Too much coffee makes me jittery.", Pronunciation: "JIT-uh-ree"},
		{Word: "apprehensive", Meaning: "우려하는", Example: "He was apprehensive about the change.", Pronunciation: "ap-rih-HEN-siv"},
	},
}

// Vocabulary returns the teaching words for an emotion. Unknown emotions get
// a small generic set so a turn can still teach something.
func Vocabulary(e Emotion) []LearnWord {
	if words, ok := vocabulary[e]; ok {
		return words
	}
	return []LearnWord{
		{Word: "wonderful", Meaning: "훌륭한", Example: "What a wonderful day!", Pronunciation: "WUN-der-fuhl"},
		{Word: "amazing", Meaning: "놀라운", Example: "The view was amazing.", Pronunciation: "uh-MAY-zing"},
		{Word: "great", Meaning: "멋진", Example: "You did a great job.", Pronunciation: "GRAYT"},
	}
}
