package analyzer

// sentimentLexicon is an AFINN-style word list: each word carries a signed
// valence in [-5, 5]. The post score is the plain sum over word tokens.
var sentimentLexicon = map[string]int{
	// positive
	"admire":    3,
	"agree":     1,
	"amazing":   4,
	"awesome":   4,
	"beautiful": 3,
	"best":      3,
	"better":    2,
	"bliss":     3,
	"brilliant": 4,
	"calm":      2,
	"celebrate": 3,
	"cheerful":  2,
	"comfort":   2,
	"confident": 2,
	"delight":   3,
	"delighted": 3,
	"dream":     1,
	"enjoy":     2,
	"enjoyed":   2,
	"excellent": 3,
	"excited":   3,
	"fantastic": 4,
	"fun":       4,
	"glad":      3,
	"good":      3,
	"grateful":  3,
	"great":     3,
	"happy":     3,
	"hope":      2,
	"hopeful":   2,
	"joy":       3,
	"kind":      2,
	"laugh":     3,
	"like":      2,
	"love":      3,
	"loved":     3,
	"lovely":    3,
	"lucky":     3,
	"nice":      3,
	"perfect":   3,
	"pleased":   3,
	"proud":     2,
	"relaxed":   2,
	"relieved":  2,
	"smile":     2,
	"strong":    2,
	"success":   2,
	"thankful":  2,
	"thanks":    2,
	"win":       4,
	"won":       3,
	"wish":      1,
	"wonderful": 4,
	"wow":       4,
	// negative
	"afraid":       -2,
	"alone":        -2,
	"angry":        -3,
	"anxious":      -2,
	"awful":        -3,
	"bad":          -3,
	"bored":        -2,
	"broke":        -2,
	"cry":          -1,
	"crying":       -2,
	"depressed":    -2,
	"depressing":   -2,
	"disappointed": -2,
	"dread":        -2,
	"exhausted":    -2,
	"fail":         -2,
	"failed":       -2,
	"failure":      -2,
	"fear":         -2,
	"frustrated":   -2,
	"hate":         -3,
	"hated":        -3,
	"horrible":     -3,
	"hurt":         -2,
	"lonely":       -2,
	"lose":         -3,
	"loss":         -3,
	"lost":         -3,
	"mad":          -3,
	"miserable":    -3,
	"miss":         -2,
	"nervous":      -2,
	"pain":         -2,
	"panic":        -3,
	"regret":       -2,
	"sad":          -2,
	"scared":       -2,
	"sick":         -2,
	"sorry":        -1,
	"stress":       -1,
	"stressed":     -2,
	"terrible":     -3,
	"tired":        -2,
	"ugly":         -3,
	"unhappy":      -2,
	"upset":        -2,
	"worried":      -3,
	"worry":        -3,
	"worse":        -3,
	"worst":        -3,
	"wrong":        -2,
}

// profanityWords flag a post as toxic when any word token matches.
// Matching is on lowercased tokens, so case never matters.
var profanityWords = []string{
	"arse",
	"arsehole",
	"asshole",
	"bastard",
	"bitch",
	"bollocks",
	"bullshit",
	"crap",
	"cunt",
	"damn",
	"dick",
	"dickhead",
	"douche",
	"fuck",
	"fucked",
	"fucker",
	"fucking",
	"goddamn",
	"jackass",
	"motherfucker",
	"piss",
	"prick",
	"pussy",
	"shit",
	"shitty",
	"slut",
	"twat",
	"wanker",
	"whore",
}
