package nlp

import (
	"strings"

	"github.com/kljensen/snowball/english"
)

// irregular maps inflected forms the suffix rules cannot reach to their
// lemmas. Verbs first, then nouns, then comparatives.
var irregular = map[string]string{
	"am": "be", "is": "be", "are": "be", "was": "be", "were": "be",
	"been": "be", "being": "be",
	"has": "have", "had": "have", "having": "have",
	"does": "do", "did": "do", "done": "do",
	"goes": "go", "went": "go", "gone": "go", "going": "go",
	"ran": "run", "running": "run",
	"said": "say", "made": "make", "took": "take", "taken": "take",
	"saw": "see", "seen": "see", "came": "come", "got": "get",
	"gotten": "get", "gave": "give", "given": "give", "knew": "know",
	"known": "know", "thought": "think", "found": "find", "told": "tell",
	"became": "become", "left": "leave", "felt": "feel",
	"brought": "bring", "began": "begin", "begun": "begin",
	"kept": "keep", "held": "hold", "wrote": "write", "written": "write",
	"stood": "stand", "heard": "hear", "meant": "mean", "met": "meet",
	"sat": "sit", "spoke": "speak", "spoken": "speak", "led": "lead",
	"grew": "grow", "grown": "grow", "threw": "throw",
	"thrown": "throw", "drew": "draw", "drawn": "draw", "flew": "fly",
	"flown": "fly", "drove": "drive", "driven": "drive", "ate": "eat",
	"eaten": "eat", "fell": "fall", "fallen": "fall", "broke": "break",
	"broken": "break", "chose": "choose", "chosen": "choose",
	"lost": "lose", "paid": "pay", "sent": "send", "built": "build",
	"spent": "spend", "caught": "catch", "taught": "teach",
	"bought": "buy", "fought": "fight", "sought": "seek", "wore": "wear",
	"worn": "wear", "sold": "sell", "slept": "sleep", "won": "win",
	"sang": "sing", "sung": "sing", "swam": "swim", "swum": "swim",

	"men": "man", "women": "woman", "children": "child", "feet": "foot",
	"teeth": "tooth", "mice": "mouse", "geese": "goose", "lice": "louse",
	"oxen": "ox", "people": "person", "dice": "die",
	"criteria": "criterion", "phenomena": "phenomenon", "lives": "life",
	"wives": "wife", "knives": "knife", "leaves": "leaf",
	"wolves": "wolf", "halves": "half", "shelves": "shelf",
	"selves": "self", "loaves": "loaf", "thieves": "thief",

	"better": "good", "best": "good", "worse": "bad", "worst": "bad",
	"further": "far", "farther": "far",
}

// Lemmatize returns the best-effort dictionary base form of a lower-cased
// word: lexicon lookup, then plural suffix rules, then Porter2 stemming for
// -ing/-ed forms. Words it cannot improve come back unchanged.
func Lemmatize(word string) string {
	if lemma, ok := irregular[word]; ok {
		return lemma
	}

	switch {
	case len(word) > 4 && strings.HasSuffix(word, "ies"):
		return word[:len(word)-3] + "y"
	case len(word) > 4 && strings.HasSuffix(word, "ied"):
		return word[:len(word)-3] + "y"
	case sibilantPlural(word):
		return word[:len(word)-2]
	case len(word) > 3 && strings.HasSuffix(word, "s") &&
		!strings.HasSuffix(word, "ss") &&
		!strings.HasSuffix(word, "us") &&
		!strings.HasSuffix(word, "is"):
		return word[:len(word)-1]
	}

	if strings.HasSuffix(word, "ing") || strings.HasSuffix(word, "ed") {
		// Porter2 handles consonant doubling ("stopped" -> "stop") and
		// silent e ("hoped" -> "hope"). Stems ending in "i" are truncation
		// artifacts, not lemmas; keep the surface form instead.
		stem := english.Stem(word, true)
		if len(stem) >= 3 && !strings.HasSuffix(stem, "i") {
			return stem
		}
	}

	return word
}

// sibilantPlural reports an -es plural after a sibilant: boxes, churches,
// wishes, buses, quizzes.
func sibilantPlural(word string) bool {
	if len(word) < 5 || !strings.HasSuffix(word, "es") {
		return false
	}
	stem := word[:len(word)-2]
	switch {
	case strings.HasSuffix(stem, "ch"), strings.HasSuffix(stem, "sh"),
		strings.HasSuffix(stem, "x"), strings.HasSuffix(stem, "z"),
		strings.HasSuffix(stem, "s"):
		return true
	}
	return false
}
