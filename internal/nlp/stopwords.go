package nlp

import "strings"

// stopwords is the embedded English stop-word set consulted by RuleEngine.
// The list follows the usual English NLP stop lists (articles, pronouns,
// auxiliaries, prepositions, conjunctions) plus the orphaned contraction
// fragments the tokenizer produces when it splits on apostrophes.
var stopwords = func() map[string]struct{} {
	const raw = `
a about above across after again against all almost alone along already also
although always am among an and another any anybody anyone anything anywhere
are around as at back be became because become becomes been before behind
being below between both but by came can cannot could did do does doing done
down during each either else enough even ever every everybody everyone
everything everywhere few first for former from further had has have having
he hence her here hers herself him himself his how however i if in indeed
into is it its itself just last latter least less many may me meanwhile
might mine more moreover most mostly much must my myself namely neither
never nevertheless next no nobody none nor not nothing now nowhere of off
often on once one only onto or other others otherwise our ours ourselves out
over own per perhaps please quite rather really regarding same say see seem
seemed seeming seems several she should since so some somebody somehow
someone something sometime sometimes somewhere still such than that the
their theirs them themselves then thence there thereafter thereby therefore
therein thereupon these they third this those though through throughout thru
thus to together too toward towards under until unless up upon us used using
various very via was we well were what whatever when whence whenever where
whereafter whereas whereby wherein whereupon wherever whether which while
whither who whoever whole whom whose why will with within without would yet
you your yours yourself yourselves
d ll m re s t ve
`
	set := make(map[string]struct{}, 320)
	for _, w := range strings.Fields(raw) {
		set[w] = struct{}{}
	}
	return set
}()

// IsStopWord reports whether the lower-cased word is on the embedded
// English stop list.
func IsStopWord(word string) bool {
	_, ok := stopwords[word]
	return ok
}
