package domain

// Release classifies how a language's dictionary is published.
type Release string

const (
	ReleasePublic        Release = "PUBLIC"
	ReleaseNonCommercial Release = "NON_COMMERCIAL"
	ReleaseResearch      Release = "RESEARCH"
	ReleasePrivate       Release = "PRIVATE"
)

func (r Release) String() string { return string(r) }

func (r Release) IsValid() bool {
	switch r {
	case ReleasePublic, ReleaseNonCommercial, ReleaseResearch, ReleasePrivate:
		return true
	}
	return false
}

// DictGenre tags the kind of dictionary a language describes.
type DictGenre string

const (
	DictGenreGeneral     DictGenre = "GENERAL"
	DictGenreLearning    DictGenre = "LEARNING"
	DictGenreEtymology   DictGenre = "ETYMOLOGY"
	DictGenreSpecialized DictGenre = "SPECIALIZED"
	DictGenreHistorical  DictGenre = "HISTORICAL"
	DictGenreOrthography DictGenre = "ORTHOGRAPHY"
	DictGenreTerminology DictGenre = "TERMINOLOGY"
)

func (g DictGenre) String() string { return string(g) }

func (g DictGenre) IsValid() bool {
	switch g {
	case DictGenreGeneral, DictGenreLearning, DictGenreEtymology, DictGenreSpecialized,
		DictGenreHistorical, DictGenreOrthography, DictGenreTerminology:
		return true
	}
	return false
}

// AgentLanguageRelation describes how a user participates in a language's
// dictionary besides owning it.
type AgentLanguageRelation string

const (
	AgentRelationPublisher AgentLanguageRelation = "PUBLISHER"
	AgentRelationAuthor    AgentLanguageRelation = "AUTHOR"
)

func (a AgentLanguageRelation) String() string { return string(a) }

func (a AgentLanguageRelation) IsValid() bool {
	switch a {
	case AgentRelationPublisher, AgentRelationAuthor:
		return true
	}
	return false
}

// PartOfSpeech represents the grammatical category of a word.
type PartOfSpeech string

const (
	PartOfSpeechAdjective    PartOfSpeech = "ADJECTIVE"
	PartOfSpeechAdposition   PartOfSpeech = "ADPOSITION"
	PartOfSpeechAdverb       PartOfSpeech = "ADVERB"
	PartOfSpeechAuxilliary   PartOfSpeech = "AUXILLIARY"
	PartOfSpeechCoordConj    PartOfSpeech = "COORD_CONJ"
	PartOfSpeechDeterminer   PartOfSpeech = "DETERMINER"
	PartOfSpeechInterjection PartOfSpeech = "INTERJECTION"
	PartOfSpeechNoun         PartOfSpeech = "NOUN"
	PartOfSpeechNumeral      PartOfSpeech = "NUMERAL"
	PartOfSpeechParticle     PartOfSpeech = "PARTICLE"
	PartOfSpeechPronoun      PartOfSpeech = "PRONOUN"
	PartOfSpeechProperNoun   PartOfSpeech = "PROPER_NOUN"
	PartOfSpeechPunctuation  PartOfSpeech = "PUNCTUATION"
	PartOfSpeechSubjConj     PartOfSpeech = "SUBJ_CONJ"
	PartOfSpeechSymbol       PartOfSpeech = "SYMBOL"
	PartOfSpeechVerb         PartOfSpeech = "VERB"
	PartOfSpeechOther        PartOfSpeech = "OTHER"
)

func (p PartOfSpeech) String() string { return string(p) }

func (p PartOfSpeech) IsValid() bool {
	switch p {
	case PartOfSpeechAdjective, PartOfSpeechAdposition, PartOfSpeechAdverb,
		PartOfSpeechAuxilliary, PartOfSpeechCoordConj, PartOfSpeechDeterminer,
		PartOfSpeechInterjection, PartOfSpeechNoun, PartOfSpeechNumeral,
		PartOfSpeechParticle, PartOfSpeechPronoun, PartOfSpeechProperNoun,
		PartOfSpeechPunctuation, PartOfSpeechSubjConj, PartOfSpeechSymbol,
		PartOfSpeechVerb, PartOfSpeechOther:
		return true
	}
	return false
}

// WordRelationship classifies a directed link between two words.
type WordRelationship string

const (
	WordRelationshipDefinition WordRelationship = "DEFINITION"
	WordRelationshipRelated    WordRelationship = "RELATED"
)

func (w WordRelationship) String() string { return string(w) }

func (w WordRelationship) IsValid() bool {
	switch w {
	case WordRelationshipDefinition, WordRelationshipRelated:
		return true
	}
	return false
}

// WordLearningStatus tracks a user's progress on a word.
type WordLearningStatus string

const (
	WordLearningStatusLearning WordLearningStatus = "LEARNING"
	WordLearningStatusLearned  WordLearningStatus = "LEARNED"
)

func (s WordLearningStatus) String() string { return string(s) }

func (s WordLearningStatus) IsValid() bool {
	switch s {
	case WordLearningStatusLearning, WordLearningStatusLearned:
		return true
	}
	return false
}
