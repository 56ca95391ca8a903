package domain

// SenseCard is one meaning of a headword together with its verb and
// preposition collocations. It is the unit that becomes one Anki card.
type SenseCard struct {
	Word         string
	POS          string
	SenseNumber  string
	DefinitionEN string
	DefinitionCN string
	Groups       []CollocationGroup

	// FreqRank is the stringified frequency rank, attached after extraction
	// by the frequency table lookup. Empty string means no rank.
	FreqRank string
}

// CollocationGroup is one collocation category within a sense,
// e.g. "VERB + PITCH" or "PREPOSITION".
type CollocationGroup struct {
	Category string
	Items    []CollocationItem
}

// CollocationItem is one collocation phrase set with an optional Chinese
// gloss and usage examples. Words holds alternative surface phrases and is
// never empty on an emitted item.
type CollocationItem struct {
	Words    []string
	GlossCN  string
	Examples []ExamplePair
}

// ExamplePair is an English example sentence with its Chinese rendering.
// Both texts come from the same source span; CN may be empty.
type ExamplePair struct {
	EN string
	CN string
}
