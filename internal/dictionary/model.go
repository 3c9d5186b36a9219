// Package dictionary provides the word breakdown model, the response schema
// descriptor, and the lookup reader that combines the inference client with a
// local response cache.
package dictionary

// WordDetails is the full linguistic breakdown of a single headword as
// returned by the completion service. Once fetched it is display data and is
// never partially updated.
type WordDetails struct {
	PartOfSpeech        string           `json:"part_of_speech" yaml:"part_of_speech"`
	Syllabification     string           `json:"syllabification" yaml:"syllabification"`
	Pronunciation       string           `json:"pronunciation" yaml:"pronunciation"`
	CommonMeaning       string           `json:"common_meaning" yaml:"common_meaning"`
	EtymologicalMeaning string           `json:"etymological_meaning" yaml:"etymological_meaning"`
	Examples            []Example        `json:"examples" yaml:"examples"`
	Forms               []WordForm       `json:"forms" yaml:"forms"`
	Etymology           Etymology        `json:"etymology" yaml:"etymology"`
	Synonyms            []Synonym        `json:"synonyms" yaml:"synonyms"`
	ConfusableWords     []ConfusableWord `json:"confusable_words" yaml:"confusable_words"`
}

// Example is a usage sentence for the headword with its translation.
type Example struct {
	Sentence    string `json:"sentence" yaml:"sentence"`
	Translation string `json:"translation" yaml:"translation"`
}

// WordForm is an inflected or derived variant of the headword.
type WordForm struct {
	PartOfSpeech       string `json:"part_of_speech" yaml:"part_of_speech"`
	Word               string `json:"word" yaml:"word"`
	Definition         string `json:"definition" yaml:"definition"`
	Example            string `json:"example" yaml:"example"`
	ExampleTranslation string `json:"example_translation" yaml:"example_translation"`
}

// Etymology describes the origin and development of the headword.
type Etymology struct {
	Root         string        `json:"root" yaml:"root"`
	RootLanguage string        `json:"root_language" yaml:"root_language"`
	RootMeaning  string        `json:"root_meaning" yaml:"root_meaning"`
	Development  string        `json:"development" yaml:"development"`
	RelatedWords []RelatedWord `json:"related_words" yaml:"related_words"`
}

// RelatedWord is a word sharing the headword's etymological root.
type RelatedWord struct {
	Word        string `json:"word" yaml:"word"`
	Translation string `json:"translation" yaml:"translation"`
	Breakdown   string `json:"breakdown" yaml:"breakdown"`
}

// Synonym is a word with a meaning close to the headword.
type Synonym struct {
	Word   string `json:"word" yaml:"word"`
	Nuance string `json:"nuance" yaml:"nuance"`
}

// ConfusableWord is a word commonly mistaken for the headword because of
// visual or phonetic similarity.
type ConfusableWord struct {
	Word       string `json:"word" yaml:"word"`
	Meaning    string `json:"meaning" yaml:"meaning"`
	Difference string `json:"difference" yaml:"difference"`
}
