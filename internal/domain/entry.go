package domain

// Entry represents one vocabulary card
type Entry struct {
	Word        string `json:"word"`
	Definition  string `json:"definition"`
	Translation string `json:"persian_translation"`
	Synonyms    string `json:"synonyms,omitempty"`
}

// IsEmpty reports whether e is the "nothing loaded" sentinel
func (e Entry) IsEmpty() bool {
	return e == Entry{}
}

// SynonymsLine returns the synonyms caption, or "" when there are none
func (e Entry) SynonymsLine() string {
	if e.Synonyms == "" {
		return ""
	}
	return "Synonyms: " + e.Synonyms
}
