package conv

import "strings"

// Vocabulary is the case-insensitive word set recognized when coercing
// a string to bool. A string outside both sets fails the conversion.
type Vocabulary struct {
	True  []string
	False []string
}

// DefaultVocabulary recognizes the usual toggle spellings, with the
// empty string counting as false.
var DefaultVocabulary = &Vocabulary{
	True:  []string{"true", "y", "yes", "on", "enable", "enabled", "1"},
	False: []string{"", "false", "n", "no", "off", "disable", "disabled", "0"},
}

// Lookup reports (value, ok) for word under the vocabulary.
func (v *Vocabulary) Lookup(word string) (bool, bool) {
	w := strings.ToLower(word)
	for _, t := range v.True {
		if w == t {
			return true, true
		}
	}
	for _, f := range v.False {
		if w == f {
			return false, true
		}
	}
	return false, false
}
