// Package romanize converts Czech-orthography transcriptions of Japanese and
// Korean names into standard English romanization. Czech sources spell
// Japanese and Korean names phonetically ("Šindžiró", "Kim Ki-dŏk"), and
// those spellings never match an English-indexed catalog. The converter is
// table-driven, pure, and independent of the rest of the resolution
// pipeline; the candidate generator feeds its output in as alternate search
// spellings.
package romanize

import (
	"strings"
	"unicode/utf8"
)

// ToEnglish transliterates a Czech-transcribed foreign name to English
// romanization. Input is returned unchanged when it is blank, when it is
// pure ASCII (Western names contain short Czech digraphs by coincidence, so
// only diacritics make transcription plausible), or when no rule fires.
// Otherwise both rule tables run and the output that moved further from the
// input wins: the system whose rules actually matched the name's phonetics
// is the one that changed it most. Ties go to the Japanese table.
func ToEnglish(name string) string {
	if strings.TrimSpace(name) == "" || isASCII(name) {
		return name
	}

	japanese := apply(japaneseRules, name)
	korean := apply(koreanRules, name)

	distJapanese := levenshtein(name, japanese)
	distKorean := levenshtein(name, korean)
	if distJapanese == 0 && distKorean == 0 {
		return name
	}
	if distKorean > distJapanese {
		return korean
	}
	return japanese
}

// apply runs one rule table over the input, longest match first at every
// position. When no pattern matches, one rune is copied verbatim.
func apply(table []rule, s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		matched := false
		for _, r := range table {
			if strings.HasPrefix(s[i:], r.from) {
				b.WriteString(r.to)
				i += len(r.from)
				matched = true
				break
			}
		}
		if !matched {
			_, size := utf8.DecodeRuneInString(s[i:])
			b.WriteString(s[i : i+size])
			i += size
		}
	}
	return b.String()
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 127 {
			return false
		}
	}
	return true
}
