package romanize

// rule is one substring replacement. Tables are kept sorted longest-pattern
// first; the scanner applies the first rule whose pattern is a prefix at the
// current position, so a cluster like "šú" -> "shū" can never be clobbered
// by a shorter rule further down the table.
type rule struct {
	from string
	to   string
}

// japaneseRules maps the Czech (Polívka-style) transcription of Japanese
// names to modified Hepburn. Japanese syllables put š/č/dž/j strictly before
// a vowel, so the table carries no bare consonant rules; a "č" followed by a
// consonant is not Japanese and stays untouched, which keeps the rules from
// firing on Korean aspirates like "čch".
var japaneseRules = []rule{
	{"džó", "jō"}, {"Džó", "Jō"},
	{"džú", "jū"}, {"Džú", "Jū"},
	{"dža", "ja"}, {"Dža", "Ja"},
	{"dži", "ji"}, {"Dži", "Ji"},
	{"džo", "jo"}, {"Džo", "Jo"},
	{"džu", "ju"}, {"Džu", "Ju"},

	{"šó", "shō"}, {"Šó", "Shō"},
	{"šú", "shū"}, {"Šú", "Shū"},
	{"ša", "sha"}, {"Ša", "Sha"},
	{"ši", "shi"}, {"Ši", "Shi"},
	{"šo", "sho"}, {"Šo", "Sho"},
	{"šu", "shu"}, {"Šu", "Shu"},
	{"čó", "chō"}, {"Čó", "Chō"},
	{"čú", "chū"}, {"Čú", "Chū"},
	{"ča", "cha"}, {"Ča", "Cha"},
	{"či", "chi"}, {"Či", "Chi"},
	{"čo", "cho"}, {"Čo", "Cho"},
	{"ču", "chu"}, {"Ču", "Chu"},
	{"jó", "yō"}, {"Jó", "Yō"},
	{"jú", "yū"}, {"Jú", "Yū"},
	{"ja", "ya"}, {"Ja", "Ya"},
	{"ju", "yu"}, {"Ju", "Yu"},
	{"jo", "yo"}, {"Jo", "Yo"},
	{"cu", "tsu"}, {"Cu", "Tsu"},

	{"ó", "ō"}, {"Ó", "Ō"},
	{"ú", "ū"}, {"Ú", "Ū"},
	{"á", "a"}, {"Á", "A"},
	{"é", "e"}, {"É", "E"},
	{"í", "i"}, {"Í", "I"},
}

// koreanRules maps the Czech phonetic transcription of Korean names to
// Revised Romanization. Czech writes the aspirated series with a trailing
// "ch" ("čch", "kch", "tch", "pch"); those clusters must outrank the plain
// "č" rule or an aspirate would be romanized as two consonants.
var koreanRules = []rule{
	{"čch", "ch"}, {"Čch", "Ch"},
	{"kch", "k"}, {"Kch", "K"},
	{"tch", "t"}, {"Tch", "T"},
	{"pch", "p"}, {"Pch", "P"},

	{"jŏ", "yeo"}, {"Jŏ", "Yeo"},
	{"ja", "ya"}, {"Ja", "Ya"},
	{"ju", "yu"}, {"Ju", "Yu"},
	{"jo", "yo"}, {"Jo", "Yo"},
	{"je", "ye"}, {"Je", "Ye"},

	{"č", "j"}, {"Č", "J"},
	{"š", "s"}, {"Š", "S"},
	{"ŏ", "eo"}, {"Ŏ", "Eo"},
	{"ŭ", "eu"}, {"Ŭ", "Eu"},
}
