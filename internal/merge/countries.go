package merge

import "github.com/steelspace/kinograb/internal/text"

// countryCodes maps normalized country names (diacritics stripped,
// lowercased) to ISO 3166-1 alpha-2 codes. Czech spellings cover what the
// seed pages emit, English ones cover records coming back from storage.
// Dissolved states keep their transitional codes (CS, DD, SU, YU); remapping
// them to a successor state would falsify the origin of older films.
var countryCodes = map[string]string{
	"usa":                      "US",
	"spojene staty":            "US",
	"spojene staty americke":   "US",
	"united states":            "US",
	"united states of america": "US",

	"velka britanie":      "GB",
	"spojene kralovstvi":  "GB",
	"anglie":              "GB",
	"great britain":       "GB",
	"united kingdom":      "GB",
	"uk":                  "GB",
	"england":             "GB",

	"cesko":            "CZ",
	"ceska republika":  "CZ",
	"czech republic":   "CZ",
	"czechia":          "CZ",
	"ceskoslovensko":   "CS",
	"czechoslovakia":   "CS",
	"slovensko":        "SK",
	"slovakia":         "SK",

	"nemecko":          "DE",
	"germany":          "DE",
	"zapadni nemecko":  "DE",
	"west germany":     "DE",
	"vychodni nemecko": "DD",
	"east germany":     "DD",
	"rakousko":         "AT",
	"austria":          "AT",
	"svycarsko":        "CH",
	"switzerland":      "CH",

	"francie":     "FR",
	"france":      "FR",
	"italie":      "IT",
	"italy":       "IT",
	"spanelsko":   "ES",
	"spain":       "ES",
	"portugalsko": "PT",
	"portugal":    "PT",
	"belgie":      "BE",
	"belgium":     "BE",
	"nizozemsko":  "NL",
	"holandsko":   "NL",
	"netherlands": "NL",
	"lucembursko": "LU",
	"luxembourg":  "LU",
	"irsko":       "IE",
	"ireland":     "IE",

	"dansko":  "DK",
	"denmark": "DK",
	"svedsko": "SE",
	"sweden":  "SE",
	"norsko":  "NO",
	"norway":  "NO",
	"finsko":  "FI",
	"finland": "FI",
	"island":  "IS",
	"iceland": "IS",

	"polsko":    "PL",
	"poland":    "PL",
	"madarsko":  "HU",
	"hungary":   "HU",
	"rumunsko":  "RO",
	"romania":   "RO",
	"bulharsko": "BG",
	"bulgaria":  "BG",
	"recko":     "GR",
	"greece":    "GR",
	"turecko":   "TR",
	"turkey":    "TR",

	"rusko":         "RU",
	"russia":        "RU",
	"sovetsky svaz": "SU",
	"soviet union":  "SU",
	"sssr":          "SU",
	"ukrajina":      "UA",
	"ukraine":       "UA",
	"estonsko":      "EE",
	"estonia":       "EE",
	"lotyssko":      "LV",
	"latvia":        "LV",
	"litva":         "LT",
	"lithuania":     "LT",

	"jugoslavie":  "YU",
	"yugoslavia":  "YU",
	"srbsko":      "RS",
	"serbia":      "RS",
	"chorvatsko":  "HR",
	"croatia":     "HR",
	"slovinsko":   "SI",
	"slovenia":    "SI",

	"japonsko":      "JP",
	"japan":         "JP",
	"cina":          "CN",
	"china":         "CN",
	"hongkong":      "HK",
	"hong kong":     "HK",
	"tchajwan":      "TW",
	"taiwan":        "TW",
	"jizni korea":   "KR",
	"south korea":   "KR",
	"korea":         "KR",
	"severni korea": "KP",
	"north korea":   "KP",
	"indie":         "IN",
	"india":         "IN",
	"thajsko":       "TH",
	"thailand":      "TH",
	"vietnam":       "VN",
	"indonesie":     "ID",
	"indonesia":     "ID",
	"filipiny":      "PH",
	"philippines":   "PH",
	"iran":          "IR",
	"izrael":        "IL",
	"israel":        "IL",
	"egypt":         "EG",

	"jihoafricka republika": "ZA",
	"south africa":          "ZA",
	"kanada":                "CA",
	"canada":                "CA",
	"mexiko":                "MX",
	"mexico":                "MX",
	"brazilie":              "BR",
	"brazil":                "BR",
	"argentina":             "AR",
	"chile":                 "CL",
	"kuba":                  "CU",
	"cuba":                  "CU",
	"australie":             "AU",
	"australia":             "AU",
	"novy zeland":           "NZ",
	"new zealand":           "NZ",
}

// CountryCodes maps country names to ISO 3166-1 alpha-2 codes. Order is
// preserved, repeats collapse to the first occurrence and names the table
// does not know are skipped rather than guessed.
func CountryCodes(countries []string) []string {
	codes := make([]string, 0, len(countries))
	seen := make(map[string]bool, len(countries))
	for _, name := range countries {
		code, ok := countryCodes[text.NormalizePersonName(name)]
		if !ok || seen[code] {
			continue
		}
		seen[code] = true
		codes = append(codes, code)
	}
	return codes
}
