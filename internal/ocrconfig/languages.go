package ocrconfig

// Language is a Tesseract language pack code with its display name.
type Language struct {
	Code string
	Name string
}

// DefaultLanguage is selected in a fresh configuration.
const DefaultLanguage = "chi_sim"

// SupportedLanguages is the canonical language table. Its order decides how
// selected codes are joined on the command line.
var SupportedLanguages = []Language{
	{Code: "chi_sim", Name: "Simplified Chinese"},
	{Code: "eng", Name: "English"},
	{Code: "chi_tra", Name: "Traditional Chinese"},
	{Code: "jpn", Name: "Japanese"},
	{Code: "kor", Name: "Korean"},
	{Code: "fra", Name: "French"},
	{Code: "deu", Name: "German"},
	{Code: "spa", Name: "Spanish"},
}

// LanguageName returns the display name for code, or code itself when the
// code is not in SupportedLanguages.
func LanguageName(code string) string {
	for _, l := range SupportedLanguages {
		if l.Code == code {
			return l.Name
		}
	}
	return code
}

// CanonicalLanguages deduplicates codes and orders them by SupportedLanguages.
// Codes outside the table keep their first-seen order after the known ones.
// Empty codes are dropped.
func CanonicalLanguages(codes []string) []string {
	seen := make(map[string]bool, len(codes))
	for _, c := range codes {
		if c != "" {
			seen[c] = true
		}
	}
	if len(seen) == 0 {
		return nil
	}

	out := make([]string, 0, len(seen))
	for _, l := range SupportedLanguages {
		if seen[l.Code] {
			out = append(out, l.Code)
			delete(seen, l.Code)
		}
	}
	for _, c := range codes {
		if seen[c] {
			out = append(out, c)
			delete(seen, c)
		}
	}
	return out
}
