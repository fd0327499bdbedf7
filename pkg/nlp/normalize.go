package nlp

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// reNonToken matches runs of everything the matcher ignores. Whitespace falls in
// the same class, so a single replacement both strips symbols and collapses spaces.
var reNonToken = regexp.MustCompile(`[^a-z0-9+#./]+`)

// NormalizeText приводит текст к виду, в котором ищутся ключевые слова:
// - нижний регистр (полное юникодное отображение регистра)
// - остаются только a-z, 0-9 и символы + # . /
// - любой прочий отрезок текста заменяется одним пробелом
//
// Крайние пробелы не обрезаются.
func NormalizeText(s string) string {
	if s == "" {
		return ""
	}
	return reNonToken.ReplaceAllString(Lower(s), " ")
}

// Lower applies full Unicode lowercase mapping ("İ" becomes "i" plus a combining dot).
func Lower(s string) string {
	// cases.Caser keeps state, so it is built per call.
	return cases.Lower(language.Und).String(s)
}

// WordCount returns the number of whitespace-separated tokens in the normalized text.
func WordCount(s string) int {
	return len(TokensList(NormalizeText(s)))
}

// TokensList splits normalized string into tokens.
func TokensList(normalized string) []string {
	return strings.Fields(normalized)
}

// ContainsPhrase проверяет наличие фразы (уже нормализованной) как целых слов.
// Пример: "rest api" найдётся в " ... rest api ..." но не в " ... rest apis ..."
func ContainsPhrase(normalizedText, normalizedPhrase string) bool {
	phrase := strings.TrimSpace(normalizedPhrase)
	if phrase == "" {
		return false
	}
	// ensure word boundaries by padding with spaces
	hay := " " + strings.TrimSpace(normalizedText) + " "
	needle := " " + phrase + " "
	return strings.Contains(hay, needle)
}
