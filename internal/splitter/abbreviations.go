package splitter

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// встроенный список частых сокращений; расширяется YAML-файлом
var defaultAbbreviations = []string{
	"Mr.", "Mrs.", "Ms.", "Dr.", "Prof.", "St.", "Mt.",
	"Jr.", "Sr.", "Inc.", "Corp.", "Ltd.", "Co.",
	"Jan.", "Feb.", "Mar.", "Apr.", "Jun.", "Jul.", "Aug.", "Sep.", "Sept.", "Oct.", "Nov.", "Dec.",
	"Mon.", "Tue.", "Wed.", "Thu.", "Fri.", "Sat.", "Sun.",
	"e.g.", "i.e.", "etc.", "vs.", "cf.", "al.", "approx.",
	"fig.", "ex.", "p.", "pp.", "vol.", "no.", "tel.", "dept.",
	"a.m.", "p.m.", "P.S.", "U.S.", "U.K.",
}

// DefaultAbbreviations возвращает встроенный набор сокращений
func DefaultAbbreviations() map[string]struct{} {
	set := make(map[string]struct{}, len(defaultAbbreviations))
	for _, a := range defaultAbbreviations {
		set[a] = struct{}{}
	}
	return set
}

// LoadAbbreviations читает YAML-файл со списками сокращений по категориям:
//
//	titles: ["Mr.", "Dr."]
//	latin: ["e.g.", "i.e."]
//
// Результат объединяется со встроенным списком.
func LoadAbbreviations(path string) (map[string]struct{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read abbreviation file: %w", err)
	}

	var byCategory map[string][]string
	if err := yaml.Unmarshal(data, &byCategory); err != nil {
		return nil, fmt.Errorf("failed to parse abbreviation file: %w", err)
	}

	set := DefaultAbbreviations()
	for _, list := range byCategory {
		for _, a := range list {
			set[a] = struct{}{}
		}
	}
	return set, nil
}

// шаблоны эвристической защиты: одиночная заглавная ("N."), слово с
// заглавной ("Mon.") и короткое слово строчными ("tel.")
var abbreviationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^[A-Z]\.$`),
	regexp.MustCompile(`^[A-Z][a-z]{1,4}\.$`),
	regexp.MustCompile(`^[a-z]{1,5}\.$`),
}

func matchesAbbreviationPattern(token string) bool {
	for _, pat := range abbreviationPatterns {
		if pat.MatchString(token) {
			return true
		}
	}
	return false
}
