package registry

import (
	_ "embed"
	"slices"

	"github.com/nathanieltooley/pokeget/errorutils"
	"github.com/samber/lo"
	"golang.org/x/text/language"
)

var (
	//go:embed data/names.csv
	namesEN []byte
	//go:embed data/names_de.csv
	namesDE []byte
)

var localizedTables = map[string][]byte{
	"de": namesDE,
}

// Default loads the embedded name tables. An empty lang, "en", or a language
// without a table yields an English-only registry.
func Default(lang string) (*Registry, error) {
	table, ok := localizedTables[lang]
	if !ok {
		if lang != "" && lang != "en" {
			internalLogger.Info("no name table for language, using english", "lang", lang)
		}
		return Load(namesEN, nil, language.English)
	}

	// only languages with an embedded table get here
	return Load(namesEN, table, errorutils.Must(language.Parse(lang)))
}

// Languages lists the languages that have an embedded name table, besides English.
func Languages() []string {
	langs := lo.Keys(localizedTables)
	slices.Sort(langs)
	return langs
}
