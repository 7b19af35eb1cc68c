package registry

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	ErrNotFound          = errors.New("no pokemon with that index")
	ErrEmptyRegion       = errors.New("region has no pokemon in the registry")
	ErrDuplicateFilename = errors.New("duplicate filename in name table")
)

// Entry is one row of the name table.
type Entry struct {
	// Zero-based index, one less than the Pokedex number
	Index    int
	Filename string
	Name     string
}

// Registry maps Pokedex indices to sprite filenames and display names.
// It is read-only after Load and safe to share between goroutines.
type Registry struct {
	byIndex    map[int]string
	byFilename map[string]int

	names     []string
	localized []string
	lang      language.Tag
}

// Load builds a Registry from a two column (display name, filename) CSV table.
// Row order defines the index. localized is an optional table of the same shape
// in another language, matched to the english table by filename; rows it lacks
// keep their english name.
func Load(en []byte, localized []byte, lang language.Tag) (*Registry, error) {
	rows, err := readTable(en)
	if err != nil {
		return nil, fmt.Errorf("reading name table: %w", err)
	}

	reg := &Registry{
		byIndex:    make(map[int]string, len(rows)),
		byFilename: make(map[string]int, len(rows)),
		names:      make([]string, 0, len(rows)),
		lang:       lang,
	}

	for i, row := range rows {
		name, filename := row[0], row[1]
		if _, exists := reg.byFilename[filename]; exists {
			return nil, fmt.Errorf("%w: %q at row %d", ErrDuplicateFilename, filename, i+1)
		}

		reg.byIndex[i] = filename
		reg.byFilename[filename] = i
		reg.names = append(reg.names, name)
	}

	if localized != nil {
		locRows, err := readTable(localized)
		if err != nil {
			return nil, fmt.Errorf("reading %s name table: %w", lang, err)
		}

		reg.localized = make([]string, len(reg.names))
		copy(reg.localized, reg.names)

		for _, row := range locRows {
			index, ok := reg.byFilename[row[1]]
			if !ok {
				internalLogger.V(1).Info("localized name has no english entry", "filename", row[1], "lang", lang.String())
				continue
			}
			reg.localized[index] = row[0]
		}
	}

	internalLogger.Info("Loaded names", "count", len(reg.names), "localized", reg.localized != nil)

	return reg, nil
}

func readTable(data []byte) ([][]string, error) {
	csvReader := csv.NewReader(bytes.NewReader(data))
	csvReader.FieldsPerRecord = 2

	return csvReader.ReadAll()
}

func (r *Registry) Len() int {
	return len(r.names)
}

// ByID returns the filename for a zero-based index.
func (r *Registry) ByID(index int) (string, error) {
	filename, ok := r.byIndex[index]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrNotFound, index)
	}

	return filename, nil
}

// ByFilename returns the zero-based index for a filename.
func (r *Registry) ByFilename(filename string) (int, bool) {
	index, ok := r.byFilename[filename]
	return index, ok
}

// DisplayName formats a filename for output. Filenames outside the table are
// formatted from the filename itself so a name can always be shown.
func (r *Registry) DisplayName(filename string) string {
	index, ok := r.byFilename[filename]
	if !ok {
		return formatFilename(filename)
	}

	if r.localized != nil {
		return r.localized[index]
	}

	return r.names[index]
}

func formatFilename(filename string) string {
	replacer := strings.NewReplacer("-", " ", "_", " ", "'", "")
	return cases.Title(language.English).String(replacer.Replace(filename))
}

func (r *Registry) localizedIndex(name string) (int, bool) {
	if r.localized == nil {
		return 0, false
	}

	caser := cases.Fold()
	folded := caser.String(name)
	_, index, found := lo.FindIndexOf(r.localized, func(n string) bool {
		return caser.String(n) == folded
	})

	return index, found
}

// EnglishName returns the english display name for a name in the localized table.
func (r *Registry) EnglishName(foreign string) (string, bool) {
	index, ok := r.localizedIndex(foreign)
	if !ok {
		return "", false
	}

	return r.names[index], true
}

// FilenameForLocalized returns the filename for a name in the localized table.
func (r *Registry) FilenameForLocalized(foreign string) (string, bool) {
	index, ok := r.localizedIndex(foreign)
	if !ok {
		return "", false
	}

	return r.byIndex[index], true
}

func (r *Registry) Localized() bool {
	return r.localized != nil
}

func (r *Registry) Lang() language.Tag {
	return r.lang
}

// Random returns the filename of a uniformly drawn pokemon.
func (r *Registry) Random(rng *rand.Rand) string {
	return r.byIndex[rng.IntN(r.Len())]
}

// RandomInRegion draws uniformly from the part of the region's range that the
// registry actually holds.
func (r *Registry) RandomInRegion(region Region, rng *rand.Rand) (string, error) {
	last := min(region.Last, r.Len()-1)
	if region.First > last {
		return "", fmt.Errorf("%w: %s", ErrEmptyRegion, region.Name)
	}

	index := region.First + rng.IntN(last-region.First+1)
	internalLogger.V(1).Info("region draw", "region", region.Name, "index", index)

	return r.byIndex[index], nil
}

// Entries returns every row in index order.
func (r *Registry) Entries() []Entry {
	return lo.Map(r.names, func(name string, i int) Entry {
		if r.localized != nil {
			name = r.localized[i]
		}
		return Entry{Index: i, Filename: r.byIndex[i], Name: name}
	})
}
