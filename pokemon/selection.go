package pokemon

import (
	"errors"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/nathanieltooley/pokeget/registry"
)

// Selection is what a single command line token asks for. It is one of
// Random, DexID, RegionName or Name.
type Selection interface {
	isSelection()
}

type Random struct{}

// DexID holds a zero-based index.
type DexID struct {
	Index int
}

type RegionName struct {
	Region registry.Region
}

// Name is passed through as typed.
type Name struct {
	Raw string
}

func (Random) isSelection()     {}
func (DexID) isSelection()      {}
func (RegionName) isSelection() {}
func (Name) isSelection()       {}

func ParseSelection(token string) Selection {
	if dexID, err := strconv.Atoi(token); err == nil && dexID >= 0 {
		if dexID == 0 {
			return Random{}
		}

		return DexID{Index: dexID - 1}
	}

	if strings.EqualFold(token, "random") {
		return Random{}
	}

	if region, ok := registry.ParseRegion(token); ok {
		return RegionName{Region: region}
	}

	return Name{Raw: token}
}

// Resolved is a selection turned into a canonical name.
type Resolved struct {
	Name string
	// Random is set for random and region draws; forms and the female
	// sprite are not applied to these since the variant may not exist
	Random bool
}

func Resolve(sel Selection, reg *registry.Registry, rng *rand.Rand) (Resolved, error) {
	switch sel := sel.(type) {
	case Random:
		return Resolved{Name: reg.Random(rng), Random: true}, nil
	case RegionName:
		name, err := reg.RandomInRegion(sel.Region, rng)
		if err != nil {
			return Resolved{}, err
		}
		return Resolved{Name: name, Random: true}, nil
	case DexID:
		name, err := reg.ByID(sel.Index)
		if errors.Is(err, registry.ErrNotFound) {
			return Resolved{}, &InvalidDexIDError{ID: sel.Index + 1}
		}
		return Resolved{Name: name}, err
	case Name:
		if filename, ok := reg.FilenameForLocalized(sel.Raw); ok {
			return Resolved{Name: filename}, nil
		}
		return Resolved{Name: sel.Raw}, nil
	}

	panic("unknown selection type")
}
