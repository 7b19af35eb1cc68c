package pokemon

import (
	"image"
	"math/rand/v2"
	"sync"

	"github.com/nathanieltooley/pokeget/registry"
	"github.com/nathanieltooley/pokeget/sprites"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// SpriteSource finds sprite bytes for a path, returning the full path it was found at.
// sprites.GenerationStore is the usual implementation.
type SpriteSource interface {
	Lookup(path string) (string, []byte, bool)
}

type Pokemon struct {
	// Path of the sprite relative to its generation, e.g. regular/abra.png
	Path string
	// Path the sprite was actually loaded from, including the generation
	Source     string
	Name       string
	Sprite     image.Image
	Attributes Attributes
}

// New loads, decodes and trims the sprite for an already resolved selection.
func New(resolved Resolved, reg *registry.Registry, attributes Attributes, store SpriteSource) (Pokemon, error) {
	path := attributes.Path(resolved.Name, resolved.Random)

	source, data, ok := store.Lookup(path)
	if !ok {
		return Pokemon{}, &AssetNotFoundError{Path: path}
	}

	img, err := sprites.Decode(data)
	if err != nil {
		return Pokemon{}, &MalformedImageError{Path: source, Err: err}
	}

	log.Debug().Str("path", path).Str("source", source).Msg("loaded sprite")

	return Pokemon{
		Path:       path,
		Source:     source,
		Name:       reg.DisplayName(Sanitize(resolved.Name)),
		Sprite:     sprites.Trim(img),
		Attributes: attributes,
	}, nil
}

// ResolveAll parses and resolves every token, in order. All random draws happen
// here so that loading afterwards doesn't depend on scheduling.
func ResolveAll(tokens []string, reg *registry.Registry, rng *rand.Rand) ([]Resolved, error) {
	resolved := make([]Resolved, 0, len(tokens))
	for _, token := range tokens {
		sel := ParseSelection(token)

		r, err := Resolve(sel, reg, rng)
		if err != nil {
			return nil, err
		}

		log.Debug().Str("token", token).Str("name", r.Name).Bool("random", r.Random).Msg("resolved selection")
		resolved = append(resolved, r)
	}

	return resolved, nil
}

// LoadAll builds every pokemon concurrently. If any fail, the error of the
// first failing one in input order is returned and no pokemon are.
func LoadAll(resolved []Resolved, reg *registry.Registry, attributes Attributes, store SpriteSource) ([]Pokemon, error) {
	pokemon := make([]Pokemon, len(resolved))
	errs := make([]error, len(resolved))

	var wg sync.WaitGroup
	wg.Add(len(resolved))

	for i, r := range resolved {
		go func() {
			defer wg.Done()
			pokemon[i], errs[i] = New(r, reg, attributes, store)
		}()
	}

	wg.Wait()

	if err, found := lo.Find(errs, func(err error) bool { return err != nil }); found {
		return nil, err
	}

	return pokemon, nil
}

// Sprites returns the sprites in order, ready for sprites.Combine.
func Sprites(pokemon []Pokemon) []image.Image {
	return lo.Map(pokemon, func(p Pokemon, _ int) image.Image {
		return p.Sprite
	})
}

func Names(pokemon []Pokemon) []string {
	return lo.Map(pokemon, func(p Pokemon, _ int) string {
		return p.Name
	})
}
