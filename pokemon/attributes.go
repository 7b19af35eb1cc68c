package pokemon

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

const (
	// Full odds since gen 6
	DefaultShinyRate = 8192
	ShinyRateEnv     = "POKEGET_SHINY_RATE"
)

// Flags are the variant options from the command line. They apply to every
// pokemon in a run.
type Flags struct {
	Form   string
	Mega   bool
	MegaX  bool
	MegaY  bool
	Alolan bool
	Gmax   bool
	Hisui  bool
	Galar  bool
	Noble  bool
	Shiny  bool
	Female bool
}

// Attributes are built once per run and never changed afterwards.
type Attributes struct {
	Form   string
	Shiny  bool
	Female bool
}

// ShinyChance is the optional random shiny draw. It is only enabled when the
// environment asks for it.
type ShinyChance struct {
	Enabled bool
	Rate    int
}

func NewAttributes(flags Flags, chance ShinyChance, rng *rand.Rand) Attributes {
	shiny := flags.Shiny
	if !shiny && chance.Enabled {
		shiny = RollShiny(chance.Rate, rng)
	}

	return Attributes{
		Form:   Form(flags),
		Shiny:  shiny,
		Female: flags.Female,
	}
}

// Form picks a single form out of the form flags. The first set flag wins:
// mega, mega-x, mega-y, alola, gmax, hisui, galar, then the raw form string.
// Noble joins onto whatever form was picked.
func Form(flags Flags) string {
	var form string
	switch {
	case flags.Mega:
		form = "mega"
	case flags.MegaX:
		form = "mega-x"
	case flags.MegaY:
		form = "mega-y"
	case flags.Alolan:
		form = "alola"
	case flags.Gmax:
		form = "gmax"
	case flags.Hisui:
		form = "hisui"
	case flags.Galar:
		form = "galar"
	default:
		form = flags.Form
	}

	if flags.Noble {
		form = strings.Join(lo.Compact([]string{form, "noble"}), "-")
	}

	return form
}

// RollShiny succeeds with probability 1/rate.
func RollShiny(rate int, rng *rand.Rand) bool {
	if rate <= 1 {
		return true
	}

	return rng.Float64() < 1/float64(rate)
}

var errNotPositive = errors.New("must be a positive integer")

// ParseShinyRate reads the denominator of the shiny draw. An empty value means
// the default. Anything else that isn't a positive integer returns the default
// along with a *MalformedEnvError.
func ParseShinyRate(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultShinyRate, nil
	}

	rate, err := strconv.Atoi(raw)
	if err != nil {
		return DefaultShinyRate, &MalformedEnvError{Var: ShinyRateEnv, Value: raw, Err: err}
	}
	if rate <= 0 {
		return DefaultShinyRate, &MalformedEnvError{Var: ShinyRateEnv, Value: raw, Err: fmt.Errorf("%w, got %d", errNotPositive, rate)}
	}

	return rate, nil
}

// ShinyChanceFromEnv enables the shiny draw when ShinyRateEnv is set. lookup
// is usually os.LookupEnv.
func ShinyChanceFromEnv(lookup func(string) (string, bool)) (ShinyChance, error) {
	raw, ok := lookup(ShinyRateEnv)
	if !ok {
		return ShinyChance{}, nil
	}

	rate, err := ParseShinyRate(raw)
	return ShinyChance{Enabled: true, Rate: rate}, err
}
