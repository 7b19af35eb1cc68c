package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/nathanieltooley/pokeget/pokemon"
	"github.com/nathanieltooley/pokeget/registry"
)

var ErrNoPokemon = errors.New("you must specify the pokemon you want to display")

type Args struct {
	// Tokens to display, in order: names, dex numbers, regions or "random"
	Pokemon []string
	Flags   pokemon.Flags

	HideName bool
	Center   bool
	// Empty means use the config file
	Lang string

	Regions bool
	List    bool
	Browse  bool
	Debug   bool
}

// Listing reports whether the run prints something other than sprites and so
// doesn't need any pokemon.
func (a Args) Listing() bool {
	return a.Regions || a.List
}

func newFlagSet(args *Args, output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("pokeget", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintln(output, "usage: pokeget [flags] <pokemon...>")
		fmt.Fprintln(output, `pokemon can be a name, a pokedex number, a region, or "random"`)
		fs.PrintDefaults()
	}

	boolVar := func(p *bool, short, long, usage string) {
		fs.BoolVar(p, long, false, usage)
		if short != "" {
			fs.BoolVar(p, short, false, usage)
		}
	}

	fs.StringVar(&args.Flags.Form, "form", "", "the form of the pokemon")
	fs.StringVar(&args.Flags.Form, "f", "", "the form of the pokemon")
	boolVar(&args.Flags.Mega, "m", "mega", "display the mega form")
	boolVar(&args.Flags.MegaX, "", "mega-x", "display the mega X form")
	boolVar(&args.Flags.MegaY, "", "mega-y", "display the mega Y form")
	boolVar(&args.Flags.Alolan, "a", "alolan", "display the alolan variant")
	boolVar(&args.Flags.Gmax, "g", "gmax", "display the gigantamax variant")
	boolVar(&args.Flags.Hisui, "", "hisui", "display the hisuian variant")
	boolVar(&args.Flags.Galar, "", "galar", "display the galarian variant")
	boolVar(&args.Flags.Noble, "n", "noble", "display the noble variant")
	boolVar(&args.Flags.Shiny, "s", "shiny", "display the shiny sprite")
	boolVar(&args.Flags.Female, "", "female", "display the female sprite")

	boolVar(&args.HideName, "", "hide-name", "don't print the pokemon names")
	boolVar(&args.Center, "c", "center", "center the output in the terminal")
	fs.StringVar(&args.Lang, "lang", "", fmt.Sprintf("language for pokemon names (en, %s)", strings.Join(registry.Languages(), ", ")))
	boolVar(&args.Regions, "", "regions", "list the regions and exit")
	boolVar(&args.List, "l", "list", "list every pokemon and exit")
	boolVar(&args.Browse, "b", "browse", "pick a pokemon interactively")
	boolVar(&args.Debug, "", "debug", "log debug information")

	return fs
}

// Parse reads command line arguments, not including the program name. Flags
// may come before, after or between pokemon.
func Parse(arguments []string, output io.Writer) (Args, error) {
	args := Args{}
	fs := newFlagSet(&args, output)

	rest := arguments
	for {
		if err := fs.Parse(rest); err != nil {
			return args, err
		}

		rest = fs.Args()
		if len(rest) == 0 {
			break
		}

		args.Pokemon = append(args.Pokemon, rest[0])
		rest = rest[1:]
	}

	if len(args.Pokemon) == 0 && !args.Listing() && !args.Browse {
		return args, ErrNoPokemon
	}

	return args, nil
}
