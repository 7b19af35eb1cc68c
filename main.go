package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/nathanieltooley/pokeget/cli"
	"github.com/nathanieltooley/pokeget/global"
	"github.com/nathanieltooley/pokeget/pokemon"
	"github.com/nathanieltooley/pokeget/registry"
	"github.com/nathanieltooley/pokeget/rendering"
	"github.com/nathanieltooley/pokeget/sprites"
	"github.com/nathanieltooley/pokeget/views/browse"
	"github.com/rs/zerolog/log"
)

func main() {
	args, err := cli.Parse(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}

	global.GlobalInit(args.Debug)

	lang := args.Lang
	if lang == "" {
		lang = global.Opt.Lang
	}

	reg, err := registry.Default(lang)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}

	if args.Browse {
		selected, ok, err := browse.Run(reg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s\n", err)
			os.Exit(1)
		}
		if !ok {
			os.Exit(0)
		}
		args.Pokemon = append(args.Pokemon, selected)
	}

	chance, err := pokemon.ShinyChanceFromEnv(os.LookupEnv)
	if err != nil {
		global.Console.Warn().Err(err).Msgf("using the default shiny rate of 1/%d", pokemon.DefaultShinyRate)
	}

	store := sprites.NewGenerationStore(sprites.NewFSStore(os.DirFS(global.Opt.SpriteDir)), global.Opt.Generations...)
	log.Info().Str("sprite_dir", global.Opt.SpriteDir).Strs("generations", global.Opt.Generations).Str("lang", reg.Lang().String()).Msg("starting")

	a := app{
		args:   args,
		reg:    reg,
		store:  store,
		chance: chance,
		rng:    global.PokeRand,
		width:  global.TermWidth(),
	}

	if err := a.run(os.Stdout, os.Stderr); err != nil {
		log.Error().Err(err).Msg("run failed")
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

type app struct {
	args   cli.Args
	reg    *registry.Registry
	store  pokemon.SpriteSource
	chance pokemon.ShinyChance
	rng    *rand.Rand
	// terminal width used for centering, 0 when unknown
	width int
}

// run writes the sprite to out and the names to diag. Nothing is written if any
// pokemon fails to load.
func (a app) run(out io.Writer, diag io.Writer) error {
	if a.args.Regions {
		printRegions(out)
	}
	if a.args.List {
		printList(out, a.reg)
	}
	if len(a.args.Pokemon) == 0 {
		return nil
	}

	attributes := pokemon.NewAttributes(a.args.Flags, a.chance, a.rng)
	log.Debug().Str("form", attributes.Form).Bool("shiny", attributes.Shiny).Bool("female", attributes.Female).Msg("attributes")

	resolved, err := pokemon.ResolveAll(a.args.Pokemon, a.reg, a.rng)
	if err != nil {
		return err
	}

	pkms, err := pokemon.LoadAll(resolved, a.reg, attributes, a.store)
	if err != nil {
		return err
	}

	combined := sprites.Combine(pokemon.Sprites(pkms))
	text := rendering.Render(combined)

	width := 0
	if a.args.Center {
		width = a.width
	}

	if !a.args.HideName {
		fmt.Fprintf(diag, "%s\n\n", rendering.Center(width, rendering.NameLine(pokemon.Names(pkms))))
	}
	fmt.Fprintln(out, rendering.Center(width, text))

	return nil
}

func printRegions(out io.Writer) {
	for _, region := range registry.Regions() {
		fmt.Fprintf(out, "%-8s %4d - %d\n", region.Name, region.First+1, region.Last+1)
	}
}

func printList(out io.Writer, reg *registry.Registry) {
	for _, entry := range reg.Entries() {
		name := entry.Name
		if english, ok := reg.EnglishName(entry.Name); ok && english != entry.Name {
			name = fmt.Sprintf("%s / %s", entry.Name, english)
		}

		fmt.Fprintf(out, "%4d %s (%s)\n", entry.Index+1, name, entry.Filename)
	}
}
