package global

import (
	"os"
	"path/filepath"

	"github.com/go-logr/zerologr"
	"github.com/nathanieltooley/pokeget/registry"
	"github.com/nathanieltooley/pokeget/sprites"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
)

var (
	Opt = populateConfig(GlobalConfig{})

	// Console logger for problems the user should see, such as a bad environment value
	Console = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, PartsExclude: []string{zerolog.TimestampFieldName}}).Level(zerolog.WarnLevel)
)

// GlobalInit loads the config file and sets up logging. Problems here never stop
// the program, they are reported and defaults are used.
func GlobalInit(debug bool) {
	configDir := DefaultConfigDir()

	if err := os.MkdirAll(configDir, 0750); err != nil {
		Console.Debug().Err(err).Msg("error occured trying to create config dir")
	}

	config, err := LoadConfig(DefaultConfigLocation())
	if err != nil {
		Console.Debug().Err(err).Msg("error occurred while reading config, using defaults")
	}
	Opt = config

	level := zerolog.InfoLevel
	if Opt.Debug || debug {
		level = zerolog.DebugLevel
		Console = Console.Level(zerolog.DebugLevel)
	}

	log.Logger = createLogger(configDir, level)
	setLibraryLoggers()
}

func createLogger(configDir string, level zerolog.Level) zerolog.Logger {
	rollingWriter, err := NewRollingFileWriter(filepath.Join(configDir, "logs/"), "pokeget")
	if err != nil {
		Console.Debug().Err(err).Msg("couldn't create log directory, file logging disabled")
		return zerolog.Nop()
	}

	return zerolog.New(rollingWriter).With().Timestamp().Caller().Logger().Level(level)
}

func setLibraryLoggers() {
	logger := zerologr.New(&log.Logger)
	registry.SetInternalLogger(logger)
	sprites.SetInternalLogger(logger)
}

func StopLogging() {
	log.Logger = zerolog.Nop()
	Console = zerolog.Nop()
	setLibraryLoggers()
}

// TermWidth returns the width of stdout, or 0 when stdout isn't a terminal.
func TermWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}

	return width
}
