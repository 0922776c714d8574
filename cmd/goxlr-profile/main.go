// Command goxlr-profile inspects, converts and edits GoXLR profile files.
//
// Profiles are read and written as XML (.xml) or as binary snapshots (.gxs),
// chosen by file extension.
//
// Usage:
//
//	goxlr-profile [flags] <command> [args]
//
// Commands:
//
//	show <file>                 Print a YAML summary of the profile
//	convert <in> <out>          Re-encode a profile
//	style <file> <slot> <style> Apply a megaphone style to a preset slot
//	edit [file]                 Open the interactive editor
//
// Flags:
//
//	-config string      Configuration file path
//	-log-level string   Log level: debug, info, warn, error (overrides config)
//	-ignore-unknown     Do not report unrecognised attributes
//	-i string           Open the interactive editor on a profile (same as edit)
//
// Examples:
//
//	# Summarise a profile
//	goxlr-profile show Stream.xml
//
//	# Store a snapshot next to the XML file
//	goxlr-profile convert Stream.xml Stream.gxs
//
//	# Switch slot 2 to the Radio style
//	goxlr-profile style Stream.xml 2 radio
//
//	# Edit interactively
//	goxlr-profile -i Stream.xml
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/AZIIZALOYIBI/goxlr-utility/cmd/goxlr-profile/interactive"
	"github.com/AZIIZALOYIBI/goxlr-utility/pkg/components"
	"github.com/AZIIZALOYIBI/goxlr-utility/pkg/config"
	"github.com/AZIIZALOYIBI/goxlr-utility/pkg/profile"
)

// Flags holds the command-line settings.
type Flags struct {
	ConfigFile    string
	LogLevel      string
	IgnoreUnknown bool
	Interactive   string
}

var flags Flags

func init() {
	flag.StringVar(&flags.ConfigFile, "config", "", "Configuration file path")
	flag.StringVar(&flags.LogLevel, "log-level", "", "Log level: debug, info, warn, error")
	flag.BoolVar(&flags.IgnoreUnknown, "ignore-unknown", false, "Do not report unrecognised attributes")
	flag.StringVar(&flags.Interactive, "i", "", "Open the interactive editor on this profile")
}

func main() {
	flag.Parse()

	cfg, err := loadConfig(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(2)
	}

	logger := cfg.Logger(os.Stderr)
	slog.SetDefault(logger)
	store := profile.NewStore(cfg.ProfileOptions(logger)...)

	args := flag.Args()
	if flags.Interactive != "" {
		args = []string{"edit", flags.Interactive}
	}

	if err := run(os.Stdout, store, cfg, args); err != nil {
		logger.Error("command failed", "error", err)
		if errors.Is(err, errUsage) {
			flag.Usage()
			os.Exit(2)
		}
		os.Exit(1)
	}
}

var errUsage = errors.New("invalid arguments")

// loadConfig applies the flags over the defaults or the config file.
func loadConfig(f Flags) (config.Config, error) {
	cfg := config.Default()
	if f.ConfigFile != "" {
		var err error
		cfg, err = config.Load(f.ConfigFile)
		if err != nil {
			return config.Config{}, err
		}
	}
	if f.LogLevel != "" {
		cfg.LogLevel = f.LogLevel
	}
	if f.IgnoreUnknown {
		cfg.UnknownAttributes = config.UnknownIgnore
	}
	return cfg, cfg.Validate()
}

func run(out io.Writer, store *profile.Store, cfg config.Config, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing command", errUsage)
	}

	cmd, args := args[0], args[1:]
	switch cmd {
	case "show":
		if len(args) != 1 {
			return fmt.Errorf("%w: show <file>", errUsage)
		}
		return show(out, store, args[0])

	case "convert":
		if len(args) != 2 {
			return fmt.Errorf("%w: convert <in> <out>", errUsage)
		}
		if err := store.Convert(args[0], args[1]); err != nil {
			return err
		}
		slog.Default().Debug("converted profile", "from", args[0], "to", args[1])
		return nil

	case "style":
		if len(args) != 3 {
			return fmt.Errorf("%w: style <file> <slot> <style>", errUsage)
		}
		return applyStyle(store, args[0], args[1], args[2])

	case "edit":
		path := cfg.Profile
		if len(args) > 0 {
			path = args[0]
		}
		if path == "" {
			return fmt.Errorf("%w: edit <file> or set profile in the config", errUsage)
		}
		ed, err := interactive.NewEditor(store, path)
		if err != nil {
			return err
		}
		return ed.Run()

	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func show(out io.Writer, store *profile.Store, path string) error {
	p, err := store.Load(path)
	if err != nil {
		return err
	}
	data, err := p.Summary().YAML()
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

func applyStyle(store *profile.Store, path, slot, name string) error {
	id, err := strconv.Atoi(slot)
	if err != nil {
		return fmt.Errorf("%w: slot must be a number", errUsage)
	}
	preset, ok := components.PresetFromID(id)
	if !ok {
		return fmt.Errorf("%w: slot must be 1-%d", errUsage, len(components.Presets))
	}
	style, err := components.MegaphoneStyleNames.Parse(name)
	if err != nil {
		return err
	}
	return store.Update(path, func(p *profile.Profile) error {
		return p.Megaphone().Preset(preset).SetStyle(style)
	})
}
