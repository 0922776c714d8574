// Package interactive provides the interactive profile editor of
// goxlr-profile.
package interactive

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/AZIIZALOYIBI/goxlr-utility/pkg/attr"
	"github.com/AZIIZALOYIBI/goxlr-utility/pkg/colours"
	"github.com/AZIIZALOYIBI/goxlr-utility/pkg/components"
	"github.com/AZIIZALOYIBI/goxlr-utility/pkg/microphone"
	"github.com/AZIIZALOYIBI/goxlr-utility/pkg/profile"
	"github.com/chzyer/readline"
)

// ErrUsage is returned for commands with missing or malformed arguments.
var ErrUsage = errors.New("usage")

// Editor edits one profile file.
type Editor struct {
	store *profile.Store
	path  string
	prof  *profile.Profile
	dirty bool
}

// NewEditor loads path through store.
func NewEditor(store *profile.Store, path string) (*Editor, error) {
	p, err := store.Load(path)
	if err != nil {
		return nil, err
	}
	return &Editor{store: store, path: path, prof: p}, nil
}

// Profile returns the profile being edited.
func (e *Editor) Profile() *profile.Profile {
	return e.prof
}

// Dirty reports whether there are unsaved changes.
func (e *Editor) Dirty() bool {
	return e.dirty
}

// Run reads commands from the terminal until quit or EOF.
func (e *Editor) Run() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "goxlr> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	out := rl.Stdout()
	e.printHelp(out)

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			if e.dirty {
				fmt.Fprintln(out, "Discarding unsaved changes")
			}
			return nil
		}

		quit, err := e.Execute(out, line)
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
}

// Execute runs one command line. It reports whether the editor should exit.
func (e *Editor) Execute(out io.Writer, line string) (bool, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false, nil
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	var err error
	switch cmd {
	case "help", "?":
		e.printHelp(out)
	case "show", "s":
		err = e.cmdShow(out)
	case "mode":
		err = e.cmdMode(args)
	case "mod1", "mod2":
		err = e.cmdMod(cmd, args)
	case "waterfall":
		err = e.cmdWaterfall(args)
	case "style":
		err = e.cmdStyle(args)
	case "effect":
		err = e.cmdEffect(args)
	case "colour", "color":
		err = e.cmdColour(args)
	case "gain":
		err = e.cmdGain(args)
	case "freq":
		err = e.cmdFreq(args)
	case "save", "w":
		err = e.cmdSave(out, args)
	case "quit", "exit", "q":
		return true, nil
	default:
		return false, fmt.Errorf("unknown command: %s (type 'help' for commands)", cmd)
	}
	return false, err
}

func (e *Editor) printHelp(out io.Writer) {
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  show                      Print the profile summary")
	fmt.Fprintf(out, "  mode <name>               Animation mode (%s)\n", strings.Join(components.AnimationModeNames.Names(), ", "))
	fmt.Fprintln(out, "  mod1 <0-100>              Animation modifier 1")
	fmt.Fprintln(out, "  mod2 <0-100>              Animation modifier 2")
	fmt.Fprintf(out, "  waterfall <dir>           Waterfall direction (%s)\n", strings.Join(components.WaterfallNames.Names(), ", "))
	fmt.Fprintf(out, "  style <slot> <style>      Megaphone style (%s)\n", strings.Join(components.MegaphoneStyleNames.Names(), ", "))
	fmt.Fprintln(out, "  effect <slot> on|off      Megaphone slot state")
	fmt.Fprintln(out, "  colour <index> <RRGGBB>   Megaphone button colour")
	fmt.Fprintln(out, "  gain <band> <dB>          Equalizer gain")
	fmt.Fprintln(out, "  freq <band> <Hz>          Equalizer frequency")
	fmt.Fprintln(out, "  save [path]               Write the profile")
	fmt.Fprintln(out, "  quit                      Leave the editor")
}

func (e *Editor) cmdShow(out io.Writer) error {
	data, err := e.prof.Summary().YAML()
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

func (e *Editor) cmdMode(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: mode <name>", ErrUsage)
	}
	mode, err := components.AnimationModeNames.Parse(args[0])
	if err != nil {
		return err
	}
	e.prof.Animation().SetMode(mode)
	e.dirty = true
	return nil
}

func (e *Editor) cmdMod(which string, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: %s <0-100>", ErrUsage, which)
	}
	v, err := strconv.ParseUint(args[0], 10, 8)
	if err != nil {
		return fmt.Errorf("%w: %s <0-100>", ErrUsage, which)
	}
	a := e.prof.Animation()
	if which == "mod1" {
		err = a.SetMod1(uint8(v))
	} else {
		err = a.SetMod2(uint8(v))
	}
	if err != nil {
		return err
	}
	e.dirty = true
	return nil
}

func (e *Editor) cmdWaterfall(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: waterfall <dir>", ErrUsage)
	}
	d, err := components.WaterfallNames.Parse(args[0])
	if err != nil {
		return err
	}
	if err := e.prof.Animation().SetWaterfall(d); err != nil {
		return err
	}
	e.dirty = true
	return nil
}

func (e *Editor) slot(arg string) (*components.MegaphoneEffect, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return nil, fmt.Errorf("%w: slot must be a number", ErrUsage)
	}
	p, ok := components.PresetFromID(id)
	if !ok {
		return nil, fmt.Errorf("slot %d: %w", id, attr.ErrOutOfRange)
	}
	return e.prof.Megaphone().Preset(p), nil
}

func (e *Editor) cmdStyle(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: style <slot> <style>", ErrUsage)
	}
	fx, err := e.slot(args[0])
	if err != nil {
		return err
	}
	style, err := components.MegaphoneStyleNames.Parse(args[1])
	if err != nil {
		return err
	}
	if err := fx.SetStyle(style); err != nil {
		return err
	}
	e.dirty = true
	return nil
}

func (e *Editor) cmdEffect(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: effect <slot> on|off", ErrUsage)
	}
	fx, err := e.slot(args[0])
	if err != nil {
		return err
	}
	switch strings.ToLower(args[1]) {
	case "on":
		fx.SetState(true)
	case "off":
		fx.SetState(false)
	default:
		return fmt.Errorf("%w: effect <slot> on|off", ErrUsage)
	}
	e.dirty = true
	return nil
}

func (e *Editor) cmdColour(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: colour <index> <RRGGBB>", ErrUsage)
	}
	i, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: index must be a number", ErrUsage)
	}
	c, err := colours.ParseColour(strings.TrimPrefix(args[1], "#"))
	if err != nil {
		return err
	}
	if err := e.prof.Megaphone().ColourMap().SetColour(i, c); err != nil {
		return err
	}
	e.dirty = true
	return nil
}

func (e *Editor) cmdGain(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: gain <band> <dB>", ErrUsage)
	}
	band, err := microphone.BandNames.Parse(args[0])
	if err != nil {
		return err
	}
	v, err := strconv.ParseInt(args[1], 10, 8)
	if err != nil {
		return fmt.Errorf("%w: gain must be a whole number of dB", ErrUsage)
	}
	if err := e.prof.Equalizer().SetGain(band, int8(v)); err != nil {
		return err
	}
	e.dirty = true
	return nil
}

func (e *Editor) cmdFreq(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: freq <band> <Hz>", ErrUsage)
	}
	band, err := microphone.BandNames.Parse(args[0])
	if err != nil {
		return err
	}
	hz, err := strconv.ParseFloat(args[1], 32)
	if err != nil {
		return fmt.Errorf("%w: frequency must be a number", ErrUsage)
	}
	if err := e.prof.Equalizer().SetFrequency(band, float32(hz)); err != nil {
		return err
	}
	e.dirty = true
	return nil
}

func (e *Editor) cmdSave(out io.Writer, args []string) error {
	path := e.path
	if len(args) > 0 {
		path = args[0]
	}
	if err := e.store.Save(path, e.prof); err != nil {
		return err
	}
	e.dirty = false
	fmt.Fprintf(out, "Saved %s\n", path)
	return nil
}
