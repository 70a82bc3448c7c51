// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/ik5/audfx"
	"github.com/ik5/audfx/effects"
	"github.com/ik5/audfx/internal/cli"
	"github.com/ik5/audfx/internal/config"
	"github.com/ik5/audfx/ir"
	"github.com/sirupsen/logrus"
)

// version is set via ldflags at build time
var version = "dev"

type Globals struct {
	LogLevel string `help:"Log level (debug, info, warn, error)." default:"warn" env:"AUDFX_LOG_LEVEL"`
	LogJSON  bool   `help:"Emit logs as JSON." name:"log-json"`
	IRDir    string `help:"Directory holding impulse response WAV files." default:"ir" env:"AUDFX_IR_DIR" name:"ir-dir" type:"path"`
}

type applyCmd struct {
	Input     string             `arg:"" help:"Input audio file (wav, aiff, mp3, ogg, flac)." type:"existingfile"`
	Output    string             `arg:"" help:"Output WAV file."`
	Effect    string             `short:"e" required:"" help:"Effect to apply."`
	Param     map[string]float64 `short:"p" help:"Effect parameter as name=value, repeatable."`
	IR        string             `help:"Impulse response name for reverb." name:"ir"`
	Normalize bool               `short:"n" help:"Scale the result to full scale."`
	Rate      int                `help:"Resample the input to this rate first (0 keeps it)." default:"0"`
	BitDepth  int                `help:"Output bit depth (16 or 24)." default:"16" enum:"16,24"`
}

type effectsCmd struct{}

type irsCmd struct{}

type versionFlag bool

func (versionFlag) BeforeApply(app *kong.Kong) error {
	cli.PrintVersion(version)
	app.Exit(0)
	return nil
}

var CLI struct {
	Globals

	Version versionFlag `help:"Show version information."`

	Apply   applyCmd   `cmd:"" help:"Apply one effect to an audio file."`
	Effects effectsCmd `cmd:"" help:"List effects and their parameters."`
	IRs     irsCmd     `cmd:"" name:"irs" help:"List available impulse responses."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("audfx"),
		kong.Description("Apply offline audio effects to a file."),
		kong.Vars{"version": version},
		kong.UsageOnError(),
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	logger, err := newLogger(CLI.LogLevel, CLI.LogJSON)
	if err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}

	if err := ctx.Run(&CLI.Globals, logger); err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}
}

func newLogger(level string, json bool) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger.SetLevel(lvl)

	if json {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return logger, nil
}

func (c *applyCmd) Run(g *Globals, logger *logrus.Logger) error {
	effect, err := effects.ParseEffect(c.Effect)
	if err != nil {
		return err
	}

	src, err := audfx.Open(audfx.DefaultRegistry(), c.Input)
	if err != nil {
		return err
	}
	defer src.Close()

	in, err := audfx.Load(src, c.Rate, config.ReadBufferSize)
	if err != nil {
		return fmt.Errorf("reading %s: %w", c.Input, err)
	}

	loader := ir.NewLoader(g.IRDir)
	loader.Logger = logger

	d := effects.NewDispatcher(
		effects.WithLogger(logger),
		effects.WithImpulseLoader(loader),
	)

	out, err := d.Apply(in, effects.Request{
		Effect:          effect,
		Params:          effects.Params(c.Param),
		ImpulseResponse: c.IR,
		Normalize:       c.Normalize,
	})
	if err != nil {
		return err
	}

	if peak := effects.Peak(out.Samples); peak > 1 && !c.Normalize {
		cli.PrintWarning(fmt.Sprintf("peak %.2f exceeds full scale, output will clip (try --normalize)", peak))
	}

	if err := audfx.SaveWAV(c.Output, out, c.BitDepth); err != nil {
		return fmt.Errorf("writing %s: %w", c.Output, err)
	}

	cli.PrintSummary(effect.String(), c.Output, in.Duration(), out.Duration(), out.SampleRate)

	return nil
}

func (effectsCmd) Run() error {
	for _, e := range effects.All() {
		cli.PrintSection(e.String())

		schema := e.Schema()
		if len(schema) == 0 {
			cli.PrintInfo("  params", "none")
		}

		for _, p := range schema {
			kind := "float"
			if p.Integer {
				kind = "int"
			}
			cli.PrintInfo("  "+p.Name, fmt.Sprintf("%s, %s, default %g", kind, cli.FormatRange(p.Min, p.Max), p.Default))
		}

		if e == effects.EffectReverb {
			cli.PrintInfo("  ir", "impulse response name (see `audfx irs`)")
		}
	}

	return nil
}

func (irsCmd) Run(g *Globals, logger *logrus.Logger) error {
	loader := ir.NewLoader(g.IRDir)
	loader.Logger = logger

	names, err := loader.Names()
	if err != nil {
		return err
	}

	if len(names) == 0 {
		cli.PrintWarning(fmt.Sprintf("no impulse responses in %s", loader.Dir))
		return nil
	}

	cli.PrintSection("Impulse responses in " + loader.Dir)
	fmt.Fprintln(cli.Output, strings.Join(names, "\n"))

	return nil
}
