package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sghaida/solid/inject"
	"github.com/sghaida/solid/internal/config"
	"github.com/sghaida/solid/runner"
)

/* composition root */

// Keys the app's dependencies are registered under. Introspectable via
// Has/Deps, handy when a wiring test wants to know what was bound.
const (
	keyConfig  = inject.Key("config")
	keyLogger  = inject.Key("logger")
	keyCatalog = inject.Key("catalog")
)

// app is everything a command needs, wired once before the first RunE.
type app struct {
	cfg   *config.Config
	log   *zap.Logger
	demos *runner.Catalog
}

// cli carries flag state and the wired app across commands.
type cli struct {
	cfgPath string
	verbose bool
	noColor bool

	app *app
}

// wire loads config, builds the logger, and binds both plus the demo
// catalog into the app. Commands only ever see the finished app.
func (c *cli) wire() error {
	cfg, err := config.Load(c.cfgPath)
	if err != nil {
		return err
	}
	if c.noColor {
		cfg.NoColor = true
	}

	logger, err := buildLogger(cfg.LogLevel, c.verbose)
	if err != nil {
		return err
	}

	wired, err := inject.Init(func() *app { return &app{} }).Apply(
		inject.Bind(keyConfig,
			inject.Init(func() *config.Config { return cfg }),
			func(a *app, v *config.Config) { a.cfg = v },
		),
		inject.Bind(keyLogger,
			inject.Init(func() *zap.Logger { return logger }),
			func(a *app, v *zap.Logger) { a.log = v },
		),
		inject.Bind(keyCatalog,
			inject.Init(runner.Standard),
			func(a *app, v *runner.Catalog) { a.demos = v },
		),
	)
	if err != nil {
		return fmt.Errorf("solid: wire app: %w", err)
	}

	c.app = wired.Value
	c.app.log.Debug("composition root wired",
		zap.Int("deps", len(wired.Deps)),
		zap.Strings("demos", c.app.demos.Names()),
	)
	return nil
}

// buildLogger maps the config level onto a production zap logger.
// --verbose wins over whatever the config says.
func buildLogger(level string, verbose bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("solid: bad log level %q: %w", level, err)
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}

/* root command */

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "solid",
		Short: "Runnable tour of the five SOLID principles",
		Long: `solid is a teaching CLI: five small membership examples, one per SOLID
principle, each shown first violated and then fixed.

list shows the demos, run narrates one (or all), explain renders the
write-up.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.wire()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.app != nil && c.app.log != nil {
				_ = c.app.log.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.PersistentFlags().StringVar(&c.cfgPath, "config", config.DefaultPath, "path to the YAML config file")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&c.noColor, "no-color", false, "disable styled output")

	root.AddCommand(c.newListCmd())
	root.AddCommand(c.newRunCmd())
	root.AddCommand(c.newExplainCmd())

	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
