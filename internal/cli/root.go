// Package cli implements the graphyn-gallery command.
package cli

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/piwi3910/graphyn-fyne/graphyn"
	"github.com/piwi3910/graphyn-fyne/internal/gallery"
	"github.com/piwi3910/graphyn-fyne/toolkit"
)

var version = "dev"

// SetVersion sets the version reported by --version.
func SetVersion(v string) {
	version = v
}

// settings is the resolved command configuration.
type settings struct {
	Mode     graphyn.Mode
	Config   graphyn.Config
	LogLevel zerolog.Level
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd(runGallery).Execute()
}

func newRootCmd(run func(cmd *cobra.Command, s settings) error) *cobra.Command {
	v := viper.New()
	defaults := graphyn.DefaultConfig()

	cmd := &cobra.Command{
		Use:     "graphyn-gallery",
		Short:   "Preview the Graphyn design tokens in a Fyne window",
		Long:    `Opens a window showing every Graphyn color role, the typography and radius tokens, and a set of stock Fyne widgets rendered with them.`,
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(v)
			if err != nil {
				return err
			}
			return run(cmd, s)
		},
		SilenceUsage: true,
	}

	flags := cmd.Flags()
	flags.StringP("mode", "m", graphyn.DefaultMode.String(), "initial theme mode (light or dark)")
	flags.String("font-sans", defaults.FontSans, "sans-serif font family")
	flags.String("font-mono", defaults.FontMono, "monospace font family")
	flags.Float64("font-size", defaults.FontSize, "base font size in pixels")
	flags.Float64("radius", defaults.Radius, "corner radius in pixels")
	flags.Bool("shadow", defaults.Shadow, "enable shadows")
	flags.String("log-level", zerolog.InfoLevel.String(), "log level (debug, info, warn, error)")

	// Bind flags to viper; GRAPHYN_* environment variables override the defaults.
	for _, name := range []string{"mode", "font-sans", "font-mono", "font-size", "radius", "shadow", "log-level"} {
		_ = v.BindPFlag(strings.ReplaceAll(name, "-", "_"), flags.Lookup(name))
	}
	v.SetEnvPrefix("graphyn")
	v.AutomaticEnv()

	return cmd
}

func loadSettings(v *viper.Viper) (settings, error) {
	mode, err := graphyn.ParseMode(v.GetString("mode"))
	if err != nil {
		return settings{}, err
	}
	level, err := zerolog.ParseLevel(v.GetString("log_level"))
	if err != nil {
		return settings{}, fmt.Errorf("invalid log level: %w", err)
	}
	cfg := graphyn.NewConfig(
		graphyn.WithFontSans(v.GetString("font_sans")),
		graphyn.WithFontMono(v.GetString("font_mono")),
		graphyn.WithFontSize(v.GetFloat64("font_size")),
		graphyn.WithRadius(v.GetFloat64("radius")),
		graphyn.WithShadow(v.GetBool("shadow")),
	)
	return settings{Mode: mode, Config: cfg, LogLevel: level}, nil
}

func runGallery(cmd *cobra.Command, s settings) error {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
		Level(s.LogLevel).
		With().Timestamp().Logger()

	application := app.NewWithID("io.graphyn.gallery")
	window := application.NewWindow("Graphyn Gallery")

	host := toolkit.NewHost(application, toolkit.WithLogger(logger))
	g := gallery.NewApp(application, window, host, s.Mode, s.Config)
	g.SetupMenus()
	window.SetContent(fynetooltip.AddWindowToolTipLayer(g.Build(), window.Canvas()))
	if err := g.Apply(); err != nil {
		return fmt.Errorf("applying theme: %w", err)
	}
	logger.Info().
		Str("mode", s.Mode.String()).
		Str("font", s.Config.FontSans).
		Msg("gallery started")

	window.Resize(fyne.NewSize(900, 640))
	window.CenterOnScreen()
	window.ShowAndRun()
	return nil
}
