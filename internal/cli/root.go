// Package cli implements the bruh command line.
package cli

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ironsheep/bruh/internal/config"
	"github.com/ironsheep/bruh/internal/logging"
)

// configKeyAnnotation marks a flag as overriding a configuration key.
const configKeyAnnotation = "bruh_config_key"

// BuildInfo identifies the binary; set by ldflags in main.
type BuildInfo struct {
	Version   string
	BuildTime string
	GitCommit string
}

type app struct {
	build      BuildInfo
	v          *viper.Viper
	cfg        *config.Config
	configPath string
}

// NewRootCmd builds the command tree with its own configuration state.
func NewRootCmd(build BuildInfo) *cobra.Command {
	a := &app{build: build, v: config.New()}

	root := &cobra.Command{
		Use:   "bruh",
		Short: "Convert images to and from the BRUH hex text format",
		Long: `bruh converts raster images into BRUH documents (an 8-byte little-endian
width/height header followed by one 6-digit hex token per pixel, rows
separated by newlines) and renders BRUH documents back into raster images.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (yaml, toml or json)")
	root.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	bindConfigKey(root.PersistentFlags(), "log-level", "log.level")

	root.AddCommand(
		newCompileCmd(a),
		newPreviewCmd(a),
		newInspectCmd(a),
		newServeCmd(a),
		newVersionCmd(a),
	)
	return root
}

// Execute runs the command line against os.Args.
func Execute(build BuildInfo) error {
	return NewRootCmd(build).Execute()
}

func bindConfigKey(flags *pflag.FlagSet, name, key string) {
	if err := flags.SetAnnotation(name, configKeyAnnotation, []string{key}); err != nil {
		panic(err)
	}
}

// setup merges flags, environment and config file, then installs the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		keys, ok := f.Annotations[configKeyAnnotation]
		if !ok || bindErr != nil {
			return
		}
		bindErr = config.BindFlag(a.v, keys[0], f)
	})
	if bindErr != nil {
		return bindErr
	}

	cfg, err := config.Load(a.v, a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if _, err := logging.Init(cfg.Log.Level, cmd.ErrOrStderr()); err != nil {
		return err
	}
	log.Debug("configuration loaded", "file", a.configPath, "workers", cfg.Compile.Workers,
		"preview", cfg.Preview.Output, "scale", cfg.Preview.Scale, "strict_rows", cfg.Decode.StrictRows)
	return nil
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "bruh %s\n", a.build.Version)
			fmt.Fprintf(out, "  Build time: %s\n", a.build.BuildTime)
			fmt.Fprintf(out, "  Git commit: %s\n", a.build.GitCommit)
		},
	}
}
