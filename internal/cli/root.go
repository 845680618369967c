package cli

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/wundara/folio-desktop/internal/logger"
	"github.com/wundara/folio-desktop/internal/platform"
)

// Option keys shared by flags and the config file
const (
	KeyPortfolio = "portfolio"
	KeyAssets    = "assets"
	KeyDebug     = "debug"
	KeyLogFile   = "log-file"

	// EnvAssetBase overrides the asset base path
	EnvAssetBase = "FOLIO_ASSET_BASE"

	ConfigFileName = "config"
)

// Options are the resolved launch options
type Options struct {
	PortfolioPath string
	AssetBase     string
	Debug         bool
	LogFile       string
}

// NewRootCmd builds the command tree. Running the root command without a
// subcommand launches the desktop.
func NewRootCmd(version string) *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:           "folio-desktop",
		Short:         "Portfolio presented as a desktop",
		Long:          "folio-desktop shows a portfolio as a small desktop: icons open windows, images and the floating element can be dragged, and the dock links out.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return readConfigFile(v)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDesktop(cmd, resolveOptions(v), version)
		},
	}

	bindOptions(v, root.PersistentFlags())

	root.AddCommand(runCmd(v, version))
	root.AddCommand(validateCmd(v))
	return root
}

// Execute runs the command tree with os.Args
func Execute(version string) error {
	return NewRootCmd(version).Execute()
}

// bindOptions registers the launch flags and binds them into v. The asset
// base is the only option read from the environment.
func bindOptions(v *viper.Viper, flags *pflag.FlagSet) {
	flags.StringP(KeyPortfolio, "p", "", "portfolio descriptor file or directory (YAML or JSON)")
	flags.StringP(KeyAssets, "a", "", "base path or URL prepended to every media path")
	flags.Bool(KeyDebug, false, "enable debug logging")
	flags.String(KeyLogFile, "", "log file (defaults to the user cache directory)")
	for _, key := range []string{KeyPortfolio, KeyAssets, KeyDebug, KeyLogFile} {
		_ = v.BindPFlag(key, flags.Lookup(key))
	}

	_ = v.BindEnv(KeyAssets, EnvAssetBase)
}

func runCmd(v *viper.Viper, version string) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Open the desktop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDesktop(cmd, resolveOptions(v), version)
		},
	}
}

func resolveOptions(v *viper.Viper) Options {
	return Options{
		PortfolioPath: v.GetString(KeyPortfolio),
		AssetBase:     v.GetString(KeyAssets),
		Debug:         v.GetBool(KeyDebug),
		LogFile:       v.GetString(KeyLogFile),
	}
}

// readConfigFile loads config.yaml from the user config directory when
// one exists
func readConfigFile(v *viper.Viper) error {
	dir, err := platform.ConfigDir()
	if err != nil {
		return nil
	}
	v.SetConfigName(ConfigFileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

func newLogger(opts Options) (*logger.Logger, error) {
	level := zerolog.InfoLevel
	if opts.Debug {
		level = zerolog.DebugLevel
	}
	logOpts := []logger.Option{logger.WithLevel(level)}
	if opts.Debug {
		logOpts = append(logOpts, logger.WithConsole())
	}
	if opts.LogFile != "" {
		logOpts = append(logOpts, logger.WithFile(opts.LogFile))
	}
	return logger.NewLogger(logOpts...)
}
