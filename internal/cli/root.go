package cli

import (
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"hkgbuild/internal/app"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "HKGBUILD"

type RootConfig struct {
	ConfigFile string
	LogLevel   string
}

func Execute() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		log.Error().Msg(errorMessage(err))
		os.Exit(exitCodeForError(err))
	}
}

func newRootCommand() *cobra.Command {
	cfg := RootConfig{}
	cmd := &cobra.Command{
		Use:           "hkgbuild",
		Short:         "Create PKGBUILDs for Hackage packages",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(cfg.ConfigFile); err != nil {
				return err
			}
			setupLogging(viper.GetString("log_level"))
			return nil
		},
	}
	flags := cmd.PersistentFlags()
	flags.StringVar(&cfg.ConfigFile, "config", "", "Config file path")
	flags.StringVar(&cfg.LogLevel, "log-level", "info", "Log level")
	flags.String("index-url", app.DefaultIndexURL, "Package index base URL")
	flags.String("ecosystem-prefix", app.DefaultEcosystemPrefix, "Prefix added to every dependency name")
	flags.String("toolchain-name", app.DefaultToolchainName, "Name of the pinned toolchain package")
	flags.String("toolchain-version", app.DefaultToolchainVersion, "Pinned toolchain version (ver-rel)")
	flags.String("repository", app.DefaultRepository, "Repository named in the recipe header")
	flags.String("maintainer-name", "", "Maintainer name")
	flags.String("maintainer-alias", "", "Maintainer alias")
	flags.String("maintainer-email", "", "Maintainer e-mail")
	flags.Int("http-timeout", app.DefaultHTTPTimeoutSec, "HTTP timeout in seconds (0 = default)")
	flags.String("user-agent", "", "User-Agent sent to the index")
	flags.Bool("reuse-page", false, "Fetch each package page once per lookup instead of once per field")

	_ = viper.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("index_url", flags.Lookup("index-url"))
	_ = viper.BindPFlag("ecosystem_prefix", flags.Lookup("ecosystem-prefix"))
	_ = viper.BindPFlag("toolchain_name", flags.Lookup("toolchain-name"))
	_ = viper.BindPFlag("toolchain_version", flags.Lookup("toolchain-version"))
	_ = viper.BindPFlag("repository", flags.Lookup("repository"))
	_ = viper.BindPFlag("maintainer_name", flags.Lookup("maintainer-name"))
	_ = viper.BindPFlag("maintainer_alias", flags.Lookup("maintainer-alias"))
	_ = viper.BindPFlag("maintainer_email", flags.Lookup("maintainer-email"))
	_ = viper.BindPFlag("http_timeout_sec", flags.Lookup("http-timeout"))
	_ = viper.BindPFlag("user_agent", flags.Lookup("user-agent"))
	_ = viper.BindPFlag("reuse_page", flags.Lookup("reuse-page"))

	cmd.AddCommand(newNewCommand())
	cmd.AddCommand(newLookupCommand())
	cmd.AddCommand(newBatchCommand())
	cmd.AddCommand(newInspectCommand())
	return cmd
}

func initConfig(configFile string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to read config file").
				WithCause(err)
		}
		return nil
	}

	viper.SetConfigName("hkgbuild")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/hkgbuild")
	if err := viper.ReadInConfig(); err != nil {
		return nil
	}
	return nil
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// serviceConfig collects the global settings from flags, environment and
// config file.
func serviceConfig() app.Config {
	return app.Config{
		IndexURL:         strings.TrimSpace(viper.GetString("index_url")),
		EcosystemPrefix:  viper.GetString("ecosystem_prefix"),
		ToolchainName:    strings.TrimSpace(viper.GetString("toolchain_name")),
		ToolchainVersion: strings.TrimSpace(viper.GetString("toolchain_version")),
		Repository:       viper.GetString("repository"),
		MaintainerName:   viper.GetString("maintainer_name"),
		MaintainerAlias:  viper.GetString("maintainer_alias"),
		MaintainerEmail:  viper.GetString("maintainer_email"),
		HTTPTimeoutSec:   viper.GetInt("http_timeout_sec"),
		UserAgent:        viper.GetString("user_agent"),
		ReusePage:        viper.GetBool("reuse_page"),
	}
}

func newAppService() (app.Service, error) {
	cfg := serviceConfig()
	if err := cfg.Validate(); err != nil {
		return app.Service{}, err
	}
	return app.NewService(cfg), nil
}

func exitCodeForError(err error) int {
	if app.IsNetworkError(err) {
		return 6
	}
	if app.IsEncodingError(err) {
		return 7
	}
	code := errbuilder.CodeOf(err)
	switch code {
	case errbuilder.CodeInvalidArgument, errbuilder.CodeAlreadyExists:
		return 2
	case errbuilder.CodeFailedPrecondition, errbuilder.CodePermissionDenied:
		return 3
	case errbuilder.CodeNotFound, errbuilder.CodeInternal:
		return 5
	default:
		return 1
	}
}

func errorMessage(err error) string {
	return app.ErrorMessage(err)
}
