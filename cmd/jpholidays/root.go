package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rabitt1ove/jpholiday-engine/internal/config"
	"github.com/rabitt1ove/jpholiday-engine/internal/logger"
	"github.com/rabitt1ove/jpholiday-engine/internal/official"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

const (
	rootUsage = "jpholidays"
	rootShort = "Compute Japanese national holidays"
	rootLong  = "jpholidays computes Japanese national holidays (国民の祝日), substitute " +
		"holidays (振替休日) and citizens' holidays (国民の休日) from the statutory rules."
	rootExample = "jpholidays list --from 2024 --to 2025"

	configFlag    = "config"
	configDesc    = "config file (YAML, TOML or JSON)"
	logLevelFlag  = "log-level"
	logLevelDesc  = "log level: debug, info, warn or error"
	logPrettyFlag = "log-pretty"
	logPrettyDesc = "human-readable log output"
	parallelFlag  = "parallel"
	parallelDesc  = "number of years computed concurrently"
	versionFlag   = "version"
	versionDesc   = "show the version info and exit"
)

// app carries the state shared by every command of one invocation.
type app struct {
	v          *viper.Viper
	cfg        config.Config
	configFile string

	// newClient builds the official CSV client; tests replace it.
	newClient func(config.OfficialConfig) *official.Client
}

func defaultClient(c config.OfficialConfig) *official.Client {
	client := official.NewClient(c.Timeout, c.Retries)
	client.URL = c.URL
	return client
}

// newRootCmd builds the command tree.
func newRootCmd(a *app) *cobra.Command {
	var printVersion bool

	c := &cobra.Command{
		Use:           rootUsage,
		Short:         rootShort,
		Long:          rootLong,
		Example:       rootExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if printVersion {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "jpholidays version %s\n", version)
				return err
			}
			return cmd.Usage()
		},
	}

	c.PersistentFlags().StringVar(&a.configFile, configFlag, "", configDesc)
	c.PersistentFlags().String(logLevelFlag, "info", logLevelDesc)
	c.PersistentFlags().Bool(logPrettyFlag, false, logPrettyDesc)
	c.PersistentFlags().Int(parallelFlag, 4, parallelDesc)
	c.Flags().BoolVarP(&printVersion, versionFlag, "v", false, versionDesc)
	mustBind(a.v, config.KeyLogLevel, c.PersistentFlags().Lookup(logLevelFlag))
	mustBind(a.v, config.KeyLogPretty, c.PersistentFlags().Lookup(logPrettyFlag))
	mustBind(a.v, config.KeyParallel, c.PersistentFlags().Lookup(parallelFlag))

	c.AddCommand(newListCmd(a))
	c.AddCommand(newEraCmd())
	c.AddCommand(newDiffCmd(a))
	return c
}

// load reads the configuration and configures the logger. It runs before
// every command so that flags, env and file are all visible.
func (a *app) load() error {
	cfg, err := config.Load(a.v, a.configFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	logger.Init(logger.Options{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})
	logger.L().Debug().Str("config", a.configFile).Msg("configuration loaded")
	return nil
}

// Execute builds the command tree and runs it with the process arguments.
// An interrupt cancels the running command.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{v: config.New(), newClient: defaultClient}
	return newRootCmd(a).ExecuteContext(ctx)
}
