package main

import (
	"fmt"
	"os"

	"priority-scheduler/api"
	"priority-scheduler/config"
	"priority-scheduler/internal/metrics"
	"priority-scheduler/internal/responses"
	"priority-scheduler/internal/schedulers"
	"priority-scheduler/internal/util"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	port       int
	logLevel   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:          "priority-scheduler",
		Short:        "Simulate non-preemptive priority CPU scheduling",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			response, err := schedulers.SchedulePriority(cfg.Request())
			if err != nil {
				return err
			}
			return responses.WriteReport(cmd.OutOrStdout(), response)
		},
	}
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to configuration file (defaults to ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", config.DefaultLogLevel, "Log level (debug, info, warn, error)")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scheduler over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			registry := prometheus.NewRegistry()
			collector, err := metrics.NewCollector(registry)
			if err != nil {
				return errors.Wrap(err, "register metrics")
			}
			app := api.NewApp(api.NewSchedulerHandlerImpl(cfg, collector), registry)

			addr := fmt.Sprintf(":%d", cfg.Port)
			log.Info().Str("addr", addr).Msg("starting scheduler api")
			return app.Listen(addr)
		},
	}
	serveCmd.Flags().IntVar(&opts.port, "port", config.DefaultPort, "Server port (overrides config file)")
	rootCmd.AddCommand(serveCmd)

	return rootCmd
}

func loadConfig(cmd *cobra.Command, opts *options) (*config.SchedulerConfig, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = opts.port
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	util.InitLogger(cfg.LogLevel)
	log.Debug().Str("config", opts.configPath).Int("jobs", len(cfg.Jobs)).Msg("configuration loaded")
	return cfg, nil
}
