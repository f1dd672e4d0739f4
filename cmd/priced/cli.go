package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"priced/internal/artifact"
	"priced/internal/common/logutil"
	"priced/internal/config"
	"priced/internal/predictor"
	"priced/pkg/types"
)

// newRootCmd constructs the Cobra command tree. getenv is usually os.Getenv.
func newRootCmd(getenv func(string) string) *cobra.Command {
	root := &cobra.Command{
		Use:           "priced",
		Short:         "Serve price predictions from a pre-trained regression model",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, getenv)
			if err != nil {
				return err
			}
			logger, closer, err := logutil.New(logutil.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, File: cfg.LogFile})
			if err != nil {
				return err
			}
			defer closer.Close()
			return serve(cmd.Context(), cfg, logger, nil)
		},
	}

	d := config.Default()
	pf := root.PersistentFlags()
	pf.String("config", "", "Config file (.yaml, .yml, .json, .toml)")
	pf.String("model", d.ModelPath, "Model artifact path (env PRICED_MODEL)")
	f := root.Flags()
	f.String("host", d.Host, "Listen host (env PRICED_HOST)")
	f.Int("port", d.Port, "Listen port (env PORT)")
	f.String("log-level", d.LogLevel, "Log level: debug|info|warn|error|off (env PRICED_LOG_LEVEL)")
	f.String("log-format", d.LogFormat, "Log format: json|console (env PRICED_LOG_FORMAT)")
	f.String("log-file", "", "Rotating log file; empty logs to stderr (env PRICED_LOG_FILE)")
	f.Int64("max-body-bytes", d.MaxBodyBytes, "Maximum /predict body size (env PRICED_MAX_BODY_BYTES)")
	f.Int("cache-size", 0, "Prediction memo entries, 0 disables (env PRICED_CACHE_SIZE)")
	f.String("cors-origins", "*", "Comma separated allowed CORS origins (env PRICED_CORS_ORIGINS)")
	f.Int("shutdown-timeout", d.ShutdownTimeoutSeconds, "Graceful shutdown timeout in seconds")

	root.AddCommand(newCheckCmd(getenv), newPredictCmd(getenv))
	return root
}

func newCheckCmd(getenv func(string) string) *cobra.Command {
	return &cobra.Command{
		Use:     "check",
		Short:   "Load and validate a model artifact, then print its metadata",
		Example: "  priced check --model model.json",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, getenv)
			if err != nil {
				return err
			}
			a, err := artifact.Load(cfg.ModelPath)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(a.Info)
		},
	}
}

func newPredictCmd(getenv func(string) string) *cobra.Command {
	return &cobra.Command{
		Use:     "predict FEATURE...",
		Short:   "Run one prediction offline and print the JSON response",
		Example: "  priced predict --model model.json 1200 3 10\n  priced predict --model model.json -- -5 3 10   # negative values after --",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			features := make([]float64, len(args))
			for i, a := range args {
				v, err := strconv.ParseFloat(a, 64)
				if err != nil {
					return fmt.Errorf("feature %d: %w", i, err)
				}
				features[i] = v
			}
			cfg, err := resolveConfig(cmd, getenv)
			if err != nil {
				return err
			}
			a, err := artifact.Load(cfg.ModelPath)
			if err != nil {
				return err
			}
			resp, err := predictor.New(a.Model, a.Info).Predict(cmd.Context(), types.PredictRequest{Features: features})
			if err != nil {
				return err
			}
			return json.NewEncoder(cmd.OutOrStdout()).Encode(resp)
		},
	}
}

// resolveConfig layers defaults, the config file, the environment and the
// flags the user set explicitly, in that order.
func resolveConfig(cmd *cobra.Command, getenv func(string) string) (config.Config, error) {
	cfg := config.Default()
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		fileCfg, err := config.Load(p)
		if err != nil {
			return cfg, fmt.Errorf("config: %w", err)
		}
		cfg = config.Merge(cfg, fileCfg)
	}
	envCfg, err := config.FromEnv(getenv)
	if err != nil {
		return cfg, err
	}
	cfg = config.Merge(cfg, envCfg)

	fl := cmd.Flags()
	if fl.Changed("host") { cfg.Host, _ = fl.GetString("host") }
	if fl.Changed("port") { cfg.Port, _ = fl.GetInt("port") }
	if fl.Changed("model") { cfg.ModelPath, _ = fl.GetString("model") }
	if fl.Changed("log-level") { cfg.LogLevel, _ = fl.GetString("log-level") }
	if fl.Changed("log-format") { cfg.LogFormat, _ = fl.GetString("log-format") }
	if fl.Changed("log-file") { cfg.LogFile, _ = fl.GetString("log-file") }
	if fl.Changed("max-body-bytes") { cfg.MaxBodyBytes, _ = fl.GetInt64("max-body-bytes") }
	if fl.Changed("cache-size") { cfg.CacheSize, _ = fl.GetInt("cache-size") }
	if fl.Changed("shutdown-timeout") { cfg.ShutdownTimeoutSeconds, _ = fl.GetInt("shutdown-timeout") }
	if fl.Changed("cors-origins") {
		v, _ := fl.GetString("cors-origins")
		cfg.CORSOrigins = config.SplitCSV(v)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
