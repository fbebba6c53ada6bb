// geomcheck evaluates geometry scene documents and reports query results.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-geom/internal/config"
	"github.com/Faultbox/midgard-geom/internal/logger"
	"github.com/Faultbox/midgard-geom/internal/scene"
	"github.com/Faultbox/midgard-geom/internal/watch"
)

func main() {
	os.Exit(run())
}

// run executes geomcheck and returns the process exit status. Deferred
// cleanup runs before main exits.
func run() int {
	config.ParseFlags()

	files := config.Args()
	if len(files) == 0 && !config.SaveRequested() {
		printUsage()
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return 1
	}

	if config.SaveRequested() {
		if err := saveConfig(os.Stdout, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			return 1
		}
		return 0
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	logger.Sugar.Debugf("Config: %+v", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	failed, err := check(ctx, os.Stdout, files, cfg)
	if err != nil {
		logger.Error("evaluation failed", zap.Error(err))
		if !cfg.Check.Watch {
			return 1
		}
	}

	if cfg.Check.Watch {
		if err := watchFiles(ctx, os.Stdout, files, cfg); err != nil {
			logger.Error("watch failed", zap.Error(err))
			return 1
		}
		return 0
	}

	if failed > 0 {
		return 3
	}
	return 0
}

// saveConfig writes cfg to the default config location and reports where.
func saveConfig(w io.Writer, cfg *config.Config) error {
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	_, err := fmt.Fprintf(w, "Config saved to %s\n", config.DefaultPath())
	return err
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `geomcheck - evaluate geometry scene documents

Usage:
  geomcheck [flags] <file>...
  geomcheck [flags] -save-config

Files may be .yaml, .yml, .json or .toml.

Flags:
  -config <path>   Config file (default ./geomcheck.yaml or user config dir)
  -debug           Enable debug logging
  -epsilon <e>     Tolerance for expected values
  -workers <n>     Files evaluated in parallel
  -format <fmt>    Report format: text or yaml
  -watch           Re-evaluate files when they change
  -save-config     Write the effective config to the user config dir and exit

Exit status is 3 when an expectation fails.`)
}

// check evaluates files and writes the reports. It returns the number of
// failed expectations.
func check(ctx context.Context, w io.Writer, files []string, cfg *config.Config) (int, error) {
	reports, err := scene.EvaluateFiles(ctx, files, cfg.Check.Epsilon, cfg.Check.Workers)
	if err != nil {
		return 0, err
	}

	if err := write(w, cfg.Check.Format, reports...); err != nil {
		return 0, fmt.Errorf("writing report: %w", err)
	}

	failed := 0
	for _, r := range reports {
		failed += r.Failed
	}
	return failed, nil
}

func write(w io.Writer, format string, reports ...*scene.Report) error {
	if format == config.FormatYAML {
		return scene.WriteYAML(w, reports...)
	}
	return scene.WriteText(w, reports...)
}

// watchFiles re-evaluates each file as it changes until ctx is cancelled.
func watchFiles(ctx context.Context, w io.Writer, files []string, cfg *config.Config) error {
	watcher, err := watch.New(files...)
	if err != nil {
		return err
	}

	logger.Info("watching for changes", zap.Strings("files", files))
	return watcher.Run(ctx, func(path string) {
		report, err := scene.EvaluateFile(path, cfg.Check.Epsilon)
		if err != nil {
			logger.Warn("evaluation failed", zap.String("file", path), zap.Error(err))
			return
		}
		if err := write(w, cfg.Check.Format, report); err != nil {
			logger.Warn("writing report failed", zap.Error(err))
		}
	})
}
