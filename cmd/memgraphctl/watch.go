package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arkusai/memgraph/pipeline"
)

var watchConfigPath string

var watchCmd = &cobra.Command{
	Use:   "watch <directory>",
	Short: "Watch a directory for new .trace files and analyze each as it arrives",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchConfigPath, "config", "c", "", "path to a YAML config file (defaults to pipeline.DefaultConfig)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	dir := args[0]

	cfg, err := loadConfig(watchConfigPath)
	if err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting file watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watching %q: %w", dir, err)
	}

	log.Info().Str("dir", dir).Msg("watching for trace files")

	return watchLoop(cmd.Context(), w, cfg)
}

// watchLoop analyzes every ".trace" file that is created or written in dir,
// one at a time and in event order, until ctx is cancelled or the watcher's
// channels close. Each analysis failure is logged and skipped rather than
// aborting the watch — a single malformed trace should not take down a
// long-running watch session.
func watchLoop(ctx context.Context, w *fsnotify.Watcher, cfg pipeline.Config) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			if !strings.HasSuffix(event.Name, ".trace") {
				continue
			}

			handleTraceEvent(ctx, event.Name, cfg)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Error().Err(err).Msg("watcher error")
		}
	}
}

func handleTraceEvent(ctx context.Context, path string, cfg pipeline.Config) {
	log.Info().Str("file", filepath.Base(path)).Msg("new trace detected")

	res, err := analyzeFile(ctx, path, cfg)
	if err != nil {
		log.Error().Err(err).Str("file", path).Msg("analysis failed")

		return
	}

	if err := printResult(res); err != nil {
		log.Error().Err(err).Msg("writing result")
	}
}
