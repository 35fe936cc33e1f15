package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	brwast "github.com/AugmentedFifth/brouwer/ast"
	brwerror "github.com/AugmentedFifth/brouwer/core/error"
	brwlog "github.com/AugmentedFifth/brouwer/core/log"
	"github.com/AugmentedFifth/brouwer/parser"
)

var watchCmd = &cobra.Command{
	Use:   "watch FILE",
	Short: "Reparse a source file whenever it changes",
	Long: `watch parses the source file, then keeps watching it and reparses
on every change. Each run prints either the parse tree or the parse
error, so the output tracks the file as it is edited. Interrupt with
Ctrl+C to stop watching.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// The root command silences cobra's own error printing, so
		// setup failures have to be reported here.
		err := runWatch(cmd, args)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
		}

		return err
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	path := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := newLogger(cfg).WithName("watch")
	maxDepth := cfg.GetIntDefault("parser.max_depth", parser.DefaultMaxDepth)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return brwerror.Wrap(err, "failed to create file watcher").
			WithCode(brwerror.CodeIOError)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return brwerror.Wrap(err, "failed to watch source file").
			WithCode(brwerror.CodeIOError).
			WithDetail("path", path)
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	watchParse(cmd, logger, path, maxDepth)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				watchParse(cmd, logger, path, maxDepth)
			}

			// Editors that save by rename replace the watched inode,
			// so the watch has to be re-established on the path.
			if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				if err := watcher.Add(path); err != nil {
					logger.Warn("lost watch on source file",
						brwlog.String("path", path), brwlog.Err(err))
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			logger.Warn("watch error", brwlog.Err(err))
		case <-interrupt:
			logger.Info("watch interrupted")

			return nil
		}
	}
}

// watchParse runs one parse of the watched file. Every run gets its
// own parser and run identifier so log lines from overlapping edits
// stay attributable.
func watchParse(cmd *cobra.Command, logger *brwlog.Logger, path string, maxDepth int) {
	runLogger := logger.WithField("run_id", uuid.NewString())
	runLogger.Info("parsing", brwlog.String("path", path))

	p := parser.New(parser.Options{
		Logger:   runLogger.WithName("parser"),
		MaxDepth: maxDepth,
	})

	root, err := p.ParseFile(path)
	if err != nil {
		printParseError(cmd.ErrOrStderr(), err)

		return
	}

	if err := brwast.Fprint(cmd.OutOrStdout(), root); err != nil {
		runLogger.Warn("failed to write parse tree", brwlog.Err(err))

		return
	}

	fmt.Fprintln(cmd.OutOrStdout())
}
