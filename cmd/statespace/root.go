package main

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/statespace/fixture"
	"github.com/katalvlaran/statespace/internal/logging"
	"github.com/katalvlaran/statespace/telemetry"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	logLevel     string
	writeMetrics bool

	logger  *slog.Logger
	metrics *telemetry.Recorder
}

func newRootCmd() *cobra.Command {
	a := &app{logger: logging.NewNop(), metrics: telemetry.New()}
	root := &cobra.Command{
		Use:           "statespace",
		Short:         "Solve grid and puzzle problems with breadth-first search",
		Long:          `statespace counts islands, routes mazes and measures water with jugs, driving every problem through the same breadth-first search engine.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(a.logLevel)
			if err != nil {
				return err
			}
			a.logger = logging.New(cmd.ErrOrStderr(), level)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if !a.writeMetrics {
				return nil
			}
			return a.metrics.WriteText(cmd.ErrOrStderr())
		},
	}

	// Persistent flags (available to all commands)
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	root.PersistentFlags().BoolVar(&a.writeMetrics, "metrics", false, "Write Prometheus metrics to stderr on exit")

	root.AddCommand(newRunCmd(a), newListCmd(a), newPitchersCmd(a))
	return root
}

// loadDocument reads path, or the embedded scenarios when path is empty.
func (a *app) loadDocument(path string) (*fixture.Document, error) {
	if path == "" {
		return fixture.Builtin()
	}
	doc, err := fixture.Load(path)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("fixture loaded", "path", path, "problems", len(doc.Problems))
	return doc, nil
}

// solve runs one entry with metric hooks attached and logs the outcome.
func (a *app) solve(e fixture.Entry) (fixture.Report, error) {
	kind := string(e.Kind)
	start := time.Now()
	rep, err := e.Run(a.metrics.Options(kind)...)
	elapsed := time.Since(start)
	if err != nil {
		a.logger.Error("problem failed", "name", e.Name, "kind", kind, "error", err)
		return rep, err
	}
	a.metrics.Observe(kind, rep.Status, rep.Steps, elapsed)
	a.logger.Info("problem solved",
		"name", e.Name,
		"kind", kind,
		"status", rep.Status.String(),
		"expanded", rep.Expanded,
		"elapsed", elapsed,
	)
	return rep, nil
}
