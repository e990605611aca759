package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"digital.vasic.facts/pkg/bank"
	"digital.vasic.facts/pkg/env"
	"digital.vasic.facts/pkg/fact"
	"digital.vasic.facts/pkg/logging"
	"digital.vasic.facts/pkg/metrics"
	"digital.vasic.facts/pkg/monitor"
	"digital.vasic.facts/pkg/report"
	"digital.vasic.facts/pkg/runner"
)

// Set by build flags.
var version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "facts",
		Short: "Facts - declarative assertion suites",
		Long: `Facts loads declarative fact banks (YAML or JSON),
evaluates every suite they define, and reports verified,
failed, and errored facts. The exit code is non-zero when any
fact did not verify.`,
		Version: version,
	}

	root.AddCommand(newRunCmd())
	root.AddCommand(newValidateCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runParams holds the parsed flags for the run command.
type runParams struct {
	paths       []string
	outDir      string
	monitorAddr string
	verbose     bool
	stdout      io.Writer
}

// runBanks is the extracted, testable body of the run command.
func runBanks(p runParams) error {
	logger := logging.NewConsoleLogger(p.verbose)
	defer logger.Close()

	collector := metrics.NewCollector()

	opts := []runner.SessionOption{
		runner.WithLogger(logger),
		runner.WithOutput(p.stdout),
		runner.WithObserver(collector.Observe),
	}

	var server *monitor.Server
	if p.monitorAddr != "" {
		server = monitor.NewServer(p.monitorAddr)
		opts = append(
			opts, runner.WithObserver(server.Observe),
		)

		ctx, cancel := context.WithCancel(
			context.Background(),
		)
		defer cancel()
		go func() {
			if err := server.Start(ctx); err != nil {
				logger.Warn("monitor stopped",
					logging.ErrorField(err),
				)
			}
		}()
		defer server.Stop(context.Background())
	}

	session := runner.NewSession(opts...)

	for _, path := range p.paths {
		file, err := bank.LoadFile(path)
		if err != nil {
			return err
		}
		logger.Debug("bank loaded",
			logging.LogField("path", path),
			logging.IntField("suites", len(file.Suites)),
		)

		start := time.Now()
		bank.Run(session, file)
		collector.RecordSuite(path, time.Since(start))
	}

	logger.Debug("run metrics",
		logging.IntField(
			"verified",
			collector.KindCount(fact.KindSuccess),
		),
		logging.IntField(
			"failed",
			collector.KindCount(fact.KindFailure),
		),
		logging.IntField(
			"errored",
			collector.KindCount(fact.KindError),
		),
	)

	if p.outDir != "" {
		if err := saveReports(session, p.outDir); err != nil {
			return err
		}
	}

	return session.ExitStatus()
}

// saveReports writes per-suite JSON reports and the run
// summary into outDir.
func saveReports(
	session *runner.Session,
	outDir string,
) error {
	suites := session.Suites()
	jsonReporter := report.NewJSONReporter(true)
	for _, suite := range suites {
		if _, err := jsonReporter.SaveReport(
			suite, outDir,
		); err != nil {
			return err
		}
	}

	summary := report.BuildRunSummary(suites)
	return report.SaveRunSummary(summary, outDir)
}

func newRunCmd() *cobra.Command {
	var (
		outDir      string
		monitorAddr string
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "run [bank files...]",
		Short: "Evaluate fact banks",
		Long: `Run loads each bank file, evaluates every suite it
defines, and prints suite reports. With --out, per-suite JSON
reports and a run summary are written as well.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			envs := env.NewLoader()
			if _, err := os.Stat(".env"); err == nil {
				if err := envs.Load(".env"); err != nil {
					return err
				}
			}
			if outDir == "" {
				outDir = envs.Get("FACTS_OUT")
			}
			if monitorAddr == "" {
				monitorAddr = envs.Get("FACTS_MONITOR")
			}

			return runBanks(runParams{
				paths:       args,
				outDir:      outDir,
				monitorAddr: monitorAddr,
				verbose:     verbose,
				stdout:      os.Stdout,
			})
		},
	}

	cmd.Flags().StringVar(
		&outDir, "out", "",
		"directory for JSON reports and the run summary",
	)
	cmd.Flags().StringVar(
		&monitorAddr, "monitor", "",
		"address for the live WebSocket monitor (e.g. :8077)",
	)
	cmd.Flags().BoolVarP(
		&verbose, "verbose", "v", false,
		"enable debug logging",
	)
	return cmd
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [bank files...]",
		Short: "Validate fact banks without running them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			for _, path := range args {
				if _, err := bank.LoadFile(path); err != nil {
					return err
				}
				fmt.Printf("%s: ok\n", path)
			}
			return nil
		},
	}
}
