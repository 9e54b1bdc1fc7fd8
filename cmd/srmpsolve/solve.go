package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/srmp/cfn/uai"
	"github.com/katalvlaran/srmp/relaxation"
	"github.com/katalvlaran/srmp/srmp"
	"github.com/katalvlaran/srmp/srmpmetrics"
)

func newSolveCmd() *cobra.Command {
	var (
		inputPath   string
		outputPath  string
		configPath  string
		lg          bool
		metricsAddr string
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a UAI/UAI-LG model file",
		Long: `The solve command reads a cost function network in UAI or UAI-LG
format, runs the SRMP solver to convergence (or until a configured stopping
condition fires), and writes the result in .ans format.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, inputPath, outputPath, configPath, lg, metricsAddr)
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "path to the UAI/UAI-LG model file (required)")
	cmd.Flags().StringVar(&outputPath, "output", "", "path to write the .ans result file (required)")
	cmd.Flags().StringVar(&configPath, "config", "", "path to an optional YAML config file")
	cmd.Flags().BoolVar(&lg, "lg", false, "mark the input as UAI-LG (values are read the same way as plain UAI)")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "if set, serve Prometheus /metrics on this address for the duration of the solve")

	return cmd
}

func runSolve(cmd *cobra.Command, inputPath, outputPath, configPath string, lg bool, metricsAddr string) error {
	if inputPath == "" || outputPath == "" {
		return fmt.Errorf("srmpsolve: --input and --output are required")
	}

	runID := uuid.New().String()
	logger := log.WithField("run_id", runID)

	opts, err := loadOptions(configPath)
	if err != nil {
		return fmt.Errorf("srmpsolve: loading config: %w", err)
	}

	if metricsAddr != "" {
		reg := prometheus.NewRegistry()
		opts.Metrics = srmpmetrics.NewCollector(reg)

		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		srv := &http.Server{Addr: metricsAddr, Handler: mux}
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.WithError(err).Warn("metrics server stopped")
			}
		}()
		defer srv.Close()
	}

	inFile, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("srmpsolve: opening input: %w", err)
	}
	defer inFile.Close()

	net, err := uai.ReadModel(inFile, lg)
	if err != nil {
		return fmt.Errorf("srmpsolve: reading model: %w", err)
	}
	logger.WithFields(log.Fields{
		"variables": net.NumVariables(),
		"factors":   len(net.Factors()),
	}).Info("model loaded")

	edges, err := relaxation.MinimalEdges(net)
	if err != nil {
		return fmt.Errorf("srmpsolve: building relaxation: %w", err)
	}

	solver, err := srmp.Build(net, edges, opts)
	if err != nil {
		return fmt.Errorf("srmpsolve: preparing solver: %w", err)
	}

	start := time.Now()
	res, runErr := solver.Run(signalContext())
	logger.WithFields(log.Fields{
		"iterations": res.Iterations,
		"lower_bound": res.LowerBound,
		"best_cost":   res.BestCost,
		"reason":      res.Reason,
		"elapsed":     time.Since(start),
	}).Info("solve finished")
	if runErr != nil {
		logger.WithError(runErr).Warn("solve aborted with a numeric error; writing last-known-good result")
	}

	outFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("srmpsolve: creating output: %w", err)
	}
	defer outFile.Close()

	if err := uai.WriteAns(outFile, res); err != nil {
		return fmt.Errorf("srmpsolve: writing result: %w", err)
	}

	return runErr
}
