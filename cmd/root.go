package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/inference-sim/ssq-sim/sim"
	"github.com/inference-sim/ssq-sim/sim/trace"
)

var (
	// CLI flags for the queue model
	seed        int64   // Seed planted in every RNG stream
	stopTime    float64 // Horizon: no arrivals accepted at or beyond this time
	arrivalMean float64 // Mean inter-arrival time (the arrival-rate denominator)
	serviceMin  float64 // Lower bound of the uniform service law
	serviceMax  float64 // Upper bound of the uniform service law
	policyName  string  // Queueing discipline: FCFS, LCFS, SJF, RO

	// CLI flags for logging, input and output
	logLevel    string // Log verbosity level
	configPath  string // Optional YAML run config
	traceLevel  string // "none" or "events"
	csvDir      string // Directory for per-policy CSV series (empty = skip)
	sqlitePath  string // SQLite results database (empty = skip, "auto" = xid-named file)
	resultsPath string // JSON results file (empty = skip)
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "ssq-sim",
	Short: "Discrete-event simulator for a single-server queue",
}

// runCmd executes one simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the single-server queue simulation under one policy",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		cfg, err := buildConfig(cmd)
		if err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}

		res, err := runPolicy(cfg)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}

		printResult(os.Stdout, res)
		printPrediction(os.Stdout, cfg)

		if err := writeOutputs([]*runResult{res}, cfg); err != nil {
			logrus.Fatalf("Writing results failed: %v", err)
		}
		logrus.Info("Simulation complete.")
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// buildConfig layers the run configuration: defaults, then the --config
// file, then every flag the user set explicitly.
func buildConfig(cmd *cobra.Command) (sim.Config, error) {
	cfg := sim.DefaultConfig()

	if configPath != "" {
		f, err := LoadRunFile(configPath)
		if err != nil {
			return cfg, err
		}
		if err := f.Apply(&cfg); err != nil {
			return cfg, fmt.Errorf("%s: %w", configPath, err)
		}
		logrus.Infof("Loaded run config from %s", configPath)
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("stop") {
		cfg.Stop = stopTime
	}
	if flags.Changed("arrival-mean") {
		cfg.ArrivalMean = arrivalMean
	}
	if flags.Changed("service-min") {
		cfg.ServiceMin = serviceMin
	}
	if flags.Changed("service-max") {
		cfg.ServiceMax = serviceMax
	}
	if flags.Lookup("policy") != nil && flags.Changed("policy") {
		p, err := sim.ParsePolicy(policyName)
		if err != nil {
			return cfg, err
		}
		cfg.Policy = p
	}
	if flags.Changed("trace") {
		enabled, err := parseTraceLevel(traceLevel)
		if err != nil {
			return cfg, err
		}
		cfg.Trace = enabled
	}

	return cfg, cfg.Validate()
}

func parseTraceLevel(level string) (bool, error) {
	if !trace.IsValidTraceLevel(level) {
		return false, fmt.Errorf("unknown trace level %q (valid: none, events)", level)
	}
	return trace.TraceLevel(level) == trace.TraceLevelEvents, nil
}

// registerModelFlags attaches the queue-model and output flags shared by run and compare.
func registerModelFlags(c *cobra.Command) {
	def := sim.DefaultConfig()
	c.Flags().Int64Var(&seed, "seed", def.Seed, "Seed planted in every RNG stream")
	c.Flags().Float64Var(&stopTime, "stop", def.Stop, "Simulation stop time; no arrivals are accepted at or beyond it")
	c.Flags().Float64Var(&arrivalMean, "arrival-mean", def.ArrivalMean, "Mean inter-arrival time (exponential)")
	c.Flags().Float64Var(&serviceMin, "service-min", def.ServiceMin, "Lower bound of the uniform service time")
	c.Flags().Float64Var(&serviceMax, "service-max", def.ServiceMax, "Upper bound of the uniform service time")
	c.Flags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	c.Flags().StringVar(&configPath, "config", "", "YAML run config; explicitly set flags override it")
	c.Flags().StringVar(&traceLevel, "trace", "none", "Event trace level (none, events)")
	c.Flags().StringVar(&csvDir, "csv-dir", "", "Write per-job delay/wait series to <dir>/<policy>.csv")
	c.Flags().StringVar(&sqlitePath, "sqlite", "", "Write reports and series to this SQLite database (\"auto\" for a generated name)")
	c.Flags().StringVar(&resultsPath, "results-path", "", "Write reports as JSON to this file")
}

// init sets up CLI flags and subcommands
func init() {
	registerModelFlags(runCmd)
	runCmd.Flags().StringVar(&policyName, "policy", string(sim.PolicyFCFS), "Queueing discipline (FCFS, LCFS, SJF, RO)")

	registerModelFlags(compareCmd)
	compareCmd.Flags().StringSliceVar(&comparePolicies, "policies", policyNames(sim.AllPolicies()), "Policies to compare on the same sample path")

	// Attach subcommands to `root`
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(compareCmd)
}
