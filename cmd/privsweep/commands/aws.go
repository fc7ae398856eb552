package commands

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/privsweep/privsweep/internal/provider/aws"
	"github.com/privsweep/privsweep/internal/scan"
	"github.com/privsweep/privsweep/internal/swarm"
	"github.com/privsweep/privsweep/internal/telemetry"
	"github.com/privsweep/privsweep/internal/ui"
	"github.com/privsweep/privsweep/internal/version"
)

var awsCmd = &cobra.Command{
	Use:   "aws",
	Short: "Enumerate permitted AWS API operations",
	Long: `Probe every known read-only AWS operation with the resolved credentials
and report which calls succeed, which are denied, and which could not be
decided.

Example:
  privsweep aws --profile audit --region us-east --services s3,iam`,
	Run: runAWS,
}

func init() {
	rootCmd.AddCommand(awsCmd)

	awsCmd.Flags().StringVarP(&config.Profile, "profile", "p", "", "Shared credentials profile")
	awsCmd.Flags().StringSliceVarP(&config.Regions, "region", "r", nil, "Region substring filters (repeatable)")
	awsCmd.Flags().StringSliceVarP(&config.Services, "services", "s", nil, "Only scan the named services")
	awsCmd.Flags().StringVarP(&config.CustomTests, "custom-tests", "t", "", "YAML file of per-operation argument overrides")
	awsCmd.Flags().BoolVar(&config.Serial, "serial", false, "Scan services one at a time")
	awsCmd.Flags().DurationVar(&config.Timeout, "timeout", 3*time.Second, "Connect timeout per request")
	awsCmd.Flags().IntVar(&config.Retries, "retries", 0, "SDK retry attempts per call")
}

func runAWS(cmd *cobra.Command, args []string) {
	ctx := cmd.Context()
	start := time.Now()

	ui.Banner(version.AppName, version.Current)

	shutdown, err := telemetry.Init(ctx, version.AppName, version.Current, config.OTLPEndpoint)
	if err != nil {
		ui.Warn("tracing disabled: %v", err)
	} else {
		defer shutdown(context.Background())
	}

	level := slog.LevelWarn
	if config.Verbose {
		level = slog.LevelDebug
	}
	var handler slog.Handler
	if config.JSONLogs {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	}
	logger := slog.New(handler)

	if config.Profile == "" {
		config.Profile = viper.GetString("profile")
	}

	sess, err := aws.NewSession(ctx, aws.Options{
		Profile: config.Profile,
		Timeout: config.Timeout,
		Retries: config.Retries,
		Verbose: config.Verbose,
		Logger:  logger,
	})
	if err != nil {
		ui.Error("failed to initialize session: %v", err)
		os.Exit(1)
	}
	ui.Info("Established AWS session")

	arn, err := sess.VerifyIdentity(ctx)
	if err != nil {
		ui.Error("credential validation failed: %v", err)
		os.Exit(1)
	}
	ui.Identity(arn)

	overrides, err := scan.DefaultOverrides()
	if err != nil {
		ui.Error("failed to load built-in argument overrides: %v", err)
		os.Exit(1)
	}
	if config.CustomTests != "" {
		doc, err := os.ReadFile(config.CustomTests)
		if err != nil {
			ui.Error("failed to read %s: %v", config.CustomTests, err)
			os.Exit(1)
		}
		user, err := scan.ParseOverrides(doc)
		if err != nil {
			ui.Error("failed to parse %s: %v", config.CustomTests, err)
			os.Exit(1)
		}
		overrides.Merge(user)
	}
	ui.Info("Loaded test arguments")

	services := selectServices(sess.AvailableServices(), config.Services)
	if len(services) == 0 {
		ui.Error("no services matched %v", config.Services)
		os.Exit(1)
	}

	var pool *swarm.Pool
	if config.Adaptive {
		pool = swarm.NewAdaptive(config.Workers, 1, config.Workers)
	} else {
		pool = swarm.New(config.Workers)
	}
	pool.Start(ctx)
	defer pool.Stop()

	scanCfg := scan.Config{
		SafePrefixes:  scan.DefaultSafePrefixes,
		RegionFilters: config.Regions,
		Overrides:     overrides,
		Logger:        logger,
	}

	ui.Info("Scanning %d services with %d workers...", len(services), config.Workers)

	reports := make([]scan.Report, len(services))
	scanned := make([]bool, len(services))

	runOne := func(i int, name string) {
		svc, err := scan.NewService(ctx, name, sess, pool, scanCfg)
		if err != nil {
			var invalid *scan.InvalidRegionError
			if errors.As(err, &invalid) {
				ui.Warn("%s: no regions match filters %v, skipping", name, config.Regions)
			} else {
				ui.Warn("%s: %v, skipping", name, err)
			}
			return
		}
		report, err := svc.Scan(ctx)
		if err != nil {
			ui.Warn("%s: scan aborted: %v", name, err)
			return
		}
		reports[i] = report
		scanned[i] = true
	}

	if config.Serial {
		for i, name := range services {
			runOne(i, name)
		}
	} else {
		var wg sync.WaitGroup
		for i, name := range services {
			wg.Add(1)
			go func(i int, name string) {
				defer wg.Done()
				runOne(i, name)
			}(i, name)
		}
		wg.Wait()
	}

	for i, name := range services {
		if !scanned[i] {
			continue
		}
		ui.Section(name)
		lines := reports[i].Format(config.Verbose)
		if len(lines) == 0 {
			ui.ResultLine("    no permitted operations found")
			continue
		}
		for _, line := range lines {
			ui.ResultLine(line)
		}
	}

	ui.ExitSummary(start, len(services))
}

// selectServices intersects the catalog with the user's service filter,
// keeping catalog order. Unknown names are reported, not fatal.
func selectServices(available, requested []string) []string {
	if len(requested) == 0 {
		return available
	}
	known := make(map[string]bool, len(available))
	for _, name := range available {
		known[name] = true
	}
	var out []string
	seen := make(map[string]bool, len(requested))
	for _, name := range requested {
		if !known[name] {
			ui.Warn("unknown service %q", name)
			continue
		}
		seen[name] = true
	}
	for _, name := range available {
		if seen[name] {
			out = append(out, name)
		}
	}
	return out
}
