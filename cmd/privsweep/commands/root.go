package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/privsweep/privsweep/internal/swarm"
	"github.com/privsweep/privsweep/internal/version"
)

// Config carries every knob the commands expose. Flags write into it
// directly; nothing reads package globals beyond this struct.
type Config struct {
	Profile      string
	Regions      []string
	Services     []string
	CustomTests  string
	Serial       bool
	Adaptive     bool
	Workers      int
	Timeout      time.Duration
	Retries      int
	Verbose      bool
	JSONLogs     bool
	OTLPEndpoint string
}

var (
	cfgFile string
	config  Config
)

var rootCmd = &cobra.Command{
	Use:   "privsweep",
	Short: "Empirical cloud permission reconnaissance",
	Long: `Privsweep - find out what a credential can actually do.

Probes read-only API operations across services and regions and reports
which calls the credential is permitted to make.`,
	Version: version.Current,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default ~/.privsweep.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&config.Verbose, "verbose", "v", false, "Show denied and inconclusive operations too")
	rootCmd.PersistentFlags().IntVar(&config.Workers, "workers", swarm.DefaultWorkers, "Concurrent probe workers")
	rootCmd.PersistentFlags().BoolVar(&config.Adaptive, "adaptive", false, "Shrink the worker pool when the provider throttles")
	rootCmd.PersistentFlags().BoolVar(&config.JSONLogs, "json-logs", false, "Emit structured logs as JSON")
	rootCmd.PersistentFlags().StringVar(&config.OTLPEndpoint, "otlp-endpoint", "", "OTLP trace collector endpoint")
	rootCmd.PersistentFlags().MarkHidden("otlp-endpoint")

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		renderHelp(cmd)
	})
}

func renderHelp(cmd *cobra.Command) {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00FF99")).
		MarginBottom(1)

	flagStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA"))

	fmt.Println(titleStyle.Render(fmt.Sprintf("PRIVSWEEP %s", version.Current)))
	fmt.Println(cmd.Root().Short)

	fmt.Println(titleStyle.Render("USAGE"))
	fmt.Printf("  %s\n\n", cmd.UseLine())

	if cmd.HasAvailableSubCommands() {
		fmt.Println(titleStyle.Render("COMMANDS"))
		for _, c := range cmd.Commands() {
			if c.IsAvailableCommand() {
				fmt.Printf("  %-12s %s\n", c.Name(), c.Short)
			}
		}
		fmt.Println("")
	}

	fmt.Println(titleStyle.Render("FLAGS"))
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		output := fmt.Sprintf("  --%-15s %s", f.Name, f.Usage)
		if f.DefValue != "" && f.DefValue != "false" && f.DefValue != "0" {
			output += fmt.Sprintf(" (default %s)", f.DefValue)
		}
		fmt.Println(flagStyle.Render(output))
	})
	fmt.Println("")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.SetConfigFile(filepath.Join(home, ".privsweep.yaml"))
			viper.SetConfigType("yaml")
		}
	}
	viper.SetEnvPrefix("privsweep")
	viper.AutomaticEnv()
	viper.ReadInConfig()
}
