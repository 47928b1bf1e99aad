package main

import (
	"errors"
	"io/fs"

	"github.com/aretw0/towers/internal/cli"
	"github.com/aretw0/towers/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const defaultConfigPath = "towers.yaml"

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Play a session and print its events",
	Long:  `Creates a board with the requested number of disks and lets the optimal player solve it, printing one line per event.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd.Flags())
		if err != nil {
			return err
		}
		cmd.SilenceUsage = true

		sigCtx := cli.NewSignalContext(cmd.Context())
		defer sigCtx.Cancel()

		return cli.Run(sigCtx, cfg, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().IntP("disks", "d", 3, "Number of disks")
	runCmd.Flags().IntP("skip", "s", 0, "Number of first events to skip")
	runCmd.Flags().IntP("take", "t", 0, "Number of events to display (0 = all)")
	runCmd.Flags().StringP("player", "p", "Joe", "Name of the player")
	runCmd.Flags().String("format", config.FormatText, "Output format (text or json)")
	runCmd.Flags().String("color", config.ColorAuto, "Colorize output (auto, always, never)")
	runCmd.Flags().Bool("summary", false, "Print a board summary after the events")
	runCmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address until interrupted")

	// Make 'run' the default if no command is provided
	rootCmd.RunE = runCmd.RunE
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
}

// loadConfig merges defaults, the config file and explicitly set flags, in that order.
func loadConfig(flags *pflag.FlagSet) (config.Config, error) {
	cfg := config.Default()

	path, _ := flags.GetString("config")
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}
	if err := config.Load(path, &cfg); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return cfg, err
		}
	}

	overlay := map[string]func(){
		"disks":        func() { cfg.Disks, _ = flags.GetInt("disks") },
		"skip":         func() { cfg.Skip, _ = flags.GetInt("skip") },
		"take":         func() { cfg.Take, _ = flags.GetInt("take") },
		"player":       func() { cfg.Player, _ = flags.GetString("player") },
		"format":       func() { cfg.Format, _ = flags.GetString("format") },
		"color":        func() { cfg.Color, _ = flags.GetString("color") },
		"summary":      func() { cfg.Summary, _ = flags.GetBool("summary") },
		"metrics-addr": func() { cfg.MetricsAddr, _ = flags.GetString("metrics-addr") },
		"log-level":    func() { cfg.LogLevel, _ = flags.GetString("log-level") },
		"log-format":   func() { cfg.LogFormat, _ = flags.GetString("log-format") },
	}
	for name, apply := range overlay {
		if flags.Changed(name) {
			apply()
		}
	}
	return cfg, nil
}
