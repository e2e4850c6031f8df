package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wraxau/AC-laba3/internal/config"
	"github.com/wraxau/AC-laba3/internal/output"
)

// newConfigCmd creates the config command group
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage darkroom configuration",
		Long: `Manage the darkroom configuration file.

The configuration file stores defaults for the input and output
directories, worker count, transform, and file extensions so they do
not have to be passed as flags on every run.`,
	}

	// Add subcommands
	cmd.AddCommand(newConfigViewCmd())
	cmd.AddCommand(newConfigInitCmd())

	return cmd
}

// newConfigViewCmd creates the config view command
func newConfigViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Show the effective configuration",
		Long: `Display the configuration after the config file and defaults are applied.

Respects the --output flag, so the settings can be dumped as JSON or
YAML for scripting.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigView(cmd)
		},
	}

	return cmd
}

func runConfigView(cmd *cobra.Command) error {
	manager := config.NewManager(cfgFile)
	cfg, err := manager.Load()
	if err != nil {
		return err
	}

	data := map[string]interface{}{
		"inputDir":     cfg.InputDir,
		"outputDir":    cfg.OutputDir,
		"workers":      cfg.Workers,
		"transform":    cfg.Transform,
		"prefix":       cfg.Prefix,
		"extensions":   strings.Join(cfg.Extensions, ","),
		"quality":      cfg.Quality,
		"outputFormat": cfg.OutputFormat,
		"watchSettle":  cfg.Watch.Settle.String(),
	}

	format := output.Format(viper.GetString("output"))
	formatter := output.NewFormatter(format, output.WithNoColor(viper.GetBool("no-color")))

	return formatter.Format(cmd.OutOrStdout(), data)
}

// newConfigInitCmd creates the config init command
func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the current settings",
		Long: `Write a configuration file populated with the effective settings.

The file is created at the path given by --config, otherwise at
$HOME/.darkroom/config.yaml. An existing file is left alone unless
--force is set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	return cmd
}

func runConfigInit(cmd *cobra.Command, force bool) error {
	manager := config.NewManager(cfgFile)
	cfg, err := manager.Load()
	if err != nil {
		return err
	}

	if !force {
		if path := manager.ConfigPath(); path != "" {
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
			}
		}
	}

	manager.Set("inputDir", cfg.InputDir)
	manager.Set("outputDir", cfg.OutputDir)
	manager.Set("workers", cfg.Workers)
	manager.Set("transform", cfg.Transform)
	manager.Set("extensions", cfg.Extensions)
	manager.Set("quality", cfg.Quality)
	manager.Set("outputFormat", cfg.OutputFormat)
	manager.Set("watch.settle", cfg.Watch.Settle.String())

	if err := manager.Save(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Config file written to %s\n", manager.ConfigPath())

	return nil
}
