package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/servihogar/internal/config"
	"github.com/jask/servihogar/internal/logging"
	"github.com/jask/servihogar/internal/nav"
	"github.com/jask/servihogar/internal/seed"
	"github.com/jask/servihogar/internal/state"
	"github.com/jask/servihogar/internal/tui"
)

// Commands annotated with configOptional run even when --config names a file
// that does not exist yet.
const (
	annotationConfig = "config"
	configOptional   = "optional"
)

type options struct {
	configPath string
	verbose    bool
	cfg        config.Config
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "servihogar",
		Short: "SERVIHOGAR professional console",
		Long: `A terminal console for home-service professionals.

Complete onboarding, browse the marketplace, publish services, answer client
requests and keep your schedule and payout accounts up to date.

Run without arguments to start the interactive console.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("load .env: %w", err)
			}
			load := config.Load
			if cmd.Annotations[annotationConfig] == configOptional {
				load = config.LoadOrDefaults
			}
			cfg, err := load(opts.configPath)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole(opts)
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default $HOME/.config/servihogar/config.toml)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newSeedCmd(opts), newViewsCmd(), newConfigCmd(opts))
	return root
}

func newSeedCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Print the effective seed document as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := seed.Load(opts.cfg.Seed.Path)
			if err != nil {
				return err
			}
			raw, err := seed.Encode(data)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(raw)
			return err
		},
	}
}

func newViewsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "views",
		Short: "List the console views",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, v := range nav.AllViews() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", v, v.Title())
			}
			return nil
		},
	}
}

func newConfigCmd(opts *options) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or write the configuration file",
	}
	var force bool
	initCmd := &cobra.Command{
		Use:         "init",
		Short:       "Write the effective configuration to the config file",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationConfig: configOptional},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configFilePath(opts.configPath)
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config %s already exists (use --force to overwrite)", path)
			}
			if err := config.Save(opts.cfg, path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	cfgCmd.AddCommand(initCmd)
	return cfgCmd
}

func configFilePath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return config.DefaultPath()
}

func runConsole(opts *options) error {
	logger, err := logging.New(opts.cfg.Log, opts.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	data, err := seed.Load(opts.cfg.Seed.Path)
	if err != nil {
		return err
	}
	logger.Info("starting console", zap.String("seed", opts.cfg.Seed.Path), zap.Int("offers", len(data.Offers)))

	ctl := state.New(data, state.WithLogger(logger))
	model := tui.New(ctl, opts.cfg.UI, tui.WithLogger(logger.Named("tui")))
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		logger.Error("console exited", zap.Error(err))
		return fmt.Errorf("run console: %w", err)
	}
	logger.Info("console closed")
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
