// Package cli defines the root Cobra command and global flag/context setup.
package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/astrodyn-tools/refframes/internal/cli/commands"
	"github.com/astrodyn-tools/refframes/internal/core/config"
	"github.com/astrodyn-tools/refframes/internal/core/logger"
	"github.com/astrodyn-tools/refframes/internal/ephemeris"
	"github.com/astrodyn-tools/refframes/pkg/errs"
	"github.com/astrodyn-tools/refframes/pkg/pprint"
)

// globalFlags holds values bound to persistent global flags.
var globalFlags struct {
	configFile string
	kernel     string
	debug      bool
	jsonOutput bool
}

// rootCmd is the base command for refframes.
var rootCmd = &cobra.Command{
	Use:           "refframes",
	Short:         "refframes — Reference frame conversions and planetary ephemerides",
	Long:          ``, // overridden by SetHelpTemplate below
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Bare `refframes` — help func already prints banner
		return cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "completion" || cmd.Name() == "help" {
			return nil
		}
		return initRuntime(cmd)
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "completion" || cmd.Name() == "help" {
			return nil
		}
		return commands.FromContext(cmd.Context()).Close()
	},
}

// Execute runs the CLI. Called by main().
func Execute() {
	// Show banner before every help screen
	origHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		pprint.PrintBanner(commands.Version, commands.BuildDate)
		origHelp(cmd, args)
	})

	if err := rootCmd.Execute(); err != nil {
		if fe := errs.AsFrame(err); fe != nil {
			pprint.Error("%s", fe.UserMessage())
		} else {
			pprint.Error("%s", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&globalFlags.configFile, "config", "c", "", "Path to refframes.yaml (defaults to auto-discovery)")
	rootCmd.PersistentFlags().StringVarP(&globalFlags.kernel, "kernel", "k", "", "Path to the JPL DE kernel (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.debug, "debug", false, "Enable debug-level logging")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.jsonOutput, "json", false, "Output in machine-readable JSON")

	// Register all subcommands
	rootCmd.AddCommand(
		commands.NewChgFrameCmd(),
		commands.NewHelioStateCmd(),
		commands.NewHorizonCmd(),
		commands.NewOrreryCmd(),
		commands.NewDoctorCmd(),
		commands.NewVersionCmd(),
	)
}

// initRuntime loads config, logger, and the ephemeris source before each command runs.
func initRuntime(cmd *cobra.Command) error {
	// Load config
	cfg, err := config.Load(globalFlags.configFile)
	if err != nil && globalFlags.configFile != "" {
		return errs.Wrap(err, errs.ErrConfig, "runtime.config").
			WithResource(globalFlags.configFile)
	}
	if cfg == nil {
		cfg = &config.Config{}
	}
	if globalFlags.kernel != "" {
		cfg.Ephemeris.Kernel = globalFlags.kernel
	}

	// Initialise logger
	home := config.Home()
	logFile := filepath.Join(home, "logs", "refframes.log")
	if err := os.MkdirAll(filepath.Dir(logFile), 0750); err != nil {
		return errs.Wrap(err, errs.ErrInternal, "runtime.logdir").WithResource(logFile)
	}

	log, err := logger.Init(cfg.Log.Level, cfg.Log.Format, logFile, globalFlags.debug)
	if err != nil {
		return errs.Wrap(err, errs.ErrInternal, "runtime.logger")
	}

	rt := &commands.Runtime{
		Config: cfg,
		Log:    log,
		Flags: commands.GlobalFlags{
			Kernel:     globalFlags.kernel,
			Debug:      globalFlags.debug,
			JSONOutput: globalFlags.jsonOutput,
		},
	}

	// Open the kernel when one is configured. Commands that need lookups
	// fail with advice otherwise (doctor runs without one).
	if cfg.Ephemeris.Kernel != "" && cmd.Name() != "doctor" {
		kernel, err := ephemeris.OpenKernel(cfg.Ephemeris.Kernel)
		if err != nil {
			return err
		}
		rt.Kernel = kernel
		rt.Source = kernel

		if cfg.Ephemeris.Cache {
			cache, err := ephemeris.NewCachedSource(kernel, config.CachePath())
			if err != nil {
				pprint.Warn("state cache unavailable, continuing without it: %s", err)
				log.Warn("state cache unavailable", "err", err)
			} else {
				rt.Cache = cache
				rt.Source = cache
			}
		}
	}

	// Store in command context
	cmd.SetContext(commands.NewContext(cmd.Context(), rt))

	return nil
}
