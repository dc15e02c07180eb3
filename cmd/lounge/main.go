package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"lounge/internal/audio"
	"lounge/internal/config"
	"lounge/internal/cursor"
	"lounge/internal/engine"
	"lounge/internal/game"
	"lounge/internal/input"
	"lounge/internal/locale"
	"lounge/internal/logging"
	"lounge/internal/sim"
	"lounge/internal/world"

	_ "lounge/internal/scripts"
)

var (
	configPath string
	scenePath  string
	logLevel   string
	savePath   string
)

var rootCmd = &cobra.Command{
	Use:           "lounge",
	Short:         "A small first-person room with a radio, TV, DJ booth, and computer",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the lounge in a window",
	RunE: func(cmd *cobra.Command, args []string) error {
		chdirToExecutable()
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		return game.New(cfg, log).Run()
	},
}

var simulateCmd = &cobra.Command{
	Use:   "simulate <timeline.yaml>",
	Short: "Run the scene headlessly against an input timeline",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		tl, err := sim.Load(args[0])
		if err != nil {
			return err
		}

		audio.InitHeadless()
		defer audio.Close()

		dev := input.NewScripted()
		w := world.New(dev, cursor.New(nil), log)
		w.Overrides = cfg.Overrides
		if err := w.LoadScene(cfg.Scene.Path); err != nil {
			return err
		}
		w.Start()
		defer w.Unload()

		report, err := sim.Run(w, dev, tl)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "session %s: %d ticks, %.2fs simulated\n",
			report.Session, report.Ticks, report.Elapsed.Seconds())

		if savePath != "" {
			return w.SaveScene(savePath)
		}
		return nil
	},
}

var scriptsCmd = &cobra.Command{
	Use:   "scripts",
	Short: "List the script and component types scene files can use",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "scripts:    %s\n", strings.Join(engine.GetRegisteredScripts(), ", "))
		fmt.Fprintf(out, "components: %s\n", strings.Join(engine.GetRegisteredComponents(), ", "))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default $LOUNGE_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&scenePath, "scene", "", "scene file, overrides the config")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error")
	simulateCmd.Flags().StringVar(&savePath, "save", "", "write the final scene state to this file")

	rootCmd.AddCommand(playCmd, simulateCmd, scriptsCmd)
}

// setup loads the config and builds the root logger.
func setup() (*config.Config, *logging.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil && !errors.Is(err, config.ErrNoConfig) {
		return nil, nil, err
	}
	if scenePath != "" {
		cfg.Scene.Path = scenePath
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	log := logging.New(os.Stdout, logging.ParseLevel(cfg.Log.Level), cfg.Colors())
	if cfg.Locale.Language != "" && !locale.Init(cfg.Locale.Dir, cfg.Locale.Language) {
		log.Warnf("no %s catalogue in %s, using English", cfg.Locale.Language, cfg.Locale.Dir)
	}
	return cfg, log, nil
}

// chdirToExecutable makes relative asset paths work for deployed builds.
// Skipped for "go run", which puts the binary in a temp directory.
func chdirToExecutable() {
	execPath, err := os.Executable()
	if err != nil {
		return
	}
	execDir := filepath.Dir(execPath)
	if strings.Contains(execDir, "go-build") {
		return
	}
	if _, err := os.Stat(filepath.Join(execDir, "assets")); err == nil {
		_ = os.Chdir(execDir)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
