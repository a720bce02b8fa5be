package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/laserscape/config"
	"github.com/pthm-cable/laserscape/game"
	"github.com/pthm-cable/laserscape/input"
	"github.com/pthm-cable/laserscape/sim"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	scriptPath := flag.String("script", "", "Key script to replay in headless mode")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited, or until the script ends)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		slog.Error("invalid log level", "level", *logLevel, "error", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	if *headless {
		os.Exit(runHeadless(cfg, *scriptPath, int32(*maxTicks), *outputDir, *logStats))
	}

	os.Exit(runWindow(cfg, int32(*maxTicks), *outputDir, *logStats))
}

// runWindow runs the raylib frame loop and returns the exit code.
func runWindow(cfg *config.Config, maxTicks int32, outputDir string, logStats bool) int {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g, err := game.NewGameWithOptions(game.Options{
		LogStats:  logStats,
		OutputDir: outputDir,
	})
	if err != nil {
		slog.Error("failed to start game", "error", err)
		return 1
	}
	defer g.Unload()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()

		if maxTicks > 0 && g.Tick() >= maxTicks {
			break
		}
	}
	return 0
}

// runHeadless runs the simulation without raylib and returns the exit code.
func runHeadless(cfg *config.Config, scriptPath string, maxTicks int32, outputDir string, logStats bool) int {
	var script *input.Script
	if scriptPath != "" {
		var err error
		script, err = input.LoadScript(scriptPath)
		if err != nil {
			slog.Error("failed to load script", "error", err)
			return 1
		}
	}

	s, err := sim.New(cfg, sim.Options{
		LogStats:  logStats,
		OutputDir: outputDir,
	})
	if err != nil {
		slog.Error("failed to start simulation", "error", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s.RunScript(ctx, script, maxTicks)

	if err := s.Close(); err != nil {
		slog.Error("failed to close telemetry output", "error", err)
		return 1
	}
	return 0
}
