package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/notty/internal/agent"
	"github.com/lox/notty/internal/config"
	"github.com/lox/notty/internal/fileutil"
	"github.com/lox/notty/internal/simulator"
	"github.com/lox/notty/internal/statistics"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Width(14)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)
)

type CLI struct {
	Games     int           `default:"1000" help:"Number of games to simulate"`
	Players   int           `short:"p" default:"2" help:"Players per game (2 or 3)"`
	Workers   int           `short:"w" default:"0" help:"Parallel workers (0 for one per CPU)"`
	Seed      int64         `default:"0" help:"Base RNG seed; game i uses seed+i (0 for random)"`
	TurnLimit int           `default:"1000" help:"Turns before a game is called a stalemate"`
	Strategy  string        `default:"uniform" help:"Computer strategy: uniform or snatcher"`
	Accept    float64       `default:"0.5" help:"Probability a computer discards a found group"`
	Config    string        `short:"c" help:"HCL config file supplying the rule limits" type:"existingfile"`
	Timeout   time.Duration `default:"30s" help:"Abort a single game after this long"`
	Report    string        `help:"Write a JSON report to this path"`
	Verbose   bool          `short:"v" help:"Verbose logging"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("notty-sim"),
		kong.Description("Simulate all-computer games of Notty."),
	)

	var logger *log.Logger
	if cli.Verbose {
		logger = log.NewWithOptions(os.Stderr, log.Options{Level: log.DebugLevel})
	} else {
		logger = log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel})
	}

	weights, err := agent.ParseStrategy(cli.Strategy)
	if err != nil {
		logger.Fatal("Invalid strategy", "error", err)
	}

	rules := config.Default().Rules()
	if cli.Config != "" {
		cfg, err := config.Load(cli.Config)
		if err != nil {
			logger.Fatal("Failed to load config", "error", err)
		}
		if err := cfg.Validate(); err != nil {
			logger.Fatal("Invalid configuration", "error", err)
		}
		rules = cfg.Rules()
	}

	sim := simulator.New(simulator.Config{
		Games:             cli.Games,
		Players:           cli.Players,
		Workers:           cli.Workers,
		Seed:              cli.Seed,
		TurnLimit:         cli.TurnLimit,
		Rules:             rules,
		Weights:           weights,
		AcceptProbability: cli.Accept,
		Timeout:           cli.Timeout,
		Logger:            logger,
	})

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Starting simulation: %d games, %d players, %s strategy (seed: %d)\n\n",
		cli.Games, cli.Players, cli.Strategy, sim.Seed())

	start := time.Now()
	stats, err := sim.Run(runCtx)
	if err != nil {
		logger.Fatal("Simulation failed", "error", err)
	}
	printResults(stats, cli.Players, time.Since(start))

	if cli.Report != "" {
		report := sim.NewReport(stats, cli.Strategy, time.Now())
		if err := fileutil.WriteJSONAtomic(cli.Report, report); err != nil {
			logger.Fatal("Failed to write report", "error", err)
		}
		fmt.Printf("\nReport written to %s\n", cli.Report)
	}

	ctx.Exit(0)
}

func printResults(stats *statistics.Statistics, players int, duration time.Duration) {
	row := func(label, value string) string {
		return labelStyle.Render(label) + valueStyle.Render(value)
	}

	lines := []string{
		titleStyle.Render(" SIMULATION RESULTS "),
		"",
		row("Games", fmt.Sprintf("%d in %v (%.0f games/sec)", stats.Games, duration.Round(time.Millisecond), float64(stats.Games)/duration.Seconds())),
	}
	for seat := 1; seat <= players; seat++ {
		lines = append(lines, row(fmt.Sprintf("Seat %d wins", seat),
			fmt.Sprintf("%d (%.1f%%)", stats.Wins[seat], stats.WinRate(seat)*100)))
	}

	low, high := stats.ConfidenceInterval95()
	lines = append(lines,
		row("Stalemates", fmt.Sprintf("%d (%.1f%%)", stats.Stalemates, stats.StalemateRate()*100)),
		row("Turns", fmt.Sprintf("mean %.1f ± %.1f, median %.0f, p90 %.0f", stats.Mean(), stats.StdDev(), stats.Median(), stats.Percentile(0.9))),
		row("95% CI", fmt.Sprintf("[%.1f, %.1f] turns", low, high)),
		row("Draws", fmt.Sprint(stats.Draws)),
		row("Snatches", fmt.Sprint(stats.Snatches)),
		row("Discards", fmt.Sprint(stats.Discards)),
	)
	fmt.Println(strings.Join(lines, "\n"))
}
