package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/ozzus/bet-tracker/internal/app"
	"github.com/ozzus/bet-tracker/internal/config"
	"github.com/ozzus/bet-tracker/internal/domain/models"
	"github.com/ozzus/bet-tracker/internal/infrastructures/db/tracing"
	"github.com/ozzus/bet-tracker/internal/logging"
	"github.com/ozzus/bet-tracker/internal/render"
	"go.uber.org/zap"
)

const (
	exitOK = iota
	exitFailure
	exitUsage
)

type options struct {
	configPath string
	sport      models.Sport
	team       string
	opponent   string
	league     string
	lastN      int
	history    int
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run returns the process exit code so deferred cleanup always happens
// before main exits.
func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	_ = godotenv.Load(".env")

	cfg := config.MustLoadByPath(config.ResolvePath(opts.configPath))
	log := logging.SetupConsole(cfg.Log.Level)
	defer func() {
		_ = log.Sync()
	}()

	shutdownTracer, err := tracing.InitTracer(tracing.Options{
		ServiceName: "bet-tracker",
		Environment: cfg.Env,
		Collector:   cfg.Jaeger,
	})
	if err != nil {
		log.Error("failed to init tracer", zap.Error(err))
		return exitFailure
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(shutdownCtx); err != nil {
			log.Warn("failed to shutdown tracer provider", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, log, cfg)
	if err != nil {
		log.Error("failed to build app", zap.Error(err))
		return exitFailure
	}
	defer application.Close()

	out := render.New(stdout)
	out.Keys(render.KeyStatus{
		NBA:    cfg.Providers.Balldontlie.APIKey != "",
		Soccer: cfg.Providers.APIFootball.APIKey != "",
		Odds:   cfg.Providers.OddsAPI.APIKey != "",
	})

	if opts.history > 0 {
		records, err := application.Service.RecentSuggestions(ctx, opts.history)
		if err != nil {
			fmt.Fprintln(stderr, "history:", err)
			return exitFailure
		}
		if err := out.Suggestions(records); err != nil {
			log.Error("render failed", zap.Error(err))
			return exitFailure
		}
		return exitOK
	}

	dash, err := application.Service.Build(ctx, models.Selection{
		Sport:    opts.sport,
		Team:     opts.team,
		Opponent: opts.opponent,
		League:   opts.league,
		LastN:    opts.lastN,
	})
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	if err := out.Dashboard(dash); err != nil {
		log.Error("render failed", zap.Error(err))
		return exitFailure
	}
	return exitOK
}

// parseFlags validates the command line before any config or network work.
// The team and sport are only required when a dashboard is requested.
func parseFlags(args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("bet-tracker", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		opts      options
		sportFlag string
	)
	fs.StringVar(&opts.configPath, "config", "", "path to config file")
	fs.StringVar(&sportFlag, "sport", "nba", "sport: nba or soccer")
	fs.StringVar(&opts.team, "team", "", "team name or provider id")
	fs.StringVar(&opts.opponent, "opponent", "", "opponent name or provider id for head-to-head")
	fs.StringVar(&opts.league, "league", "", "soccer league name or id (default: first configured league)")
	fs.IntVar(&opts.lastN, "last", 0, "number of past games (default from config)")
	fs.IntVar(&opts.history, "history", 0, "print the N most recent saved suggestions and exit")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if opts.history > 0 {
		return opts, nil
	}

	sport, ok := models.ParseSport(sportFlag)
	if !ok {
		return options{}, fmt.Errorf("unknown sport %q: use nba or soccer", sportFlag)
	}
	if opts.team == "" {
		fs.Usage()
		return options{}, errors.New("-team is required")
	}
	opts.sport = sport

	return opts, nil
}
