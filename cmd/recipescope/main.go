package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/recipescope/pkg/cache"
	"github.com/umputun/recipescope/pkg/config"
	"github.com/umputun/recipescope/pkg/llm"
	"github.com/umputun/recipescope/pkg/recommend"
	"github.com/umputun/recipescope/pkg/repository"
	"github.com/umputun/recipescope/pkg/upstream"
	"github.com/umputun/recipescope/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"recipescope.yml" description:"configuration file"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`

	// common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug, opts.NoColor)
	lgr.Printf("[INFO] starting recipescope version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		lgr.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()
	if err != nil {
		lgr.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	lgr.Print("[INFO] shutdown complete")
}

func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	setupLog(opts.Debug, opts.NoColor, cfg.Server.AuthKey, cfg.LLM.APIKey, cfg.Cache.Password)

	if err := os.MkdirAll(cfg.Server.ImagesDir, 0o750); err != nil {
		return fmt.Errorf("failed to create images dir: %w", err)
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			lgr.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	store, err := makeStore(ctx, cfg.Cache)
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			lgr.Printf("[WARN] failed to close cache: %v", err)
		}
	}()

	rc := cfg.GetRecommendConfig()
	engine := recommend.NewEngine(store, repos.Recipe, repos.Favorite, recommend.Params{
		DailyLimit:       rc.DailyLimit,
		QuotaTTL:         rc.QuotaTTL,
		ExclusionTTL:     rc.ExclusionTTL,
		CookingTolerance: rc.CookingTolerance,
		Location:         rc.Location(),
		CacheGuard:       makeGuard("cache", rc),
		CatalogGuard:     makeGuard("catalog", rc),
	})

	var assistant server.Assistant
	if cfg.LLM.Endpoint != "" {
		assistant = llm.NewAssistant(cfg.GetLLMConfig())
		lgr.Printf("[INFO] cooking assistant enabled, model %s", cfg.LLM.Model)
	}

	srv := server.New(cfg, server.NewRepositoryAdapter(repos), engine, assistant, revision, opts.Debug)
	return srv.Run(ctx)
}

// makeStore opens the configured cache backend
func makeStore(ctx context.Context, cfg config.CacheConfig) (cache.Store, error) {
	switch cfg.Backend {
	case "badger":
		if cfg.Path == "" {
			lgr.Print("[WARN] badger cache runs in memory, state is lost on restart")
		}
		return cache.NewBadgerStore(cfg.Path)
	case "redis":
		return cache.NewRedisStore(ctx, cache.RedisConfig{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB, Timeout: cfg.Timeout})
	default:
		return nil, fmt.Errorf("unsupported cache backend %q", cfg.Backend)
	}
}

func makeGuard(name string, rc config.RecommendConfig) *upstream.Guard {
	return upstream.New(upstream.Config{
		Name:             name,
		Timeout:          rc.CallTimeout,
		FailureThreshold: rc.Breaker.FailureThreshold,
		OpenTimeout:      rc.Breaker.OpenTimeout,
		MaxRequests:      rc.Breaker.MaxRequests,
	})
}

func setupLog(dbg, noColor bool, secrets ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	if !noColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}

	secs := make([]string, 0, len(secrets))
	for _, s := range secrets {
		if s != "" {
			secs = append(secs, s)
		}
	}
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
