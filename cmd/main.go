package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/okian/rostra/internal/config"
	"github.com/okian/rostra/internal/domain/capacity"
	"github.com/okian/rostra/internal/domain/rolematch"
	"github.com/okian/rostra/internal/domain/scoring"
	"github.com/okian/rostra/internal/engine"
	"github.com/okian/rostra/internal/simulate"
	"github.com/okian/rostra/pkg/logger"
	"github.com/okian/rostra/pkg/metrics"
)

// Metrics server timeout constants.
const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

func main() {
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	eng, err := buildEngine(cfg, log)
	if err != nil {
		log.Error(ctx, "failed to build engine", logger.Error(err))
		return
	}

	// Serve Prometheus metrics when configured.
	if cfg.MetricsAddr != "" {
		srv := startMetricsServer(ctx, cfg.MetricsAddr, log)
		defer shutdownMetricsServer(srv, log)
	}

	snap, err := loadSnapshot(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "failed to load snapshot", logger.Error(err))
		return
	}

	runAssignmentPass(ctx, eng, snap, log)
	runCapacityPass(ctx, cfg, snap, log)
}

// buildEngine assembles matcher, scorer, and engine from configuration.
func buildEngine(cfg *config.Config, log logger.Logger) (*engine.Engine, error) {
	matcherOpts, err := matcherOptions(cfg)
	if err != nil {
		return nil, err
	}

	scorer := scoring.New(
		scoring.WithMatcher(rolematch.New(matcherOpts...)),
		scoring.WithWeights(scoring.Weights{
			PhaseFitBonus:     cfg.PhaseFitBonus,
			TaskFitBonus:      cfg.TaskFitBonus,
			TaskLoadPenalty:   cfg.TaskLoadPenalty,
			OverworkedPenalty: cfg.OverworkedPenalty,
		}),
	)

	return engine.New(
		engine.WithScorer(scorer),
		engine.WithBatchWorkers(cfg.BatchWorkers),
		engine.WithLogger(log.Named("engine")),
	), nil
}

// matcherOptions compiles configured classification tables; empty
// tables keep the built-in defaults.
func matcherOptions(cfg *config.Config) ([]rolematch.Option, error) {
	var opts []rolematch.Option

	if len(cfg.PhaseRules) > 0 {
		rules, err := compileRules(cfg.PhaseRules)
		if err != nil {
			return nil, err
		}
		opts = append(opts, rolematch.WithPhaseRules(rules))
	}

	if len(cfg.TaskRules) > 0 {
		rules, err := compileRules(cfg.TaskRules)
		if err != nil {
			return nil, err
		}
		opts = append(opts, rolematch.WithTaskRules(rules))
	}

	if len(cfg.RoleKeywords) > 0 {
		keywords := make(map[rolematch.Category][]string, len(cfg.RoleKeywords))
		for cat, kws := range cfg.RoleKeywords {
			keywords[rolematch.Category(cat)] = kws
		}
		opts = append(opts, rolematch.WithRoleKeywords(keywords))
	}

	return opts, nil
}

func compileRules(rules []config.Rule) ([]rolematch.Rule, error) {
	compiled := make([]rolematch.Rule, 0, len(rules))
	for _, r := range rules {
		rule, err := rolematch.CompileRule(r.Pattern, r.Categories)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, rule)
	}
	return compiled, nil
}

// loadSnapshot reads the configured YAML snapshot, or simulates one.
func loadSnapshot(ctx context.Context, cfg *config.Config, log logger.Logger) (*simulate.Snapshot, error) {
	if cfg.SnapshotPath != "" {
		log.Info(ctx, "loading snapshot", logger.String("path", cfg.SnapshotPath))
		return simulate.Load(cfg.SnapshotPath)
	}

	log.Info(ctx, "no snapshot configured; simulating one")
	return simulate.Generate(time.Now()), nil
}

// runAssignmentPass recommends an assignee for every task in the
// snapshot and logs each decision.
func runAssignmentPass(ctx context.Context, eng *engine.Engine, snap *simulate.Snapshot, log logger.Logger) {
	roster := snap.Roster()
	tasks := snap.CandidateTasks()

	for _, task := range tasks {
		phase := snap.PhaseByNumber(task.PhaseNumber)
		id, ok := eng.Recommend(ctx, task, phase, roster)
		if !ok {
			log.Info(ctx, "task left unassigned",
				logger.String("task", task.Title),
				logger.String("phase", phase.DisplayName()),
			)
			continue
		}
		log.Info(ctx, "task assigned",
			logger.String("task", task.Title),
			logger.String("phase", phase.DisplayName()),
			logger.String("member_id", id),
		)
	}
}

// runCapacityPass computes and logs utilization for every member.
func runCapacityPass(ctx context.Context, cfg *config.Config, snap *simulate.Snapshot, log logger.Logger) {
	agg := capacity.New(capacity.WithFallbackProfile(cfg.FallbackMaxHours, cfg.FallbackDefaultHours))
	allocations := snap.ModelAllocations()
	asOf := time.Now()

	for _, m := range snap.Roster() {
		u := agg.Utilization(m.ID, allocations, snap.ProfileFor(m.ID), asOf)
		metrics.RecordUtilization(u.IsOverAllocated)
		log.Info(ctx, "member utilization",
			logger.String("member_id", u.MemberID),
			logger.String("allocated_hours", u.AllocatedHours.String()),
			logger.String("available_hours", u.AvailableHours.String()),
			logger.String("utilization_pct", u.UtilizationPercent.StringFixed(1)),
			logger.Any("over_allocated", u.IsOverAllocated),
		)
	}
}

// startMetricsServer exposes /metrics on the configured address.
func startMetricsServer(ctx context.Context, addr string, log logger.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "starting metrics server", logger.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("metrics server failed: " + err.Error() + "\n")
		}
	}()

	return srv
}

func shutdownMetricsServer(srv *http.Server, log logger.Logger) {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "metrics server shutdown failed", logger.Error(err))
	}
}
