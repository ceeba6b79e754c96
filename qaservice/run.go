package qaservice

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/rs82696/Memeber-qa-Service/internal/answer"
	"github.com/rs82696/Memeber-qa-Service/internal/api"
	"github.com/rs82696/Memeber-qa-Service/internal/config"
	"github.com/rs82696/Memeber-qa-Service/internal/corpus"
	"github.com/rs82696/Memeber-qa-Service/internal/factory"
	"github.com/rs82696/Memeber-qa-Service/internal/health"
	"github.com/rs82696/Memeber-qa-Service/internal/logger"
	"github.com/rs82696/Memeber-qa-Service/internal/retrieval"
	"github.com/rs82696/Memeber-qa-Service/internal/services"
)

// Run starts the member QA HTTP service and blocks until shutdown or error.
func Run() error {
	log := logger.New("member-qa")

	cfg, err := config.New()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		return err
	}
	log = logger.WithLevel(log, cfg.LogLevel)

	log.Info().
		Str("environment", string(cfg.Environment)).
		Int("http_port", cfg.HTTPPort).
		Str("feed_url", cfg.FeedURL).
		Str("llm_provider", cfg.LLMProvider).
		Str("llm_model", cfg.LLMModel).
		Int("context_window", cfg.ContextWindow).
		Msg("Member QA service starting")

	// Create cancellable root context bound to SIGINT/SIGTERM
	ctx, stop := newServerContext()
	defer stop()

	// Initialize dependencies (feed source, answer provider, QA service)
	svc, holder, provider, err := initDependencies(cfg, log)
	if err != nil {
		return err
	}

	// Load the corpus before serving; a snapshot-backed source may satisfy
	// this even while the feed is down.
	info, err := svc.Reload(ctx)
	if err != nil {
		log.Error().Stack().Err(err).Msg("initial corpus load failed")
		return err
	}
	log.Info().Int("messages", info.Messages).Int("members", info.Members).Msg("initial corpus loaded")

	// Build router
	router := api.NewRouter(svc)

	// Start health checkers and bind service health
	svcHealth := startHealthCheckers(ctx, cfg, log, holder, provider)

	// Block startup until the gating dependencies report healthy
	if err := waitUntilHealthy(ctx, cfg, svcHealth); err != nil {
		log.Error().Stack().Err(err).Msg("startup health check failed")
		return err
	}

	// HTTP server and serve
	server := newHTTPServer(ctx, cfg, router)
	errCh := serveHTTP(server, log, cfg)

	// Graceful shutdown on context cancel or server error
	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down server")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Stack().Err(err).Msg("Server forced to shutdown")
			return err
		}
		log.Info().Msg("Server exited")
		return nil
	case err := <-errCh:
		log.Error().Stack().Err(err).Msg("HTTP server failed")
		return err
	}
}

// initDependencies constructs required components and enforces fail-fast on missing deps.
func initDependencies(cfg *config.Config, log zerolog.Logger) (*services.QAService, *corpus.Holder, answer.Provider, error) {
	source, err := factory.NewFeedSource(cfg, log)
	if err != nil {
		log.Error().Stack().Err(err).Msg("Feed source unavailable")
		return nil, nil, nil, err
	}

	provider, err := factory.NewAnswerProvider(cfg, log)
	if err != nil {
		log.Error().Stack().Err(err).Msg("Answer provider unavailable")
		return nil, nil, nil, err
	}

	holder := corpus.NewHolder()
	selector := retrieval.NewSelector(cfg.ContextWindow)
	svc := services.NewQAService(source, provider, holder, selector, cfg.AnswerTimeout(), log)
	return svc, holder, provider, nil
}

// startHealthCheckers starts component checkers and the service-level
// aggregator. Only the corpus gates service health; the answerer probe is
// surfaced in /health but an LLM outage must not mark the service down.
func startHealthCheckers(ctx context.Context, cfg *config.Config, log zerolog.Logger, holder *corpus.Holder, provider answer.Provider) *health.ServiceHealthChecker {
	probeTimeout := cfg.HealthProbeTimeout()
	interval := cfg.HealthInterval()

	corpusChecker := corpus.NewHealthChecker(holder, log)
	go corpusChecker.Start(ctx, interval)
	components := []health.HealthChecker{corpusChecker}

	if p, ok := provider.(health.HealthPinger); ok {
		answerChecker := health.NewPingHealthChecker("answerer", p, log, probeTimeout)
		go answerChecker.Start(ctx, interval)
		components = append(components, answerChecker)
	}

	svcHealth := health.NewServiceHealthChecker(log, corpusChecker)
	go svcHealth.Start(ctx, interval)

	api.BindServiceHealth(svcHealth.IsHealthy)
	api.BindComponentHealth(func() map[string]bool {
		out := make(map[string]bool, len(components))
		for _, c := range components {
			out[c.Name()] = c.IsHealthy()
		}
		return out
	})
	return svcHealth
}

func newHTTPServer(ctx context.Context, cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.GetHTTPAddr(),
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
}

func serveHTTP(server *http.Server, log zerolog.Logger, cfg *config.Config) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	return errCh
}

// calculateStartupHealthTimeout returns the startup health timeout in seconds,
// calculated as interval*2 with a minimum of 60 seconds.
func calculateStartupHealthTimeout(healthIntervalSeconds int) int {
	timeout := healthIntervalSeconds * 2
	if timeout < 60 {
		return 60
	}
	return timeout
}

// waitUntilHealthy blocks until service health is healthy or the startup window expires.
func waitUntilHealthy(ctx context.Context, cfg *config.Config, svcHealth *health.ServiceHealthChecker) error {
	timeoutSeconds := calculateStartupHealthTimeout(cfg.HealthIntervalSeconds)
	deadline := time.Now().Add(time.Duration(timeoutSeconds) * time.Second)
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()
	for {
		if svcHealth.IsHealthy() {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("startup aborted: dependencies not healthy within %d seconds", timeoutSeconds)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// newServerContext returns a cancellable context that is cancelled on SIGINT/SIGTERM.
func newServerContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
