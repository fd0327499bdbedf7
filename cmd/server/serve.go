package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	apihttp "github.com/artem13815/resume-analyzer/api/http"
	"github.com/artem13815/resume-analyzer/api/http/handlers"
	"github.com/artem13815/resume-analyzer/pkg/analysis"
	"github.com/artem13815/resume-analyzer/pkg/auth"
	"github.com/artem13815/resume-analyzer/pkg/health"
	"github.com/artem13815/resume-analyzer/pkg/health/checkers"
	"github.com/artem13815/resume-analyzer/pkg/logger"
	"github.com/artem13815/resume-analyzer/pkg/nlp"
	"github.com/artem13815/resume-analyzer/pkg/resume"
	"github.com/artem13815/resume-analyzer/pkg/security/jwt"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes resume analysis endpoints.`,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(nil)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := connectIfConfigured(ctx, cfg)
	if err != nil {
		return err
	}
	if pool != nil {
		defer pool.Close()
	}

	cat, err := loadCatalog(ctx, cfg, pool)
	if err != nil {
		return err
	}

	// Wire dependencies (Clean Architecture)
	analyzer := analysis.NewAnalyzer(cat, nlp.ParseMatchMode(cfg.SkillMatchMode))
	uploads := resume.NewUploadService(cfg.UploadDir)

	jwtGen := jwt.NewGenerator(cfg.JWTSecret, cfg.JWTIssuer, time.Duration(cfg.JWTTTLMinutes)*time.Minute)
	clients := auth.NewStaticClientStore(auth.Client{ID: cfg.AuthClientID, PasswordHash: cfg.AuthClientPasswordHash})
	authUC := auth.NewAuthService(cfg.AuthEnabled, clients, jwtGen)

	// Health service: compose checkers
	probes := []health.Checker{checkers.NewUploadDirChecker(cfg.UploadDir)}
	if pool != nil {
		probes = append(probes, checkers.NewPostgresChecker(pool))
	}
	readiness := health.NewService(probes...)

	var authMW fiber.Handler
	if cfg.AuthEnabled {
		authMW = jwt.NewAuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer)
	}

	app := apihttp.NewApp(cfg.MaxUploadBytes)
	apihttp.Register(app, apihttp.Handlers{
		Auth:     handlers.NewAuthHandler(authUC),
		Health:   handlers.NewHealthHandler(readiness),
		Resume:   handlers.NewResumeHandler(uploads, analyzer, cfg.MaxUploadBytes),
		Analysis: handlers.NewAnalysisHandler(analyzer),
		Catalog:  handlers.NewCatalogHandler(cat),
	}, authMW)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info().
			Str("port", cfg.Port).
			Bool("auth", cfg.AuthEnabled).
			Str("match_mode", cfg.SkillMatchMode).
			Msg("HTTP server listening")
		return app.Listen(":" + cfg.Port)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info().Msg("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return app.ShutdownWithContext(sctx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error().Err(err).Msg("server stopped")
		return err
	}
	logger.Info().Msg("server stopped")
	return nil
}
