package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	dbadapter "github.com/dynamicsamic/Todo/internal/adapter/db"
	httpadapter "github.com/dynamicsamic/Todo/internal/adapter/http"
	"github.com/dynamicsamic/Todo/internal/adapter/http/handlers"
	httpmiddleware "github.com/dynamicsamic/Todo/internal/adapter/http/middleware"
	"github.com/dynamicsamic/Todo/internal/app/service"
	"github.com/dynamicsamic/Todo/internal/app/validation"
	"github.com/dynamicsamic/Todo/pkg/translator"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := zap.L()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close postgres connection", zap.Error(err))
		}
	}()

	location := cfg.Location()
	pipeline := validation.NewPipeline(
		validation.WithLocation(location),
		validation.WithMaxPageLimit(cfg.MaxPageLimit),
	)
	todoService := service.NewTodoService(dbadapter.NewTodoRepository(db), pipeline)
	taskService := service.NewTaskService(dbadapter.NewTaskRepository(db), pipeline)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return err
	}
	httpadapter.RegisterRoutes(r, db, httpadapter.Handlers{
		Health: handlers.NewHealthHandler(db, location),
		Todos:  handlers.NewTodoHandler(todoService, cfg.DefaultPageLimit),
		Tasks:  handlers.NewTaskHandler(taskService, cfg.DefaultPageLimit),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
