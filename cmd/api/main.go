package main

import (
    "context"
    "errors"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/gin-gonic/gin"
    "github.com/joho/godotenv"
    "go.uber.org/zap"
    "golang.org/x/sync/errgroup"

    "heartguard/internal/api"
    "heartguard/internal/config"
    "heartguard/internal/features"
    "heartguard/internal/inference"
    "heartguard/internal/models"
    "heartguard/pkg/utils"
)

func main() {
    _ = godotenv.Load()

    cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
    if err != nil { utils.Logger().Fatal("invalid configuration", zap.Error(err)) }

    logger := utils.NewLogger(cfg.LogFile)
    defer logger.Sync()
    gin.SetMode(cfg.GinMode)

    loader := models.NewLoader(cfg.ModelPath, features.Names, logger)
    // Load eagerly so the outcome is in the startup log; the result is
    // memoized either way.
    if _, err := loader.Classifier(); err != nil {
        logger.Warn("serving awaiting-model page until restart", zap.String("path", cfg.ModelPath))
    }

    h := api.NewHandler(loader, inference.NewEngine(logger), logger, api.Options{
        ProgressDelay: cfg.Delay(),
        Chart:         cfg.Chart,
    })
    srv := &http.Server{
        Addr:              cfg.Addr(),
        Handler:           api.NewRouter(h, logger, cfg.AllowedOrigins),
        ReadHeaderTimeout: 10 * time.Second,
    }

    ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
    defer stop()

    g, gctx := errgroup.WithContext(ctx)
    g.Go(func() error {
        logger.Info("listening", zap.String("addr", srv.Addr), zap.String("model_path", cfg.ModelPath))
        if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
            return err
        }
        return nil
    })
    g.Go(func() error {
        <-gctx.Done()
        shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
        defer cancel()
        return srv.Shutdown(shutdownCtx)
    })
    if err := g.Wait(); err != nil {
        logger.Fatal("server stopped", zap.Error(err))
    }
    logger.Info("server stopped")
}
