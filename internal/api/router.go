package api

import (
    "time"

    "github.com/gin-contrib/cors"
    "github.com/gin-gonic/gin"
    "go.uber.org/zap"

    "heartguard/internal/render"
)

func NewRouter(h *Handler, log *zap.Logger, origins []string) *gin.Engine {
    r := gin.New()
    r.Use(RequestID(), AccessLog(log), gin.Recovery())
    r.Use(cors.New(corsConfig(origins)))
    r.SetHTMLTemplate(render.Templates())

    r.GET("/", h.Index)
    r.POST("/", h.Analyze)
    r.POST("/predict", h.Predict)
    r.GET("/health", h.Health)
    return r
}

func corsConfig(origins []string) cors.Config {
    cfg := cors.Config{
        AllowMethods:  []string{"GET", "POST", "OPTIONS"},
        AllowHeaders:  []string{"Origin", "Content-Type", requestIDHeader},
        ExposeHeaders: []string{requestIDHeader},
        MaxAge:        12 * time.Hour,
    }
    for _, o := range origins {
        if o == "*" {
            cfg.AllowAllOrigins = true
            return cfg
        }
    }
    cfg.AllowOrigins = origins
    return cfg
}
