package api

import (
    "errors"
    "net/http"
    "time"

    "github.com/gin-gonic/gin"
    "go.uber.org/zap"

    "heartguard/internal/data"
    "heartguard/internal/features"
    "heartguard/internal/inference"
    "heartguard/internal/models"
    "heartguard/internal/render"
)

// ModelSource hands out the process classifier. *models.Loader implements it.
type ModelSource interface {
    Classifier() (models.Classifier, error)
}

type Options struct {
    // ProgressDelay is a cosmetic pause on the HTML path only.
    ProgressDelay time.Duration
    Chart         bool
}

type Handler struct {
    models ModelSource
    engine *inference.Engine
    log    *zap.Logger
    opts   Options
}

func NewHandler(src ModelSource, engine *inference.Engine, log *zap.Logger, opts Options) *Handler {
    if log == nil { log = zap.NewNop() }
    if engine == nil { engine = inference.NewEngine(log) }
    return &Handler{models: src, engine: engine, log: log, opts: opts}
}

type predictReq struct {
    CP      *int     `json:"cp" form:"cp" binding:"required"`
    Thal    *int     `json:"thal" form:"thal" binding:"required"`
    CA      *int     `json:"ca" form:"ca" binding:"required"`
    Thalach *int     `json:"thalach" form:"thalach" binding:"required"`
    Oldpeak *float64 `json:"oldpeak" form:"oldpeak" binding:"required"`
}

func (r predictReq) input() data.ClinicalInput {
    return data.ClinicalInput{
        ChestPain:    data.ChestPain(*r.CP),
        Thal:         data.Thalassemia(*r.Thal),
        MajorVessels: *r.CA,
        MaxHeartRate: *r.Thalach,
        STDepression: *r.Oldpeak,
    }
}

// predict runs validate → encode → classify for one input.
func (h *Handler) predict(clf models.Classifier, in data.ClinicalInput) (data.Prediction, error) {
    if err := features.Validate(in); err != nil { return data.Prediction{}, err }
    vec, _ := features.Vectorize(in)
    return h.engine.Predict(clf, vec)
}

func statusFor(err error) int {
    var ie *features.InvalidInputError
    switch {
    case errors.As(err, &ie), errors.Is(err, inference.ErrMalformedInput):
        return http.StatusBadRequest
    case errors.Is(err, models.ErrArtifactMissing):
        return http.StatusServiceUnavailable
    default:
        return http.StatusInternalServerError
    }
}

func (h *Handler) logFailure(c *gin.Context, err error) {
    if statusFor(err) < http.StatusInternalServerError { return }
    msg := "prediction failed"
    if render.IsUnexpectedLabel(err) { msg = "classifier broke the label contract" }
    h.log.Error(msg, zap.String("request_id", c.GetString("request_id")), zap.Error(err))
    _ = c.Error(err)
}

// Predict handles POST /predict.
func (h *Handler) Predict(c *gin.Context) {
    clf, err := h.models.Classifier()
    if err != nil {
        c.JSON(http.StatusServiceUnavailable, gin.H{"error": "model unavailable", "details": err.Error()})
        return
    }
    var req predictReq
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
        return
    }
    pred, err := h.predict(clf, req.input())
    if err != nil {
        h.failJSON(c, err)
        return
    }
    resp, err := render.JSON(pred)
    if err != nil {
        h.failJSON(c, err)
        return
    }
    c.JSON(http.StatusOK, resp)
}

func (h *Handler) failJSON(c *gin.Context, err error) {
    h.logFailure(c, err)
    c.JSON(statusFor(err), gin.H{"error": errorLabel(err), "details": err.Error()})
}

func errorLabel(err error) string {
    switch {
    case render.IsUnexpectedLabel(err):
        return "unexpected label"
    case statusFor(err) == http.StatusBadRequest:
        return "invalid input"
    default:
        return "prediction failed"
    }
}

// Index handles GET /.
func (h *Handler) Index(c *gin.Context) {
    if _, err := h.models.Classifier(); err != nil {
        c.HTML(http.StatusOK, render.PageTemplate, render.AwaitingModel())
        return
    }
    c.HTML(http.StatusOK, render.PageTemplate, render.NewPage(data.DefaultInput()))
}

// Analyze handles the form submission on POST /.
func (h *Handler) Analyze(c *gin.Context) {
    clf, err := h.models.Classifier()
    if err != nil {
        c.HTML(http.StatusServiceUnavailable, render.PageTemplate, render.AwaitingModel())
        return
    }
    var req predictReq
    if err := c.ShouldBind(&req); err != nil {
        page := render.NewPage(data.DefaultInput())
        page.Error = "Please fill in every field before analyzing."
        c.HTML(http.StatusBadRequest, render.PageTemplate, page)
        return
    }
    in := req.input()
    page := render.NewPage(in)

    if h.opts.ProgressDelay > 0 { time.Sleep(h.opts.ProgressDelay) }

    pred, err := h.predict(clf, in)
    if err != nil {
        h.logFailure(c, err)
        page.Error = err.Error()
        c.HTML(statusFor(err), render.PageTemplate, page)
        return
    }
    view, err := render.Select(pred)
    if err != nil {
        h.logFailure(c, err)
        page.Error = err.Error()
        c.HTML(statusFor(err), render.PageTemplate, page)
        return
    }
    if h.opts.Chart && pred.Probabilities != nil {
        if png, err := render.ProbabilityChart(pred.Probabilities); err != nil {
            h.log.Warn("probability chart skipped", zap.Error(err))
        } else {
            view.Chart = render.DataURI(png)
        }
    }
    page.Result = &view
    c.HTML(http.StatusOK, render.PageTemplate, page)
}

// Health handles GET /health.
func (h *Handler) Health(c *gin.Context) {
    clf, err := h.models.Classifier()
    if err != nil {
        c.JSON(http.StatusServiceUnavailable, gin.H{"status": "awaiting_model", "error": err.Error(), "timestamp": time.Now().UTC()})
        return
    }
    c.JSON(http.StatusOK, gin.H{"status": "ok", "model": clf.Name(), "timestamp": time.Now().UTC()})
}
