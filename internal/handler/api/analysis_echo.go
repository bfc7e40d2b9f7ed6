package api

import (
	"errors"
	"net/http"

	"StockLens/internal/domain/models"
	"StockLens/internal/service/ratelimit"
	"StockLens/internal/usecase"
	xhttp "StockLens/pkg/http"
	xlogger "StockLens/pkg/logger"

	"github.com/labstack/echo/v4"
)

// AnalysisEchoHandler serves one-shot analyses over REST.
type AnalysisEchoHandler struct {
	logger  *xlogger.Logger
	uc      *usecase.AnalyzeUseCase
	limiter *ratelimit.Limiter
}

// NewAnalysisEchoHandler builds the handler; a nil limiter disables rate limiting.
func NewAnalysisEchoHandler(logger *xlogger.Logger, uc *usecase.AnalyzeUseCase, limiter *ratelimit.Limiter) *AnalysisEchoHandler {
	return &AnalysisEchoHandler{logger: logger, uc: uc, limiter: limiter}
}

func (h *AnalysisEchoHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.Health)

	g := e.Group("/api")
	g.GET("/periods", h.Periods)
	g.GET("/analysis/:ticker", h.Analysis, h.rateLimit)
}

func (h *AnalysisEchoHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *AnalysisEchoHandler) Periods(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=3600")
	return xhttp.SuccessResponse(c, models.Periods())
}

func (h *AnalysisEchoHandler) Analysis(c echo.Context) error {
	req := &models.AnalysisRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.uc.Analyze(c.Request().Context(), req.Ticker, req.Period)
	if err != nil {
		return xhttp.AppErrorResponse(c, toAppError(err))
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *AnalysisEchoHandler) rateLimit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if h.limiter != nil && !h.limiter.Allow(c.RealIP()) {
			return xhttp.AppErrorResponse(c, xhttp.TooManyRequestsError("rate limit exceeded"))
		}
		return next(c)
	}
}

func toAppError(err error) *xhttp.AppError {
	if errors.Is(err, models.ErrEmptyTicker) {
		return xhttp.BadRequestError("ticker is required").WithError(err)
	}
	var up *models.UpstreamError
	if errors.As(err, &up) {
		return xhttp.UpstreamErrorf(up.StatusCode, "%s", usecase.ErrorMessage(err)).WithError(err)
	}
	return xhttp.UpstreamErrorf(0, "%s", usecase.ErrorMessage(err)).WithError(err)
}
