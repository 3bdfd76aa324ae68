package rates

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/medagenda/medagenda/internal/platform/auth"
	"github.com/medagenda/medagenda/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/rates")
	g.POST("", h.CaptureRate, auth.RequireRole("admin"))
	g.GET("/:currency", h.ListRates, auth.RequireRole("doctor"))
	g.GET("/:currency/on/:date", h.RateOn, auth.RequireRole("doctor"))
}

func (h *Handler) CaptureRate(c echo.Context) error {
	var rate HistoricalRate
	if err := c.Bind(&rate); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CaptureRate(c.Request().Context(), &rate); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, rate)
}

func (h *Handler) ListRates(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListRates(c.Request().Context(), c.Param("currency"), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) RateOn(c echo.Context) error {
	day, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "date must be YYYY-MM-DD")
	}
	rate, err := h.svc.RateFor(c.Request().Context(), c.Param("currency"), day)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if rate == nil {
		return echo.NewHTTPError(http.StatusNotFound, "no rate captured for that day")
	}
	return c.JSON(http.StatusOK, rate)
}
