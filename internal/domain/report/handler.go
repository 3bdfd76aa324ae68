package report

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/medagenda/medagenda/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/reports", auth.RequireRole("doctor"))
	g.GET("/revenue", h.RevenueReport)
}

// RevenueReport handles GET /reports/revenue?startDate=&endDate=. The
// doctor identity comes from the authenticated session, never from a
// parameter.
func (h *Handler) RevenueReport(c echo.Context) error {
	uid := auth.UserIDFromContext(c.Request().Context())
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "authentication required"})
	}
	doctorID, err := uuid.Parse(uid)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid session identity"})
	}

	rep, err := h.svc.BuildReport(c.Request().Context(), doctorID, c.QueryParam("startDate"), c.QueryParam("endDate"))
	if err != nil {
		if errors.Is(err, ErrInvalidDate) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rep)
}
