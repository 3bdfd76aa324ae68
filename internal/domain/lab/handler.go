package lab

import (
	"net/http"

	"github.com/google/uuid"
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
	g := api.Group("/lab-results", auth.RequireRole("doctor"))
	g.GET("", h.ListResults)
	g.GET("/:id", h.GetResult)
	g.POST("", h.CreateResult)
	g.DELETE("/:id", h.DeleteResult)
}

func providerFromContext(c echo.Context) (uuid.UUID, error) {
	uid := auth.UserIDFromContext(c.Request().Context())
	if uid == "" {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	id, err := uuid.Parse(uid)
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid session identity")
	}
	return id, nil
}

func (h *Handler) CreateResult(c echo.Context) error {
	providerID, err := providerFromContext(c)
	if err != nil {
		return err
	}
	var lr LabResult
	if err := c.Bind(&lr); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	lr.OrderingProviderID = providerID
	if err := h.svc.CreateResult(c.Request().Context(), &lr); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, lr)
}

func (h *Handler) GetResult(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	lr, err := h.svc.GetResult(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "lab result not found")
	}
	return c.JSON(http.StatusOK, lr)
}

func (h *Handler) ListResults(c echo.Context) error {
	providerID, err := providerFromContext(c)
	if err != nil {
		return err
	}
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListResultsByProvider(c.Request().Context(), providerID, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) DeleteResult(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeleteResult(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
