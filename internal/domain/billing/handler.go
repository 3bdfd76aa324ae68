package billing

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
	g := api.Group("/invoices", auth.RequireRole("doctor"))
	g.GET("", h.ListInvoices)
	g.GET("/:id", h.GetInvoice)
	g.POST("", h.CreateInvoice)
	g.PUT("/:id", h.UpdateInvoice)
	g.DELETE("/:id", h.DeleteInvoice)
}

// doctorFromContext resolves the authenticated doctor's id from the session.
func doctorFromContext(c echo.Context) (uuid.UUID, error) {
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

func (h *Handler) CreateInvoice(c echo.Context) error {
	doctorID, err := doctorFromContext(c)
	if err != nil {
		return err
	}
	var inv Invoice
	if err := c.Bind(&inv); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	inv.DoctorID = doctorID
	if err := h.svc.CreateInvoice(c.Request().Context(), &inv); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, inv)
}

func (h *Handler) GetInvoice(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	inv, err := h.svc.GetInvoice(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "invoice not found")
	}
	return c.JSON(http.StatusOK, inv)
}

func (h *Handler) ListInvoices(c echo.Context) error {
	doctorID, err := doctorFromContext(c)
	if err != nil {
		return err
	}
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListInvoicesByDoctor(c.Request().Context(), doctorID, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) UpdateInvoice(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var inv Invoice
	if err := c.Bind(&inv); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	inv.ID = id
	if err := h.svc.UpdateInvoice(c.Request().Context(), &inv); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, inv)
}

func (h *Handler) DeleteInvoice(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeleteInvoice(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
