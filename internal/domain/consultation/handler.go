package consultation

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
	g := api.Group("/consultations", auth.RequireRole("doctor"))
	g.GET("", h.ListConsultations)
	g.GET("/:id", h.GetConsultation)
	g.POST("", h.CreateConsultation)
	g.PUT("/:id", h.UpdateConsultation)
	g.DELETE("/:id", h.DeleteConsultation)
}

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

func (h *Handler) CreateConsultation(c echo.Context) error {
	doctorID, err := doctorFromContext(c)
	if err != nil {
		return err
	}
	var cons Consultation
	if err := c.Bind(&cons); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	cons.DoctorID = doctorID
	if err := h.svc.CreateConsultation(c.Request().Context(), &cons); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, cons)
}

func (h *Handler) GetConsultation(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	cons, err := h.svc.GetConsultation(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "consultation not found")
	}
	return c.JSON(http.StatusOK, cons)
}

func (h *Handler) ListConsultations(c echo.Context) error {
	doctorID, err := doctorFromContext(c)
	if err != nil {
		return err
	}
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListConsultationsByDoctor(c.Request().Context(), doctorID, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) UpdateConsultation(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var cons Consultation
	if err := c.Bind(&cons); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	cons.ID = id
	if err := h.svc.UpdateConsultation(c.Request().Context(), &cons); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, cons)
}

func (h *Handler) DeleteConsultation(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeleteConsultation(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
