package scheduling

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
	g := api.Group("/appointments", auth.RequireRole("doctor"))
	g.GET("", h.ListAppointments)
	g.GET("/:id", h.GetAppointment)
	g.POST("", h.CreateAppointment)
	g.PUT("/:id", h.UpdateAppointment)
	g.DELETE("/:id", h.DeleteAppointment)
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

func (h *Handler) CreateAppointment(c echo.Context) error {
	doctorID, err := doctorFromContext(c)
	if err != nil {
		return err
	}
	var appt Appointment
	if err := c.Bind(&appt); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	appt.DoctorID = doctorID
	if err := h.svc.CreateAppointment(c.Request().Context(), &appt); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, appt)
}

func (h *Handler) GetAppointment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	appt, err := h.svc.GetAppointment(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "appointment not found")
	}
	return c.JSON(http.StatusOK, appt)
}

func (h *Handler) ListAppointments(c echo.Context) error {
	doctorID, err := doctorFromContext(c)
	if err != nil {
		return err
	}
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListAppointmentsByDoctor(c.Request().Context(), doctorID, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) UpdateAppointment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var appt Appointment
	if err := c.Bind(&appt); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	appt.ID = id
	if err := h.svc.UpdateAppointment(c.Request().Context(), &appt); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, appt)
}

func (h *Handler) DeleteAppointment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeleteAppointment(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
