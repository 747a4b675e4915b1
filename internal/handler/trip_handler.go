package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/vilimcapic/fipu-IS-projekt/internal/dto"
	"github.com/vilimcapic/fipu-IS-projekt/internal/service"
)

type TripHandler struct {
	svc service.TripService
}

func NewTripHandler(svc service.TripService) *TripHandler {
	return &TripHandler{svc: svc}
}

func (h *TripHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Home)
	e.POST("/trips", h.CreateTrip)
	e.GET("/trips", h.Trips)
	e.GET("/trips/new", h.NewTripForm)
	e.POST("/trips/new", h.CreateTripForm)
	e.GET("/trips/delete/:id", h.DeleteTrip)
	e.POST("/trips/delete/:id", h.DeleteTrip)
	e.PUT("/trips/:id", h.UpdateTrip)
	e.GET("/trips/:id/edit", h.EditTripForm)
	e.POST("/trips/:id/edit", h.UpdateTripForm)
}

func (h *TripHandler) Home(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/trips")
}

func (h *TripHandler) CreateTrip(c echo.Context) error {
	var req dto.CreateTripRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	trip, err := req.ToModel()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.svc.CreateTrip(c.Request().Context(), trip); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, dto.ToTripResponse(trip))
}

// Trips serves both the HTML list and, with ?id=, a single trip as JSON with
// its travellers nested.
func (h *TripHandler) Trips(c echo.Context) error {
	if idStr := c.QueryParam("id"); idStr != "" {
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid trip id")
		}

		trip, err := h.svc.GetTrip(c.Request().Context(), uint(id))
		if err != nil {
			if errors.Is(err, service.ErrTripNotFound) {
				return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("Trip with id %d not found", id))
			}
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}

		return c.JSON(http.StatusOK, dto.ToTripDetailResponse(trip))
	}

	trips, err := h.svc.ListTrips(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	items := make([]dto.TripListItem, len(trips))
	for i, t := range trips {
		items[i] = dto.ToTripListItem(&t)
	}

	return c.Render(http.StatusOK, "index.html", items)
}

func (h *TripHandler) UpdateTrip(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid trip id")
	}

	var req dto.UpdateTripRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	patch, err := req.ToPatch()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	trip, err := h.svc.UpdateTrip(c.Request().Context(), uint(id), patch)
	if err != nil {
		if errors.Is(err, service.ErrTripNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("Trip %d not found", id))
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.ToTripResponse(trip))
}

func (h *TripHandler) DeleteTrip(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid trip id")
	}

	if err := h.svc.DeleteTrip(c.Request().Context(), uint(id)); err != nil {
		if errors.Is(err, service.ErrTripNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("Trip %d not found", id))
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.Redirect(http.StatusFound, "/trips")
}

func (h *TripHandler) NewTripForm(c echo.Context) error {
	return c.Render(http.StatusOK, "add_trip.html", nil)
}

func (h *TripHandler) CreateTripForm(c echo.Context) error {
	values, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}

	trip, err := dto.TripFromForm(values)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.svc.CreateTrip(c.Request().Context(), trip); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.Redirect(http.StatusFound, "/trips")
}

func (h *TripHandler) EditTripForm(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid trip id")
	}

	trip, err := h.svc.GetTrip(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrTripNotFound) {
			return c.String(http.StatusNotFound, "Trip not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.Render(http.StatusOK, "edit_trip.html", dto.ToTripFormView(trip))
}

func (h *TripHandler) UpdateTripForm(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid trip id")
	}

	values, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}

	patch, err := dto.TripPatchFromForm(values)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.svc.UpdateTrip(c.Request().Context(), uint(id), patch); err != nil {
		if errors.Is(err, service.ErrTripNotFound) {
			return c.String(http.StatusNotFound, "Trip not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.Redirect(http.StatusFound, "/trips")
}
