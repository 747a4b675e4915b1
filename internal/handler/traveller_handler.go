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

type TravellerHandler struct {
	svc     service.TravellerService
	tripSvc service.TripService
}

func NewTravellerHandler(svc service.TravellerService, tripSvc service.TripService) *TravellerHandler {
	return &TravellerHandler{svc: svc, tripSvc: tripSvc}
}

func (h *TravellerHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/travellers", h.CreateTraveller)
	e.GET("/travellers", h.ListTravellers)
	e.PUT("/travellers/:id", h.UpdateTraveller)
	e.DELETE("/travellers/:id", h.DeleteTraveller)
	e.GET("/travellers/:id/delete", h.DeleteTravellerNav)
	e.POST("/travellers/:id/delete", h.DeleteTravellerNav)
	e.GET("/travellers/:id/edit", h.EditTravellerForm)
	e.POST("/travellers/:id/edit", h.UpdateTravellerForm)

	e.GET("/trips/:id/travellers", h.ListTravellersByTrip)
	e.GET("/trips/:id/travellers/view", h.ViewTravellers)
	e.GET("/trips/:id/travellers/new", h.NewTravellerForm)
	e.POST("/trips/:id/travellers/new", h.CreateTravellerForm)
}

func (h *TravellerHandler) CreateTraveller(c echo.Context) error {
	var req dto.CreateTravellerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	traveller := req.ToModel()
	if err := h.svc.CreateTraveller(c.Request().Context(), traveller); err != nil {
		if errors.Is(err, service.ErrTripNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("Trip %d not found", req.TripID))
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, dto.ToTravellerResponse(traveller))
}

func (h *TravellerHandler) ListTravellers(c echo.Context) error {
	travellers, err := h.svc.ListTravellers(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.TravellerResponse, len(travellers))
	for i, t := range travellers {
		resp[i] = dto.ToTravellerResponse(&t)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *TravellerHandler) ListTravellersByTrip(c echo.Context) error {
	tripID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid trip id")
	}

	travellers, err := h.svc.ListTravellersByTrip(c.Request().Context(), uint(tripID))
	if err != nil {
		if errors.Is(err, service.ErrTripNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("Trip %d not found", tripID))
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.TravellerResponse, len(travellers))
	for i, t := range travellers {
		resp[i] = dto.ToTravellerResponse(&t)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *TravellerHandler) UpdateTraveller(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid traveller id")
	}

	var patch dto.TravellerPatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	traveller, err := h.svc.UpdateTraveller(c.Request().Context(), uint(id), &patch)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTravellerNotFound):
			return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("Traveller %d not found", id))
		case errors.Is(err, service.ErrTripNotFound):
			return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("Trip %d not found", *patch.TripID))
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, dto.ToTravellerResponse(traveller))
}

func (h *TravellerHandler) DeleteTraveller(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid traveller id")
	}

	if _, err := h.svc.DeleteTraveller(c.Request().Context(), uint(id)); err != nil {
		if errors.Is(err, service.ErrTravellerNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("Traveller %d not found", id))
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{
		Message: fmt.Sprintf("Traveller %d deleted successfully", id),
	})
}

func (h *TravellerHandler) DeleteTravellerNav(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid traveller id")
	}

	traveller, err := h.svc.DeleteTraveller(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrTravellerNotFound) {
			return c.String(http.StatusNotFound, "Traveller not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.Redirect(http.StatusFound, fmt.Sprintf("/trips/%d/travellers/view", traveller.TripID))
}

func (h *TravellerHandler) ViewTravellers(c echo.Context) error {
	tripID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid trip id")
	}

	trip, err := h.tripSvc.GetTrip(c.Request().Context(), uint(tripID))
	if err != nil {
		if errors.Is(err, service.ErrTripNotFound) {
			return c.String(http.StatusNotFound, "Trip not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.Render(http.StatusOK, "travellers.html", dto.ToTripTravellersView(trip))
}

func (h *TravellerHandler) NewTravellerForm(c echo.Context) error {
	tripID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid trip id")
	}

	trip, err := h.tripSvc.GetTrip(c.Request().Context(), uint(tripID))
	if err != nil {
		if errors.Is(err, service.ErrTripNotFound) {
			return c.String(http.StatusNotFound, "Trip not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.Render(http.StatusOK, "add_traveller.html", dto.ToTripListItem(trip))
}

func (h *TravellerHandler) CreateTravellerForm(c echo.Context) error {
	tripID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid trip id")
	}

	values, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}

	traveller, err := dto.TravellerFromForm(values)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	traveller.TripID = uint(tripID)

	if err := h.svc.CreateTraveller(c.Request().Context(), traveller); err != nil {
		if errors.Is(err, service.ErrTripNotFound) {
			return c.String(http.StatusNotFound, "Trip not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.Redirect(http.StatusFound, fmt.Sprintf("/trips/%d/travellers/view", tripID))
}

func (h *TravellerHandler) EditTravellerForm(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid traveller id")
	}

	traveller, err := h.svc.GetTraveller(c.Request().Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrTravellerNotFound) {
			return c.String(http.StatusNotFound, "Traveller not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.Render(http.StatusOK, "edit_traveller.html", dto.ToTravellerView(traveller))
}

func (h *TravellerHandler) UpdateTravellerForm(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid traveller id")
	}

	values, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}

	patch, err := dto.TravellerPatchFromForm(values)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	traveller, err := h.svc.UpdateTraveller(c.Request().Context(), uint(id), patch)
	if err != nil {
		if errors.Is(err, service.ErrTravellerNotFound) {
			return c.String(http.StatusNotFound, "Traveller not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.Redirect(http.StatusFound, fmt.Sprintf("/trips/%d/travellers/view", traveller.TripID))
}
