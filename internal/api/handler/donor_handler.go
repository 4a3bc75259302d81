package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bloodconnect/donation-system/internal/api/metrics"
	"github.com/bloodconnect/donation-system/internal/core/ports"
)

// DonorHandler handles HTTP requests for the donor directory.
type DonorHandler struct {
	service ports.DonorService
}

func NewDonorHandler(service ports.DonorService) *DonorHandler {
	return &DonorHandler{service: service}
}

// Register handles POST /donors/register.
//
// @Summary      Register a new donor
// @Tags         donors
// @Accept       json
// @Produce      json
// @Param        body  body      registerDonorRequest  true  "Donor details"
// @Success      201   {object}  registerDonorResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /donors/register [post]
func (h *DonorHandler) Register(c echo.Context) error {
	var req registerDonorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.service.Register(c.Request().Context(), ports.RegisterDonorInput{
		Name:         req.Name,
		Age:          req.Age,
		Gender:       req.Gender,
		BloodGroup:   req.BloodGroup,
		ContactPhone: req.ContactPhone,
		ContactEmail: req.ContactEmail,
		City:         req.City,
	})
	if err != nil {
		return err
	}

	metrics.DonorsRegisteredTotal.WithLabelValues(req.BloodGroup).Inc()
	return c.JSON(http.StatusCreated, registerDonorResponse{
		Message: "Donor registered successfully!",
		ID:      id,
	})
}

// List handles GET /donors — available donors, newest-first.
//
// @Summary      List available donors
// @Tags         donors
// @Produce      json
// @Success      200  {array}   domain.Donor
// @Failure      500  {object}  errorResponse
// @Router       /donors [get]
func (h *DonorHandler) List(c echo.Context) error {
	donors, err := h.service.ListAvailable(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, donors)
}

// Search handles GET /donors/search?blood_group=&city=.
//
// @Summary      Search available donors
// @Tags         donors
// @Produce      json
// @Param        blood_group  query     string  false  "Blood group filter; 'any' matches all groups"
// @Param        city         query     string  false  "Case-insensitive city substring"
// @Success      200          {array}   domain.Donor
// @Failure      500          {object}  errorResponse
// @Router       /donors/search [get]
func (h *DonorHandler) Search(c echo.Context) error {
	input := ports.SearchDonorsInput{
		BloodGroup: c.QueryParam("blood_group"),
		City:       c.QueryParam("city"),
	}

	donors, err := h.service.Search(c.Request().Context(), input)
	if err != nil {
		return err
	}

	filtered := "no"
	if input.BloodGroup != "" || input.City != "" {
		filtered = "yes"
	}
	metrics.DonorSearchesTotal.WithLabelValues(filtered).Inc()

	return c.JSON(http.StatusOK, donors)
}

// ListAll handles GET /donors/admin/all — every donor, availability included.
//
// @Summary      List all donors (admin)
// @Tags         donors
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Donor
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /donors/admin/all [get]
func (h *DonorHandler) ListAll(c echo.Context) error {
	donors, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, donors)
}

// UpdateAvailability handles PUT /donors/:id/availability.
//
// @Summary      Toggle donor availability
// @Tags         donors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                     true  "Donor id"
// @Param        body  body      updateAvailabilityRequest  true  "New availability"
// @Success      200   {object}  donorEnvelope
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /donors/{id}/availability [put]
func (h *DonorHandler) UpdateAvailability(c echo.Context) error {
	var req updateAvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "is_available must be a boolean")
	}
	if req.IsAvailable == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "is_available must be a boolean")
	}

	donor, err := h.service.SetAvailability(c.Request().Context(), c.Param("id"), *req.IsAvailable)
	if err != nil {
		return err
	}

	msg := "Donor availability updated to Unavailable"
	if donor.IsAvailable {
		msg = "Donor availability updated to Available"
	}
	return c.JSON(http.StatusOK, donorEnvelope{Message: msg, Donor: donor})
}

// Delete handles DELETE /donors/:id.
//
// @Summary      Delete a donor profile
// @Tags         donors
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Donor id"
// @Success      200  {object}  donorEnvelope
// @Failure      404  {object}  errorResponse
// @Router       /donors/{id} [delete]
func (h *DonorHandler) Delete(c echo.Context) error {
	donor, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, donorEnvelope{
		Message: "Donor profile deleted successfully",
		Donor:   donor,
	})
}
