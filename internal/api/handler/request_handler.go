package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bloodconnect/donation-system/internal/api/metrics"
	"github.com/bloodconnect/donation-system/internal/core/ports"
)

// RequestHandler handles HTTP requests for the blood request board.
type RequestHandler struct {
	service ports.RequestService
}

func NewRequestHandler(service ports.RequestService) *RequestHandler {
	return &RequestHandler{service: service}
}

// Submit handles POST /request/create (and its /request/submit alias).
//
// @Summary      Submit a blood request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        body  body      submitRequestRequest  true  "Request details"
// @Success      201   {object}  submitRequestResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /request/create [post]
func (h *RequestHandler) Submit(c echo.Context) error {
	var req submitRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.service.Submit(c.Request().Context(), ports.SubmitRequestInput{
		PatientName:        req.PatientName,
		RequiredBloodGroup: req.RequiredBloodGroup,
		Location:           req.Location,
		HospitalName:       req.HospitalName,
		BloodUnits:         req.BloodUnits,
		Urgency:            req.Urgency,
		ContactPhone:       req.ContactPhone,
		ContactEmail:       req.ContactEmail,
	})
	if err != nil {
		return err
	}

	urgency := req.Urgency
	if urgency == "" {
		urgency = "Medium"
	}
	metrics.RequestsSubmittedTotal.WithLabelValues(req.RequiredBloodGroup, urgency).Inc()

	return c.JSON(http.StatusCreated, submitRequestResponse{
		Message: "Blood request created successfully!",
		ID:      id,
	})
}

// List handles GET /request/all (and /request/inbox) — the public board view.
//
// @Summary      List all blood requests
// @Tags         requests
// @Produce      json
// @Success      200  {array}   domain.BloodRequest
// @Failure      500  {object}  errorResponse
// @Router       /request/all [get]
func (h *RequestHandler) List(c echo.Context) error {
	requests, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, requests)
}

// ListByStatus handles GET /request/status?status=.
//
// @Summary      List blood requests by status
// @Tags         requests
// @Produce      json
// @Param        status  query     string  false  "Pending, Fulfilled, or Cancelled; empty returns all"
// @Success      200     {array}   domain.BloodRequest
// @Failure      400     {object}  errorResponse
// @Router       /request/status [get]
func (h *RequestHandler) ListByStatus(c echo.Context) error {
	requests, err := h.service.ListByStatus(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, requests)
}

// UpdateStatus handles PUT /request/:id/status.
//
// @Summary      Update a request's status
// @Tags         requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Request id"
// @Param        body  body      updateStatusRequest  true  "New status"
// @Success      200   {object}  requestEnvelope
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /request/{id}/status [put]
func (h *RequestHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	request, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return err
	}

	metrics.RequestStatusTransitionsTotal.WithLabelValues(req.Status).Inc()
	return c.JSON(http.StatusOK, requestEnvelope{
		Message: "Request status updated to " + req.Status,
		Request: request,
	})
}

// Delete handles DELETE /request/:id.
//
// @Summary      Delete a blood request
// @Tags         requests
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Request id"
// @Success      200  {object}  requestEnvelope
// @Failure      404  {object}  errorResponse
// @Router       /request/{id} [delete]
func (h *RequestHandler) Delete(c echo.Context) error {
	request, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, requestEnvelope{
		Message: "Blood request deleted successfully",
		Request: request,
	})
}
