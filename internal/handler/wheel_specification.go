package handler

import (
	"github.com/deppfellow/wheelspec/internal/server"
	"github.com/deppfellow/wheelspec/internal/service"
	"github.com/labstack/echo/v4"
)

const (
	msgSubmitted = "Wheel specification submitted successfully."
	msgListed    = "Filtered wheel specification forms fetched successfully."
)

type WheelSpecificationHandler struct {
	Handler
	service *service.WheelSpecificationService
}

func NewWheelSpecificationHandler(s *server.Server, svc *service.WheelSpecificationService) *WheelSpecificationHandler {
	return &WheelSpecificationHandler{
		Handler: NewHandler(s),
		service: svc,
	}
}

// Submit stores a validated wheel specification form.
func (h *WheelSpecificationHandler) Submit(c echo.Context, req *SubmitWheelSpecificationRequest) (Response[SubmittedWheelSpecification], error) {
	stored, err := h.service.Submit(c.Request().Context(), req.Spec())
	if err != nil {
		return Response[SubmittedWheelSpecification]{}, err
	}

	return newResponse(toSubmitted(stored), msgSubmitted), nil
}

// List returns the forms matching the query filters.
func (h *WheelSpecificationHandler) List(c echo.Context, req *ListWheelSpecificationsRequest) (Response[[]WheelSpecificationItem], error) {
	specs, err := h.service.List(c.Request().Context(), req.Filter())
	if err != nil {
		return Response[[]WheelSpecificationItem]{}, err
	}

	return newResponse(toItems(specs), msgListed), nil
}
