package router

import (
	"net/http"

	"github.com/deppfellow/wheelspec/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerFormRoutes mounts the wheel specification form endpoints under
// /api/forms/wheel-specifications.
func registerFormRoutes(api *echo.Group, h *handler.Handlers) {
	forms := api.Group("/forms")
	wheelSpecs := forms.Group("/wheel-specifications")

	ws := h.WheelSpecification

	wheelSpecs.POST("", handler.Handle(
		ws.Handler,
		ws.Submit,
		http.StatusCreated,
		func() *handler.SubmitWheelSpecificationRequest { return &handler.SubmitWheelSpecificationRequest{} },
	))

	wheelSpecs.GET("", handler.Handle(
		ws.Handler,
		ws.List,
		http.StatusOK,
		func() *handler.ListWheelSpecificationsRequest { return &handler.ListWheelSpecificationsRequest{} },
	))
}
