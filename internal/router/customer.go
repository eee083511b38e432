package router

import (
	"net/http"

	"github.com/deppfellow/go-customers/internal/handler"
	"github.com/deppfellow/go-customers/internal/model"
	"github.com/labstack/echo/v4"
)

// registerCustomerRoutes mounts the customer resource at /api/customer.
// Routes addressing a single customer go through RequireCustomer first. It is
// attached per route so unregistered methods on /:id never reach it.
func registerCustomerRoutes(api *echo.Group, h *handler.Handlers) {
	customers := api.Group("/customer")
	ch := h.Customer

	customers.GET("", handler.Handle(ch.Handler, ch.ListCustomers, http.StatusOK, &model.ListCustomersRequest{}))
	customers.POST("", handler.Handle(ch.Handler, ch.CreateCustomer, http.StatusOK, &model.CreateCustomerRequest{}))

	customers.GET("/:id", handler.Handle(ch.Handler, ch.GetCustomer, http.StatusOK, &model.CustomerIDRequest{}), ch.RequireCustomer)
	customers.PUT("/:id", handler.Handle(ch.Handler, ch.UpdateCustomer, http.StatusOK, &model.UpdateCustomerRequest{}), ch.RequireCustomer)
	customers.DELETE("/:id", handler.Handle(ch.Handler, ch.DeleteCustomer, http.StatusOK, &model.CustomerIDRequest{}), ch.RequireCustomer)
}
