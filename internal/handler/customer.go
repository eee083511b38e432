package handler

import (
	"strconv"

	"github.com/deppfellow/go-customers/internal/errs"
	"github.com/deppfellow/go-customers/internal/model"
	"github.com/deppfellow/go-customers/internal/server"
	"github.com/deppfellow/go-customers/internal/service"
	"github.com/labstack/echo/v4"
)

// CustomerHandler serves the /api/customer resource.
type CustomerHandler struct {
	Handler
	service *service.CustomerService
}

func NewCustomerHandler(s *server.Server, customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		Handler: NewHandler(s),
		service: customerService,
	}
}

// RequireCustomer is route middleware for /:id routes. It answers 400 for a
// non-integer id and 404 for an unknown one, before any body is bound or
// validated, and stops the chain there.
func (h *CustomerHandler) RequireCustomer(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return errs.NewBadRequestError("Customer id must be an integer", false, nil, nil)
		}

		if _, err := h.service.Get(c.Request().Context(), id); err != nil {
			return err
		}

		return next(c)
	}
}

func (h *CustomerHandler) ListCustomers(c echo.Context, req *model.ListCustomersRequest) ([]model.Customer, error) {
	return h.service.List(c.Request().Context()), nil
}

func (h *CustomerHandler) GetCustomer(c echo.Context, req *model.CustomerIDRequest) (model.Customer, error) {
	return h.service.Get(c.Request().Context(), req.ID)
}

func (h *CustomerHandler) CreateCustomer(c echo.Context, req *model.CreateCustomerRequest) (model.Customer, error) {
	return h.service.Create(c.Request().Context(), req), nil
}

func (h *CustomerHandler) UpdateCustomer(c echo.Context, req *model.UpdateCustomerRequest) (model.Customer, error) {
	return h.service.Update(c.Request().Context(), req)
}

func (h *CustomerHandler) DeleteCustomer(c echo.Context, req *model.CustomerIDRequest) (model.Customer, error) {
	return h.service.Delete(c.Request().Context(), req.ID)
}
