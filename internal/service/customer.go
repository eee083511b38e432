package service

import (
	"context"

	"github.com/deppfellow/go-customers/internal/errs"
	"github.com/deppfellow/go-customers/internal/model"
	"github.com/deppfellow/go-customers/internal/repository"
	"github.com/deppfellow/go-customers/internal/server"
	"github.com/deppfellow/go-customers/internal/validation"
	"github.com/rs/zerolog"
)

var customerNotFoundCode = "CUSTOMER_NOT_FOUND"

// CustomerService implements the customer CRUD operations.
type CustomerService struct {
	server *server.Server
	repo   *repository.CustomerRepository
}

func NewCustomerService(s *server.Server, repo *repository.CustomerRepository) *CustomerService {
	return &CustomerService{
		server: s,
		repo:   repo,
	}
}

// ErrCustomerNotFound returns the 404 sent for an unknown customer id.
func ErrCustomerNotFound() *errs.HTTPError {
	return errs.NewNotFoundError("Customer not found", false, &customerNotFoundCode)
}

// List returns every customer in insertion order.
func (s *CustomerService) List(ctx context.Context) []model.Customer {
	return s.repo.ListAll()
}

// Get returns the customer with the given id.
func (s *CustomerService) Get(ctx context.Context, id int) (model.Customer, error) {
	customer, ok := s.repo.FindByID(id)
	if !ok {
		return model.Customer{}, ErrCustomerNotFound()
	}
	return customer, nil
}

// Create stores a new customer built from a validated request.
func (s *CustomerService) Create(ctx context.Context, req *model.CreateCustomerRequest) model.Customer {
	customer := s.repo.Append(model.Customer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     validation.NormalizeEmail(req.Email),
		Age:       req.Age,
	})

	zerolog.Ctx(ctx).Debug().
		Int("customer_id", customer.ID).
		Msg("customer created")

	return customer
}

// Update overwrites the fields present in req onto the stored customer.
func (s *CustomerService) Update(ctx context.Context, req *model.UpdateCustomerRequest) (model.Customer, error) {
	if req.Email != nil {
		normalized := validation.NormalizeEmail(*req.Email)
		req.Email = &normalized
	}

	customer, ok := s.repo.Update(req.ID, req.Apply)
	if !ok {
		return model.Customer{}, ErrCustomerNotFound()
	}

	zerolog.Ctx(ctx).Debug().
		Int("customer_id", customer.ID).
		Msg("customer updated")

	return customer, nil
}

// Delete removes the customer with the given id and returns it.
func (s *CustomerService) Delete(ctx context.Context, id int) (model.Customer, error) {
	customer, ok := s.repo.RemoveByID(id)
	if !ok {
		return model.Customer{}, ErrCustomerNotFound()
	}

	zerolog.Ctx(ctx).Debug().
		Int("customer_id", customer.ID).
		Msg("customer deleted")

	return customer, nil
}

// Count returns the number of stored customers.
func (s *CustomerService) Count() int {
	return s.repo.Count()
}
