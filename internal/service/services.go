// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives validated
// payloads from handlers, applies the customer rules (email normalization,
// partial updates, not-found handling) and calls the repositories.
package service

import (
	"github.com/deppfellow/go-customers/internal/repository"
	"github.com/deppfellow/go-customers/internal/server"
)

type Services struct {
	Customer *CustomerService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Customer: NewCustomerService(s, repos.Customers),
	}, nil
}
