// Package repository holds the data stores behind the service layer.
//
// The only store is the in-memory customer collection; it lives for the
// process lifetime and is shared by every request.
package repository

import (
	"github.com/deppfellow/go-customers/internal/model"
	"github.com/deppfellow/go-customers/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Customers *CustomerRepository
}

// NewRepositories constructs the repository container, seeding the customer
// store from s.Config.Store.SeedFile when one is configured.
func NewRepositories(s *server.Server) (*Repositories, error) {
	var seed []model.Customer

	if path := s.Config.Store.SeedFile; path != "" {
		customers, err := LoadSeedFile(path)
		if err != nil {
			return nil, err
		}
		seed = customers

		s.Logger.Info().
			Str("seed_file", path).
			Int("customers", len(seed)).
			Msg("seeded customer store")
	}

	return &Repositories{
		Customers: NewCustomerRepository(seed...),
	}, nil
}
