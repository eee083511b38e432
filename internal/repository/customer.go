package repository

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/deppfellow/go-customers/internal/model"
	"github.com/pkg/errors"
)

// CustomerRepository is the in-memory customer store: an ordered collection
// of records plus a monotonically increasing id counter.
//
// Records are stored and returned by value, so callers never hold a pointer
// into the collection. All mutations go through the write lock.
type CustomerRepository struct {
	mu        sync.RWMutex
	customers []model.Customer
	lastID    int
}

// NewCustomerRepository creates a store holding seed in order. Seed records
// keep their ids; records with a zero id get the next counter value.
func NewCustomerRepository(seed ...model.Customer) *CustomerRepository {
	r := &CustomerRepository{
		customers: make([]model.Customer, 0, len(seed)),
	}

	for _, customer := range seed {
		if customer.ID > r.lastID {
			r.lastID = customer.ID
		}
	}

	for _, customer := range seed {
		if customer.ID == 0 {
			r.lastID++
			customer.ID = r.lastID
		}
		r.customers = append(r.customers, customer)
	}

	return r
}

// LoadSeedFile reads a JSON array of customers from path.
func LoadSeedFile(path string) ([]model.Customer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read seed file %s", path)
	}

	var customers []model.Customer
	if err := json.Unmarshal(data, &customers); err != nil {
		return nil, errors.Wrapf(err, "failed to decode seed file %s", path)
	}

	return customers, nil
}

// ListAll returns every record in insertion order. The result is never nil.
func (r *CustomerRepository) ListAll() []model.Customer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customers := make([]model.Customer, len(r.customers))
	copy(customers, r.customers)

	return customers
}

// FindByID returns the first record with the given id.
func (r *CustomerRepository) FindByID(id int) (model.Customer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.customers[i], true
	}

	return model.Customer{}, false
}

// Append assigns the next id to customer, stores it at the end of the
// collection and returns the stored record. Any id already set on customer is
// ignored.
func (r *CustomerRepository) Append(customer model.Customer) model.Customer {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	customer.ID = r.lastID
	r.customers = append(r.customers, customer)

	return customer
}

// Update applies fn to the stored record with the given id and returns the
// result. The id cannot be changed by fn.
func (r *CustomerRepository) Update(id int, fn func(*model.Customer)) (model.Customer, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return model.Customer{}, false
	}

	updated := r.customers[i]
	fn(&updated)
	updated.ID = id
	r.customers[i] = updated

	return updated, true
}

// RemoveByID removes the record with the given id and returns it.
func (r *CustomerRepository) RemoveByID(id int) (model.Customer, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return model.Customer{}, false
	}

	removed := r.customers[i]
	r.customers = append(r.customers[:i], r.customers[i+1:]...)

	return removed, true
}

// Count returns the number of stored records.
func (r *CustomerRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.customers)
}

// indexOf must be called with the lock held.
func (r *CustomerRepository) indexOf(id int) int {
	for i := range r.customers {
		if r.customers[i].ID == id {
			return i
		}
	}
	return -1
}
