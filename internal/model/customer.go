// Package model holds the customer record and the request payloads the
// customer endpoints accept.
package model

import (
	"github.com/deppfellow/go-customers/internal/validation"
)

// Customer is a single record in the customer store.
type Customer struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Age       int    `json:"age"`
}

// ListCustomersRequest is the (empty) payload of GET /api/customer.
// Query parameters are ignored.
type ListCustomersRequest struct{}

func (r *ListCustomersRequest) Validate() error {
	return nil
}

// CustomerIDRequest identifies a customer by its path id.
type CustomerIDRequest struct {
	ID int `param:"id" json:"-"`
}

func (r *CustomerIDRequest) Validate() error {
	return validation.Struct(r)
}

// CreateCustomerRequest is the body of POST /api/customer.
type CreateCustomerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name" validate:"required,min=3,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Age       int    `json:"age" validate:"required,min=10,max=99"`
}

func (r *CreateCustomerRequest) Validate() error {
	return validation.Struct(r)
}

// UpdateCustomerRequest is the body of PUT /api/customer/:id.
//
// Only the fields present in the body are validated and applied; nil means
// "keep the stored value". The id comes from the path only, and keys outside
// this struct are dropped by the JSON binder.
type UpdateCustomerRequest struct {
	ID        int     `param:"id" json:"-"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name" validate:"omitnil,min=3,max=100"`
	Email     *string `json:"email" validate:"omitnil,email"`
	Age       *int    `json:"age" validate:"omitnil,min=10,max=99"`
}

func (r *UpdateCustomerRequest) Validate() error {
	return validation.Struct(r)
}

// Apply overwrites the fields present in r onto c. Email is expected to be
// normalized already.
func (r *UpdateCustomerRequest) Apply(c *Customer) {
	if r.FirstName != nil {
		c.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		c.LastName = *r.LastName
	}
	if r.Email != nil {
		c.Email = *r.Email
	}
	if r.Age != nil {
		c.Age = *r.Age
	}
}
