package repository

import (
	"sync"
	"testing"

	"github.com/deppfellow/go-customers/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCustomer(lastName string, age int) model.Customer {
	return model.Customer{LastName: lastName, Email: lastName + "@example.com", Age: age}
}

func TestCustomerRepository_AppendAssignsSequentialIDs(t *testing.T) {
	repo := NewCustomerRepository()

	first := repo.Append(newCustomer("smith", 30))
	second := repo.Append(newCustomer("jones", 40))

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.Equal(t, 2, repo.Count())
}

func TestCustomerRepository_AppendIgnoresClientID(t *testing.T) {
	repo := NewCustomerRepository()

	c := newCustomer("smith", 30)
	c.ID = 99

	assert.Equal(t, 1, repo.Append(c).ID)
}

func TestCustomerRepository_IDsNotReusedAfterDelete(t *testing.T) {
	repo := NewCustomerRepository()
	repo.Append(newCustomer("smith", 30))
	repo.Append(newCustomer("jones", 40))

	_, ok := repo.RemoveByID(1)
	require.True(t, ok)

	third := repo.Append(newCustomer("brown", 50))
	assert.Equal(t, 3, third.ID)

	ids := map[int]bool{}
	for _, c := range repo.ListAll() {
		assert.False(t, ids[c.ID], "duplicate id %d", c.ID)
		ids[c.ID] = true
	}
}

func TestCustomerRepository_ListAllKeepsOrderAndIsACopy(t *testing.T) {
	repo := NewCustomerRepository()
	assert.NotNil(t, repo.ListAll())
	assert.Empty(t, repo.ListAll())

	repo.Append(newCustomer("smith", 30))
	repo.Append(newCustomer("jones", 40))

	list := repo.ListAll()
	require.Len(t, list, 2)
	assert.Equal(t, "smith", list[0].LastName)
	assert.Equal(t, "jones", list[1].LastName)

	list[0].LastName = "mutated"
	assert.Equal(t, list[1:], repo.ListAll()[1:])
	assert.Equal(t, "smith", repo.ListAll()[0].LastName)
}

func TestCustomerRepository_FindByID(t *testing.T) {
	repo := NewCustomerRepository()
	created := repo.Append(newCustomer("smith", 30))

	found, ok := repo.FindByID(created.ID)
	require.True(t, ok)
	assert.Equal(t, created, found)

	_, ok = repo.FindByID(42)
	assert.False(t, ok)
}

func TestCustomerRepository_Update(t *testing.T) {
	repo := NewCustomerRepository()
	created := repo.Append(newCustomer("smith", 30))

	updated, ok := repo.Update(created.ID, func(c *model.Customer) {
		c.Age = 31
		c.ID = 500
	})
	require.True(t, ok)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 31, updated.Age)
	assert.Equal(t, "smith", updated.LastName)

	stored, _ := repo.FindByID(created.ID)
	assert.Equal(t, updated, stored)

	_, ok = repo.Update(42, func(c *model.Customer) {})
	assert.False(t, ok)
}

func TestCustomerRepository_RemoveByID(t *testing.T) {
	repo := NewCustomerRepository()
	repo.Append(newCustomer("smith", 30))
	second := repo.Append(newCustomer("jones", 40))
	repo.Append(newCustomer("brown", 50))

	removed, ok := repo.RemoveByID(second.ID)
	require.True(t, ok)
	assert.Equal(t, second, removed)

	list := repo.ListAll()
	require.Len(t, list, 2)
	assert.Equal(t, "smith", list[0].LastName)
	assert.Equal(t, "brown", list[1].LastName)

	_, ok = repo.RemoveByID(second.ID)
	assert.False(t, ok)
}

func TestCustomerRepository_ConcurrentAppends(t *testing.T) {
	repo := NewCustomerRepository()

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			repo.Append(newCustomer("smith", 30))
		}()
	}
	wg.Wait()

	ids := map[int]bool{}
	for _, c := range repo.ListAll() {
		ids[c.ID] = true
	}
	assert.Len(t, ids, workers)
}

func TestNewCustomerRepository_Seed(t *testing.T) {
	seed, err := LoadSeedFile("testdata/customers.json")
	require.NoError(t, err)
	require.Len(t, seed, 3)

	repo := NewCustomerRepository(seed...)
	assert.Equal(t, 3, repo.Count())

	grace, ok := repo.FindByID(5)
	require.True(t, ok)
	assert.Equal(t, "Hopper", grace.LastName)
	assert.Empty(t, grace.FirstName)

	assert.Equal(t, 6, repo.Append(newCustomer("next", 20)).ID)
}

func TestNewCustomerRepository_SeedWithoutIDs(t *testing.T) {
	repo := NewCustomerRepository(newCustomer("smith", 30), model.Customer{ID: 4, LastName: "jones"})

	list := repo.ListAll()
	require.Len(t, list, 2)
	assert.Equal(t, 5, list[0].ID)
	assert.Equal(t, 4, list[1].ID)
}

func TestLoadSeedFile_Missing(t *testing.T) {
	_, err := LoadSeedFile("testdata/does-not-exist.json")
	assert.Error(t, err)
}
