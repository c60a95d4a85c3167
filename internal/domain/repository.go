//go:generate mockery --name=CustomerRepository --output=../mocks --case=underscore
package domain

import "context"

type CustomerRepository interface {
	ListCustomers(ctx context.Context, search string, limit, offset int) ([]Customer, int64, error)
	GetCustomer(ctx context.Context, id string) (*Customer, error)
	CreateCustomer(ctx context.Context, c Customer) (string, error)
	UpdateCustomer(ctx context.Context, id string, c Customer) error
	// BulkUpsertCustomers submits one unordered bulk write keyed on nic.
	// A duplicate-key failure on one row must not roll back its siblings.
	BulkUpsertCustomers(ctx context.Context, batch []Customer) (created, updated int64, err error)
}
