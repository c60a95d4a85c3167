//go:generate mockery --name=CustomerUsecase --output=../mocks --case=underscore
package domain

import "context"

type CustomerUsecase interface {
	List(ctx context.Context, search string, page, size int) ([]Customer, int64, error)
	Get(ctx context.Context, id string) (*Customer, error)
	Create(ctx context.Context, c Customer) (string, error)
	Update(ctx context.Context, id string, c Customer) error
	Import(ctx context.Context, filename string, data []byte) (ImportSummary, error)
}
