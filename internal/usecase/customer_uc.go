package usecase

import (
	"context"

	"github.com/amathumitha2210/Customer-Management/internal/domain"
)

// FileImporter runs an uploaded spreadsheet through the import pipeline.
type FileImporter interface {
	Import(ctx context.Context, filename string, data []byte) (domain.ImportSummary, error)
}

type customerUC struct {
	repo domain.CustomerRepository
	imp  FileImporter
}

func NewCustomerUC(r domain.CustomerRepository, imp FileImporter) domain.CustomerUsecase {
	return &customerUC{repo: r, imp: imp}
}

func (u *customerUC) List(ctx context.Context, search string, page, size int) ([]domain.Customer, int64, error) {
	if size <= 0 {
		size = 20
	}
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * size
	return u.repo.ListCustomers(ctx, search, size, offset)
}

func (u *customerUC) Get(ctx context.Context, id string) (*domain.Customer, error) {
	return u.repo.GetCustomer(ctx, id)
}

func (u *customerUC) Create(ctx context.Context, c domain.Customer) (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}
	return u.repo.CreateCustomer(ctx, c)
}

func (u *customerUC) Update(ctx context.Context, id string, c domain.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return u.repo.UpdateCustomer(ctx, id, c)
}

func (u *customerUC) Import(ctx context.Context, filename string, data []byte) (domain.ImportSummary, error) {
	return u.imp.Import(ctx, filename, data)
}
