package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amathumitha2210/Customer-Management/internal/domain"
	"github.com/amathumitha2210/Customer-Management/internal/importer"
	"github.com/amathumitha2210/Customer-Management/internal/mocks"
)

func validCustomer() domain.Customer {
	return domain.Customer{
		Name:    "ALFA",
		Dob:     time.Date(1992, 5, 10, 0, 0, 0, 0, time.UTC),
		NIC:     "N100",
		Mobiles: []string{"0811"},
		Addresses: []domain.Address{
			{AddressLine1: "1 Main St", City: "Colombo", Country: "LK"},
		},
		FamilyMembers: []domain.FamilyMember{{Name: "BETA", NIC: "N200"}},
	}
}

func TestNewCustomerUC(t *testing.T) {
	repo := mocks.NewCustomerRepository(t)
	uc := NewCustomerUC(repo, importer.New(repo))

	require.NotNil(t, uc)
	u, ok := uc.(*customerUC)
	require.True(t, ok)
	assert.Equal(t, repo, u.repo)
}

func Test_customerUC_Create(t *testing.T) {
	ctx := context.Background()
	c := validCustomer()

	t.Run("ok", func(t *testing.T) {
		repo := mocks.NewCustomerRepository(t)
		repo.
			On("CreateCustomer", ctx, c).
			Return("65f000000000000000000001", nil).
			Once()

		uc := NewCustomerUC(repo, importer.New(repo))
		id, err := uc.Create(ctx, c)
		require.NoError(t, err)
		assert.Equal(t, "65f000000000000000000001", id)
	})

	t.Run("duplicate_nic", func(t *testing.T) {
		repo := mocks.NewCustomerRepository(t)
		repo.
			On("CreateCustomer", ctx, c).
			Return("", domain.ErrDuplicateNIC).
			Once()

		uc := NewCustomerUC(repo, importer.New(repo))
		id, err := uc.Create(ctx, c)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrDuplicateNIC))
		assert.Empty(t, id)
	})

	t.Run("missing_fields_rejected_before_repo", func(t *testing.T) {
		repo := mocks.NewCustomerRepository(t)
		uc := NewCustomerUC(repo, importer.New(repo))

		bad := c
		bad.NIC = "  "
		_, err := uc.Create(ctx, bad)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrMissingFields))
	})
}

func Test_customerUC_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		repo := mocks.NewCustomerRepository(t)
		repo.
			On("GetCustomer", ctx, "65f000000000000000000001").
			Return(&domain.Customer{Name: "ALFA"}, nil).
			Once()

		uc := NewCustomerUC(repo, importer.New(repo))
		got, err := uc.Get(ctx, "65f000000000000000000001")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "ALFA", got.Name)
	})

	t.Run("not_found", func(t *testing.T) {
		repo := mocks.NewCustomerRepository(t)
		repo.
			On("GetCustomer", ctx, "65f0000000000000000000ff").
			Return((*domain.Customer)(nil), domain.ErrNotFound).
			Once()

		uc := NewCustomerUC(repo, importer.New(repo))
		got, err := uc.Get(ctx, "65f0000000000000000000ff")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		assert.Nil(t, got)
	})
}

func Test_customerUC_List(t *testing.T) {
	ctx := context.Background()

	t.Run("ok_with_pagination", func(t *testing.T) {
		repo := mocks.NewCustomerRepository(t)
		// page=3,size=20 -> limit=20, offset=40
		repo.
			On("ListCustomers", ctx, "AL", 20, 40).
			Return([]domain.Customer{{Name: "ALFA"}}, int64(45), nil).
			Once()

		uc := NewCustomerUC(repo, importer.New(repo))
		rows, total, err := uc.List(ctx, "AL", 3, 20)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, int64(45), total)
	})

	t.Run("normalize_when_page_size_invalid", func(t *testing.T) {
		repo := mocks.NewCustomerRepository(t)
		repo.
			On("ListCustomers", ctx, "", 20, 0).
			Return([]domain.Customer{}, int64(0), nil).
			Once()

		uc := NewCustomerUC(repo, importer.New(repo))
		rows, total, err := uc.List(ctx, "", 0, 0)
		require.NoError(t, err)
		assert.Empty(t, rows)
		assert.Equal(t, int64(0), total)
	})
}

func Test_customerUC_Update(t *testing.T) {
	ctx := context.Background()
	c := validCustomer()

	t.Run("ok", func(t *testing.T) {
		repo := mocks.NewCustomerRepository(t)
		repo.
			On("UpdateCustomer", ctx, "65f000000000000000000001", c).
			Return(nil).
			Once()

		uc := NewCustomerUC(repo, importer.New(repo))
		require.NoError(t, uc.Update(ctx, "65f000000000000000000001", c))
	})

	t.Run("nic_taken_by_other_customer", func(t *testing.T) {
		repo := mocks.NewCustomerRepository(t)
		repo.
			On("UpdateCustomer", ctx, "65f000000000000000000001", c).
			Return(domain.ErrDuplicateNIC).
			Once()

		uc := NewCustomerUC(repo, importer.New(repo))
		err := uc.Update(ctx, "65f000000000000000000001", c)
		assert.True(t, errors.Is(err, domain.ErrDuplicateNIC))
	})

	t.Run("missing_fields", func(t *testing.T) {
		repo := mocks.NewCustomerRepository(t)
		uc := NewCustomerUC(repo, importer.New(repo))

		bad := c
		bad.Name = ""
		err := uc.Update(ctx, "65f000000000000000000001", bad)
		assert.True(t, errors.Is(err, domain.ErrMissingFields))
	})
}

func Test_customerUC_Import(t *testing.T) {
	ctx := context.Background()
	data := []byte("Name,DOB,NIC\nALFA,1992-05-10,N100\n")

	t.Run("delegates_to_pipeline", func(t *testing.T) {
		repo := mocks.NewCustomerRepository(t)
		repo.
			On("BulkUpsertCustomers", ctx, mock.MatchedBy(func(b []domain.Customer) bool {
				return len(b) == 1 && b[0].NIC == "N100"
			})).
			Return(int64(1), int64(0), nil).
			Once()

		uc := NewCustomerUC(repo, importer.New(repo))
		sum, err := uc.Import(ctx, "customers.csv", data)
		require.NoError(t, err)
		assert.Equal(t, domain.ImportSummary{Created: 1}, sum)
	})

	t.Run("empty_file", func(t *testing.T) {
		repo := mocks.NewCustomerRepository(t)
		uc := NewCustomerUC(repo, importer.New(repo))

		_, err := uc.Import(ctx, "customers.csv", nil)
		assert.True(t, errors.Is(err, domain.ErrEmptyFile))
	})
}
