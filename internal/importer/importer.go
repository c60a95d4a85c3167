// Package importer implements the bulk import pipeline: spreadsheet
// decode, per-row validation, and batched upserts keyed on nic.
package importer

import (
	"context"

	"github.com/amathumitha2210/Customer-Management/internal/domain"
	"github.com/amathumitha2210/Customer-Management/internal/pkg/log"
)

// batchSize bounds the size of any single bulk write against the store
// while amortizing round-trip overhead.
const batchSize = 1000

type Importer struct {
	repo      domain.CustomerRepository
	batchSize int
}

func New(repo domain.CustomerRepository) *Importer {
	return &Importer{repo: repo, batchSize: batchSize}
}

// Import runs one uploaded file through the pipeline. Validation is a
// strict all-or-nothing gate: every row is parsed before the first write,
// and the first bad row rejects the whole file. After the gate, batches
// are submitted sequentially and per-row store failures inside a batch
// leave sibling rows untouched.
func (im *Importer) Import(ctx context.Context, filename string, data []byte) (domain.ImportSummary, error) {
	rows, err := decodeSheet(filename, data)
	if err != nil {
		return domain.ImportSummary{}, err
	}
	if len(rows) == 0 {
		return domain.ImportSummary{}, domain.ErrEmptyFile
	}

	customers := make([]domain.Customer, 0, len(rows))
	for _, row := range rows {
		c, err := parseRow(row)
		if err != nil {
			return domain.ImportSummary{}, err
		}
		customers = append(customers, c)
	}

	var sum domain.ImportSummary
	for start := 0; start < len(customers); start += im.batchSize {
		end := start + im.batchSize
		if end > len(customers) {
			end = len(customers)
		}
		created, updated, err := im.repo.BulkUpsertCustomers(ctx, customers[start:end])
		if err != nil {
			return sum, err
		}
		sum.Created += created
		sum.Updated += updated
	}
	log.Info.Printf("import ok file=%q rows=%d created=%d updated=%d", filename, len(rows), sum.Created, sum.Updated)
	return sum, nil
}
