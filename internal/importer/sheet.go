package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

// Recognized spreadsheet headers; anything else in the header row is ignored.
const (
	colName          = "name"
	colDOB           = "dob"
	colNIC           = "nic"
	colMobiles       = "mobiles"
	colFamilyMembers = "familymembers"
	colAddressLine1  = "addressline1"
	colAddressLine2  = "addressline2"
	colCity          = "city"
	colCountry       = "country"
)

// Row is the fixed-shape intermediate record decoded from one spreadsheet
// line. Cells are still raw text here; business validation happens in
// parseRow, so a malformed sheet structure never leaks into the domain model.
type Row struct {
	Line          int
	Name          string
	DOB           string
	NIC           string
	Mobiles       string
	FamilyMembers string
	AddressLine1  string
	AddressLine2  string
	City          string
	Country       string

	raw string
}

// decodeSheet turns an uploaded file into typed rows. XLSX workbooks are
// read from their first sheet only; anything else is treated as CSV.
// The first non-empty record is the header row.
func decodeSheet(filename string, data []byte) ([]Row, error) {
	var records [][]string
	var err error
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		records, err = readWorkbook(data)
	default:
		records, err = readCSV(data)
	}
	if err != nil {
		return nil, err
	}
	return recordsToRows(records), nil
}

func readWorkbook(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

func readCSV(data []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(sanitizeUTF8(data)))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	return records, nil
}

func recordsToRows(records [][]string) []Row {
	// Skip leading blank records before the header.
	start := 0
	for start < len(records) && isEmptyRecord(records[start]) {
		start++
	}
	if start >= len(records) {
		return nil
	}

	idx := headerIndex(records[start])
	var rows []Row
	for i, rec := range records[start+1:] {
		if isEmptyRecord(rec) {
			continue
		}
		rows = append(rows, Row{
			Line:          start + i + 2, // 1-based, after the header
			Name:          cell(rec, idx, colName),
			DOB:           cell(rec, idx, colDOB),
			NIC:           cell(rec, idx, colNIC),
			Mobiles:       cell(rec, idx, colMobiles),
			FamilyMembers: cell(rec, idx, colFamilyMembers),
			AddressLine1:  cell(rec, idx, colAddressLine1),
			AddressLine2:  cell(rec, idx, colAddressLine2),
			City:          cell(rec, idx, colCity),
			Country:       cell(rec, idx, colCountry),
			raw:           strings.Join(rec, ","),
		})
	}
	return rows
}

func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return idx
}

func cell(rec []string, idx map[string]int, col string) string {
	i, ok := idx[col]
	if !ok || i >= len(rec) {
		return ""
	}
	return rec[i]
}

func isEmptyRecord(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func sanitizeUTF8(data []byte) []byte {
	if utf8.Valid(data) {
		return data
	}
	var buf bytes.Buffer
	buf.Grow(len(data))
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			buf.WriteRune('�')
			data = data[1:]
		} else {
			buf.WriteRune(r)
			data = data[size:]
		}
	}
	return buf.Bytes()
}
