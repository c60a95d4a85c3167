package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const csvHeader = "Name,DOB,NIC,Mobiles,FamilyMembers,AddressLine1,AddressLine2,City,Country\n"

func Test_decodeSheet_csv(t *testing.T) {
	data := []byte(csvHeader +
		"Alice,1990-05-10,N1,0711,Bob:N2,1 Main St,,Colombo,LK\n" +
		",,,,,,,,\n" +
		"Dave,1985-01-01,N3,,,,,,\n")

	rows, err := decodeSheet("customers.csv", data)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 2, rows[0].Line)
	assert.Equal(t, "Alice", rows[0].Name)
	assert.Equal(t, "1990-05-10", rows[0].DOB)
	assert.Equal(t, "N1", rows[0].NIC)
	assert.Equal(t, "Bob:N2", rows[0].FamilyMembers)
	assert.Equal(t, "Colombo", rows[0].City)

	// blank record is skipped but line numbering follows the file
	assert.Equal(t, 4, rows[1].Line)
	assert.Equal(t, "Dave", rows[1].Name)
}

func Test_decodeSheet_headerCaseInsensitive(t *testing.T) {
	data := []byte("name,dob,NIC\nAlice,1990-05-10,N1\n")
	rows, err := decodeSheet("c.csv", data)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Alice", rows[0].Name)
	assert.Equal(t, "N1", rows[0].NIC)
}

func Test_decodeSheet_unknownColumnsIgnored(t *testing.T) {
	data := []byte("Name,DOB,NIC,Comment\nAlice,1990-05-10,N1,ignore me\n")
	rows, err := decodeSheet("c.csv", data)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Alice", rows[0].Name)
	assert.Empty(t, rows[0].Mobiles)
}

func Test_decodeSheet_empty(t *testing.T) {
	rows, err := decodeSheet("c.csv", nil)
	require.NoError(t, err)
	assert.Empty(t, rows)

	rows, err = decodeSheet("c.csv", []byte(csvHeader))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func Test_decodeSheet_xlsx(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Name", "DOB", "NIC", "Mobiles"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"Alice", "1990-05-10", "N1", "0711,0722"}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]any{"Dave", "1985-01-01", "N3"}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	rows, err := decodeSheet("customers.xlsx", buf.Bytes())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Alice", rows[0].Name)
	assert.Equal(t, "0711,0722", rows[0].Mobiles)
	assert.Equal(t, "Dave", rows[1].Name)
	assert.Empty(t, rows[1].Mobiles)
}

func Test_decodeSheet_xlsxCorrupt(t *testing.T) {
	_, err := decodeSheet("x.xlsx", []byte("this is not a workbook"))
	require.Error(t, err)
}
