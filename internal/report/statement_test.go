package report

import (
	"bytes"
	"testing"

	"github.com/dlevasseur/banque/internal/bank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"
)

func testAccount(t *testing.T) *bank.Account {
	t.Helper()
	a, err := bank.NewAccount("Alice Martin", "A001", "pw", 100)
	require.NoError(t, err)
	require.NoError(t, a.Deposit(50))
	require.NoError(t, a.Withdraw(20))
	return a
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("pdf")
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, f)

	f, err = ParseFormat("xlsx")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)

	_, err = ParseFormat("docx")
	assert.Error(t, err)
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(testAccount(t), FormatPDF, &buf))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	assert.Greater(t, buf.Len(), 500)
}

func TestWriteXLSX(t *testing.T) {
	a := testAccount(t)

	var buf bytes.Buffer
	require.NoError(t, Write(a, FormatXLSX, &buf))

	file, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)

	sheet := file.Sheets[0]
	assert.Equal(t, "Statement", sheet.Name)
	// header row plus one row per history entry
	require.Len(t, sheet.Rows, len(a.History())+1)
	assert.Equal(t, "Date", sheet.Rows[0].Cells[0].String())
	assert.Equal(t, "deposit", sheet.Rows[1].Cells[1].String())
	assert.Equal(t, "withdrawal", sheet.Rows[2].Cells[1].String())
}

func TestWrite_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Write(testAccount(t), Format("csv"), &buf))
}
