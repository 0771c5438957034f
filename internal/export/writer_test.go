package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"finodex/internal/domain"
)

func TestOffersXLSX(t *testing.T) {
	created := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	offers := []domain.OfferRecord{
		{
			ID:           uuid.New(),
			DocumentType: "kreditangebot",
			FileName:     "a.pdf",
			Fields: domain.ParsedRecord{
				"bank":                  "Musterbank",
				"kreditbetrag":          250000.0,
				"zinssatz":              3.2,
				"fixzinssatz_in_jahren": "10 Jahre",
				"monatsrate":            nil,
			},
			Confidence: 0.75,
			CreatedAt:  created,
		},
		{
			ID:           uuid.New(),
			DocumentType: "kreditangebot",
			FileName:     "b.pdf",
			Fields:       domain.ParsedRecord{"bank": "Testbank"},
			Confidence:   0.5,
			CreatedAt:    created,
		},
	}

	data, err := OffersXLSX(offers)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Offers")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Document Type", rows[0][0])
	assert.Equal(t, "Bank", rows[0][2])

	assert.Equal(t, "kreditangebot", rows[1][0])
	assert.Equal(t, "a.pdf", rows[1][1])
	assert.Equal(t, "Musterbank", rows[1][2])
	assert.Equal(t, "250000", rows[1][3])
	assert.Equal(t, "10 Jahre", rows[1][10])
	assert.Equal(t, "0.75", rows[1][11])

	assert.Equal(t, "Testbank", rows[2][2])
}

func TestOffersXLSXEmpty(t *testing.T) {
	data, err := OffersXLSX(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Offers")
	require.NoError(t, err)
	require.Len(t, rows, 1) // header only
}

func TestCellValue(t *testing.T) {
	assert.Equal(t, "", cellValue(nil))
	assert.Equal(t, "x", cellValue("x"))
	assert.Equal(t, 1.5, cellValue(1.5))
	assert.Equal(t, true, cellValue(true))
	assert.Equal(t, "[1 2]", cellValue([]interface{}{1, 2}))
}
