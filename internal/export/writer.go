// Package export renders registered offers as an XLSX workbook.
package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"finodex/internal/domain"
)

const sheet = "Offers"

// columns defines the header row. The field columns mirror the loan offer
// extraction schema plus the derived tenor.
var columns = []string{
	"Document Type",
	"File Name",
	"Bank",
	"Kreditbetrag",
	"Zinssatz",
	"Effektivzins",
	"Laufzeit",
	"Monatsrate",
	"Angebotsdatum",
	"Fixzinsperiode",
	"Fixzins in Jahren",
	"Confidence",
	"Created At",
}

// fieldKeys maps field columns (from index 2) onto record keys.
var fieldKeys = []string{
	"bank",
	"kreditbetrag",
	"zinssatz",
	"effektivzins",
	"laufzeit",
	"monatsrate",
	"angebotsdatum",
	"fixzinsperiode",
	"fixzinssatz_in_jahren",
}

// OffersXLSX returns an XLSX workbook with one row per offer record.
func OffersXLSX(offers []domain.OfferRecord) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	for i, h := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("writing header: %w", err)
		}
	}

	for rowIdx, offer := range offers {
		row := rowIdx + 2
		write := func(col int, v interface{}) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, offer.DocumentType)
		write(2, offer.FileName)
		for i, key := range fieldKeys {
			write(3+i, cellValue(offer.Fields[key]))
		}
		write(3+len(fieldKeys), offer.Confidence)
		write(4+len(fieldKeys), offer.CreatedAt.Format(time.RFC3339))
	}

	_ = f.SetColWidth(sheet, "A", "B", 22)
	_ = f.SetColWidth(sheet, "C", "K", 16)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// cellValue flattens a parsed JSON value into something excelize accepts.
func cellValue(v interface{}) interface{} {
	switch t := v.(type) {
	case nil:
		return ""
	case string, float64, bool:
		return t
	default:
		return fmt.Sprintf("%v", t)
	}
}
