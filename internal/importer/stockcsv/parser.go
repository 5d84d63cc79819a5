package stockcsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	enc "github.com/mfava/shoproll/internal/encoding"
	"github.com/mfava/shoproll/internal/tire"
)

// Parser reads supplier stock sheets and produces tire params. It
// auto-detects which supplier layout is being used by matching column
// headers against known profiles.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]tire.CreateParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	profile, colMap, headerIdx := detectProfile(rows)
	if profile == nil {
		return nil, fmt.Errorf("no matching supplier format found: expected warehouse or distributor columns")
	}

	return parseRows(profile, colMap, rows[headerIdx+1:], headerIdx+1)
}

// colIndex maps column names to their index in the row.
type colIndex map[string]int

// detectProfile scans rows for a header that matches a known profile.
// Returns the matched profile, column index map, and header row index.
func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.TrimSpace(cell)
			if name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

// matchesProfile checks if all required columns of a profile are present.
func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// parseRows extracts tire params from data rows using the matched profile.
// headerRowNum is the 0-based index of the header in the original file (for error messages).
func parseRows(p *Profile, cols colIndex, rows [][]string, headerRowNum int) ([]tire.CreateParams, error) {
	var params []tire.CreateParams

	for i, row := range rows {
		rowNum := headerRowNum + i + 2 // 1-based, skipping header

		sku := cellValue(row, cols[p.SKUCol])
		if sku == "" {
			continue // footer or spacer row
		}

		brand := cellValue(row, cols[p.BrandCol])
		if brand == "" {
			return nil, fmt.Errorf("row %d: missing brand", rowNum)
		}

		size := cellValue(row, cols[p.SizeCol])
		if size == "" {
			return nil, fmt.Errorf("row %d: missing size", rowNum)
		}

		qty, err := strconv.Atoi(cellValue(row, cols[p.QuantityCol]))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid quantity: %w", rowNum, err)
		}

		price, err := parsePrice(cellValue(row, cols[p.PriceCol]))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid price: %w", rowNum, err)
		}

		params = append(params, tire.CreateParams{
			Brand:     brand,
			Model:     optionalCell(row, cols, p.ModelCol),
			Size:      size,
			SKU:       sku,
			Condition: parseCondition(optionalCell(row, cols, p.ConditionCol)),
			Quantity:  qty,
			UnitPrice: price,
		})
	}

	return params, nil
}

// parseCondition maps a sheet's condition cell onto a known condition.
// Anything unrecognized, including an absent column, counts as new stock.
func parseCondition(s string) tire.Condition {
	if strings.EqualFold(s, string(tire.ConditionUsed)) {
		return tire.ConditionUsed
	}

	return tire.ConditionNew
}

// optionalCell reads a cell for a column the profile may not define.
func optionalCell(row []string, cols colIndex, name string) string {
	if name == "" {
		return ""
	}

	idx, ok := cols[name]
	if !ok {
		return ""
	}

	return cellValue(row, idx)
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
