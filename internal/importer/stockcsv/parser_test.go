package stockcsv_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/mfava/shoproll/internal/importer/stockcsv"
	"github.com/mfava/shoproll/internal/tire"
)

func TestParser_Warehouse(t *testing.T) {
	csv := `Tire Stock Export - 2026-08-01;
Location;Main warehouse

Brand;Model;Size;SKU;Condition;Quantity;Unit Price
Michelin;Defender T+H;215/60R16;MIC-DEF-2156016;New;12;142.99
Bridgestone;Blizzak WS90;205/55R16;BRI-WS90-2055516;Used;4;89.50
`

	p := stockcsv.NewParser()
	params, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, params, 2)

	assert.Equal(t, "Michelin", params[0].Brand)
	assert.Equal(t, "Defender T+H", params[0].Model)
	assert.Equal(t, "215/60R16", params[0].Size)
	assert.Equal(t, "MIC-DEF-2156016", params[0].SKU)
	assert.Equal(t, tire.ConditionNew, params[0].Condition)
	assert.Equal(t, 12, params[0].Quantity)
	assert.Equal(t, "142.99", params[0].UnitPrice.StringFixed(2))

	assert.Equal(t, tire.ConditionUsed, params[1].Condition)
	assert.Equal(t, 4, params[1].Quantity)
	assert.Equal(t, "89.50", params[1].UnitPrice.StringFixed(2))
}

func TestParser_Distributor(t *testing.T) {
	csv := `Manufacturer;Dimension;Article No;Stock;Price
Continental;225/45R17;CON-PC7-2254517;8;1.234,56
Pirelli;245/40R18;PIR-PZ4-2454018;2;189,00
`

	p := stockcsv.NewParser()
	params, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, params, 2)

	assert.Equal(t, "Continental", params[0].Brand)
	assert.Empty(t, params[0].Model)
	assert.Equal(t, tire.ConditionNew, params[0].Condition)
	assert.Equal(t, "1234.56", params[0].UnitPrice.StringFixed(2))

	assert.Equal(t, "189.00", params[1].UnitPrice.StringFixed(2))
}

func TestParser_Latin1Encoding(t *testing.T) {
	utf8CSV := "Brand;Model;Size;SKU;Condition;Quantity;Unit Price\nKléber;Quadraxer;195/65R15;KLE-QUA-1956515;New;6;75.00\n"

	encoder := charmap.Windows1252.NewEncoder()
	latin1Bytes, err := encoder.Bytes([]byte(utf8CSV))
	require.NoError(t, err)

	p := stockcsv.NewParser()
	params, err := p.Parse(bytes.NewReader(latin1Bytes))
	require.NoError(t, err)
	require.Len(t, params, 1)

	assert.Equal(t, "Kléber", params[0].Brand)
}

func TestParser_DifferentColumnOrder(t *testing.T) {
	csv := `Export metadata;ignored
Unit Price;SKU;Quantity;Brand;Size;Extra
99.99;TST-ORDER-001;3;TestBrand;175/65R14;XXX
`

	p := stockcsv.NewParser()
	params, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, params, 1)

	assert.Equal(t, "TST-ORDER-001", params[0].SKU)
	assert.Equal(t, "TestBrand", params[0].Brand)
	assert.Equal(t, "99.99", params[0].UnitPrice.StringFixed(2))
}

func TestParser_EmptyFile(t *testing.T) {
	p := stockcsv.NewParser()
	_, err := p.Parse(strings.NewReader(""))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no matching supplier format")
}

func TestParser_HeaderOnly(t *testing.T) {
	csv := `Brand;Model;Size;SKU;Condition;Quantity;Unit Price`

	p := stockcsv.NewParser()
	params, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Empty(t, params)
}

func TestParser_MissingBrand(t *testing.T) {
	csv := `Brand;Size;SKU;Quantity;Unit Price
;205/55R16;SKU-1;4;50.00
`

	p := stockcsv.NewParser()
	_, err := p.Parse(strings.NewReader(csv))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "brand")
}

func TestParser_InvalidQuantity(t *testing.T) {
	csv := `Brand;Size;SKU;Quantity;Unit Price
Michelin;205/55R16;SKU-1;many;50.00
`

	p := stockcsv.NewParser()
	_, err := p.Parse(strings.NewReader(csv))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "quantity")
}

func TestParser_SkipsFooterRows(t *testing.T) {
	csv := `Brand;Size;SKU;Quantity;Unit Price
Michelin;205/55R16;SKU-1;4;50.00
Total lines: 1;;;;
`

	p := stockcsv.NewParser()
	params, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, params, 1)
}
