package importer

import (
	"io"

	"github.com/mfava/shoproll/internal/tire"
)

// Format identifies a supported supplier sheet layout.
type Format string

const (
	FormatStockCSV Format = "stock_csv"
)

type Importer interface {
	Parse(r io.Reader) ([]tire.CreateParams, error)
}
