package importer

import (
	"fmt"
	"io"

	"github.com/mfava/shoproll/internal/importer/stockcsv"
	"github.com/mfava/shoproll/internal/tire"
)

type Service struct {
	stockImporter Importer
}

func NewService() *Service {
	return &Service{
		stockImporter: stockcsv.NewParser(),
	}
}

func (s *Service) Import(format Format, r io.Reader) ([]tire.CreateParams, error) {
	var importer Importer

	switch format {
	case FormatStockCSV:
		importer = s.stockImporter
	default:
		return nil, fmt.Errorf("unknown import format: %s", format)
	}

	return importer.Parse(r)
}
