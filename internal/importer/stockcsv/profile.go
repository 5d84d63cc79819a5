package stockcsv

// Profile describes the column layout of a supplier stock sheet. Adding a new
// supplier format is just adding a Profile to the profiles slice.
type Profile struct {
	Name         string
	BrandCol     string
	ModelCol     string // optional; some sheets fold model into brand
	SizeCol      string
	SKUCol       string
	ConditionCol string // optional; lines default to new stock
	QuantityCol  string
	PriceCol     string
}

// requiredCols returns the column names that must be present for this
// profile to match.
func (p Profile) requiredCols() []string {
	return []string{p.BrandCol, p.SizeCol, p.SKUCol, p.QuantityCol, p.PriceCol}
}

// profiles is the ordered list of supplier formats to try during
// auto-detection. More specific profiles come first to avoid false matches.
var profiles = []Profile{
	{
		Name:         "warehouse",
		BrandCol:     "Brand",
		ModelCol:     "Model",
		SizeCol:      "Size",
		SKUCol:       "SKU",
		ConditionCol: "Condition",
		QuantityCol:  "Quantity",
		PriceCol:     "Unit Price",
	},
	{
		Name:        "distributor",
		BrandCol:    "Manufacturer",
		SizeCol:     "Dimension",
		SKUCol:      "Article No",
		QuantityCol: "Stock",
		PriceCol:    "Price",
	},
}
