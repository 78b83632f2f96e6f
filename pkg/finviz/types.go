package finviz

// TickerRecord represents one row of the screener listing.
// All fields are kept in source form as trimmed text; numeric parsing is
// deferred to whoever consumes them.
type TickerRecord struct {
	Symbol        string `json:"symbol"`         // short uppercase code, unique within one fetch
	Company       string `json:"company"`        // company name
	Sector        string `json:"sector"`         // e.g., "Healthcare"
	Industry      string `json:"industry"`       // e.g., "Diagnostics & Research"
	Country       string `json:"country"`        // e.g., "USA"
	MarketCap     string `json:"market_cap"`     // free-form magnitude string, e.g., "35.08B"
	PE            string `json:"pe"`             // price/earnings ratio, NotAvailable when the source shows a placeholder
	Price         string `json:"price"`          // last price
	ChangePercent string `json:"change_percent"` // e.g., "0.29%"
	Volume        string `json:"volume"`         // e.g., "1,479,340"
}

// Column positions within a screener table row. Column 0 is the row number.
const (
	colNo = iota
	colSymbol
	colCompany
	colSector
	colIndustry
	colCountry
	colMarketCap
	colPE
	colPrice
	colChange
	colVolume
)

// MinColumns is the default minimum cell count for a row to be usable.
// Rows with fewer cells are skipped, never partially populated.
const MinColumns = colVolume + 1

// NotAvailable is the marker stored when the source shows a bare dash
// placeholder instead of a value.
const NotAvailable = "N/A"

// Symbols projects records down to the bare symbol set used for diffing.
func Symbols(records []TickerRecord) map[string]struct{} {
	set := make(map[string]struct{}, len(records))
	for _, r := range records {
		set[r.Symbol] = struct{}{}
	}
	return set
}
