package finviz

import (
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	// ErrNoTable indicates the listing table was missing from the page,
	// usually a changed layout or a blocked request.
	ErrNoTable = errors.New("finviz: screener table not found")

	// ErrNoRecords indicates the table was present but contained no usable
	// rows. Callers treat this the same as a fetch failure.
	ErrNoRecords = errors.New("finviz: no valid ticker rows")
)

// ParseRows converts the raw screener page into ticker records.
// Rows with fewer than minColumns cells are skipped. Duplicate symbols
// collapse to a single record, last-seen wins on non-key fields, so a
// repeated row can never show up as spuriously added or dropped.
func ParseRows(page string, minColumns int) ([]TickerRecord, error) {
	if minColumns <= 0 {
		minColumns = MinColumns
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, ErrNoTable
	}

	rows := doc.Find("table.screener_table tbody tr")
	if rows.Length() == 0 {
		// Older page revisions use an id instead of a class.
		rows = doc.Find("#screener-table tbody tr")
	}
	if rows.Length() == 0 {
		return nil, ErrNoTable
	}

	var records []TickerRecord
	index := make(map[string]int) // symbol -> position in records

	rows.Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < minColumns {
			return // skip short row
		}

		record := TickerRecord{
			Symbol:        symbolText(cells.Eq(colSymbol)),
			Company:       cellText(cells.Eq(colCompany)),
			Sector:        cellText(cells.Eq(colSector)),
			Industry:      cellText(cells.Eq(colIndustry)),
			Country:       cellText(cells.Eq(colCountry)),
			MarketCap:     cellText(cells.Eq(colMarketCap)),
			PE:            peText(cells.Eq(colPE)),
			Price:         cellText(cells.Eq(colPrice)),
			ChangePercent: cellText(cells.Eq(colChange)),
			Volume:        cellText(cells.Eq(colVolume)),
		}
		if record.Symbol == "" {
			return
		}

		if at, seen := index[record.Symbol]; seen {
			records[at] = record
			return
		}
		index[record.Symbol] = len(records)
		records = append(records, record)
	})

	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	return records, nil
}

func cellText(cell *goquery.Selection) string {
	return strings.TrimSpace(cell.Text())
}

// symbolText prefers the anchor inside the symbol cell; the cell itself can
// carry extra markup around the link.
func symbolText(cell *goquery.Selection) string {
	if link := cell.Find("a").First(); link.Length() > 0 {
		return strings.TrimSpace(link.Text())
	}
	return strings.TrimSpace(cell.Text())
}

// peText maps the source's bare dash placeholder to NotAvailable.
func peText(cell *goquery.Selection) string {
	text := strings.TrimSpace(cell.Text())
	if text == "-" {
		return NotAvailable
	}
	return text
}
