package finviz_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"screenerwatch/pkg/finviz"
)

// screenerPage wraps rows in the listing table markup the parser expects.
func screenerPage(rows ...string) string {
	return fmt.Sprintf(
		`<html><body><table class="screener_table"><thead><tr><th>No.</th></tr></thead><tbody>%s</tbody></table></body></html>`,
		strings.Join(rows, "\n"),
	)
}

// tickerRow renders one full 11-cell row. The symbol cell carries an anchor
// like the real page does.
func tickerRow(no, symbol, company, sector, industry, country, cap, pe, price, change, volume string) string {
	return fmt.Sprintf(
		`<tr><td>%s</td><td><a href="/quote.ashx?t=%s">%s</a></td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>`,
		no, symbol, symbol, company, sector, industry, country, cap, pe, price, change, volume,
	)
}

func TestParseRows_SampleDocument(t *testing.T) {
	page := screenerPage(
		tickerRow("1", "A", "Agilent Technologies Inc", "Healthcare", "Diagnostics & Research",
			"USA", "35.08B", "29.02", "123.75", "0.29%", "1,479,340"),
		tickerRow("2", "AACG", "ATA Creativity Global", "Consumer Defensive", "Education & Training Services",
			"China", "31.60M", "-", "1.02", "-1.92%", "18,040"),
	)

	records, err := finviz.ParseRows(page, finviz.MinColumns)
	require.NoError(t, err)
	require.Len(t, records, 2)

	require.Equal(t, finviz.TickerRecord{
		Symbol:        "A",
		Company:       "Agilent Technologies Inc",
		Sector:        "Healthcare",
		Industry:      "Diagnostics & Research",
		Country:       "USA",
		MarketCap:     "35.08B",
		PE:            "29.02",
		Price:         "123.75",
		ChangePercent: "0.29%",
		Volume:        "1,479,340",
	}, records[0])

	// Bare dash in the P/E column maps to the explicit marker.
	require.Equal(t, "AACG", records[1].Symbol)
	require.Equal(t, finviz.NotAvailable, records[1].PE)
}

func TestParseRows_TrimsCellText(t *testing.T) {
	page := screenerPage(
		`<tr><td> 1 </td><td><a> TSLA </a></td><td> Tesla Inc </td><td> Consumer Cyclical </td>` +
			`<td> Auto Manufacturers </td><td> USA </td><td> 790.12B </td><td> 62.11 </td>` +
			`<td> 248.50 </td><td> 2.10% </td><td> 90,120,400 </td></tr>`,
	)

	records, err := finviz.ParseRows(page, finviz.MinColumns)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "TSLA", records[0].Symbol)
	require.Equal(t, "Tesla Inc", records[0].Company)
	require.Equal(t, "62.11", records[0].PE)
}

func TestParseRows_SkipsShortRows(t *testing.T) {
	page := screenerPage(
		`<tr><td>1</td><td><a>A</a></td><td>Agilent Technologies Inc</td></tr>`, // too few cells
		tickerRow("2", "MSFT", "Microsoft Corporation", "Technology", "Software - Infrastructure",
			"USA", "3.10T", "35.90", "415.20", "0.75%", "22,000,100"),
	)

	records, err := finviz.ParseRows(page, finviz.MinColumns)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "MSFT", records[0].Symbol)
}

func TestParseRows_DuplicateSymbolsCollapseLastWins(t *testing.T) {
	page := screenerPage(
		tickerRow("1", "AAPL", "Apple Inc", "Technology", "Consumer Electronics",
			"USA", "2.90T", "28.10", "185.00", "0.10%", "50,000,000"),
		tickerRow("2", "AAPL", "Apple Inc", "Technology", "Consumer Electronics",
			"USA", "2.90T", "28.10", "186.25", "0.78%", "51,234,000"),
	)

	records, err := finviz.ParseRows(page, finviz.MinColumns)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "186.25", records[0].Price)
}

func TestParseRows_MissingTable(t *testing.T) {
	records, err := finviz.ParseRows("<html><body><p>blocked</p></body></html>", finviz.MinColumns)
	require.ErrorIs(t, err, finviz.ErrNoTable)
	require.Empty(t, records)
}

func TestParseRows_EmptyTable(t *testing.T) {
	page := screenerPage(`<tr><td>1</td></tr>`) // only a short row, no usable records
	records, err := finviz.ParseRows(page, finviz.MinColumns)
	require.True(t, errors.Is(err, finviz.ErrNoRecords))
	require.Empty(t, records)
}

func TestSymbols_Projection(t *testing.T) {
	records := []finviz.TickerRecord{
		{Symbol: "AAPL"},
		{Symbol: "MSFT"},
	}
	set := finviz.Symbols(records)
	require.Len(t, set, 2)
	require.Contains(t, set, "AAPL")
	require.Contains(t, set, "MSFT")
}
