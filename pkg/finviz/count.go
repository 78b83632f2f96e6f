package finviz

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// totalPattern matches the result counter shown above the listing,
// e.g., "#1 / 10458 Total".
var totalPattern = regexp.MustCompile(`#\d+\s*/\s*(\d+)\s*Total`)

// EstimateTotal extracts the total result count advertised by the page.
// It is best-effort only: any failure yields 0 ("unknown") and must never
// abort a poll cycle.
func EstimateTotal(page string) int {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return 0
	}

	text := doc.Find("#screener-total").Text()
	if !totalPattern.MatchString(text) {
		text = doc.Find("td.count-text, div.screener-results").Text()
	}
	if !totalPattern.MatchString(text) {
		text = doc.Text()
	}

	m := totalPattern.FindStringSubmatch(text)
	if m == nil {
		return 0
	}

	total, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return total
}
