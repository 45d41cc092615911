package render

import (
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"
)

var footerYear = regexp.MustCompile(`Copyright © (\d{4})`)

// PageSummary describes a rendered page as read back from HTML.
type PageSummary struct {
	Title   string     `json:"title"`
	Profile []string   `json:"profile"`
	Headers []string   `json:"headers"`
	Rows    int        `json:"rows"`
	Cells   [][]string `json:"cells"`
	Footer  string     `json:"footer"`
}

// Inspect parses a page produced by Render and summarizes its contact table.
func Inspect(r io.Reader) (*PageSummary, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, eris.Wrap(err, "render: parse page")
	}

	table := doc.Find("table#logTable").First()
	if table.Length() == 0 {
		return nil, eris.New("render: page has no contact table")
	}

	summary := &PageSummary{
		Title:  strings.TrimSpace(doc.Find("title").First().Text()),
		Rows:   table.Find("tbody tr").Length(),
		Footer: strings.TrimSpace(doc.Find("footer").First().Text()),
	}
	doc.Find(".profile li").Each(func(_ int, s *goquery.Selection) {
		summary.Profile = append(summary.Profile, strings.TrimSpace(s.Text()))
	})
	table.Find("thead th").Each(func(_ int, s *goquery.Selection) {
		summary.Headers = append(summary.Headers, s.Text())
	})
	table.Find("tbody tr").Each(func(_ int, tr *goquery.Selection) {
		cells := []string{}
		tr.Find("td").Each(func(_ int, td *goquery.Selection) {
			cells = append(cells, td.Text())
		})
		summary.Cells = append(summary.Cells, cells)
	})
	return summary, nil
}

// FooterYear returns the year printed in a page footer.
func FooterYear(footer string) (int, bool) {
	m := footerYear.FindStringSubmatch(footer)
	if m == nil {
		return 0, false
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return year, true
}
