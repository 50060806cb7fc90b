package ktc

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/dynastydash/dynastydash/pkg/errors"
	"github.com/dynastydash/dynastydash/pkg/valuation"
)

// PageResult is the outcome of parsing one rankings page. Records keep the
// page's listed order. Each malformed row is skipped with a reason instead
// of being silently dropped.
type PageResult struct {
	Records []valuation.Record
	Skipped []string
}

// ParsePage extracts the ranked player rows from one rankings page.
func ParsePage(r io.Reader) (PageResult, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return PageResult{}, errors.WrapParse("html", SourceID, err)
	}

	var result PageResult
	doc.Find("div.onePlayer").Each(func(_ int, row *goquery.Selection) {
		rec, reason := parseRow(row)
		if reason != "" {
			result.Skipped = append(result.Skipped, reason)
			return
		}
		result.Records = append(result.Records, rec)
	})
	return result, nil
}

// parseRow extracts one player row. A row without a player name is
// unusable and yields a skip reason; the remaining fields degrade to the
// same placeholders the site shows for missing data.
func parseRow(row *goquery.Selection) (valuation.Record, string) {
	nameTag := row.Find("div.player-name").First()
	name := strings.TrimSpace(nameTag.Find("a").First().Text())
	if name == "" {
		rank := strings.TrimSpace(row.AttrOr("data-attr", ""))
		return valuation.Record{}, "row " + rank + ": missing player name"
	}

	rec := valuation.Record{
		Rank: strings.TrimSpace(row.AttrOr("data-attr", "")),
		Name: name,
		Team: textOr(nameTag.Find("span.player-team").First(), "N/A"),
	}

	positionTag := row.Find("div.position-team").First()
	rec.Position = textOr(positionTag.Find("p.position").First(), "Unknown")
	rec.Age = textOr(positionTag.Find("p.position.hidden-xs").First(), "N/A")
	rec.Value = textOr(row.Find("div.value").First().Find("p").First(), "0")

	return rec, ""
}

// textOr returns the trimmed text of a selection, or def when empty.
func textOr(s *goquery.Selection, def string) string {
	if t := strings.TrimSpace(s.Text()); t != "" {
		return t
	}
	return def
}
