package scraper

import (
	"bytes"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"fakejobs-worker/helpers"
)

// extract pulls the structured fields out of one card and, when the card
// carries a detail link, enriches the record with the detail page's content
// paragraph. Every sub-structure is independently optional and degrades to a
// sentinel; extract itself never fails for a malformed card.
//
// Safe to run concurrently for different cards: the only inputs are the
// read-only card selection and the scraper configuration.
func (s *Scraper) extract(card Card) (Record, error) {
	// Fixed per-task pacing, observable in aggregate timing only.
	time.Sleep(s.extractDelay)

	sel := card.Selection

	company := textOrSentinel(sel.Find(s.selectors.Company).First(), SentinelValue)
	strLoc := textOrSentinel(sel.Find(s.selectors.Location).First(), SentinelLocation)

	city, region := helpers.SplitFirst(strLoc, ",")
	location := Location{City: city, Region: region}

	date := s.extractDate(sel)
	url := s.extractDetailURL(sel)

	content := ""
	if url != SentinelValue {
		content = s.extractContent(url, card.Index)
	}

	return Record{
		Title:    card.Title,
		Company:  company,
		Location: location,
		Date:     date,
		URL:      url,
		Content:  content,
	}, nil
}

// extractDate prefers the machine-readable datetime attribute, falls back to
// the node's display text, then to the sentinel.
func (s *Scraper) extractDate(sel *goquery.Selection) string {
	timeSel := sel.Find(s.selectors.Date).First()
	if timeSel.Length() == 0 {
		return SentinelValue
	}

	if datetime, exists := timeSel.Attr("datetime"); exists && datetime != "" {
		return datetime
	}

	if text := strings.TrimSpace(timeSel.Text()); text != "" {
		return text
	}

	return SentinelValue
}

// extractDetailURL reads the outbound link from the second footer link of
// the card. Fewer than two links means no detail page exists.
func (s *Scraper) extractDetailURL(sel *goquery.Selection) string {
	links := sel.Find(s.selectors.FooterLinks)
	if links.Length() < 2 {
		return SentinelValue
	}

	href, exists := links.Eq(1).Attr("href")
	if !exists || strings.TrimSpace(href) == "" {
		return SentinelValue
	}

	return strings.TrimSpace(href)
}

// extractContent fetches the detail page and reads the first paragraph of
// its content container. Any failure degrades to an empty string.
func (s *Scraper) extractContent(url string, worker int) string {
	body := s.fetchDetail(url, worker)
	if len(body) == 0 {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return ""
	}

	paragraph := doc.Find(s.selectors.DetailContent).First()
	if paragraph.Length() == 0 {
		return ""
	}

	return strings.TrimSpace(paragraph.Text())
}

// textOrSentinel returns the trimmed text of a selection, or the sentinel
// when the node is absent.
func textOrSentinel(sel *goquery.Selection, sentinel string) string {
	if sel.Length() == 0 {
		return sentinel
	}
	return strings.TrimSpace(sel.Text())
}
