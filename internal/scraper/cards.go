package scraper

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// LocateCards selects every block matching the card pattern, in document
// order. The zero-based position in that order becomes the permanent key of
// the resulting Record. A card without a title node gets a synthesized one.
func LocateCards(doc *goquery.Document, selectors Selectors) []Card {
	var cards []Card

	doc.Find(selectors.Card).Each(func(i int, s *goquery.Selection) {
		titleSel := s.Find(selectors.Title).First()

		var title string
		if titleSel.Length() > 0 {
			title = strings.TrimSpace(titleSel.Text())
		}
		if title == "" {
			title = fmt.Sprintf("Job %d", i)
		}

		cards = append(cards, Card{
			Index:     i,
			Title:     title,
			Selection: s,
		})
	})

	return cards
}
