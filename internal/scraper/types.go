package scraper

import (
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Sentinel values used when an expected card sub-structure is missing.
const (
	SentinelValue    = "NC"
	SentinelLocation = "NC,--"
)

// Location is a "city, region" pair split from a single location text field
type Location struct {
	City   string `json:"city"`
	Region string `json:"region"`
}

// Record represents one normalized job offer
type Record struct {
	Title    string   `json:"title"`
	Company  string   `json:"company"`
	Location Location `json:"location"`
	Date     string   `json:"date"`
	URL      string   `json:"url"`
	Content  string   `json:"content"`
}

// ResultSet maps a card's discovery index to its Record. Only key identity
// matters; iteration order carries no meaning.
type ResultSet map[int]Record

// Card is one listing-page item: its position in document order, a display
// title and the parsed block it was found in. Cards live for the duration
// of a single run.
type Card struct {
	Index     int
	Title     string
	Selection *goquery.Selection
}

// Selectors contains CSS selectors for the structural card pattern
type Selectors struct {
	Card          string
	Title         string
	Company       string
	Location      string
	Date          string
	FooterLinks   string
	DetailContent string
}

// DefaultSelectors returns the selector set for the fake-jobs board
func DefaultSelectors() Selectors {
	return Selectors{
		Card:          "div.card-content",
		Title:         "h2.title",
		Company:       "h3.company",
		Location:      "p.location",
		Date:          "time",
		FooterLinks:   "a.card-footer-item",
		DetailContent: "div.content p",
	}
}

// Config contains configuration for a Scraper
type Config struct {
	ListingURL   string
	Selectors    Selectors
	ExtractDelay time.Duration
	CacheTTL     time.Duration
}
