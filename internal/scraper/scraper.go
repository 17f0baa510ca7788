package scraper

import (
	"bytes"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"

	"fakejobs-worker/logger"
	"fakejobs-worker/pkg/errors"
	"fakejobs-worker/services/cache"
)

// Scraper runs the fetch-and-extract pipeline: one listing fetch, card
// location, then one extraction task per card over a bounded worker pool.
type Scraper struct {
	listingURL   string
	selectors    Selectors
	extractDelay time.Duration
	cacheSvc     cache.CacheService
	cacheTTL     time.Duration
	log          *logger.Logger
}

// New creates a new scraper. cacheSvc may be nil to disable the
// detail-page cache.
func New(config Config, cacheSvc cache.CacheService) *Scraper {
	selectors := config.Selectors
	if selectors.Card == "" {
		selectors = DefaultSelectors()
	}

	return &Scraper{
		listingURL:   config.ListingURL,
		selectors:    selectors,
		extractDelay: config.ExtractDelay,
		cacheSvc:     cacheSvc,
		cacheTTL:     config.CacheTTL,
		log:          logger.ForScraper(),
	}
}

// Run fetches the listing page, locates its cards and extracts one Record
// per card using a pool of workerCount parallel tasks. Results are keyed by
// each card's discovery index; completion order is unspecified.
//
// A failed listing fetch is reported and yields an empty ResultSet without
// an error. A fault inside a single extraction task aborts the whole run.
func (s *Scraper) Run(workerCount int) (ResultSet, error) {
	body := s.fetchPage(s.listingURL, 0)
	if len(body) == 0 {
		s.log.Error().
			Str("url", s.listingURL).
			Msg("Could not fetch the listing page")
		return ResultSet{}, nil
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, errors.NewParsing("listing", "failed to parse listing page", err)
	}

	cards := LocateCards(doc, s.selectors)

	s.log.Info().
		Int("cards", len(cards)).
		Int("workers", workerCount).
		Msg("Located cards")

	results := make(ResultSet, len(cards))

	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(workerCount)

	for _, card := range cards {
		card := card
		g.Go(func() error {
			record, err := s.extract(card)
			if err != nil {
				return err
			}

			// Indices are unique per task, the lock only guards the map itself.
			mu.Lock()
			results[card.Index] = record
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
