package scraper

import (
	"fakejobs-worker/helpers"
	"fakejobs-worker/logger"
)

// fetchPage performs a single GET against url. Any transport failure or
// non-200 status degrades to empty content; callers must treat empty as
// "no content", not as a distinguishable error. A successful fetch emits a
// progress notice tagged with the fetching task's identity.
func (s *Scraper) fetchPage(url string, worker int) []byte {
	body, err := helpers.Fetch(url)
	if err != nil {
		logger.ForWorker(worker).Warn().
			Str("url", url).
			Err(err).
			Msg("Fetch failed")
		return nil
	}

	logger.ForWorker(worker).Info().
		Str("url", url).
		Msg("Page fetched")

	return body
}

// fetchDetail fetches a detail page, going through the page cache when one
// is configured. Only successful bodies are cached.
func (s *Scraper) fetchDetail(url string, worker int) []byte {
	key := "page:" + url

	if s.cacheSvc != nil {
		if body, err := s.cacheSvc.Get(key); err == nil {
			logger.ForCache().Debug().Str("url", url).Msg("Cache hit")
			return body
		}
	}

	body := s.fetchPage(url, worker)

	if s.cacheSvc != nil && len(body) > 0 {
		if err := s.cacheSvc.Set(key, body, s.cacheTTL); err != nil {
			logger.ForCache().Warn().Err(err).Str("url", url).Msg("Cache set failed")
		}
	}

	return body
}
