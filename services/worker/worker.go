package worker

import (
	"context"
	"encoding/json"
	"time"

	"fakejobs-worker/helpers"
	"fakejobs-worker/internal/scraper"
	"fakejobs-worker/services/publisher"
	"fakejobs-worker/services/storage"
)

// Scraper produces one result set per run
type Scraper interface {
	Run(workerCount int) (scraper.ResultSet, error)
}

// Worker drives one scrape run end to end: scrape, persist to both sinks,
// then publish. The pool is drained before persistence begins.
type Worker struct {
	scraper     Scraper
	db          *storage.DB
	jsonPath    string
	publisher   publisher.Publisher
	logger      helpers.LoggerInterface
	workerCount int
}

// NewWorker creates a new worker. db and pub may be nil to disable the
// corresponding sink.
func NewWorker(
	s Scraper,
	db *storage.DB,
	jsonPath string,
	pub publisher.Publisher,
	logger helpers.LoggerInterface,
	workerCount int,
) *Worker {
	return &Worker{
		scraper:     s,
		db:          db,
		jsonPath:    jsonPath,
		publisher:   pub,
		logger:      logger,
		workerCount: workerCount,
	}
}

// Run executes one scrape-and-persist cycle and returns the collected
// result set. An empty result set (failed listing fetch, or a listing with
// no cards) skips every sink.
func (w *Worker) Run(ctx context.Context) (scraper.ResultSet, error) {
	start := time.Now()

	results, err := w.scraper.Run(w.workerCount)
	if err != nil {
		w.logger.LogError("scrape", err)
		return nil, err
	}

	w.logger.LogInfo("%d records collected", len(results))

	if len(results) == 0 {
		w.logger.LogInfo("nothing to persist")
		return results, nil
	}

	if w.jsonPath != "" {
		if err := storage.SaveJSON(results, w.jsonPath); err != nil {
			w.logger.LogError("json", err)
			return nil, err
		}
	}

	if w.db != nil {
		if err := storage.SaveResults(ctx, w.db.Pool, results); err != nil {
			w.logger.LogError("sqlite", err)
			return nil, err
		}
		w.logger.LogInfo("%d jobs written to the database", len(results))
	}

	w.publishResults(results)

	w.logger.LogInfo("total duration: %s", time.Since(start))

	return results, nil
}

// publishedRecord is the wire shape of one record on the stream
type publishedRecord struct {
	Index int `json:"index"`
	scraper.Record
}

// publishResults pushes every record to the stream. Publish failures are
// logged and do not fail the run.
func (w *Worker) publishResults(results scraper.ResultSet) {
	if w.publisher == nil {
		return
	}

	for idx, record := range results {
		data, err := json.Marshal(publishedRecord{Index: idx, Record: record})
		if err != nil {
			w.logger.LogError("publish", err)
			continue
		}

		if err := w.publisher.Publish(data); err != nil {
			w.logger.LogError("publish", err)
		}
	}
}
