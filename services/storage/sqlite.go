package storage

import (
	"context"
	"database/sql"
	stderrors "errors"

	"fakejobs-worker/internal/scraper"
	"fakejobs-worker/pkg/errors"
)

// SaveResults writes the full result set into the normalized schema. Title
// and region texts are deduplicated through their reference tables (ids are
// assigned on first sight and reused afterwards), fact rows are replaced by
// card index. All changes for one run commit as a single transaction.
func SaveResults(ctx context.Context, db *sql.DB, results scraper.ResultSet) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return errors.NewStorage("sqlite", "begin transaction", err)
	}
	defer func() { _ = tx.Rollback() }()

	for idx, record := range results {
		titleID, err := lookupOrInsert(ctx, tx,
			`SELECT id FROM titles WHERE title = ?`,
			`INSERT INTO titles (title) VALUES (?)`,
			record.Title)
		if err != nil {
			return errors.NewStorage("sqlite", "resolve title reference", err)
		}

		var regionID sql.NullInt64
		if record.Location.Region != "" {
			id, err := lookupOrInsert(ctx, tx,
				`SELECT id FROM regions WHERE region = ?`,
				`INSERT INTO regions (region) VALUES (?)`,
				record.Location.Region)
			if err != nil {
				return errors.NewStorage("sqlite", "resolve region reference", err)
			}
			regionID = sql.NullInt64{Int64: id, Valid: true}
		}

		if _, err := tx.ExecContext(ctx, `
INSERT OR REPLACE INTO jobs (id, title_id, company, city, region_id, date, url, content)
VALUES (?, ?, ?, ?, ?, ?, ?, ?);`,
			idx, titleID, record.Company, record.Location.City,
			regionID, record.Date, record.URL, record.Content,
		); err != nil {
			return errors.NewStorage("sqlite", "upsert job row", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.NewStorage("sqlite", "commit transaction", err)
	}

	return nil
}

// lookupOrInsert resolves a reference-table id for value, inserting the
// value when it has not been seen before. Existing rows are never replaced.
func lookupOrInsert(ctx context.Context, tx *sql.Tx, selectQuery, insertQuery, value string) (int64, error) {
	var id int64
	err := tx.QueryRowContext(ctx, selectQuery, value).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !stderrors.Is(err, sql.ErrNoRows) {
		return 0, err
	}

	res, err := tx.ExecContext(ctx, insertQuery, value)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
