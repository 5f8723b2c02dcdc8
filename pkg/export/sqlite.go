package export

import (
	"context"
	"database/sql"

	_ "modernc.org/sqlite"

	"github.com/percal/percal/pkg/catalog"
)

// SQLite snapshots the catalogue into an events table at path, for
// downstream tooling that prefers SQL over the JSON API. An existing
// snapshot at the same path is replaced.
func SQLite(ctx context.Context, c *catalog.Catalog, path string) error {
	dsn := "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS events (
  id          INTEGER PRIMARY KEY,
  era         TEXT NOT NULL,
  category    TEXT NOT NULL,
  date        TEXT NOT NULL,
  title       TEXT NOT NULL,
  description TEXT
);
CREATE INDEX IF NOT EXISTS idx_events_date ON events(date);
DELETE FROM events;
	`); err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	for _, ev := range c.AllEvents() {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO events(era, category, date, title, description) VALUES(?,?,?,?,?)`,
			string(ev.Era), ev.Category, ev.Date.String(), ev.Title, ev.Description); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}
