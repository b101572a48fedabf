package state

import (
	"database/sql"
	"errors"
	"time"

	dbutil "github.com/llehouerou/folio/internal/db"
)

// Reading is the last page shown for an issue.
type Reading struct {
	IssuePath  string
	PageID     string
	PageNumber int
	UpdatedAt  time.Time
}

func getReading(db *sql.DB, issuePath string) (*Reading, error) {
	row := db.QueryRow(`
		SELECT issue_path, page_id, page_number, updated_at
		FROM reading_state WHERE issue_path = ?
	`, issuePath)

	var r Reading
	var pageID sql.NullString
	var updatedAt int64
	err := row.Scan(&r.IssuePath, &pageID, &r.PageNumber, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // an unread issue has no saved state
	}
	if err != nil {
		return nil, err
	}

	r.PageID = dbutil.NullStringValue(pageID)
	r.UpdatedAt = dbutil.UnixTime(updatedAt)
	return &r, nil
}

func saveReading(db *sql.DB, r Reading) error {
	updatedAt := r.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}
	_, err := db.Exec(`
		INSERT INTO reading_state (issue_path, page_id, page_number, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(issue_path) DO UPDATE SET
			page_id = excluded.page_id,
			page_number = excluded.page_number,
			updated_at = excluded.updated_at
	`, r.IssuePath, dbutil.NullString(r.PageID), r.PageNumber, updatedAt.Unix())

	return err
}
