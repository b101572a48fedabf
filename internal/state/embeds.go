package state

import (
	"context"
	"database/sql"
	"errors"
	"time"

	dbutil "github.com/llehouerou/folio/internal/db"
	"github.com/llehouerou/folio/internal/media"
)

const embedColumns = `id, path, kind, size, url, title, artist, album, added_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmbed(row rowScanner) (media.Embed, error) {
	var e media.Embed
	var kind string
	var size sql.NullInt64
	var title, artist, album sql.NullString
	var addedAt int64
	if err := row.Scan(&e.ID, &e.Path, &kind, &size, &e.URL, &title, &artist, &album, &addedAt); err != nil {
		return media.Embed{}, err
	}
	e.Kind = media.Kind(kind)
	e.Size = dbutil.NullInt64Value(size)
	e.Title = dbutil.NullStringValue(title)
	e.Artist = dbutil.NullStringValue(artist)
	e.Album = dbutil.NullStringValue(album)
	e.AddedAt = dbutil.UnixTime(addedAt)
	return e, nil
}

func addEmbed(ctx context.Context, db *sql.DB, issuePath, pageID string, e media.Embed) (media.Embed, error) {
	if e.AddedAt.IsZero() {
		e.AddedAt = time.Now()
	}
	err := dbutil.WithTx(ctx, db, func(tx *sql.Tx) error {
		var next int
		if err := tx.QueryRowContext(ctx, `
			SELECT COALESCE(MAX(position), -1) + 1 FROM embeds
			WHERE issue_path = ? AND page_id = ?
		`, issuePath, pageID).Scan(&next); err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx, `
			INSERT INTO embeds (issue_path, page_id, position, path, kind, size, url, title, artist, album, added_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, issuePath, pageID, next, e.Path, string(e.Kind), e.Size, e.URL,
			dbutil.NullString(e.Title), dbutil.NullString(e.Artist), dbutil.NullString(e.Album),
			e.AddedAt.Unix())
		if err != nil {
			return err
		}
		e.ID, err = res.LastInsertId()
		return err
	})
	if err != nil {
		return media.Embed{}, err
	}
	return e, nil
}

func listEmbeds(db *sql.DB, issuePath, pageID string) ([]media.Embed, error) {
	rows, err := db.Query(`
		SELECT `+embedColumns+` FROM embeds
		WHERE issue_path = ? AND page_id = ?
		ORDER BY position
	`, issuePath, pageID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var embeds []media.Embed
	for rows.Next() {
		e, err := scanEmbed(rows)
		if err != nil {
			return nil, err
		}
		embeds = append(embeds, e)
	}
	return embeds, rows.Err()
}

func removeLastEmbed(ctx context.Context, db *sql.DB, issuePath, pageID string) (*media.Embed, error) {
	var removed *media.Embed
	err := dbutil.WithTx(ctx, db, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `
			SELECT `+embedColumns+` FROM embeds
			WHERE issue_path = ? AND page_id = ?
			ORDER BY position DESC LIMIT 1
		`, issuePath, pageID)
		e, err := scanEmbed(row)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM embeds WHERE id = ?`, e.ID); err != nil {
			return err
		}
		removed = &e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}
