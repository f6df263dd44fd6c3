// Copyright (c) 2025-2026 Causeway Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"strings"
)

const getMediaByID = `
SELECT id, file_name, file_path, file_url, mime_type, alt_text, created_at
FROM media
WHERE id = ?`

// GetMediaByID returns one media row.
func (q *Queries) GetMediaByID(ctx context.Context, id int64) (Media, error) {
	row := q.db.QueryRowContext(ctx, getMediaByID, id)
	var m Media
	err := row.Scan(&m.ID, &m.FileName, &m.FilePath, &m.FileUrl,
		&m.MimeType, &m.AltText, &m.CreatedAt)
	return m, err
}

// GetMediaByIDs returns the media rows for the given ids in one round trip.
// Missing ids are silently absent from the result; callers treat a missing
// image as "no image", not an error.
func (q *Queries) GetMediaByIDs(ctx context.Context, ids []int64) ([]Media, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	query := `
SELECT id, file_name, file_path, file_url, mime_type, alt_text, created_at
FROM media
WHERE id IN (` + placeholders + `)`
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Media
	for rows.Next() {
		var m Media
		if err := rows.Scan(&m.ID, &m.FileName, &m.FilePath, &m.FileUrl,
			&m.MimeType, &m.AltText, &m.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

const createMedia = `
INSERT INTO media (file_name, file_path, file_url, mime_type, alt_text)
VALUES (?, ?, ?, ?, ?)`

// CreateMediaParams holds parameters for CreateMedia.
type CreateMediaParams struct {
	FileName string
	FilePath string
	FileUrl  string
	MimeType string
	AltText  string
}

// CreateMedia inserts a media row and returns its id.
func (q *Queries) CreateMedia(ctx context.Context, arg CreateMediaParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, createMedia,
		arg.FileName, arg.FilePath, arg.FileUrl, arg.MimeType, arg.AltText)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
