// Copyright (c) 2025-2026 Causeway Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
)

const createEvent = `
INSERT INTO event_log (level, category, message, metadata)
VALUES (?, ?, ?, ?)`

// CreateEventParams holds parameters for CreateEvent.
type CreateEventParams struct {
	Level    string
	Category string
	Message  string
	Metadata string
}

// CreateEvent appends a row to the event log.
func (q *Queries) CreateEvent(ctx context.Context, arg CreateEventParams) error {
	_, err := q.db.ExecContext(ctx, createEvent,
		arg.Level, arg.Category, arg.Message, arg.Metadata)
	return err
}

const listRecentEvents = `
SELECT id, level, category, message, metadata, created_at
FROM event_log
ORDER BY created_at DESC, id DESC
LIMIT ?`

// ListRecentEvents returns the newest log entries, for diagnostics.
func (q *Queries) ListRecentEvents(ctx context.Context, limit int64) ([]EventLogEntry, error) {
	rows, err := q.db.QueryContext(ctx, listRecentEvents, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []EventLogEntry
	for rows.Next() {
		var e EventLogEntry
		if err := rows.Scan(&e.ID, &e.Level, &e.Category, &e.Message,
			&e.Metadata, &e.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}
