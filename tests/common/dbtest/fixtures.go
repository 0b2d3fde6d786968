//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestCourt(t *testing.T, db DBLike, name string, isCovered bool) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO courts (name, is_covered) VALUES ($1, $2) RETURNING id",
		name, isCovered,
	).Scan(&id)
	require.NoError(t, err)

	return id
}

// CreateTestReservation inserts directly, bypassing the overlap check.
// date is YYYY-MM-DD and start is HH:MM.
func CreateTestReservation(t *testing.T, db DBLike, courtID int64, date, start string, durationMinutes int) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO reservations (court_id, reservation_date, start_time, duration_minutes, contact_name, contact_phone)
		VALUES ($1, $2::date, $3::time, $4, 'Fixture Contact', '+54 11 5555-0000')
		RETURNING id`,
		courtID, date, start, durationMinutes,
	).Scan(&id)
	require.NoError(t, err)

	return id
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

// OutboxTopics lists queued or sent event topics in insertion order.
func OutboxTopics(t *testing.T, db DBLike) []string {
	t.Helper()

	rows, err := db.Query(context.Background(), "SELECT topic FROM notification_jobs ORDER BY id")
	require.NoError(t, err)
	defer rows.Close()

	var topics []string
	for rows.Next() {
		var topic string
		require.NoError(t, rows.Scan(&topic))
		topics = append(topics, topic)
	}
	require.NoError(t, rows.Err())
	return topics
}

// ResetDB empties every application table and restarts the id sequences.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE notification_jobs, reservations, courts RESTART IDENTITY CASCADE")
	return err
}
