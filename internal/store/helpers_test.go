package store

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sravani-k-5/vidspark-backend/internal/logger"
	"github.com/stretchr/testify/require"
)

const (
	testUserID  = "0190c7e5-0000-7000-8000-000000000001"
	otherUserID = "0190c7e5-0000-7000-8000-000000000002"
	testVideoID = "0190c7e5-0000-7000-8000-0000000000a1"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return newDB(conn, time.Second, logger.Nop()), mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}
