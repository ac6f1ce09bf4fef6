package db

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConnectionRequiresDSN(t *testing.T) {
	conn, err := NewConnection(context.Background(), "")
	assert.Nil(t, conn)
	assert.ErrorIs(t, err, ErrNoDSN)
}

func TestConnectionClose(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectClose()

	conn := &Connection{DB: db}
	require.NoError(t, conn.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}
