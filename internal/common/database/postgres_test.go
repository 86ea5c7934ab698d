package database

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobtracker/internal/common/config"
)

func TestNewPostgres_DoesNotDial(t *testing.T) {
	client, err := NewPostgres(config.PostgresConfig{
		Host:           "127.0.0.1",
		Port:           1,
		Database:       "jobtracker",
		User:           "reports",
		SSLMode:        "disable",
		MaxConnections: 4,
		MaxIdle:        2,
	})
	require.NoError(t, err)
	defer client.Close()

	assert.Equal(t, 4, client.GetDB().Stats().MaxOpenConnections)
}

func TestPostgresClient_Ping(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	mock.ExpectPing()
	mock.ExpectClose()

	client := &PostgresClient{DB: db}
	assert.NoError(t, client.Ping(context.Background()))
	assert.NoError(t, client.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresClient_CloseNil(t *testing.T) {
	assert.NoError(t, (&PostgresClient{}).Close())
}
