// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-movie-browser/internal/config"
	"github.com/MKhiriev/go-movie-browser/internal/logger"
	"github.com/MKhiriev/go-movie-browser/models"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func newTestUserRepo(t *testing.T, postgres bool) (*userRepository, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	l := logger.Nop()
	db := newSQLiteDB(conn, l)
	if postgres {
		db = newPostgresDB(conn, l)
	}

	return &userRepository{db: db, logger: l}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

// ── CreateUser ────────────────────────────────────────────────────────────────

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t, true)

	user := models.User{Username: "alice", PasswordHash: "hash"}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("alice", "hash").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	created, err := repo.CreateUser(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.UserID)
	assert.Equal(t, "alice", created.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	tests := []struct {
		name     string
		postgres bool
		err      error
	}{
		{name: "postgres", postgres: true, err: pgError(pgerrcode.UniqueViolation)},
		{
			name: "sqlite",
			err:  sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t, tt.postgres)

			mock.ExpectQuery("INSERT INTO users").
				WithArgs("alice", sqlmock.AnyArg()).
				WillReturnError(tt.err)

			_, err := repo.CreateUser(context.Background(), models.User{Username: "alice", PasswordHash: "x"})
			assert.ErrorIs(t, err, ErrUsernameAlreadyExists)
		})
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t, false)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "alice"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUsernameAlreadyExists)
	assert.Contains(t, err.Error(), "unexpected DB error")
}

// ── FindUserByUsername ────────────────────────────────────────────────────────

func TestFindUserByUsername_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t, true)

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"id", "username", "password", "created_at"}).
		AddRow(1, "alice", "hash", now)

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE username = \$1`).
		WithArgs("alice").
		WillReturnRows(rows)

	found, err := repo.FindUserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(1), found.UserID)
	assert.Equal(t, "alice", found.Username)
	assert.Equal(t, "hash", found.PasswordHash)
	assert.Equal(t, now, found.CreatedAt)
}

func TestFindUserByUsername_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t, false)

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE username = \?`).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password", "created_at"}))

	_, err := repo.FindUserByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestFindUserByUsername_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t, false)

	mock.ExpectQuery("SELECT").WillReturnError(sql.ErrConnDone)

	_, err := repo.FindUserByUsername(context.Background(), "alice")
	require.Error(t, err)
	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.NotErrorIs(t, err, ErrNoUserWasFound)
}

// ── SQLite end to end ─────────────────────────────────────────────────────────

func TestStorages_SQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	cfg := config.Storage{DB: config.DB{DSN: filepath.Join(t.TempDir(), "movies.db")}}

	storages, err := NewStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	created, err := storages.UserRepository.CreateUser(ctx, models.User{Username: "alice", PasswordHash: "hash"})
	require.NoError(t, err)
	assert.NotZero(t, created.UserID)

	_, err = storages.UserRepository.CreateUser(ctx, models.User{Username: "alice", PasswordHash: "other"})
	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)

	found, err := storages.UserRepository.FindUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, created.UserID, found.UserID)
	assert.Equal(t, "hash", found.PasswordHash)
	assert.False(t, found.CreatedAt.IsZero())

	_, err = storages.UserRepository.FindUserByUsername(ctx, "bob")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestStorages_CloseNil(t *testing.T) {
	var s *Storages
	assert.NoError(t, s.Close())
}
