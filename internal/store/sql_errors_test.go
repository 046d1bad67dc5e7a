// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, UniqueViolation, c.Classify(pgError(pgerrcode.UniqueViolation)))
	assert.Equal(t, UniqueViolation, c.Classify(fmt.Errorf("wrapped: %w", pgError(pgerrcode.UniqueViolation))))
	assert.Equal(t, NotNullViolation, c.Classify(pgError(pgerrcode.NotNullViolation)))
	assert.Equal(t, Unclassified, c.Classify(pgError(pgerrcode.SyntaxError)))
	assert.Equal(t, Unclassified, c.Classify(errors.New("plain")))
	assert.Equal(t, Unclassified, c.Classify(nil))
}

func TestSQLiteErrorClassifier_Classify(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	unique := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}
	notNull := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}
	busy := sqlite3.Error{Code: sqlite3.ErrBusy}

	assert.Equal(t, UniqueViolation, c.Classify(unique))
	assert.Equal(t, UniqueViolation, c.Classify(fmt.Errorf("wrapped: %w", unique)))
	assert.Equal(t, NotNullViolation, c.Classify(notNull))
	assert.Equal(t, Unclassified, c.Classify(busy))
	assert.Equal(t, Unclassified, c.Classify(pgError(pgerrcode.UniqueViolation)))
	assert.Equal(t, Unclassified, c.Classify(nil))
}

func TestIsPostgresDSN(t *testing.T) {
	assert.True(t, isPostgresDSN("postgres://u:p@localhost:5432/movies"))
	assert.True(t, isPostgresDSN("postgresql://localhost/movies"))
	assert.False(t, isPostgresDSN("database.db"))
	assert.False(t, isPostgresDSN("/var/lib/movies/postgres.db"))
}
