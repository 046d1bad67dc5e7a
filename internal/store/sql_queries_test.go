// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-movie-browser/models"
)

func Test_buildCreateUserQuery(t *testing.T) {
	tests := []struct {
		name        string
		format      sq.PlaceholderFormat
		placeholder string
	}{
		{name: "sqlite", format: sq.Question, placeholder: "?"},
		{name: "postgres", format: sq.Dollar, placeholder: "$2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := sq.StatementBuilder.PlaceholderFormat(tt.format)

			query, args, err := buildCreateUserQuery(b, models.User{Username: "alice", PasswordHash: "hash"})
			require.NoError(t, err)

			q := strings.ToLower(query)
			assert.True(t, strings.HasPrefix(q, "insert into users"))
			assert.Contains(t, q, "username")
			assert.Contains(t, q, "password")
			assert.Contains(t, q, "returning id")
			assert.Contains(t, query, tt.placeholder)
			assert.Equal(t, []any{"alice", "hash"}, args)
		})
	}
}

func Test_buildFindUserByUsernameQuery(t *testing.T) {
	b := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query, args, err := buildFindUserByUsernameQuery(b, "alice")
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.True(t, strings.HasPrefix(q, "select id, username, password, created_at"))
	assert.Contains(t, q, "from users")
	assert.Contains(t, q, "where username = $1")
	assert.Contains(t, q, "limit 1")
	assert.Equal(t, []any{"alice"}, args)
}
