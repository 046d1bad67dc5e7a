// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-movie-browser/models"
)

const (
	usersTable = "users"

	columnID        = "id"
	columnUsername  = "username"
	columnPassword  = "password"
	columnCreatedAt = "created_at"
)

// buildCreateUserQuery builds the INSERT for a new account. The generated id
// comes back through RETURNING, which both SQLite and PostgreSQL support.
func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := b.
		Insert(usersTable).
		Columns(columnUsername, columnPassword).
		Values(user.Username, user.PasswordHash).
		Suffix("RETURNING " + columnID).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildFindUserByUsernameQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	query, args, err := b.
		Select(columnID, columnUsername, columnPassword, columnCreatedAt).
		From(usersTable).
		Where(sq.Eq{columnUsername: username}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
