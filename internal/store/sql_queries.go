// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/MKhiriev/messagely/models"
)

const (
	usersTable    = "users"
	messagesTable = "messages"
)

var userColumns = []string{
	"username",
	"password",
	"first_name",
	"last_name",
	"phone",
	"join_at",
	"last_login_at",
}

var userSummaryColumns = []string{
	"username",
	"first_name",
	"last_name",
	"phone",
}

// prefixed qualifies every column with a table alias.
func prefixed(alias string, columns []string) []string {
	out := make([]string, 0, len(columns))
	for _, c := range columns {
		out = append(out, alias+"."+c)
	}
	return out
}

func buildQuery(b squirrel.Sqlizer) (string, []any, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildCreateUserQuery(sb squirrel.StatementBuilderType, user models.User) (string, []any, error) {
	return buildQuery(sb.Insert(usersTable).
		Columns(userColumns...).
		Values(user.Username, user.PasswordHash, user.FirstName, user.LastName, user.Phone, user.JoinAt, user.LastLoginAt))
}

func buildFindUserByUsernameQuery(sb squirrel.StatementBuilderType, username string) (string, []any, error) {
	return buildQuery(sb.Select(userColumns...).
		From(usersTable).
		Where(squirrel.Eq{"username": username}))
}

func buildUpdateLastLoginQuery(sb squirrel.StatementBuilderType, username string, now time.Time) (string, []any, error) {
	return buildQuery(sb.Update(usersTable).
		Set("last_login_at", now).
		Where(squirrel.Eq{"username": username}))
}

func buildListUsersQuery(sb squirrel.StatementBuilderType) (string, []any, error) {
	return buildQuery(sb.Select(userSummaryColumns...).
		From(usersTable).
		OrderBy("join_at", "username"))
}

func buildCreateMessageQuery(sb squirrel.StatementBuilderType, message models.NewMessage, now time.Time) (string, []any, error) {
	return buildQuery(sb.Insert(messagesTable).
		Columns("from_username", "to_username", "body", "sent_at").
		Values(message.FromUsername, message.ToUsername, message.Body, now).
		Suffix("RETURNING id"))
}

func buildGetMessageQuery(sb squirrel.StatementBuilderType, id int64) (string, []any, error) {
	columns := append([]string{"m.id", "m.body", "m.sent_at", "m.read_at"}, prefixed("f", userSummaryColumns)...)
	columns = append(columns, prefixed("t", userSummaryColumns)...)

	return buildQuery(sb.Select(columns...).
		From(messagesTable + " AS m").
		Join(usersTable + " AS f ON f.username = m.from_username").
		Join(usersTable + " AS t ON t.username = m.to_username").
		Where(squirrel.Eq{"m.id": id}))
}

func buildMarkMessageReadQuery(sb squirrel.StatementBuilderType, id int64, now time.Time) (string, []any, error) {
	return buildQuery(sb.Update(messagesTable).
		Set("read_at", now).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id"))
}

// buildListMessagesQuery selects the messages where ownColumn equals
// username, joined with the profile of the other participant.
func buildListMessagesQuery(sb squirrel.StatementBuilderType, ownColumn, otherColumn, username string) (string, []any, error) {
	columns := append([]string{"m.id", "m.body", "m.sent_at", "m.read_at"}, prefixed("u", userSummaryColumns)...)

	return buildQuery(sb.Select(columns...).
		From(messagesTable + " AS m").
		Join(usersTable + " AS u ON u.username = m." + otherColumn).
		Where(squirrel.Eq{"m." + ownColumn: username}).
		OrderBy("m.id"))
}
