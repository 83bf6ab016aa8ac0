package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/messagely/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	aliceSummary = models.UserSummary{Username: "alice", FirstName: "Alice", LastName: "Liddell", Phone: "+15550001"}
	bobSummary   = models.UserSummary{Username: "bob", FirstName: "Bob", LastName: "Builder", Phone: "+15550002"}
)

func TestCreateMessage_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewMessageRepository(db)

	mock.ExpectQuery("INSERT INTO messages \\(from_username,to_username,body,sent_at\\) VALUES \\(\\$1,\\$2,\\$3,\\$4\\) RETURNING id").
		WithArgs("alice", "bob", "hi", fixedNow).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	msg, err := repo.CreateMessage(context.Background(), models.NewMessage{FromUsername: "alice", ToUsername: "bob", Body: "hi"})

	require.NoError(t, err)
	assert.Equal(t, models.Message{
		ID:           7,
		FromUsername: "alice",
		ToUsername:   "bob",
		Body:         "hi",
		SentAt:       fixedNow,
	}, msg)
	assert.Nil(t, msg.ReadAt)
}

func TestCreateMessage_Errors(t *testing.T) {
	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{"unknown recipient", pgError(pgerrcode.ForeignKeyViolation), ErrReferencedUserNotFound},
		{"empty body", pgError(pgerrcode.CheckViolation), ErrConstraintViolation},
		{"other", errors.New("timeout"), ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := NewMessageRepository(db)

			mock.ExpectQuery("INSERT INTO messages").WillReturnError(tt.dbErr)

			_, err := repo.CreateMessage(context.Background(), models.NewMessage{FromUsername: "alice", ToUsername: "nobody", Body: "x"})

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func messageDetailsRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "body", "sent_at", "read_at",
		"username", "first_name", "last_name", "phone",
		"username", "first_name", "last_name", "phone",
	})
}

func TestGetMessage_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewMessageRepository(db)

	readAt := fixedNow.Add(time.Minute)
	rows := messageDetailsRows().AddRow(3, "hello", fixedNow, readAt,
		"alice", "Alice", "Liddell", "+15550001",
		"bob", "Bob", "Builder", "+15550002")
	mock.ExpectQuery("SELECT m.id, m.body, m.sent_at, m.read_at, f.username, .* FROM messages AS m " +
		"JOIN users AS f ON f.username = m.from_username JOIN users AS t ON t.username = m.to_username WHERE m.id = \\$1").
		WithArgs(int64(3)).
		WillReturnRows(rows)

	msg, err := repo.GetMessage(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, int64(3), msg.ID)
	assert.Equal(t, aliceSummary, msg.FromUser)
	assert.Equal(t, bobSummary, msg.ToUser)
	require.NotNil(t, msg.ReadAt)
	assert.Equal(t, readAt, *msg.ReadAt)
}

func TestGetMessage_Unread(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewMessageRepository(db)

	rows := messageDetailsRows().AddRow(3, "hello", fixedNow, nil,
		"alice", "Alice", "Liddell", "+15550001",
		"bob", "Bob", "Builder", "+15550002")
	mock.ExpectQuery("SELECT m.id").WithArgs(int64(3)).WillReturnRows(rows)

	msg, err := repo.GetMessage(context.Background(), 3)

	require.NoError(t, err)
	assert.Nil(t, msg.ReadAt)
}

func TestGetMessage_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewMessageRepository(db)

	mock.ExpectQuery("SELECT m.id").WithArgs(int64(404)).WillReturnError(sql.ErrNoRows)

	_, err := repo.GetMessage(context.Background(), 404)

	assert.ErrorIs(t, err, ErrMessageNotFound)
}

func TestMarkMessageRead_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewMessageRepository(db)

	mock.ExpectQuery("UPDATE messages SET read_at = \\$1 WHERE id = \\$2 RETURNING id").
		WithArgs(fixedNow, int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

	receipt, err := repo.MarkMessageRead(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, models.ReadReceipt{ID: 3, ReadAt: fixedNow}, receipt)
}

func TestMarkMessageRead_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewMessageRepository(db)

	mock.ExpectQuery("UPDATE messages").
		WithArgs(fixedNow, int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.MarkMessageRead(context.Background(), 9)

	assert.ErrorIs(t, err, ErrMessageNotFound)
}

func listRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "body", "sent_at", "read_at", "username", "first_name", "last_name", "phone"})
}

func TestListMessagesFrom(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewMessageRepository(db)

	rows := listRows().
		AddRow(1, "first", fixedNow, nil, "bob", "Bob", "Builder", "+15550002").
		AddRow(2, "second", fixedNow, fixedNow, "bob", "Bob", "Builder", "+15550002")
	mock.ExpectQuery("FROM messages AS m JOIN users AS u ON u.username = m.to_username WHERE m.from_username = \\$1 ORDER BY m.id").
		WithArgs("alice").
		WillReturnRows(rows)

	msgs, err := repo.ListMessagesFrom(context.Background(), "alice")

	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, int64(1), msgs[0].ID)
	assert.Equal(t, bobSummary, msgs[0].ToUser)
	assert.Nil(t, msgs[0].ReadAt)
	require.NotNil(t, msgs[1].ReadAt)
}

func TestListMessagesTo(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewMessageRepository(db)

	rows := listRows().AddRow(1, "first", fixedNow, nil, "alice", "Alice", "Liddell", "+15550001")
	mock.ExpectQuery("JOIN users AS u ON u.username = m.from_username WHERE m.to_username = \\$1").
		WithArgs("bob").
		WillReturnRows(rows)

	msgs, err := repo.ListMessagesTo(context.Background(), "bob")

	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, aliceSummary, msgs[0].FromUser)
}

func TestListMessages_EmptyAndErrors(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewMessageRepository(db)
		mock.ExpectQuery("SELECT m.id").WillReturnRows(listRows())

		msgs, err := repo.ListMessagesTo(context.Background(), "bob")

		require.NoError(t, err)
		assert.NotNil(t, msgs)
		assert.Empty(t, msgs)
	})

	t.Run("query error", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewMessageRepository(db)
		mock.ExpectQuery("SELECT m.id").WillReturnError(errors.New("boom"))

		_, err := repo.ListMessagesFrom(context.Background(), "bob")

		assert.ErrorIs(t, err, ErrExecutingQuery)
	})

	t.Run("row error", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewMessageRepository(db)
		rows := listRows().
			AddRow(1, "first", fixedNow, nil, "alice", "Alice", "Liddell", "+15550001").
			RowError(0, errors.New("broken row"))
		mock.ExpectQuery("SELECT m.id").WillReturnRows(rows)

		_, err := repo.ListMessagesTo(context.Background(), "bob")

		assert.ErrorIs(t, err, ErrScanningRows)
	})
}
