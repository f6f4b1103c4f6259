package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"eventpulse/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestAttendeeRepository_Add(t *testing.T) {
	ctx := context.Background()
	when := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO event_attendees`).
					WithArgs("ev-1", "u-1", when).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "duplicate registration",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO event_attendees`).
					WithArgs("ev-1", "u-1", when).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: domain.ErrAlreadyRegistered,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO event_attendees`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewAttendeeRepository(db)
			err = repo.Add(ctx, "ev-1", "u-1", when)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAttendeeRepository_ListByEventID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT u.id, u.name`).
		WithArgs("ev-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow("u-1", "Alice").
			AddRow("u-2", "Bob"))

	repo := NewAttendeeRepository(db)
	attendees, err := repo.ListByEventID(context.Background(), "ev-1")
	require.NoError(t, err)
	require.Len(t, attendees, 2)
	require.Equal(t, "Alice", attendees[0].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendeeRepository_ListByEventID_empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT u.id, u.name`).
		WithArgs("ev-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	repo := NewAttendeeRepository(db)
	attendees, err := repo.ListByEventID(context.Background(), "ev-1")
	require.NoError(t, err)
	require.NotNil(t, attendees)
	require.Empty(t, attendees)
}
