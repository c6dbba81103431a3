package postgres

import (
	"testing"

	domainerrors "authcore/internal/domain/errors"
	"authcore/internal/infra/persistence/model"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestUniqueViolation(t *testing.T) {
	constraint, ok := uniqueViolation(&pgconn.PgError{Code: "23505", ConstraintName: model.IdxUsersEmail})
	assert.True(t, ok)
	assert.Equal(t, model.IdxUsersEmail, constraint)

	_, ok = uniqueViolation(errors.Wrap(&pgconn.PgError{Code: "23503"}, "insert"))
	assert.False(t, ok)

	constraint, ok = uniqueViolation(gorm.ErrDuplicatedKey)
	assert.True(t, ok)
	assert.Empty(t, constraint)

	_, ok = uniqueViolation(errors.New("connection reset"))
	assert.False(t, ok)
}

func TestTranslateUserError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "email taken",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: model.IdxUsersEmail},
			want: domainerrors.ErrEmailTaken,
		},
		{
			name: "username taken",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: model.IdxUsersUsername},
			want: domainerrors.ErrUsernameTaken,
		},
		{
			name: "external identity taken",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: model.IdxUsersExternalID},
			want: domainerrors.ErrExternalIdentityTaken,
		},
		{
			name: "unknown unique constraint",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: "users_pkey"},
			want: domainerrors.ErrConflict,
		},
		{
			name: "not null",
			err:  &pgconn.PgError{Code: "23502"},
			want: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateUserError(tt.err, "failed to create user")

			assert.True(t, errors.Is(got, tt.want), "got %v", got)
		})
	}
}

func TestTranslateUserError_OtherFailuresAreDatabaseErrors(t *testing.T) {
	got := translateUserError(errors.New("connection reset"), "failed to create user")

	var dbErr *domainerrors.DatabaseExecuteError
	assert.True(t, errors.As(got, &dbErr))
	assert.Equal(t, "failed to create user", dbErr.Details())
}
