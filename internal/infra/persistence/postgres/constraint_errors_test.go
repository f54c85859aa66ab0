package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolationDetection(t *testing.T) {
	unique := errors.Wrap(&pgconn.PgError{Code: "23505", ConstraintName: "accounts_email_key"}, "insert")
	foreignKey := &pgconn.PgError{Code: "23503", ConstraintName: "words_dictionary_id_fkey"}
	check := &pgconn.PgError{Code: "23514"}
	other := errors.New("connection refused")

	assert.True(t, isUniqueConstraintViolation(unique))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.False(t, isUniqueConstraintViolation(foreignKey))
	assert.False(t, isUniqueConstraintViolation(other))

	assert.True(t, isForeignKeyConstraintViolation(foreignKey))
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.False(t, isForeignKeyConstraintViolation(unique))

	assert.True(t, isCheckConstraintViolation(check))
	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))
	assert.False(t, isCheckConstraintViolation(unique))

	assert.Equal(t, "accounts_email_key", violatedConstraint(unique))
	assert.Equal(t, wordsDictionaryFKey, violatedConstraint(foreignKey))
	assert.Equal(t, "", violatedConstraint(gorm.ErrForeignKeyViolated))
	assert.Equal(t, "", violatedConstraint(other))
}
