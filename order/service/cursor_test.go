package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	inErrors "github.com/arvellene/storefront/internal/errors"
)

func TestCursorRoundTrip(t *testing.T) {
	createdAt := time.Date(2025, 6, 3, 10, 15, 0, 123456789, time.UTC)
	id := uuid.New()

	cursor := encodeCursor(createdAt, id)
	gotCreatedAt, gotId, err := decodeCursor(cursor)

	assert.NoError(t, err)
	assert.True(t, createdAt.Equal(gotCreatedAt))
	assert.EqualValues(t, id, gotId)
}

func TestDecodeCursorInvalid(t *testing.T) {
	cursors := map[string]string{
		"not base64":       "%%%%",
		"no separator":     "aGVsbG8",
		"bad timestamp":    "bm90LWEtdGltZXwxMjM",
		"empty string":     "",
		"garbage contents": "Z2FyYmFnZXxnYXJiYWdl",
	}
	for name, cursor := range cursors {
		t.Run(name, func(t *testing.T) {
			_, _, err := decodeCursor(cursor)
			assert.ErrorIs(t, err, inErrors.ErrInvalidCursor)
		})
	}
}
