package txmanager

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

var (
	errExecQuery = errors.New("repository: failed to execute query")
	errInternal  = errors.New("usecase: internal error")
)

func serializationFailure() *pq.Error {
	return &pq.Error{Code: pq.ErrorCode(pqSerializationFailure), Message: "could not serialize access due to read/write dependencies among transactions"}
}

func TestIsSerializationError(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "raw serialization failure",
			err:      serializationFailure(),
			expected: true,
		},
		{
			name:     "raw deadlock",
			err:      &pq.Error{Code: pq.ErrorCode(pqDeadlockDetected)},
			expected: true,
		},
		{
			name:     "commit-time wrap",
			err:      fmt.Errorf("txmanager: commit tx: %w", serializationFailure()),
			expected: true,
		},
		{
			// ошибка 40001 на этапе выполнения запроса проходит через
			// обертку репозитория и должна остаться распознаваемой
			name:     "repository wrap",
			err:      fmt.Errorf("%w: Create - execute insert: %w", errExecQuery, serializationFailure()),
			expected: true,
		},
		{
			name: "usecase wrap over repository wrap",
			err: fmt.Errorf("%w: failed to create booking: %w", errInternal,
				fmt.Errorf("%w: Create - execute insert: %w", errExecQuery, serializationFailure())),
			expected: true,
		},
		{
			name:     "unique violation is not retryable",
			err:      &pq.Error{Code: "23505"},
			expected: false,
		},
		{
			name:     "plain error is not retryable",
			err:      errors.New("connection refused"),
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsSerializationError(tc.err))
		})
	}
}

func TestIsSerializationErrorKeepsSentinels(t *testing.T) {
	// двойной %w сохраняет обе цепочки: и сентинел репозитория, и код драйвера
	wrapped := fmt.Errorf("%w: Create - execute insert: %w", errExecQuery, serializationFailure())

	assert.ErrorIs(t, wrapped, errExecQuery)
	assert.True(t, IsSerializationError(wrapped))
}
