package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want Kind
	}{
		{BadRequest("x"), KindBadRequest},
		{Unauthorized("x"), KindUnauthorized},
		{Forbidden("x"), KindForbidden},
		{NotFound("x"), KindNotFound},
		{Conflict("x"), KindConflict},
		{Internal(errors.New("boom")), KindInternal},
		{errors.New("plain"), KindInternal},
		{fmt.Errorf("wrapped: %w", NotFound("x")), KindNotFound},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, KindOf(tt.err), "error %v", tt.err)
	}
}

func TestUnwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")
	err := Wrap(KindInternal, "store failure", cause)
	require.ErrorIs(t, err, cause)
}

func TestInternalMessageIsGeneric(t *testing.T) {
	t.Parallel()

	err := Internal(errors.New("pq: duplicate key value"))
	require.Equal(t, "internal error", MessageOf(err))
	require.NotContains(t, err.Message, "pq:")
}
