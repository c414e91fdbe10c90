package serrors_test

import (
	"errors"
	"fmt"
	"testing"

	"jobtracker/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestWith_MatchesKind(t *testing.T) {
	err := serrors.With(serrors.ErrNotFound, "application %d not found", 42)

	require.ErrorIs(t, err, serrors.ErrNotFound)
	require.NotErrorIs(t, err, serrors.ErrBadRequest)
	require.Equal(t, "application 42 not found", err.Error())
}

func TestWrap_MatchesKindAndCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := serrors.Wrap(serrors.ErrUnavailable, cause, "mailbox fetch failed")

	require.ErrorIs(t, err, serrors.ErrUnavailable)
	require.ErrorIs(t, err, cause)
	require.Equal(t, "mailbox fetch failed: connection refused", err.Error())
}

func TestWrap_SurvivesFurtherWrapping(t *testing.T) {
	err := serrors.With(serrors.ErrRateLimited, "slow down")
	wrapped := fmt.Errorf("enqueue: %w", err)

	require.ErrorIs(t, wrapped, serrors.ErrRateLimited)
}

func TestKindOnly(t *testing.T) {
	err := serrors.KindOnly(serrors.ErrConflict)

	require.ErrorIs(t, err, serrors.ErrConflict)
	require.Equal(t, "CONFLICT", err.Error())
}

func TestAs_ExtractsSemanticError(t *testing.T) {
	err := fmt.Errorf("outer: %w", serrors.With(serrors.ErrBadRequest, "invalid cursor"))

	var sem *serrors.Error
	require.ErrorAs(t, err, &sem)
	require.Equal(t, serrors.ErrBadRequest, sem.Kind())
	require.Equal(t, "invalid cursor", sem.Message())
}
