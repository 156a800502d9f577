package apperrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/manoja-HA/nexus-banking-platform/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		kind   apperrors.Kind
		status int
	}{
		{apperrors.KindInvalidAmount, http.StatusBadRequest},
		{apperrors.KindSameAccount, http.StatusBadRequest},
		{apperrors.KindNegativeDeposit, http.StatusBadRequest},
		{apperrors.KindAccountNotActive, http.StatusBadRequest},
		{apperrors.KindInsufficientFunds, http.StatusBadRequest},
		{apperrors.KindDuplicateIdempotencyKey, http.StatusBadRequest},
		{apperrors.KindConstraintViolation, http.StatusBadRequest},
		{apperrors.KindCustomerNotFound, http.StatusNotFound},
		{apperrors.KindAccountNotFound, http.StatusNotFound},
		{apperrors.KindTransferNotFound, http.StatusNotFound},
		{apperrors.KindDatabase, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.status, tc.kind.HTTPStatus(), "kind %s", tc.kind)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := apperrors.Wrap(apperrors.KindDatabase, "failed to save account", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "failed to save account")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestKindOf(t *testing.T) {
	err := apperrors.New(apperrors.KindInsufficientFunds, "Insufficient funds: available 5, requested 10")

	kind, ok := apperrors.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, apperrors.KindInsufficientFunds, kind)

	wrapped := fmt.Errorf("transfer failed: %w", err)
	assert.True(t, apperrors.IsKind(wrapped, apperrors.KindInsufficientFunds))
	assert.False(t, apperrors.IsKind(wrapped, apperrors.KindDatabase))

	_, ok = apperrors.KindOf(errors.New("plain"))
	assert.False(t, ok)
}
