package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{NotFound("get_purchase", "purchase", "abc"), http.StatusNotFound},
		{Validation("create_purchase", "bad total"), http.StatusBadRequest},
		{Store("get_purchases", errors.New("conn refused")), http.StatusGatewayTimeout},
		{Auth("login", "invalid credentials"), http.StatusUnauthorized},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, StatusCode(tc.err))
	}
}

func TestStatusCode_WrappedError(t *testing.T) {
	err := fmt.Errorf("context: %w", NotFound("get_purchase", "purchase", "abc"))
	assert.Equal(t, http.StatusNotFound, StatusCode(err))
}

func TestEnvelope_HidesInternalCause(t *testing.T) {
	err := Store("get_purchases", errors.New("pq: connection reset by peer"))
	env := Envelope(err)
	assert.Equal(t, "DatabaseError", env.Error)
	assert.NotContains(t, env.Message, "connection reset")
}

func TestEnvelope_Names(t *testing.T) {
	assert.Equal(t, "ItemNotFoundError", Envelope(NotFound("op", "purchase", "x")).Error)
	assert.Equal(t, "ValidationError", Envelope(Validation("op", "nope")).Error)
	assert.Equal(t, "AuthError", Envelope(Auth("op", "nope")).Error)
	assert.Equal(t, "InternalError", Envelope(errors.New("anything")).Error)
}

func TestIsKind(t *testing.T) {
	err := Validation("op", "nope")
	assert.True(t, IsKind(err, KindValidation))
	assert.False(t, IsKind(err, KindNotFound))
	assert.False(t, IsKind(errors.New("plain"), KindValidation))
}

func TestErrorString_IncludesOp(t *testing.T) {
	err := NotFound("get_purchase", "purchase", "abc")
	assert.Contains(t, err.Error(), "get_purchase")
}
