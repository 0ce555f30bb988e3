package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		err  *Error
		want int
	}{
		{Invalid("bad id"), http.StatusBadRequest},
		{Forbidden("must follow the author"), http.StatusForbidden},
		{NotFound("blog not found"), http.StatusNotFound},
		{Conflict("already liked"), http.StatusConflict},
		{Upstream("follower service unavailable", errors.New("dial tcp")), http.StatusInternalServerError},
		{Internal(errors.New("boom")), http.StatusInternalServerError},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.err.Status(), c.err.Message)
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Upstream("follower service unavailable", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestAsThroughWrapping(t *testing.T) {
	err := fmt.Errorf("toggle like: %w", NotFound("blog not found"))

	e := As(err)
	if assert.NotNil(t, e) {
		assert.Equal(t, KindNotFound, e.Kind)
	}
	assert.True(t, IsKind(err, KindNotFound))
	assert.False(t, IsKind(err, KindConflict))
	assert.Nil(t, As(errors.New("plain")))
}

func TestInternalHidesCause(t *testing.T) {
	err := Internal(errors.New("mongo: topology closed"))
	assert.Equal(t, "an error occurred on the server", err.Message)
}
