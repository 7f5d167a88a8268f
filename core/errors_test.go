package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodes(t *testing.T) {
	err := Error(ECONNECTION, "actor %d gone", 7)
	assert.Equal(t, ECONNECTION, Code(err))
	assert.Equal(t, "actor 7 gone", UserMessage(err))
	assert.Equal(t, NOERROR, Code(nil))
	assert.Equal(t, "", UserMessage(nil))
	assert.Equal(t, EINTERNAL, Code(errors.New("plain")))
	assert.Equal(t, "internal error", UserMessage(errors.New("plain")))
}

func TestWrapError(t *testing.T) {
	base := errors.New("file missing")
	err := WrapError(base, EMISSING, "loading %s", "x.html")
	assert.True(t, errors.Is(err, base))
	assert.Equal(t, EMISSING, Code(err))
	wrapped := fmt.Errorf("outer: %w", err)
	assert.Equal(t, EMISSING, Code(wrapped))
	assert.Equal(t, "loading x.html", UserMessage(wrapped))
	//
	err = WrapError(nil, ETERMINATED, "")
	assert.Equal(t, ETERMINATED, Code(err))
	assert.Contains(t, err.Error(), "terminated")
}

func TestIsCode(t *testing.T) {
	err := fmt.Errorf("context: %w", Error(EMISSING, "no such file"))
	assert.True(t, IsCode(err, EMISSING))
	assert.False(t, IsCode(err, EINVALID))
	assert.True(t, IsCode(nil, NOERROR))
	assert.Equal(t, "not found", UserMessage(WrapError(errors.New("x"), EMISSING, "")))
}
