package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"shape mismatch", ShapeMismatch("edges must be length counts+1"), http.StatusBadRequest},
		{"no numeric data", NoNumericData(), http.StatusBadRequest},
		{"empty input", EmptyInput("expected non-empty array of numbers"), http.StatusBadRequest},
		{"decode error", DecodeError("could not decode body as utf-8"), http.StatusBadRequest},
		{"invalid input", InvalidInput("bad"), http.StatusBadRequest},
		{"internal", InternalError("boom"), http.StatusInternalServerError},
		{"plain error", stderrors.New("plain"), http.StatusInternalServerError},
		{"wrapped shape mismatch", fmt.Errorf("handler: %w", ShapeMismatch("x")), http.StatusBadRequest},
		{"config", ConfigInvalid("PORT"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}

func TestPublicMessageHidesInternalCauses(t *testing.T) {
	err := Wrap(stderrors.New("font cache corrupted at 0xdeadbeef"), "failed to render figure")

	assert.Equal(t, CodeInternalError, GetCode(err))
	assert.Equal(t, "internal server error", PublicMessage(err))
	assert.Contains(t, err.Error(), "0xdeadbeef")
}

func TestPublicMessageForClientErrors(t *testing.T) {
	assert.Equal(t, "no numeric data found", PublicMessage(NoNumericData()))
	assert.Equal(t, "matrix length must be size*size", PublicMessage(ShapeMismatch("matrix length must be size*size")))
}

func TestWrapKeepsCode(t *testing.T) {
	inner := DecodeError("not a workbook")
	wrapped := Wrap(inner, "failed to read workbook")

	assert.Equal(t, CodeDecodeError, GetCode(wrapped))
	assert.True(t, stderrors.Is(wrapped, inner))
	assert.Nil(t, Wrap(nil, "ignored"))
}

func TestGetCodeWithoutAppError(t *testing.T) {
	assert.Equal(t, "UNKNOWN", GetCode(stderrors.New("x")))
	assert.Equal(t, "UNKNOWN", GetCode(nil))
}
