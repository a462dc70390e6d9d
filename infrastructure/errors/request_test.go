package errors_test

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	infraerrors "github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/infrastructure/errors"
)

func response(status int, body string) *http.Response {
	return &http.Response{StatusCode: status, Body: io.NopCloser(strings.NewReader(body))}
}

func TestParseRequestError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"error field", http.StatusNotFound, `{"error":"Property not found"}`, "Property not found"},
		{"message field", http.StatusBadRequest, `{"message":"title is required"}`, "title is required"},
		{"error wins over message", http.StatusConflict, `{"error":"a","message":"b"}`, "a"},
		{"empty error falls through", http.StatusBadRequest, `{"error":"","message":"b"}`, "b"},
		{"nested error object", http.StatusUnprocessableEntity, `{"error":{"message":"bad price"}}`, "bad price"},
		{"non json body", http.StatusBadGateway, `<html>oops</html>`, "Bad Gateway"},
		{"empty body", http.StatusInternalServerError, ``, "Internal Server Error"},
		{"unknown status", 599, ``, infraerrors.DefaultMessage},
		{"not modified", http.StatusNotModified, ``, "Not Modified"},
		{"redirect without location", http.StatusMultipleChoices, ``, "Multiple Choices"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := infraerrors.ParseRequestError(response(tt.status, tt.body))
			require.Error(t, err)

			reqErr, ok := infraerrors.AsRequestError(err)
			require.True(t, ok)
			assert.Equal(t, tt.message, reqErr.Error())
			assert.Equal(t, tt.status, reqErr.StatusCode)
		})
	}
}

func TestParseRequestError_SuccessIsNil(t *testing.T) {
	t.Parallel()

	assert.NoError(t, infraerrors.ParseRequestError(response(http.StatusOK, `{}`)))
	assert.NoError(t, infraerrors.ParseRequestError(response(http.StatusNoContent, ``)))
}

func TestStatusCode_Wrapped(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("get property: %w", &infraerrors.RequestError{StatusCode: 404, Message: "x"})
	assert.Equal(t, 404, infraerrors.StatusCode(err))
	assert.Equal(t, 0, infraerrors.StatusCode(fmt.Errorf("dial tcp: refused")))
}
