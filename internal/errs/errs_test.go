package errs

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHTTPErrorWireShape pins the response contract: error bodies are a
// JSON object with a single "error" field, nothing else.
func TestHTTPErrorWireShape(t *testing.T) {
	b, err := json.Marshal(NewBadRequestError("Cannot divide by zero!", nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"error": "Cannot divide by zero!"}`, string(b))

	b, err = json.Marshal(NewInternalServerError())
	require.NoError(t, err)
	assert.JSONEq(t, `{"error": "Internal Server Error"}`, string(b))
}

func TestConstructors(t *testing.T) {
	badReq := NewBadRequestError("nope", []FieldError{{Field: "a", Error: "is required"}})
	assert.Equal(t, http.StatusBadRequest, badReq.Status)
	assert.Equal(t, "BAD_REQUEST", badReq.Code)
	assert.Len(t, badReq.Errors, 1)

	notFound := NewNotFoundError("Route not found")
	assert.Equal(t, http.StatusNotFound, notFound.Status)
	assert.Equal(t, "NOT_FOUND", notFound.Code)

	internal := NewInternalServerError()
	assert.Equal(t, http.StatusInternalServerError, internal.Status)
	assert.Equal(t, "Internal Server Error", internal.Message)
}

func TestErrorsAsMatchesHTTPError(t *testing.T) {
	var target *HTTPError
	err := error(NewBadRequestError("bad", nil))

	require.True(t, errors.As(err, &target))
	assert.Equal(t, "bad", target.Message)
}

func TestWithMessageCopies(t *testing.T) {
	base := NewBadRequestError("original", nil)
	derived := base.WithMessage("replaced")

	assert.Equal(t, "original", base.Message)
	assert.Equal(t, "replaced", derived.Message)
	assert.Equal(t, base.Status, derived.Status)
}

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "INTERNAL_SERVER_ERROR", MakeUpperCaseWithUnderscores("Internal Server Error"))
}
