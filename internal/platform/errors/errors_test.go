package errors

import (
	"encoding/json"
	stderrs "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatusCode(t *testing.T) {
	cases := map[ErrorCode]int{
		ErrorCodeNotFound:        http.StatusNotFound,
		ErrorCodeInvalidArgument: http.StatusUnprocessableEntity,
		ErrorCodeValidation:      http.StatusBadRequest,
		ErrorCodeJSON:            http.StatusBadRequest,
		ErrorCodeDuplicateKey:    http.StatusConflict,
		ErrorCodeTooManyRequests: http.StatusTooManyRequests,
		ErrorCodeUnavailable:     http.StatusServiceUnavailable,
		ErrorCodeDB:              http.StatusInternalServerError,
		ErrorCodePanic:           http.StatusInternalServerError,
		ErrorCode(200):           http.StatusInternalServerError,
	}
	for code, want := range cases {
		assert.Equal(t, want, HTTPStatusCode(code), code.String())
	}
}

func TestErrorCode_Text(t *testing.T) {
	b, err := json.Marshal(Wire{Code: ErrorCodeNotFound, Message: "gone"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":"not_found","message":"gone"}`, string(b))

	var w Wire
	require.NoError(t, json.Unmarshal([]byte(`{"code":"invalid_argument"}`), &w))
	assert.Equal(t, ErrorCodeInvalidArgument, w.Code)

	require.NoError(t, json.Unmarshal([]byte(`{"code":"martian"}`), &w))
	assert.Equal(t, ErrorCodeUnknown, w.Code)
	assert.Equal(t, "unknown", ErrorCode(99).String())
}

func TestError_WrapAndInspect(t *testing.T) {
	cause := stderrs.New("connection reset")
	err := Wrapf(cause, ErrorCodeDB, "load prediction %d", 7)

	assert.Equal(t, "load prediction 7: connection reset", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Same(t, cause, Root(err))
	assert.True(t, IsCode(err, ErrorCodeDB))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(err))

	assert.Equal(t, ErrorCodeUnknown, CodeOf(cause))
	assert.Nil(t, Root(nil))
	var nilErr *Error
	assert.Equal(t, "<nil>", nilErr.Error())
}

func TestWithFieldAndDetails_CopyOnWrite(t *testing.T) {
	base := InvalidArgf("limit must be an integer")
	withField := WithField(base, "limit")
	withDetails := WithDetails(withField, []string{"x"})

	b, _ := As(base)
	f, _ := As(withField)
	d, _ := As(withDetails)
	assert.Empty(t, b.Field())
	assert.Equal(t, "limit", f.Field())
	assert.Nil(t, f.Details())
	assert.Equal(t, "limit", d.Field())
	assert.Equal(t, []string{"x"}, d.Details())

	foreign := stderrs.New("plain")
	assert.Same(t, foreign, WithField(foreign, "x"))
	assert.Same(t, foreign, WithDetails(foreign, 1))
}

func TestWireFrom(t *testing.T) {
	assert.Equal(t, Wire{}, WireFrom(nil))
	assert.Equal(t, Wire{Code: ErrorCodeUnknown, Message: "boom"}, WireFrom(stderrs.New("boom")))

	err := WithDetails(WithField(New(ErrorCodeValidation, "invalid record"), "age"), 3)
	assert.Equal(t, Wire{Code: ErrorCodeValidation, Message: "invalid record", Field: "age", Details: 3}, WireFrom(err))

	// outer wrappers keep the inner code
	assert.Equal(t, ErrorCodeNotFound, WireFrom(Wrap(ErrNotFound, ErrorCodeNotFound, "prediction")).Code)
	assert.True(t, stderrs.Is(Wrap(ErrNotFound, ErrorCodeDB, "x"), ErrNotFound))
}
