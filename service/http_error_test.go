package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewErrorCodeToStatusCodeMaps(t *testing.T) {
	m := NewErrorCodeToStatusCodeMaps()
	require.NotNil(t, m)
	assert.Equal(t, http.StatusBadRequest, m[ErrBadParameter])
	assert.Equal(t, http.StatusBadRequest, m[ErrUnknownMethod])
	assert.Equal(t, http.StatusNotFound, m[ErrEntityNotFound])
	assert.Equal(t, http.StatusInternalServerError, m[ErrInvocation])
	assert.Equal(t, http.StatusBadGateway, m[ErrUpstreamUnavailable])
	assert.Equal(t, http.StatusServiceUnavailable, m[ErrNamingUnavailable])
	assert.Equal(t, http.StatusInternalServerError, m[ErrInternalServerError])
}

func decodeErrResponse(t *testing.T, rec *httptest.ResponseRecorder) *MyError {
	t.Helper()
	var body ErrResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.NotNil(t, body.Error)
	return body.Error
}

func TestHTTPErrorHandler_Handler_MyError_ReturnsMappedStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "bad parameter", err: NewBadParameterError("name is required", nil), wantStatus: http.StatusBadRequest, wantCode: ErrBadParameter},
		{name: "unknown method", err: NewUnknownMethodError("method div does not exist", nil), wantStatus: http.StatusBadRequest, wantCode: ErrUnknownMethod},
		{name: "invocation", err: NewInvocationError("division by zero", nil), wantStatus: http.StatusInternalServerError, wantCode: ErrInvocation},
		{name: "not found", err: NewEntityNotFoundError("name not bound", nil), wantStatus: http.StatusNotFound, wantCode: ErrEntityNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler := NewHTTPErrorHandler(NewErrorCodeToStatusCodeMaps(), log.NewNopLogger())
			handler.Handler(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeErrResponse(t, rec)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, ToMyError(tt.err).Message, body.Message)
		})
	}
}

func TestHTTPErrorHandler_Handler_NonMyError_Returns500(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewHTTPErrorHandler(NewErrorCodeToStatusCodeMaps(), log.NewNopLogger())
	handler.Handler(assert.AnError, c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeErrResponse(t, rec)
	assert.Equal(t, ErrInternalServerError, body.Code)
}

func TestHTTPErrorHandler_Handler_EchoHTTPError_WithRequestError_ReturnsBadParameter(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/register", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewHTTPErrorHandler(NewErrorCodeToStatusCodeMaps(), log.NewNopLogger())
	reqErr := &openapi3filter.RequestError{Err: assert.AnError}
	he := echo.NewHTTPError(http.StatusBadRequest, "request body has an error")
	he.Internal = reqErr
	handler.Handler(he, c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeErrResponse(t, rec)
	assert.Equal(t, ErrBadParameter, body.Code)
	assert.Equal(t, "request body has an error", body.Message)
}

func TestHTTPErrorHandler_Handler_EchoNotFound_ReturnsEntityNotFound(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/nowhere", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewHTTPErrorHandler(NewErrorCodeToStatusCodeMaps(), log.NewNopLogger())
	handler.Handler(echo.ErrNotFound, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeErrResponse(t, rec)
	assert.Equal(t, ErrEntityNotFound, body.Code)
}

func TestRegisterErrorHandler(t *testing.T) {
	e := echo.New()
	RegisterErrorHandler(e, log.NewNopLogger())
	require.NotNil(t, e.HTTPErrorHandler)
}
