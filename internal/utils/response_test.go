package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(method, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(method, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) ResponseData {
	t.Helper()
	var resp ResponseData
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestResponseEnvelope(t *testing.T) {
	c, rec := newContext(http.MethodGet, "")
	Created(c, "stored", gin.H{"id": "rec-1"})
	assert.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeBody(t, rec)
	assert.Equal(t, http.StatusCreated, resp.Status)
	assert.Equal(t, "stored", resp.Message)
	assert.Empty(t, resp.Error)

	c, rec = newContext(http.MethodGet, "")
	NotFound(c, "Medical record not found")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp = decodeBody(t, rec)
	assert.Equal(t, http.StatusNotFound, resp.Status)
	assert.Equal(t, "An error occurred", resp.Message)
	assert.Equal(t, "Medical record not found", resp.Error)
	assert.Nil(t, resp.Data)
}

type namedFile struct {
	FileName string `json:"fileName" binding:"required"`
}

func TestBindAndValidate(t *testing.T) {
	c, _ := newContext(http.MethodPost, `{"fileName":"a.pdf"}`)
	var ok namedFile
	assert.True(t, BindAndValidate(c, &ok))
	assert.Equal(t, "a.pdf", ok.FileName)

	c, rec := newContext(http.MethodPost, `{}`)
	assert.False(t, BindAndValidate(c, &namedFile{}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody(t, rec).Error, "FileName is required")
}

func TestBindAndValidateBodyTooLarge(t *testing.T) {
	c, rec := newContext(http.MethodPost, `{"fileName":"`+strings.Repeat("x", 64)+`.pdf"}`)
	c.Request.Body = http.MaxBytesReader(rec, c.Request.Body, 16)

	assert.False(t, BindAndValidate(c, &namedFile{}))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "Request body exceeds the upload limit", decodeBody(t, rec).Error)
}
