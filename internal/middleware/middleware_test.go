package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/rollbook/internal/app/models/dto"
	"github.com/yigit/rollbook/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"not found", fmt.Errorf("%w: %w", apperrors.ErrResourceNotFound, apperrors.ErrCourseNotFound), http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"already exists", fmt.Errorf("%w: student 1", apperrors.ErrResourceAlreadyExists), http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"course full", apperrors.NewCustomError(apperrors.ErrCourseFull, "full"), http.StatusConflict, dto.ErrorCodeCourseFull},
		{"grade limit", apperrors.ErrCapacityExceeded, http.StatusConflict, dto.ErrorCodeGradeLimitReached},
		{"not enrolled", apperrors.ErrStudentNotEnrolled, http.StatusConflict, dto.ErrorCodeStudentNotEnrolled},
		{"drop not enrolled", apperrors.ErrNotEnrolled, http.StatusConflict, dto.ErrorCodeStudentNotEnrolled},
		{"validation", fmt.Errorf("%w: bad", apperrors.ErrValidationFailed), http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			var resp dto.APIResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestHandleAPIError_IncludesDetails(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	err := apperrors.NewCustomError(apperrors.ErrCourseFull, "course CIIC4010 is full").
		WithDetails(map[string]interface{}{"courseCode": "CIIC4010", "capacity": 50})
	HandleAPIError(c, err)

	var resp struct {
		Error struct {
			Severity string                 `json:"severity"`
			Details  map[string]interface{} `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "CIIC4010", resp.Error.Details["courseCode"])
	assert.Equal(t, string(dto.ErrorSeverityError), resp.Error.Severity)
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	router := gin.New()
	router.Use(RequestLogger(zerolog.New(&buf)))
	router.GET("/ping", func(c *gin.Context) {
		zerolog.Ctx(c.Request.Context()).Info().Msg("inside handler")
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "fixed-id")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "fixed-id", w.Header().Get(RequestIDHeader))
	assert.Contains(t, buf.String(), `"message":"inside handler"`)
	assert.Contains(t, buf.String(), `"request_id":"fixed-id"`)
	assert.Contains(t, buf.String(), `"status":204`)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Len(t, w.Header().Get(RequestIDHeader), 36)
}

func TestRecovery(t *testing.T) {
	router := gin.New()
	router.Use(RequestLogger(zerolog.Nop()), Recovery())
	router.GET("/panic", func(c *gin.Context) { panic("bad handler") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrorCodeInternalServer, resp.Error.Code)
}

func TestBindJSON(t *testing.T) {
	router := gin.New()
	router.POST("/students", func(c *gin.Context) {
		req, ok := BindJSON[dto.CreateStudentRequest](c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, req)
	})

	post := func(body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/students", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, post(`{"id":1,"firstName":"Ana","lastName":"Rivera"}`).Code)

	w := post(`{"id":1,"firstName":"   ","lastName":"Rivera"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "firstName", resp.Error.Field)

	assert.Equal(t, http.StatusBadRequest, post(`{"id":0,"firstName":"A","lastName":"B"}`).Code)
	assert.Equal(t, http.StatusBadRequest, post(`not json`).Code)
}
