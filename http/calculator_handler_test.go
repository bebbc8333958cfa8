package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthcare-optimizer/apperrors"
	"healthcare-optimizer/domain"
)

func TestOperationsHandler_OK(t *testing.T) {
	router := newTestRouter(t, nil)

	body := []byte(`{
		"numDoctors": 5,
		"patientsPerHour": 30,
		"consultMinutes": 10,
		"numBeds": 20,
		"shifts": 3
	}`)
	req := httptest.NewRequest(http.MethodPost, "/api/operations", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var out domain.OperationsOutput
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, 6.0, out.PatientsPerDoctor)
	assert.Equal(t, 100.0, out.DoctorUtilizationPct)
	assert.Equal(t, 0.0, out.WaitingTimeMin)
	assert.Equal(t, 90.0, out.Throughput)
}

func TestOperationsHandler_DivisionByZero(t *testing.T) {
	router := newTestRouter(t, nil)

	body := []byte(`{"numDoctors": 0, "patientsPerHour": 30, "consultMinutes": 10, "numBeds": 20, "shifts": 3}`)
	req := httptest.NewRequest(http.MethodPost, "/api/operations", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var se apperrors.StandardError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &se))
	assert.Equal(t, apperrors.ErrCodeDivisionByZeroGuard, se.Code)
	require.Len(t, se.Fields, 1)
	assert.Equal(t, "numDoctors", se.Fields[0].Field)
}

func TestROIHandler_Negative(t *testing.T) {
	router := newTestRouter(t, nil)

	body := []byte(`{"investment": 500000, "annualSavings": 100000, "years": 3}`)
	req := httptest.NewRequest(http.MethodPost, "/api/roi", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var out domain.ROIResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.InDelta(t, -40.0, out.ROIPct, 1e-9)
	assert.Equal(t, domain.ROINegative, out.Classification)
}

func TestSixSigmaHandler_OutOfRange(t *testing.T) {
	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/six-sigma", bytes.NewBufferString(`{"defectsPer1000": 1001}`))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var se apperrors.StandardError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &se))
	assert.Equal(t, apperrors.ErrCodeInvalidInputRange, se.Code)
}

func TestCalculatorHandler_MethodNotAllowed(t *testing.T) {
	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/roi", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestCalculatorHandler_BadRequest(t *testing.T) {
	router := newTestRouter(t, nil)

	for _, body := range []string{`{invalid-json}`, `{"defectsPer1000": 1, "extra": true}`} {
		req := httptest.NewRequest(http.MethodPost, "/api/six-sigma", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code, body)
		var se apperrors.StandardError
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &se))
		assert.Equal(t, apperrors.ErrCodeInvalidRequest, se.Code)
	}
}
