package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Vilduis/SimulaCredit-sub000/internal/config"
	"github.com/Vilduis/SimulaCredit-sub000/internal/repository"
	"github.com/Vilduis/SimulaCredit-sub000/internal/simulation"
	"go.uber.org/zap"
)

func newTestHandler() http.Handler {
	cache := repository.NewSimulationCache(repository.NewMemoryCache())
	return NewHandler(zap.NewNop(), cache, 0, "test")
}

func testLoanJSON(t *testing.T) []byte {
	t.Helper()
	loan := config.LoanConfiguration{
		Name:               "api",
		PropertyPrice:      250000,
		DownPaymentPercent: 20,
		TermYears:          20,
		Currency:           "PEN",
		RateType:           config.RateTypeEffective,
		InterestRateAnnual: 8.75,
		ExtraMonthlyCosts:  85.50,
		DiscountRateAnnual: 7.0,
		StartDate:          "2026-01-01",
	}
	body, err := json.Marshal(loan)
	if err != nil {
		t.Fatalf("failed to marshal loan: %v", err)
	}
	return body
}

func TestHandleSimulate(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/simulate", bytes.NewReader(testLoanJSON(t)))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200; body: %s", rec.Code, rec.Body.String())
	}

	var result simulation.Result
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.Name != "api" {
		t.Errorf("result name = %q, expected %q", result.Name, "api")
	}
	if result.EffectivePrincipal != 200000 {
		t.Errorf("effective principal = %v, expected 200000", result.EffectivePrincipal)
	}
	if len(result.Indicators.AmortizationTable) != 240 {
		t.Errorf("table has %d rows, expected 240", len(result.Indicators.AmortizationTable))
	}
}

func TestHandleSimulateServesCachedResult(t *testing.T) {
	handler := newTestHandler()
	body := testLoanJSON(t)

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/api/simulate", bytes.NewReader(body)))
	if first.Code != http.StatusOK {
		t.Fatalf("first request status = %d, expected 200", first.Code)
	}

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/api/simulate", bytes.NewReader(body)))
	if second.Code != http.StatusOK {
		t.Fatalf("second request status = %d, expected 200", second.Code)
	}

	if first.Body.String() != second.Body.String() {
		t.Error("cached response differs from the computed response")
	}
}

func TestHandleSimulateRejectsMalformedJSON(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/simulate", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, expected 400", rec.Code)
	}
}

func TestHandleSimulateRejectsInvalidLoan(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/simulate", strings.NewReader(`{"name":"bad","propertyPrice":-1}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, expected 422; body: %s", rec.Code, rec.Body.String())
	}

	var response struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if !strings.Contains(response.Error, "property price") {
		t.Errorf("error = %q, expected a property price validation message", response.Error)
	}
}

func TestHandleConfigSimulate(t *testing.T) {
	handler := newTestHandler()

	configYAML := `simulations:
  - name: yaml-upload
    propertyPrice: 150000
    downPaymentPercent: 10
    termYears: 15
    currency: PEN
    rateType: effective
    interestRateAnnual: 9.0
    discountRateAnnual: 7.0
    startDate: "2026-01-01"
`
	req := httptest.NewRequest(http.MethodPost, "/api/config/simulate", strings.NewReader(configYAML))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200; body: %s", rec.Code, rec.Body.String())
	}

	var response struct {
		Results []simulation.Result `json:"results"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(response.Results) != 1 {
		t.Fatalf("got %d results, expected 1", len(response.Results))
	}
	if response.Results[0].Name != "yaml-upload" {
		t.Errorf("result name = %q, expected %q", response.Results[0].Name, "yaml-upload")
	}
}

func TestHandleConfigSimulateRejectsEmptyConfig(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/config/simulate", strings.NewReader("{}"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, expected 422", rec.Code)
	}
}

func TestHandleBBPTable(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/bonus/bbp", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", rec.Code)
	}

	var response struct {
		Bands []struct {
			MinPrice float64 `json:"minPrice"`
		} `json:"bands"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(response.Bands) != 5 {
		t.Errorf("got %d bands, expected 5", len(response.Bands))
	}
}

func TestHandleBBPLookup(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		expectedAmount float64
		expectedStatus string
	}{
		{"Eligible price", "price=68800", 27400, "eligible"},
		{"Sustainable", "price=68800&sustainable=true", 33700, "eligible"},
		{"Below the program", "price=68799", 0, "too_low"},
		{"Above the program", "price=488801", 0, "too_high"},
	}

	handler := newTestHandler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/bonus/bbp?"+tt.query, nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, expected 200", rec.Code)
			}

			var response struct {
				Amount      float64 `json:"amount"`
				Eligibility string  `json:"eligibility"`
			}
			if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if response.Amount != tt.expectedAmount {
				t.Errorf("amount = %v, expected %v", response.Amount, tt.expectedAmount)
			}
			if response.Eligibility != tt.expectedStatus {
				t.Errorf("eligibility = %q, expected %q", response.Eligibility, tt.expectedStatus)
			}
		})
	}
}

func TestHandleBBPRejectsBadPrice(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/bonus/bbp?price=abc", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, expected 400", rec.Code)
	}
}

func TestHandleVersion(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"version":"test"`) {
		t.Errorf("body = %s, expected the test version", rec.Body.String())
	}
}

func TestMetricsEndpoint(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, expected 200", rec.Code)
	}
}
