package repository

import (
	"math"
	"testing"

	"github.com/Vilduis/SimulaCredit-sub000/internal/config"
	"github.com/Vilduis/SimulaCredit-sub000/internal/simulation"
	"go.uber.org/zap"
)

func testLoan() config.LoanConfiguration {
	return config.LoanConfiguration{
		Name:               "cached",
		PropertyPrice:      250000,
		DownPaymentPercent: 20,
		TermYears:          20,
		Currency:           "PEN",
		RateType:           config.RateTypeEffective,
		InterestRateAnnual: 8.75,
		DiscountRateAnnual: 7.0,
		StartDate:          "2026-01-01",
	}
}

func TestKeyIsStable(t *testing.T) {
	loan := testLoan()
	first, err := Key(&loan)
	if err != nil {
		t.Fatalf("Key() unexpected error: %v", err)
	}
	second, err := Key(&loan)
	if err != nil {
		t.Fatalf("Key() unexpected error: %v", err)
	}
	if first != second {
		t.Errorf("Key() not stable: %q != %q", first, second)
	}

	changed := testLoan()
	changed.TermYears = 15
	third, err := Key(&changed)
	if err != nil {
		t.Fatalf("Key() unexpected error: %v", err)
	}
	if third == first {
		t.Error("Key() identical for different configurations")
	}
}

func TestMemoryCache(t *testing.T) {
	cache := NewMemoryCache()

	if _, ok := cache.Get("absent"); ok {
		t.Error("Get() of an absent key reported a hit")
	}

	if err := cache.Set("k", "v"); err != nil {
		t.Fatalf("Set() unexpected error: %v", err)
	}
	val, ok := cache.Get("k")
	if !ok || val != "v" {
		t.Errorf("Get() = %q/%v, expected v/true", val, ok)
	}
}

func TestSimulationCacheRoundTrip(t *testing.T) {
	loan := testLoan()
	result, err := simulation.Simulate(zap.NewNop(), &loan)
	if err != nil {
		t.Fatalf("Simulate() unexpected error: %v", err)
	}

	cache := NewSimulationCache(NewMemoryCache())

	if _, ok := cache.Lookup(&loan); ok {
		t.Error("Lookup() before Store() reported a hit")
	}

	if err := cache.Store(&loan, &result); err != nil {
		t.Fatalf("Store() unexpected error: %v", err)
	}

	cached, ok := cache.Lookup(&loan)
	if !ok {
		t.Fatal("Lookup() after Store() reported a miss")
	}
	if cached.Name != result.Name {
		t.Errorf("cached name = %q, expected %q", cached.Name, result.Name)
	}
	if cached.Indicators.MonthlyPayment != result.Indicators.MonthlyPayment {
		t.Errorf("cached monthly payment = %v, expected %v", cached.Indicators.MonthlyPayment, result.Indicators.MonthlyPayment)
	}
	if len(cached.Indicators.AmortizationTable) != len(result.Indicators.AmortizationTable) {
		t.Errorf("cached table has %d rows, expected %d", len(cached.Indicators.AmortizationTable), len(result.Indicators.AmortizationTable))
	}
}

func TestSimulationCacheRoundTripsDegenerateDuration(t *testing.T) {
	loan := testLoan()
	loan.DownPaymentPercent = 100
	loan.InterestRateAnnual = 0

	result, err := simulation.Simulate(zap.NewNop(), &loan)
	if err != nil {
		t.Fatalf("Simulate() unexpected error: %v", err)
	}
	if !math.IsNaN(result.Indicators.Duration) {
		t.Fatalf("expected a NaN duration for a fully financed-by-down-payment loan, got %v", result.Indicators.Duration)
	}

	cache := NewSimulationCache(NewMemoryCache())
	if err := cache.Store(&loan, &result); err != nil {
		t.Fatalf("Store() of a NaN-duration result failed: %v", err)
	}

	cached, ok := cache.Lookup(&loan)
	if !ok {
		t.Fatal("Lookup() reported a miss")
	}
	if !math.IsNaN(cached.Indicators.Duration) {
		t.Errorf("cached duration = %v, expected NaN", cached.Indicators.Duration)
	}
}

func TestSimulationCacheNilRepositoryAlwaysMisses(t *testing.T) {
	loan := testLoan()
	cache := NewSimulationCache(nil)

	if _, ok := cache.Lookup(&loan); ok {
		t.Error("Lookup() on a nil repository reported a hit")
	}
	if err := cache.Store(&loan, &simulation.Result{}); err != nil {
		t.Errorf("Store() on a nil repository returned an error: %v", err)
	}
}
