package market

import (
	"context"
	"errors"
	"testing"

	"stamble/internal/errs"
)

func TestStaticProviderKnownSymbol(t *testing.T) {
	p := NewStaticProvider()

	perf, err := p.GetPerformance(context.Background(), "AAPL")
	if err != nil {
		t.Fatal(err)
	}

	if perf.Symbol != "AAPL" {
		t.Errorf("expected symbol AAPL, got %s", perf.Symbol)
	}
	if perf.CurrentPrice <= 0 {
		t.Errorf("price must be positive, got %f", perf.CurrentPrice)
	}
	if perf.Volume < 0 {
		t.Errorf("volume must be non-negative, got %d", perf.Volume)
	}
}

func TestStaticProviderNormalizesCase(t *testing.T) {
	p := NewStaticProvider()

	perf, err := p.GetPerformance(context.Background(), "msft")
	if err != nil {
		t.Fatal(err)
	}
	if perf.Symbol != "MSFT" {
		t.Errorf("expected MSFT, got %s", perf.Symbol)
	}
}

func TestStaticProviderUnknownSymbol(t *testing.T) {
	p := NewStaticProvider()

	_, err := p.GetPerformance(context.Background(), "ZZZZZZ")
	if !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestStaticProviderOptionalFields(t *testing.T) {
	p := NewStaticProvider()

	// GOOGL has no dividend, so the field stays absent rather than zero.
	perf, err := p.GetPerformance(context.Background(), "GOOGL")
	if err != nil {
		t.Fatal(err)
	}
	if perf.DividendYield != nil {
		t.Errorf("expected no dividend yield, got %v", *perf.DividendYield)
	}
	if perf.PERatio == nil {
		t.Error("expected PE ratio to be set")
	}
}
