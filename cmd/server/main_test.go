package main

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/finacct/internal/domain"
	"github.com/iho/finacct/internal/infrastructure/config"
)

func TestResolveArithmetic(t *testing.T) {
	cfg := &config.Config{DecimalScale: 2, RoundingMode: domain.RoundingHalfDown}

	settings := resolveArithmetic(cfg)
	if settings.DecimalScale != 2 || settings.RoundingMode != domain.RoundingHalfDown {
		t.Fatalf("unexpected settings: %+v", settings)
	}

	rounded, err := settings.Round(decimal.RequireFromString("1.125"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rounded.Equal(decimal.RequireFromString("1.12")) {
		t.Fatalf("expected half-down midpoint to round to 1.12, got %s", rounded)
	}
}
