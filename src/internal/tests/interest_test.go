package services_test

import (
	"testing"
	"time"

	"github.com/api-sage/time-deposit-registry/src/internal/usecase/services"
	"github.com/shopspring/decimal"
)

func TestComputeScheduleMaturityDate(t *testing.T) {
	applicationDate := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	maturity, _ := services.ComputeSchedule(
		decimal.RequireFromString("1000.00"),
		decimal.RequireFromString("5.00"),
		90,
		applicationDate,
	)

	expected := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	if !maturity.Equal(expected) {
		t.Fatalf("expected maturity %s, got %s", expected, maturity)
	}
}

func TestComputeScheduleInterest(t *testing.T) {
	applicationDate := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		amount   string
		rate     string
		termDays int
		expected string
	}{
		{name: "ninety day term", amount: "1000.00", rate: "5.00", termDays: 90, expected: "12.33"},
		{name: "full year", amount: "5000.00", rate: "3.75", termDays: 365, expected: "187.50"},
		{name: "rounds half up", amount: "182.50", rate: "1.00", termDays: 365, expected: "1.83"},
		{name: "minimum term", amount: "100.00", rate: "0.01", termDays: 30, expected: "0.00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, interest := services.ComputeSchedule(
				decimal.RequireFromString(tc.amount),
				decimal.RequireFromString(tc.rate),
				tc.termDays,
				applicationDate,
			)

			if interest.StringFixed(2) != tc.expected {
				t.Fatalf("expected interest %s, got %s", tc.expected, interest.StringFixed(2))
			}
		})
	}
}
