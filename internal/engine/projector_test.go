package engine

import (
	"testing"

	"github.com/shopspring/decimal"

	apperrors "github.com/centavohq/centavo/internal/errors"
)

func assertApprox(t *testing.T, got, want decimal.Decimal, tolerance float64) {
	t.Helper()
	if got.Sub(want).Abs().GreaterThan(decimal.NewFromFloat(tolerance)) {
		t.Errorf("got %s, want %s (±%v)", got, want, tolerance)
	}
}

func TestProjectSingleMonth(t *testing.T) {
	// 100000 at 118% TNA for one month: 100000 * (1 + 118/100/12).
	result, err := Project(decimal.NewFromInt(100000), decimal.NewFromInt(118), 1, 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertApprox(t, result.FinalAmount, decimal.NewFromFloat(109833.33), 0.01)
	assertApprox(t, result.Profit, decimal.NewFromFloat(9833.33), 0.01)
	assertApprox(t, result.YieldPercent, decimal.NewFromFloat(9.8333), 0.001)

	if len(result.Series) != 2 {
		t.Fatalf("expected 2 series points, got %d", len(result.Series))
	}
	if !result.Series[0].Amount.Equal(decimal.NewFromInt(100000)) {
		t.Errorf("series must start at the principal, got %s", result.Series[0].Amount)
	}
	if !result.Series[1].Amount.Equal(result.FinalAmount) {
		t.Errorf("series must end at the final amount")
	}
}

func TestProjectZeroPeriods(t *testing.T) {
	principal := decimal.NewFromInt(50000)
	result, err := Project(principal, decimal.NewFromInt(65), 0, 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.FinalAmount.Equal(principal) {
		t.Errorf("final amount should equal principal, got %s", result.FinalAmount)
	}
	if !result.Profit.IsZero() {
		t.Errorf("profit should be zero, got %s", result.Profit)
	}
	if len(result.Series) != 1 || !result.Series[0].Amount.Equal(principal) {
		t.Errorf("series should hold only the principal, got %v", result.Series)
	}
}

func TestProjectMonotonicGrowth(t *testing.T) {
	tests := []struct {
		name    string
		rate    decimal.Decimal
		periods int
	}{
		{"zero rate", decimal.Zero, 12},
		{"moderate rate", decimal.NewFromInt(65), 6},
		{"high rate", decimal.NewFromInt(118), 36},
	}

	principal := decimal.NewFromInt(100000)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Project(principal, tt.rate, tt.periods, 12)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.FinalAmount.LessThan(principal) {
				t.Errorf("final amount %s below principal %s", result.FinalAmount, principal)
			}
			for i := 1; i < len(result.Series); i++ {
				if result.Series[i].Amount.LessThan(result.Series[i-1].Amount) {
					t.Errorf("series shrank at period %d", i)
				}
			}
		})
	}
}

func TestProjectDeterministic(t *testing.T) {
	first, err := Project(decimal.NewFromInt(75000), decimal.NewFromFloat(72.5), 12, 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Project(decimal.NewFromInt(75000), decimal.NewFromFloat(72.5), 12, 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !first.FinalAmount.Equal(second.FinalAmount) || !first.Profit.Equal(second.Profit) {
		t.Error("identical inputs produced different results")
	}
}

func TestProjectInvalidParameters(t *testing.T) {
	tests := []struct {
		name           string
		principal      decimal.Decimal
		rate           decimal.Decimal
		periods        int
		periodsPerYear int
	}{
		{"zero principal", decimal.Zero, decimal.NewFromInt(65), 12, 12},
		{"negative principal", decimal.NewFromInt(-1), decimal.NewFromInt(65), 12, 12},
		{"negative rate", decimal.NewFromInt(100), decimal.NewFromInt(-5), 12, 12},
		{"negative periods", decimal.NewFromInt(100), decimal.NewFromInt(65), -1, 12},
		{"zero periods per year", decimal.NewFromInt(100), decimal.NewFromInt(65), 12, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Project(tt.principal, tt.rate, tt.periods, tt.periodsPerYear)
			if err == nil {
				t.Fatal("expected error but got none")
			}
			if _, ok := err.(*apperrors.ErrValidation); !ok {
				t.Errorf("expected *ErrValidation, got %T", err)
			}
		})
	}
}

func TestProjectFixedTerm(t *testing.T) {
	// 90 days compounds as 3 whole months.
	result, err := ProjectFixedTerm(decimal.NewFromInt(100000), decimal.NewFromInt(118), 90)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Periods != 3 {
		t.Errorf("expected 3 periods, got %d", result.Periods)
	}
	if result.TermDays != 90 {
		t.Errorf("expected term days 90, got %d", result.TermDays)
	}

	// Partial months truncate, as the simulator always did.
	result, err = ProjectFixedTerm(decimal.NewFromInt(100000), decimal.NewFromInt(118), 45)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Periods != 1 {
		t.Errorf("expected 1 period for 45 days, got %d", result.Periods)
	}

	if _, err := ProjectFixedTerm(decimal.NewFromInt(100000), decimal.NewFromInt(118), 0); err == nil {
		t.Error("expected error for zero term days")
	}
}

func TestProjectWalletYield(t *testing.T) {
	result, err := ProjectWalletYield(decimal.NewFromInt(200000), decimal.NewFromInt(75), 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.EffectiveAnnualPercent == nil {
		t.Fatal("expected effective annual rate to be set")
	}
	// (1 + 0.75/12)^12 - 1 = 106.99% effective vs the 75% nominal.
	assertApprox(t, *result.EffectiveAnnualPercent, decimal.NewFromFloat(106.9889), 0.001)
}

func TestProjectCryptoYieldMatchesProjector(t *testing.T) {
	adapter, err := ProjectCryptoYield(decimal.NewFromInt(3000), decimal.NewFromFloat(8.2), 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	direct, err := Project(decimal.NewFromInt(3000), decimal.NewFromFloat(8.2), 12, 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !adapter.FinalAmount.Equal(direct.FinalAmount) {
		t.Error("crypto adapter diverged from the shared projector")
	}
}
