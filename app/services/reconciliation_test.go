package services

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestMonthStart(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "mid-month normalizes to first",
			in:   time.Date(2025, 10, 17, 13, 45, 0, 0, time.UTC),
			want: time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "first of month is unchanged",
			in:   time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			want: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "non-UTC input lands on UTC first",
			in:   time.Date(2025, 6, 30, 23, 0, 0, 0, time.FixedZone("IST", 5*3600+1800)),
			want: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthStart(tt.in)
			if !got.Equal(tt.want) {
				t.Errorf("MonthStart() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNextMonthStart(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "ordinary month",
			in:   time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
			want: time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "december rolls over to january of next year",
			in:   time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
			want: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "january stays within the year",
			in:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			want: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "mid-month input is normalized first",
			in:   time.Date(2025, 12, 25, 9, 0, 0, 0, time.UTC),
			want: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextMonthStart(tt.in)
			if !got.Equal(tt.want) {
				t.Errorf("NextMonthStart() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAmountDue(t *testing.T) {
	tests := []struct {
		name  string
		rate  string
		count int
		want  string
	}{
		{name: "rate 500 for 8 lectures", rate: "500.00", count: 8, want: "4000.00"},
		{name: "zero rate", rate: "0.00", count: 12, want: "0.00"},
		{name: "zero lectures", rate: "750.50", count: 0, want: "0.00"},
		{name: "fractional rate stays exact", rate: "333.33", count: 3, want: "999.99"},
		{name: "tenth of a unit does not drift", rate: "0.10", count: 3, want: "0.30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate := decimal.RequireFromString(tt.rate)
			want := decimal.RequireFromString(tt.want)
			got := AmountDue(rate, tt.count)
			if !got.Equal(want) {
				t.Errorf("AmountDue() = %s, want %s", got, want)
			}
		})
	}
}

func TestBalance(t *testing.T) {
	tests := []struct {
		name string
		due  string
		paid string
		want string
	}{
		{name: "partial payment leaves balance", due: "4000.00", paid: "1500.00", want: "2500.00"},
		{name: "full payment clears balance", due: "4000.00", paid: "4000.00", want: "0.00"},
		{name: "overpayment goes negative", due: "1000.00", paid: "1200.00", want: "-200.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Balance(decimal.RequireFromString(tt.due), decimal.RequireFromString(tt.paid))
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("Balance() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{name: "plain value", raw: "500.00", want: "500.00"},
		{name: "thousands separator stripped", raw: "1,250.75", want: "1250.75"},
		{name: "surrounding whitespace trimmed", raw: "  42 ", want: "42"},
		{name: "zero is allowed", raw: "0", want: "0"},
		{name: "negative rate rejected", raw: "-10", wantErr: ErrNegativeAmount},
		{name: "negative payment rejected", raw: "-5", wantErr: ErrNegativeAmount},
		{name: "garbage rejected", raw: "abc", wantErr: ErrInvalidAmount},
		{name: "empty rejected", raw: "", wantErr: ErrInvalidAmount},
		{name: "blank rejected", raw: "   ", wantErr: ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.raw)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseAmount(%q) error = %v, want %v", tt.raw, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAmount(%q) unexpected error: %v", tt.raw, err)
			}
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("ParseAmount(%q) = %s, want %s", tt.raw, got, tt.want)
			}
		})
	}
}

// Recording payments must accumulate, never replace. The handler-side add is
// mirrored here over the in-memory model the same way RecordPayment maintains
// it after a successful write.
func TestRecordPaymentAccumulates(t *testing.T) {
	paid := decimal.RequireFromString("1000.00")

	amount, err := ParseAmount("500.00")
	if err != nil {
		t.Fatalf("ParseAmount() failed: %v", err)
	}
	paid = paid.Add(amount)
	paid = paid.Add(amount)

	if want := decimal.RequireFromString("2000.00"); !paid.Equal(want) {
		t.Errorf("amount_paid = %s, want %s", paid, want)
	}
}
