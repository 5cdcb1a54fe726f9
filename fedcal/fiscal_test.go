package fedcal_test

import (
	"testing"

	"github.com/govcal/fedcal-engine/fedcal"
)

func TestFiscalYear(t *testing.T) {
	cases := []struct {
		date string
		want int
	}{
		{"2023-09-30", 2023}, // last day of FY2023
		{"2023-10-01", 2024}, // first day of FY2024
		{"2024-01-15", 2024},
		{"2024-09-30", 2024},
		{"1974-10-01", 1975},
	}
	for _, c := range cases {
		if got := fedcal.FiscalYear(fedcal.MustDate(c.date)); got != c.want {
			t.Errorf("FiscalYear(%s) = %d, want %d", c.date, got, c.want)
		}
	}
}

func TestFiscalQuarter(t *testing.T) {
	cases := []struct {
		date string
		want int
	}{
		{"2023-10-01", 1},
		{"2023-12-31", 1},
		{"2024-01-15", 2},
		{"2024-03-31", 2},
		{"2024-04-01", 3},
		{"2024-06-30", 3},
		{"2024-07-01", 4},
		{"2024-09-30", 4},
	}
	for _, c := range cases {
		if got := fedcal.FiscalQuarter(fedcal.MustDate(c.date)); got != c.want {
			t.Errorf("FiscalQuarter(%s) = %d, want %d", c.date, got, c.want)
		}
	}
}

func TestFiscalYearPeriod(t *testing.T) {
	p := fedcal.FiscalYearPeriod(2024)

	if !p.Start.Equal(fedcal.MustDate("2023-10-01")) {
		t.Errorf("FY2024 start = %s", p.Start)
	}
	if !p.End.Equal(fedcal.MustDate("2024-09-30")) {
		t.Errorf("FY2024 end = %s", p.End)
	}
	if got := p.Len(); got != 366 { // FY2024 contains 2024-02-29
		t.Errorf("FY2024 length = %d, want 366", got)
	}
}

func TestFiscalQuarterPeriod(t *testing.T) {
	cases := []struct {
		quarter    int
		start, end string
	}{
		{1, "2023-10-01", "2023-12-31"},
		{2, "2024-01-01", "2024-03-31"},
		{3, "2024-04-01", "2024-06-30"},
		{4, "2024-07-01", "2024-09-30"},
	}
	for _, c := range cases {
		p := fedcal.FiscalQuarterPeriod(2024, c.quarter)
		if !p.Start.Equal(fedcal.MustDate(c.start)) || !p.End.Equal(fedcal.MustDate(c.end)) {
			t.Errorf("FY2024 Q%d = %s, want [%s, %s]", c.quarter, p, c.start, c.end)
		}
	}
}

func TestFiscalQuarters_TileTheFiscalYear(t *testing.T) {
	// Every day of the fiscal year must fall in exactly the quarter that
	// FiscalQuarterPeriod says it does.
	fy := fedcal.FiscalYearPeriod(2024)
	for _, d := range fy.Days() {
		q := fedcal.FiscalQuarter(d)
		if !fedcal.FiscalQuarterPeriod(2024, q).Contains(d) {
			t.Fatalf("%s reports Q%d but falls outside that quarter's period", d, q)
		}
	}
}
