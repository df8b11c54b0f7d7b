package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siasistenApi/internal/siasisten"
)

func TestParseRupiah(t *testing.T) {
	cases := map[string]float64{
		"Rp 1.234.567,00": 1234567,
		"Rp1.500.000":     1500000,
		"Rp. 75.000":      75000,
		"Rp 12.500,50":    12500.5,
		"0":               0,
	}
	for in, want := range cases {
		got, err := ParseRupiah(in)
		require.NoError(t, err, in)
		assert.InDelta(t, want, got, 0.001, in)
	}
}

func TestParseRupiah_Invalid(t *testing.T) {
	for _, in := range []string{"", "Rp", "satu juta"} {
		_, err := ParseRupiah(in)
		assert.ErrorIs(t, err, siasisten.ErrParse, in)
	}
}

func TestSummarize(t *testing.T) {
	rows := []siasisten.FinanceRecord{
		{Month: "Januari 2024", Amount: "Rp 500.000,00", Status: "Dibayar"},
		{Month: "Januari 2024", Amount: "Rp 250.000,00", Status: "Diproses"},
		{Month: "Februari 2024", Amount: "Rp 300.000,00", Status: "dibayar"},
		{},
	}

	st, err := Summarize(rows)
	require.NoError(t, err)
	assert.InDelta(t, 1050000, st.TotalAmount, 0.001)
	assert.InDelta(t, 800000, st.StatusTotals["dibayar"], 0.001)
	assert.InDelta(t, 250000, st.StatusTotals["diproses"], 0.001)
	assert.InDelta(t, 750000, st.MonthlyTotals["Januari 2024"], 0.001)
	assert.InDelta(t, 525000, st.AverageMonthly, 0.001)
	assert.InDelta(t, 750000, st.MaxMonthly, 0.001)
	assert.InDelta(t, 300000, st.MinMonthly, 0.001)
}

func TestSummarize_BadAmount(t *testing.T) {
	_, err := Summarize([]siasisten.FinanceRecord{
		{Month: "Januari 2024", Amount: "Rp 1.000", Status: "Dibayar"},
		{Month: "Januari 2024", Amount: "-", Status: "Dibayar"},
	})
	var pe *siasisten.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Row)
}

func TestSummarize_Empty(t *testing.T) {
	st, err := Summarize(nil)
	require.NoError(t, err)
	assert.Zero(t, st.TotalAmount)
	assert.Empty(t, st.MonthlyTotals)
}
