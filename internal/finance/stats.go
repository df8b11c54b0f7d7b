package finance

import (
	"strconv"
	"strings"

	"siasistenApi/internal/siasisten"
)

type Stats struct {
	TotalAmount    float64            `json:"totalAmount"`
	StatusTotals   map[string]float64 `json:"statusTotals"`
	MonthlyTotals  map[string]float64 `json:"monthlyTotals"`
	AverageMonthly float64            `json:"averageMonthly"`
	MaxMonthly     float64            `json:"maxMonthly"`
	MinMonthly     float64            `json:"minMonthly"`
}

// ParseRupiah reads amounts such as "Rp 1.234.567,00" or "Rp1.500.000".
func ParseRupiah(s string) (float64, error) {
	v := strings.TrimSpace(s)
	v = strings.TrimPrefix(v, "Rp")
	v = strings.TrimPrefix(v, ".")
	v = strings.ReplaceAll(v, " ", "")
	v = strings.ReplaceAll(v, "\u00a0", "")
	v = strings.ReplaceAll(v, ".", "")
	v = strings.Replace(v, ",", ".", 1)
	if v == "" {
		return 0, &siasisten.ParseError{Page: siasisten.FinanceList, Field: "Jumlah Pembayaran", Reason: "nominal kosong"}
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, &siasisten.ParseError{Page: siasisten.FinanceList, Field: "Jumlah Pembayaran", Reason: "nominal " + strconv.Quote(s) + " tidak valid"}
	}
	return f, nil
}

// Summarize totals rows by lowercased status and by month label. Placeholder
// rows are skipped; an unreadable amount fails the whole summary.
func Summarize(rows []siasisten.FinanceRecord) (Stats, error) {
	st := Stats{
		StatusTotals:  map[string]float64{},
		MonthlyTotals: map[string]float64{},
	}
	for i, r := range rows {
		if r.IsPlaceholder() {
			continue
		}
		amount, err := ParseRupiah(r.Amount)
		if err != nil {
			if pe, ok := err.(*siasisten.ParseError); ok {
				pe.Row = i + 1
			}
			return Stats{}, err
		}
		st.TotalAmount += amount
		st.StatusTotals[strings.ToLower(r.Status)] += amount
		st.MonthlyTotals[r.Month] += amount
	}

	if len(st.MonthlyTotals) == 0 {
		return st, nil
	}
	first := true
	var sum float64
	for _, v := range st.MonthlyTotals {
		sum += v
		if first || v > st.MaxMonthly {
			st.MaxMonthly = v
		}
		if first || v < st.MinMonthly {
			st.MinMonthly = v
		}
		first = false
	}
	st.AverageMonthly = sum / float64(len(st.MonthlyTotals))
	return st, nil
}
