package siasisten

import (
	"fmt"
	"strconv"
	"strings"
)

var monthNumbers = map[string]string{
	"Jan": "01", "Feb": "02", "Mar": "03", "Apr": "04", "May": "05", "Jun": "06",
	"Jul": "07", "Aug": "08", "Sep": "09", "Oct": "10", "Nov": "11", "Dec": "12",
}

// FormatDate turns "15 Jan 2024" into "15-01-2024".
func FormatDate(s string) (string, error) {
	parts := strings.Fields(s)
	if len(parts) != 3 {
		return "", fmt.Errorf("format tanggal %q tidak dikenal", s)
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil || day < 1 || day > 31 {
		return "", fmt.Errorf("hari %q tidak valid", parts[0])
	}
	month, ok := monthNumbers[parts[1]]
	if !ok {
		return "", fmt.Errorf("bulan %q tidak dikenal", parts[1])
	}
	if _, err := strconv.Atoi(parts[2]); err != nil || len(parts[2]) != 4 {
		return "", fmt.Errorf("tahun %q tidak valid", parts[2])
	}
	return fmt.Sprintf("%02d-%s-%s", day, month, parts[2]), nil
}

// SplitTimeRange reads a cell like "08:00 - 09:30\nKelas A": only the first
// line is the range.
func SplitTimeRange(s string) (start, end string, err error) {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	start, end, ok := strings.Cut(line, "-")
	if !ok {
		return "", "", fmt.Errorf("rentang jam %q tidak memiliki '-'", line)
	}
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	if _, err := ParseClock(start); err != nil {
		return "", "", err
	}
	if _, err := ParseClock(end); err != nil {
		return "", "", err
	}
	return start, end, nil
}

// ParseClock returns minutes since midnight for "HH:MM".
func ParseClock(s string) (int, error) {
	h, m, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, fmt.Errorf("jam %q bukan HH:MM", s)
	}
	hour, err := strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("jam %q bukan HH:MM", s)
	}
	minute, err := strconv.Atoi(m)
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("jam %q bukan HH:MM", s)
	}
	return hour*60 + minute, nil
}

// Duration is the number of minutes from start to end. An end before start
// means the activity ran past midnight.
func Duration(start, end string) (int, error) {
	s, err := ParseClock(start)
	if err != nil {
		return 0, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return 0, err
	}
	d := e - s
	if d < 0 {
		d += 24 * 60
	}
	return d, nil
}
