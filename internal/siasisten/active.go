package siasisten

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
)

// ActiveVacancy is a vacancy of the current term together with its logs.
type ActiveVacancy struct {
	Vacancy
	CreateLogLink string        `json:"Create Log Link"`
	CreateLogID   string        `json:"Create Log Link ID"`
	Logs          []ActivityLog `json:"logs"`
}

type ActiveLogs struct {
	Vacancies []ActiveVacancy `json:"vacancies"`
	Logs      []ActivityLog   `json:"logs"`
}

// LatestTerm keeps the vacancies sharing the newest academic year and, within
// it, the newest semester. Both are compared as strings, as the portal labels
// them ("2024/2025", "Gasal"/"Genap").
func LatestTerm(vacancies []Vacancy) []Vacancy {
	if len(vacancies) == 0 {
		return nil
	}
	sorted := append([]Vacancy(nil), vacancies...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if c := strings.Compare(sorted[i].AcademicYear, sorted[j].AcademicYear); c != 0 {
			return c > 0
		}
		return sorted[i].Semester > sorted[j].Semester
	})
	year, semester := sorted[0].AcademicYear, sorted[0].Semester

	var active []Vacancy
	for _, v := range sorted {
		if v.AcademicYear == year && v.Semester == semester {
			active = append(active, v)
		}
	}
	return active
}

// ListActiveLogs fetches the logs of every vacancy in the latest term, one
// vacancy at a time, and returns them newest first.
func (c *Client) ListActiveLogs(ctx context.Context, creds Credentials) (ActiveLogs, error) {
	vacancies, err := c.ListVacancies(ctx, creds)
	if err != nil {
		return ActiveLogs{}, err
	}

	var out ActiveLogs
	for _, v := range LatestTerm(vacancies) {
		page, err := c.ListLogs(ctx, creds, v.LogID)
		if err != nil {
			return ActiveLogs{}, fmt.Errorf("log %s: %w", v.Course, err)
		}
		av := ActiveVacancy{Vacancy: v, CreateLogID: page.CreateLogID, Logs: page.Logs}
		if page.CreateLogLink != nil {
			av.CreateLogLink = *page.CreateLogLink
		}
		for _, l := range page.Logs {
			l.Course = v.Course
			out.Logs = append(out.Logs, l)
		}
		out.Vacancies = append(out.Vacancies, av)
	}

	if err := SortNewestFirst(out.Logs); err != nil {
		return ActiveLogs{}, err
	}
	return out, nil
}

// SortNewestFirst orders logs by date then start time, both descending.
func SortNewestFirst(logs []ActivityLog) error {
	keys := make(map[int]time.Time, len(logs))
	for i, l := range logs {
		t, err := time.Parse("02-01-2006 15:04", l.Date+" "+l.Start)
		if err != nil {
			return &ParseError{Page: LogList, Row: i + 1, Field: "Tanggal", Reason: err.Error()}
		}
		keys[i] = t
	}
	idx := make([]int, len(logs))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return keys[idx[a]].After(keys[idx[b]]) })

	sorted := make([]ActivityLog, len(logs))
	for i, j := range idx {
		sorted[i] = logs[j]
	}
	copy(logs, sorted)
	return nil
}
