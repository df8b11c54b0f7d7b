package siasisten

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatestTerm(t *testing.T) {
	got := LatestTerm([]Vacancy{
		{Course: "A", AcademicYear: "2023/2024", Semester: "Genap"},
		{Course: "B", AcademicYear: "2024/2025", Semester: "Gasal"},
		{Course: "C", AcademicYear: "2024/2025", Semester: "Gasal"},
		{Course: "D", AcademicYear: "2024/2025", Semester: "Antara"},
	})
	require.Len(t, got, 2)
	assert.Equal(t, "B", got[0].Course)
	assert.Equal(t, "C", got[1].Course)

	assert.Nil(t, LatestTerm(nil))
}

func TestListActiveLogs(t *testing.T) {
	otherLogs := strings.NewReplacer(
		"15 Jan 2024", "20 Jan 2024",
		"3 Feb 2024", "1 Jan 2024",
		"/log/create/812/", "/log/create/813/",
	).Replace(logPage)
	vacancies := strings.Replace(vacancyPage, "<td>Genap</td><td>2023/2024</td>", "<td>Gasal</td><td>2024/2025</td>", 1)

	mux := http.NewServeMux()
	mux.HandleFunc("/log/listLowonganAst", func(w http.ResponseWriter, _ *http.Request) { w.Write([]byte(vacancies)) })
	mux.HandleFunc("/log/listLogMahasiswa/812/", func(w http.ResponseWriter, _ *http.Request) { w.Write([]byte(logPage)) })
	mux.HandleFunc("/log/listLogMahasiswa/655/", func(w http.ResponseWriter, _ *http.Request) { w.Write([]byte(otherLogs)) })
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	got, err := NewClient(srv.URL, zerolog.Nop()).ListActiveLogs(context.Background(), testCreds)
	require.NoError(t, err)

	require.Len(t, got.Vacancies, 2)
	assert.Equal(t, "/log/create/812/", got.Vacancies[0].CreateLogLink)
	assert.Equal(t, "813", got.Vacancies[1].CreateLogID)

	require.Len(t, got.Logs, 4)
	var dates []string
	for _, l := range got.Logs {
		dates = append(dates, l.Date)
		assert.NotEmpty(t, l.Course)
	}
	assert.Equal(t, []string{"03-02-2024", "20-01-2024", "15-01-2024", "01-01-2024"}, dates)
}
