package siasisten

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCreds = Credentials{SessionID: "sess789", CSRFToken: "cookietok"}

type recorded struct {
	method string
	path   string
	query  url.Values
	cookie string
	csrf   string
	form   url.Values
}

func recordingPortal(t *testing.T, status int, body string) (*Client, *[]recorded) {
	var calls []recorded
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		form, _ := url.ParseQuery(string(raw))
		calls = append(calls, recorded{
			method: r.Method,
			path:   r.URL.Path,
			query:  r.URL.Query(),
			cookie: r.Header.Get("Cookie"),
			csrf:   r.Header.Get("X-CSRFToken"),
			form:   form,
		})
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, zerolog.Nop()), &calls
}

func sampleForm() LogForm {
	return LogForm{
		Category:    "Asistensi/Tutorial",
		Description: "Tutorial lab 1",
		Date:        Date{Day: 15, Month: 1, Year: 2024},
		Start:       Clock{Hour: 8, Minute: 0},
		End:         Clock{Hour: 9, Minute: 30},
	}
}

func TestListVacancies_SendsCredentials(t *testing.T) {
	c, calls := recordingPortal(t, http.StatusOK, vacancyPage)

	got, err := c.ListVacancies(context.Background(), testCreds)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	require.Len(t, *calls, 1)
	call := (*calls)[0]
	assert.Equal(t, http.MethodGet, call.method)
	assert.Equal(t, "/log/listLowonganAst", call.path)
	assert.Equal(t, "sessionid=sess789; csrftoken=cookietok", call.cookie)
}

func TestListLogs(t *testing.T) {
	c, calls := recordingPortal(t, http.StatusOK, logPage)

	page, err := c.ListLogs(context.Background(), testCreds, "812")
	require.NoError(t, err)
	assert.Len(t, page.Logs, 2)
	assert.Equal(t, "/log/listLogMahasiswa/812/", (*calls)[0].path)
}

func TestListLogs_RedirectIsRemoteError(t *testing.T) {
	c, _ := recordingPortal(t, http.StatusFound, "")
	_, err := c.ListLogs(context.Background(), testCreds, "812")
	assert.ErrorIs(t, err, ErrRemoteFetch)
}

func TestListPayments(t *testing.T) {
	c, calls := recordingPortal(t, http.StatusOK, financePage)

	rows, err := c.ListPayments(context.Background(), testCreds, 2024, 1)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "2024", (*calls)[0].query.Get("tahun"))
	assert.Equal(t, "1", (*calls)[0].query.Get("bulan"))
}

func TestCreateLog_PostsForm(t *testing.T) {
	c, calls := recordingPortal(t, http.StatusFound, "")

	require.NoError(t, c.CreateLog(context.Background(), testCreds, "812", sampleForm()))

	call := (*calls)[0]
	assert.Equal(t, http.MethodPost, call.method)
	assert.Equal(t, "/log/create/812/", call.path)
	assert.Equal(t, "cookietok", call.csrf)
	assert.Equal(t, "cookietok", call.form.Get("csrfmiddlewaretoken"))
	assert.Equal(t, "Asistensi/Tutorial", call.form.Get("kategori_log"))
	assert.Equal(t, "15", call.form.Get("tanggal_day"))
	assert.Equal(t, "1", call.form.Get("tanggal_month"))
	assert.Equal(t, "2024", call.form.Get("tanggal_year"))
	assert.Equal(t, "9", call.form.Get("waktu_selesai_hour"))
	assert.Equal(t, "30", call.form.Get("waktu_selesai_minute"))
}

func TestUpdateAndDeleteArePosts(t *testing.T) {
	c, calls := recordingPortal(t, http.StatusOK, "ok")

	require.NoError(t, c.UpdateLog(context.Background(), testCreds, "9001", sampleForm()))
	require.NoError(t, c.DeleteLog(context.Background(), testCreds, "9001"))

	require.Len(t, *calls, 2)
	assert.Equal(t, http.MethodPost, (*calls)[0].method)
	assert.Equal(t, "/log/update/9001/", (*calls)[0].path)
	assert.Equal(t, http.MethodPost, (*calls)[1].method)
	assert.Equal(t, "/log/delete/9001/", (*calls)[1].path)
	assert.Equal(t, "cookietok", (*calls)[1].form.Get("csrfmiddlewaretoken"))
}

func TestMutation_ServerError(t *testing.T) {
	c, _ := recordingPortal(t, http.StatusInternalServerError, "boom")
	err := c.DeleteLog(context.Background(), testCreds, "9001")
	assert.ErrorIs(t, err, ErrRemoteFetch)
}

func TestGateway_RejectsBadInput(t *testing.T) {
	c, calls := recordingPortal(t, http.StatusOK, "")
	ctx := context.Background()

	assert.ErrorIs(t, c.DeleteLog(ctx, testCreds, "../admin"), ErrInvalidInput)
	assert.ErrorIs(t, c.DeleteLog(ctx, Credentials{}, "9001"), ErrSessionMissing)

	bad := sampleForm()
	bad.Start.Hour = 24
	assert.Error(t, c.CreateLog(ctx, testCreds, "812", bad))

	_, err := c.ListPayments(ctx, testCreds, 2024, 13)
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.Empty(t, *calls)
}

func TestListVacancies_FollowsAppendSlashRedirect(t *testing.T) {
	var paths []string
	mux := http.NewServeMux()
	mux.HandleFunc("/log/listLowonganAst", func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		http.Redirect(w, r, "/log/listLowonganAst/", http.StatusMovedPermanently)
	})
	mux.HandleFunc("/log/listLowonganAst/", func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		assert.Equal(t, testCreds.CookieHeader(), r.Header.Get("Cookie"))
		w.Write([]byte(vacancyPage))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	got, err := NewClient(srv.URL, zerolog.Nop()).ListVacancies(context.Background(), testCreds)
	require.NoError(t, err)
	assert.NotEmpty(t, got)
	assert.Equal(t, []string{"/log/listLowonganAst", "/log/listLowonganAst/"}, paths)
}

func TestListLogs_RedirectToLoginIsSessionMissing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/login/?next="+url.QueryEscape(r.URL.Path), http.StatusFound)
	}))
	t.Cleanup(srv.Close)

	_, err := NewClient(srv.URL, zerolog.Nop()).ListLogs(context.Background(), testCreds, "812")
	assert.ErrorIs(t, err, ErrSessionMissing)
	assert.NotErrorIs(t, err, ErrRemoteFetch)
}

func TestListLogs_RedirectLoopIsRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, r.URL.Path, http.StatusFound)
	}))
	t.Cleanup(srv.Close)

	_, err := NewClient(srv.URL, zerolog.Nop()).ListLogs(context.Background(), testCreds, "812")
	assert.ErrorIs(t, err, ErrRemoteFetch)
}

func TestListLogs_OffHostRedirectIsRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "https://sso.example.org/cas/login", http.StatusFound)
	}))
	t.Cleanup(srv.Close)

	_, err := NewClient(srv.URL, zerolog.Nop()).ListLogs(context.Background(), testCreds, "812")
	assert.ErrorIs(t, err, ErrRemoteFetch)
}
