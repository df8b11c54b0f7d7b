package siasisten

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func pathID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" || strings.ContainsAny(id, "/?#") {
		return "", fmt.Errorf("%w: id %q", ErrInvalidInput, id)
	}
	return url.PathEscape(id), nil
}

func (c *Client) ListVacancies(ctx context.Context, creds Credentials) ([]Vacancy, error) {
	var vacancies []Vacancy
	err := c.fetchPage(ctx, "list_vacancies", "/log/listLowonganAst", creds, func(r io.Reader) error {
		var err error
		vacancies, err = ParseVacancies(r)
		return err
	})
	return vacancies, err
}

func (c *Client) ListLogs(ctx context.Context, creds Credentials, vacancyID string) (LogPage, error) {
	id, err := pathID(vacancyID)
	if err != nil {
		return LogPage{}, err
	}
	var page LogPage
	err = c.fetchPage(ctx, "list_logs", "/log/listLogMahasiswa/"+id+"/", creds, func(r io.Reader) error {
		var err error
		page, err = ParseLogs(r)
		return err
	})
	return page, err
}

func (c *Client) CreateLog(ctx context.Context, creds Credentials, createID string, form LogForm) error {
	id, err := pathID(createID)
	if err != nil {
		return err
	}
	values, err := form.Values()
	if err != nil {
		return err
	}
	return c.submit(ctx, "create_log", "/log/create/"+id+"/", creds, values)
}

func (c *Client) UpdateLog(ctx context.Context, creds Credentials, logID string, form LogForm) error {
	id, err := pathID(logID)
	if err != nil {
		return err
	}
	values, err := form.Values()
	if err != nil {
		return err
	}
	return c.submit(ctx, "update_log", "/log/update/"+id+"/", creds, values)
}

func (c *Client) DeleteLog(ctx context.Context, creds Credentials, logID string) error {
	id, err := pathID(logID)
	if err != nil {
		return err
	}
	return c.submit(ctx, "delete_log", "/log/delete/"+id+"/", creds, url.Values{})
}

// ListPayments fetches the payment page for one month.
func (c *Client) ListPayments(ctx context.Context, creds Credentials, year, month int) ([]FinanceRecord, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: bulan %d", ErrInvalidInput, month)
	}
	q := url.Values{}
	q.Set("tahun", strconv.Itoa(year))
	q.Set("bulan", strconv.Itoa(month))

	var records []FinanceRecord
	err := c.fetchPage(ctx, "list_payments", "/keuangan/listPembayaranPerAsisten?"+q.Encode(), creds, func(r io.Reader) error {
		var err error
		records, err = ParsePayments(r)
		return err
	})
	return records, err
}

// Validate checks field ranges; the error is a validator.ValidationErrors
// when a field is out of range.
func (f LogForm) Validate() error {
	if err := validate.Struct(f); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			return ve
		}
		return err
	}
	return nil
}

// Values encodes the form with the portal's flat field names.
func (f LogForm) Values() (url.Values, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	v := url.Values{}
	v.Set("kategori_log", f.Category)
	v.Set("deskripsi", f.Description)
	v.Set("tanggal_day", strconv.Itoa(f.Date.Day))
	v.Set("tanggal_month", strconv.Itoa(f.Date.Month))
	v.Set("tanggal_year", strconv.Itoa(f.Date.Year))
	v.Set("waktu_mulai_hour", strconv.Itoa(f.Start.Hour))
	v.Set("waktu_mulai_minute", strconv.Itoa(f.Start.Minute))
	v.Set("waktu_selesai_hour", strconv.Itoa(f.End.Hour))
	v.Set("waktu_selesai_minute", strconv.Itoa(f.End.Minute))
	return v, nil
}
