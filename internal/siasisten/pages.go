package siasisten

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ParseVacancies reads the vacancy list page.
func ParseVacancies(r io.Reader) ([]Vacancy, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, &ParseError{Page: VacancyList, Reason: err.Error()}
	}
	return ExtractRows(doc, vacancySchema, func(row Row) (Vacancy, error) {
		var v Vacancy
		var err error
		if v.No, err = row.Text(0); err != nil {
			return v, err
		}
		if v.Course, err = row.Text(1); err != nil {
			return v, err
		}
		if v.Semester, err = row.Text(2); err != nil {
			return v, err
		}
		if v.AcademicYear, err = row.Text(3); err != nil {
			return v, err
		}
		if v.Lecturers, err = row.Text(4); err != nil {
			return v, err
		}
		v.LogListLink, v.LogID, err = row.Href(5)
		return v, err
	})
}

// ParseLogs reads a vacancy's log page, including the "create log" link when
// the page offers one.
func ParseLogs(r io.Reader) (LogPage, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return LogPage{}, &ParseError{Page: LogList, Reason: err.Error()}
	}

	logs, err := ExtractRows(doc, logSchema, parseLogRow)
	if err != nil {
		return LogPage{}, err
	}

	list := LogPage{Logs: logs}
	if href, ok := doc.Find("a[href*='/log/create/']").First().Attr("href"); ok {
		href = strings.TrimSpace(href)
		list.CreateLogLink = &href
		list.CreateLogID = IDFromLink(href)
	}
	return list, nil
}

func parseLogRow(row Row) (ActivityLog, error) {
	var l ActivityLog
	var err error
	if l.No, err = row.Text(0); err != nil {
		return l, err
	}

	date, err := row.Text(1)
	if err != nil {
		return l, err
	}
	if l.Date, err = FormatDate(date); err != nil {
		return l, row.fail(1, err.Error())
	}

	hours, err := row.Text(2)
	if err != nil {
		return l, err
	}
	if l.Start, l.End, err = SplitTimeRange(hours); err != nil {
		return l, row.fail(2, err.Error())
	}
	if l.Duration, err = Duration(l.Start, l.End); err != nil {
		return l, row.fail(2, err.Error())
	}

	if l.Category, err = row.Text(3); err != nil {
		return l, err
	}
	if l.Description, err = row.Text(4); err != nil {
		return l, err
	}
	if l.Status, err = row.Text(5); err != nil {
		return l, err
	}
	if l.Operation, err = row.Text(6); err != nil {
		return l, err
	}
	l.ActionLink, l.LogID, err = row.OptionalHref(7)
	return l, err
}

// ParsePayments reads the finance page. The page embeds several tables; only
// the per-assistant payment table is used.
func ParsePayments(r io.Reader) ([]FinanceRecord, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, &ParseError{Page: FinanceList, Reason: err.Error()}
	}
	return ExtractRows(doc, financeSchema, func(row Row) (FinanceRecord, error) {
		var rec FinanceRecord
		fields := []*string{&rec.NPM, &rec.Name, &rec.Month, &rec.Course, &rec.Hours, &rec.Rate, &rec.Amount, &rec.Status}
		for i, f := range fields {
			v, err := row.Text(i)
			if err != nil {
				return rec, err
			}
			*f = v
		}
		if rec.NPM == "" {
			return rec, row.fail(0, "NPM kosong")
		}
		return rec, nil
	})
}
