// Package overlap finds activity logs whose time ranges intersect.
package overlap

import (
	"fmt"
	"time"

	"siasistenApi/internal/siasisten"
)

const layout = "02-01-2006 15:04"

type Summary struct {
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Course      string `json:"course"`
	Description string `json:"description"`
}

type Pair struct {
	Log1 Summary `json:"log1"`
	Log2 Summary `json:"log2"`
}

type interval struct {
	start, end time.Time
}

// Find reports every unordered pair (i<j) of logs whose [start, end) ranges
// intersect. Touching ranges do not overlap. An end time before the start
// time is read as ending the next day.
func Find(logs []siasisten.ActivityLog) ([]Pair, error) {
	spans := make([]interval, len(logs))
	for i, l := range logs {
		iv, err := span(l)
		if err != nil {
			return nil, fmt.Errorf("log %s (%s): %w", l.No, l.Date, err)
		}
		spans[i] = iv
	}

	pairs := []Pair{}
	for i := 0; i < len(logs); i++ {
		for j := i + 1; j < len(logs); j++ {
			if spans[i].start.Before(spans[j].end) && spans[j].start.Before(spans[i].end) {
				pairs = append(pairs, Pair{Log1: summarize(logs[i]), Log2: summarize(logs[j])})
			}
		}
	}
	return pairs, nil
}

func span(l siasisten.ActivityLog) (interval, error) {
	start, err := time.Parse(layout, l.Date+" "+l.Start)
	if err != nil {
		return interval{}, &siasisten.ParseError{Page: siasisten.LogList, Field: "Jam Mulai", Reason: err.Error()}
	}
	end, err := time.Parse(layout, l.Date+" "+l.End)
	if err != nil {
		return interval{}, &siasisten.ParseError{Page: siasisten.LogList, Field: "Jam Selesai", Reason: err.Error()}
	}
	if end.Before(start) {
		end = end.Add(24 * time.Hour)
	}
	return interval{start: start, end: end}, nil
}

func summarize(l siasisten.ActivityLog) Summary {
	return Summary{
		Date:        l.Date,
		StartTime:   l.Start,
		EndTime:     l.End,
		Course:      l.Course,
		Description: l.Description,
	}
}
