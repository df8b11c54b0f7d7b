// Package finance serves monthly payment records, caching older months that
// no longer change.
package finance

import (
	"context"
	"errors"
	"fmt"

	"siasistenApi/internal/siasisten"
)

var ErrCache = errors.New("cache pembayaran gagal")

// Key identifies one cached month of one assistant.
type Key struct {
	Username string
	Year     int
	Month    int
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%04d-%02d", k.Username, k.Year, k.Month)
}

// Store persists the rows of a month. Replace overwrites every row under the
// key; rows keep their order.
type Store interface {
	Get(ctx context.Context, key Key) ([]siasisten.FinanceRecord, error)
	Replace(ctx context.Context, key Key, rows []siasisten.FinanceRecord) error
}

func cacheError(op string, key Key, err error) error {
	return fmt.Errorf("%s %s: %w: %w", op, key, ErrCache, err)
}
