package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"siasistenApi/internal/siasisten"
)

const (
	DefaultRecentMonths  = 3
	DefaultBackfillDelay = time.Second
)

// Fetcher is the part of the portal client the cache needs.
type Fetcher interface {
	ListPayments(ctx context.Context, creds siasisten.Credentials, year, month int) ([]siasisten.FinanceRecord, error)
}

type Service struct {
	fetcher Fetcher
	store   Store
	log     zerolog.Logger

	recentMonths  int
	backfillDelay time.Duration
	now           func() time.Time
	sleep         func(context.Context, time.Duration) error
}

type Option func(*Service)

// WithRecentMonths sets how many months, counting the current one, are
// always fetched from the portal.
func WithRecentMonths(n int) Option {
	return func(s *Service) { s.recentMonths = n }
}

func WithBackfillDelay(d time.Duration) Option {
	return func(s *Service) { s.backfillDelay = d }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithSleeper(sleep func(context.Context, time.Duration) error) Option {
	return func(s *Service) { s.sleep = sleep }
}

func NewService(fetcher Fetcher, store Store, log zerolog.Logger, opts ...Option) *Service {
	s := &Service{
		fetcher:       fetcher,
		store:         store,
		log:           log,
		recentMonths:  DefaultRecentMonths,
		backfillDelay: DefaultBackfillDelay,
		now:           time.Now,
		sleep:         sleepContext,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func monthIndex(year, month int) int {
	return year*12 + month - 1
}

// IsRecent reports whether year/month is the month of now or one of the
// window-1 months before it. Future months are not recent.
func IsRecent(now time.Time, year, month, window int) bool {
	cur := monthIndex(now.Year(), int(now.Month()))
	idx := monthIndex(year, month)
	return idx <= cur && idx > cur-window
}

// GetMonth returns the payment rows of one month. Recent months are always
// fetched and overwrite the cache; older months come from the cache when it
// holds at least one real row.
func (s *Service) GetMonth(ctx context.Context, username string, creds siasisten.Credentials, year, month int) ([]siasisten.FinanceRecord, error) {
	rows, _, err := s.getMonth(ctx, username, creds, year, month)
	return rows, err
}

func (s *Service) getMonth(ctx context.Context, username string, creds siasisten.Credentials, year, month int) ([]siasisten.FinanceRecord, bool, error) {
	if username == "" {
		return nil, false, fmt.Errorf("%w: username wajib diisi", siasisten.ErrInvalidInput)
	}
	if month < 1 || month > 12 {
		return nil, false, fmt.Errorf("%w: bulan %d", siasisten.ErrInvalidInput, month)
	}
	key := Key{Username: username, Year: year, Month: month}

	if IsRecent(s.now(), year, month, s.recentMonths) {
		CacheLookupsTotal.WithLabelValues("revalidate").Inc()
		rows, err := s.fetchAndStore(ctx, key, creds)
		return rows, true, err
	}

	cached, err := s.store.Get(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key.String()).Msg("cache pembayaran tidak terbaca, ambil dari siasisten")
	} else if hasStatus(cached) {
		CacheLookupsTotal.WithLabelValues("hit").Inc()
		return withoutPlaceholders(cached), false, nil
	}

	CacheLookupsTotal.WithLabelValues("miss").Inc()
	rows, err := s.fetchAndStore(ctx, key, creds)
	return rows, true, err
}

func (s *Service) fetchAndStore(ctx context.Context, key Key, creds siasisten.Credentials) ([]siasisten.FinanceRecord, error) {
	rows, err := s.fetcher.ListPayments(ctx, creds, key.Year, key.Month)
	if err != nil {
		return nil, err
	}

	stored := rows
	if len(rows) == 0 {
		stored = []siasisten.FinanceRecord{{}}
	}
	if err := s.store.Replace(ctx, key, stored); err != nil {
		s.log.Warn().Err(err).Str("key", key.String()).Msg("gagal menyimpan cache pembayaran")
	}
	if rows == nil {
		rows = []siasisten.FinanceRecord{}
	}
	return rows, nil
}

// History walks back from the current month, one month at a time, and
// collects every real row. Months that needed the portal are spaced by the
// backfill delay.
func (s *Service) History(ctx context.Context, username string, creds siasisten.Credentials, months int) ([]siasisten.FinanceRecord, error) {
	if months < 1 {
		return nil, fmt.Errorf("%w: jumlah bulan %d", siasisten.ErrInvalidInput, months)
	}
	now := s.now()
	cur := monthIndex(now.Year(), int(now.Month()))

	all := []siasisten.FinanceRecord{}
	for i := 0; i < months; i++ {
		idx := cur - i
		year, month := idx/12, idx%12+1

		rows, fetched, err := s.getMonth(ctx, username, creds, year, month)
		if err != nil {
			return nil, fmt.Errorf("pembayaran %04d-%02d: %w", year, month, err)
		}
		all = append(all, rows...)

		if fetched && i < months-1 && s.backfillDelay > 0 {
			if err := s.sleep(ctx, s.backfillDelay); err != nil {
				return nil, err
			}
		}
	}
	return all, nil
}

func hasStatus(rows []siasisten.FinanceRecord) bool {
	for _, r := range rows {
		if r.Status != "" {
			return true
		}
	}
	return false
}

func withoutPlaceholders(rows []siasisten.FinanceRecord) []siasisten.FinanceRecord {
	out := make([]siasisten.FinanceRecord, 0, len(rows))
	for _, r := range rows {
		if !r.IsPlaceholder() {
			out = append(out, r)
		}
	}
	return out
}
