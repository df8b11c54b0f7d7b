package finance

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"siasistenApi/internal/siasisten"
)

func NewTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	store, err := ConnectRedis(context.Background(), RedisConfig{Addr: mr.Addr()})
	require.NoError(t, err, "failed to connect to test redis")

	t.Cleanup(func() {
		store.Close()
	})
	return store, mr
}

func TestRedisStore_ReplaceGet(t *testing.T) {
	store, mr := NewTestRedisStore(t)
	ctx := context.Background()
	key := Key{Username: "budi", Year: 2024, Month: 1}

	rows, err := store.Get(ctx, key)
	require.NoError(t, err)
	require.Nil(t, rows)

	want := []siasisten.FinanceRecord{
		record("DDP", "Rp 500.000,00", "Dibayar"),
		record("SDA", "Rp 250.000,00", "Diproses"),
	}
	require.NoError(t, store.Replace(ctx, key, want))
	require.True(t, mr.Exists("finance:budi:2024:1"))

	rows, err = store.Get(ctx, key)
	require.NoError(t, err)
	require.Equal(t, want, rows)
}

func TestRedisStore_ReplaceOverwritesOnlyItsKey(t *testing.T) {
	store, _ := NewTestRedisStore(t)
	ctx := context.Background()
	jan := Key{Username: "budi", Year: 2024, Month: 1}
	other := Key{Username: "ani", Year: 2024, Month: 1}

	require.NoError(t, store.Replace(ctx, jan, []siasisten.FinanceRecord{
		record("DDP", "Rp 1,00", "Diproses"),
		record("SDA", "Rp 2,00", "Diproses"),
	}))
	require.NoError(t, store.Replace(ctx, other, []siasisten.FinanceRecord{record("DDP", "Rp 4,00", "Dibayar")}))

	require.NoError(t, store.Replace(ctx, jan, []siasisten.FinanceRecord{record("DDP", "Rp 1,00", "Dibayar")}))

	rows, err := store.Get(ctx, jan)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Dibayar", rows[0].Status)

	rows, err = store.Get(ctx, other)
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestRedisStore_Placeholder(t *testing.T) {
	store, _ := NewTestRedisStore(t)
	ctx := context.Background()
	key := Key{Username: "budi", Year: 2023, Month: 6}

	require.NoError(t, store.Replace(ctx, key, []siasisten.FinanceRecord{{}}))

	rows, err := store.Get(ctx, key)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.True(t, rows[0].IsPlaceholder())
}

func TestRedisStore_CorruptValueIsCacheError(t *testing.T) {
	store, mr := NewTestRedisStore(t)
	require.NoError(t, mr.Set("finance:budi:2024:1", "not json"))

	_, err := store.Get(context.Background(), Key{Username: "budi", Year: 2024, Month: 1})
	require.ErrorIs(t, err, ErrCache)
}

func TestConnectRedis_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := ConnectRedis(context.Background(), RedisConfig{Addr: addr, Timeout: 200 * time.Millisecond})
	require.Error(t, err)
}

func TestService_OnRedisStore(t *testing.T) {
	store, _ := NewTestRedisStore(t)
	f := &stubFetcher{rows: map[fetchCall][]siasisten.FinanceRecord{
		{2023, 6}: {record("DDP", "Rp 500.000,00", "Dibayar")},
	}}
	svc := newTestService(f, store)
	ctx := context.Background()

	first, err := svc.GetMonth(ctx, "budi", creds, 2023, 6)
	require.NoError(t, err)
	second, err := svc.GetMonth(ctx, "budi", creds, 2023, 6)
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Len(t, f.calls, 1)
}
