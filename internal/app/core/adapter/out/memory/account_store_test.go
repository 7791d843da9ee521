package memory_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banksys/go-bank-ledger/internal/app/core/adapter/out/memory"
	"github.com/banksys/go-bank-ledger/internal/app/core/domain"
	"github.com/banksys/go-bank-ledger/pkg/money"
)

func newAccount(id int64, username, balance string) domain.Account {
	return domain.NewAccount(id, "Основной счёт", "KZT", username, money.MustFromString(balance), money.Zero())
}

func TestAccountStore_NextID(t *testing.T) {
	store := memory.NewAccountStore()
	for want := int64(1); want <= 5; want++ {
		assert.Equal(t, want, store.NextID())
	}
}

func TestAccountStore_NextID_ConcurrentUnique(t *testing.T) {
	store := memory.NewAccountStore()

	const workers = 50
	ids := make(chan int64, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			ids <- store.NextID()
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers)
}

func TestAccountStore_PutGet(t *testing.T) {
	store := memory.NewAccountStore()
	store.Put(newAccount(1, "demo1", "100.00"))

	byID, err := store.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "demo1", byID.OwnerUsername)

	byUser, err := store.GetByUsername("demo1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), byUser.ID)

	assert.Equal(t, 1, store.Count())
}

func TestAccountStore_NotFound(t *testing.T) {
	store := memory.NewAccountStore()

	_, err := store.GetByID(99)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = store.GetByUsername("ghost")
	assert.ErrorIs(t, err, domain.ErrUserAccountNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAccountStore_ListAllOrdered(t *testing.T) {
	store := memory.NewAccountStore()
	store.Put(newAccount(3, "c", "1.00"))
	store.Put(newAccount(1, "a", "1.00"))
	store.Put(newAccount(2, "b", "1.00"))

	all := store.ListAll()
	require.Len(t, all, 3)
	for i, account := range all {
		assert.Equal(t, int64(i+1), account.ID)
	}
}

func TestAccountStore_ReturnsCopies(t *testing.T) {
	store := memory.NewAccountStore()
	store.Put(newAccount(1, "demo1", "100.00"))

	got, err := store.GetByID(1)
	require.NoError(t, err)
	require.NoError(t, got.Deposit(money.MustFromString("900.00")))

	// 尚未 Put 寫回，儲存內容不受影響
	again, err := store.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "100.00", again.Balance.String())
}

func TestAccountStore_PutOverwrite(t *testing.T) {
	store := memory.NewAccountStore()
	store.Put(newAccount(1, "demo1", "100.00"))
	store.Put(newAccount(1, "demo1", "250.00"))

	got, err := store.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "250.00", got.Balance.String())
	assert.Equal(t, 1, store.Count())
}
