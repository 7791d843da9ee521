package memory

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/banksys/go-bank-ledger/internal/app/core/domain"
	"github.com/banksys/go-bank-ledger/internal/app/core/usecase"
)

// AccountStore 是以 RWMutex 保護的記憶體帳戶儲存
//
// 結構:
//
//	accounts: 帳戶資料 Map (以 ID 為 key)
//	byUsername: 使用者名稱 -> 帳戶 ID 索引
//	mu: RWMutex 保護兩個 Map
//	idSeq: 帳戶 ID 序號產生器
//
// 帳戶以值的方式存取，讀取永遠拿到一致的複本，
// 與 LedgerService 的變更不會產生資料競爭。
type AccountStore struct {
	accounts   map[int64]domain.Account
	byUsername map[string]int64
	mu         sync.RWMutex
	idSeq      atomic.Int64
}

// NewAccountStore 建立一個新的 AccountStore 實例
func NewAccountStore() *AccountStore {
	return &AccountStore{
		accounts:   make(map[int64]domain.Account),
		byUsername: make(map[string]int64),
	}
}

// NextID 配發下一個帳戶 ID (1, 2, 3...)
func (s *AccountStore) NextID() int64 {
	return s.idSeq.Add(1)
}

// Put 以 ID 新增或覆寫帳戶，同時更新使用者索引 (last-write-wins)
func (s *AccountStore) Put(account domain.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[account.ID] = account
	if account.OwnerUsername != "" {
		s.byUsername[account.OwnerUsername] = account.ID
	}
}

// GetByID 取得帳戶複本
func (s *AccountStore) GetByID(id int64) (domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.accounts[id]
	if !ok {
		return domain.Account{}, domain.ErrAccountNotFound
	}
	return account, nil
}

// GetByUsername 依使用者名稱取得帳戶複本
func (s *AccountStore) GetByUsername(username string) (domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byUsername[username]
	if !ok {
		return domain.Account{}, domain.ErrUserAccountNotFound
	}
	account, ok := s.accounts[id]
	if !ok {
		return domain.Account{}, domain.ErrAccountNotFound
	}
	return account, nil
}

// ListAll 依 ID 遞增排序回傳所有帳戶複本
func (s *AccountStore) ListAll() []domain.Account {
	s.mu.RLock()
	result := make([]domain.Account, 0, len(s.accounts))
	for _, account := range s.accounts {
		result = append(result, account)
	}
	s.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Count 目前帳戶數
func (s *AccountStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.accounts)
}

var _ usecase.AccountStore = (*AccountStore)(nil)
