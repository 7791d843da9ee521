package memory

import (
	"strings"
	"sync"

	"github.com/banksys/go-bank-ledger/internal/app/core/domain"
	"github.com/banksys/go-bank-ledger/internal/app/core/usecase"
)

// HistoryLog 是以 Mutex 保護的 append-only 轉帳紀錄
// 插入順序即讀取順序，紀錄不重排也不丟棄
type HistoryLog struct {
	records []domain.TransferRecord
	mu      sync.Mutex
}

// NewHistoryLog 建立一個新的 HistoryLog 實例
func NewHistoryLog() *HistoryLog {
	return &HistoryLog{}
}

// Append 附加一筆紀錄
func (l *HistoryLog) Append(record domain.TransferRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, record)
}

// ListAll 回傳快照複本 (最舊在前)，之後的 Append 不影響已回傳的 slice
func (l *HistoryLog) ListAll() []domain.TransferRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	snapshot := make([]domain.TransferRecord, len(l.records))
	copy(snapshot, l.records)
	return snapshot
}

// ListFor 過濾任一端符合 username 的紀錄 (不分大小寫)；
// 空白字串回傳完整快照
func (l *HistoryLog) ListFor(username string) []domain.TransferRecord {
	if strings.TrimSpace(username) == "" {
		return l.ListAll()
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	filtered := make([]domain.TransferRecord, 0)
	for _, record := range l.records {
		if record.Involves(username) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

var _ usecase.HistoryLog = (*HistoryLog)(nil)
