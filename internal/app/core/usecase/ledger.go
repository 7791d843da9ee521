package usecase

import (
	"github.com/banksys/go-bank-ledger/internal/app/core/domain"
)

// AccountStore 是帳戶儲存的介面
//
// 所有回傳值皆為複本，呼叫端修改後需以 Put 寫回。
// AccountStore 只保證單次呼叫的併發安全；跨帳戶的不變量
// (如轉帳前後總額不變) 由 LedgerService 的臨界區負責。
type AccountStore interface {
	// NextID 配發全局唯一且嚴格遞增的帳戶 ID (1, 2, 3...)
	NextID() int64
	// Put 以 ID 新增或覆寫帳戶，並更新使用者索引
	Put(account domain.Account)
	// GetByID 取得帳戶複本
	GetByID(id int64) (domain.Account, error)
	// GetByUsername 依使用者名稱取得帳戶 (一人一帳戶)
	GetByUsername(username string) (domain.Account, error)
	// ListAll 依 ID 遞增排序回傳所有帳戶複本
	ListAll() []domain.Account
	// Count 目前帳戶數
	Count() int
}

// HistoryLog 是轉帳紀錄的介面 (append-only)
type HistoryLog interface {
	// Append 附加一筆紀錄，保證插入順序，不重排也不丟棄
	Append(record domain.TransferRecord)
	// ListAll 回傳所有紀錄的快照 (最舊在前)
	ListAll() []domain.TransferRecord
	// ListFor 回傳任一端符合 username 的紀錄 (不分大小寫)；
	// 空白字串回傳完整快照
	ListFor(username string) []domain.TransferRecord
}
