package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/banksys/go-bank-ledger/pkg/money"
)

// BankUsername 銀行端的特殊使用者名稱，用於貸款撥付紀錄的來源端
const BankUsername = "BANK"

// TransferRecord 轉帳紀錄，建立後不再修改也不會被移除
type TransferRecord struct {
	// RecordID: 外部追蹤號 (UUID)
	RecordID uuid.UUID
	// FromUsername, ToUsername: 兩端使用者名稱 (貸款撥付時 From 為 BankUsername)
	FromUsername string
	ToUsername   string
	// Amount: 已正規化的金額
	Amount money.Money
	// Currency: 來源帳戶幣別
	Currency    string
	Description string
	CreatedAt   time.Time
}

// Involves 判斷使用者是否為此紀錄的任一端 (不分大小寫)
func (r *TransferRecord) Involves(username string) bool {
	return strings.EqualFold(username, r.FromUsername) ||
		strings.EqualFold(username, r.ToUsername)
}
