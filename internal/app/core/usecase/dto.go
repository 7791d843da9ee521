package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/banksys/go-bank-ledger/internal/app/core/domain"
	"github.com/banksys/go-bank-ledger/pkg/money"
)

// TransferRequest 帳戶間轉帳請求
// Amount 為原始輸入，正規化在核心邏輯內進行
type TransferRequest struct {
	FromAccountID int64           `json:"fromAccountId"`
	ToAccountID   int64           `json:"toAccountId"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
}

// TransferByUserRequest 依使用者名稱轉帳請求
type TransferByUserRequest struct {
	FromUsername string          `json:"fromUsername"`
	ToUsername   string          `json:"toUsername"`
	Amount       decimal.Decimal `json:"amount"`
	Description  string          `json:"description"`
}

// LoanRequest 貸款請求
//
// TermMonths 為 0 視為未填 (帶入預設期數)；
// Rate 使用指標以區分「未填」(帶入預設利率) 與「明確填 0」。
type LoanRequest struct {
	AccountID  int64            `json:"accountId"`
	Amount     decimal.Decimal  `json:"amount"`
	TermMonths int              `json:"termMonths,omitempty"`
	Rate       *decimal.Decimal `json:"rate,omitempty"`
}

// AccountDTO 帳戶快照
type AccountDTO struct {
	ID            int64       `json:"id"`
	Title         string      `json:"title"`
	Number        string      `json:"number"`
	Currency      string      `json:"currency"`
	Balance       money.Money `json:"balance"`
	LoanDebt      money.Money `json:"loanDebt"`
	OwnerUsername string      `json:"ownerUsername"`
}

// TransferResponse 轉帳結果: 雙邊帳戶的異動後快照
type TransferResponse struct {
	Status      string     `json:"status"`
	Message     string     `json:"message"`
	FromAccount AccountDTO `json:"fromAccount"`
	ToAccount   AccountDTO `json:"toAccount"`
}

// LoanResponse 貸款結果
type LoanResponse struct {
	Status         string      `json:"status"`
	Message        string      `json:"message"`
	MonthlyPayment money.Money `json:"monthlyPayment"`
	TotalToRepay   money.Money `json:"totalToRepay"`
	Account        AccountDTO  `json:"account"`
}

// TransferHistoryItem 歷史查詢項目
type TransferHistoryItem struct {
	FromUsername string      `json:"fromUsername"`
	ToUsername   string      `json:"toUsername"`
	Amount       money.Money `json:"amount"`
	Currency     string      `json:"currency"`
	Description  string      `json:"description"`
	CreatedAt    time.Time   `json:"createdAt"`
}

// SeedAccount 種子帳戶設定
// Title/Currency 留空時由 Seed 補上預設值
type SeedAccount struct {
	Username string      `yaml:"username" json:"username"`
	Title    string      `yaml:"title" json:"title"`
	Currency string      `yaml:"currency" json:"currency"`
	Balance  money.Money `yaml:"balance" json:"balance"`
	LoanDebt money.Money `yaml:"loanDebt" json:"loanDebt"`
}

func toAccountDTO(account domain.Account) AccountDTO {
	return AccountDTO{
		ID:            account.ID,
		Title:         account.Title,
		Number:        account.Number,
		Currency:      account.Currency,
		Balance:       account.Balance,
		LoanDebt:      account.LoanDebt,
		OwnerUsername: account.OwnerUsername,
	}
}

func toHistoryItem(record domain.TransferRecord) TransferHistoryItem {
	return TransferHistoryItem{
		FromUsername: record.FromUsername,
		ToUsername:   record.ToUsername,
		Amount:       record.Amount,
		Currency:     record.Currency,
		Description:  record.Description,
		CreatedAt:    record.CreatedAt,
	}
}
