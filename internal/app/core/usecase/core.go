package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/banksys/go-bank-ledger/internal/app/core/domain"
	"github.com/banksys/go-bank-ledger/pkg/money"
)

// 固定參數，與既有對外行為綁定，不可隨意調整
const (
	// DefaultSeedTitle 種子帳戶名稱
	DefaultSeedTitle = "Основной счёт"
	// DefaultSeedCurrency 種子帳戶幣別
	DefaultSeedCurrency = "KZT"
	// DefaultLoanTermMonths 預設貸款期數
	DefaultLoanTermMonths = 12

	// loanDescription 貸款撥付紀錄的固定摘要
	loanDescription = "Кредит: пополнение по кредиту"

	statusOK        = "ok"
	transferMessage = "Перевод выполнен"
	loanMessage     = "Кредит одобрен и зачислен на счёт"
)

var (
	// DefaultLoanRate 預設年利率 12%
	DefaultLoanRate = decimal.RequireFromString("0.12")
	// MinLoanAmount 貸款金額下限 (以正規化前的原始輸入檢查)
	MinLoanAmount = decimal.NewFromInt(1000)
)

// LedgerService 是核心帳務邏輯層
//
// 併發模型:
//   - 變更操作 (Transfer / TransferByUsername / TakeLoan / Seed) 全程持有
//     ledger 級別的互斥鎖，任兩個變更操作絕不交錯
//   - 讀取操作 (GetAccounts / GetHistory) 不取鎖，直接讀取
//     線程安全的底層儲存並回傳獨立快照
type LedgerService struct {
	accounts AccountStore
	history  HistoryLog

	// mu 讓餘額檢查、雙邊異動與歷史寫入構成單一臨界區
	mu sync.Mutex
}

// NewLedgerService 建立一個新的 LedgerService 實例
func NewLedgerService(accounts AccountStore, history HistoryLog) *LedgerService {
	return &LedgerService{
		accounts: accounts,
		history:  history,
	}
}

// Transfer 帳戶間轉帳
//
// 餘額檢查、雙邊異動與歷史寫入在同一臨界區內完成，
// 任一步失敗都不會留下部分變更。
func (s *LedgerService) Transfer(ctx context.Context, req TransferRequest) (*TransferResponse, error) {
	if err := validateTransfer(req); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transferLocked(req)
}

// transferLocked 執行轉帳核心邏輯，呼叫端必須已持有 s.mu
func (s *LedgerService) transferLocked(req TransferRequest) (*TransferResponse, error) {
	from, err := s.accounts.GetByID(req.FromAccountID)
	if err != nil {
		return nil, fmt.Errorf("from account %d: %w", req.FromAccountID, err)
	}
	to, err := s.accounts.GetByID(req.ToAccountID)
	if err != nil {
		return nil, fmt.Errorf("to account %d: %w", req.ToAccountID, err)
	}

	amount := money.New(req.Amount)
	if err := from.Withdraw(amount); err != nil {
		return nil, err
	}
	if err := to.Deposit(amount); err != nil {
		return nil, err
	}

	s.accounts.Put(from)
	s.accounts.Put(to)

	s.history.Append(domain.TransferRecord{
		RecordID:     uuid.New(),
		FromUsername: from.OwnerUsername,
		ToUsername:   to.OwnerUsername,
		Amount:       amount,
		Currency:     from.Currency,
		Description:  req.Description,
		CreatedAt:    time.Now(),
	})

	return &TransferResponse{
		Status:      statusOK,
		Message:     transferMessage,
		FromAccount: toAccountDTO(from),
		ToAccount:   toAccountDTO(to),
	}, nil
}

// TransferByUsername 依使用者名稱轉帳
// 先將兩端解析為帳戶，再委派給 Transfer (共用其語意與臨界區)
func (s *LedgerService) TransferByUsername(ctx context.Context, req TransferByUserRequest) (*TransferResponse, error) {
	if err := validateTransferByUser(req); err != nil {
		return nil, err
	}

	from, err := s.accounts.GetByUsername(req.FromUsername)
	if err != nil {
		return nil, fmt.Errorf("user %q: %w", req.FromUsername, err)
	}
	to, err := s.accounts.GetByUsername(req.ToUsername)
	if err != nil {
		return nil, fmt.Errorf("user %q: %w", req.ToUsername, err)
	}

	return s.Transfer(ctx, TransferRequest{
		FromAccountID: from.ID,
		ToAccountID:   to.ID,
		Amount:        req.Amount,
		Description:   req.Description,
	})
}

// TakeLoan 申請貸款並立即撥付本金
//
// 計算順序: 先將應還總額正規化，再以「已捨入的總額」除以期數。
// 這個順序與既有對外行為綁定，調換會改變邊界案例的分位。
func (s *LedgerService) TakeLoan(ctx context.Context, req LoanRequest) (*LoanResponse, error) {
	if err := validateLoan(req); err != nil {
		return nil, err
	}

	term := req.TermMonths
	if term <= 0 {
		term = DefaultLoanTermMonths
	}
	rate := DefaultLoanRate
	if req.Rate != nil {
		rate = *req.Rate
	}
	if rate.IsNegative() {
		rate = decimal.Zero
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.accounts.GetByID(req.AccountID)
	if err != nil {
		return nil, fmt.Errorf("account %d: %w", req.AccountID, err)
	}

	principal := money.New(req.Amount)
	totalToRepay := principal.Mul(decimal.NewFromInt(1).Add(rate))
	monthlyPayment := totalToRepay.DivInt(int64(term))

	account.DisburseLoan(principal, totalToRepay)
	s.accounts.Put(account)

	s.history.Append(domain.TransferRecord{
		RecordID:     uuid.New(),
		FromUsername: domain.BankUsername,
		ToUsername:   account.OwnerUsername,
		Amount:       principal,
		Currency:     account.Currency,
		Description:  loanDescription,
		CreatedAt:    time.Now(),
	})

	return &LoanResponse{
		Status:         statusOK,
		Message:        loanMessage,
		MonthlyPayment: monthlyPayment,
		TotalToRepay:   totalToRepay,
		Account:        toAccountDTO(account),
	}, nil
}

// GetAccounts 回傳所有帳戶快照 (ID 遞增)，不取 ledger 鎖
func (s *LedgerService) GetAccounts(ctx context.Context) []AccountDTO {
	accounts := s.accounts.ListAll()
	result := make([]AccountDTO, 0, len(accounts))
	for _, account := range accounts {
		result = append(result, toAccountDTO(account))
	}
	return result
}

// GetHistory 回傳轉帳紀錄快照 (最舊在前)；username 為空時回傳全部
func (s *LedgerService) GetHistory(ctx context.Context, username string) []TransferHistoryItem {
	records := s.history.ListFor(username)
	result := make([]TransferHistoryItem, 0, len(records))
	for _, record := range records {
		result = append(result, toHistoryItem(record))
	}
	return result
}

// Seed 建立種子帳戶
// 冪等: 已有任何帳戶時整批不做事。未填的 Title/Currency 補上預設值。
func (s *LedgerService) Seed(ctx context.Context, seeds []SeedAccount) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.accounts.Count() > 0 {
		return
	}

	for _, seed := range seeds {
		title := seed.Title
		if title == "" {
			title = DefaultSeedTitle
		}
		currency := seed.Currency
		if currency == "" {
			currency = DefaultSeedCurrency
		}

		id := s.accounts.NextID()
		s.accounts.Put(domain.NewAccount(id, title, currency, seed.Username, seed.Balance, seed.LoanDebt))
	}
}

// SeedDemoAccounts 建立內建示範帳戶
func (s *LedgerService) SeedDemoAccounts(ctx context.Context) {
	s.Seed(ctx, DefaultSeedAccounts())
}

// DefaultSeedAccounts 內建示範帳戶 (一人一帳戶)
func DefaultSeedAccounts() []SeedAccount {
	return []SeedAccount{
		{Username: "employee1", Balance: money.MustFromString("750000.00")},
		{Username: "manager1", Balance: money.MustFromString("820000.50"), LoanDebt: money.MustFromString("60000.00")},
		{Username: "admin1", Balance: money.MustFromString("1250000.00")},
		{Username: "demo1", Balance: money.MustFromString("350000.00")},
		{Username: "demo2", Balance: money.MustFromString("270000.00"), LoanDebt: money.MustFromString("15000.00")},
	}
}

func validateTransfer(req TransferRequest) error {
	if req.FromAccountID == 0 || req.ToAccountID == 0 {
		return domain.ErrMissingAccountID
	}
	if req.FromAccountID == req.ToAccountID {
		return domain.ErrSameAccount
	}
	if !req.Amount.IsPositive() {
		return domain.ErrAmountMustBePositive
	}
	return nil
}

func validateTransferByUser(req TransferByUserRequest) error {
	if req.FromUsername == "" || req.ToUsername == "" {
		return domain.ErrMissingUsername
	}
	if strings.EqualFold(req.FromUsername, req.ToUsername) {
		return domain.ErrSameUser
	}
	if !req.Amount.IsPositive() {
		return domain.ErrAmountMustBePositive
	}
	return nil
}

func validateLoan(req LoanRequest) error {
	if req.AccountID == 0 {
		return domain.ErrMissingAccountID
	}
	if req.Amount.LessThan(MinLoanAmount) {
		return domain.ErrLoanBelowMinimum
	}
	return nil
}
