package domain

import (
	"fmt"

	"github.com/banksys/go-bank-ledger/pkg/money"
)

// accountNumberPrefix 帳號前綴
const accountNumberPrefix = "KZ"

// Account 帳戶
//
// ID/Title/Number/Currency/OwnerUsername 建立後不再變動；
// Balance 與 LoanDebt 只能在 ledger 臨界區內修改。
// Account 以值的方式進出 AccountStore，修改後需 Put 寫回。
type Account struct {
	ID            int64
	Title         string
	Number        string
	Currency      string
	OwnerUsername string
	Balance       money.Money
	LoanDebt      money.Money
}

// NewAccount 建立帳戶，帳號由 ID 推導
func NewAccount(id int64, title, currency, ownerUsername string, balance, loanDebt money.Money) Account {
	return Account{
		ID:            id,
		Title:         title,
		Number:        FormatAccountNumber(id),
		Currency:      currency,
		OwnerUsername: ownerUsername,
		Balance:       balance,
		LoanDebt:      loanDebt,
	}
}

// FormatAccountNumber 依帳戶 ID 產生帳號: "KZ" + 18 位十進位補零
func FormatAccountNumber(id int64) string {
	return fmt.Sprintf("%s%018d", accountNumberPrefix, id)
}

// Deposit 存入金額
func (a *Account) Deposit(amount money.Money) error {
	if amount.IsNegative() {
		return ErrAmountMustBePositive
	}

	a.Balance = a.Balance.Add(amount)
	return nil
}

// Withdraw 扣款，餘額不足時失敗且不改變任何狀態
func (a *Account) Withdraw(amount money.Money) error {
	if amount.IsNegative() {
		return ErrAmountMustBePositive
	}

	if a.Balance.LessThan(amount) {
		return ErrInsufficientBalance
	}

	a.Balance = a.Balance.Sub(amount)
	return nil
}

// DisburseLoan 撥付貸款: 本金入帳，應還總額累加到貸款負債
func (a *Account) DisburseLoan(principal, totalToRepay money.Money) {
	a.Balance = a.Balance.Add(principal)
	a.LoanDebt = a.LoanDebt.Add(totalToRepay)
}
