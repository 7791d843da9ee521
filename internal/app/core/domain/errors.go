package domain

import (
	"errors"
	"fmt"
)

// 錯誤分類，呼叫端以 errors.Is 判斷類別:
//
//	InvalidArgument: 請求欄位缺失或不合法，修正請求後才可能成功
//	NotFound: 帳戶或使用者解析失敗
//	Conflict: 輸入合法但違反業務規則 (重送也不會成功)
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
)

var (
	// ErrAmountMustBePositive 金額必須為正數
	ErrAmountMustBePositive = fmt.Errorf("%w: amount must be positive", ErrInvalidArgument)

	// ErrMissingAccountID 未指定帳戶
	ErrMissingAccountID = fmt.Errorf("%w: account id is required", ErrInvalidArgument)

	// ErrSameAccount 轉出與轉入帳戶不可相同
	ErrSameAccount = fmt.Errorf("%w: from and to account must differ", ErrInvalidArgument)

	// ErrMissingUsername 未指定使用者名稱
	ErrMissingUsername = fmt.Errorf("%w: username is required", ErrInvalidArgument)

	// ErrSameUser 轉出與轉入使用者不可相同 (不分大小寫)
	ErrSameUser = fmt.Errorf("%w: from and to user must differ", ErrInvalidArgument)

	// ErrLoanBelowMinimum 貸款金額低於下限
	ErrLoanBelowMinimum = fmt.Errorf("%w: loan amount below minimum", ErrInvalidArgument)

	// ErrAccountNotFound 找不到帳戶
	ErrAccountNotFound = fmt.Errorf("%w: account not found", ErrNotFound)

	// ErrUserAccountNotFound 找不到使用者的帳戶
	ErrUserAccountNotFound = fmt.Errorf("%w: account for user not found", ErrNotFound)

	// ErrInsufficientBalance 餘額不足
	ErrInsufficientBalance = fmt.Errorf("%w: insufficient balance", ErrConflict)
)
