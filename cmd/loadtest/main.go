package main

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"github.com/banksys/go-bank-ledger/internal/app/core/adapter/out/memory"
	"github.com/banksys/go-bank-ledger/internal/app/core/usecase"
	"github.com/banksys/go-bank-ledger/pkg/money"
)

const (
	TotalCount  = 100000
	Concurrency = 100
)

func main() {
	ctx := context.Background()

	// 1. 組裝 in-process ledger 並建立種子帳戶
	accountStore := memory.NewAccountStore()
	historyLog := memory.NewHistoryLog()
	ledger := usecase.NewLedgerService(accountStore, historyLog)
	ledger.SeedDemoAccounts(ctx)

	accounts := ledger.GetAccounts(ctx)
	if len(accounts) < 2 {
		log.Fatalf("need at least 2 accounts, got %d", len(accounts))
	}
	before := totalBalance(accounts)

	// 2. 併發打入轉帳
	var wg sync.WaitGroup
	wg.Add(TotalCount)

	sem := make(chan struct{}, Concurrency)

	var okCount atomic.Int64
	startTime := time.Now()

	for i := 0; i < TotalCount; i++ {
		sem <- struct{}{}

		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }()

			from := accounts[idx%len(accounts)]
			to := accounts[(idx+1)%len(accounts)]
			_, err := ledger.Transfer(ctx, usecase.TransferRequest{
				FromAccountID: from.ID,
				ToAccountID:   to.ID,
				Amount:        decimal.NewFromInt(1),
				Description:   "loadtest",
			})
			if err != nil {
				if idx%10000 == 0 {
					log.Printf("Transfer %d failed: %v", idx, err)
				}
				return
			}
			okCount.Add(1)
		}(i)
	}

	wg.Wait()
	elapsed := time.Since(startTime)

	// 3. 驗證總額守恆
	after := totalBalance(ledger.GetAccounts(ctx))
	if !before.Equal(after) {
		log.Fatalf("balance conservation violated: before=%s after=%s", before, after)
	}

	fmt.Printf("Completed %d requests (%d ok) in %v\n", TotalCount, okCount.Load(), elapsed)
	fmt.Printf("TPS: %.2f\n", float64(TotalCount)/elapsed.Seconds())
	fmt.Printf("Total balance: %s (unchanged)\n", after)
}

// totalBalance 加總所有帳戶餘額
func totalBalance(accounts []usecase.AccountDTO) money.Money {
	total := money.Zero()
	for _, account := range accounts {
		total = total.Add(account.Balance)
	}
	return total
}
