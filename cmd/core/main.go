package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/banksys/go-bank-ledger/internal/app/core/adapter/out/memory"
	"github.com/banksys/go-bank-ledger/internal/app/core/usecase"
)

// Config cmd 層設定，目前只有種子帳戶
type Config struct {
	Seed []usecase.SeedAccount `yaml:"seed"`
}

func main() {
	ctx := context.Background()

	// 1. 載入設定
	cfg := loadConfig()

	// 2. 初始化記憶體儲存 (Base Infrastructure)
	accountStore := memory.NewAccountStore()
	historyLog := memory.NewHistoryLog()

	// 3. 初始化 UseCase
	ledger := usecase.NewLedgerService(accountStore, historyLog)

	// 4. 建立種子帳戶
	ledger.Seed(ctx, cfg.Seed)
	accounts := ledger.GetAccounts(ctx)
	log.Printf("Seeded %d accounts", len(accounts))
	if len(accounts) < 2 {
		log.Fatalf("need at least 2 seed accounts, got %d", len(accounts))
	}

	// 5. 示範操作: 轉帳 + 貸款
	transferResp, err := ledger.Transfer(ctx, usecase.TransferRequest{
		FromAccountID: accounts[0].ID,
		ToAccountID:   accounts[1].ID,
		Amount:        decimal.NewFromInt(1500),
		Description:   "demo transfer",
	})
	if err != nil {
		log.Fatalf("Transfer failed: %v", err)
	}
	log.Printf("Transfer done: %s -> %s, from balance %s",
		transferResp.FromAccount.OwnerUsername,
		transferResp.ToAccount.OwnerUsername,
		transferResp.FromAccount.Balance,
	)

	loanResp, err := ledger.TakeLoan(ctx, usecase.LoanRequest{
		AccountID: accounts[0].ID,
		Amount:    decimal.NewFromInt(10000),
	})
	if err != nil {
		log.Fatalf("TakeLoan failed: %v", err)
	}
	log.Printf("Loan approved: monthly=%s total=%s", loanResp.MonthlyPayment, loanResp.TotalToRepay)

	// 6. 輸出最終狀態
	dump("accounts", ledger.GetAccounts(ctx))
	dump("history", ledger.GetHistory(ctx, ""))
}

func dump(name string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Fatalf("Failed to marshal %s: %v", name, err)
	}
	log.Printf("%s: %s", name, data)
}

func loadConfig() Config {
	cfgData, err := os.ReadFile("config/config.yaml")
	if err != nil {
		// 找不到設定檔時使用內建示範帳戶
		log.Printf("Config not found (%v), using default demo seed", err)
		return Config{Seed: usecase.DefaultSeedAccounts()}
	}

	var cfg Config
	if err := yaml.Unmarshal(cfgData, &cfg); err != nil {
		log.Fatalf("Failed to parse config: %v", err)
	}

	// 補全種子預設 (如果 yaml 沒寫)
	if len(cfg.Seed) == 0 {
		cfg.Seed = usecase.DefaultSeedAccounts()
	}
	return cfg
}
