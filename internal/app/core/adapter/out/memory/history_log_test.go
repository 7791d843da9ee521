package memory_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banksys/go-bank-ledger/internal/app/core/adapter/out/memory"
	"github.com/banksys/go-bank-ledger/internal/app/core/domain"
	"github.com/banksys/go-bank-ledger/pkg/money"
)

func newRecord(from, to, amount string) domain.TransferRecord {
	return domain.TransferRecord{
		RecordID:     uuid.New(),
		FromUsername: from,
		ToUsername:   to,
		Amount:       money.MustFromString(amount),
		Currency:     "KZT",
		CreatedAt:    time.Now(),
	}
}

func TestHistoryLog_AppendPreservesOrder(t *testing.T) {
	log := memory.NewHistoryLog()
	log.Append(newRecord("alice", "bob", "1.00"))
	log.Append(newRecord("bob", "carol", "2.00"))
	log.Append(newRecord("carol", "alice", "3.00"))

	all := log.ListAll()
	require.Len(t, all, 3)
	assert.Equal(t, "1.00", all[0].Amount.String())
	assert.Equal(t, "2.00", all[1].Amount.String())
	assert.Equal(t, "3.00", all[2].Amount.String())
}

func TestHistoryLog_SnapshotIsolation(t *testing.T) {
	log := memory.NewHistoryLog()
	log.Append(newRecord("alice", "bob", "1.00"))

	snapshot := log.ListAll()
	log.Append(newRecord("bob", "alice", "2.00"))

	// 快照不受後續 Append 影響
	assert.Len(t, snapshot, 1)
	assert.Len(t, log.ListAll(), 2)
}

func TestHistoryLog_ListFor(t *testing.T) {
	log := memory.NewHistoryLog()
	log.Append(newRecord("alice", "bob", "1.00"))
	log.Append(newRecord("BANK", "alice", "2.00"))
	log.Append(newRecord("bob", "carol", "3.00"))

	tests := []struct {
		name     string
		username string
		want     int
	}{
		{name: "from side, different case", username: "ALICE", want: 2},
		{name: "to side", username: "bob", want: 2},
		{name: "bank sentinel", username: "bank", want: 1},
		{name: "uninvolved user", username: "dave", want: 0},
		{name: "blank returns all", username: "", want: 3},
		{name: "whitespace returns all", username: "   ", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, log.ListFor(tt.username), tt.want)
		})
	}
}
