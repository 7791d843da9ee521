package money_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/banksys/go-bank-ledger/pkg/money"
)

func TestNew_Normalization(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "already two digits", raw: "10.00", want: "10.00"},
		{name: "half rounds up", raw: "10.005", want: "10.01"},
		{name: "below half rounds down", raw: "10.004", want: "10.00"},
		{name: "integer gains scale", raw: "7", want: "7.00"},
		{name: "long fraction", raw: "933.33333", want: "933.33"},
		{name: "zero", raw: "0", want: "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := money.New(decimal.RequireFromString(tt.raw))
			assert.Equal(t, tt.want, m.String())
		})
	}
}

func TestNew_Idempotent(t *testing.T) {
	inputs := []string{"0", "0.005", "10.004", "999.999", "123456.78", "0.01"}
	for _, raw := range inputs {
		once := money.New(decimal.RequireFromString(raw))
		twice := money.New(once.Decimal())
		assert.True(t, once.Equal(twice), "normalize(normalize(%s)) != normalize(%s)", raw, raw)
	}
}

func TestZeroValue(t *testing.T) {
	var m money.Money
	assert.True(t, m.IsZero())
	assert.Equal(t, "0.00", m.String())
	assert.True(t, m.Equal(money.Zero()))
}

func TestArithmetic(t *testing.T) {
	a := money.MustFromString("10.10")
	b := money.MustFromString("0.90")

	assert.Equal(t, "11.00", a.Add(b).String())
	assert.Equal(t, "9.20", a.Sub(b).String())
	// 10.10 * 1.12 = 11.312 -> 11.31
	assert.Equal(t, "11.31", a.Mul(decimal.RequireFromString("1.12")).String())
}

func TestDivInt_HalfUp(t *testing.T) {
	assert.Equal(t, "933.33", money.MustFromString("11200.00").DivInt(12).String())
	assert.Equal(t, "33.33", money.MustFromString("100.00").DivInt(3).String())
	// 2.00 / 3 = 0.666... -> 0.67
	assert.Equal(t, "0.67", money.MustFromString("2.00").DivInt(3).String())
	// 100.01 / 2 = 50.005 -> 50.01
	assert.Equal(t, "50.01", money.MustFromString("100.01").DivInt(2).String())
}

func TestComparisons(t *testing.T) {
	a := money.MustFromString("10.00")
	b := money.MustFromString("10.01")

	assert.Equal(t, -1, a.Cmp(b))
	assert.True(t, a.LessThan(b))
	assert.False(t, b.LessThan(a))
	assert.True(t, a.IsPositive())
	assert.True(t, a.Sub(b).IsNegative())
	assert.True(t, a.Sub(a).IsZero())
}

func TestJSONRoundTrip(t *testing.T) {
	m := money.MustFromString("750000")
	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `"750000.00"`, string(data))

	var back money.Money
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, m.Equal(back))
}

func TestUnmarshalYAML(t *testing.T) {
	var cfg struct {
		Balance money.Money `yaml:"balance"`
		Debt    money.Money `yaml:"debt"`
	}

	raw := "balance: 820000.505\ndebt: \"15000\"\n"
	require.NoError(t, yaml.Unmarshal([]byte(raw), &cfg))
	assert.Equal(t, "820000.51", cfg.Balance.String())
	assert.Equal(t, "15000.00", cfg.Debt.String())
}

func TestFromString_Invalid(t *testing.T) {
	_, err := money.FromString("not-a-number")
	assert.Error(t, err)
}
