package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Scale 金額固定精度：小數點後 2 位
const Scale = 2

// Money 金額值物件
//
// 不變量:
//   - 內部數值永遠已正規化為小數點後 2 位 (HALF_UP)
//   - 所有運算結果在回傳前會再次正規化
//   - 零值即 0.00
//
// 注意: decimal.Round 是 round-half-away-from-zero，
// 對本系統處理的非負金額而言與 HALF_UP 完全相同。
type Money struct {
	value decimal.Decimal
}

// Zero 回傳 0.00
func Zero() Money {
	return Money{value: decimal.Zero}
}

// New 以 decimal 建立 Money 並正規化
// 冪等: New(New(d).Decimal()) == New(d)
func New(d decimal.Decimal) Money {
	return Money{value: d.Round(Scale)}
}

// FromString 解析字串金額 (如 "750000.00") 並正規化
func FromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("parse money %q: %w", s, err)
	}
	return New(d), nil
}

// MustFromString 同 FromString，解析失敗時 panic
// 只用於程式內建的字面值 (如種子資料)
func MustFromString(s string) Money {
	m, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Add 加法
func (m Money) Add(other Money) Money {
	return New(m.value.Add(other.value))
}

// Sub 減法
func (m Money) Sub(other Money) Money {
	return New(m.value.Sub(other.value))
}

// Mul 乘上係數，結果重新正規化
func (m Money) Mul(factor decimal.Decimal) Money {
	return New(m.value.Mul(factor))
}

// DivInt 除以整數 (如貸款期數)，商以 HALF_UP 捨入至 2 位
func (m Money) DivInt(n int64) Money {
	return Money{value: m.value.DivRound(decimal.NewFromInt(n), Scale)}
}

// Cmp 比較大小: -1 / 0 / +1
func (m Money) Cmp(other Money) int {
	return m.value.Cmp(other.value)
}

// Equal 數值相等
func (m Money) Equal(other Money) bool {
	return m.value.Equal(other.value)
}

// LessThan m < other
func (m Money) LessThan(other Money) bool {
	return m.value.LessThan(other.value)
}

// IsPositive m > 0
func (m Money) IsPositive() bool {
	return m.value.IsPositive()
}

// IsNegative m < 0
func (m Money) IsNegative() bool {
	return m.value.IsNegative()
}

// IsZero m == 0
func (m Money) IsZero() bool {
	return m.value.IsZero()
}

// Decimal 回傳底層 decimal 數值
func (m Money) Decimal() decimal.Decimal {
	return m.value
}

// String 固定兩位小數的字串表示 (如 "933.33")
func (m Money) String() string {
	return m.value.StringFixed(Scale)
}

// MarshalJSON 輸出固定兩位小數的字串 (如 "750000.00")
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.value.StringFixed(Scale) + `"`), nil
}

// UnmarshalJSON 接受帶引號或不帶引號的數值，解析後正規化
func (m *Money) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*m = Zero()
		return nil
	}
	parsed, err := FromString(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// UnmarshalYAML 接受純量節點 (750000.00 或 "750000.00")，解析後正規化
func (m *Money) UnmarshalYAML(value *yaml.Node) error {
	if value.Value == "" {
		*m = Zero()
		return nil
	}
	parsed, err := FromString(value.Value)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MarshalYAML 輸出固定兩位小數的字串
func (m Money) MarshalYAML() (any, error) {
	return m.value.StringFixed(Scale), nil
}
