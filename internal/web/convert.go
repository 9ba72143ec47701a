package web

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateTimeLayout 表单日期时间格式，对应 datetime-local 输入框
const DateTimeLayout = "2006-01-02T15:04"

// 数量与价格列为 decimal(20,8)
const (
	AmountScale         = 8
	AmountIntegerDigits = 20 - AmountScale
)

// FitsAmount 判断数值字符串能否无损存入 decimal(20,8) 列
func FitsAmount(s string) bool {
	s = strings.TrimLeft(strings.TrimSpace(s), "+-")
	intPart, fracPart, _ := strings.Cut(s, ".")
	intPart = strings.TrimLeft(intPart, "0")
	fracPart = strings.TrimRight(fracPart, "0")
	return len(intPart) <= AmountIntegerDigits && len(fracPart) <= AmountScale
}

// NullDecimal 解析可选数值，空串或非法输入为 NULL
func NullDecimal(s string) decimal.NullDecimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

// Decimal 解析必填数值，非法输入为零
func Decimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// DecimalString 表单回显
func DecimalString(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.String()
}

// NullInt 解析可选整数
func NullInt(s string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &n
}

// Int 解析必填整数，非法输入为零
func Int(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}

// IntString 表单回显
func IntString(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

// DateTime 解析可选日期时间
func DateTime(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	t, err := time.ParseInLocation(DateTimeLayout, s, time.Local)
	if err != nil {
		return nil
	}
	return &t
}

// DateTimeString 表单回显
func DateTimeString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateTimeLayout)
}
