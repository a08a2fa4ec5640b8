package tinkoffparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	p := New(nil)

	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{"full name", "АО «Тинькофф Банк» выписка", true},
		{"latin name", "Tinkoff Bank statement", true},
		{"ocr missing soft sign", "Тинькоф банк", true},
		{"other bank", "ПАО Сбербанк", false},
		{"plain text", "выписка по счёту", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, p.Detect(tc.text))
		})
	}
}

func TestParseSingleLine(t *testing.T) {
	p := New(nil)

	text := "Тинькофф\n03.01.2026 14:30 Оплата в магазине -1500.50 ₽ баланс: 50000.00"
	txs := p.Parse(text)

	require.Len(t, txs, 1)
	tx := txs[0]
	assert.Equal(t, "2026-01-03", tx.Date)
	assert.Equal(t, "14:30", tx.Time)
	assert.Equal(t, "Оплата в магазине", tx.Description)
	assert.Equal(t, "-1500.5", tx.Amount.String())
	assert.Equal(t, "50000", tx.Balance.String())
}

func TestParseRequiresCurrencyGlyph(t *testing.T) {
	p := New(nil)

	// Bare numbers are card numbers, order ids, anything. Without the
	// glyph the line yields no transaction.
	assert.Empty(t, p.Parse("03.01.2026 14:30 Оплата 1500.50"))
}

func TestParseBalanceOnNextLine(t *testing.T) {
	p := New(nil)

	text := "03.01.2026 14:30 Кофейня -450 ₽\nбаланс: 12000 ₽"
	txs := p.Parse(text)

	require.Len(t, txs, 1)
	assert.Equal(t, "12000", txs[0].Balance.String())
}

func TestParseBalanceMissing(t *testing.T) {
	p := New(nil)

	txs := p.Parse("03.01.2026 Перекрёсток -820.30 ₽")
	require.Len(t, txs, 1)
	assert.True(t, txs[0].Balance.IsZero())
}

func TestParsePositiveAmountRecordedAsDebit(t *testing.T) {
	p := New(nil)

	txs := p.Parse("03.01.2026 Оплата подписки 500 ₽")
	require.Len(t, txs, 1)
	assert.Equal(t, "-500", txs[0].Amount.String())
}

func TestParseDropsIncompleteRecords(t *testing.T) {
	p := New(nil)

	tests := []struct {
		name string
		text string
	}{
		{"no date", "Оплата в магазине -1500.50 ₽"},
		{"no description", "03.01.2026 14:30 -1500.50 ₽"},
		{"zero amount", "03.01.2026 Комиссия 0 ₽"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Empty(t, p.Parse(tc.text))
		})
	}
}

func TestParseMultipleTransactions(t *testing.T) {
	p := New(nil)

	text := "Тинькофф Банк\n" +
		"03.01.2026 09:15 Яндекс Такси -310 ₽\n" +
		"баланс: 49690.00\n" +
		"04.01.2026 12:00 Лента -2 150,75 ₽ баланс: 47539.25"
	txs := p.Parse(text)

	require.Len(t, txs, 2)
	assert.Equal(t, "Яндекс Такси", txs[0].Description)
	assert.Equal(t, "-310", txs[0].Amount.String())
	assert.Equal(t, "49690", txs[0].Balance.String())
	assert.Equal(t, "2026-01-04", txs[1].Date)
	assert.Equal(t, "-2150.75", txs[1].Amount.String())
	assert.Equal(t, "47539.25", txs[1].Balance.String())
}
