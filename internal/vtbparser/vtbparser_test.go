package vtbparser

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
		{"full name", "Банк ВТБ (ПАО) выписка", true},
		{"latin name", "VTB Bank statement", true},
		{"legacy brand", "ВТБ24 операции", true},
		{"other bank", "Тинькофф Банк", false},
		{"plain text", "выписка по счёту", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, p.Detect(tc.text))
		})
	}
}

func TestParseTwoAmounts(t *testing.T) {
	p := New(nil)

	txs := p.Parse("ВТБ\n03.01.2026 Оплата проезда 55.00 12445.00")

	require.Len(t, txs, 1)
	tx := txs[0]
	assert.Equal(t, "2026-01-03", tx.Date)
	assert.Equal(t, "Оплата проезда", tx.Description)
	assert.Equal(t, "-55", tx.Amount.String())
	assert.Equal(t, "12445", tx.Balance.String())
}

func TestParseSingleAmount(t *testing.T) {
	p := New(nil)

	txs := p.Parse("03.01.2026 Перевод другу 500.00")

	require.Len(t, txs, 1)
	assert.Equal(t, "-500", txs[0].Amount.String())
	assert.True(t, txs[0].Balance.IsZero())
}

func TestParseNumericTokenInDescription(t *testing.T) {
	p := New(nil)

	// With three numeric tokens the last two are amount and balance; the
	// one inside the description stays descriptive.
	txs := p.Parse("03.01.2026 Оплата заказа 123 55.00 12445.00")

	require.Len(t, txs, 1)
	assert.Equal(t, "Оплата заказа", txs[0].Description)
	assert.Equal(t, "-55", txs[0].Amount.String())
	assert.Equal(t, "12445", txs[0].Balance.String())
}

func TestParseTimeToken(t *testing.T) {
	p := New(nil)

	txs := p.Parse("03.01.2026 12:45 Такси 300.00 10000.00")

	require.Len(t, txs, 1)
	assert.Equal(t, "12:45", txs[0].Time)
	assert.Equal(t, "Такси", txs[0].Description)
	assert.Equal(t, "-300", txs[0].Amount.String())
	assert.Equal(t, "10000", txs[0].Balance.String())
}

func TestParseSpaceGroupedBalance(t *testing.T) {
	p := New(nil)

	txs := p.Parse("03.01.2026 Аптека 260.40 баланс: 9 740")

	require.Len(t, txs, 1)
	assert.Equal(t, "Аптека", txs[0].Description)
	assert.Equal(t, "-260.4", txs[0].Amount.String())
	assert.Equal(t, "9740", txs[0].Balance.String())
}

func TestParseDropsIncompleteRecords(t *testing.T) {
	p := New(nil)

	tests := []struct {
		name string
		text string
	}{
		{"no date", "Оплата проезда 55.00 12445.00"},
		{"no description", "03.01.2026 55.00 12445.00"},
		{"zero amount", "03.01.2026 Комиссия 0.00 5000.00"},
		{"no numeric tokens", "03.01.2026 Справка по счёту"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Empty(t, p.Parse(tc.text))
		})
	}
}
