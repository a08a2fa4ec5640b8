package sberparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	p := New(DefaultConfig(), nil)

	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{"full name", "Выписка ПАО Сбербанк за январь", true},
		{"latin name", "SBERBANK statement", true},
		{"short name", "Сбер: операции по карте", true},
		{"card mention", "Карта MIR Сбер ****1234", true},
		{"other bank", "Тинькофф Банк выписка", false},
		{"plain text", "просто текст без банка", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, p.Detect(tc.text))
		})
	}
}

func TestParseDenseLine(t *testing.T) {
	p := New(DefaultConfig(), nil)

	text := "Сбербанк\n03.01.2026 14:30 Оплата в магазине Магнит 1500.50 ₽ баланс: 48499.50"
	txs := p.Parse(text)

	require.Len(t, txs, 1)
	tx := txs[0]
	assert.Equal(t, "2026-01-03", tx.Date)
	assert.Equal(t, "14:30", tx.Time)
	assert.Equal(t, "Оплата в магазине Магнит", tx.Description)
	assert.Equal(t, "-1500.5", tx.Amount.String())
	assert.Equal(t, "48499.5", tx.Balance.String())
}

func TestParseTwoLineFallback(t *testing.T) {
	p := New(DefaultConfig(), nil)

	text := "Сбербанк выписка\n" +
		"03.01.2026\n" +
		"Перевод на карту\n" +
		"1500.50 ₽"
	txs := p.Parse(text)

	require.Len(t, txs, 1)
	tx := txs[0]
	assert.Equal(t, "2026-01-03", tx.Date)
	assert.Equal(t, "", tx.Time)
	assert.Equal(t, "Перевод на карту", tx.Description)
	assert.Equal(t, "-1500.5", tx.Amount.String())
	assert.True(t, tx.Balance.IsZero())
}

func TestParseBalanceCarriedAcrossLines(t *testing.T) {
	p := New(DefaultConfig(), nil)

	text := "Сбербанк\n" +
		"баланс: 50 000.00\n" +
		"03.01.2026 10:00 Кофейня 450 ₽"
	txs := p.Parse(text)

	require.Len(t, txs, 1)
	assert.Equal(t, "50000", txs[0].Balance.String())
}

func TestParseForceDebitSign(t *testing.T) {
	line := "Сбербанк\n03.01.2026 Возврат средств +1500.00 ₽"

	t.Run("forced", func(t *testing.T) {
		p := New(Config{ForceDebitSign: true}, nil)
		txs := p.Parse(line)
		require.Len(t, txs, 1)
		assert.Equal(t, "-1500", txs[0].Amount.String())
	})

	t.Run("honoured", func(t *testing.T) {
		p := New(Config{ForceDebitSign: false}, nil)
		txs := p.Parse(line)
		require.Len(t, txs, 1)
		assert.Equal(t, "1500", txs[0].Amount.String())
	})

	t.Run("explicit debit untouched either way", func(t *testing.T) {
		debit := "Сбербанк\n03.01.2026 Оплата -200 ₽"
		for _, force := range []bool{true, false} {
			p := New(Config{ForceDebitSign: force}, nil)
			txs := p.Parse(debit)
			require.Len(t, txs, 1)
			assert.Equal(t, "-200", txs[0].Amount.String())
		}
	})
}

func TestParseDropsIncompleteRecords(t *testing.T) {
	p := New(DefaultConfig(), nil)

	tests := []struct {
		name string
		text string
	}{
		{"no description", "03.01.2026 1500.50 ₽"},
		{"zero amount", "03.01.2026 Комиссия 0 ₽"},
		{"amount without date context", "Перевод 500 ₽"},
		{"bare amount with no prior description", "03.01.2026\n500 ₽"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Empty(t, p.Parse(tc.text))
		})
	}
}

func TestParseMultipleTransactions(t *testing.T) {
	p := New(DefaultConfig(), nil)

	text := "Сбербанк выписка за январь\n" +
		"03.01.2026 09:15 Супермаркет Пятёрочка 820.30 ₽ баланс: 49179.70\n" +
		"04.01.2026 18:02 Такси 310 ₽ баланс: 48869.70\n" +
		"05.01.2026\n" +
		"Оплата связи\n" +
		"400 ₽"
	txs := p.Parse(text)

	require.Len(t, txs, 3)
	assert.Equal(t, "2026-01-03", txs[0].Date)
	assert.Equal(t, "Супермаркет Пятёрочка", txs[0].Description)
	assert.Equal(t, "2026-01-04", txs[1].Date)
	assert.Equal(t, "-310", txs[1].Amount.String())
	assert.Equal(t, "2026-01-05", txs[2].Date)
	assert.Equal(t, "Оплата связи", txs[2].Description)
	assert.Equal(t, "-400", txs[2].Amount.String())
	// A labelled balance is carried forward until replaced.
	assert.Equal(t, "48869.7", txs[2].Balance.String())
}
