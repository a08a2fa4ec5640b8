package categorizer

import (
	"strings"

	"alebedev/statement-parser/internal/models"
)

// CategoryConfig binds one category label to its match keywords.
type CategoryConfig struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// defaultKeywords is the compiled-in keyword table. Order matters: the
// first category with any hit wins, so more specific merchant lists come
// before the broad shopping bucket. Keywords are matched case-insensitively
// as substrings of the description.
var defaultKeywords = []CategoryConfig{
	{Name: models.CategoryFood, Keywords: []string{
		"магнит", "пятерочка", "пятёрочка", "перекресток", "перекрёсток",
		"ашан", "лента", "дикси", "вкусвилл", "продукты", "супермаркет",
		"макдоналдс", "mcdonald", "kfc", "бургер", "burger", "кафе",
		"ресторан", "столовая", "пекарня", "яндекс еда", "delivery",
	}},
	{Name: models.CategoryTransport, Keywords: []string{
		"метро", "такси", "taxi", "uber", "автобус", "троллейбус",
		"проезд", "азс", "лукойл", "газпромнефть", "роснефть", "бензин",
		"каршеринг", "аэроэкспресс", "ржд", "электричка",
	}},
	{Name: models.CategoryEntertainment, Keywords: []string{
		"кино", "кинотеатр", "театр", "концерт", "музей", "боулинг",
		"аттракцион", "steam", "netflix", "иви", "кинопоиск", "игры",
	}},
	{Name: models.CategoryUtilities, Keywords: []string{
		"жкх", "квартплата", "электроэнергия", "мосэнерго", "водоканал",
		"отопление", "интернет", "мтс", "билайн", "мегафон", "теле2",
		"ростелеком", "связь",
	}},
	{Name: models.CategoryHealth, Keywords: []string{
		"аптека", "клиника", "больница", "врач", "стоматолог", "анализы",
		"инвитро", "медицина", "поликлиника",
	}},
	{Name: models.CategoryEducation, Keywords: []string{
		"курсы", "университет", "школа", "обучение", "учебник",
		"skillbox", "coursera", "репетитор",
	}},
	{Name: models.CategoryShopping, Keywords: []string{
		"wildberries", "ozon", "озон", "aliexpress", "алиэкспресс",
		"lamoda", "леруа", "икеа", "ikea", "dns", "мвидео", "эльдорадо",
		"одежда", "обувь", "магазин",
	}},
}

// DefaultKeywords returns a copy of the compiled-in keyword table.
func DefaultKeywords() []CategoryConfig {
	out := make([]CategoryConfig, len(defaultKeywords))
	copy(out, defaultKeywords)
	return out
}

// matchKeywords returns the first category with any keyword hit plus the
// number of hits within it, or ("", 0) when nothing matches.
func matchKeywords(categories []CategoryConfig, description string) (string, int) {
	lower := strings.ToLower(description)
	for _, c := range categories {
		hits := 0
		for _, kw := range c.Keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				hits++
			}
		}
		if hits > 0 {
			return c.Name, hits
		}
	}
	return "", 0
}
