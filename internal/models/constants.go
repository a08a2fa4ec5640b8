package models

// Bank identifies which statement grammar produced a parse result.
type Bank string

// Supported banks. Detection iterates them in this order, so the first
// registered bank wins when a statement mentions several.
const (
	BankSberbank Bank = "Сбербанк"
	BankTinkoff  Bank = "Тинькофф"
	BankVTB      Bank = "ВТБ"
)

// Method names the subsystem that produced a categorization decision.
type Method string

const (
	MethodKeywords Method = "keywords"
	MethodGemini   Method = "gemini"
)

// Transaction categories. The set is closed: the keyword table, the AI
// prompt constraint and downstream persistence all share these exact labels.
const (
	CategoryIncome        = "Доходы"
	CategoryFood          = "Еда"
	CategoryTransport     = "Транспорт"
	CategoryEntertainment = "Развлечения"
	CategoryShopping      = "Покупки"
	CategoryUtilities     = "Коммунальные услуги"
	CategoryHealth        = "Здоровье"
	CategoryEducation     = "Образование"
	CategoryOther         = "Другое"
)

// AllCategories lists every valid category label.
var AllCategories = []string{
	CategoryIncome,
	CategoryFood,
	CategoryTransport,
	CategoryEntertainment,
	CategoryShopping,
	CategoryUtilities,
	CategoryHealth,
	CategoryEducation,
	CategoryOther,
}

// IsValidCategory reports whether name is a member of the closed category set.
func IsValidCategory(name string) bool {
	for _, c := range AllCategories {
		if c == name {
			return true
		}
	}
	return false
}

// CategorizationResult is the outcome of classifying a single transaction.
// Confidence is a heuristic trust score in [0,1], not a calibrated
// probability; 1.0 is reserved for the deterministic income rule.
type CategorizationResult struct {
	Category   string
	Confidence float64
	Method     Method
}
