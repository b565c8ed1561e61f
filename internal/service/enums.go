package service

// PaymentMethod is the closed set of ways an expense can be paid.
type PaymentMethod string

const (
	PaymentMethodIBAN       PaymentMethod = "IBAN"
	PaymentMethodCash       PaymentMethod = "CASH"
	PaymentMethodCreditCard PaymentMethod = "CREDIT_CARD"
)

// ParsePaymentMethod converts a wire value into a PaymentMethod.
// Unknown values fail with a validation error.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case PaymentMethodIBAN, PaymentMethodCash, PaymentMethodCreditCard:
		return PaymentMethod(s), nil
	}
	return "", newValidationError("paymentMethod", "unknown value "+s)
}

// ExpenseCategory is the closed set of expense categories.
type ExpenseCategory string

const (
	CategoryFood           ExpenseCategory = "FOOD"
	CategoryTransportation ExpenseCategory = "TRANSPORTATION"
	CategoryEntertainment  ExpenseCategory = "ENTERTAINMENT"
	CategoryShopping       ExpenseCategory = "SHOPPING"
	CategoryUtilities      ExpenseCategory = "UTILITIES"
	CategoryHealth         ExpenseCategory = "HEALTH"
	CategoryOther          ExpenseCategory = "OTHER"
)

// ParseExpenseCategory converts a wire value into an ExpenseCategory.
// Unknown values fail with a validation error.
func ParseExpenseCategory(s string) (ExpenseCategory, error) {
	switch ExpenseCategory(s) {
	case CategoryFood, CategoryTransportation, CategoryEntertainment,
		CategoryShopping, CategoryUtilities, CategoryHealth, CategoryOther:
		return ExpenseCategory(s), nil
	}
	return "", newValidationError("category", "unknown value "+s)
}
