package service

// mergeExpense produces a copy of original with every present update
// field applied. ID, Owner and CreateDate always come from original no
// matter what the update carries. Pure function, no side effects.
func mergeExpense(original Expense, update ExpenseUpdate) Expense {
	merged := original
	if update.Description != nil {
		merged.Description = *update.Description
	}
	if update.Amount != nil {
		merged.Amount = *update.Amount
	}
	if update.Date != nil {
		merged.Date = *update.Date
	}
	if update.PaymentMethod != nil {
		merged.PaymentMethod = *update.PaymentMethod
	}
	if update.Category != nil {
		merged.Category = *update.Category
	}
	if update.IsRecurring != nil {
		merged.IsRecurring = *update.IsRecurring
	}
	merged.ID = original.ID
	merged.Owner = original.Owner
	merged.CreateDate = original.CreateDate
	return merged
}
