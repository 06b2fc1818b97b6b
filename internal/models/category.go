package models

// Category is a {name, kind} pair in the per-user registry. The registry only
// populates pickers; the store never constrains a transaction's category to it.
type Category struct {
	Name string `firestore:"name" json:"name"`
	Type string `firestore:"type" json:"type"` // income or expense
}

// Built-in categories every account starts with. User-defined ones are stored
// on the user document and merged in by the category service.
var (
	DefaultIncomeCategories  = []string{"Salary", "Freelance", "Investment", "Bonus", "Other"}
	DefaultExpenseCategories = []string{"Food", "Transport", "Shopping", "Bills", "Entertainment", "Healthcare", "Education", "Other"}
)
