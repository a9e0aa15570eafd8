package model

// TransactionType distinguishes money in from money out.
type TransactionType string

const (
	TransactionExpense TransactionType = "expense"
	TransactionIncome  TransactionType = "income"
)

// Transaction sources.
const (
	SourceVoice        = "voice"
	SourceNotification = "notification"
	SourceManual       = "manual"
)

// Transaction is a single finance record.
type Transaction struct {
	ID           string
	Amount       float64
	Type         TransactionType
	CategoryID   *int64
	CategoryName string
	Date         string // YYYY-MM-DD
	Time         string // HH:MM
	Note         string
	Source       string // voice | notification | manual
}
