package models

type ReportKind string

const (
	ReportDaily     ReportKind = "diario"
	ReportMonthly   ReportKind = "mensal"
	ReportFinancial ReportKind = "financeiro"
)

type ReportFormat string

const (
	FormatText ReportFormat = "txt"
	FormatPDF  ReportFormat = "pdf"
	FormatXLSX ReportFormat = "xlsx"
)

type DailyReport struct {
	Summary DailySummary `json:"summary"`
}

type MonthlyReport struct {
	Month    string         `json:"month"`
	Period   string         `json:"period"` // "2024-03-01 a 2024-03-31"
	Students []StudentMonth `json:"students"`
	Stats    MonthlyStats   `json:"stats"`
}

type RevenueLine struct {
	Student string  `json:"student"`
	Course  string  `json:"course"`
	Value   float64 `json:"value"`
}

type ExpenseLine struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type FinancialReport struct {
	Month         string        `json:"month"`
	Revenue       []RevenueLine `json:"revenue"`
	TotalRevenue  float64       `json:"total_revenue"`
	Expenses      []ExpenseLine `json:"expenses"`
	TotalExpenses float64       `json:"total_expenses"`
	NetProfit     float64       `json:"net_profit"`
}
