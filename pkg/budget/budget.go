package budget

type BudgetType string

const (
	TypeDepartment BudgetType = "Department"
	TypeProject    BudgetType = "Project"
	TypeCategory   BudgetType = "Category"
)

type Period string

const (
	PeriodAnnual  Period = "Annual"
	PeriodQ1      Period = "Q1"
	PeriodQ2      Period = "Q2"
	PeriodQ3      Period = "Q3"
	PeriodQ4      Period = "Q4"
	PeriodOneTime Period = "One-time"
)

// Budget is a spending envelope. Its Name doubles as the soft key expenses
// reference through their Category field; deleting a budget never cascades to
// those expenses, they simply stop matching in aggregations.
type Budget struct {
	ID              string
	Name            string
	Type            BudgetType
	AllocatedAmount float64
	Period          Period
}
