package activity

type ActivityType string

const (
	TypeExpense ActivityType = "expense"
	TypeBudget  ActivityType = "budget"
	TypeWarning ActivityType = "warning"
	TypeSystem  ActivityType = "system"
)

// Activity is one entry of the newest-first activity feed.
type Activity struct {
	ID         string
	UserName   string
	UserAvatar string
	Action     string
	Target     string
	Timestamp  string
	Type       ActivityType
}
