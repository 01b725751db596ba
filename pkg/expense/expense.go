package expense

type ApprovalStatus string

const (
	StatusPending  ApprovalStatus = "Pending"
	StatusApproved ApprovalStatus = "Approved"
	StatusRejected ApprovalStatus = "Rejected"
)

// Split is an advisory sub-allocation of an expense. Splits never have to add
// up to the expense amount; only the raw Amount field feeds aggregations.
type Split struct {
	Category string
	Amount   float64
}

type Comment struct {
	ID        string
	User      string
	Avatar    string
	Text      string
	Timestamp string
}

type HistoryEntry struct {
	Action    string
	User      string
	Timestamp string
	Note      string
}

// Expense is a logged spend. Category is a soft reference to a budget name
// and AssignedApproverID a soft reference to a team member id; neither is
// validated or cascaded. Rejected expenses are excluded from every spend
// aggregation.
type Expense struct {
	ID                 string
	Date               string // ISO 8601, yyyy-mm-dd
	Category           string
	Amount             float64
	PaymentMethod      string
	Description        string
	ApprovalStatus     ApprovalStatus
	RecurringFrequency string
	HasAttachment      bool
	AttachmentURL      string
	Tags               []string
	Splits             []Split
	Comments           []Comment
	History            []HistoryEntry
	AssignedApproverID string
}

// SplitTotal sums the advisory splits of the expense.
func (e Expense) SplitTotal() float64 {
	total := 0.0
	for _, s := range e.Splits {
		total += s.Amount
	}
	return total
}

// SplitDifference is the declared amount minus the split total. Purely
// informational, it never blocks a save.
func (e Expense) SplitDifference() float64 {
	return e.Amount - e.SplitTotal()
}

// clone deep-copies the slice fields. A struct copy alone keeps the slice
// headers aliased, so edits to a draft would reach into the stored record.
func (e Expense) clone() Expense {
	out := e
	out.Tags = append([]string(nil), e.Tags...)
	out.Splits = append([]Split(nil), e.Splits...)
	out.Comments = append([]Comment(nil), e.Comments...)
	out.History = append([]HistoryEntry(nil), e.History...)
	return out
}

// AvailableTags is the vocabulary offered by the tag picker.
var AvailableTags = []string{"Travel", "Software", "Equipment", "Food", "Office", "Client", "Internal"}
