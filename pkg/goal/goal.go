package goal

type GoalStatus string

const (
	StatusOnTrack   GoalStatus = "On Track"
	StatusAtRisk    GoalStatus = "At Risk"
	StatusCompleted GoalStatus = "Completed"
)

// Goal is a savings target. On save a goal whose current amount has reached a
// positive target is promoted to Completed.
type Goal struct {
	ID            string
	Name          string
	TargetAmount  float64
	CurrentAmount float64
	Deadline      string
	Category      string
	Status        GoalStatus
	Notes         string
}
