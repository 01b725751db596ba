package team

type MemberStatus string

const (
	StatusActive  MemberStatus = "Active"
	StatusOnLeave MemberStatus = "On Leave"
	StatusRemote  MemberStatus = "Remote"
)

// TeamMember is a person tracked on the team page. SpentAmount is a stored
// figure maintained by hand; it is never recomputed from expense records, so
// it can drift from the spend aggregations elsewhere.
type TeamMember struct {
	ID             string
	Name           string
	Role           string
	Department     string
	AvatarSeed     string
	Email          string
	Phone          string
	Status         MemberStatus
	JoinedDate     string
	AssignedBudget float64
	SpentAmount    float64
}
