package event_bus

// Event types published by the domain services. Only goal and team-member
// mutations emit events; budget, expense, and settings mutations do not.
const (
	GoalCreated   EventType = "goal.created"
	GoalUpdated   EventType = "goal.updated"
	GoalDeleted   EventType = "goal.deleted"
	MemberJoined  EventType = "team.member.joined"
	MemberUpdated EventType = "team.member.updated"
	MemberRemoved EventType = "team.member.removed"
)

type GoalChanged struct {
	Id   string
	Name string
}

type MemberChanged struct {
	Id   string
	Name string
}
