package activity

// DemoActivities is the sample feed new demo sessions start with.
func DemoActivities() []Activity {
	return []Activity{
		{ID: "a1", UserName: "Sarah Marketing", UserAvatar: "Sarah", Action: "approved expense", Target: "Q2 Media Buy ($8,000)", Timestamp: "2 hours ago", Type: TypeExpense},
		{ID: "a2", UserName: "Mike Engineering", UserAvatar: "Mike", Action: "created budget", Target: "AI Research Project", Timestamp: "5 hours ago", Type: TypeBudget},
		{ID: "a3", UserName: "Alex Finance", UserAvatar: "Felix", Action: "updated settings", Target: "Global Currency Format", Timestamp: "1 day ago", Type: TypeSystem},
		{ID: "a4", UserName: "Jessica HR", UserAvatar: "Jessica", Action: "added member", Target: "Tom Intern", Timestamp: "1 day ago", Type: TypeSystem},
		{ID: "a5", UserName: "David Sales", UserAvatar: "David", Action: "exceeded budget", Target: "Travel Q1", Timestamp: "2 days ago", Type: TypeWarning},
	}
}
