package team

// DemoMembers is the sample roster new demo sessions start with.
func DemoMembers() []TeamMember {
	return []TeamMember{
		{ID: "t1", Name: "Alex Finance", Role: "Admin", Department: "Finance", AvatarSeed: "Felix", Email: "alex@company.com", Phone: "+1 (555) 0101", Status: StatusActive, JoinedDate: "2023-01-15"},
		{ID: "t2", Name: "Sarah Marketing", Role: "Department Head", Department: "Marketing", AvatarSeed: "Sarah", Email: "sarah@company.com", Phone: "+1 (555) 0102", Status: StatusActive, JoinedDate: "2023-02-01", AssignedBudget: 50000, SpentAmount: 35420.5},
		{ID: "t3", Name: "Mike Engineering", Role: "CTO", Department: "Engineering", AvatarSeed: "Mike", Email: "mike@company.com", Phone: "+1 (555) 0103", Status: StatusActive, JoinedDate: "2023-01-10", AssignedBudget: 120000, SpentAmount: 98500},
		{ID: "t4", Name: "Jessica HR", Role: "HR Manager", Department: "HR", AvatarSeed: "Jessica", Email: "jessica@company.com", Phone: "+1 (555) 0104", Status: StatusRemote, JoinedDate: "2023-03-15", AssignedBudget: 30000, SpentAmount: 12500},
		{ID: "t5", Name: "David Sales", Role: "VP of Sales", Department: "Sales", AvatarSeed: "David", Email: "david@company.com", Phone: "+1 (555) 0105", Status: StatusOnLeave, JoinedDate: "2023-04-01", AssignedBudget: 80000, SpentAmount: 65000},
		{ID: "t6", Name: "Emily Ops", Role: "Operations Manager", Department: "Operations", AvatarSeed: "Emily", Email: "emily@company.com", Phone: "+1 (555) 0106", Status: StatusActive, JoinedDate: "2023-05-12", AssignedBudget: 45000, SpentAmount: 28900},
	}
}
