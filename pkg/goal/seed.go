package goal

// DemoGoals is the sample dataset new demo sessions start with.
func DemoGoals() []Goal {
	return []Goal{
		{ID: "g1", Name: "Emergency Fund", TargetAmount: 20000, CurrentAmount: 15000, Deadline: "2024-12-31", Category: "Savings", Status: StatusOnTrack, Notes: "3 months of operating expenses"},
		{ID: "g2", Name: "New Office Equipment", TargetAmount: 5000, CurrentAmount: 1200, Deadline: "2024-06-30", Category: "Equipment", Status: StatusAtRisk, Notes: "Laptops and monitors for new hires"},
		{ID: "g3", Name: "Team Retreat", TargetAmount: 10000, CurrentAmount: 10000, Deadline: "2024-08-15", Category: "Events", Status: StatusCompleted, Notes: "Annual summer gathering"},
		{ID: "g4", Name: "Software Migration", TargetAmount: 8000, CurrentAmount: 3500, Deadline: "2024-09-01", Category: "Technology", Status: StatusOnTrack, Notes: "Moving to new CRM"},
	}
}
