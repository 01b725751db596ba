package budget

// DemoBudgets is the sample dataset new demo sessions start with.
func DemoBudgets() []Budget {
	return []Budget{
		{ID: "b1", Name: "Marketing", Type: TypeDepartment, AllocatedAmount: 50000, Period: PeriodAnnual},
		{ID: "b2", Name: "Engineering", Type: TypeDepartment, AllocatedAmount: 120000, Period: PeriodAnnual},
		{ID: "b3", Name: "Office Renovation", Type: TypeProject, AllocatedAmount: 15000, Period: PeriodOneTime},
		{ID: "b4", Name: "Software Licenses", Type: TypeCategory, AllocatedAmount: 8000, Period: PeriodAnnual},
		{ID: "b5", Name: "Team Events", Type: TypeCategory, AllocatedAmount: 5000, Period: PeriodAnnual},
		{ID: "b6", Name: "HR", Type: TypeDepartment, AllocatedAmount: 30000, Period: PeriodAnnual},
		{ID: "b7", Name: "Sales", Type: TypeDepartment, AllocatedAmount: 80000, Period: PeriodAnnual},
		{ID: "b8", Name: "Operations", Type: TypeDepartment, AllocatedAmount: 45000, Period: PeriodAnnual},
		{ID: "b9", Name: "Website Redesign", Type: TypeProject, AllocatedAmount: 25000, Period: PeriodOneTime},
		{ID: "b10", Name: "Q2 Hiring Push", Type: TypeProject, AllocatedAmount: 12000, Period: PeriodQ2},
	}
}
