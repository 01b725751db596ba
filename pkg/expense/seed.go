package expense

// DemoExpenses is the sample dataset new demo sessions start with.
func DemoExpenses() []Expense {
	return []Expense{
		{
			ID: "e1", Date: "2024-01-15", Category: "Software Licenses", Amount: 5000,
			PaymentMethod: "Bank Transfer", Description: "Annual Enterprise License Renewal",
			ApprovalStatus: StatusApproved, RecurringFrequency: "Annual",
			HasAttachment: true,
			AttachmentURL: "https://images.unsplash.com/photo-1554224155-8d04cb21cd6c?auto=format&fit=crop&q=80&w=1000",
			Tags:          []string{"Software", "Internal"},
			Comments: []Comment{
				{ID: "c1", User: "Sarah Marketing", Avatar: "Sarah", Text: "Approved for annual renewal.", Timestamp: "2024-01-16 10:00"},
			},
			History: []HistoryEntry{
				{Action: "Approved", User: "Sarah Marketing", Timestamp: "2024-01-16 10:00", Note: "Annual renewal"},
			},
		},
		{
			ID: "e2", Date: "2024-01-20", Category: "Marketing", Amount: 1200,
			PaymentMethod: "Credit Card", Description: "Q1 Planning Workshop",
			ApprovalStatus: StatusApproved, RecurringFrequency: "One-time",
			Tags: []string{"Internal"},
		},
		{ID: "e3", Date: "2024-01-25", Category: "Engineering", Amount: 800, PaymentMethod: "Credit Card", Description: "DevOps Tools", ApprovalStatus: StatusApproved},
		{ID: "e4", Date: "2024-02-05", Category: "Engineering", Amount: 3500, PaymentMethod: "Bank Transfer", Description: "AWS Cloud Services - Jan", ApprovalStatus: StatusApproved},
		{ID: "e5", Date: "2024-02-10", Category: "Sales", Amount: 1500, PaymentMethod: "Credit Card", Description: "Client Visit - Chicago", ApprovalStatus: StatusApproved},
		{ID: "e6", Date: "2024-02-14", Category: "Team Events", Amount: 800, PaymentMethod: "Reimbursement", Description: "Valentine's Day Team Lunch", ApprovalStatus: StatusApproved},
		{ID: "e7", Date: "2024-02-28", Category: "Operations", Amount: 450, PaymentMethod: "Credit Card", Description: "Office Supplies Restock", ApprovalStatus: StatusApproved},
		{ID: "e8", Date: "2024-03-01", Category: "Marketing", Amount: 1200.5, PaymentMethod: "Credit Card", Description: "Q1 Ad Campaign Launch", ApprovalStatus: StatusApproved},
		{ID: "e9", Date: "2024-03-02", Category: "Engineering", Amount: 3400, PaymentMethod: "Bank Transfer", Description: "AWS Cloud Services - Feb", ApprovalStatus: StatusApproved},
		{ID: "e10", Date: "2024-03-05", Category: "Office Renovation", Amount: 850, PaymentMethod: "Invoice", Description: "New Ergonomic Chairs", ApprovalStatus: StatusApproved},
		{ID: "e11", Date: "2024-03-10", Category: "HR", Amount: 2500, PaymentMethod: "Invoice", Description: "Recruitment Agency Fee", ApprovalStatus: StatusPending},
		{ID: "e12", Date: "2024-03-15", Category: "Sales", Amount: 3200, PaymentMethod: "Credit Card", Description: "Q1 Sales Conference Tickets", ApprovalStatus: StatusApproved},
		{ID: "e13", Date: "2024-03-20", Category: "Engineering", Amount: 2100, PaymentMethod: "Credit Card", Description: "New Test Devices", ApprovalStatus: StatusRejected},
		{ID: "e14", Date: "2024-04-02", Category: "Marketing", Amount: 8000, PaymentMethod: "Invoice", Description: "Q2 Media Buy", ApprovalStatus: StatusApproved},
		{ID: "e15", Date: "2024-04-05", Category: "Engineering", Amount: 3600, PaymentMethod: "Bank Transfer", Description: "AWS Cloud Services - Mar", ApprovalStatus: StatusApproved},
		{ID: "e16", Date: "2024-04-10", Category: "Website Redesign", Amount: 5000, PaymentMethod: "Bank Transfer", Description: "Design Agency Deposit", ApprovalStatus: StatusApproved},
		{ID: "e17", Date: "2024-04-15", Category: "Q2 Hiring Push", Amount: 2000, PaymentMethod: "Credit Card", Description: "LinkedIn Job Slots", ApprovalStatus: StatusApproved},
		{ID: "e18", Date: "2024-04-22", Category: "Operations", Amount: 1200, PaymentMethod: "Invoice", Description: "HVAC Maintenance", ApprovalStatus: StatusPending},
		{ID: "e19", Date: "2024-05-03", Category: "Engineering", Amount: 4000, PaymentMethod: "Bank Transfer", Description: "AWS Cloud Services - Apr", ApprovalStatus: StatusApproved},
		{ID: "e20", Date: "2024-05-10", Category: "HR", Amount: 1500, PaymentMethod: "Credit Card", Description: "Manager Training Workshop", ApprovalStatus: StatusApproved},
		{ID: "e21", Date: "2024-05-15", Category: "Website Redesign", Amount: 8000, PaymentMethod: "Bank Transfer", Description: "Development Milestone 1", ApprovalStatus: StatusApproved},
		{ID: "e22", Date: "2024-05-20", Category: "Marketing", Amount: 450, PaymentMethod: "Reimbursement", Description: "Client Gifts", ApprovalStatus: StatusRejected},
		{ID: "e23", Date: "2024-06-01", Category: "Team Events", Amount: 1200, PaymentMethod: "Credit Card", Description: "Summer Team Outing", ApprovalStatus: StatusPending},
		{ID: "e24", Date: "2024-06-05", Category: "Engineering", Amount: 4200, PaymentMethod: "Bank Transfer", Description: "AWS Cloud Services - May", ApprovalStatus: StatusApproved},
		{ID: "e25", Date: "2024-06-12", Category: "Sales", Amount: 4000, PaymentMethod: "Credit Card", Description: "Annual Client Dinner", ApprovalStatus: StatusApproved},
		{ID: "e26", Date: "2024-06-25", Category: "Office Renovation", Amount: 5500, PaymentMethod: "Invoice", Description: "Painting and Flooring", ApprovalStatus: StatusApproved},
		{ID: "e27", Date: "2024-06-28", Category: "Q2 Hiring Push", Amount: 3500, PaymentMethod: "Invoice", Description: "Headhunter Success Fee", ApprovalStatus: StatusPending},
	}
}
