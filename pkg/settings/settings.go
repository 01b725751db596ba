package settings

// Settings holds per-session preferences. Thresholds are percentages compared
// against budget utilization when classifying health.
type Settings struct {
	WarningThreshold       int
	CriticalThreshold      int
	CurrencyFormat         string
	DateFormat             string
	NotificationsEmail     bool
	NotificationsDashboard bool
	NotificationsWeekly    bool
	Departments            []string
	Projects               []string
	ReportDateRange        string
}
