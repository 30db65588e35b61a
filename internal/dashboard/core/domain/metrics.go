package domain

type MetricCard struct {
	Label     string
	Value     float64
	Precision int  // decimals to display
	Available bool // false when an average had no rows to work on
}
