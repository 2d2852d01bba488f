package reports

import (
	"encoding/json"
)

// FormatJSON renders a dashboard report as indented JSON.
func FormatJSON(report *DashboardReport) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
