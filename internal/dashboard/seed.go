package dashboard

import "github.com/thenoetrevino/tablero/internal/models"

// Category ids of the built-in layout
const (
	CategoryCSPM     = "cspm"
	CategoryCWPP     = "cwpp"
	CategoryRegistry = "registry"
)

// Seed returns the dashboard shown on start-up when no layout file is given:
// three categories with two widgets each.
func Seed() models.Dashboard {
	return models.Dashboard{
		Categories: []models.Category{
			{
				ID:   CategoryCSPM,
				Name: "CSPM Executive Dashboard",
				Widgets: []models.Widget{
					{ID: "widget-1", Name: "Cloud Accounts", Text: "Total: 2 accounts connected. Active monitoring across AWS and Azure environments."},
					{ID: "widget-2", Name: "Cloud Account Risk Assessment", Text: "Risk Level: Medium. 1,234 resources scanned. 45 high-priority alerts detected."},
				},
			},
			{
				ID:   CategoryCWPP,
				Name: "CWPP Dashboard",
				Widgets: []models.Widget{
					{ID: "widget-3", Name: "Top 5 Namespace Specific Alerts", Text: "Production: 23 alerts, Staging: 12 alerts, Development: 8 alerts"},
					{ID: "widget-4", Name: "Workload Alerts", Text: "Active workloads: 156. Critical alerts: 5. Warning alerts: 23."},
				},
			},
			{
				ID:   CategoryRegistry,
				Name: "Registry Scan",
				Widgets: []models.Widget{
					{ID: "widget-5", Name: "Image Risk Assessment", Text: "Total Images: 542. Critical vulnerabilities: 12. High: 45. Medium: 123."},
					{ID: "widget-6", Name: "Image Security Issues", Text: "Scanned: 542 images. Failed: 23. Passed: 519. Scan coverage: 96%"},
				},
			},
		},
	}
}
