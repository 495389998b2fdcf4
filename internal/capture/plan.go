package capture

import "fmt"

const (
	defaultTabText  = "ATTENDANCE"
	defaultShotFile = "01_attendance.png"
	mobileShotFile  = "05_mobile.png"
)

// tabShot pairs a tab button's visible text with its output file.
type tabShot struct {
	Label   string
	TabText string
	File    string
}

// tabShots is the guarded middle of the sequence: each tab is clicked only
// if its control is present on the page.
var tabShots = []tabShot{
	{Label: "Performance", TabText: "PERFORMANCE", File: "02_performance.png"},
	{Label: "Other", TabText: "OTHER", File: "03_other.png"},
	{Label: "All Stats", TabText: "ALL STATS", File: "04_allstats.png"},
}

func tabSelector(text string) string {
	return fmt.Sprintf("button:has-text(%q)", text)
}

// OutputFiles returns the file names a complete run writes, in capture order.
func OutputFiles() []string {
	files := []string{defaultShotFile}
	for _, t := range tabShots {
		files = append(files, t.File)
	}
	return append(files, mobileShotFile)
}
