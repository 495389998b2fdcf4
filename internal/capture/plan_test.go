package capture

import "testing"

func TestOutputFilesOrder(t *testing.T) {
	want := []string{
		"01_attendance.png",
		"02_performance.png",
		"03_other.png",
		"04_allstats.png",
		"05_mobile.png",
	}
	got := OutputFiles()
	if len(got) != len(want) {
		t.Fatalf("expected %d files, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("file %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTabSelector(t *testing.T) {
	if got := tabSelector("ALL STATS"); got != `button:has-text("ALL STATS")` {
		t.Fatalf("unexpected selector: %q", got)
	}
}

func TestTabShotsSequence(t *testing.T) {
	if len(tabShots) != 3 {
		t.Fatalf("expected 3 guarded tabs, got %d", len(tabShots))
	}
	texts := []string{"PERFORMANCE", "OTHER", "ALL STATS"}
	for i, tab := range tabShots {
		if tab.TabText != texts[i] {
			t.Fatalf("tab %d: got text %q, want %q", i, tab.TabText, texts[i])
		}
		if tab.File == defaultShotFile || tab.File == mobileShotFile {
			t.Fatalf("tab %q reuses a reserved file name %q", tab.Label, tab.File)
		}
	}
}
