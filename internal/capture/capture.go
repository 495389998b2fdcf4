// Package capture drives a headless browser through the design-preview tab
// sequence and writes full-page screenshots for visual review.
package capture

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/playwright-community/playwright-go"
)

// Defaults for a design-preview capture run.
const (
	DefaultTargetURL = "http://localhost:5173/design-preview"
	DefaultOutputDir = "/tmp/design-preview"

	desktopWidth  = 1400
	desktopHeight = 900
	mobileWidth   = 375
	mobileHeight  = 812

	settleDelayMs = 2000 // after networkidle, for animations
	clickDelayMs  = 1000 // after a tab switch
)

// Options configure a capture run. Zero values fall back to the defaults.
type Options struct {
	TargetURL       string
	OutputDir       string
	Headless        bool
	InstallBrowsers bool        // run playwright.Install before launching
	Logger          *log.Logger // progress lines; defaults to stdout
	EventLog        io.Writer   // optional NDJSON event stream
}

// Shot is one screenshot written by a run.
type Shot struct {
	Label string
	Path  string
}

// Result lists the screenshots a run produced, in capture order.
type Result struct {
	Shots []Shot
}

// Run executes the fixed capture sequence: the default tab at a desktop
// viewport, the three named tabs (skipped when their control is absent),
// then the first tab again at a mobile viewport. Navigation and launch
// failures abort the run; the browser teardown is deferred on every path.
func Run(opts Options) (Result, error) {
	if opts.TargetURL == "" {
		opts.TargetURL = DefaultTargetURL
	}
	if opts.OutputDir == "" {
		opts.OutputDir = DefaultOutputDir
	}
	if opts.Logger == nil {
		opts.Logger = log.New(os.Stdout, "", log.LstdFlags)
	}
	events := newNDJSONLogger(opts.EventLog)

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("create output dir: %w", err)
	}

	if opts.InstallBrowsers {
		events.info("browser", "installing playwright browsers", nil)
		if err := playwright.Install(&playwright.RunOptions{Browsers: []string{"chromium"}}); err != nil {
			return Result{}, fmt.Errorf("install playwright: %w", err)
		}
	}

	pw, err := playwright.Run()
	if err != nil {
		return Result{}, fmt.Errorf("start playwright: %w", err)
	}
	defer pw.Stop()

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
	})
	if err != nil {
		return Result{}, fmt.Errorf("launch browser: %w", err)
	}
	defer browser.Close()

	page, err := browser.NewPage(playwright.BrowserNewPageOptions{
		Viewport: &playwright.Size{Width: desktopWidth, Height: desktopHeight},
	})
	if err != nil {
		return Result{}, fmt.Errorf("new page: %w", err)
	}

	opts.Logger.Println("Navigating to design preview...")
	events.info("browser", "navigating", map[string]any{"url": opts.TargetURL})
	if _, err := page.Goto(opts.TargetURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
	}); err != nil {
		return Result{}, fmt.Errorf("navigate: %w", err)
	}
	page.WaitForTimeout(settleDelayMs)

	var res Result

	opts.Logger.Println("Capturing Attendance tab...")
	path := filepath.Join(opts.OutputDir, defaultShotFile)
	if err := screenshot(page, path); err != nil {
		return res, err
	}
	events.info("shot", "captured", map[string]any{"path": path})
	res.Shots = append(res.Shots, Shot{Label: "Attendance", Path: path})

	for _, tab := range tabShots {
		opts.Logger.Printf("Capturing %s tab...", tab.Label)
		loc := page.Locator(tabSelector(tab.TabText))
		n, err := loc.Count()
		if err != nil {
			return res, fmt.Errorf("locate %s tab: %w", tab.Label, err)
		}
		if n == 0 {
			events.warn("tab", "control absent, skipping", map[string]any{"tab": tab.Label})
			continue
		}
		if err := loc.Click(); err != nil {
			return res, fmt.Errorf("click %s tab: %w", tab.Label, err)
		}
		page.WaitForTimeout(clickDelayMs)
		path := filepath.Join(opts.OutputDir, tab.File)
		if err := screenshot(page, path); err != nil {
			return res, err
		}
		events.info("shot", "captured", map[string]any{"path": path})
		res.Shots = append(res.Shots, Shot{Label: tab.Label, Path: path})
	}

	opts.Logger.Println("Capturing mobile view...")
	if err := page.SetViewportSize(mobileWidth, mobileHeight); err != nil {
		return res, fmt.Errorf("resize viewport: %w", err)
	}
	// No existence check here: a missing control fails the run.
	if err := page.Locator(tabSelector(defaultTabText)).Click(); err != nil {
		return res, fmt.Errorf("click Attendance tab: %w", err)
	}
	page.WaitForTimeout(clickDelayMs)
	path = filepath.Join(opts.OutputDir, mobileShotFile)
	if err := screenshot(page, path); err != nil {
		return res, err
	}
	events.info("shot", "captured", map[string]any{"path": path})
	res.Shots = append(res.Shots, Shot{Label: "Mobile", Path: path})

	events.info("capture", "run finished", map[string]any{"shots": len(res.Shots)})
	return res, nil
}

func screenshot(page playwright.Page, path string) error {
	if _, err := page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	}); err != nil {
		return fmt.Errorf("screenshot %s: %w", filepath.Base(path), err)
	}
	return nil
}
