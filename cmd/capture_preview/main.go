package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"darkroom/internal/capture"
)

func main() {
	logger := log.New(os.Stdout, "[capture] ", log.LstdFlags)

	eventLogPath := capture.DefaultOutputDir + ".ndjson"
	eventLog, err := os.Create(eventLogPath)
	if err != nil {
		logger.Fatalf("create event log: %v", err)
	}
	defer eventLog.Close()

	res, err := capture.Run(capture.Options{
		Headless:        true,
		InstallBrowsers: true,
		Logger:          logger,
		EventLog:        eventLog,
	})
	if err != nil {
		logger.Fatalf("capture failed: %v", err)
	}

	names := make([]string, 0, len(res.Shots))
	for _, s := range res.Shots {
		names = append(names, filepath.Base(s.Path))
	}
	logger.Printf("Screenshots saved to %s", capture.DefaultOutputDir)
	logger.Printf("Files: %s", strings.Join(names, ", "))
}
