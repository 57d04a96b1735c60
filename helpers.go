package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrUsage marks a missing location argument
var ErrUsage = errors.New("city location is required")

const usage = `Usage: waybar-wttr [flags] "City, Country"`

// getLocationFromArgs gets the location from command-line args
func getLocationFromArgs(args []string) (string, error) {
	if len(args) < 1 {
		return "", fmt.Errorf("%w. %s", ErrUsage, usage)
	}

	return args[0], nil
}

// readReportFile reads a j1 document from a file, or from stdin for "-"
func readReportFile(path string) (Report, error) {
	var data []byte
	var err error

	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return Report{}, fmt.Errorf("error reading input: %w", err)
	}

	return DecodeReport(data)
}
