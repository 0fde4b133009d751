package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Capacity label constants.
const (
	OverValue    = "Over"    // Scheduled work exceeds capacity
	TightValue   = "Tight"   // Scheduled work within 10% of capacity
	HealthyValue = "Healthy" // Comfortable headroom
	IdleValue    = "Idle"    // Nothing scheduled against the sprint
)

// Color variables for console output.
var (
	OverColor    = color.New(color.FgRed, color.Bold)    // overColor represents standard danger.
	TightColor   = color.New(color.FgYellow, color.Bold) // tightColor represents strong warning.
	HealthyColor = color.New(color.FgGreen)              // healthyColor represents a comfortable plan.
	IdleColor    = color.New(color.FgCyan)               // idleColor represents informational signal.
)

// GetPlainLabel returns a plain text label for how loaded a sprint is,
// based on the scheduled-vs-capacity percentage difference. This is the
// core logic used for CSV, JSON, and table printing.
func GetPlainLabel(diffPct float64, scheduled float64) string {
	switch {
	case scheduled <= 0:
		return IdleValue
	case diffPct > 0:
		return OverValue
	case diffPct >= -10:
		return TightValue
	default:
		return HealthyValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(diffPct float64, scheduled float64) string {
	text := GetPlainLabel(diffPct, scheduled)

	switch text {
	case OverValue:
		return OverColor.Sprint(text)
	case TightValue:
		return TightColor.Sprint(text)
	case HealthyValue:
		return HealthyColor.Sprint(text)
	default: // "Idle"
		return IdleColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetDBFilePath returns the path to the SQLite DB file for cache storage.
func GetDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".sprintplan_cache.db"
	}
	return filepath.Join(homeDir, ".sprintplan_cache.db")
}

// TruncateName truncates a display name to a maximum width with an ellipsis
// suffix. Requires maxWidth > 3 so there is room for both content and "...".
func TruncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return name
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
