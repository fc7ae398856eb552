// Package ui renders console output for scan runs: the startup banner,
// progress lines, and per-service result sections.
package ui

import (
	"fmt"
	"strings"
	"time"
)

// Banner prints the application header.
func Banner(appName, version string) {
	fmt.Println(titleStyle.Render(fmt.Sprintf("%s %s", appName, version)))
}

// Info prints a progress line.
func Info(format string, args ...any) {
	fmt.Printf("%s %s\n", special.Render("[*]"), fmt.Sprintf(format, args...))
}

// Warn prints a non-fatal problem line.
func Warn(format string, args ...any) {
	fmt.Printf("%s %s\n", warning.Render("[!]"), fmt.Sprintf(format, args...))
}

// Error prints a fatal problem line.
func Error(format string, args ...any) {
	fmt.Printf("%s %s\n", danger.Render("[x]"), fmt.Sprintf(format, args...))
}

// Section prints a per-service heading.
func Section(name string) {
	fmt.Println()
	fmt.Println(sectionStyle.Render(name))
}

// ResultLine prints one operation result, colored by its leading marker.
func ResultLine(line string) {
	switch {
	case strings.HasPrefix(line, "[+]"):
		fmt.Println(special.Render("[+]") + line[3:])
	case strings.HasPrefix(line, "[-]"):
		fmt.Println(danger.Render("[-]") + line[3:])
	case strings.HasPrefix(line, "[!]"):
		fmt.Println(warning.Render("[!]") + line[3:])
	default:
		fmt.Println(line)
	}
}

// ExitSummary prints the closing line with elapsed wall time.
func ExitSummary(start time.Time, services int) {
	elapsed := time.Since(start).Round(time.Millisecond)
	fmt.Println()
	fmt.Println(subtle.Render(fmt.Sprintf("Scanned %d services in %s.", services, elapsed)))
}

// Identity prints the caller identity confirmed for the run.
func Identity(arn string) {
	fmt.Printf("%s Credentials valid: %s\n", special.Render("[*]"), highlight.Render(arn))
}
