// Package ui prints short status lines for humans running embedres.
package ui

import (
	"fmt"
	"io"
	"os"
)

var (
	// ANSI Colors
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBold   = "\033[1m"
)

func init() {
	if os.Getenv("NO_COLOR") != "" {
		DisableColor()
	}
}

// DisableColor turns every color code into an empty string.
func DisableColor() {
	ColorReset, ColorRed, ColorGreen, ColorYellow, ColorBold = "", "", "", "", ""
}

func PrintHeader(w io.Writer, msg string) {
	fmt.Fprintf(w, "\n%s%s%s\n", ColorBold, msg, ColorReset)
}

func PrintSuccess(w io.Writer, label, detail string) {
	fmt.Fprintf(w, "  %s✔%s %-15s %s%s\n", ColorGreen, ColorReset, label, ColorGreen, detail+ColorReset)
}

func PrintError(w io.Writer, label, detail string) {
	fmt.Fprintf(w, "  %s✘%s %-15s %s%s\n", ColorRed, ColorReset, label, ColorRed, detail+ColorReset)
}

func PrintWarning(w io.Writer, label, detail string) {
	fmt.Fprintf(w, "  %s!%s %-15s %s%s\n", ColorYellow, ColorReset, label, ColorYellow, detail+ColorReset)
}
