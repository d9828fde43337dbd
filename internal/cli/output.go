// Package cli provides the command-line interface for the strategy
// builder.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// Color codes for terminal output
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorCyan   = "\033[36m"
	ColorBold   = "\033[1m"
	ColorDim    = "\033[2m"
)

// Output handles formatted output for the CLI.
type Output struct {
	writer       io.Writer
	jsonMode     bool
	colorEnabled bool
}

// NewOutput creates a new Output instance.
func NewOutput(cmd *cobra.Command) *Output {
	jsonMode, _ := cmd.Flags().GetBool("json")
	return &Output{
		writer:       cmd.OutOrStdout(),
		jsonMode:     jsonMode,
		colorEnabled: !jsonMode && isTerminal(),
	}
}

// isTerminal checks if stdout is a terminal.
func isTerminal() bool {
	fileInfo, _ := os.Stdout.Stat()
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// IsJSON returns true if JSON output mode is enabled.
func (o *Output) IsJSON() bool {
	return o.jsonMode
}

// JSON outputs data as indented JSON.
func (o *Output) JSON(data interface{}) error {
	encoder := json.NewEncoder(o.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// Printf writes formatted output.
func (o *Output) Printf(format string, args ...interface{}) {
	fmt.Fprintf(o.writer, format, args...)
}

// Println writes a line of output.
func (o *Output) Println(args ...interface{}) {
	fmt.Fprintln(o.writer, args...)
}

// Bold writes a bold line.
func (o *Output) Bold(format string, args ...interface{}) {
	o.Printf("%s\n", o.colorize(ColorBold, fmt.Sprintf(format, args...)))
}

// Error writes an error line.
func (o *Output) Error(format string, args ...interface{}) {
	o.Printf("%s\n", o.colorize(ColorRed, "✗ "+fmt.Sprintf(format, args...)))
}

// Success writes a success line.
func (o *Output) Success(format string, args ...interface{}) {
	o.Printf("%s\n", o.colorize(ColorGreen, "✓ "+fmt.Sprintf(format, args...)))
}

// Warn writes a warning line.
func (o *Output) Warn(format string, args ...interface{}) {
	o.Printf("%s\n", o.colorize(ColorYellow, "! "+fmt.Sprintf(format, args...)))
}

// Green returns the string colored green.
func (o *Output) Green(s string) string {
	return o.colorize(ColorGreen, s)
}

// Red returns the string colored red.
func (o *Output) Red(s string) string {
	return o.colorize(ColorRed, s)
}

// Dim returns the string dimmed.
func (o *Output) Dim(s string) string {
	return o.colorize(ColorDim, s)
}

func (o *Output) colorize(color, s string) string {
	if !o.colorEnabled {
		return s
	}
	return color + s + ColorReset
}
