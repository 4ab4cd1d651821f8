package check

import (
	"fmt"

	"github.com/tidwall/sjson"

	"github.com/pyspan/pyspan/internal/operations"
	"github.com/pyspan/pyspan/internal/printer"
	"github.com/pyspan/pyspan/internal/pyversion"
)

// OutputFormat controls how analysis results are displayed.
type OutputFormat string

const (
	// FormatText outputs human-readable text.
	FormatText OutputFormat = "text"

	// FormatJSON outputs machine-readable JSON.
	FormatJSON OutputFormat = "json"
)

// ParseOutputFormat converts a string to OutputFormat.
func ParseOutputFormat(s string) OutputFormat {
	if s == "json" {
		return FormatJSON
	}
	return FormatText
}

// Formatter renders analysis results.
type Formatter struct {
	format OutputFormat
}

// NewFormatter creates a formatter for the given output format.
func NewFormatter(format OutputFormat) *Formatter {
	return &Formatter{format: format}
}

// PrintResult displays the analysis result. In quiet mode only the
// combined span is shown.
func (f *Formatter) PrintResult(result *operations.Result, host pyversion.Version, quiet bool) error {
	if f.format == FormatJSON {
		return f.printJSON(result, host)
	}
	f.printText(result, quiet)
	return nil
}

func (f *Formatter) printText(result *operations.Result, quiet bool) {
	if !quiet {
		for _, file := range result.Files {
			fmt.Printf("%s  %s\n", file.Path, renderSpan(file.Span))
		}
		if len(result.Files) > 1 {
			fmt.Println()
		}
	}

	if !result.Compatible {
		printer.PrintError("No single Python version can parse all analyzed files.")
		return
	}

	label := fmt.Sprintf("Python %s", renderSpan(result.Combined))
	if result.Combined.IsExact() {
		printer.PrintWarning(fmt.Sprintf("Syntax requires exactly %s", printer.Bold(label)))
		return
	}
	printer.PrintSuccess(fmt.Sprintf("Syntax accepted by %s", printer.Bold(label)))
}

// renderSpan formats an interval for text output.
func renderSpan(span pyversion.Interval) string {
	if span.IsExact() {
		return fmt.Sprintf("exactly %s", span.Min)
	}
	return fmt.Sprintf(">= %s, <= %s", span.Min, span.Max)
}

// printJSON renders the result as a JSON document built field by field,
// preserving output key order.
func (f *Formatter) printJSON(result *operations.Result, host pyversion.Version) error {
	out := "{}"

	var err error
	if out, err = sjson.Set(out, "host", host.String()); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	if out, err = sjson.Set(out, "compatible", result.Compatible); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	for i, file := range result.Files {
		prefix := fmt.Sprintf("files.%d", i)
		if out, err = sjson.Set(out, prefix+".path", file.Path); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		if out, err = setSpan(out, prefix, file.Span); err != nil {
			return err
		}
	}

	if result.Compatible {
		if out, err = setSpan(out, "combined", result.Combined); err != nil {
			return err
		}
	}

	fmt.Println(out)
	return nil
}

func setSpan(out, prefix string, span pyversion.Interval) (string, error) {
	var err error
	if out, err = sjson.Set(out, prefix+".min", span.Min.String()); err != nil {
		return "", fmt.Errorf("failed to encode result: %w", err)
	}
	if out, err = sjson.Set(out, prefix+".max", span.Max.String()); err != nil {
		return "", fmt.Errorf("failed to encode result: %w", err)
	}
	if out, err = sjson.Set(out, prefix+".exact", span.IsExact()); err != nil {
		return "", fmt.Errorf("failed to encode result: %w", err)
	}
	return out, nil
}
