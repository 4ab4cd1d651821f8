// Package operations implements the analysis workflows shared by pyspan
// commands.
package operations

import (
	"context"
	"fmt"

	"github.com/pyspan/pyspan/internal/astjson"
	"github.com/pyspan/pyspan/internal/compat"
	"github.com/pyspan/pyspan/internal/core"
	"github.com/pyspan/pyspan/internal/pyversion"
)

// FileSpan is the detected version span for a single AST dump.
type FileSpan struct {
	Path string
	Span pyversion.Interval
}

// Result aggregates the spans of every analyzed dump.
type Result struct {
	Files []FileSpan

	// Combined is the intersection of all file spans: the versions that
	// can parse the whole project. Valid only when Compatible is true.
	Combined pyversion.Interval

	// Compatible is false when two files demand disjoint version spans,
	// meaning no single interpreter parses them all.
	Compatible bool
}

// AnalyzeDumps decodes and analyzes each AST dump in paths against the
// given host version. It fails on the first unreadable or undecodable
// file; analysis itself cannot fail on a well-formed tree.
func AnalyzeDumps(ctx context.Context, fs core.FileSystem, paths []string, host pyversion.Version) (*Result, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no AST dumps to analyze")
	}

	result := &Result{
		Files:      make([]FileSpan, 0, len(paths)),
		Compatible: true,
	}

	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		root, err := astjson.DecodeFile(ctx, fs, path)
		if err != nil {
			return nil, err
		}

		span, err := compat.Detect(root, host)
		if err != nil {
			return nil, fmt.Errorf("failed to analyze %q: %w", path, err)
		}

		result.Files = append(result.Files, FileSpan{Path: path, Span: span})

		if i == 0 {
			result.Combined = span
			continue
		}
		if !result.Compatible {
			continue
		}

		combined, ok := pyversion.Intersect(result.Combined, span)
		if !ok {
			result.Compatible = false
			continue
		}
		result.Combined = combined
	}

	return result, nil
}
