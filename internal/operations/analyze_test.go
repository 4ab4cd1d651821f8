package operations

import (
	"context"
	"testing"

	"github.com/pyspan/pyspan/internal/core"
	"github.com/pyspan/pyspan/internal/pyversion"
)

var analyzeHost = pyversion.Version{Major: 3, Minor: 13}

const (
	plainDump = `{"_type": "Module", "body": [{"_type": "Pass"}]}`

	// A match statement floors the span at 3.10.
	matchDump = `{
		"_type": "Module",
		"body": [{
			"_type": "Match",
			"subject": {"_type": "Name", "id": "x"},
			"cases": [{
				"_type": "match_case",
				"pattern": {"_type": "MatchAs", "pattern": null, "name": null},
				"guard": null,
				"body": [{"_type": "Pass"}]
			}]
		}]
	}`

	// A backtick repr pins the span to exactly 2.7.
	reprDump = `{
		"_type": "Module",
		"body": [{
			"_type": "Expr",
			"value": {"_type": "Repr", "value": {"_type": "Name", "id": "x"}}
		}]
	}`
)

func TestAnalyzeDumps_SingleFile(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("a.ast.json", []byte(matchDump))

	result, err := AnalyzeDumps(context.Background(), fs, []string{"a.ast.json"}, analyzeHost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.Compatible {
		t.Fatal("expected compatible result")
	}
	if len(result.Files) != 1 {
		t.Fatalf("expected 1 file span, got %d", len(result.Files))
	}
	expected := pyversion.NewInterval(pyversion.Version{Major: 3, Minor: 10}, analyzeHost)
	if result.Combined != expected {
		t.Errorf("expected span %s, got %s", expected, result.Combined)
	}
}

func TestAnalyzeDumps_CombinesSpans(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("plain.ast.json", []byte(plainDump))
	fs.SetFile("match.ast.json", []byte(matchDump))

	result, err := AnalyzeDumps(context.Background(), fs, []string{"plain.ast.json", "match.ast.json"}, analyzeHost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.Compatible {
		t.Fatal("expected compatible result")
	}
	// The plain file spans 2.7 through host; the match file narrows the
	// intersection to 3.10 through host.
	expected := pyversion.NewInterval(pyversion.Version{Major: 3, Minor: 10}, analyzeHost)
	if result.Combined != expected {
		t.Errorf("expected combined span %s, got %s", expected, result.Combined)
	}
}

func TestAnalyzeDumps_DisjointSpans(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("legacy.ast.json", []byte(reprDump))
	fs.SetFile("modern.ast.json", []byte(matchDump))

	result, err := AnalyzeDumps(context.Background(), fs, []string{"legacy.ast.json", "modern.ast.json"}, analyzeHost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Compatible {
		t.Error("expected incompatible result for disjoint spans")
	}
	if len(result.Files) != 2 {
		t.Errorf("expected per-file spans for both inputs, got %d", len(result.Files))
	}
}

func TestAnalyzeDumps_NoInputs(t *testing.T) {
	fs := core.NewMockFileSystem()

	if _, err := AnalyzeDumps(context.Background(), fs, nil, analyzeHost); err == nil {
		t.Fatal("expected error for empty input list")
	}
}

func TestAnalyzeDumps_UnreadableFile(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("ok.ast.json", []byte(plainDump))

	_, err := AnalyzeDumps(context.Background(), fs, []string{"ok.ast.json", "missing.ast.json"}, analyzeHost)
	if err == nil {
		t.Fatal("expected error for unreadable file")
	}
}

func TestAnalyzeDumps_ContextCancelled(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("a.ast.json", []byte(plainDump))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := AnalyzeDumps(ctx, fs, []string{"a.ast.json"}, analyzeHost); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
