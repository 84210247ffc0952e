package worker

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jhouston2019/auditintel/internal/model"
	"github.com/jhouston2019/auditintel/internal/pipeline"
)

// mockAnalyzer implements NoticeAnalyzer
type mockAnalyzer struct {
	shouldError bool
}

func (m *mockAnalyzer) Analyze(ctx context.Context, noticeText string, opts pipeline.Options) (*model.AnalysisResult, error) {
	time.Sleep(10 * time.Millisecond) // Simulate work
	if m.shouldError {
		return nil, errors.New("analyze error")
	}
	return &model.AnalysisResult{
		Version: model.Version,
		Classification: &model.Classification{
			IsAudit: true,
			Type:    model.AuditCorrespondence,
		},
	}, nil
}

func writeNotice(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestBatchProcessor_ProcessPaths(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeNotice(t, dir, "a.txt", "correspondence audit notice"),
		writeNotice(t, dir, "b.txt", "correspondence audit notice"),
		writeNotice(t, dir, "c.txt", "correspondence audit notice"),
	}

	processor := NewBatchProcessor(&mockAnalyzer{}, 2, nil, "")
	results := processor.ProcessPaths(context.Background(), paths, pipeline.Options{})

	if len(results) != 3 {
		t.Errorf("expected 3 results, got %d", len(results))
	}

	for _, res := range results {
		if res.Error != nil {
			t.Errorf("unexpected error for %s: %v", res.Path, res.Error)
			continue
		}
		if res.Analysis == nil {
			t.Errorf("expected analysis for %s", res.Path)
		}
	}
}

func TestBatchProcessor_ProcessPaths_LargeBatch(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i := 0; i < 40; i++ {
		paths = append(paths, writeNotice(t, dir, fmt.Sprintf("n%d.txt", i), "correspondence audit notice"))
	}

	processor := NewBatchProcessor(&mockAnalyzer{}, 2, nil, "")
	results := processor.ProcessPaths(context.Background(), paths, pipeline.Options{})

	if len(results) != len(paths) {
		t.Errorf("expected %d results, got %d", len(paths), len(results))
	}
}

func TestBatchProcessor_ProcessPaths_AnalyzerError(t *testing.T) {
	dir := t.TempDir()
	paths := []string{writeNotice(t, dir, "a.txt", "notice")}

	processor := NewBatchProcessor(&mockAnalyzer{shouldError: true}, 2, nil, "")
	results := processor.ProcessPaths(context.Background(), paths, pipeline.Options{})

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Error == nil {
		t.Error("expected error, got nil")
	}
	if results[0].Analysis != nil {
		t.Error("expected nil analysis on error")
	}
}

func TestBatchProcessor_ProcessPaths_MissingFile(t *testing.T) {
	processor := NewBatchProcessor(&mockAnalyzer{}, 2, nil, "")
	results := processor.ProcessPaths(context.Background(), []string{"/nonexistent/notice.txt"}, pipeline.Options{})

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Error == nil {
		t.Error("expected read error, got nil")
	}
}

func TestBatchProcessor_ProcessPaths_Empty(t *testing.T) {
	processor := NewBatchProcessor(&mockAnalyzer{}, 2, nil, "")
	results := processor.ProcessPaths(context.Background(), []string{}, pipeline.Options{})
	if len(results) != 0 {
		t.Errorf("expected 0 results, got %d", len(results))
	}
}

func TestReadPathsFromFile(t *testing.T) {
	content := `notices/a.txt
# comment
notices/b.txt

notices/a.txt
notices/c.txt   `

	tmpfile, err := os.CreateTemp("", "index")
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = os.Remove(tmpfile.Name())
	}()

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	paths, err := ReadPathsFromFile(tmpfile.Name())
	if err != nil {
		t.Fatalf("ReadPathsFromFile failed: %v", err)
	}

	expected := []string{"notices/a.txt", "notices/b.txt", "notices/c.txt"}
	if len(paths) != len(expected) {
		t.Fatalf("expected %d paths, got %d: %v", len(expected), len(paths), paths)
	}
	for i, want := range expected {
		if paths[i] != want {
			t.Errorf("path %d: expected %q, got %q", i, want, paths[i])
		}
	}
}

func TestReadPathsFromFile_Missing(t *testing.T) {
	_, err := ReadPathsFromFile("/nonexistent/index.txt")
	if err == nil {
		t.Error("expected error for missing file")
	}
}
