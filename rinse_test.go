package xmldocrinse

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/trevorprinn/XmlDocRinse/internal/testfixtures"
	"github.com/trevorprinn/XmlDocRinse/sink"
)

// fooFiles writes the Foo metadata and documentation into a temp dir and
// returns their paths.
func fooFiles(t *testing.T) (modulePath, docPath string) {
	t.Helper()
	dir := t.TempDir()
	modulePath = filepath.Join(dir, "Foo.yaml")
	docPath = filepath.Join(dir, "Foo.xml")
	if err := os.WriteFile(modulePath, []byte(testfixtures.FooYAML), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(docPath, []byte(testfixtures.FooDocument), 0644); err != nil {
		t.Fatal(err)
	}
	return modulePath, docPath
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func TestDefaultDocPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Foo.dll", "Foo.xml"},
		{"bin/Foo.yaml", "bin/Foo.xml"},
		{"Foo.Bar.json", "Foo.Bar.xml"},
		{"Foo", "Foo.xml"},
	}
	for _, tt := range tests {
		if got := DefaultDocPath(tt.in); got != tt.want {
			t.Errorf("DefaultDocPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRun_Foo(t *testing.T) {
	modulePath, docPath := fooFiles(t)

	res, err := New(modulePath).WithLogger(quietLogger()).Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.DocPath != docPath {
		t.Errorf("expected doc path %q, got %q", docPath, res.DocPath)
	}
	if res.BackupPath != docPath+".backup" {
		t.Errorf("unexpected backup path %q", res.BackupPath)
	}
	if res.SurfaceSize != 3 {
		t.Errorf("expected surface of 3, got %d", res.SurfaceSize)
	}
	if res.Stats.Kept != 3 || res.Stats.Removed != 1 {
		t.Errorf("unexpected stats %+v", res.Stats)
	}

	backup, err := os.ReadFile(res.BackupPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(backup) != testfixtures.FooDocument {
		t.Error("backup must hold the original document")
	}

	rinsed, err := os.ReadFile(docPath)
	if err != nil {
		t.Fatal(err)
	}
	out := string(rinsed)
	for _, name := range []string{`"T:N.Foo"`, `"F:N.Foo.Bar"`, `"M:N.Foo.#ctor"`} {
		if !strings.Contains(out, name) {
			t.Errorf("expected %s to be kept", name)
		}
	}
	if strings.Contains(out, "F:N.Foo.Baz") {
		t.Error("expected F:N.Foo.Baz to be removed")
	}
	if strings.Contains(out, "\n\n") {
		t.Errorf("removed entry left a blank line:\n%s", out)
	}
}

func TestRun_Idempotent(t *testing.T) {
	modulePath, docPath := fooFiles(t)
	ctx := context.Background()

	if _, err := New(modulePath).WithLogger(quietLogger()).Run(ctx); err != nil {
		t.Fatal(err)
	}
	first, _ := os.ReadFile(docPath)

	res, err := New(modulePath).WithLogger(quietLogger()).Run(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if res.Stats.Removed != 0 {
		t.Errorf("second run removed %d entries", res.Stats.Removed)
	}
	second, _ := os.ReadFile(docPath)
	if string(first) != string(second) {
		t.Error("second run changed the document")
	}
}

func TestRun_DryRun(t *testing.T) {
	modulePath, docPath := fooFiles(t)

	res, err := New(modulePath).DryRun(true).WithLogger(quietLogger()).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.Stats.Removed != 1 {
		t.Errorf("expected 1 removal, got %d", res.Stats.Removed)
	}
	if res.BackupPath != "" {
		t.Errorf("dry run must not back up, got %q", res.BackupPath)
	}
	if _, err := os.Stat(docPath + ".backup"); !errors.Is(err, os.ErrNotExist) {
		t.Error("dry run wrote a backup")
	}
	content, _ := os.ReadFile(docPath)
	if string(content) != testfixtures.FooDocument {
		t.Error("dry run modified the document")
	}
}

func TestRun_Sink(t *testing.T) {
	modulePath, docPath := fooFiles(t)
	mem := sink.NewMemorySink()

	_, err := New(modulePath).
		WithSink(mem).
		WithBackupSuffix(".orig").
		WithCacheSize(0).
		WithLogger(quietLogger()).
		Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	out := mem.Get("Foo.xml")
	if out == nil {
		t.Fatalf("expected Foo.xml in sink, got %v", mem.Files())
	}
	if strings.Contains(string(out), "F:N.Foo.Baz") {
		t.Error("expected F:N.Foo.Baz to be removed")
	}
	if _, err := os.Stat(docPath + ".orig"); err != nil {
		t.Errorf("expected backup with custom suffix: %v", err)
	}
	original, _ := os.ReadFile(docPath)
	if string(original) != testfixtures.FooDocument {
		t.Error("document on disk must be untouched when a sink is set")
	}
}

func TestRun_Errors(t *testing.T) {
	modulePath, docPath := fooFiles(t)
	dir := filepath.Dir(modulePath)
	badYAML := filepath.Join(dir, "Bad.yaml")
	if err := os.WriteFile(badYAML, []byte("types: [{namespace: N}]"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "Bad.xml"), []byte(testfixtures.FooDocument), 0644); err != nil {
		t.Fatal(err)
	}
	notXML := filepath.Join(dir, "Broken.xml")
	if err := os.WriteFile(notXML, []byte("not xml"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		rinser   *Rinser
		wantCode ErrorCode
		wantMsg  string
	}{
		{
			name:     "no module",
			rinser:   New(""),
			wantCode: CodeUsage,
		},
		{
			name:     "missing module",
			rinser:   New(filepath.Join(dir, "Missing.yaml")).WithDocPath(docPath),
			wantCode: CodeMissingFile,
			wantMsg:  "module '" + filepath.Join(dir, "Missing.yaml") + "' not found",
		},
		{
			name:     "missing doc",
			rinser:   New(modulePath).WithDocPath(filepath.Join(dir, "Missing.xml")),
			wantCode: CodeMissingFile,
			wantMsg:  "XML doc file '" + filepath.Join(dir, "Missing.xml") + "' not found",
		},
		{
			name:     "invalid metadata",
			rinser:   New(badYAML),
			wantCode: CodeMetadataLoad,
		},
		{
			name:     "broken document",
			rinser:   New(modulePath).WithDocPath(notXML),
			wantCode: CodeDocumentLoad,
		},
		{
			name:     "empty backup suffix",
			rinser:   New(modulePath).WithBackupSuffix(""),
			wantCode: CodeWrite,
		},
		{
			name:     "negative cache size",
			rinser:   New(modulePath).WithCacheSize(-1).DryRun(true),
			wantCode: CodeInvalidConfig,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.rinser.WithLogger(quietLogger()).Run(context.Background())
			var runErr *Error
			if !errors.As(err, &runErr) {
				t.Fatalf("expected *Error, got %v", err)
			}
			if runErr.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s (%v)", tt.wantCode, runErr.Code, err)
			}
			if tt.wantMsg != "" && runErr.Message != tt.wantMsg {
				t.Errorf("expected message %q, got %q", tt.wantMsg, runErr.Message)
			}
		})
	}

	// A missing file is reported before anything is written.
	if _, err := os.Stat(filepath.Join(dir, "Missing.xml.backup")); !errors.Is(err, os.ErrNotExist) {
		t.Error("missing module must not produce a backup")
	}
}

func TestSurface(t *testing.T) {
	modulePath, _ := fooFiles(t)
	surface, err := New(modulePath).WithLogger(quietLogger()).Surface(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, id := range surface.IDs() {
		got = append(got, id.String())
	}
	if strings.Join(got, " ") != strings.Join(testfixtures.FooSurface, " ") {
		t.Errorf("expected %v, got %v", testfixtures.FooSurface, got)
	}
}

func TestRun_Logs(t *testing.T) {
	modulePath, _ := fooFiles(t)
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	if _, err := New(modulePath).WithLogger(logger).Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"backup written", "surface built", "entry removed", "msg=rinsed", "kept=3", "removed=1"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected log to contain %q:\n%s", want, out)
		}
	}
}
