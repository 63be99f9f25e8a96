package xmldocrinse

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestNewError(t *testing.T) {
	err := NewError(CodeMissingFile, "module 'Foo.dll' not found")
	if err.Code != CodeMissingFile {
		t.Errorf("expected code %s, got %s", CodeMissingFile, err.Code)
	}
	if err.Message != "module 'Foo.dll' not found" {
		t.Errorf("unexpected message %q", err.Message)
	}
}

func TestErrorf(t *testing.T) {
	err := Errorf(CodeMissingFile, "XML doc file '%s' not found", "Foo.xml")
	if err.Message != "XML doc file 'Foo.xml' not found" {
		t.Errorf("expected formatted message, got %s", err.Message)
	}
}

func TestErrorError(t *testing.T) {
	err := NewError(CodeInternal, "something went wrong")
	expected := "internal: something went wrong"
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("bad header")
	err := Wrap(CodeDocumentLoad, cause, "load Foo.xml")
	if err.Message != "load Foo.xml: bad header" {
		t.Errorf("unexpected message %q", err.Message)
	}
	if !errors.Is(err, cause) {
		t.Error("expected wrapped error to match its cause")
	}
}

func TestWithDetail(t *testing.T) {
	base := NewError(CodeWrite, "write failed")
	withPath := base.WithDetail("path", "Foo.xml")
	if base.Details != nil {
		t.Error("WithDetail must not modify the receiver")
	}
	if withPath.Details["path"] != "Foo.xml" {
		t.Errorf("expected path detail, got %v", withPath.Details)
	}
	both := withPath.WithDetail("backup", "Foo.xml.backup")
	if len(both.Details) != 2 || len(withPath.Details) != 1 {
		t.Errorf("unexpected details %v / %v", both.Details, withPath.Details)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want int
	}{
		{CodeUsage, 2},
		{CodeMissingFile, 1},
		{CodeMetadataLoad, 1},
		{CodeInternal, 1},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.ExitCode(); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestAsError(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		wantCode ErrorCode
		wantMsg  string
	}{
		{
			name:     "nil error",
			input:    nil,
			wantCode: "",
		},
		{
			name:     "passthrough",
			input:    NewError(CodeMissingFile, "not found"),
			wantCode: CodeMissingFile,
			wantMsg:  "not found",
		},
		{
			name:     "wrapped passthrough",
			input:    fmt.Errorf("outer: %w", NewError(CodeWrite, "disk full")),
			wantCode: CodeWrite,
			wantMsg:  "disk full",
		},
		{
			name:     "context canceled",
			input:    context.Canceled,
			wantCode: CodeCanceled,
			wantMsg:  "context canceled",
		},
		{
			name:     "context deadline exceeded",
			input:    context.DeadlineExceeded,
			wantCode: CodeCanceled,
			wantMsg:  "context deadline exceeded",
		},
		{
			name:     "not exist",
			input:    fmt.Errorf("open Foo.xml: %w", os.ErrNotExist),
			wantCode: CodeMissingFile,
			wantMsg:  "open Foo.xml: file does not exist",
		},
		{
			name:     "generic error",
			input:    errors.New("something failed"),
			wantCode: CodeInternal,
			wantMsg:  "something failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AsError(tt.input)
			if tt.input == nil {
				if result != nil {
					t.Errorf("expected nil for nil input, got %v", result)
				}
				return
			}
			if result.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, result.Code)
			}
			if result.Message != tt.wantMsg {
				t.Errorf("expected message %q, got %q", tt.wantMsg, result.Message)
			}
		})
	}
}

func TestAsError_ValidationErrors(t *testing.T) {
	type settings struct {
		LogLevel  string `validate:"oneof=debug info"`
		CacheSize int    `validate:"gte=0"`
	}

	err := validator.New().Struct(settings{LogLevel: "loud", CacheSize: -1})

	result := AsError(fmt.Errorf("invalid settings: %w", err))
	if result.Code != CodeInvalidConfig {
		t.Errorf("expected code %s, got %s", CodeInvalidConfig, result.Code)
	}
	want := "LogLevel: must be one of: debug info; CacheSize: must be at least 0"
	if result.Message != want {
		t.Errorf("expected message %q, got %q", want, result.Message)
	}
	if _, ok := result.Details["LogLevel"]; !ok {
		t.Error("expected LogLevel field in details")
	}
	if _, ok := result.Details["CacheSize"]; !ok {
		t.Error("expected CacheSize field in details")
	}
}

func TestAsError_MultiError(t *testing.T) {
	multiErr := errors.Join(errors.New("error 1"), errors.New("error 2"))

	result := AsError(multiErr)
	if result.Code != CodeInternal {
		t.Errorf("expected code from first error %s, got %s", CodeInternal, result.Code)
	}
	if result.Message != "error 1; error 2" {
		t.Errorf("expected combined message, got %q", result.Message)
	}
}
