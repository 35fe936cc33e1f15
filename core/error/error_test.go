// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity, and
//              metadata handling.
// Author: AugmentedFifth
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial implementation

package error

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "expected newline after module declaration"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}

	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}

	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() should not be empty")
	}
}

func TestNewf(t *testing.T) {
	err := Newf("the operator %s is reserved", "->")

	want := "the operator -> is reserved"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		wantNil bool
		wantMsg string
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:    "wrap standard error",
			err:     errors.New("original error"),
			message: "wrapper message",
			wantMsg: "wrapper message: original error",
		},
		{
			name:    "wrap structured error",
			err:     New("unterminated string").WithCode(CodeSyntaxError),
			message: "parse failed",
			wantMsg: "parse failed: unterminated string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.err, tt.message)

			if tt.wantNil {
				if wrapped != nil {
					t.Errorf("Wrap() = %v, want nil", wrapped)
				}
				return
			}

			if wrapped == nil {
				t.Fatal("Wrap() returned nil")
			}

			if wrapped.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", wrapped.Error(), tt.wantMsg)
			}

			// Code and severity of our own errors survive wrapping
			if brwErr, ok := tt.err.(*Error); ok {
				if wrapped.Code() != brwErr.Code() {
					t.Errorf("Code() = %v, want %v", wrapped.Code(), brwErr.Code())
				}
				if !errors.Is(wrapped, brwErr) {
					t.Error("errors.Is should find the wrapped error")
				}
			}
		})
	}
}

func TestWithCode(t *testing.T) {
	err := New("source must not start with leading whitespace").WithCode(CodeSyntaxError)

	if err.Code() != CodeSyntaxError {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeSyntaxError)
	}

	// Severity auto-derived from the code
	if err.Severity() != SeverityLow {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityLow)
	}
}

func TestWithSeverityNotOverridden(t *testing.T) {
	err := New("boom").WithSeverity(SeverityCritical).WithCode(CodeSyntaxError)

	if err.Severity() != SeverityCritical {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityCritical)
	}
}

func TestWithDetail(t *testing.T) {
	err := New("unexpected ' or EOF").
		WithCode(CodeSyntaxError).
		WithDetail("offset", 17).
		WithDetail("near", "'x")

	details := err.Details()
	if details["offset"] != 17 {
		t.Errorf("details[offset] = %v, want 17", details["offset"])
	}
	if details["near"] != "'x" {
		t.Errorf("details[near] = %v, want 'x", details["near"])
	}

	// Details() returns a copy
	details["offset"] = 99
	if err.Details()["offset"] != 17 {
		t.Error("Details() must return a copy")
	}
}

func TestRootCause(t *testing.T) {
	root := errors.New("io failure")
	mid := Wrap(root, "read failed")
	top := Wrap(mid, "parse aborted")

	if got := top.RootCause(); got != root {
		t.Errorf("RootCause() = %v, want %v", got, root)
	}
}

func TestMarshalJSON(t *testing.T) {
	err := New("expected closing paren").
		WithCode(CodeSyntaxError).
		WithOperation("parser.parseParened")

	data, jsonErr := json.Marshal(err)
	if jsonErr != nil {
		t.Fatalf("Marshal failed: %v", jsonErr)
	}

	var decoded map[string]interface{}
	if jsonErr := json.Unmarshal(data, &decoded); jsonErr != nil {
		t.Fatalf("Unmarshal failed: %v", jsonErr)
	}

	if decoded["message"] != "expected closing paren" {
		t.Errorf("message = %v", decoded["message"])
	}
	if decoded["code"] != "SYNTAX_ERROR" {
		t.Errorf("code = %v", decoded["code"])
	}
	if decoded["operation"] != "parser.parseParened" {
		t.Errorf("operation = %v", decoded["operation"])
	}
}

func TestHelpers(t *testing.T) {
	brw := New("empty").WithCode(CodeEmptyProgram)
	std := errors.New("plain")

	if !HasCode(brw, CodeEmptyProgram) {
		t.Error("HasCode should match")
	}
	if HasCode(std, CodeEmptyProgram) {
		t.Error("HasCode should not match a standard error")
	}
	if GetCode(brw) != CodeEmptyProgram {
		t.Errorf("GetCode = %v", GetCode(brw))
	}
	if GetCode(std) != CodeUnknown {
		t.Errorf("GetCode = %v", GetCode(std))
	}
	if GetSeverity(std) != SeverityMedium {
		t.Errorf("GetSeverity = %v", GetSeverity(std))
	}
}
