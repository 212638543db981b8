package validate

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Gunvolt24/foodbot/internal/domain"
)

func TestValidateFile_JSON_Auto_OK(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "one.json")
	if err := os.WriteFile(path, []byte(webhookJSON(domain.DisplayNameCompleteOrder, ctxName)), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	var out bytes.Buffer
	summary, err := ValidateFile(context.Background(), NewRequestValidator(), path, FormatAuto, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.String() != "1 valid / 0 invalid" {
		t.Fatalf("unexpected summary: %s", summary)
	}
	if strings.TrimSpace(out.String()) == "" {
		t.Fatalf("expected non-empty output")
	}
}

func TestValidateFile_JSON_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte(webhookJSON("", ctxName)), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	var out bytes.Buffer
	summary, err := ValidateFile(context.Background(), NewRequestValidator(), path, FormatJSON, &out)
	if !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("want ErrInvalidRequest, got %v", err)
	}
	if summary.Invalid != 1 || len(summary.Rejected) != 1 || summary.Rejected[0].Line != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if out.Len() != 0 {
		t.Fatalf("nothing must be written for invalid input")
	}
}

func TestValidateFile_JSONL_Auto_Mixed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "list.jsonl")
	content := oneLineJSON(webhookJSON(domain.DisplayNameAddToOrder, ctxName)) + "\n" +
		oneLineJSON(webhookJSON(domain.DisplayNameAddToOrder, "")) + "\n" + // нет контекста
		oneLineJSON(webhookJSON(domain.DisplayNameRemoveFromOrder, ctxName)) + "\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	var out bytes.Buffer
	summary, err := ValidateFile(context.Background(), NewRequestValidator(), path, FormatAuto, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.String() != "2 valid / 1 invalid" {
		t.Fatalf("unexpected summary: %s", summary)
	}
	// отклонена вторая строка: нет контекста сессии
	if len(summary.Rejected) != 1 || summary.Rejected[0].Line != 2 {
		t.Fatalf("unexpected rejected lines: %+v", summary.Rejected)
	}
}

func TestValidateFile_MissingFile(t *testing.T) {
	var out bytes.Buffer
	_, err := ValidateFile(context.Background(), NewRequestValidator(), filepath.Join(t.TempDir(), "nope.json"), FormatAuto, &out)
	if err == nil || !strings.Contains(err.Error(), "open file") {
		t.Fatalf("want open file error, got %v", err)
	}
}

func TestValidateFile_UnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x.json")
	if err := os.WriteFile(path, []byte("{}"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	var out bytes.Buffer
	_, err := ValidateFile(context.Background(), NewRequestValidator(), path, InputFormat("xml"), &out)
	if err == nil || !strings.Contains(err.Error(), "unsupported format") {
		t.Fatalf("want unsupported format error, got %v", err)
	}
}
