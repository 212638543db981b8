package validate

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/foodbot/internal/ports"
)

// maxLineSize — потолок одной строки JSONL (запросы NLU с payload бывают крупными).
const maxLineSize = 10 << 20

// Rejected — отклонённая строка потока (нумерация с 1).
type Rejected struct {
	Line int
	Err  error
}

// Summary — итог валидации файла или потока.
type Summary struct {
	Valid    int
	Invalid  int
	Rejected []Rejected
}

func (s Summary) String() string {
	return fmt.Sprintf("%d valid / %d invalid", s.Valid, s.Invalid)
}

func (s *Summary) reject(line int, err error) {
	s.Invalid++
	s.Rejected = append(s.Rejected, Rejected{Line: line, Err: err})
}

// ValidateJSONLStream — построчная проверка запросов вебхука.
// Валидные строки пишутся в ow в канонической форме, пустые пропускаются.
func ValidateJSONLStream(ctx context.Context, validator ports.RequestValidator, ir io.Reader, ow io.Writer) (Summary, error) {
	var sum Summary

	scanner := bufio.NewScanner(ir)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for lineNo := 1; scanner.Scan(); lineNo++ {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		req, err := ValidateRequestFromJSON(ctx, validator, line)
		if err != nil {
			sum.reject(lineNo, err)
			continue
		}
		if err := writeCanonical(ow, req); err != nil {
			return sum, err
		}
		sum.Valid++
	}
	if err := scanner.Err(); err != nil {
		return sum, fmt.Errorf("scan: %w", err)
	}
	return sum, nil
}

// writeCanonical — одна строка JSON только с известными полями.
func writeCanonical(ow io.Writer, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal canonical: %w", err)
	}
	if _, err := ow.Write(append(raw, '\n')); err != nil {
		return fmt.Errorf("write canonical: %w", err)
	}
	return nil
}
