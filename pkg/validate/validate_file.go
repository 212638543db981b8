package validate

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Gunvolt24/foodbot/internal/ports"
)

// InputFormat — формат файла с сохранёнными запросами.
type InputFormat string

const (
	FormatAuto  InputFormat = "auto"
	FormatJSON  InputFormat = "json"
	FormatJSONL InputFormat = "jsonl"
)

// resolve — auto превращается в json/jsonl по расширению файла.
func (f InputFormat) resolve(path string) InputFormat {
	if f != FormatAuto {
		return f
	}
	if strings.EqualFold(filepath.Ext(path), ".jsonl") {
		return FormatJSONL
	}
	return FormatJSON
}

// ValidateFile — проверка сохранённых запросов вебхука из файла.
// Для одиночного JSON невалидный запрос возвращается ошибкой, для JSONL попадает в Summary.Rejected.
func ValidateFile(ctx context.Context, validator ports.RequestValidator, path string, format InputFormat, ow io.Writer) (Summary, error) {
	format = format.resolve(path)
	if format != FormatJSON && format != FormatJSONL {
		return Summary{}, fmt.Errorf("unsupported format: %s", format)
	}

	file, err := os.Open(path)
	if err != nil {
		return Summary{}, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	if format == FormatJSONL {
		return ValidateJSONLStream(ctx, validator, file, ow)
	}

	raw, err := io.ReadAll(file)
	if err != nil {
		return Summary{}, fmt.Errorf("read file: %w", err)
	}
	req, err := ValidateRequestFromJSON(ctx, validator, raw)
	if err != nil {
		var sum Summary
		sum.reject(1, err)
		return sum, err
	}
	if err := writeCanonical(ow, req); err != nil {
		return Summary{}, err
	}
	return Summary{Valid: 1}, nil
}
