package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Gunvolt24/foodbot/pkg/validate"
)

// CLI-приложение для проверки сохранённых запросов вебхука (.json или .jsonl).
func main() {
	inputPath := flag.String("in", "", "path to input (.json or .jsonl). If empty, reads from stdin.")
	formatStr := flag.String("format", "auto", "input format: auto|json|jsonl")
	flag.Parse()

	ctx := context.Background()
	requestValidator := validate.NewRequestValidator()

	format := validate.InputFormat(*formatStr)
	path := *inputPath

	// stdin вариант: считаем, что jsonl
	if path == "" {
		path = "/dev/stdin"
		if format == validate.FormatAuto {
			format = validate.FormatJSONL
		}
	}

	summary, err := validate.ValidateFile(ctx, requestValidator, path, format, os.Stdout)
	for _, rej := range summary.Rejected {
		fmt.Fprintf(os.Stderr, "line %d: %v\n", rej.Line, rej.Err)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "validation: %v (%s)\n", err, summary)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "validation ok (%s)\n", summary)
}
