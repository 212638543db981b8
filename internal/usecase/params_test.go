package usecase

import (
	"errors"
	"testing"

	"github.com/Gunvolt24/foodbot/internal/domain"
)

func TestIntList(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		want    []int
		wantErr error
	}{
		{"whole_floats", []any{2.0, 1.0}, []int{2, 1}, nil},
		{"numeric_strings", []any{"3", " 4 ", "5.0"}, []int{3, 4, 5}, nil},
		{"scalar", 5.0, []int{5}, nil},
		{"zero_and_negative_pass_through", []any{0.0, -3.0}, []int{0, -3}, nil},
		{"missing", nil, nil, nil},
		{"fraction", []any{2.0, 0.7}, nil, errNotWholeNumber},
		{"fraction_string", []any{"1.5"}, nil, errNotWholeNumber},
		{"non_numeric", []any{"two"}, nil, domain.ErrMalformedRequest},
		{"bool", []any{true}, nil, domain.ErrMalformedRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := map[string]any{}
			if tt.value != nil {
				params[paramNumber] = tt.value
			}
			got, err := intList(params, paramNumber)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("want %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestStringList(t *testing.T) {
	got, err := stringList(map[string]any{paramFoodItem: []any{"pizza", "coke"}}, paramFoodItem)
	if err != nil || len(got) != 2 || got[0] != "pizza" || got[1] != "coke" {
		t.Fatalf("got %v err=%v", got, err)
	}

	got, err = stringList(map[string]any{paramFoodItem: "dosa"}, paramFoodItem)
	if err != nil || len(got) != 1 || got[0] != "dosa" {
		t.Fatalf("scalar: got %v err=%v", got, err)
	}

	if _, err = stringList(map[string]any{paramFoodItem: []any{1.0}}, paramFoodItem); !errors.Is(err, domain.ErrMalformedRequest) {
		t.Fatalf("want ErrMalformedRequest, got %v", err)
	}
}

func TestOrderIDParam(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		want    int64
		wantErr bool
	}{
		{"string", "42", 42, false},
		{"float", 42.0, 42, false},
		{"fraction", 4.2, 0, true},
		{"word", "forty-two", 0, true},
		{"missing", nil, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := map[string]any{}
			if tt.value != nil {
				params[paramOrderID] = tt.value
			}
			got, err := orderIDParam(params)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrMalformedRequest) {
					t.Fatalf("want ErrMalformedRequest, got %v", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("got %d err=%v, want %d", got, err, tt.want)
			}
		})
	}
}
