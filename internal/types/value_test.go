package types

import (
	"errors"
	"testing"
)

func TestValue_Text(t *testing.T) {
	tests := []struct {
		name    string
		value   Value
		want    string
		wantErr bool
	}{
		{"text", Text("hello"), "hello", false},
		{"empty", Value{}, "", false},
		{"integer", Integer(42), "42", false},
		{"negative integer", Integer(-7), "-7", false},
		{"binary fails", Binary([]byte{1, 2}), "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.value.Text()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Text() error = %v, wantErr %v", err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("Text() = %q, want %q", got, tc.want)
			}
			if tc.wantErr {
				var conv *ConversionError
				if !errors.As(err, &conv) {
					t.Errorf("error = %v, want *ConversionError", err)
				}
			}
		})
	}
}

func TestValue_Int(t *testing.T) {
	tests := []struct {
		name    string
		value   Value
		want    int64
		wantErr bool
	}{
		{"integer", Integer(12), 12, false},
		{"numeric text", Text("34"), 34, false},
		{"non-numeric text", Text("abc"), 0, true},
		{"empty", Value{}, 0, true},
		{"binary", Binary([]byte{1}), 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.value.Int()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Int() error = %v, wantErr %v", err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("Int() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestValue_IsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  bool
	}{
		{"zero value", Value{}, true},
		{"empty text", Text(""), true},
		{"text", Text("x"), false},
		{"integer zero", Integer(0), false},
		{"empty binary", Binary(nil), true},
		{"binary", Binary([]byte{0}), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.value.IsEmpty(); got != tc.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestValue_Equal(t *testing.T) {
	if !Text("a").Equal(Text("a")) {
		t.Error("equal text values differ")
	}
	if Text("42").Equal(Integer(42)) {
		t.Error("text and integer with same rendering compare equal")
	}
	if !Binary([]byte{1, 2}).Equal(Binary([]byte{1, 2})) {
		t.Error("equal binary values differ")
	}
	if !(Value{}).Equal(Value{}) {
		t.Error("zero values differ")
	}
}

func TestValue_String(t *testing.T) {
	if got := Binary([]byte{1, 2, 3}).String(); got != "<3 binary bytes>" {
		t.Errorf("String() = %q", got)
	}
	if got := Integer(5).String(); got != "5" {
		t.Errorf("String() = %q", got)
	}
}
