package extract

import "testing"

func TestObject(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
		ok   bool
	}{
		{
			name: "bare object",
			raw:  `{"a": 1}`,
			want: `{"a": 1}`,
			ok:   true,
		},
		{
			name: "json fence",
			raw:  "```json\n{\"a\": 1}\n```",
			want: `{"a": 1}`,
			ok:   true,
		},
		{
			name: "plain fence",
			raw:  "```\n{\"a\": 1}\n```",
			want: `{"a": 1}`,
			ok:   true,
		},
		{
			name: "prose before and after",
			raw:  "Here is the analysis:\n{\"verdict\": {\"signal\": \"green\"}}\nLet me know if you need more.",
			want: `{"verdict": {"signal": "green"}}`,
			ok:   true,
		},
		{
			name: "nested braces",
			raw:  `{"a": {"b": {"c": 3}}}`,
			want: `{"a": {"b": {"c": 3}}}`,
			ok:   true,
		},
		{
			name: "surrounding whitespace",
			raw:  "  \n {\"a\": 1} \n ",
			want: `{"a": 1}`,
			ok:   true,
		},
		{
			name: "array rejected",
			raw:  `[1, 2, 3]`,
			ok:   false,
		},
		{
			name: "truncated object",
			raw:  `{"a": 1, "b":`,
			ok:   false,
		},
		{
			name: "no json at all",
			raw:  "I could not analyze this product.",
			ok:   false,
		},
		{
			name: "empty input",
			raw:  "",
			ok:   false,
		},
		{
			name: "empty object",
			raw:  "{}",
			want: "{}",
			ok:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Object(tt.raw)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v (got %q)", ok, tt.ok, got)
			}
			if ok && got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestObject_Idempotent(t *testing.T) {
	first, ok := Object("```json\n{\"a\": 1}\n```")
	if !ok {
		t.Fatal("first pass failed")
	}
	second, ok := Object(first)
	if !ok || second != first {
		t.Errorf("second pass changed result: %q -> %q", first, second)
	}
}
