package csv2web

import "testing"

func TestResolveDelimiter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		dataType DataType
		path     string
		want     rune
	}{
		{"csv forced", DataTypeCSV, "data.tsv", Comma},
		{"tsv forced", DataTypeTSV, "data.csv", Tab},
		{"auto tsv extension", DataTypeAuto, "data.tsv", Tab},
		{"auto csv extension", DataTypeAuto, "data.csv", Comma},
		{"auto other extension", DataTypeAuto, "data.txt", Comma},
		{"auto nested tsv", DataTypeAuto, "exports/2024/people.tsv", Tab},
		{"auto is case sensitive", DataTypeAuto, "DATA.TSV", Comma},
		{"auto short path", DataTypeAuto, "ts", Comma},
		{"auto empty path", DataTypeAuto, "", Comma},
		{"auto bare tsv", DataTypeAuto, "tsv", Tab},
		{"unknown type behaves like auto", DataType("xlsx"), "a.tsv", Tab},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ResolveDelimiter(tt.dataType, tt.path); got != tt.want {
				t.Errorf("ResolveDelimiter(%q, %q) = %q, want %q", tt.dataType, tt.path, got, tt.want)
			}
		})
	}
}

func TestParseDataType(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"csv", "tsv", "auto"} {
		if dt, err := ParseDataType(s); err != nil || string(dt) != s {
			t.Errorf("ParseDataType(%q) = %q, %v", s, dt, err)
		}
	}
	for _, s := range []string{"", "CSV", "json"} {
		if _, err := ParseDataType(s); err == nil {
			t.Errorf("ParseDataType(%q) expected error", s)
		}
	}
}
