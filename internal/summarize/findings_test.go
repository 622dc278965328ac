package summarize

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseFindings(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			"mixed list markers",
			"1. Finding A\n2) Finding B\n- Finding C",
			[]string{"Finding A", "Finding B", "Finding C"},
		},
		{
			"bullet points and blanks",
			"• First\n\n• Second\n   \n• Third",
			[]string{"First", "Second", "Third"},
		},
		{
			"caps at five",
			"1. a\n2. b\n3. c\n4. d\n5. e\n6. f\n7. g",
			[]string{"a", "b", "c", "d", "e"},
		},
		{
			"empty response",
			"\n\n",
			nil,
		},
		{
			"plain lines without markers",
			"The scheme converges quadratically\nMemory use is linear",
			[]string{"The scheme converges quadratically", "Memory use is linear"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseFindings(tt.raw); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseFindings(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestCompileOmitsEmptySections(t *testing.T) {
	s := &Summary{
		Overview:    "An overview.",
		KeyFindings: []string{"First", "Second"},
		Conclusions: "The end.",
	}

	got := compile(s)
	if !strings.HasPrefix(got, "# SCIENTIFIC PAPER SUMMARY") {
		t.Fatalf("missing top heading:\n%s", got)
	}
	for _, want := range []string{"## Overview", "## Key Findings", "1. First", "2. Second", "## Conclusions"} {
		if !strings.Contains(got, want) {
			t.Errorf("compiled summary missing %q", want)
		}
	}
	for _, absent := range []string{"## Methodology", "## Results"} {
		if strings.Contains(got, absent) {
			t.Errorf("compiled summary contains %q for an empty part", absent)
		}
	}
}

func TestCompileAlwaysEmitsOverviewAndFindings(t *testing.T) {
	got := compile(&Summary{})
	for _, want := range []string{"# SCIENTIFIC PAPER SUMMARY", "## Overview", "## Key Findings"} {
		if !strings.Contains(got, want) {
			t.Errorf("compile(empty) missing %q:\n%s", want, got)
		}
	}
}
