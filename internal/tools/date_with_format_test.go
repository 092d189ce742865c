// internal/tools/date_with_format_test.go
package tools

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/tempusmcp/tempus/internal/mcp"
)

func TestDateWithFormat(t *testing.T) {
	cases := []struct {
		name    string
		args    map[string]any
		pattern string
	}{
		{"date only", map[string]any{"format": "%Y-%m-%d"}, `^\d{4}-\d{2}-\d{2}$`},
		{"default format", map[string]any{"format": DefaultFormat}, `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`},
		{"no argument", map[string]any{}, `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`},
		{"month name", map[string]any{"format": "%B %d, %Y"}, `^[A-Z][a-z]+ \d{2}, \d{4}$`},
		{"escaped percent", map[string]any{"format": "%%"}, `^%$`},
	}
	for _, tc := range cases {
		content, err := DateWithFormat(tc.args)
		if err != nil {
			t.Fatalf("%s: DateWithFormat failed: %v", tc.name, err)
		}
		if len(content) != 1 || content[0].Type != "text" {
			t.Fatalf("%s: expected one text part, got %+v", tc.name, content)
		}
		if !regexp.MustCompile(tc.pattern).MatchString(content[0].Text) {
			t.Fatalf("%s: output %q does not match %s", tc.name, content[0].Text, tc.pattern)
		}
	}
}

func TestDateWithFormatInvalidPattern(t *testing.T) {
	for _, pattern := range []string{"%Q", "%", "abc%", "%Y-%m-%d %"} {
		_, err := DateWithFormat(map[string]any{"format": pattern})
		if err == nil {
			t.Fatalf("pattern %q should fail", pattern)
		}
		if !errors.Is(err, mcp.ErrInvalidArgument) {
			t.Fatalf("pattern %q: expected invalid-argument failure, got %v", pattern, err)
		}
		if !strings.HasPrefix(err.Error(), "Invalid format string - ") {
			t.Fatalf("pattern %q: unexpected message %q", pattern, err.Error())
		}
	}
}

func TestDateWithFormatRejectsNonString(t *testing.T) {
	_, err := DateWithFormat(map[string]any{"format": 20060102})
	if !errors.Is(err, mcp.ErrInvalidArgument) {
		t.Fatalf("expected invalid-argument failure, got %v", err)
	}
}

func TestAllAdvertisesBothTools(t *testing.T) {
	all := All()
	if len(all) != 2 {
		t.Fatalf("expected 2 tools, got %d", len(all))
	}
	if all[0].Definition.Name != CurrentDateName || all[1].Definition.Name != DateWithFormatName {
		t.Fatalf("unexpected order: %s, %s", all[0].Definition.Name, all[1].Definition.Name)
	}
	for _, tool := range all {
		if tool.Handler == nil {
			t.Fatalf("tool %s has no handler", tool.Definition.Name)
		}
		if tool.Definition.InputSchema.Type != "object" {
			t.Fatalf("tool %s schema type = %q", tool.Definition.Name, tool.Definition.InputSchema.Type)
		}
	}
}
