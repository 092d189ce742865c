// internal/mcp/dispatcher_test.go
package mcp

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"
)

func newTestDispatcher(t *testing.T, validate bool, tools ...Tool) *Dispatcher {
	t.Helper()
	r := NewRegistry()
	for _, tool := range tools {
		if err := r.Register(tool); err != nil {
			t.Fatal(err)
		}
	}
	return NewDispatcher(r, validate)
}

func TestInvokeUnknownTool(t *testing.T) {
	d := newTestDispatcher(t, true, testTool("known"))

	for _, name := range []string{"missing", "", "KNOWN", "known "} {
		result, err := d.Invoke(name, nil)
		if err != nil {
			t.Fatalf("Invoke(%q) escalated: %v", name, err)
		}
		if !result.IsError {
			t.Fatalf("Invoke(%q) should report an error result", name)
		}
		want := fmt.Sprintf("Error: Unknown tool '%s'", name)
		if len(result.Content) != 1 || result.Content[0].Text != want {
			t.Fatalf("Invoke(%q) content = %+v, want single %q", name, result.Content, want)
		}
	}
}

func TestInvokeAppliesDefaults(t *testing.T) {
	var seen map[string]any
	tool := Tool{
		Definition: Definition{
			Name: "echo",
			InputSchema: InputSchema{
				Type: "object",
				Properties: map[string]Property{
					"mode": {Type: "string", Default: "plain"},
				},
			},
		},
		Handler: func(args map[string]any) ([]ContentPart, error) {
			seen = args
			return []ContentPart{{Type: "text", Text: "ok"}}, nil
		},
	}
	d := newTestDispatcher(t, false, tool)

	if _, err := d.Invoke("echo", nil); err != nil {
		t.Fatal(err)
	}
	if seen["mode"] != "plain" {
		t.Fatalf("expected default applied, got %v", seen["mode"])
	}

	if _, err := d.Invoke("echo", map[string]any{"mode": "loud"}); err != nil {
		t.Fatal(err)
	}
	if seen["mode"] != "loud" {
		t.Fatalf("caller value overridden: got %v", seen["mode"])
	}
}

func TestInvokeDoesNotMutateCallerArgs(t *testing.T) {
	tool := Tool{
		Definition: Definition{
			Name: "echo",
			InputSchema: InputSchema{
				Type: "object",
				Properties: map[string]Property{
					"mode": {Type: "string", Default: "plain"},
				},
			},
		},
		Handler: noopHandler,
	}
	d := newTestDispatcher(t, false, tool)

	args := map[string]any{}
	if _, err := d.Invoke("echo", args); err != nil {
		t.Fatal(err)
	}
	if len(args) != 0 {
		t.Fatalf("caller map mutated: %v", args)
	}
}

func TestInvokeTranslatesInvalidArgument(t *testing.T) {
	tool := Tool{
		Definition: Definition{
			Name:        "fussy",
			InputSchema: InputSchema{Type: "object", Properties: map[string]Property{}},
		},
		Handler: func(args map[string]any) ([]ContentPart, error) {
			return nil, InvalidArgumentf("Invalid format string - unsupported specifier")
		},
	}
	d := newTestDispatcher(t, false, tool)

	result, err := d.Invoke("fussy", nil)
	if err != nil {
		t.Fatalf("expected handled failure, got escalation: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected IsError result")
	}
	if got := result.Content[0].Text; !strings.HasPrefix(got, "Error: ") {
		t.Fatalf("expected Error: prefix, got %q", got)
	}
}

func TestInvokeEscalatesInternalFaults(t *testing.T) {
	boom := errors.New("backing store unavailable")
	tool := Tool{
		Definition: Definition{
			Name:        "broken",
			InputSchema: InputSchema{Type: "object", Properties: map[string]Property{}},
		},
		Handler: func(args map[string]any) ([]ContentPart, error) {
			return nil, boom
		},
	}
	d := newTestDispatcher(t, false, tool)

	_, err := d.Invoke("broken", nil)
	if !errors.Is(err, boom) {
		t.Fatalf("expected internal fault to escalate, got %v", err)
	}
}

func TestInvokeValidatesArguments(t *testing.T) {
	tool := Tool{
		Definition: Definition{
			Name: "strict",
			InputSchema: InputSchema{
				Type: "object",
				Properties: map[string]Property{
					"format": {Type: "string", Default: "plain"},
				},
			},
		},
		Handler: noopHandler,
	}
	d := newTestDispatcher(t, true, tool)

	cases := []struct {
		name    string
		args    map[string]any
		wantErr bool
	}{
		{"no args", nil, false},
		{"valid arg", map[string]any{"format": "x"}, false},
		{"wrong type", map[string]any{"format": 42}, true},
		{"extra property", map[string]any{"format": "x", "bogus": true}, true},
	}
	for _, tc := range cases {
		result, err := d.Invoke("strict", tc.args)
		if err != nil {
			t.Fatalf("%s: escalated: %v", tc.name, err)
		}
		if result.IsError != tc.wantErr {
			t.Fatalf("%s: IsError = %v, want %v (content %+v)", tc.name, result.IsError, tc.wantErr, result.Content)
		}
		if tc.wantErr && !strings.HasPrefix(result.Content[0].Text, "Error: ") {
			t.Fatalf("%s: expected Error: prefix, got %q", tc.name, result.Content[0].Text)
		}
	}
}

// Concurrent invocations of different tools must never cross-contaminate
// results; the dispatcher holds no state across calls.
func TestInvokeConcurrently(t *testing.T) {
	slow := func(text string) Handler {
		return func(args map[string]any) ([]ContentPart, error) {
			time.Sleep(5 * time.Millisecond)
			return []ContentPart{{Type: "text", Text: text}}, nil
		}
	}
	a := Tool{Definition: Definition{Name: "alpha", InputSchema: InputSchema{Type: "object", Properties: map[string]Property{}}}, Handler: slow("from alpha")}
	b := Tool{Definition: Definition{Name: "bravo", InputSchema: InputSchema{Type: "object", Properties: map[string]Property{}}}, Handler: slow("from bravo")}
	d := newTestDispatcher(t, true, a, b)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		for _, name := range []string{"alpha", "bravo"} {
			wg.Add(1)
			go func(name string) {
				defer wg.Done()
				result, err := d.Invoke(name, map[string]any{})
				if err != nil {
					t.Errorf("Invoke(%q): %v", name, err)
					return
				}
				want := "from " + name
				if len(result.Content) != 1 || result.Content[0].Text != want {
					t.Errorf("Invoke(%q) = %+v, want %q", name, result.Content, want)
				}
			}(name)
		}
	}
	wg.Wait()
}
