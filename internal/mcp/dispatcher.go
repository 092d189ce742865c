// internal/mcp/dispatcher.go
package mcp

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// invalidArgumentError carries a caller-facing message for an input-caused
// handler failure.
type invalidArgumentError struct{ msg string }

func (e *invalidArgumentError) Error() string { return e.msg }
func (e *invalidArgumentError) Unwrap() error { return ErrInvalidArgument }

// InvalidArgumentf builds a handler failure that the dispatcher reports as
// error content rather than escalating to the transport.
func InvalidArgumentf(format string, args ...any) error {
	return &invalidArgumentError{msg: fmt.Sprintf(format, args...)}
}

// Dispatcher routes a named invocation to its handler and normalizes
// results and expected failures into call content. It holds no mutable
// state; concurrent invocations are safe.
type Dispatcher struct {
	registry     *Registry
	validateArgs bool
}

// NewDispatcher wires a dispatcher to a populated registry. When
// validateArgs is set, the argument object is checked against the tool's
// declared schema before the handler runs; otherwise only declared
// defaults are applied, matching the permissive behavior of servers that
// treat the schema as advisory.
func NewDispatcher(registry *Registry, validateArgs bool) *Dispatcher {
	return &Dispatcher{registry: registry, validateArgs: validateArgs}
}

// Invoke runs the named tool against the given arguments.
//
// Expected, input-caused failures (unknown tool, schema violations, a
// handler error wrapping ErrInvalidArgument) come back as an IsError
// result with a single "Error: ..." text part and a nil error. Any other
// handler error is returned as-is so the transport can surface it as a
// protocol fault instead of tool output.
func (d *Dispatcher) Invoke(name string, args map[string]any) (CallResult, error) {
	tool, ok := d.registry.lookup(name)
	if !ok {
		return errorResult(fmt.Sprintf("Unknown tool '%s'", name)), nil
	}

	args = applyDefaults(tool.Definition.InputSchema, args)

	if d.validateArgs {
		violation, err := validateArguments(tool.Definition.InputSchema, args)
		if err != nil {
			return CallResult{}, err
		}
		if violation != "" {
			return errorResult(violation), nil
		}
	}

	content, err := tool.Handler(args)
	if err != nil {
		if errors.Is(err, ErrInvalidArgument) {
			return errorResult(err.Error()), nil
		}
		return CallResult{}, err
	}
	return CallResult{Content: content}, nil
}

func errorResult(msg string) CallResult {
	return CallResult{
		Content: []ContentPart{{Type: "text", Text: "Error: " + msg}},
		IsError: true,
	}
}

// applyDefaults copies the argument map and fills in declared defaults for
// absent optional properties. The copy keeps concurrent invocations from
// sharing state through a caller-owned map.
func applyDefaults(schema InputSchema, args map[string]any) map[string]any {
	out := make(map[string]any, len(args)+1)
	for k, v := range args {
		out[k] = v
	}
	for name, prop := range schema.Properties {
		if prop.Default == nil {
			continue
		}
		if _, present := out[name]; !present {
			out[name] = prop.Default
		}
	}
	return out
}

// validateArguments checks the argument object against the declared input
// schema. A non-empty return string describes the violations; a non-nil
// error means the validation machinery itself failed.
func validateArguments(schema InputSchema, args map[string]any) (string, error) {
	argsJSON, err := json.Marshal(args)
	if err != nil {
		return "", fmt.Errorf("could not encode arguments: %w", err)
	}

	schemaLoader := gojsonschema.NewGoLoader(schema)
	documentLoader := gojsonschema.NewBytesLoader(argsJSON)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return "", fmt.Errorf("schema validation error: %w", err)
	}
	if result.Valid() {
		return "", nil
	}

	var errs []string
	for _, desc := range result.Errors() {
		errs = append(errs, desc.String())
	}
	return fmt.Sprintf("Invalid arguments - %s", strings.Join(errs, ", ")), nil
}
