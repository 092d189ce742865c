// internal/mcp/types.go
// Package mcp implements the server side of the Model Context Protocol:
// JSON-RPC 2.0 framing, the tool catalog, and request dispatch.
package mcp

import (
	"encoding/json"
	"errors"
)

// ErrInvalidArgument marks a handler failure caused by the caller's input.
// The dispatcher reports such failures as error content; every other
// handler error escalates to the transport.
var ErrInvalidArgument = errors.New("invalid argument")

// ContentPart represents a piece of data returned from a tool invocation.
type ContentPart struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Handler executes a tool using the provided arguments and returns content
// for the client.
type Handler func(args map[string]any) ([]ContentPart, error)

// Property declares a single input schema property.
type Property struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Default     any    `json:"default,omitempty"`
}

// InputSchema declares the argument shape a tool accepts. A schema with
// AdditionalProperties false is closed: unrecognized arguments are a
// validation error rather than being silently ignored.
type InputSchema struct {
	Type                 string              `json:"type"`
	Properties           map[string]Property `json:"properties"`
	Required             []string            `json:"required,omitempty"`
	AdditionalProperties bool                `json:"additionalProperties"`
}

// Definition describes the metadata the server advertises for a tool.
type Definition struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	InputSchema InputSchema `json:"inputSchema"`
}

// Tool pairs an advertised definition with the handler that implements it.
type Tool struct {
	Definition Definition
	Handler    Handler
}

// CallResult is the tools/call response payload. IsError distinguishes a
// handled tool failure from ordinary output; the protocol call itself
// succeeds either way.
type CallResult struct {
	Content []ContentPart `json:"content"`
	IsError bool          `json:"isError,omitempty"`
}

// --- JSON-RPC 2.0 frame types ---

type jsonrpcRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      any             `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

type jsonrpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type jsonrpcResponse struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      any           `json:"id,omitempty"`
	Result  any           `json:"result,omitempty"`
	Error   *jsonrpcError `json:"error,omitempty"`
}

// tools/call params
type toolsCallParams struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}
