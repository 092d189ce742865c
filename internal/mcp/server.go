// internal/mcp/server.go
// JSON-RPC 2.0 over Content-Length framed streams, stdio in production.
package mcp

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/tempusmcp/tempus/internal/logging"
)

// Server speaks the MCP protocol over a reliable, ordered byte stream. It
// answers initialize, ping, tools/list and tools/call; everything below
// the framing layer (pipes, process lifecycle) belongs to the caller.
type Server struct {
	name       string
	version    string
	registry   *Registry
	dispatcher *Dispatcher
	debug      bool

	writeMu sync.Mutex
	calls   sync.WaitGroup
}

// NewServer builds a server advertising the given identity.
func NewServer(name, version string, registry *Registry, dispatcher *Dispatcher) *Server {
	return &Server{name: name, version: version, registry: registry, dispatcher: dispatcher}
}

// SetDebug enables per-request logging.
func (s *Server) SetDebug(debug bool) { s.debug = debug }

// Serve reads framed requests from r and writes framed responses to w
// until r is exhausted. tools/call requests are served on their own
// goroutines, so pipelined calls may complete out of order; responses
// correlate by request id. Serve waits for in-flight calls before
// returning.
func (s *Server) Serve(r io.Reader, w io.Writer) error {
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)

	defer s.calls.Wait()

	for {
		req, err := readMessage(br)
		if err != nil {
			if err == io.EOF {
				return nil
			}
			// Best-effort error frame; without a parsed id there is no
			// request to correlate it with, so end the stream.
			_ = s.writeMessage(bw, jsonrpcResponse{JSONRPC: "2.0", Error: &jsonrpcError{Code: -32000, Message: err.Error()}})
			return err
		}
		if err := s.handleRequest(req, bw); err != nil {
			_ = s.writeMessage(bw, makeError(req.ID, -32000, err.Error()))
		}
	}
}

func (s *Server) handleRequest(req *jsonrpcRequest, w *bufio.Writer) error {
	if s.debug {
		logging.LogRequest("recv", req.Method, "", req.Params)
	}

	switch req.Method {
	case "initialize":
		result := map[string]any{
			"serverInfo":   map[string]any{"name": s.name, "version": s.version},
			"capabilities": map[string]any{"tools": map[string]any{"list": true, "call": true}},
		}
		return s.writeMessage(w, makeResult(req.ID, result))

	case "ping":
		return s.writeMessage(w, makeResult(req.ID, map[string]any{}))

	case "tools/list":
		result := map[string]any{"tools": s.registry.Definitions()}
		return s.writeMessage(w, makeResult(req.ID, result))

	case "tools/call":
		var p toolsCallParams
		if len(req.Params) > 0 {
			if err := json.Unmarshal(req.Params, &p); err != nil {
				return s.writeMessage(w, makeError(req.ID, -32602, "Invalid params"))
			}
		}
		if p.Arguments == nil {
			p.Arguments = map[string]any{}
		}
		id := req.ID
		s.calls.Add(1)
		go func() {
			defer s.calls.Done()
			s.serveCall(id, p, w)
		}()
		return nil
	}

	return s.writeMessage(w, makeError(req.ID, -32601, fmt.Sprintf("Method not found: %s", req.Method)))
}

// serveCall dispatches a single tools/call. Handled tool failures travel
// back as error content; an escalated handler fault fails the call with an
// internal-error frame while the connection keeps serving.
func (s *Server) serveCall(id any, p toolsCallParams, w *bufio.Writer) {
	result, err := s.dispatcher.Invoke(p.Name, p.Arguments)
	if err != nil {
		logging.LogEvent("tool %q failed: %v", p.Name, err)
		if werr := s.writeMessage(w, makeError(id, -32603, fmt.Sprintf("Internal error: %v", err))); werr != nil {
			logging.LogEvent("write response: %v", werr)
		}
		return
	}
	if s.debug {
		logging.LogRequest("send", "tools/call", p.Name, result)
	}
	if werr := s.writeMessage(w, makeResult(id, result)); werr != nil {
		logging.LogEvent("write response: %v", werr)
	}
}

// --- Framing helpers ---

func (s *Server) writeMessage(w *bufio.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if _, err := fmt.Fprintf(w, "Content-Length: %d\r\n\r\n", len(data)); err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	return w.Flush()
}

func readMessage(r *bufio.Reader) (*jsonrpcRequest, error) {
	// Read headers until blank line
	headers := map[string]string{}
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil, io.EOF
			}
			return nil, err
		}
		s := strings.TrimRight(line, "\r\n")
		if s == "" {
			break
		}
		if i := strings.IndexByte(s, ':'); i >= 0 {
			key := strings.ToLower(strings.TrimSpace(s[:i]))
			val := strings.TrimSpace(s[i+1:])
			headers[key] = val
		}
	}
	clStr, ok := headers["content-length"]
	if !ok {
		return nil, fmt.Errorf("missing Content-Length")
	}
	var length int
	if _, err := fmt.Sscanf(clStr, "%d", &length); err != nil {
		return nil, fmt.Errorf("invalid Content-Length: %v", err)
	}
	body := make([]byte, length)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, err
	}
	var req jsonrpcRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// --- RPC helpers ---

func makeResult(id any, result any) jsonrpcResponse {
	return jsonrpcResponse{JSONRPC: "2.0", ID: id, Result: result}
}

func makeError(id any, code int, msg string) jsonrpcResponse {
	return jsonrpcResponse{JSONRPC: "2.0", ID: id, Error: &jsonrpcError{Code: code, Message: msg}}
}
