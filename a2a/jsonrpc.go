package a2a

import (
	"encoding/json"
	"fmt"
)

// Version is the JSON-RPC protocol version spoken on the wire.
const Version = "2.0"

// Method names served by every agent.
const (
	MethodMessageSend = "message/send"
	MethodTasksGet    = "tasks/get"
	MethodTasksCancel = "tasks/cancel"
)

// Standard JSON-RPC error codes plus the A2A server-error range.
const (
	CodeParse                = -32700
	CodeInvalidRequest       = -32600
	CodeMethodNotFound       = -32601
	CodeInvalidParams        = -32602
	CodeInternal             = -32603
	CodeTaskNotFound         = -32001
	CodeUnsupportedOperation = -32004
)

// JSONRPCRequest is a generic JSON-RPC request envelope. Params stay raw
// until the method is known.
type JSONRPCRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      any             `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// JSONRPCResponse is a generic JSON-RPC response envelope.
type JSONRPCResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      any             `json:"id,omitempty"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *JSONRPCError   `json:"error,omitempty"`
}

// JSONRPCError is the error object of a failed JSON-RPC call.
type JSONRPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Error makes JSONRPCError satisfy the error interface.
func (e *JSONRPCError) Error() string {
	return fmt.Sprintf("jsonrpc error %d: %s", e.Code, e.Message)
}

// NewResponse builds a success response carrying result.
func NewResponse(id any, result any) JSONRPCResponse {
	raw, _ := json.Marshal(result)
	return JSONRPCResponse{JSONRPC: Version, ID: id, Result: raw}
}

// NewErrorResponse builds an error response.
func NewErrorResponse(id any, code int, message string) JSONRPCResponse {
	return JSONRPCResponse{
		JSONRPC: Version,
		ID:      id,
		Error:   &JSONRPCError{Code: code, Message: message},
	}
}
