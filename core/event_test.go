package core

import (
	"errors"
	"testing"
)

func TestEvent_ConstructorsAndMethods(t *testing.T) {
	e := NewEvent("run-123", "authorA")
	if e.Author != "authorA" || e.RunID != "run-123" || e.ID == "" || e.Timestamp.IsZero() {
		t.Fatalf("NewEvent did not initialize fields correctly: %+v", e)
	}

	msg := NewMessageEvent("orchestrator", "hello world")
	if msg.Content == nil || msg.Content.Role != "assistant" || len(msg.Content.Parts) != 1 {
		t.Fatalf("NewMessageEvent malformed: %+v", msg)
	}
	if msg.Text() != "hello world" {
		t.Fatalf("Text() = %q, want %q", msg.Text(), "hello world")
	}

	user := NewUserMessageEvent("run-123", "hi")
	if user.Content == nil || user.Content.Role != "user" {
		t.Fatalf("NewUserMessageEvent malformed: %+v", user)
	}

	fRespOK := NewFunctionResponseEvent("run-123", "product_agent", "call-1", "get_product", 42, nil)
	resps := fRespOK.GetFunctionResponses()
	if len(resps) != 1 || resps[0].Response.(int) != 42 || resps[0].Error != "" {
		t.Fatalf("Function response success extraction failed: %+v", resps)
	}
	if resps[0].ID != "call-1" {
		t.Fatalf("Function response did not keep call id: %+v", resps[0])
	}
	if fRespOK.RunID != "run-123" {
		t.Fatalf("Function response event lost run correlation: %+v", fRespOK)
	}

	fRespErr := NewFunctionResponseEvent("run-123", "product_agent", "call-2", "get_product", nil, errors.New("boom"))
	resps = fRespErr.GetFunctionResponses()
	if resps[0].Error == "" {
		t.Fatalf("Expected error message in function response: %+v", resps[0])
	}
}

func TestEvent_GetFunctionCalls(t *testing.T) {
	e := NewEvent("run", "order_agent")
	e.Content = &Content{Role: "assistant", Parts: []Part{
		TextPart{Text: "checking"},
		FunctionCallPart{FunctionCall: FunctionCall{ID: "c1", Name: "get_order", Arguments: `{"order_id":"ord-001"}`}},
		FunctionCallPart{FunctionCall: FunctionCall{ID: "c2", Name: "get_order_tracking", Arguments: `{"order_id":"ord-001"}`}},
	}}

	calls := e.GetFunctionCalls()
	if len(calls) != 2 || calls[0].ID != "c1" || calls[1].Name != "get_order_tracking" {
		t.Fatalf("GetFunctionCalls extraction failed: %+v", calls)
	}
}

func TestEvent_IsFinalResponse(t *testing.T) {
	if !NewMessageEvent("agent", "done").IsFinalResponse() {
		t.Error("plain assistant message should be final")
	}

	e := NewEvent("run", "agent")
	e.Content = &Content{Role: "assistant", Parts: []Part{
		FunctionCallPart{FunctionCall: FunctionCall{Name: "get_order"}},
	}}
	if e.IsFinalResponse() {
		t.Error("event with pending function call should not be final")
	}

	if NewFunctionResponseEvent("run", "agent", "c1", "get_order", "ok", nil).IsFinalResponse() {
		t.Error("tool result event should not be final")
	}
}

func TestEvent_IDUniqueness(t *testing.T) {
	if NewID() == NewID() {
		t.Error("Expected unique IDs")
	}
}

func TestParts_DiscriminatedUnion(t *testing.T) {
	parts := []Part{
		TextPart{Text: "hello"},
		DataPart{Data: map[string]any{"k": "v"}},
		FunctionCallPart{FunctionCall: FunctionCall{Name: "f"}},
		FunctionResponsePart{FunctionResponse: FunctionResponse{Name: "f"}},
	}
	for _, p := range parts {
		switch pt := p.(type) {
		case TextPart, DataPart, FunctionCallPart, FunctionResponsePart:
		default:
			t.Fatalf("Unexpected part type: %T (%v)", pt, pt)
		}
	}
}
