package core

import "testing"

func TestSession_ApplyStateDeltaAndClone(t *testing.T) {
	s := NewSession("ctx-1")

	s.ApplyStateDelta(map[string]any{"customer_id": "cust-001", "turns": 1})
	if v, ok := s.GetState("customer_id"); !ok || v.(string) != "cust-001" {
		t.Fatalf("State not applied: %+v", s.State)
	}

	clone := s.Clone()
	if clone == s {
		t.Error("Clone should be a different pointer")
	}

	clone.SetState("extra", 2)
	if _, exists := s.GetState("extra"); exists {
		t.Error("Original should not have clone's new key")
	}
}

func TestSession_AddEventAndHistory(t *testing.T) {
	s := NewSession("ctx-2")
	s.AddEvent(NewMessageEvent("orchestrator", "hello"))
	s.AddEvent(NewUserMessageEvent("run-123", "where is my order?"))

	control := NewEvent("run-123", "runner")
	s.AddEvent(control)

	all := s.GetEvents()
	if len(all) != 3 {
		t.Fatalf("expected 3 events, got %d", len(all))
	}

	orig := all[0].Author
	all[0].Author = "changed"
	if s.GetEvents()[0].Author != orig {
		t.Error("events slice should be copied on read")
	}

	history := s.GetConversationHistory()
	if len(history) != 2 {
		t.Fatalf("expected content-less event excluded from history, got %d events", len(history))
	}

	foundUser := false
	for _, hev := range history {
		if hev.Content != nil && hev.Content.Role == "user" {
			foundUser = true
		}
	}
	if !foundUser {
		t.Error("expected user event in history")
	}
}
