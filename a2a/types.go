package a2a

import "strings"

// Part is one segment of a message. Only text parts are used by this
// system; the Type discriminator stays on the wire for protocol
// compatibility.
type Part struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// Message is a single conversational message exchanged over the protocol.
type Message struct {
	Role  string `json:"role"`
	Parts []Part `json:"parts"`
}

// NewTextMessage builds a single-part text message.
func NewTextMessage(role, text string) Message {
	return Message{Role: role, Parts: []Part{{Type: "text", Text: text}}}
}

// Text joins all text parts of the message, newline separated.
func (m Message) Text() string {
	var parts []string
	for _, p := range m.Parts {
		if p.Type == "text" && p.Text != "" {
			parts = append(parts, p.Text)
		}
	}
	return strings.Join(parts, "\n")
}

// MessageSendParams are the params of a message/send request. ContextID
// correlates the new task to an existing conversation when set.
type MessageSendParams struct {
	Message   Message `json:"message"`
	ContextID string  `json:"contextId,omitempty"`
}

// TaskQueryParams are the params of a tasks/get or tasks/cancel request.
type TaskQueryParams struct {
	ID string `json:"id"`
}

// Capabilities declares protocol features supported by an agent.
type Capabilities struct {
	Streaming         bool `json:"streaming"`
	PushNotifications bool `json:"pushNotifications"`
}

// Skill describes one capability of an agent, with example utterances for
// discovery and documentation.
type Skill struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Examples    []string `json:"examples,omitempty"`
}

// AgentCard is the static descriptor served at /.well-known/agent.json.
// It is informational; routing never consults it at runtime.
type AgentCard struct {
	Name               string       `json:"name"`
	Description        string       `json:"description,omitempty"`
	URL                string       `json:"url"`
	Version            string       `json:"version"`
	DefaultInputModes  []string     `json:"defaultInputModes,omitempty"`
	DefaultOutputModes []string     `json:"defaultOutputModes,omitempty"`
	Capabilities       Capabilities `json:"capabilities"`
	Skills             []Skill      `json:"skills"`
}
