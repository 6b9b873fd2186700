package runner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopmesh/shopmesh/agent"
	"github.com/shopmesh/shopmesh/core"
	"github.com/shopmesh/shopmesh/model"
	"github.com/shopmesh/shopmesh/session"
)

func newTestRunner(t *testing.T, llm model.Model, store core.SessionStore) *Runner {
	t.Helper()

	a := agent.NewModelAgent("order_agent", llm, func(o *agent.ModelAgentOptions) {
		o.Description = "Answers order status questions."
	})

	return New(a, func(o *Options) {
		o.SessionStore = store
	})
}

func TestRunSyncReturnsFinalText(t *testing.T) {
	llm := model.NewMockModel("mock", "test")
	llm.AddResponse("Where is my order?", "Order ord-001 has shipped, tracking TK123456789TR.")

	store := session.NewInMemoryStore()
	r := newTestRunner(t, llm, store)

	answer, err := r.RunSync(context.Background(), "ctx-1", "Where is my order?")
	require.NoError(t, err)
	assert.Contains(t, answer, "TK123456789TR")

	sess, err := store.Get("ctx-1")
	require.NoError(t, err)

	events := sess.GetEvents()
	require.Len(t, events, 2)
	assert.Equal(t, "user", events[0].Author)
	assert.Equal(t, "order_agent", events[1].Author)
}

func TestRunSyncCreatesSessionOnFirstUse(t *testing.T) {
	llm := model.NewMockModel("mock", "test")
	llm.AddResponse("Hi", "Hello, how can I help with your order today?")

	store := session.NewInMemoryStore()
	r := newTestRunner(t, llm, store)

	_, err := store.Get("ctx-new")
	require.Error(t, err)

	_, err = r.RunSync(context.Background(), "ctx-new", "Hi")
	require.NoError(t, err)

	_, err = store.Get("ctx-new")
	require.NoError(t, err)
}

func TestRunSyncAccumulatesHistoryAcrossRuns(t *testing.T) {
	llm := model.NewMockModel("mock", "test")
	llm.AddResponse("First question", "First answer.")
	llm.AddResponse("Second question", "Second answer.")

	store := session.NewInMemoryStore()
	r := newTestRunner(t, llm, store)

	_, err := r.RunSync(context.Background(), "ctx-2", "First question")
	require.NoError(t, err)

	answer, err := r.RunSync(context.Background(), "ctx-2", "Second question")
	require.NoError(t, err)
	assert.Equal(t, "Second answer.", answer)

	sess, err := store.Get("ctx-2")
	require.NoError(t, err)
	assert.Len(t, sess.GetEvents(), 4)
}

func TestRunAsyncDeliversEvents(t *testing.T) {
	llm := model.NewMockModel("mock", "test")
	llm.AddResponse("Ping", "Pong.")

	store := session.NewInMemoryStore()
	r := newTestRunner(t, llm, store)

	runID, eventsCh, errorsCh, err := r.Run(context.Background(), "ctx-3", core.Content{
		Role:  "user",
		Parts: []core.Part{core.TextPart{Text: "Ping"}},
	})
	require.NoError(t, err)
	require.NotEmpty(t, runID)

	var events []core.Event
	for ev := range eventsCh {
		events = append(events, ev)
	}
	require.NoError(t, <-errorsCh)

	require.Len(t, events, 1)
	assert.Equal(t, runID, events[0].RunID)
	assert.Equal(t, "Pong.", events[0].Text())
}

func TestCancelUnknownRun(t *testing.T) {
	llm := model.NewMockModel("mock", "test")
	r := newTestRunner(t, llm, session.NewInMemoryStore())

	err := r.Cancel("missing-run")
	assert.Error(t, err)
}
