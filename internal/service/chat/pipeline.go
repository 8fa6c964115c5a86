package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/compose"

	"github.com/mindbridge/campus-care/backend/internal/analysis/reply"
)

// Replier turns a user utterance into a bot reply.
type Replier interface {
	Reply(ctx context.Context, utterance string) (reply.Reply, error)
}

// Pipeline runs utterances through a compiled chain: trim and reject blank
// input, then select a canned reply.
type Pipeline struct {
	chain compose.Runnable[string, reply.Reply]
}

// NewPipeline compiles the reply chain around selector.
func NewPipeline(ctx context.Context, selector *reply.Selector) (*Pipeline, error) {
	chain := compose.NewChain[string, reply.Reply]()
	chain.AppendLambda(compose.InvokableLambda(func(_ context.Context, utterance string) (string, error) {
		trimmed := strings.TrimSpace(utterance)
		if trimmed == "" {
			return "", ErrEmptyMessage
		}
		return trimmed, nil
	}))
	chain.AppendLambda(compose.InvokableLambda(func(_ context.Context, utterance string) (reply.Reply, error) {
		return selector.Select(utterance), nil
	}))

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile reply chain: %w", err)
	}
	return &Pipeline{chain: runnable}, nil
}

// Reply implements Replier.
func (p *Pipeline) Reply(ctx context.Context, utterance string) (reply.Reply, error) {
	return p.chain.Invoke(ctx, utterance)
}
