package chat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindbridge/campus-care/backend/internal/analysis/reply"
)

func TestPipelineSelectsReply(t *testing.T) {
	ctx := context.Background()
	pipeline, err := NewPipeline(ctx, reply.MustDefault())
	require.NoError(t, err)

	got, err := pipeline.Reply(ctx, "  I can't sleep, feeling exhausted ")
	require.NoError(t, err)
	assert.Equal(t, reply.Sleep, got.Category)
	assert.NotEmpty(t, got.Text)
	assert.NotEmpty(t, got.Suggestions)
}

func TestPipelineRejectsBlankUtterance(t *testing.T) {
	ctx := context.Background()
	pipeline, err := NewPipeline(ctx, reply.MustDefault())
	require.NoError(t, err)

	_, err = pipeline.Reply(ctx, " \t ")
	assert.Error(t, err)
}

func TestServiceWithPipelineEndToEnd(t *testing.T) {
	ctx := context.Background()
	pipeline, err := NewPipeline(ctx, reply.MustDefault())
	require.NoError(t, err)
	svc := NewService(pipeline, Options{})

	session, _ := svc.CreateSession(ctx)
	_, err = svc.Send(ctx, session.ID, "I need breathing exercises")
	require.NoError(t, err)

	botMsg, err := svc.Await(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, string(reply.Breathing), botMsg.Category)
	assert.Equal(t, reply.BreathingGuide, botMsg.Text)
}
