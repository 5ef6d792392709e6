package rectpart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildContextMessages(t *testing.T) {
	ctx := NewBuildContext(true)
	ctx.Progressf("step %d", 1)
	ctx.Errorf("boom")

	assert.Equal(t, []string{"step 1", "error: boom"}, ctx.Messages())

	// Messages hands out a copy
	ctx.Messages()[0] = "mutated"
	assert.Equal(t, "step 1", ctx.Messages()[0])

	// disabled context records nothing
	off := NewBuildContext(false)
	off.Progressf("ignored")
	off.Errorf("ignored")
	assert.Len(t, off.Messages(), 0)
}

func TestBuildContextTimers(t *testing.T) {
	ctx := NewBuildContext(true)

	stop := ctx.stageTimer(StageSelection)
	time.Sleep(time.Millisecond)
	stop()
	assert.True(t, ctx.Elapsed(StageSelection) > 0)
	assert.Equal(t, time.Duration(0), ctx.Elapsed(StageFaces))

	// stopping again accumulates
	before := ctx.Elapsed(StageSelection)
	stop = ctx.stageTimer(StageSelection)
	stop()
	assert.True(t, ctx.Elapsed(StageSelection) >= before)

	off := NewBuildContext(false)
	off.stageTimer(StageFaces)()
	off.runTimer()()
	assert.Equal(t, time.Duration(0), off.Elapsed(StageFaces))
	assert.Equal(t, time.Duration(0), off.Total())
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "vertices", StageVertices.String())
	assert.Equal(t, "faces", StageFaces.String())
	assert.Equal(t, "Stage(42)", Stage(42).String())
}

func TestPartitionContextRecords(t *testing.T) {
	ctx := NewBuildContext(true)
	rects, err := PartitionContext(ctx, plusShape)
	assert.NoError(t, err)
	assert.Len(t, rects, 3)
	assert.True(t, len(ctx.Messages()) > 0)
	assert.True(t, ctx.Total() >= ctx.Elapsed(StageSelection))
}
