package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewProcess(t *testing.T) {
	p := NewProcess("P1", 2, 4, 3)

	assert.Equal(t, 4, p.RemainingTime)
	assert.Equal(t, Unset, p.StartTime)
	assert.Equal(t, Unset, p.FinishTime)
	assert.False(t, p.Started())
	assert.False(t, p.Completed())
	assert.Equal(t, 0, p.ResponseTime())
}

func TestProcessLifecycle(t *testing.T) {
	p := NewProcess("P1", 2, 4, 1)

	p.Execute(3, 1)
	assert.Equal(t, 3, p.StartTime)
	assert.Equal(t, 3, p.RemainingTime)

	p.Execute(7, 5)
	assert.Equal(t, 3, p.StartTime, "start time is recorded once")
	assert.Equal(t, 0, p.RemainingTime, "remaining time never goes negative")
	assert.True(t, p.Completed())

	p.Finish(10)
	assert.Equal(t, 10, p.FinishTime)
	assert.Equal(t, 8, p.TurnaroundTime)
	assert.Equal(t, 4, p.WaitingTime)
	assert.Equal(t, 1, p.ResponseTime())

	p.Reset()
	assert.Equal(t, 4, p.RemainingTime)
	assert.Equal(t, Unset, p.StartTime)
	assert.Zero(t, p.TurnaroundTime)
}

func TestProcessClone(t *testing.T) {
	p := NewProcess("P1", 0, 3, 1)
	p.Execute(0, 3)
	p.Finish(3)

	c := p.Clone()
	c.Execute(5, 1)

	assert.Equal(t, 0, p.RemainingTime, "clone does not share state")
	assert.Equal(t, 2, c.RemainingTime)
	assert.Equal(t, 5, c.StartTime)
}

func TestTimeline(t *testing.T) {
	timeline := Timeline{
		{ProcessId: "A", Start: 1, End: 3},
		{ProcessId: "A", Start: 3, End: 4},
		{ProcessId: "B", Start: 6, End: 8},
		{ProcessId: "A", Start: 8, End: 9},
	}

	assert.Equal(t, 9, timeline.End())
	assert.Equal(t, 6, timeline.BusyTime())
	assert.Equal(t, 3, timeline.IdleTime())
	assert.Equal(t, 2, timeline.ContextSwitches())
	assert.Len(t, timeline.For("A"), 3)
	assert.Empty(t, timeline.For("C"))

	var empty Timeline
	assert.Zero(t, empty.End())
	assert.Zero(t, empty.IdleTime())
}

func TestHorizon(t *testing.T) {
	assert.Equal(t, 0, Horizon(nil))
	assert.Equal(t, 12, Horizon([]Process{
		NewProcess("A", 0, 3, 1),
		NewProcess("B", 7, 2, 1),
	}))
}
