package util

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"os-scheduler/internal/core"
)

func TestCalculateAverage(t *testing.T) {
	a := core.NewProcess("A", 0, 2, 1)
	a.Execute(0, 2)
	a.Finish(2)
	b := core.NewProcess("B", 1, 2, 1)
	b.Execute(3, 2)
	b.Finish(5)

	waiting, response, turnaround := CalculateAverage([]*core.Process{&a, &b})

	assert.Equal(t, 1.0, waiting)
	assert.Equal(t, 1.0, response)
	assert.Equal(t, 3.0, turnaround)
}

func TestCalculateAverage_Empty(t *testing.T) {
	waiting, response, turnaround := CalculateAverage(nil)

	assert.Zero(t, waiting)
	assert.Zero(t, response)
	assert.Zero(t, turnaround)
}

func TestRound(t *testing.T) {
	assert.Equal(t, 3.33, Round(10.0/3, 2))
	assert.Equal(t, 6.67, Round(20.0/3, 2))
	assert.Equal(t, 37.5, Round(37.5, 1))
	assert.Equal(t, 0.13, Round(0.125, 2))
	assert.Equal(t, 88.9, Round(800.0/9, 1))
}
