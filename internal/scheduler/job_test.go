package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func result(success bool) JobResult {
	return JobResult{
		JobName:   "activity_generation",
		StartTime: time.Now(),
		Success:   success,
	}
}

func TestJobHistory_AddResultBounded(t *testing.T) {
	h := &JobHistory{}

	for i := 0; i < 150; i++ {
		h.AddResult(result(true))
	}

	assert.Len(t, h.Results, 100, "history keeps only the last 100 results")
}

func TestJobHistory_Latest(t *testing.T) {
	h := &JobHistory{}
	assert.Nil(t, h.Latest())

	h.AddResult(result(true))
	h.AddResult(result(false))

	latest := h.Latest()
	assert.NotNil(t, latest)
	assert.False(t, latest.Success)
}

func TestJobHistory_SuccessRate(t *testing.T) {
	h := &JobHistory{}
	assert.Equal(t, 0.0, h.SuccessRate(), "empty history has zero rate")

	h.AddResult(result(true))
	h.AddResult(result(true))
	h.AddResult(result(false))
	h.AddResult(result(true))

	assert.Equal(t, 1, h.FailureCount())
	assert.InDelta(t, 0.75, h.SuccessRate(), 0.001)
}
