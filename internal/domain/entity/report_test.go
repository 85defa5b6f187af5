package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPendingWork(t *testing.T) {
	tests := []struct {
		name    string
		pending string
		want    bool
	}{
		{name: "Should be pending for a described task", pending: "Fix login bug", want: true},
		{name: "Should not be pending for none", pending: "none", want: false},
		{name: "Should ignore case of none", pending: "NONE", want: false},
		{name: "Should trim before comparing", pending: "  None  ", want: false},
		{name: "Should not be pending for empty text", pending: "", want: false},
		{name: "Should be pending when none is only part of the text", pending: "none yet, waiting on review", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasPendingWork(tt.pending))
		})
	}
}

func TestStatusTransitions(t *testing.T) {
	assert.Equal(t, ReportPending, ReportStatusFor("write docs"))
	assert.Equal(t, TaskPending, TaskStatusFor("write docs"))

	assert.Equal(t, ReportComplete, ReportStatusFor("none"))
	assert.Equal(t, TaskCompleted, TaskStatusFor("none"))
}
