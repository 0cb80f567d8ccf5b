package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeaveStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from     LeaveStatus
		to       LeaveStatus
		expected bool
	}{
		{LeavePending, LeaveApproved, true},
		{LeavePending, LeaveRejected, true},
		{LeavePending, LeavePending, false},
		{LeaveApproved, LeaveRejected, false},
		{LeaveApproved, LeavePending, false},
		{LeaveApproved, LeaveApproved, false},
		{LeaveRejected, LeaveApproved, false},
		{LeaveRejected, LeavePending, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestLeaveStatus_IsTerminal(t *testing.T) {
	assert.False(t, LeavePending.IsTerminal())
	assert.True(t, LeaveApproved.IsTerminal())
	assert.True(t, LeaveRejected.IsTerminal())
}

func TestLeaveStatus_IsValid(t *testing.T) {
	assert.True(t, LeavePending.IsValid())
	assert.False(t, LeaveStatus("approved").IsValid())
}
