package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeResolution(t *testing.T) {
	tests := []struct {
		input string
		want  Resolution
		ok    bool
	}{
		{"DONE", ResolutionDone, true},
		{"NEXT", ResolutionNext, true},
		{"BACKLOG", ResolutionBacklog, true},
		{"ACTION", ResolutionAction, true},
		{"DEFERRED", ResolutionNext, true},
		{"DROPPED", ResolutionBacklog, true},
		{"MAYBE", "", false},
		{"done", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := NormalizeResolution(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, UserRoleAdmin.IsValid())
	assert.False(t, UserRole("MANAGER").IsValid())

	assert.True(t, MeetingStatusScheduled.IsValid())
	assert.False(t, MeetingStatus("PENDING").IsValid())

	assert.True(t, TopicStatusDiscussed.IsValid())
	assert.False(t, TopicStatus("OPEN").IsValid())

	assert.True(t, FrequencyWeekly.IsValid())
	assert.True(t, FrequencyBiweekly.IsValid())
	assert.False(t, MeetingFrequency("MONTHLY").IsValid())
}
