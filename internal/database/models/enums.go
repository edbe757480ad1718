package models

// UserRole defines the role of a user within the organization
type UserRole string

const (
	UserRoleAdmin  UserRole = "ADMIN"
	UserRoleLeader UserRole = "LEADER"
	UserRoleIC     UserRole = "IC"
)

// MeetingStatus defines the lifecycle states of a meeting.
// IN_PROGRESS and CANCELLED are reserved: no exposed operation currently
// reaches them.
type MeetingStatus string

const (
	MeetingStatusScheduled  MeetingStatus = "SCHEDULED"
	MeetingStatusInProgress MeetingStatus = "IN_PROGRESS"
	MeetingStatusCompleted  MeetingStatus = "COMPLETED"
	MeetingStatusCancelled  MeetingStatus = "CANCELLED"
)

// TopicStatus defines the lifecycle states of a topic. The status is driven
// by meeting-topic events, not set directly by the owner once scheduled.
type TopicStatus string

const (
	TopicStatusBacklog   TopicStatus = "BACKLOG"
	TopicStatusScheduled TopicStatus = "SCHEDULED"
	TopicStatusDiscussed TopicStatus = "DISCUSSED"
	TopicStatusArchived  TopicStatus = "ARCHIVED"
)

// Resolution defines how a topic was resolved within a meeting
type Resolution string

const (
	ResolutionDone    Resolution = "DONE"
	ResolutionNext    Resolution = "NEXT"
	ResolutionBacklog Resolution = "BACKLOG"
	ResolutionAction  Resolution = "ACTION"
)

// MeetingFrequency defines the interval of a recurring meeting series
type MeetingFrequency string

const (
	FrequencyWeekly   MeetingFrequency = "WEEKLY"
	FrequencyBiweekly MeetingFrequency = "BIWEEKLY"
)

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleLeader, UserRoleIC:
		return true
	}
	return false
}

// IsValid checks if the MeetingStatus is valid
func (s MeetingStatus) IsValid() bool {
	switch s {
	case MeetingStatusScheduled, MeetingStatusInProgress, MeetingStatusCompleted, MeetingStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further mutation is allowed in this status
func (s MeetingStatus) IsTerminal() bool {
	return s == MeetingStatusCompleted || s == MeetingStatusCancelled
}

// IsValid checks if the TopicStatus is valid
func (s TopicStatus) IsValid() bool {
	switch s {
	case TopicStatusBacklog, TopicStatusScheduled, TopicStatusDiscussed, TopicStatusArchived:
		return true
	}
	return false
}

// IsValid checks if the Resolution is valid
func (r Resolution) IsValid() bool {
	switch r {
	case ResolutionDone, ResolutionNext, ResolutionBacklog, ResolutionAction:
		return true
	}
	return false
}

// NormalizeResolution maps an input resolution value onto a stored one.
// DEFERRED and DROPPED are legacy aliases kept for older clients; every
// other value must already be a valid Resolution.
func NormalizeResolution(input string) (Resolution, bool) {
	switch input {
	case "DEFERRED":
		return ResolutionNext, true
	case "DROPPED":
		return ResolutionBacklog, true
	}
	r := Resolution(input)
	return r, r.IsValid()
}

// IsValid checks if the MeetingFrequency is valid
func (f MeetingFrequency) IsValid() bool {
	switch f {
	case FrequencyWeekly, FrequencyBiweekly:
		return true
	}
	return false
}

// IntervalDays returns the number of days between occurrences
func (f MeetingFrequency) IntervalDays() int {
	if f == FrequencyBiweekly {
		return 14
	}
	return 7
}
