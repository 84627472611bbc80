package events

import "github.com/projectnexus/jobboard/internal/entities"

var ApplicationSubmittedTopic = "ApplicationSubmittedEvent"

type ApplicationSubmitted struct {
	ApplicationID int64
}

var ApplicationStatusChangedTopic = "ApplicationStatusChangedEvent"

type ApplicationStatusChanged struct {
	ApplicationID int64
	OldStatus     entities.ApplicationStatus
	NewStatus     entities.ApplicationStatus
}
