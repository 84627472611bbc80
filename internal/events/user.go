package events

var UserRegisteredTopic = "UserRegisteredEvent"

type UserRegistered struct {
	UserID int64
}
