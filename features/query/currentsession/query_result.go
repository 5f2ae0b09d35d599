package currentsession

import (
	"github.com/AntonStoeckl/eventhub/shared/core"
)

// Session is the identity of the signed in user.
type Session struct {
	SessionID core.SessionIDString
	UserID    core.UserIDString
	Email     string
	FirstName string
	LastName  string
}

// CurrentSession is the content of the session slot. Session is the zero value when Active is false.
type CurrentSession struct {
	Session Session
	Active  bool
}
