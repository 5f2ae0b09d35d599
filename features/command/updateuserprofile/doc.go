// Package updateuserprofile implements the Update User Profile use case.
//
// Only the fields set in core.ProfileChanges are replaced. A changed email address must not be
// held by another account. The consistency boundary covers the events of the user and all user
// events that carried the new address, so a concurrent sign up with that address conflicts.
package updateuserprofile
