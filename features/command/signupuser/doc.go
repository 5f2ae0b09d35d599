// Package signupuser implements the Sign Up User use case.
//
// A new account is created with a bcrypt hash of the password. The email address must not be held
// by any other account. The uniqueness check and the append share one consistency boundary: all
// user events whose Email or PreviousEmail is the requested address.
package signupuser
