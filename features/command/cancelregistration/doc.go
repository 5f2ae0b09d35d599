// Package cancelregistration implements the cancellation of a Registration.
//
// A single RegistrationCanceled event removes the Registration and gives its tickets back to the
// Event. Cancelling works even after the Event was deleted.
package cancelregistration
