// Package resetpassword implements the Reset Password use case.
//
// The account holding the email gets a new bcrypt hash. Accounts that hold other addresses are not
// touched, and an email that no account holds is reported as not found.
package resetpassword
