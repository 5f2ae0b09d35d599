// Package registrationsofuser implements the dashboard of a user: their Registrations, newest
// first, and the totals across them.
package registrationsofuser
