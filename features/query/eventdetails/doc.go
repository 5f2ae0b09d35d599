// Package eventdetails implements the lookup of one Event with its remaining spots.
package eventdetails
