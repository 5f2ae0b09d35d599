// Package userprofile implements the lookup of a user by id.
package userprofile
