// Package store persists the single user session record.
//
// A Store holds at most one serialized session under a fixed location.
// Load tolerates missing or corrupt stored data by reporting "absent"
// rather than failing the caller, so a bad record can never lock a user
// out of the login flow.
package store
