// Package model defines shared data types used across the Forezy client.
//
// Conventions:
//   - Timestamps: time.Time in UTC, parsed from RFC 3339 API fields
//   - IDs: opaque strings assigned by the backend
//   - Session JSON tags match the persisted record layout
package model
