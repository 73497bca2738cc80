// Package feed maintains the browsable market list.
//
// A Feed fetches markets over REST, keeps only open markets whose
// resolution is still in the future, and serves sorted views of the last
// successful fetch. Re-sorting is a pure in-memory transform and never
// triggers a network call.
package feed
