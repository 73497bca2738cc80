// Package api provides the Forezy backend client for REST communication.
//
// Base path: https://forezy-backend.vercel.app/v1/api
//
// Endpoints:
//   - POST /users/login
//   - POST /users/register
//   - GET  /markets
//   - GET  /markets/{id}
//
// All operations return typed results: transport failures and non-2xx
// statuses are surfaced as errors classifiable via Classify, never as
// panics.
package api
