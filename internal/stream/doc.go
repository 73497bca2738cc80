// Package stream implements the live market update WebSocket client.
//
// The client maintains a single connection to the backend, subscribes to
// market update channels, and delivers raw timestamped messages on a
// buffered channel. Consumers decode MarketUpdate payloads themselves;
// the client stays protocol-thin.
package stream
