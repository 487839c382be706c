// Package middleware groups the HTTP middleware used by the application:
//   - rayid: assigns a correlation ID to every request
//   - auth: API key protection for the whole API surface
package middleware
