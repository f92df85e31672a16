// Package http contains the chi HTTP handlers of the dashboard read API.
// Handlers validate input, delegate to the service layer, and render JSON;
// failures are written as RFC 7807 problem details.
package http
