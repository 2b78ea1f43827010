// Package http implements the REST transport of the project hub server.
//
// It wires chi routes for storage setup, authentication, projects, todos,
// notes, the dashboard and user administration. Tracing, access logging,
// compression, storage gating and bearer authentication are middleware that
// run before a request reaches the service layer.
package http
