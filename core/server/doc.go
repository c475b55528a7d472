// Package server holds the HTTP server configuration and constants.
//
// While the main application entry point handles the server startup, this package
// defines the configuration structure for server settings, such as the listen
// port, the API key protecting the endpoints, and the upload body size limit
// applied to count and journal blobs.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server
// settings and by cmd/start.go when constructing the Fiber application.
package server
