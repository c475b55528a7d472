// Package stocktake implements the stock take session feature.
//
// A session is one physical count: staff upload a count export and a book
// (ledger) export, then ask for the variance report. The uploads are decoded
// to UTF-8, parsed by the ingest package and staged in a key-value blob
// store so the variance step can run later, from another request or another
// service instance.
//
// # Components
//
//   - Staging: blob store interface with object-storage and in-memory
//     implementations.
//   - Service: orchestrates staging, parsing and the variance engine.
//   - Handler: exposes the upload and report HTTP endpoints.
//
// # HTTP Endpoints
//
//   - POST /stocktake/:session/counts : Upload and stage a count file.
//   - POST /stocktake/:session/journal : Upload and stage a journal file.
//   - GET /stocktake/:session/variance : Compute the variance report.
//   - DELETE /stocktake/:session : Drop the session's staged blobs.
package stocktake
