// Package database handles the stock catalog database connection.
//
// It provides a wrapper around GORM to properly configure MySQL connections
// based on the application's configuration: DSN construction with encoded
// credentials, connection pooling, I/O timeouts and a startup ping.
//
// The catalog database is an optional collaborator. When it is unreachable
// the service still parses uploads and computes variances; rows for codes the
// journal does not cover are then flagged as missing instead of being matched
// against master data.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logg.Warn("Catalog database unavailable", zap.Error(err))
//	}
package database
