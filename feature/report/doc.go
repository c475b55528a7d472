// Package report renders stock take variance results as CSV downloads.
//
// Two layouts are offered: a flat per-item variance report and a bin-walk
// report grouped by bin location for recount rounds. Both are computed on
// demand from the session's staged blobs via the stocktake service.
package report
