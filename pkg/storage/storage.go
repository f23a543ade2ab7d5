// Package storage is the persistence collaborator behind Store: it receives
// the finalized bytes verbatim and owns directory creation, filename
// hygiene, and I/O error handling.
package storage

// Writer persists one rendered document.
type Writer interface {
	// Write stores data at dir/filename. The bytes are written exactly as
	// handed over; the renderer has already applied compression if any.
	Write(dir, filename string, data []byte) error
}
