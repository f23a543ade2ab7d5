package utils

import (
	"errors"
	"os"
	"strings"
)

// --- Sentinel Errors for Categorization ---
var (
	ErrValidation     = errors.New("configuration validation error") // Invalid Options value (bad max_size, unknown format, malformed domain)
	ErrFormat         = errors.New("unknown output format")          // Format name outside the supported set
	ErrItemValidation = errors.New("item validation error")          // Out-of-range priority/freq under strict mode
	ErrCompression    = errors.New("compression error")              // Wraps gzip writer errors
	ErrStorage        = errors.New("storage error")                  // Wraps filesystem errors from the persistence collaborator
	ErrCache          = errors.New("cache error")                    // Wraps badger errors from the render cache
)

// CategorizeError maps an error to a predefined category string for logging/metrics.
func CategorizeError(err error) string {
	if err == nil {
		return "None"
	}

	switch {
	case errors.Is(err, ErrValidation):
		return "Config_Validation"
	case errors.Is(err, ErrFormat):
		return "Render_UnknownFormat"
	case errors.Is(err, ErrItemValidation):
		errMsg := err.Error()
		if strings.Contains(errMsg, "priority") {
			return "Item_Priority"
		}
		if strings.Contains(errMsg, "freq") {
			return "Item_Freq"
		}
		return "Item_Other"
	case errors.Is(err, ErrCompression):
		return "Output_Compression"
	case errors.Is(err, ErrStorage):
		if errors.Is(err, os.ErrPermission) {
			return "Storage_Permission"
		}
		if errors.Is(err, os.ErrNotExist) {
			return "Storage_NotExist"
		}
		return "Storage_Other"
	case errors.Is(err, ErrCache):
		return "Cache_Other"
	}

	return "Unknown"
}
