package util

import (
	"fmt"

	"github.com/labstack/gommon/bytes"
	"github.com/pkg/errors"
)

// ParseBytes parses human readable sizes such as "5MB" or "512KB".
func ParseBytes(size string) (int64, error) {
	n, err := bytes.Parse(size)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid size %q", size)
	}

	return n, nil
}

// FormatBytes formats bytes with decimal units, matching what ParseBytes accepts.
func FormatBytes(bytes int64) string {
	const unit = 1000
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}
