package main

import (
	"errors"

	"tierlist/internal/provider"
)

// formatCLIError renders err plus actionable hints for the common
// storage-related failure classes.
func formatCLIError(err error) []string {
	if err == nil {
		return nil
	}

	lines := []string{err.Error()}

	switch {
	case errors.Is(err, provider.ErrCapacityExceeded):
		lines = append(lines,
			"hint: delete unused tier lists or export a backup and start a fresh store.",
			"hint: the capacity ceiling can be raised via max_bytes in the config or TIERLIST_MAX_BYTES.",
		)
	case errors.Is(err, provider.ErrUnavailable):
		lines = append(lines, "hint: check that the store path is writable (see the [provider.local] config section).")
	case errors.Is(err, provider.ErrNotImplemented):
		lines = append(lines, "hint: only the \"local\" provider variant is available; set provider.variant = \"local\".")
	case errors.Is(err, provider.ErrImport):
		lines = append(lines, "hint: the input must be a tierlist export; check the file with --doc for single documents.")
	}

	return lines
}
