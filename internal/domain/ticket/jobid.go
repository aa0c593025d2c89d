package ticket

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// DefaultJobIDPrefix is used when no prefix is configured in settings.
const DefaultJobIDPrefix = "JOB"

// JobIDGenerator derives the next sequential job ID for a calendar year,
// e.g. JOB2025-0001. Implementations must guarantee uniqueness under
// concurrent creation: generation and the ticket insert happen inside one
// transaction, so the generator reads through the transaction in ctx.
type JobIDGenerator interface {
	Generate(ctx context.Context, year int) (string, error)
}

// JobIDPrefix returns the full year prefix, e.g. "JOB2025-".
func JobIDPrefix(prefix string, year int) string {
	if prefix == "" {
		prefix = DefaultJobIDPrefix
	}
	return fmt.Sprintf("%s%04d-", prefix, year)
}

// FormatJobID builds a job ID from its parts. The sequence is zero-padded to
// four digits and grows beyond that width past 9999.
func FormatJobID(prefix string, year, seq int) string {
	return fmt.Sprintf("%s%04d", JobIDPrefix(prefix, year), seq)
}

// ParseJobIDSequence extracts the numeric sequence from a job ID sharing the
// given year prefix. Returns an error when the ID does not match the prefix
// or the suffix is not numeric.
func ParseJobIDSequence(jobID, yearPrefix string) (int, error) {
	if !strings.HasPrefix(jobID, yearPrefix) {
		return 0, fmt.Errorf("job ID %q does not match prefix %q", jobID, yearPrefix)
	}
	seq, err := strconv.Atoi(strings.TrimPrefix(jobID, yearPrefix))
	if err != nil {
		return 0, fmt.Errorf("job ID %q has non-numeric sequence: %w", jobID, err)
	}
	return seq, nil
}
