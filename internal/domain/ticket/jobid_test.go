package ticket

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatJobID(t *testing.T) {
	assert.Equal(t, "JOB2025-0001", FormatJobID("JOB", 2025, 1))
	assert.Equal(t, "JOB2025-0042", FormatJobID("", 2025, 42))
	assert.Equal(t, "REQ2026-9999", FormatJobID("REQ", 2026, 9999))

	// Past 9999 the field grows instead of wrapping.
	assert.Equal(t, "JOB2025-10000", FormatJobID("JOB", 2025, 10000))
}

func TestFormatJobIDMatchesWireFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^JOB\d{4}-\d{4,}$`)
	for _, seq := range []int{1, 7, 9999, 10000, 123456} {
		assert.Regexp(t, pattern, FormatJobID("JOB", 2025, seq))
	}
}

func TestParseJobIDSequence(t *testing.T) {
	prefix := JobIDPrefix("JOB", 2025)
	require.Equal(t, "JOB2025-", prefix)

	seq, err := ParseJobIDSequence("JOB2025-0007", prefix)
	require.NoError(t, err)
	assert.Equal(t, 7, seq)

	seq, err = ParseJobIDSequence("JOB2025-10001", prefix)
	require.NoError(t, err)
	assert.Equal(t, 10001, seq)

	_, err = ParseJobIDSequence("JOB2024-0007", prefix)
	assert.Error(t, err)

	_, err = ParseJobIDSequence("JOB2025-00x7", prefix)
	assert.Error(t, err)
}
