package internal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatTimestamp(t *testing.T) {
	date := time.Date(2024, 6, 2, 11, 30, 0, 0, time.FixedZone("CEST", 2*60*60))

	assert.Equal(t, "2024-06-02T09:30:00Z", FormatTimestamp(date))
	assert.Equal(t, "2024-06-02T09:30:00Z", FormatOptionalTimestamp(&date))
	assert.Equal(t, "", FormatOptionalTimestamp(nil))
}
