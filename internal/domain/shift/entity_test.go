package shift

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecurrence_IncrementMillis(t *testing.T) {
	assert.Equal(t, int64(7*dayMillis), RecurrenceWeekly.IncrementMillis())
	assert.Equal(t, int64(14*dayMillis), RecurrenceBiweekly.IncrementMillis())
	assert.Equal(t, int64(30*dayMillis), RecurrenceMonthly.IncrementMillis())
	assert.Equal(t, int64(0), RecurrenceNone.IncrementMillis())
	assert.Equal(t, int64(0), Recurrence("yearly").IncrementMillis())
}

func TestShift_Claimed(t *testing.T) {
	assert.False(t, (&Shift{HostName: ""}).Claimed())
	assert.False(t, (&Shift{HostName: "   "}).Claimed())
	assert.True(t, (&Shift{HostName: "Alice"}).Claimed())
}

func TestOccurrence_Claimed(t *testing.T) {
	assert.False(t, Occurrence{HostName: "\t"}.Claimed())
	assert.True(t, Occurrence{HostName: "Bob"}.Claimed())
}
