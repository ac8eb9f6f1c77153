package time

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStamp(t *testing.T) {

	now := time.Date(2016, 12, 25, 13, 45, 1, 500, time.Local)

	s := Stamp(now)
	assert.Equal(t, "20161225134501", s)

	utc := time.Date(2016, 12, 25, 13, 45, 1, 0, time.UTC)
	assert.Equal(t, utc.Local().Format("20060102150405"), Stamp(utc))
}
