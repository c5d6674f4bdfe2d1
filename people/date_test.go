package people

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	assert := assert.New(t)

	d, err := ParseDate("1906-12-09")

	assert.NoError(err)
	assert.Equal(NewDate(1906, time.December, 9), d)
	assert.Equal("1906-12-09", d.String())
}

func TestParseDateRejectsGarbage(t *testing.T) {
	assert := assert.New(t)

	for _, input := range []string{"", "09/12/1906", "1906-13-01", "1906-02-30"} {
		_, err := ParseDate(input)
		assert.Error(err, "expected %q to be rejected", input)
	}
}

func TestDateOrdering(t *testing.T) {
	assert := assert.New(t)
	earlier := NewDate(1947, time.January, 8)

	assert.True(earlier.Before(NewDate(1972, time.February, 10)))
	assert.True(earlier.Before(NewDate(1947, time.February, 1)))
	assert.True(earlier.Before(NewDate(1947, time.January, 9)))
	assert.False(earlier.Before(earlier))
	assert.False(NewDate(1972, time.February, 10).Before(earlier))
}

func TestZeroDate(t *testing.T) {
	assert := assert.New(t)

	assert.True(Date{}.IsZero())
	assert.False(NewDate(1, time.January, 1).IsZero())
	assert.Equal("0000-00-00", Date{}.String())
}
