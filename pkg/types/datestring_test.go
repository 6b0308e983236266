package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateStringFromString(t *testing.T) {
	d, err := NewDateStringFromString("2026-03-15")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-15", d.String())

	_, err = NewDateStringFromString("15.03.2026")
	assert.Error(t, err)

	_, err = NewDateStringFromString("2026-02-30")
	assert.Error(t, err)

	_, err = NewDateStringFromString("")
	assert.Error(t, err)
}

func TestDateString_Comparison(t *testing.T) {
	a := DateString("2026-03-15")
	b := DateString("2026-03-16")

	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.True(t, b.After(a))
	assert.False(t, a.After(a))
	assert.False(t, a.Before(a))
}

func TestDateString_AddDays(t *testing.T) {
	d := DateString("2026-02-27")

	next, err := d.AddDays(2)
	require.NoError(t, err)
	assert.Equal(t, DateString("2026-03-01"), next)

	prev, err := d.AddDays(-27)
	require.NoError(t, err)
	assert.Equal(t, DateString("2026-01-31"), prev)
}

func TestDateString_DaysUntil(t *testing.T) {
	a := DateString("2026-03-15")
	b := DateString("2026-03-18")

	n, err := a.DaysUntil(b)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = b.DaysUntil(a)
	require.NoError(t, err)
	assert.Equal(t, -3, n)

	n, err = a.DaysUntil(a)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestDateString_Scan(t *testing.T) {
	var d DateString

	require.NoError(t, d.Scan(time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)))
	assert.Equal(t, DateString("2026-03-15"), d)

	require.NoError(t, d.Scan("2026-04-01"))
	assert.Equal(t, DateString("2026-04-01"), d)

	require.NoError(t, d.Scan([]byte("2026-05-01")))
	assert.Equal(t, DateString("2026-05-01"), d)

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}

func TestDateString_Value(t *testing.T) {
	v, err := DateString("2026-03-15").Value()
	require.NoError(t, err)
	assert.Equal(t, "2026-03-15", v)

	v, err = DateString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = DateString("not-a-date").Value()
	assert.Error(t, err)
}
