// Package utils
package utils

import (
	"github.com/stretchr/testify/assert"
	"sync/atomic"
	"testing"
	"time"
)

func TestReverseForEach(t *testing.T) {
	var order []int
	ReverseForEach([]string{"a", "b", "c"}, func(index int, _ string) {
		order = append(order, index)
	})
	assert.Equal(t, []int{2, 1, 0}, order)
}

func TestCachedValueNeverExpires(t *testing.T) {
	var calls atomic.Int32
	value := NewCachedValue(-1, func() *int {
		v := int(calls.Add(1))
		return &v
	})
	assert.Equal(t, 1, *value.GetValue())
	assert.Equal(t, 1, *value.GetValue())
	assert.Equal(t, int32(1), calls.Load())
}

func TestCachedValueExpires(t *testing.T) {
	var calls atomic.Int32
	value := NewCachedValue(time.Millisecond, func() *int {
		v := int(calls.Add(1))
		return &v
	})
	assert.Equal(t, 1, *value.GetValue())
	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, 2, *value.GetValue())
}
