package xslices

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestMap(t *testing.T) {
	count := 17
	in := make([]int, count)
	for ii := 0; ii < count; ii++ {
		in[ii] = ii
	}
	out := Map(in, func(v int) int32 { return int32(v + 1) })
	for ii := 0; ii < count; ii++ {
		assert.Equalf(t, int32(ii+1), out[ii], "element %d doesn't match", ii)
	}
}

func TestCopy(t *testing.T) {
	slice := []int{1, 2, 3}
	cp := Copy(slice)
	assert.Equal(t, slice, cp)
	cp[0] = 7
	assert.Equal(t, 1, slice[0])
	assert.Nil(t, Copy([]int(nil)))
}

func TestKeys(t *testing.T) {
	m := map[string]int{"b": 1, "a": 2, "c": 3}
	keys := Keys(m)
	assert.Len(t, keys, 3)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, keys)
	assert.Equal(t, []string{"a", "b", "c"}, SortedKeys(m))
}
