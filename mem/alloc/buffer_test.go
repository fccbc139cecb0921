package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferLifecycle(t *testing.T) {
	b, err := NewBuffer[int32](Heap[int32]{}, 5)
	require.NoError(t, err)
	require.NotNil(t, b)

	assert.Equal(t, 5, b.Len())
	assert.NotNil(t, b.Ptr())
	assert.Equal(t, TagHeap, b.Tag())

	elems := b.Elems()
	require.Len(t, elems, 5)
	elems[2] = 42
	assert.Equal(t, int32(42), b.Elems()[2], "Elems views the buffer storage, not a copy")

	require.NoError(t, b.Free())

	assert.Zero(t, b.Len(), "Len is 0 after Free")
	assert.Nil(t, b.Ptr(), "Ptr is nil after Free")
	assert.Nil(t, b.Elems(), "Elems is nil after Free")
}

func TestBufferDoubleFree(t *testing.T) {
	b, err := NewBuffer[byte](Malloc[byte]{}, 32)
	require.NoError(t, err)
	require.NotNil(t, b)

	require.NoError(t, b.Free())
	assert.ErrorIs(t, b.Free(), ErrFreed, "second Free is a defined error")
}

func TestBufferFinalizesElements(t *testing.T) {
	resetCounts()

	b, err := NewBuffer[counted](Calloc[counted]{}, 4)
	require.NoError(t, err)
	require.NotNil(t, b)
	require.Equal(t, 4, ctorCalls)

	require.NoError(t, b.Free())
	assert.Equal(t, 4, dtorCalls, "Free releases through the recorded strategy and count")
}

func TestBufferProhibitedStrategy(t *testing.T) {
	b, err := NewBuffer[int](NoAlloc[int]{}, 3)
	assert.ErrorIs(t, err, ErrProhibited)
	assert.Nil(t, b)
}

func TestBufferCapacityFailure(t *testing.T) {
	b, err := NewBuffer[int](Heap[int]{}, 0)
	require.NoError(t, err, "capacity failure is not an error")
	assert.Nil(t, b)
}

func TestNilBufferAccessors(t *testing.T) {
	var b *Buffer[int]
	assert.NoError(t, b.Free(), "freeing a nil buffer is a no-op")
	assert.Nil(t, b.Ptr())
	assert.Zero(t, b.Len())
	assert.Nil(t, b.Elems())
}
