package testutil

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThreadSafeBuffer(t *testing.T) {
	var buf ThreadSafeBuffer
	assert.Empty(t, buf.String())
	assert.Nil(t, buf.Lines())

	var wg sync.WaitGroup
	for range 10 {
		wg.Go(func() {
			_, _ = buf.Write([]byte("line\n"))
		})
	}
	wg.Wait()

	assert.Len(t, buf.Lines(), 10)
}

func TestThreadSafeBuffer_PartialLine(t *testing.T) {
	var buf ThreadSafeBuffer
	_, _ = buf.Write([]byte("one\ntwo"))
	assert.Equal(t, []string{"one", "two"}, buf.Lines())
}
