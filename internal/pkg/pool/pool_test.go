package pool

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoolRunsAllJobs(t *testing.T) {
	p := New(4)
	var done atomic.Int64
	for i := 0; i < 100; i++ {
		p.Submit(func() { done.Add(1) })
	}
	p.Close()
	p.Wait()
	assert.Equal(t, int64(100), done.Load())
}

func TestPoolIgnoresNilJobs(t *testing.T) {
	p := New(0)
	p.Submit(nil)
	p.Submit(func() {})
	p.Close()
	p.Wait()
}
