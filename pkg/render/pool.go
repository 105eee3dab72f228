package render

import (
	"bytes"
	"sync"

	"github.com/tagforge/tagforge/pkg/metrics"
)

// Buffer pool limits. Buffers above maxPooledBuffer are dropped on release
// to prevent one huge render from pinning memory forever.
const (
	minBufferCapacity = 256
	maxPooledBuffer   = 1 << 20
)

// bufPool recycles render scratch buffers across calls. sync.Pool keeps
// per-P free lists, so checkouts on the hot path do not synchronize.
var bufPool sync.Pool

// acquireBuffer checks a buffer out of the pool, sized for the estimated
// output. The estimate may be low; the buffer grows as needed.
func acquireBuffer(capacity int) *bytes.Buffer {
	if capacity < minBufferCapacity {
		capacity = minBufferCapacity
	}

	if v := bufPool.Get(); v != nil {
		metrics.RecordPoolGet(true)
		buf := v.(*bytes.Buffer)
		buf.Reset()
		buf.Grow(capacity)
		return buf
	}

	metrics.RecordPoolGet(false)
	return bytes.NewBuffer(make([]byte, 0, capacity))
}

// releaseBuffer returns a buffer to the pool.
func releaseBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBuffer {
		return
	}
	bufPool.Put(buf)
}
