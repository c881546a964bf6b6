package ttlv

import (
	"bytes"
	"sync"
)

// bytesBufPool reuses buffers for assembling structure payloads and reading values.
var bytesBufPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 4096))
	},
}
