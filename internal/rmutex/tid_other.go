//go:build !linux && !windows

package rmutex

import (
	"bytes"
	"runtime"
	"strconv"
)

// threadID falls back to the goroutine id. While the lock is held the
// goroutine is wired to one thread, so the two identify the same holder.
func threadID() int64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	b := bytes.TrimPrefix(buf[:n], []byte("goroutine "))
	if i := bytes.IndexByte(b, ' '); i > 0 {
		b = b[:i]
	}
	id, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		panic("rmutex: cannot parse goroutine id: " + err.Error())
	}
	return id
}
