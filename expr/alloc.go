package expr

import (
	"fmt"
	"math/bits"
	"runtime"
	"unsafe"

	"github.com/cwbudde/algo-expr/internal/config"
	"github.com/cwbudde/algo-expr/internal/isa"
)

// maxAllocBytes stays below the largest object the Go heap can hand out:
// 2^47-1 bytes on 64-bit platforms, 2^31-1 on 32-bit ones.
const maxAllocBytes = 1<<(bits.UintSize/2+15) - 1

// alignedSlice allocates n elements whose first element sits on an
// alignment-byte boundary. The Go heap does not move objects, so the
// alignment holds for the lifetime of the slice.
func alignedSlice[T isa.Float](n, alignment int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLength, n)
	}
	if limit := config.Load().MaxElements; limit > 0 && n > limit {
		return nil, fmt.Errorf("%w: %d elements exceeds limit %d", ErrTooLarge, n, limit)
	}

	size := isa.SizeOf[T]()
	pad := alignment / size
	if n > maxAllocBytes/size-pad {
		return nil, fmt.Errorf("%w: %d elements of %d bytes", ErrTooLarge, n, size)
	}
	if n == 0 {
		return []T{}, nil
	}

	buf, err := makeSlice[T](n + pad)
	if err != nil {
		return nil, err
	}
	off := misalignment(buf, alignment)
	if off != 0 {
		off = (alignment - off) / size
	}
	return buf[off : off+n : off+n], nil
}

// misalignment is the byte distance of &s[0] past the previous alignment
// boundary.
func misalignment[T isa.Float](s []T, alignment int) int {
	if len(s) == 0 {
		return 0
	}
	return int(uintptr(unsafe.Pointer(&s[0])) % uintptr(alignment))
}

// makeSlice turns a rejected make into ErrTooLarge. The runtime reports
// lengths it cannot satisfy with a runtime.Error panic.
func makeSlice[T isa.Float](n int) (buf []T, err error) {
	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}
			buf, err = nil, fmt.Errorf("%w: %d elements: %v", ErrTooLarge, n, rerr)
		}
	}()
	return make([]T, n), nil
}
