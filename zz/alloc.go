package zz

import "sync/atomic"

// AllocTable is the process-wide allocation policy consulted by every
// digit-buffer growth point in this package. Go's runtime allocator
// cannot be swapped out, and a genuine OS-level allocation failure is
// fatal and unrecoverable in Go (runtime.throw, not a panic), so the
// shim instead enforces a configurable ceiling on digit-buffer size.
// Exceeding the ceiling is reported exactly like a real allocation
// failure would be: an *Error with Status MEM, with no partial mutation of the
// destination.
//
// This is sufficient to drive and test the full OUT_OF_MEMORY contract
// (every kernel either completes or fails cleanly) without requiring an
// actually-starved process — a reduced allocation cap standing in for a
// starved allocator.
type AllocTable struct {
	// MaxDigits caps the size, in Words, of any single digit buffer this
	// package will allocate. Zero means unbounded (the default).
	MaxDigits uint64

	// OnAlloc, if set, is invoked around every successful growth; it
	// exists for the counting-allocator test harness (alloc_test.go) and
	// is never required for correctness. There is no OnFree counterpart:
	// Go's garbage collector reclaims digit buffers, so there is no
	// explicit release point to hook the way the C core's deallocator
	// pointer has one.
	OnAlloc func(words int)
}

var activeTable atomic.Pointer[AllocTable]

// Setup installs a process-wide allocation policy. Passing nil restores
// the default (unbounded) policy. Setup is safe to call concurrently
// with kernels already in flight: the table is read once per growth
// point via an atomic load.
func Setup(table *AllocTable) error {
	activeTable.Store(table)
	return nil
}

// Finish drains the factorial/double-factorial memo (see intpow.go) and
// restores the default allocation policy. It permits the package to be
// "unloaded" (memo cleared, policy reset) the way the C core's finish()
// lets an embedder swap allocators between uses.
func Finish() {
	clearFactorialMemo()
	activeTable.Store(nil)
}

// checkAlloc reports whether growing a digit buffer to n Words is
// permitted under the active policy, invoking OnAlloc on success.
func checkAlloc(op string, n int) error {
	t := activeTable.Load()
	if t == nil {
		return nil
	}
	if t.MaxDigits != 0 && uint64(n) > t.MaxDigits {
		return errMem(op)
	}
	if t.OnAlloc != nil {
		t.OnAlloc(n)
	}
	return nil
}
