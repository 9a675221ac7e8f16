package remote

import (
	"math"
	"sync"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/unix"
)

// wordSize is the machine word size ptrace's word-at-a-time peek operates
// on: one long, 8 bytes on every architecture this module supports.
const wordSize = 8

var (
	pageSizeOnce  sync.Once
	pageSizeValue int

	// bulkDisabled is the process-wide sticky latch described in spec.md
	// §4.B and §5: once a bulk cross-process read has failed at the OS
	// level for any reason, every later request (in this process, for any
	// pid) skips straight to the word-at-a-time path. It only ever
	// transitions false -> true (an idempotent effect), so a plain
	// uint32 with atomic ops is enough; no lock, and no need for the
	// generic atomic.Bool added in newer Go than this module's floor.
	bulkDisabled uint32

	// Seams for tests to simulate kernel behavior without a real tracee.
	ptracePeekWord   = ptracePeekWordSyscall
	processVMReadv   = processVMReadvSyscall
)

func pageSize() int {
	pageSizeOnce.Do(func() {
		pageSizeValue = unix.Getpagesize()
	})
	return pageSizeValue
}

func ptracePeekWordSyscall(pid int, addr uintptr) (uint64, error) {
	var buf [wordSize]byte
	_, err := unix.PtracePeekData(pid, addr, buf[:])
	if err != nil {
		return 0, err
	}
	return *(*uint64)(unsafe.Pointer(&buf[0])), nil
}

func processVMReadvSyscall(pid int, local []unix.Iovec, remote []unix.RemoteIovec) (int, error) {
	return unix.ProcessVMReadv(pid, local, remote, 0)
}

// readRemote copies len(dest) bytes from the tracee's address space
// starting at addr into dest. It implements the dual-path algorithm from
// spec.md §4.B: short reads always use the word-at-a-time peek path;
// longer reads try the bulk cross-process facility first and downgrade
// permanently on first OS-level failure.
func readRemote(pid int, addr uintptr, dest []byte) error {
	if len(dest) == 0 {
		return nil
	}
	if addr > math.MaxUint64-uintptr(len(dest)) {
		return unix.EFAULT
	}

	if len(dest) < 2*wordSize {
		return readWordAtATime(pid, addr, dest)
	}

	if atomic.LoadUint32(&bulkDisabled) == 0 {
		if err := readBulk(pid, addr, dest); err != nil {
			atomic.StoreUint32(&bulkDisabled, 1)
		} else {
			return nil
		}
	}
	return readWordAtATime(pid, addr, dest)
}

// readWordAtATime implements PTRACE_PEEKTEXT/PEEKDATA word-at-a-time
// reading: align the start address down to a word boundary, peek the
// boundary word and copy only the misaligned-prefix tail bytes, peek whole
// words across the middle, then peek one final word and copy only the
// unaligned-suffix leading bytes.
func readWordAtATime(pid int, addr uintptr, dest []byte) error {
	remaining := len(dest)
	cur := addr
	out := dest

	if align := int(cur % wordSize); align != 0 {
		aligned := cur - uintptr(align)
		word, err := ptracePeekWord(pid, aligned)
		if err != nil {
			return err
		}
		wordBytes := (*[wordSize]byte)(unsafe.Pointer(&word))
		n := wordSize - align
		if n > remaining {
			n = remaining
		}
		copy(out, wordBytes[align:align+n])
		out = out[n:]
		cur += uintptr(n)
		remaining -= n
	}

	for remaining >= wordSize {
		word, err := ptracePeekWord(pid, cur)
		if err != nil {
			return err
		}
		wordBytes := (*[wordSize]byte)(unsafe.Pointer(&word))
		copy(out, wordBytes[:])
		out = out[wordSize:]
		cur += wordSize
		remaining -= wordSize
	}

	if remaining > 0 {
		word, err := ptracePeekWord(pid, cur)
		if err != nil {
			return err
		}
		wordBytes := (*[wordSize]byte)(unsafe.Pointer(&word))
		copy(out, wordBytes[:remaining])
	}

	return nil
}

// readBulk copies dest via process_vm_readv, splitting the remote side at
// page boundaries (the kernel rejects a remote iovec that crosses a page)
// and looping across unix.IOV_MAX-sized batches of iovecs. Grounded on
// seccomp/memParserIOvec.go's readProcessMem, generalized to requests
// spanning more than one process_vm_readv call.
func readBulk(pid int, addr uintptr, dest []byte) error {
	const iovMax = 1024 // unix.IOV_MAX is not exported; this matches the kernel's UIO_MAXIOV.

	ps := pageSize()
	total := len(dest)
	done := 0

	for done < total {
		remote := make([]unix.RemoteIovec, 0, iovMax)
		cur := addr + uintptr(done)
		batchLen := 0

		for len(remote) < iovMax && done+batchLen < total {
			misalignment := int(cur % uintptr(ps))
			chunk := ps - misalignment
			if left := total - done - batchLen; chunk > left {
				chunk = left
			}
			remote = append(remote, unix.RemoteIovec{Base: cur, Len: chunk})
			cur += uintptr(chunk)
			batchLen += chunk
		}

		local := []unix.Iovec{{Base: &dest[done], Len: uint64(batchLen)}}

		n, err := processVMReadv(pid, local, remote)
		if err != nil {
			return err
		}
		if n <= 0 {
			return unix.EIO
		}
		done += n
	}
	return nil
}

// ReadFixed reads a fixed-layout value of type T (a trivially-copyable
// record whose size is known at compile time, e.g. a kernel struct like
// timespec or stat) from the tracee at addr.
func ReadFixed[T any](pid int, addr uintptr) Outcome[T] {
	var v T
	size := int(unsafe.Sizeof(v))
	buf := unsafe.Slice((*byte)(unsafe.Pointer(&v)), size)
	if err := readRemote(pid, addr, buf); err != nil {
		return Failed[T](remoteReadError(err), nil)
	}
	return Success(v)
}

// ReadCString reads bytes from addr until a zero byte, returning them
// without the trailing NUL. On read failure mid-string, the bytes already
// accumulated are reported as Partial.
func ReadCString(pid int, addr uintptr) Outcome[[]byte] {
	var buf []byte
	cur := addr
	for {
		word, err := ptracePeekWord(pid, cur)
		if err != nil {
			partial := append([]byte(nil), buf...)
			return Failed[[]byte](remoteReadError(err), &partial)
		}
		wordBytes := (*[wordSize]byte)(unsafe.Pointer(&word))
		for _, b := range wordBytes {
			if b == 0 {
				return Success(buf)
			}
			buf = append(buf, b)
		}
		cur += wordSize
	}
}

// ReadPath reads a NUL-terminated path string from addr.
func ReadPath(pid int, addr uintptr) Outcome[string] {
	o := ReadCString(pid, addr)
	if o.Ok {
		return Success(string(o.Value))
	}
	var partial *string
	if o.Partial != nil {
		s := string(*o.Partial)
		partial = &s
	}
	return Failed[string](o.Err, partial)
}

// ReadNullTerminatedPtrArray reads a sequence of remote pointers starting
// at addr until a null pointer is found, reading each pointer's target as a
// NUL-terminated string (the shape argv and envp use). On failure reading
// the next pointer slot, or reading an element's target, the elements
// successfully read so far are reported as Partial.
func ReadNullTerminatedPtrArray(pid int, addr uintptr) Outcome[[]string] {
	var result []string
	cur := addr

	for {
		ptr, err := ptracePeekWord(pid, cur)
		if err != nil {
			partial := append([]string(nil), result...)
			return Failed[[]string](remoteReadError(err), &partial)
		}
		if ptr == 0 {
			return Success(result)
		}
		elem := ReadCString(pid, uintptr(ptr))
		if !elem.Ok {
			partial := append([]string(nil), result...)
			return Failed[[]string](elem.Err, &partial)
		}
		result = append(result, string(elem.Value))
		cur += wordSize
	}
}

// ReadCounted reads count fixed-layout elements of type T starting at addr.
// On element i failing, the prefix of length i already read is reported as
// Partial.
func ReadCounted[T any](pid int, addr uintptr, count int) Outcome[[]T] {
	if count == 0 {
		return Success[[]T](nil)
	}
	var zero T
	elemSize := uintptr(unsafe.Sizeof(zero))
	result := make([]T, 0, count)
	for i := 0; i < count; i++ {
		elem := ReadFixed[T](pid, addr+uintptr(i)*elemSize)
		if !elem.Ok {
			partial := append([]T(nil), result...)
			return Failed[[]T](elem.Err, &partial)
		}
		result = append(result, elem.Value)
	}
	return Success(result)
}

// ReadPair reads a two-element fixed-size array starting at addr (e.g. a
// { atime, mtime } timestamp pair). On the second element failing, the
// first is kept as the single-element partial.
func ReadPair[T any](pid int, addr uintptr) Outcome[[2]T] {
	var zero T
	elemSize := uintptr(unsafe.Sizeof(zero))

	first := ReadFixed[T](pid, addr)
	if !first.Ok {
		return Failed[[2]T](first.Err, nil)
	}
	second := ReadFixed[T](pid, addr+elemSize)
	if !second.Ok {
		partial := [2]T{first.Value}
		return Failed[[2]T](second.Err, &partial)
	}
	return Success([2]T{first.Value, second.Value})
}

// ReadVariableSized reads a record whose trailing field is a flexible
// array, given the total byte size (determined by the caller from a
// sibling field, e.g. a size prefix already decoded). It allocates a
// destination of exactly size bytes and fills it with one readRemote call,
// so the usual dual-path choice applies (word path for short sizes, bulk
// path otherwise); a failed read is reported as failure with no partial
// value. size is not checked: it must be positive and at least the size
// of T.
func ReadVariableSized[T any](pid int, addr uintptr, size int) Outcome[*T] {
	buf := make([]byte, size)
	if err := readRemote(pid, addr, buf); err != nil {
		return Failed[*T](remoteReadError(err), nil)
	}
	v := (*T)(unsafe.Pointer(&buf[0]))
	return Success(v)
}
