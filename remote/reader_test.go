package remote

import (
	"sync/atomic"
	"testing"
	"unsafe"

	"golang.org/x/sys/unix"
)

// fakeMemory simulates a tracee's address space as a byte slice starting at
// base, with an optional fault address beyond which every read fails.
type fakeMemory struct {
	base  uintptr
	data  []byte
	fault uintptr // first unreadable address; 0 means no fault
}

func (m *fakeMemory) peekWord(pid int, addr uintptr) (uint64, error) {
	if m.fault != 0 && addr+wordSize > m.fault {
		return 0, unix.EFAULT
	}
	off := addr - m.base
	var buf [wordSize]byte
	copy(buf[:], m.data[off:])
	var v uint64
	for i := wordSize - 1; i >= 0; i-- {
		v = v<<8 | uint64(buf[i])
	}
	return v, nil
}

func (m *fakeMemory) vmReadv(pid int, local []unix.Iovec, remote []unix.RemoteIovec) (int, error) {
	if m.fault != 0 {
		for _, r := range remote {
			if r.Base+uintptr(r.Len) > m.fault {
				return 0, unix.EPERM
			}
		}
	}
	full := unsafe.Slice(local[0].Base, int(local[0].Len))
	n := 0
	for _, r := range remote {
		off := r.Base - m.base
		copy(full[n:n+r.Len], m.data[off:off+uintptr(r.Len)])
		n += r.Len
	}
	return n, nil
}

func withFakeMemory(t *testing.T, m *fakeMemory) {
	t.Helper()
	origPeek, origVM := ptracePeekWord, processVMReadv
	ptracePeekWord = m.peekWord
	processVMReadv = m.vmReadv
	atomic.StoreUint32(&bulkDisabled, 0)
	t.Cleanup(func() {
		ptracePeekWord = origPeek
		processVMReadv = origVM
		atomic.StoreUint32(&bulkDisabled, 0)
	})
}

func TestReadCString_PartialOnFault(t *testing.T) {
	// "abcdefgh" fills exactly one word with no NUL in it; the fault
	// boundary sits at the next word (a page-boundary-like, word-aligned
	// cut is how this actually happens against a real tracee: ptrace peeks
	// whole words, so a fault can only land on a word boundary).
	msg := []byte("abcdefgh")
	mem := &fakeMemory{base: 0x1000, data: msg, fault: 0x1000 + 8}
	withFakeMemory(t, mem)

	out := ReadCString(1, 0x1000)
	if out.Ok {
		t.Fatalf("expected failure, got %v", out)
	}
	if out.Partial == nil {
		t.Fatalf("expected partial data")
	}
	if string(*out.Partial) != "abcdefgh" {
		t.Fatalf("partial = %q, want %q", *out.Partial, "abcdefgh")
	}
}

func TestReadCString_FullRead(t *testing.T) {
	msg := append([]byte("short"), 0)
	mem := &fakeMemory{base: 0x2000, data: msg}
	withFakeMemory(t, mem)

	out := ReadCString(1, 0x2000)
	if !out.Ok {
		t.Fatalf("expected success, got %v", out)
	}
	if string(out.Value) != "short" {
		t.Fatalf("value = %q, want %q", out.Value, "short")
	}
}

func TestReadCounted_PartialAtElementI(t *testing.T) {
	// three uint32 elements, third one unreadable.
	data := make([]byte, 0)
	for _, v := range []uint32{1, 2, 3} {
		b := [4]byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
		data = append(data, b[:]...)
	}
	mem := &fakeMemory{base: 0x3000, data: data, fault: 0x3000 + 8}
	withFakeMemory(t, mem)

	out := ReadCounted[uint32](1, 0x3000, 3)
	if out.Ok {
		t.Fatalf("expected failure, got %v", out)
	}
	if out.Partial == nil || len(*out.Partial) != 2 {
		t.Fatalf("expected 2-element partial, got %v", out.Partial)
	}
}

func TestDualPath_EquivalentAndStickyDowngrade(t *testing.T) {
	data := make([]byte, 64)
	for i := range data {
		data[i] = byte(i)
	}
	mem := &fakeMemory{base: 0x4000, data: data}
	withFakeMemory(t, mem)

	type block struct {
		B [32]byte
	}

	viaBulk := ReadFixed[block](1, 0x4000)
	if !viaBulk.Ok {
		t.Fatalf("bulk read failed: %v", viaBulk)
	}

	// Force the bulk facility to fail from here on.
	atomic.StoreUint32(&bulkDisabled, 0)
	origVM := processVMReadv
	processVMReadv = func(pid int, local []unix.Iovec, remote []unix.RemoteIovec) (int, error) {
		return 0, unix.EPERM
	}
	defer func() { processVMReadv = origVM }()

	viaWord := ReadFixed[block](1, 0x4000)
	if !viaWord.Ok {
		t.Fatalf("word-path fallback failed: %v", viaWord)
	}
	if viaWord.Value != viaBulk.Value {
		t.Fatalf("dual-path mismatch: bulk=%v word=%v", viaBulk.Value, viaWord.Value)
	}

	if atomic.LoadUint32(&bulkDisabled) == 0 {
		t.Fatalf("expected bulk path to be disabled after failure")
	}

	// Subsequent reads must succeed via the word path without touching
	// process_vm_readv again.
	processVMReadv = func(pid int, local []unix.Iovec, remote []unix.RemoteIovec) (int, error) {
		t.Fatalf("process_vm_readv should not be called after sticky downgrade")
		return 0, nil
	}
	again := ReadFixed[block](1, 0x4000)
	if !again.Ok || again.Value != viaBulk.Value {
		t.Fatalf("post-downgrade read mismatch: %v", again)
	}
}
