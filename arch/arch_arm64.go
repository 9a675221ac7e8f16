package arch

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// arm64Registers wraps unix.PtraceRegsArm64, fetched via the iovec-based
// PTRACE_GETREGSET request. Unlike x86_64, the direct PTRACE_GETREGS request
// is not used here: on some kernels it has been observed to hand back a
// short read (fewer bytes than sizeof(user_pt_regs)) around exec-related
// stops, so capture() drives PTRACE_GETREGSET itself (the same raw
// unix.Syscall6 pattern arch_riscv64.go uses) rather than going through
// unix.PtraceGetRegSetArm64, which builds its own internal iovec and never
// hands the updated Len back to the caller — through it, a short read can't
// be detected at all.
type arm64Registers struct {
	regs unix.PtraceRegsArm64
}

func (r *arm64Registers) Arch() ID { return Arm64 }

// SyscallNumber reads x8, the arm64 syscall-number register. The kernel does
// not clobber x8 across the syscall, so it remains valid at both entry and
// exit stops.
func (r *arm64Registers) SyscallNumber() uint64 { return r.regs.Regs[8] }

// Result reads x0. Note the kernel overwrites x0 with the return value by
// the time of the syscall-exit stop, so callers must capture raw arguments
// (which include x0's entry-time value) before relying on this.
func (r *arm64Registers) Result() uint64 { return r.regs.Regs[0] }

// Arg returns the i'th syscall argument slot: x0..x5, per the arm64 AAPCS64
// syscall calling convention.
func (r *arm64Registers) Arg(i int) uint64 {
	if i < 0 || i > 5 {
		panic(fmt.Sprintf("arch: arg index %d out of range", i))
	}
	return r.regs.Regs[i]
}

func capture(pid int) (Registers, error) {
	var r arm64Registers
	iov := unix.Iovec{
		Base: (*byte)(unsafe.Pointer(&r.regs)),
		Len:  uint64(unsafe.Sizeof(r.regs)),
	}
	_, _, errno := unix.Syscall6(unix.SYS_PTRACE, unix.PTRACE_GETREGSET,
		uintptr(pid), uintptr(nrPRStatus), uintptr(unsafe.Pointer(&iov)), 0, 0)
	if errno != 0 {
		return nil, &CaptureError{Pid: pid, Op: "PTRACE_GETREGSET", Err: errno}
	}
	if iov.Len != uint64(unsafe.Sizeof(r.regs)) {
		return nil, &CaptureError{Pid: pid, Op: "PTRACE_GETREGSET",
			Err: fmt.Errorf("short register set: got %d bytes, want %d", iov.Len, unsafe.Sizeof(r.regs))}
	}
	return &r, nil
}

// Native is the ID of the architecture this binary was built for.
const Native = Arm64
