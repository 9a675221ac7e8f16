package arch

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// riscv64UserRegs mirrors struct user_regs_struct from the kernel's
// arch/riscv/include/uapi/asm/ptrace.h. golang.org/x/sys/unix does not
// expose a riscv64 register-set helper the way it does for arm64
// (unix.PtraceRegsArm64), so this module defines the layout itself and
// drives PTRACE_GETREGSET directly through a raw unix.Syscall6, the same
// way arch_arm64.go does.
type riscv64UserRegs struct {
	Pc                                 uint64
	Ra                                 uint64
	Sp                                 uint64
	Gp                                 uint64
	Tp                                 uint64
	T0, T1, T2                        uint64
	S0, S1                             uint64
	A0, A1, A2, A3, A4, A5, A6, A7     uint64
	S2, S3, S4, S5, S6, S7, S8, S9, S10, S11 uint64
	T3, T4, T5, T6                     uint64
}

type riscv64Registers struct {
	regs riscv64UserRegs
}

func (r *riscv64Registers) Arch() ID { return RiscV64 }

// SyscallNumber reads a7, the riscv64 syscall-number register.
func (r *riscv64Registers) SyscallNumber() uint64 { return r.regs.A7 }

// Result reads a0. As on arm64, the kernel overwrites a0 with the return
// value by the syscall-exit stop.
func (r *riscv64Registers) Result() uint64 { return r.regs.A0 }

// Arg returns the i'th syscall argument slot: a0..a5, per the riscv64 ABI
// syscall calling convention.
func (r *riscv64Registers) Arg(i int) uint64 {
	switch i {
	case 0:
		return r.regs.A0
	case 1:
		return r.regs.A1
	case 2:
		return r.regs.A2
	case 3:
		return r.regs.A3
	case 4:
		return r.regs.A4
	case 5:
		return r.regs.A5
	default:
		panic(fmt.Sprintf("arch: arg index %d out of range", i))
	}
}

func capture(pid int) (Registers, error) {
	var r riscv64Registers
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
const Native = RiscV64
