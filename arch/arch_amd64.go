package arch

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// x86_64Registers wraps unix.PtraceRegs as captured via the direct
// PTRACE_GETREGS request. arm64 and riscv64 have no such request and use
// PTRACE_GETREGSET instead, checking the returned length (see their
// capture() functions); amd64 does not go through GETREGSET at all.
type x86_64Registers struct {
	regs unix.PtraceRegs
}

func (r *x86_64Registers) Arch() ID { return X86_64 }

func (r *x86_64Registers) SyscallNumber() uint64 { return r.regs.Orig_rax }

func (r *x86_64Registers) Result() uint64 { return r.regs.Rax }

// Arg returns the i'th syscall argument slot, following the x86_64 System V
// syscall calling convention: rdi, rsi, rdx, r10, r8, r9 (note r10 takes the
// place rcx has in the ordinary C calling convention, since the syscall
// instruction clobbers rcx).
func (r *x86_64Registers) Arg(i int) uint64 {
	switch i {
	case 0:
		return r.regs.Rdi
	case 1:
		return r.regs.Rsi
	case 2:
		return r.regs.Rdx
	case 3:
		return r.regs.R10
	case 4:
		return r.regs.R8
	case 5:
		return r.regs.R9
	default:
		panic(fmt.Sprintf("arch: arg index %d out of range", i))
	}
}

func capture(pid int) (Registers, error) {
	var r x86_64Registers
	if err := unix.PtraceGetRegs(pid, &r.regs); err != nil {
		return nil, &CaptureError{Pid: pid, Op: "PTRACE_GETREGS", Err: err}
	}
	return &r, nil
}

// Native is the ID of the architecture this binary was built for.
const Native = X86_64
