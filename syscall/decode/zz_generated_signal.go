package decode

import (
	"github.com/nestybox/go-syscall-inspect/arch"
	"github.com/nestybox/go-syscall-inspect/remote"
	"github.com/nestybox/go-syscall-inspect/remote/ktype"
	sysc "github.com/nestybox/go-syscall-inspect/syscall"
)

// --- rt_sigaction ---

type RtSigactionRaw struct {
	Signum     int32
	Act        uintptr
	Oldact     uintptr
	Sigsetsize uint64
}

func (RtSigactionRaw) SyscallName() string { return "rt_sigaction" }

type RtSigactionEntry struct {
	raw    RtSigactionRaw
	Signum int32
	Act    remote.Outcome[ktype.Sigaction]
}

func (RtSigactionEntry) SyscallName() string { return "rt_sigaction" }
func (e RtSigactionEntry) Raw() sysc.RawArgs { return e.raw }

type RtSigactionExit struct {
	SyscallResult int32
	Oldact        remote.Outcome[ktype.Sigaction]
}

func (RtSigactionExit) SyscallName() string { return "rt_sigaction" }

func init() {
	register("rt_sigaction", sysc.Signal,
		map[arch.ID]uint64{arch.X86_64: 13, arch.Arm64: 134, arch.RiscV64: 134},
		func(pid int, regs arch.Registers) sysc.RawArgs {
			return RtSigactionRaw{Signum: int32(argAt(regs, 0)), Act: uintptr(argAt(regs, 1)), Oldact: uintptr(argAt(regs, 2)), Sigsetsize: argAt(regs, 3)}
		},
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(RtSigactionRaw)
			e := RtSigactionEntry{raw: raw, Signum: raw.Signum}
			if raw.Act != 0 {
				e.Act = remote.ReadFixed[ktype.Sigaction](pid, raw.Act)
			}
			return e
		},
		func(pid int, r sysc.RawArgs, exit arch.Registers) sysc.ExitArgs {
			raw := r.(RtSigactionRaw)
			result := int64(exit.Result())
			if result < 0 || raw.Oldact == 0 {
				return RtSigactionExit{SyscallResult: int32(result)}
			}
			return RtSigactionExit{SyscallResult: int32(result), Oldact: remote.ReadFixed[ktype.Sigaction](pid, raw.Oldact)}
		})
}

// --- rt_sigprocmask ---

type RtSigprocmaskRaw struct {
	How        int32
	Set        uintptr
	Oldset     uintptr
	Sigsetsize uint64
}

func (RtSigprocmaskRaw) SyscallName() string { return "rt_sigprocmask" }

type RtSigprocmaskEntry struct {
	raw RtSigprocmaskRaw
	How int32
	Set remote.Outcome[[]byte]
}

func (RtSigprocmaskEntry) SyscallName() string { return "rt_sigprocmask" }
func (e RtSigprocmaskEntry) Raw() sysc.RawArgs { return e.raw }

type RtSigprocmaskExit struct {
	SyscallResult int32
	Oldset        remote.Outcome[[]byte]
}

func (RtSigprocmaskExit) SyscallName() string { return "rt_sigprocmask" }

func init() {
	register("rt_sigprocmask", sysc.Signal,
		map[arch.ID]uint64{arch.X86_64: 14, arch.Arm64: 135, arch.RiscV64: 135},
		func(pid int, regs arch.Registers) sysc.RawArgs {
			return RtSigprocmaskRaw{How: int32(argAt(regs, 0)), Set: uintptr(argAt(regs, 1)), Oldset: uintptr(argAt(regs, 2)), Sigsetsize: argAt(regs, 3)}
		},
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(RtSigprocmaskRaw)
			e := RtSigprocmaskEntry{raw: raw, How: raw.How}
			if raw.Set != 0 {
				e.Set = remote.ReadCounted[byte](pid, raw.Set, int(raw.Sigsetsize))
			}
			return e
		},
		func(pid int, r sysc.RawArgs, exit arch.Registers) sysc.ExitArgs {
			raw := r.(RtSigprocmaskRaw)
			result := int64(exit.Result())
			if result < 0 || raw.Oldset == 0 {
				return RtSigprocmaskExit{SyscallResult: int32(result)}
			}
			return RtSigprocmaskExit{SyscallResult: int32(result), Oldset: remote.ReadCounted[byte](pid, raw.Oldset, int(raw.Sigsetsize))}
		})
}

// --- rt_sigreturn: no arguments, architecture-specific trampoline-only syscall ---

type RtSigreturnRaw struct{}

func (RtSigreturnRaw) SyscallName() string { return "rt_sigreturn" }

type RtSigreturnEntry struct{ raw RtSigreturnRaw }

func (RtSigreturnEntry) SyscallName() string { return "rt_sigreturn" }
func (e RtSigreturnEntry) Raw() sysc.RawArgs { return e.raw }

func init() {
	register("rt_sigreturn", sysc.Signal,
		map[arch.ID]uint64{arch.X86_64: 15, arch.Arm64: 139, arch.RiscV64: 139},
		func(pid int, regs arch.Registers) sysc.RawArgs { return RtSigreturnRaw{} },
		func(pid int, r sysc.RawArgs) sysc.EntryArgs { return RtSigreturnEntry{raw: r.(RtSigreturnRaw)} },
		simpleExit[int64]("rt_sigreturn"))
}
