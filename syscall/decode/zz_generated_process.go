package decode

import (
	"github.com/nestybox/go-syscall-inspect/arch"
	"github.com/nestybox/go-syscall-inspect/remote"
	"github.com/nestybox/go-syscall-inspect/remote/ktype"
	sysc "github.com/nestybox/go-syscall-inspect/syscall"
)

// --- execve ---

type ExecveRaw struct {
	Pathname uintptr
	Argv     uintptr
	Envp     uintptr
}

func (ExecveRaw) SyscallName() string { return "execve" }

type ExecveEntry struct {
	raw      ExecveRaw
	Pathname remote.Outcome[string]
	Argv     remote.Outcome[[]string]
	Envp     remote.Outcome[[]string]
}

func (ExecveEntry) SyscallName() string { return "execve" }
func (e ExecveEntry) Raw() sysc.RawArgs { return e.raw }

func init() {
	register("execve", sysc.File|sysc.Process,
		map[arch.ID]uint64{arch.X86_64: 59, arch.Arm64: 221, arch.RiscV64: 221},
		func(pid int, regs arch.Registers) sysc.RawArgs {
			return ExecveRaw{Pathname: uintptr(argAt(regs, 0)), Argv: uintptr(argAt(regs, 1)), Envp: uintptr(argAt(regs, 2))}
		},
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(ExecveRaw)
			return ExecveEntry{
				raw:      raw,
				Pathname: remote.ReadPath(pid, raw.Pathname),
				Argv:     remote.ReadNullTerminatedPtrArray(pid, raw.Argv),
				Envp:     remote.ReadNullTerminatedPtrArray(pid, raw.Envp),
			}
		}, simpleExit[int32]("execve"))
}

// --- execveat ---

type ExecveatRaw struct {
	Dirfd    int32
	Pathname uintptr
	Argv     uintptr
	Envp     uintptr
	Flags    int32
}

func (ExecveatRaw) SyscallName() string { return "execveat" }

type ExecveatEntry struct {
	raw      ExecveatRaw
	Dirfd    int32
	Pathname remote.Outcome[string]
	Argv     remote.Outcome[[]string]
	Envp     remote.Outcome[[]string]
	Flags    int32
}

func (ExecveatEntry) SyscallName() string { return "execveat" }
func (e ExecveatEntry) Raw() sysc.RawArgs { return e.raw }

func init() {
	register("execveat", sysc.Desc|sysc.File|sysc.Process,
		map[arch.ID]uint64{arch.X86_64: 322, arch.Arm64: 281, arch.RiscV64: 281},
		func(pid int, regs arch.Registers) sysc.RawArgs {
			return ExecveatRaw{
				Dirfd: int32(argAt(regs, 0)), Pathname: uintptr(argAt(regs, 1)),
				Argv: uintptr(argAt(regs, 2)), Envp: uintptr(argAt(regs, 3)), Flags: int32(argAt(regs, 4)),
			}
		},
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(ExecveatRaw)
			return ExecveatEntry{
				raw: raw, Dirfd: raw.Dirfd, Pathname: remote.ReadPath(pid, raw.Pathname),
				Argv: remote.ReadNullTerminatedPtrArray(pid, raw.Argv),
				Envp: remote.ReadNullTerminatedPtrArray(pid, raw.Envp),
				Flags: raw.Flags,
			}
		}, simpleExit[int32]("execveat"))
}

// --- clone, x86_64 argument order: flags, stack, parent_tid, child_tid, tls ---

type CloneRawAmd64 struct {
	Flags     uint64
	Stack     uintptr
	ParentTid uintptr
	ChildTid  uintptr
	Tls       uintptr
}

func (CloneRawAmd64) SyscallName() string { return "clone" }

type CloneEntryAmd64 struct {
	raw CloneRawAmd64
}

func (CloneEntryAmd64) SyscallName() string { return "clone" }
func (e CloneEntryAmd64) Raw() sysc.RawArgs { return e.raw }
func (e CloneEntryAmd64) Flags() uint64     { return e.raw.Flags }

// --- clone, arm64/riscv64 argument order: flags, stack, parent_tid, tls, child_tid ---

type CloneRawArm64 struct {
	Flags     uint64
	Stack     uintptr
	ParentTid uintptr
	Tls       uintptr
	ChildTid  uintptr
}

func (CloneRawArm64) SyscallName() string { return "clone" }

type CloneEntryArm64 struct {
	raw CloneRawArm64
}

func (CloneEntryArm64) SyscallName() string { return "clone" }
func (e CloneEntryArm64) Raw() sysc.RawArgs { return e.raw }
func (e CloneEntryArm64) Flags() uint64     { return e.raw.Flags }

// clone is one syscall name dispatched through a single registration that
// switches on the captured architecture: amd64's arg order is (flags,
// stack, parent_tid, child_tid, tls), arm64 and riscv64 swap the last two.
// Two separate register("clone", ...) calls would collide in the byName
// index (only the last one would stick), so the raw and entry decoders
// branch internally instead of splitting into two registrations.
func init() {
	register("clone", sysc.Process,
		map[arch.ID]uint64{arch.X86_64: 56, arch.Arm64: 220, arch.RiscV64: 220},
		func(pid int, regs arch.Registers) sysc.RawArgs {
			if regs.Arch() == arch.X86_64 {
				return CloneRawAmd64{
					Flags: argAt(regs, 0), Stack: uintptr(argAt(regs, 1)),
					ParentTid: uintptr(argAt(regs, 2)), ChildTid: uintptr(argAt(regs, 3)), Tls: uintptr(argAt(regs, 4)),
				}
			}
			return CloneRawArm64{
				Flags: argAt(regs, 0), Stack: uintptr(argAt(regs, 1)),
				ParentTid: uintptr(argAt(regs, 2)), Tls: uintptr(argAt(regs, 3)), ChildTid: uintptr(argAt(regs, 4)),
			}
		},
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			switch raw := r.(type) {
			case CloneRawAmd64:
				return CloneEntryAmd64{raw: raw}
			case CloneRawArm64:
				return CloneEntryArm64{raw: raw}
			default:
				panic("decode: clone raw type not recognized")
			}
		}, simpleExit[int32]("clone"))
}

// --- clone3 ---

type Clone3Raw struct {
	ClArgs uintptr
	Size   uint64
}

func (Clone3Raw) SyscallName() string { return "clone3" }

type Clone3Entry struct {
	raw    Clone3Raw
	ClArgs remote.Outcome[ktype.CloneArgs]
}

func (Clone3Entry) SyscallName() string { return "clone3" }
func (e Clone3Entry) Raw() sysc.RawArgs { return e.raw }

func init() {
	register("clone3", sysc.Process,
		map[arch.ID]uint64{arch.X86_64: 435, arch.Arm64: 435, arch.RiscV64: 435},
		func(pid int, regs arch.Registers) sysc.RawArgs {
			return Clone3Raw{ClArgs: uintptr(argAt(regs, 0)), Size: argAt(regs, 1)}
		},
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(Clone3Raw)
			return Clone3Entry{raw: raw, ClArgs: remote.ReadFixed[ktype.CloneArgs](pid, raw.ClArgs)}
		}, simpleExit[int32]("clone3"))
}

// --- fork / vfork: no arguments ---

type ForkRaw struct{}

func (ForkRaw) SyscallName() string { return "fork" }

type ForkEntry struct{ raw ForkRaw }

func (ForkEntry) SyscallName() string { return "fork" }
func (e ForkEntry) Raw() sysc.RawArgs { return e.raw }

func init() {
	register("fork", sysc.Process, map[arch.ID]uint64{arch.X86_64: 57},
		func(pid int, regs arch.Registers) sysc.RawArgs { return ForkRaw{} },
		func(pid int, r sysc.RawArgs) sysc.EntryArgs { return ForkEntry{raw: r.(ForkRaw)} }, simpleExit[int32]("fork"))
}

type VforkRaw struct{}

func (VforkRaw) SyscallName() string { return "vfork" }

type VforkEntry struct{ raw VforkRaw }

func (VforkEntry) SyscallName() string { return "vfork" }
func (e VforkEntry) Raw() sysc.RawArgs { return e.raw }

func init() {
	register("vfork", sysc.Process, map[arch.ID]uint64{arch.X86_64: 58},
		func(pid int, regs arch.Registers) sysc.RawArgs { return VforkRaw{} },
		func(pid int, r sysc.RawArgs) sysc.EntryArgs { return VforkEntry{raw: r.(VforkRaw)} }, simpleExit[int32]("vfork"))
}

// --- wait4 ---

type Wait4Raw struct {
	Pid     int32
	Wstatus uintptr
	Options int32
	Rusage  uintptr
}

func (Wait4Raw) SyscallName() string { return "wait4" }

type Wait4Entry struct {
	raw             Wait4Raw
	Pid, Options    int32
}

func (Wait4Entry) SyscallName() string { return "wait4" }
func (e Wait4Entry) Raw() sysc.RawArgs { return e.raw }

type Wait4Exit struct {
	SyscallResult int32
	Wstatus       remote.Outcome[int32]
	Rusage        remote.Outcome[ktype.Rusage]
}

func (Wait4Exit) SyscallName() string { return "wait4" }

func init() {
	register("wait4", sysc.Process,
		map[arch.ID]uint64{arch.X86_64: 61, arch.Arm64: 260, arch.RiscV64: 260},
		func(pid int, regs arch.Registers) sysc.RawArgs {
			return Wait4Raw{Pid: int32(argAt(regs, 0)), Wstatus: uintptr(argAt(regs, 1)), Options: int32(argAt(regs, 2)), Rusage: uintptr(argAt(regs, 3))}
		},
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(Wait4Raw)
			return Wait4Entry{raw: raw, Pid: raw.Pid, Options: raw.Options}
		},
		func(pid int, r sysc.RawArgs, exit arch.Registers) sysc.ExitArgs {
			raw := r.(Wait4Raw)
			result := int64(exit.Result())
			if result < 0 {
				return Wait4Exit{SyscallResult: int32(result)}
			}
			out := Wait4Exit{SyscallResult: int32(result), Wstatus: remote.ReadFixed[int32](pid, raw.Wstatus)}
			if raw.Rusage != 0 {
				out.Rusage = remote.ReadFixed[ktype.Rusage](pid, raw.Rusage)
			}
			return out
		})
}

// --- exit / exit_group: never return, so Result is Unit and no exit decode runs ---

type ExitRaw struct{ Status int32 }

func (ExitRaw) SyscallName() string { return "exit" }

type ExitEntry struct {
	raw    ExitRaw
	Status int32
}

func (ExitEntry) SyscallName() string { return "exit" }
func (e ExitEntry) Raw() sysc.RawArgs { return e.raw }

func init() {
	register("exit", sysc.Process,
		map[arch.ID]uint64{arch.X86_64: 60, arch.Arm64: 93, arch.RiscV64: 93},
		func(pid int, regs arch.Registers) sysc.RawArgs { return ExitRaw{Status: int32(argAt(regs, 0))} },
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(ExitRaw)
			return ExitEntry{raw: raw, Status: raw.Status}
		}, nil)
}

type ExitGroupRaw struct{ Status int32 }

func (ExitGroupRaw) SyscallName() string { return "exit_group" }

type ExitGroupEntry struct {
	raw    ExitGroupRaw
	Status int32
}

func (ExitGroupEntry) SyscallName() string { return "exit_group" }
func (e ExitGroupEntry) Raw() sysc.RawArgs { return e.raw }

func init() {
	register("exit_group", sysc.Process,
		map[arch.ID]uint64{arch.X86_64: 231, arch.Arm64: 94, arch.RiscV64: 94},
		func(pid int, regs arch.Registers) sysc.RawArgs { return ExitGroupRaw{Status: int32(argAt(regs, 0))} },
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(ExitGroupRaw)
			return ExitGroupEntry{raw: raw, Status: raw.Status}
		}, nil)
}

// --- kill / tgkill ---

type KillRaw struct {
	Pid int32
	Sig int32
}

func (KillRaw) SyscallName() string { return "kill" }

type KillEntry struct {
	raw      KillRaw
	Pid, Sig int32
}

func (KillEntry) SyscallName() string { return "kill" }
func (e KillEntry) Raw() sysc.RawArgs { return e.raw }

func init() {
	register("kill", sysc.Process|sysc.Signal,
		map[arch.ID]uint64{arch.X86_64: 62, arch.Arm64: 129, arch.RiscV64: 129},
		func(pid int, regs arch.Registers) sysc.RawArgs {
			return KillRaw{Pid: int32(argAt(regs, 0)), Sig: int32(argAt(regs, 1))}
		},
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(KillRaw)
			return KillEntry{raw: raw, Pid: raw.Pid, Sig: raw.Sig}
		}, simpleExit[int32]("kill"))
}

type TgkillRaw struct {
	Tgid int32
	Tid  int32
	Sig  int32
}

func (TgkillRaw) SyscallName() string { return "tgkill" }

type TgkillEntry struct {
	raw                TgkillRaw
	Tgid, Tid, Sig     int32
}

func (TgkillEntry) SyscallName() string { return "tgkill" }
func (e TgkillEntry) Raw() sysc.RawArgs { return e.raw }

func init() {
	register("tgkill", sysc.Process|sysc.Signal,
		map[arch.ID]uint64{arch.X86_64: 234, arch.Arm64: 131, arch.RiscV64: 131},
		func(pid int, regs arch.Registers) sysc.RawArgs {
			return TgkillRaw{Tgid: int32(argAt(regs, 0)), Tid: int32(argAt(regs, 1)), Sig: int32(argAt(regs, 2))}
		},
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(TgkillRaw)
			return TgkillEntry{raw: raw, Tgid: raw.Tgid, Tid: raw.Tid, Sig: raw.Sig}
		}, simpleExit[int32]("tgkill"))
}

// --- ptrace ---

type PtraceRaw struct {
	Request int64
	Pid     int32
	Addr    uintptr
	Data    uintptr
}

func (PtraceRaw) SyscallName() string { return "ptrace" }

type PtraceEntry struct {
	raw           PtraceRaw
	Request       int64
	Pid           int32
	Addr, Data    uintptr // reported opaque: request-dependent layout
}

func (PtraceEntry) SyscallName() string { return "ptrace" }
func (e PtraceEntry) Raw() sysc.RawArgs { return e.raw }

func init() {
	register("ptrace", sysc.Process,
		map[arch.ID]uint64{arch.X86_64: 101, arch.Arm64: 117, arch.RiscV64: 117},
		func(pid int, regs arch.Registers) sysc.RawArgs {
			return PtraceRaw{Request: int64(argAt(regs, 0)), Pid: int32(argAt(regs, 1)), Addr: uintptr(argAt(regs, 2)), Data: uintptr(argAt(regs, 3))}
		},
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(PtraceRaw)
			return PtraceEntry{raw: raw, Request: raw.Request, Pid: raw.Pid, Addr: raw.Addr, Data: raw.Data}
		}, simpleExit[int64]("ptrace"))
}

// --- prctl ---

type PrctlRaw struct {
	Option                   int32
	Arg2, Arg3, Arg4, Arg5   uint64
}

func (PrctlRaw) SyscallName() string { return "prctl" }

type PrctlEntry struct {
	raw                    PrctlRaw
	Option                 int32
	Arg2, Arg3, Arg4, Arg5 uint64
}

func (PrctlEntry) SyscallName() string { return "prctl" }
func (e PrctlEntry) Raw() sysc.RawArgs { return e.raw }

func init() {
	register("prctl", sysc.Process,
		map[arch.ID]uint64{arch.X86_64: 157, arch.Arm64: 167, arch.RiscV64: 167},
		func(pid int, regs arch.Registers) sysc.RawArgs {
			return PrctlRaw{Option: int32(argAt(regs, 0)), Arg2: argAt(regs, 1), Arg3: argAt(regs, 2), Arg4: argAt(regs, 3), Arg5: argAt(regs, 4)}
		},
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(PrctlRaw)
			return PrctlEntry{raw: raw, Option: raw.Option, Arg2: raw.Arg2, Arg3: raw.Arg3, Arg4: raw.Arg4, Arg5: raw.Arg5}
		}, simpleExit[int32]("prctl"))
}

// --- futex ---

type FutexRaw struct {
	Uaddr   uintptr
	Op      int32
	Val     uint32
	Timeout uintptr
	Uaddr2  uintptr
	Val3    uint32
}

func (FutexRaw) SyscallName() string { return "futex" }

type FutexEntry struct {
	raw        FutexRaw
	Uaddr      uintptr
	Op         int32
	Val        uint32
	Timeout    remote.Outcome[ktype.Timespec]
}

func (FutexEntry) SyscallName() string { return "futex" }
func (e FutexEntry) Raw() sysc.RawArgs { return e.raw }

func init() {
	register("futex", sysc.Process,
		map[arch.ID]uint64{arch.X86_64: 202, arch.Arm64: 98, arch.RiscV64: 98},
		func(pid int, regs arch.Registers) sysc.RawArgs {
			return FutexRaw{
				Uaddr: uintptr(argAt(regs, 0)), Op: int32(argAt(regs, 1)), Val: uint32(argAt(regs, 2)),
				Timeout: uintptr(argAt(regs, 3)), Uaddr2: uintptr(argAt(regs, 4)), Val3: uint32(argAt(regs, 5)),
			}
		},
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(FutexRaw)
			e := FutexEntry{raw: raw, Uaddr: raw.Uaddr, Op: raw.Op, Val: raw.Val}
			if raw.Timeout != 0 {
				e.Timeout = remote.ReadFixed[ktype.Timespec](pid, raw.Timeout)
			}
			return e
		}, simpleExit[int32]("futex"))
}
