package decode

import (
	"github.com/nestybox/go-syscall-inspect/arch"
	"github.com/nestybox/go-syscall-inspect/remote"
	"github.com/nestybox/go-syscall-inspect/remote/ktype"
	sysc "github.com/nestybox/go-syscall-inspect/syscall"
)

// noArgsEntry is shared by the several pure/creds syscalls the table gives
// no arguments to decode: getpid, gettid, getuid, geteuid, getgid, getegid.
type noArgsEntry struct {
	name string
	raw  sysc.RawArgs
}

func (e noArgsEntry) SyscallName() string { return e.name }
func (e noArgsEntry) Raw() sysc.RawArgs   { return e.raw }

// registerNoArgs registers a syscall whose table row takes no arguments at
// all. T is the syscall's result type: getpid/gettid return a plain int32
// pid, while getuid/geteuid/getgid/getegid return uint32, so the two
// families can't share one exit decoder despite sharing everything else.
func registerNoArgs[T resultType](name string, categories sysc.Category, numbers map[arch.ID]uint64) {
	register(name, categories, numbers,
		func(pid int, regs arch.Registers) sysc.RawArgs { return noArgsRaw{name} },
		func(pid int, r sysc.RawArgs) sysc.EntryArgs { return noArgsEntry{name: name, raw: r} },
		simpleExit[T](name))
}

type noArgsRaw struct{ name string }

func (r noArgsRaw) SyscallName() string { return r.name }

func init() {
	registerNoArgs[int32]("getpid", sysc.Pure|sysc.Process, map[arch.ID]uint64{arch.X86_64: 39, arch.Arm64: 172, arch.RiscV64: 172})
	registerNoArgs[int32]("gettid", sysc.Pure|sysc.Process, map[arch.ID]uint64{arch.X86_64: 186, arch.Arm64: 178, arch.RiscV64: 178})
	registerNoArgs[uint32]("getuid", sysc.Pure|sysc.Creds, map[arch.ID]uint64{arch.X86_64: 102, arch.Arm64: 174, arch.RiscV64: 174})
	registerNoArgs[uint32]("geteuid", sysc.Pure|sysc.Creds, map[arch.ID]uint64{arch.X86_64: 107, arch.Arm64: 175, arch.RiscV64: 175})
	registerNoArgs[uint32]("getgid", sysc.Pure|sysc.Creds, map[arch.ID]uint64{arch.X86_64: 104, arch.Arm64: 176, arch.RiscV64: 176})
	registerNoArgs[uint32]("getegid", sysc.Pure|sysc.Creds, map[arch.ID]uint64{arch.X86_64: 108, arch.Arm64: 177, arch.RiscV64: 177})
}

// --- uname ---

type UnameRaw struct{ Buf uintptr }

func (UnameRaw) SyscallName() string { return "uname" }

type UnameEntry struct{ raw UnameRaw }

func (UnameEntry) SyscallName() string { return "uname" }
func (e UnameEntry) Raw() sysc.RawArgs { return e.raw }

type UnameExit struct {
	SyscallResult int32
	Buf           remote.Outcome[ktype.Utsname]
}

func (UnameExit) SyscallName() string { return "uname" }

func init() {
	register("uname", sysc.Pure,
		map[arch.ID]uint64{arch.X86_64: 63, arch.Arm64: 160, arch.RiscV64: 160},
		func(pid int, regs arch.Registers) sysc.RawArgs { return UnameRaw{Buf: uintptr(argAt(regs, 0))} },
		func(pid int, r sysc.RawArgs) sysc.EntryArgs { return UnameEntry{raw: r.(UnameRaw)} },
		func(pid int, r sysc.RawArgs, exit arch.Registers) sysc.ExitArgs {
			raw := r.(UnameRaw)
			result := int64(exit.Result())
			if result < 0 {
				return UnameExit{SyscallResult: int32(result)}
			}
			return UnameExit{SyscallResult: int32(result), Buf: remote.ReadFixed[ktype.Utsname](pid, raw.Buf)}
		})
}

// --- capget / capset ---

type CapgetRaw struct {
	Hdrp  uintptr
	Datap uintptr
}

func (CapgetRaw) SyscallName() string { return "capget" }

type CapgetEntry struct {
	raw  CapgetRaw
	Hdrp remote.Outcome[ktype.CapUserHeader]
}

func (CapgetEntry) SyscallName() string { return "capget" }
func (e CapgetEntry) Raw() sysc.RawArgs { return e.raw }

type CapgetExit struct {
	SyscallResult int32
	Datap         remote.Outcome[ktype.CapUserData]
}

func (CapgetExit) SyscallName() string { return "capget" }

func init() {
	register("capget", sysc.Creds,
		map[arch.ID]uint64{arch.X86_64: 125, arch.Arm64: 90, arch.RiscV64: 90},
		func(pid int, regs arch.Registers) sysc.RawArgs {
			return CapgetRaw{Hdrp: uintptr(argAt(regs, 0)), Datap: uintptr(argAt(regs, 1))}
		},
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(CapgetRaw)
			return CapgetEntry{raw: raw, Hdrp: remote.ReadFixed[ktype.CapUserHeader](pid, raw.Hdrp)}
		},
		func(pid int, r sysc.RawArgs, exit arch.Registers) sysc.ExitArgs {
			raw := r.(CapgetRaw)
			result := int64(exit.Result())
			if result < 0 || raw.Datap == 0 {
				return CapgetExit{SyscallResult: int32(result)}
			}
			return CapgetExit{SyscallResult: int32(result), Datap: remote.ReadFixed[ktype.CapUserData](pid, raw.Datap)}
		})
}

type CapsetRaw struct {
	Hdrp  uintptr
	Datap uintptr
}

func (CapsetRaw) SyscallName() string { return "capset" }

type CapsetEntry struct {
	raw   CapsetRaw
	Hdrp  remote.Outcome[ktype.CapUserHeader]
	Datap remote.Outcome[ktype.CapUserData]
}

func (CapsetEntry) SyscallName() string { return "capset" }
func (e CapsetEntry) Raw() sysc.RawArgs { return e.raw }

func init() {
	register("capset", sysc.Creds,
		map[arch.ID]uint64{arch.X86_64: 126, arch.Arm64: 91, arch.RiscV64: 91},
		func(pid int, regs arch.Registers) sysc.RawArgs {
			return CapsetRaw{Hdrp: uintptr(argAt(regs, 0)), Datap: uintptr(argAt(regs, 1))}
		},
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(CapsetRaw)
			return CapsetEntry{
				raw: raw, Hdrp: remote.ReadFixed[ktype.CapUserHeader](pid, raw.Hdrp),
				Datap: remote.ReadFixed[ktype.CapUserData](pid, raw.Datap),
			}
		}, simpleExit[int32]("capset"))
}
