package decode

import (
	"github.com/nestybox/go-syscall-inspect/arch"
	"github.com/nestybox/go-syscall-inspect/remote"
	"github.com/nestybox/go-syscall-inspect/remote/ktype"
	sysc "github.com/nestybox/go-syscall-inspect/syscall"
)

// --- clock_gettime ---

type ClockGettimeRaw struct {
	Clockid int32
	Tp      uintptr
}

func (ClockGettimeRaw) SyscallName() string { return "clock_gettime" }

type ClockGettimeEntry struct {
	raw     ClockGettimeRaw
	Clockid int32
}

func (ClockGettimeEntry) SyscallName() string { return "clock_gettime" }
func (e ClockGettimeEntry) Raw() sysc.RawArgs { return e.raw }

type ClockGettimeExit struct {
	SyscallResult int32
	Tp            remote.Outcome[ktype.Timespec]
}

func (ClockGettimeExit) SyscallName() string { return "clock_gettime" }

func init() {
	register("clock_gettime", sysc.Clock,
		map[arch.ID]uint64{arch.X86_64: 228, arch.Arm64: 113, arch.RiscV64: 113},
		func(pid int, regs arch.Registers) sysc.RawArgs {
			return ClockGettimeRaw{Clockid: int32(argAt(regs, 0)), Tp: uintptr(argAt(regs, 1))}
		},
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(ClockGettimeRaw)
			return ClockGettimeEntry{raw: raw, Clockid: raw.Clockid}
		},
		func(pid int, r sysc.RawArgs, exit arch.Registers) sysc.ExitArgs {
			raw := r.(ClockGettimeRaw)
			result := int64(exit.Result())
			if result < 0 {
				return ClockGettimeExit{SyscallResult: int32(result)}
			}
			return ClockGettimeExit{SyscallResult: int32(result), Tp: remote.ReadFixed[ktype.Timespec](pid, raw.Tp)}
		})
}

// --- nanosleep ---

type NanosleepRaw struct {
	Req uintptr
	Rem uintptr
}

func (NanosleepRaw) SyscallName() string { return "nanosleep" }

type NanosleepEntry struct {
	raw NanosleepRaw
	Req remote.Outcome[ktype.Timespec]
}

func (NanosleepEntry) SyscallName() string { return "nanosleep" }
func (e NanosleepEntry) Raw() sysc.RawArgs { return e.raw }

type NanosleepExit struct {
	SyscallResult int32
	Rem           remote.Outcome[ktype.Timespec]
}

func (NanosleepExit) SyscallName() string { return "nanosleep" }

func init() {
	register("nanosleep", sysc.Clock,
		map[arch.ID]uint64{arch.X86_64: 35},
		func(pid int, regs arch.Registers) sysc.RawArgs {
			return NanosleepRaw{Req: uintptr(argAt(regs, 0)), Rem: uintptr(argAt(regs, 1))}
		},
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(NanosleepRaw)
			return NanosleepEntry{raw: raw, Req: remote.ReadFixed[ktype.Timespec](pid, raw.Req)}
		},
		func(pid int, r sysc.RawArgs, exit arch.Registers) sysc.ExitArgs {
			raw := r.(NanosleepRaw)
			result := int64(exit.Result())
			if result < 0 || raw.Rem == 0 {
				return NanosleepExit{SyscallResult: int32(result)}
			}
			return NanosleepExit{SyscallResult: int32(result), Rem: remote.ReadFixed[ktype.Timespec](pid, raw.Rem)}
		})
}

// --- clock_nanosleep ---

type ClockNanosleepRaw struct {
	Clockid int32
	Flags   int32
	Request uintptr
	Remain  uintptr
}

func (ClockNanosleepRaw) SyscallName() string { return "clock_nanosleep" }

type ClockNanosleepEntry struct {
	raw             ClockNanosleepRaw
	Clockid, Flags  int32
	Request         remote.Outcome[ktype.Timespec]
}

func (ClockNanosleepEntry) SyscallName() string { return "clock_nanosleep" }
func (e ClockNanosleepEntry) Raw() sysc.RawArgs { return e.raw }

type ClockNanosleepExit struct {
	SyscallResult int32
	Remain        remote.Outcome[ktype.Timespec]
}

func (ClockNanosleepExit) SyscallName() string { return "clock_nanosleep" }

func init() {
	register("clock_nanosleep", sysc.Clock,
		map[arch.ID]uint64{arch.X86_64: 230, arch.Arm64: 115, arch.RiscV64: 115},
		func(pid int, regs arch.Registers) sysc.RawArgs {
			return ClockNanosleepRaw{Clockid: int32(argAt(regs, 0)), Flags: int32(argAt(regs, 1)), Request: uintptr(argAt(regs, 2)), Remain: uintptr(argAt(regs, 3))}
		},
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(ClockNanosleepRaw)
			return ClockNanosleepEntry{raw: raw, Clockid: raw.Clockid, Flags: raw.Flags, Request: remote.ReadFixed[ktype.Timespec](pid, raw.Request)}
		},
		func(pid int, r sysc.RawArgs, exit arch.Registers) sysc.ExitArgs {
			raw := r.(ClockNanosleepRaw)
			result := int64(exit.Result())
			if result < 0 || raw.Remain == 0 {
				return ClockNanosleepExit{SyscallResult: int32(result)}
			}
			return ClockNanosleepExit{SyscallResult: int32(result), Remain: remote.ReadFixed[ktype.Timespec](pid, raw.Remain)}
		})
}
