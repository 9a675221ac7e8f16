package decode

import (
	"github.com/nestybox/go-syscall-inspect/arch"
	"github.com/nestybox/go-syscall-inspect/remote"
	"github.com/nestybox/go-syscall-inspect/remote/ktype"
	sysc "github.com/nestybox/go-syscall-inspect/syscall"
)

// --- mmap ---

type MmapRaw struct {
	Addr   uintptr
	Length uint64
	Prot   int32
	Flags  int32
	Fd     int32
	Offset int64
}

func (MmapRaw) SyscallName() string { return "mmap" }

type MmapEntry struct {
	raw                        MmapRaw
	Addr                       uintptr
	Length                     uint64
	Prot, Flags, Fd            int32
	Offset                     int64
}

func (MmapEntry) SyscallName() string { return "mmap" }
func (e MmapEntry) Raw() sysc.RawArgs { return e.raw }

func init() {
	register("mmap", sysc.Memory|sysc.Desc,
		map[arch.ID]uint64{arch.X86_64: 9, arch.Arm64: 222, arch.RiscV64: 222},
		func(pid int, regs arch.Registers) sysc.RawArgs {
			return MmapRaw{
				Addr: uintptr(argAt(regs, 0)), Length: argAt(regs, 1), Prot: int32(argAt(regs, 2)),
				Flags: int32(argAt(regs, 3)), Fd: int32(argAt(regs, 4)), Offset: int64(argAt(regs, 5)),
			}
		},
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(MmapRaw)
			return MmapEntry{raw: raw, Addr: raw.Addr, Length: raw.Length, Prot: raw.Prot, Flags: raw.Flags, Fd: raw.Fd, Offset: raw.Offset}
		}, simpleExit[int64]("mmap"))
}

// --- munmap ---

type MunmapRaw struct {
	Addr   uintptr
	Length uint64
}

func (MunmapRaw) SyscallName() string { return "munmap" }

type MunmapEntry struct {
	raw    MunmapRaw
	Addr   uintptr
	Length uint64
}

func (MunmapEntry) SyscallName() string { return "munmap" }
func (e MunmapEntry) Raw() sysc.RawArgs { return e.raw }

func init() {
	register("munmap", sysc.Memory,
		map[arch.ID]uint64{arch.X86_64: 11, arch.Arm64: 215, arch.RiscV64: 215},
		func(pid int, regs arch.Registers) sysc.RawArgs {
			return MunmapRaw{Addr: uintptr(argAt(regs, 0)), Length: argAt(regs, 1)}
		},
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(MunmapRaw)
			return MunmapEntry{raw: raw, Addr: raw.Addr, Length: raw.Length}
		}, simpleExit[int32]("munmap"))
}

// --- mprotect ---

type MprotectRaw struct {
	Addr   uintptr
	Length uint64
	Prot   int32
}

func (MprotectRaw) SyscallName() string { return "mprotect" }

type MprotectEntry struct {
	raw    MprotectRaw
	Addr   uintptr
	Length uint64
	Prot   int32
}

func (MprotectEntry) SyscallName() string { return "mprotect" }
func (e MprotectEntry) Raw() sysc.RawArgs { return e.raw }

func init() {
	register("mprotect", sysc.Memory,
		map[arch.ID]uint64{arch.X86_64: 10, arch.Arm64: 226, arch.RiscV64: 226},
		func(pid int, regs arch.Registers) sysc.RawArgs {
			return MprotectRaw{Addr: uintptr(argAt(regs, 0)), Length: argAt(regs, 1), Prot: int32(argAt(regs, 2))}
		},
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(MprotectRaw)
			return MprotectEntry{raw: raw, Addr: raw.Addr, Length: raw.Length, Prot: raw.Prot}
		}, simpleExit[int32]("mprotect"))
}

// --- brk ---

type BrkRaw struct{ Addr uintptr }

func (BrkRaw) SyscallName() string { return "brk" }

type BrkEntry struct {
	raw  BrkRaw
	Addr uintptr
}

func (BrkEntry) SyscallName() string { return "brk" }
func (e BrkEntry) Raw() sysc.RawArgs { return e.raw }

func init() {
	register("brk", sysc.Memory,
		map[arch.ID]uint64{arch.X86_64: 12, arch.Arm64: 214, arch.RiscV64: 214},
		func(pid int, regs arch.Registers) sysc.RawArgs { return BrkRaw{Addr: uintptr(argAt(regs, 0))} },
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(BrkRaw)
			return BrkEntry{raw: raw, Addr: raw.Addr}
		}, simpleExit[int64]("brk"))
}

// --- getrandom ---

type GetrandomRaw struct {
	Buf    uintptr
	Buflen uint64
	Flags  uint32
}

func (GetrandomRaw) SyscallName() string { return "getrandom" }

type GetrandomEntry struct {
	raw          GetrandomRaw
	Buflen       uint64
	Flags        uint32
}

func (GetrandomEntry) SyscallName() string { return "getrandom" }
func (e GetrandomEntry) Raw() sysc.RawArgs { return e.raw }

type GetrandomExit struct {
	SyscallResult int64
	Buf           remote.Outcome[[]byte]
}

func (GetrandomExit) SyscallName() string { return "getrandom" }

func init() {
	register("getrandom", sysc.Memory,
		map[arch.ID]uint64{arch.X86_64: 318, arch.Arm64: 278, arch.RiscV64: 278},
		func(pid int, regs arch.Registers) sysc.RawArgs {
			return GetrandomRaw{Buf: uintptr(argAt(regs, 0)), Buflen: argAt(regs, 1), Flags: uint32(argAt(regs, 2))}
		},
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(GetrandomRaw)
			return GetrandomEntry{raw: raw, Buflen: raw.Buflen, Flags: raw.Flags}
		},
		func(pid int, r sysc.RawArgs, exit arch.Registers) sysc.ExitArgs {
			raw := r.(GetrandomRaw)
			result := int64(exit.Result())
			if result < 0 {
				return GetrandomExit{SyscallResult: result}
			}
			return GetrandomExit{SyscallResult: result, Buf: remote.ReadCounted[byte](pid, raw.Buf, int(result))}
		})
}

// --- rseq ---

type RseqRaw struct {
	Rseq    uintptr
	RseqLen uint32
	Flags   int32
	Sig     uint32
}

func (RseqRaw) SyscallName() string { return "rseq" }

type RseqEntry struct {
	raw   RseqRaw
	Rseq  remote.Outcome[*ktype.Rseq]
	Flags int32
	Sig   uint32
}

func (RseqEntry) SyscallName() string { return "rseq" }
func (e RseqEntry) Raw() sysc.RawArgs { return e.raw }

func init() {
	register("rseq", sysc.Memory,
		map[arch.ID]uint64{arch.X86_64: 334, arch.Arm64: 293, arch.RiscV64: 293},
		func(pid int, regs arch.Registers) sysc.RawArgs {
			return RseqRaw{Rseq: uintptr(argAt(regs, 0)), RseqLen: uint32(argAt(regs, 1)), Flags: int32(argAt(regs, 2)), Sig: uint32(argAt(regs, 3))}
		},
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(RseqRaw)
			return RseqEntry{
				raw:   raw,
				Rseq:  remote.ReadVariableSized[ktype.Rseq](pid, raw.Rseq, int(raw.RseqLen)),
				Flags: raw.Flags, Sig: raw.Sig,
			}
		}, simpleExit[int32]("rseq"))
}
