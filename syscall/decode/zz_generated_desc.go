package decode

import (
	"github.com/nestybox/go-syscall-inspect/arch"
	"github.com/nestybox/go-syscall-inspect/remote"
	sysc "github.com/nestybox/go-syscall-inspect/syscall"
)

// --- read ---

type ReadRaw struct {
	Fd    int32
	Buf   uintptr
	Count uint64
}

func (ReadRaw) SyscallName() string { return "read" }

type ReadEntry struct {
	raw   ReadRaw
	Fd    int32
	Count uint64
}

func (ReadEntry) SyscallName() string { return "read" }
func (e ReadEntry) Raw() sysc.RawArgs { return e.raw }

type ReadExit struct {
	SyscallResult int64
	Buf           remote.Outcome[[]byte]
}

func (ReadExit) SyscallName() string { return "read" }

func init() {
	register("read", sysc.Desc,
		map[arch.ID]uint64{arch.X86_64: 0, arch.Arm64: 63, arch.RiscV64: 63},
		func(pid int, regs arch.Registers) sysc.RawArgs {
			return ReadRaw{Fd: int32(argAt(regs, 0)), Buf: uintptr(argAt(regs, 1)), Count: argAt(regs, 2)}
		},
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(ReadRaw)
			return ReadEntry{raw: raw, Fd: raw.Fd, Count: raw.Count}
		},
		func(pid int, r sysc.RawArgs, exit arch.Registers) sysc.ExitArgs {
			raw := r.(ReadRaw)
			result := int64(exit.Result())
			if result < 0 {
				return ReadExit{SyscallResult: result}
			}
			return ReadExit{SyscallResult: result, Buf: remote.ReadCounted[byte](pid, raw.Buf, int(result))}
		})
}

// --- write ---

type WriteRaw struct {
	Fd    int32
	Buf   uintptr
	Count uint64
}

func (WriteRaw) SyscallName() string { return "write" }

type WriteEntry struct {
	raw   WriteRaw
	Fd    int32
	Buf   remote.Outcome[[]byte]
	Count uint64
}

func (WriteEntry) SyscallName() string { return "write" }
func (e WriteEntry) Raw() sysc.RawArgs { return e.raw }

func init() {
	register("write", sysc.Desc,
		map[arch.ID]uint64{arch.X86_64: 1, arch.Arm64: 64, arch.RiscV64: 64},
		func(pid int, regs arch.Registers) sysc.RawArgs {
			return WriteRaw{Fd: int32(argAt(regs, 0)), Buf: uintptr(argAt(regs, 1)), Count: argAt(regs, 2)}
		},
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(WriteRaw)
			return WriteEntry{raw: raw, Fd: raw.Fd, Buf: remote.ReadCounted[byte](pid, raw.Buf, int(raw.Count)), Count: raw.Count}
		}, simpleExit[int64]("write"))
}

// --- pipe2 ---

type Pipe2Raw struct {
	Pipefd uintptr
	Flags  int32
}

func (Pipe2Raw) SyscallName() string { return "pipe2" }

type Pipe2Entry struct {
	raw   Pipe2Raw
	Flags int32
}

func (Pipe2Entry) SyscallName() string { return "pipe2" }
func (e Pipe2Entry) Raw() sysc.RawArgs { return e.raw }

type Pipe2Exit struct {
	SyscallResult int32
	Pipefd        remote.Outcome[[2]int32]
}

func (Pipe2Exit) SyscallName() string { return "pipe2" }

func init() {
	register("pipe2", sysc.Desc,
		map[arch.ID]uint64{arch.X86_64: 293, arch.Arm64: 59, arch.RiscV64: 59},
		func(pid int, regs arch.Registers) sysc.RawArgs {
			return Pipe2Raw{Pipefd: uintptr(argAt(regs, 0)), Flags: int32(argAt(regs, 1))}
		},
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(Pipe2Raw)
			return Pipe2Entry{raw: raw, Flags: raw.Flags}
		},
		func(pid int, r sysc.RawArgs, exit arch.Registers) sysc.ExitArgs {
			raw := r.(Pipe2Raw)
			result := int64(exit.Result())
			if result < 0 {
				return Pipe2Exit{SyscallResult: int32(result)}
			}
			return Pipe2Exit{SyscallResult: int32(result), Pipefd: remote.ReadPair[int32](pid, raw.Pipefd)}
		})
}

// --- dup3 ---

type Dup3Raw struct {
	Oldfd int32
	Newfd int32
	Flags int32
}

func (Dup3Raw) SyscallName() string { return "dup3" }

type Dup3Entry struct {
	raw                Dup3Raw
	Oldfd, Newfd, Flags int32
}

func (Dup3Entry) SyscallName() string { return "dup3" }
func (e Dup3Entry) Raw() sysc.RawArgs { return e.raw }

func init() {
	register("dup3", sysc.Desc,
		map[arch.ID]uint64{arch.X86_64: 292, arch.Arm64: 24, arch.RiscV64: 24},
		func(pid int, regs arch.Registers) sysc.RawArgs {
			return Dup3Raw{Oldfd: int32(argAt(regs, 0)), Newfd: int32(argAt(regs, 1)), Flags: int32(argAt(regs, 2))}
		},
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(Dup3Raw)
			return Dup3Entry{raw: raw, Oldfd: raw.Oldfd, Newfd: raw.Newfd, Flags: raw.Flags}
		}, simpleExit[int32]("dup3"))
}

// --- fcntl ---

type FcntlRaw struct {
	Fd  int32
	Cmd int32
	Arg uint64
}

func (FcntlRaw) SyscallName() string { return "fcntl" }

type FcntlEntry struct {
	raw      FcntlRaw
	Fd, Cmd  int32
	Arg      uint64
}

func (FcntlEntry) SyscallName() string { return "fcntl" }
func (e FcntlEntry) Raw() sysc.RawArgs { return e.raw }

func init() {
	register("fcntl", sysc.Desc,
		map[arch.ID]uint64{arch.X86_64: 72, arch.Arm64: 25, arch.RiscV64: 25},
		func(pid int, regs arch.Registers) sysc.RawArgs {
			return FcntlRaw{Fd: int32(argAt(regs, 0)), Cmd: int32(argAt(regs, 1)), Arg: argAt(regs, 2)}
		},
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(FcntlRaw)
			return FcntlEntry{raw: raw, Fd: raw.Fd, Cmd: raw.Cmd, Arg: raw.Arg}
		}, simpleExit[int32]("fcntl"))
}

// --- ioctl ---

type IoctlRaw struct {
	Fd      int32
	Request uint64
	Arg     uintptr
}

func (IoctlRaw) SyscallName() string { return "ioctl" }

type IoctlEntry struct {
	raw     IoctlRaw
	Fd      int32
	Request uint64
	Arg     uintptr // reported opaque: decoder does not interpret request-specific layouts
}

func (IoctlEntry) SyscallName() string { return "ioctl" }
func (e IoctlEntry) Raw() sysc.RawArgs { return e.raw }

func init() {
	register("ioctl", sysc.Desc,
		map[arch.ID]uint64{arch.X86_64: 16, arch.Arm64: 29, arch.RiscV64: 29},
		func(pid int, regs arch.Registers) sysc.RawArgs {
			return IoctlRaw{Fd: int32(argAt(regs, 0)), Request: argAt(regs, 1), Arg: uintptr(argAt(regs, 2))}
		},
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(IoctlRaw)
			return IoctlEntry{raw: raw, Fd: raw.Fd, Request: raw.Request, Arg: raw.Arg}
		}, simpleExit[int32]("ioctl"))
}

// --- getdents64 ---

type Getdents64Raw struct {
	Fd    int32
	Dirp  uintptr
	Count uint32
}

func (Getdents64Raw) SyscallName() string { return "getdents64" }

type Getdents64Entry struct {
	raw   Getdents64Raw
	Fd    int32
	Count uint32
}

func (Getdents64Entry) SyscallName() string { return "getdents64" }
func (e Getdents64Entry) Raw() sysc.RawArgs { return e.raw }

type Getdents64Exit struct {
	SyscallResult int32
	// Dirp holds the raw byte region; a getdents64 buffer packs
	// variable-length dirent64 records back to back and this decoder
	// does not walk that packing, matching spec.md's non-goal of
	// interpreting syscall-specific flag bitfields and nested formats.
	Dirp remote.Outcome[[]byte]
}

func (Getdents64Exit) SyscallName() string { return "getdents64" }

func init() {
	register("getdents64", sysc.Desc,
		map[arch.ID]uint64{arch.X86_64: 217, arch.Arm64: 61, arch.RiscV64: 61},
		func(pid int, regs arch.Registers) sysc.RawArgs {
			return Getdents64Raw{Fd: int32(argAt(regs, 0)), Dirp: uintptr(argAt(regs, 1)), Count: uint32(argAt(regs, 2))}
		},
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(Getdents64Raw)
			return Getdents64Entry{raw: raw, Fd: raw.Fd, Count: raw.Count}
		},
		func(pid int, r sysc.RawArgs, exit arch.Registers) sysc.ExitArgs {
			raw := r.(Getdents64Raw)
			result := int64(exit.Result())
			if result < 0 {
				return Getdents64Exit{SyscallResult: int32(result)}
			}
			return Getdents64Exit{SyscallResult: int32(result), Dirp: remote.ReadCounted[byte](pid, raw.Dirp, int(result))}
		})
}
