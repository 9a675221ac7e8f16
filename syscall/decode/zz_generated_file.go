package decode

import (
	"github.com/nestybox/go-syscall-inspect/arch"
	"github.com/nestybox/go-syscall-inspect/remote"
	"github.com/nestybox/go-syscall-inspect/remote/ktype"
	sysc "github.com/nestybox/go-syscall-inspect/syscall"
)

// --- openat ---

type OpenatRaw struct {
	Dirfd    int32
	Pathname uintptr
	Flags    int32
	Mode     uint32
}

func (OpenatRaw) SyscallName() string { return "openat" }

type OpenatEntry struct {
	raw      OpenatRaw
	Dirfd    int32
	Pathname remote.Outcome[string]
	Flags    int32
	Mode     uint32
}

func (OpenatEntry) SyscallName() string { return "openat" }
func (e OpenatEntry) Raw() sysc.RawArgs { return e.raw }

func init() {
	register("openat", sysc.Desc|sysc.File,
		map[arch.ID]uint64{arch.X86_64: 257, arch.Arm64: 56, arch.RiscV64: 56},
		func(pid int, regs arch.Registers) sysc.RawArgs {
			return OpenatRaw{
				Dirfd:    int32(argAt(regs, 0)),
				Pathname: uintptr(argAt(regs, 1)),
				Flags:    int32(argAt(regs, 2)),
				Mode:     uint32(argAt(regs, 3)),
			}
		},
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(OpenatRaw)
			return OpenatEntry{
				raw:      raw,
				Dirfd:    raw.Dirfd,
				Pathname: remote.ReadPath(pid, raw.Pathname),
				Flags:    raw.Flags,
				Mode:     raw.Mode,
			}
		}, simpleExit[int32]("openat"))
}

// --- openat2 ---

type Openat2Raw struct {
	Dirfd    int32
	Pathname uintptr
	How      uintptr
	Size     uint64
}

func (Openat2Raw) SyscallName() string { return "openat2" }

type Openat2Entry struct {
	raw      Openat2Raw
	Dirfd    int32
	Pathname remote.Outcome[string]
	How      remote.Outcome[ktype.OpenHow]
}

func (Openat2Entry) SyscallName() string { return "openat2" }
func (e Openat2Entry) Raw() sysc.RawArgs { return e.raw }

func init() {
	register("openat2", sysc.Desc|sysc.File,
		map[arch.ID]uint64{arch.X86_64: 437, arch.Arm64: 437, arch.RiscV64: 437},
		func(pid int, regs arch.Registers) sysc.RawArgs {
			return Openat2Raw{
				Dirfd:    int32(argAt(regs, 0)),
				Pathname: uintptr(argAt(regs, 1)),
				How:      uintptr(argAt(regs, 2)),
				Size:     argAt(regs, 3),
			}
		},
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(Openat2Raw)
			return Openat2Entry{
				raw:      raw,
				Dirfd:    raw.Dirfd,
				Pathname: remote.ReadPath(pid, raw.Pathname),
				How:      remote.ReadFixed[ktype.OpenHow](pid, raw.How),
			}
		}, simpleExit[int32]("openat2"))
}

// --- close ---

type CloseRaw struct{ Fd int32 }

func (CloseRaw) SyscallName() string { return "close" }

type CloseEntry struct {
	raw CloseRaw
	Fd  int32
}

func (CloseEntry) SyscallName() string { return "close" }
func (e CloseEntry) Raw() sysc.RawArgs { return e.raw }

func init() {
	register("close", sysc.Desc,
		map[arch.ID]uint64{arch.X86_64: 3, arch.Arm64: 57, arch.RiscV64: 57},
		func(pid int, regs arch.Registers) sysc.RawArgs {
			return CloseRaw{Fd: int32(argAt(regs, 0))}
		},
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(CloseRaw)
			return CloseEntry{raw: raw, Fd: raw.Fd}
		}, simpleExit[int32]("close"))
}

// --- close_range ---

type CloseRangeRaw struct {
	First uint32
	Last  uint32
	Flags uint32
}

func (CloseRangeRaw) SyscallName() string { return "close_range" }

type CloseRangeEntry struct {
	raw                CloseRangeRaw
	First, Last, Flags uint32
}

func (CloseRangeEntry) SyscallName() string { return "close_range" }
func (e CloseRangeEntry) Raw() sysc.RawArgs { return e.raw }

func init() {
	register("close_range", sysc.Desc,
		map[arch.ID]uint64{arch.X86_64: 436, arch.Arm64: 436, arch.RiscV64: 436},
		func(pid int, regs arch.Registers) sysc.RawArgs {
			return CloseRangeRaw{First: uint32(argAt(regs, 0)), Last: uint32(argAt(regs, 1)), Flags: uint32(argAt(regs, 2))}
		},
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(CloseRangeRaw)
			return CloseRangeEntry{raw: raw, First: raw.First, Last: raw.Last, Flags: raw.Flags}
		}, simpleExit[int32]("close_range"))
}

// --- fstat ---

type FstatRaw struct {
	Fd      int32
	Statbuf uintptr
}

func (FstatRaw) SyscallName() string { return "fstat" }

type FstatEntry struct {
	raw FstatRaw
	Fd  int32
}

func (FstatEntry) SyscallName() string { return "fstat" }
func (e FstatEntry) Raw() sysc.RawArgs { return e.raw }

type FstatExit struct {
	SyscallResult int32
	Statbuf       remote.Outcome[ktype.Stat]
}

func (FstatExit) SyscallName() string { return "fstat" }

func init() {
	register("fstat", sysc.Desc|sysc.FStat|sysc.StatLike,
		map[arch.ID]uint64{arch.X86_64: 5, arch.Arm64: 80, arch.RiscV64: 80},
		func(pid int, regs arch.Registers) sysc.RawArgs {
			return FstatRaw{Fd: int32(argAt(regs, 0)), Statbuf: uintptr(argAt(regs, 1))}
		},
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(FstatRaw)
			return FstatEntry{raw: raw, Fd: raw.Fd}
		},
		func(pid int, r sysc.RawArgs, exit arch.Registers) sysc.ExitArgs {
			raw := r.(FstatRaw)
			result := int64(exit.Result())
			if result < 0 {
				return FstatExit{SyscallResult: int32(result)}
			}
			return FstatExit{SyscallResult: int32(result), Statbuf: remote.ReadFixed[ktype.Stat](pid, raw.Statbuf)}
		})
}

// --- lstat ---

type LstatRaw struct {
	Pathname uintptr
	Statbuf  uintptr
}

func (LstatRaw) SyscallName() string { return "lstat" }

type LstatEntry struct {
	raw      LstatRaw
	Pathname remote.Outcome[string]
}

func (LstatEntry) SyscallName() string { return "lstat" }
func (e LstatEntry) Raw() sysc.RawArgs { return e.raw }

type LstatExit struct {
	SyscallResult int32
	Statbuf       remote.Outcome[ktype.Stat]
}

func (LstatExit) SyscallName() string { return "lstat" }

func init() {
	register("lstat", sysc.File|sysc.LStat|sysc.StatLike,
		map[arch.ID]uint64{arch.X86_64: 6},
		func(pid int, regs arch.Registers) sysc.RawArgs {
			return LstatRaw{Pathname: uintptr(argAt(regs, 0)), Statbuf: uintptr(argAt(regs, 1))}
		},
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(LstatRaw)
			return LstatEntry{raw: raw, Pathname: remote.ReadPath(pid, raw.Pathname)}
		},
		func(pid int, r sysc.RawArgs, exit arch.Registers) sysc.ExitArgs {
			raw := r.(LstatRaw)
			result := int64(exit.Result())
			if result < 0 {
				return LstatExit{SyscallResult: int32(result)}
			}
			return LstatExit{SyscallResult: int32(result), Statbuf: remote.ReadFixed[ktype.Stat](pid, raw.Statbuf)}
		})
}

// --- newfstatat ---

type NewfstatatRaw struct {
	Dirfd    int32
	Pathname uintptr
	Statbuf  uintptr
	Flags    int32
}

func (NewfstatatRaw) SyscallName() string { return "newfstatat" }

type NewfstatatEntry struct {
	raw      NewfstatatRaw
	Dirfd    int32
	Pathname remote.Outcome[string]
	Flags    int32
}

func (NewfstatatEntry) SyscallName() string { return "newfstatat" }
func (e NewfstatatEntry) Raw() sysc.RawArgs { return e.raw }

type NewfstatatExit struct {
	SyscallResult int32
	Statbuf       remote.Outcome[ktype.Stat]
}

func (NewfstatatExit) SyscallName() string { return "newfstatat" }

func init() {
	register("newfstatat", sysc.Desc|sysc.File|sysc.FStat|sysc.StatLike,
		map[arch.ID]uint64{arch.X86_64: 262, arch.Arm64: 79, arch.RiscV64: 79},
		func(pid int, regs arch.Registers) sysc.RawArgs {
			return NewfstatatRaw{
				Dirfd:    int32(argAt(regs, 0)),
				Pathname: uintptr(argAt(regs, 1)),
				Statbuf:  uintptr(argAt(regs, 2)),
				Flags:    int32(argAt(regs, 3)),
			}
		},
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(NewfstatatRaw)
			return NewfstatatEntry{raw: raw, Dirfd: raw.Dirfd, Pathname: remote.ReadPath(pid, raw.Pathname), Flags: raw.Flags}
		},
		func(pid int, r sysc.RawArgs, exit arch.Registers) sysc.ExitArgs {
			raw := r.(NewfstatatRaw)
			result := int64(exit.Result())
			if result < 0 {
				return NewfstatatExit{SyscallResult: int32(result)}
			}
			return NewfstatatExit{SyscallResult: int32(result), Statbuf: remote.ReadFixed[ktype.Stat](pid, raw.Statbuf)}
		})
}

// --- statx ---

type StatxRaw struct {
	Dirfd    int32
	Pathname uintptr
	Flags    int32
	Mask     uint32
	Statxbuf uintptr
}

func (StatxRaw) SyscallName() string { return "statx" }

type StatxEntry struct {
	raw      StatxRaw
	Dirfd    int32
	Pathname remote.Outcome[string]
	Flags    int32
	Mask     uint32
}

func (StatxEntry) SyscallName() string { return "statx" }
func (e StatxEntry) Raw() sysc.RawArgs { return e.raw }

type StatxExit struct {
	SyscallResult int32
	Statxbuf      remote.Outcome[ktype.Statx]
}

func (StatxExit) SyscallName() string { return "statx" }

func init() {
	register("statx", sysc.Desc|sysc.File|sysc.FStat|sysc.StatLike,
		map[arch.ID]uint64{arch.X86_64: 332, arch.Arm64: 291, arch.RiscV64: 291},
		func(pid int, regs arch.Registers) sysc.RawArgs {
			return StatxRaw{
				Dirfd:    int32(argAt(regs, 0)),
				Pathname: uintptr(argAt(regs, 1)),
				Flags:    int32(argAt(regs, 2)),
				Mask:     uint32(argAt(regs, 3)),
				Statxbuf: uintptr(argAt(regs, 4)),
			}
		},
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(StatxRaw)
			return StatxEntry{raw: raw, Dirfd: raw.Dirfd, Pathname: remote.ReadPath(pid, raw.Pathname), Flags: raw.Flags, Mask: raw.Mask}
		},
		func(pid int, r sysc.RawArgs, exit arch.Registers) sysc.ExitArgs {
			raw := r.(StatxRaw)
			result := int64(exit.Result())
			if result < 0 {
				return StatxExit{SyscallResult: int32(result)}
			}
			return StatxExit{SyscallResult: int32(result), Statxbuf: remote.ReadFixed[ktype.Statx](pid, raw.Statxbuf)}
		})
}

// --- statfs ---

type StatfsRaw struct {
	Pathname uintptr
	Buf      uintptr
}

func (StatfsRaw) SyscallName() string { return "statfs" }

type StatfsEntry struct {
	raw      StatfsRaw
	Pathname remote.Outcome[string]
}

func (StatfsEntry) SyscallName() string { return "statfs" }
func (e StatfsEntry) Raw() sysc.RawArgs { return e.raw }

type StatfsExit struct {
	SyscallResult int32
	Buf           remote.Outcome[ktype.Statfs]
}

func (StatfsExit) SyscallName() string { return "statfs" }

func init() {
	register("statfs", sysc.File|sysc.StatFs|sysc.StatFsLike,
		map[arch.ID]uint64{arch.X86_64: 137, arch.Arm64: 43, arch.RiscV64: 43},
		func(pid int, regs arch.Registers) sysc.RawArgs {
			return StatfsRaw{Pathname: uintptr(argAt(regs, 0)), Buf: uintptr(argAt(regs, 1))}
		},
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(StatfsRaw)
			return StatfsEntry{raw: raw, Pathname: remote.ReadPath(pid, raw.Pathname)}
		},
		func(pid int, r sysc.RawArgs, exit arch.Registers) sysc.ExitArgs {
			raw := r.(StatfsRaw)
			result := int64(exit.Result())
			if result < 0 {
				return StatfsExit{SyscallResult: int32(result)}
			}
			return StatfsExit{SyscallResult: int32(result), Buf: remote.ReadFixed[ktype.Statfs](pid, raw.Buf)}
		})
}

// --- fstatfs ---

type FstatfsRaw struct {
	Fd  int32
	Buf uintptr
}

func (FstatfsRaw) SyscallName() string { return "fstatfs" }

type FstatfsEntry struct {
	raw FstatfsRaw
	Fd  int32
}

func (FstatfsEntry) SyscallName() string { return "fstatfs" }
func (e FstatfsEntry) Raw() sysc.RawArgs { return e.raw }

type FstatfsExit struct {
	SyscallResult int32
	Buf           remote.Outcome[ktype.Statfs]
}

func (FstatfsExit) SyscallName() string { return "fstatfs" }

func init() {
	register("fstatfs", sysc.Desc|sysc.FStatFs|sysc.StatFsLike,
		map[arch.ID]uint64{arch.X86_64: 138, arch.Arm64: 44, arch.RiscV64: 44},
		func(pid int, regs arch.Registers) sysc.RawArgs {
			return FstatfsRaw{Fd: int32(argAt(regs, 0)), Buf: uintptr(argAt(regs, 1))}
		},
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(FstatfsRaw)
			return FstatfsEntry{raw: raw, Fd: raw.Fd}
		},
		func(pid int, r sysc.RawArgs, exit arch.Registers) sysc.ExitArgs {
			raw := r.(FstatfsRaw)
			result := int64(exit.Result())
			if result < 0 {
				return FstatfsExit{SyscallResult: int32(result)}
			}
			return FstatfsExit{SyscallResult: int32(result), Buf: remote.ReadFixed[ktype.Statfs](pid, raw.Buf)}
		})
}

// --- getcwd ---

type GetcwdRaw struct {
	Buf  uintptr
	Size uint64
}

func (GetcwdRaw) SyscallName() string { return "getcwd" }

type GetcwdEntry struct {
	raw  GetcwdRaw
	Size uint64
}

func (GetcwdEntry) SyscallName() string { return "getcwd" }
func (e GetcwdEntry) Raw() sysc.RawArgs { return e.raw }

type GetcwdExit struct {
	SyscallResult int64
	Buf           remote.Outcome[string]
}

func (GetcwdExit) SyscallName() string { return "getcwd" }

func init() {
	register("getcwd", sysc.File,
		map[arch.ID]uint64{arch.X86_64: 79, arch.Arm64: 17, arch.RiscV64: 17},
		func(pid int, regs arch.Registers) sysc.RawArgs {
			return GetcwdRaw{Buf: uintptr(argAt(regs, 0)), Size: argAt(regs, 1)}
		},
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(GetcwdRaw)
			return GetcwdEntry{raw: raw, Size: raw.Size}
		},
		func(pid int, r sysc.RawArgs, exit arch.Registers) sysc.ExitArgs {
			raw := r.(GetcwdRaw)
			result := int64(exit.Result())
			if result < 0 {
				return GetcwdExit{SyscallResult: result}
			}
			return GetcwdExit{SyscallResult: result, Buf: remote.ReadPath(pid, raw.Buf)}
		})
}

// --- chdir ---

type ChdirRaw struct{ Pathname uintptr }

func (ChdirRaw) SyscallName() string { return "chdir" }

type ChdirEntry struct {
	raw      ChdirRaw
	Pathname remote.Outcome[string]
}

func (ChdirEntry) SyscallName() string { return "chdir" }
func (e ChdirEntry) Raw() sysc.RawArgs { return e.raw }

func init() {
	register("chdir", sysc.File,
		map[arch.ID]uint64{arch.X86_64: 80, arch.Arm64: 49, arch.RiscV64: 49},
		func(pid int, regs arch.Registers) sysc.RawArgs {
			return ChdirRaw{Pathname: uintptr(argAt(regs, 0))}
		},
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(ChdirRaw)
			return ChdirEntry{raw: raw, Pathname: remote.ReadPath(pid, raw.Pathname)}
		}, simpleExit[int32]("chdir"))
}

// --- mkdirat ---

type MkdiratRaw struct {
	Dirfd    int32
	Pathname uintptr
	Mode     uint32
}

func (MkdiratRaw) SyscallName() string { return "mkdirat" }

type MkdiratEntry struct {
	raw      MkdiratRaw
	Dirfd    int32
	Pathname remote.Outcome[string]
	Mode     uint32
}

func (MkdiratEntry) SyscallName() string { return "mkdirat" }
func (e MkdiratEntry) Raw() sysc.RawArgs { return e.raw }

func init() {
	register("mkdirat", sysc.Desc|sysc.File,
		map[arch.ID]uint64{arch.X86_64: 258, arch.Arm64: 34, arch.RiscV64: 34},
		func(pid int, regs arch.Registers) sysc.RawArgs {
			return MkdiratRaw{Dirfd: int32(argAt(regs, 0)), Pathname: uintptr(argAt(regs, 1)), Mode: uint32(argAt(regs, 2))}
		},
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(MkdiratRaw)
			return MkdiratEntry{raw: raw, Dirfd: raw.Dirfd, Pathname: remote.ReadPath(pid, raw.Pathname), Mode: raw.Mode}
		}, simpleExit[int32]("mkdirat"))
}

// --- unlinkat ---

type UnlinkatRaw struct {
	Dirfd    int32
	Pathname uintptr
	Flags    int32
}

func (UnlinkatRaw) SyscallName() string { return "unlinkat" }

type UnlinkatEntry struct {
	raw      UnlinkatRaw
	Dirfd    int32
	Pathname remote.Outcome[string]
	Flags    int32
}

func (UnlinkatEntry) SyscallName() string { return "unlinkat" }
func (e UnlinkatEntry) Raw() sysc.RawArgs { return e.raw }

func init() {
	register("unlinkat", sysc.Desc|sysc.File,
		map[arch.ID]uint64{arch.X86_64: 263, arch.Arm64: 35, arch.RiscV64: 35},
		func(pid int, regs arch.Registers) sysc.RawArgs {
			return UnlinkatRaw{Dirfd: int32(argAt(regs, 0)), Pathname: uintptr(argAt(regs, 1)), Flags: int32(argAt(regs, 2))}
		},
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(UnlinkatRaw)
			return UnlinkatEntry{raw: raw, Dirfd: raw.Dirfd, Pathname: remote.ReadPath(pid, raw.Pathname), Flags: raw.Flags}
		}, simpleExit[int32]("unlinkat"))
}

// --- renameat2 ---

type Renameat2Raw struct {
	Olddirfd int32
	Oldpath  uintptr
	Newdirfd int32
	Newpath  uintptr
	Flags    uint32
}

func (Renameat2Raw) SyscallName() string { return "renameat2" }

type Renameat2Entry struct {
	raw      Renameat2Raw
	Olddirfd int32
	Oldpath  remote.Outcome[string]
	Newdirfd int32
	Newpath  remote.Outcome[string]
	Flags    uint32
}

func (Renameat2Entry) SyscallName() string { return "renameat2" }
func (e Renameat2Entry) Raw() sysc.RawArgs { return e.raw }

func init() {
	register("renameat2", sysc.Desc|sysc.File,
		map[arch.ID]uint64{arch.X86_64: 316, arch.Arm64: 276, arch.RiscV64: 276},
		func(pid int, regs arch.Registers) sysc.RawArgs {
			return Renameat2Raw{
				Olddirfd: int32(argAt(regs, 0)),
				Oldpath:  uintptr(argAt(regs, 1)),
				Newdirfd: int32(argAt(regs, 2)),
				Newpath:  uintptr(argAt(regs, 3)),
				Flags:    uint32(argAt(regs, 4)),
			}
		},
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(Renameat2Raw)
			return Renameat2Entry{
				raw: raw, Olddirfd: raw.Olddirfd, Oldpath: remote.ReadPath(pid, raw.Oldpath),
				Newdirfd: raw.Newdirfd, Newpath: remote.ReadPath(pid, raw.Newpath), Flags: raw.Flags,
			}
		}, simpleExit[int32]("renameat2"))
}

// --- symlinkat ---

type SymlinkatRaw struct {
	Target   uintptr
	Newdirfd int32
	Linkpath uintptr
}

func (SymlinkatRaw) SyscallName() string { return "symlinkat" }

type SymlinkatEntry struct {
	raw      SymlinkatRaw
	Target   remote.Outcome[string]
	Newdirfd int32
	Linkpath remote.Outcome[string]
}

func (SymlinkatEntry) SyscallName() string { return "symlinkat" }
func (e SymlinkatEntry) Raw() sysc.RawArgs { return e.raw }

func init() {
	register("symlinkat", sysc.Desc|sysc.File,
		map[arch.ID]uint64{arch.X86_64: 266, arch.Arm64: 36, arch.RiscV64: 36},
		func(pid int, regs arch.Registers) sysc.RawArgs {
			return SymlinkatRaw{Target: uintptr(argAt(regs, 0)), Newdirfd: int32(argAt(regs, 1)), Linkpath: uintptr(argAt(regs, 2))}
		},
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(SymlinkatRaw)
			return SymlinkatEntry{
				raw: raw, Target: remote.ReadPath(pid, raw.Target),
				Newdirfd: raw.Newdirfd, Linkpath: remote.ReadPath(pid, raw.Linkpath),
			}
		}, simpleExit[int32]("symlinkat"))
}

// --- readlinkat ---

type ReadlinkatRaw struct {
	Dirfd    int32
	Pathname uintptr
	Buf      uintptr
	Bufsiz   uint64
}

func (ReadlinkatRaw) SyscallName() string { return "readlinkat" }

type ReadlinkatEntry struct {
	raw      ReadlinkatRaw
	Dirfd    int32
	Pathname remote.Outcome[string]
	Bufsiz   uint64
}

func (ReadlinkatEntry) SyscallName() string { return "readlinkat" }
func (e ReadlinkatEntry) Raw() sysc.RawArgs { return e.raw }

type ReadlinkatExit struct {
	SyscallResult int64
	Buf           remote.Outcome[[]byte]
}

func (ReadlinkatExit) SyscallName() string { return "readlinkat" }

func init() {
	register("readlinkat", sysc.Desc|sysc.File,
		map[arch.ID]uint64{arch.X86_64: 267, arch.Arm64: 78, arch.RiscV64: 78},
		func(pid int, regs arch.Registers) sysc.RawArgs {
			return ReadlinkatRaw{
				Dirfd: int32(argAt(regs, 0)), Pathname: uintptr(argAt(regs, 1)),
				Buf: uintptr(argAt(regs, 2)), Bufsiz: argAt(regs, 3),
			}
		},
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(ReadlinkatRaw)
			return ReadlinkatEntry{raw: raw, Dirfd: raw.Dirfd, Pathname: remote.ReadPath(pid, raw.Pathname), Bufsiz: raw.Bufsiz}
		},
		func(pid int, r sysc.RawArgs, exit arch.Registers) sysc.ExitArgs {
			raw := r.(ReadlinkatRaw)
			result := int64(exit.Result())
			if result < 0 {
				return ReadlinkatExit{SyscallResult: result}
			}
			return ReadlinkatExit{SyscallResult: result, Buf: remote.ReadCounted[byte](pid, raw.Buf, int(result))}
		})
}

// --- mount ---

type MountRaw struct {
	Source uintptr
	Target uintptr
	Fstype uintptr
	Flags  uint64
	Data   uintptr
}

func (MountRaw) SyscallName() string { return "mount" }

type MountEntry struct {
	raw    MountRaw
	Source remote.Outcome[string]
	Target remote.Outcome[string]
	Fstype remote.Outcome[[]byte]
	Flags  uint64
	Data   uintptr
}

func (MountEntry) SyscallName() string { return "mount" }
func (e MountEntry) Raw() sysc.RawArgs { return e.raw }

func init() {
	register("mount", sysc.File,
		map[arch.ID]uint64{arch.X86_64: 165, arch.Arm64: 40, arch.RiscV64: 40},
		func(pid int, regs arch.Registers) sysc.RawArgs {
			return MountRaw{
				Source: uintptr(argAt(regs, 0)), Target: uintptr(argAt(regs, 1)),
				Fstype: uintptr(argAt(regs, 2)), Flags: argAt(regs, 3), Data: uintptr(argAt(regs, 4)),
			}
		},
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(MountRaw)
			e := MountEntry{raw: raw, Flags: raw.Flags, Data: raw.Data}
			if raw.Source != 0 {
				e.Source = remote.ReadPath(pid, raw.Source)
			}
			e.Target = remote.ReadPath(pid, raw.Target)
			if raw.Fstype != 0 {
				e.Fstype = remote.ReadCString(pid, raw.Fstype)
			}
			return e
		}, simpleExit[int32]("mount"))
}

// --- umount2 ---

type Umount2Raw struct {
	Target uintptr
	Flags  int32
}

func (Umount2Raw) SyscallName() string { return "umount2" }

type Umount2Entry struct {
	raw    Umount2Raw
	Target remote.Outcome[string]
	Flags  int32
}

func (Umount2Entry) SyscallName() string { return "umount2" }
func (e Umount2Entry) Raw() sysc.RawArgs { return e.raw }

func init() {
	register("umount2", sysc.File,
		map[arch.ID]uint64{arch.X86_64: 166, arch.Arm64: 39, arch.RiscV64: 39},
		func(pid int, regs arch.Registers) sysc.RawArgs {
			return Umount2Raw{Target: uintptr(argAt(regs, 0)), Flags: int32(argAt(regs, 1))}
		},
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(Umount2Raw)
			return Umount2Entry{raw: raw, Target: remote.ReadPath(pid, raw.Target), Flags: raw.Flags}
		}, simpleExit[int32]("umount2"))
}

// --- pivot_root ---

type PivotRootRaw struct {
	Newroot uintptr
	Putold  uintptr
}

func (PivotRootRaw) SyscallName() string { return "pivot_root" }

type PivotRootEntry struct {
	raw     PivotRootRaw
	Newroot remote.Outcome[string]
	Putold  remote.Outcome[string]
}

func (PivotRootEntry) SyscallName() string { return "pivot_root" }
func (e PivotRootEntry) Raw() sysc.RawArgs { return e.raw }

func init() {
	register("pivot_root", sysc.File,
		map[arch.ID]uint64{arch.X86_64: 155, arch.Arm64: 41, arch.RiscV64: 41},
		func(pid int, regs arch.Registers) sysc.RawArgs {
			return PivotRootRaw{Newroot: uintptr(argAt(regs, 0)), Putold: uintptr(argAt(regs, 1))}
		},
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(PivotRootRaw)
			return PivotRootEntry{raw: raw, Newroot: remote.ReadPath(pid, raw.Newroot), Putold: remote.ReadPath(pid, raw.Putold)}
		}, simpleExit[int32]("pivot_root"))
}
