package decode

import (
	"github.com/nestybox/go-syscall-inspect/arch"
	"github.com/nestybox/go-syscall-inspect/remote"
	sysc "github.com/nestybox/go-syscall-inspect/syscall"
)

// --- socket ---

type SocketRaw struct {
	Domain   int32
	Typ      int32
	Protocol int32
}

func (SocketRaw) SyscallName() string { return "socket" }

type SocketEntry struct {
	raw                       SocketRaw
	Domain, Typ, Protocol     int32
}

func (SocketEntry) SyscallName() string { return "socket" }
func (e SocketEntry) Raw() sysc.RawArgs { return e.raw }

func init() {
	register("socket", sysc.Desc|sysc.Network,
		map[arch.ID]uint64{arch.X86_64: 41, arch.Arm64: 198, arch.RiscV64: 198},
		func(pid int, regs arch.Registers) sysc.RawArgs {
			return SocketRaw{Domain: int32(argAt(regs, 0)), Typ: int32(argAt(regs, 1)), Protocol: int32(argAt(regs, 2))}
		},
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(SocketRaw)
			return SocketEntry{raw: raw, Domain: raw.Domain, Typ: raw.Typ, Protocol: raw.Protocol}
		}, simpleExit[int32]("socket"))
}

// --- connect / bind share the same (fd, sockaddr, addrlen) shape ---

type ConnectRaw struct {
	Fd      int32
	Addr    uintptr
	Addrlen uint32
}

func (ConnectRaw) SyscallName() string { return "connect" }

type ConnectEntry struct {
	raw     ConnectRaw
	Fd      int32
	Addr    remote.Outcome[[]byte]
	Addrlen uint32
}

func (ConnectEntry) SyscallName() string { return "connect" }
func (e ConnectEntry) Raw() sysc.RawArgs { return e.raw }

func init() {
	register("connect", sysc.Desc|sysc.Network,
		map[arch.ID]uint64{arch.X86_64: 42, arch.Arm64: 203, arch.RiscV64: 203},
		func(pid int, regs arch.Registers) sysc.RawArgs {
			return ConnectRaw{Fd: int32(argAt(regs, 0)), Addr: uintptr(argAt(regs, 1)), Addrlen: uint32(argAt(regs, 2))}
		},
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(ConnectRaw)
			return ConnectEntry{raw: raw, Fd: raw.Fd, Addr: remote.ReadCounted[byte](pid, raw.Addr, int(raw.Addrlen)), Addrlen: raw.Addrlen}
		}, simpleExit[int32]("connect"))
}

type BindRaw struct {
	Fd      int32
	Addr    uintptr
	Addrlen uint32
}

func (BindRaw) SyscallName() string { return "bind" }

type BindEntry struct {
	raw     BindRaw
	Fd      int32
	Addr    remote.Outcome[[]byte]
	Addrlen uint32
}

func (BindEntry) SyscallName() string { return "bind" }
func (e BindEntry) Raw() sysc.RawArgs { return e.raw }

func init() {
	register("bind", sysc.Desc|sysc.Network,
		map[arch.ID]uint64{arch.X86_64: 49, arch.Arm64: 200, arch.RiscV64: 200},
		func(pid int, regs arch.Registers) sysc.RawArgs {
			return BindRaw{Fd: int32(argAt(regs, 0)), Addr: uintptr(argAt(regs, 1)), Addrlen: uint32(argAt(regs, 2))}
		},
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(BindRaw)
			return BindEntry{raw: raw, Fd: raw.Fd, Addr: remote.ReadCounted[byte](pid, raw.Addr, int(raw.Addrlen)), Addrlen: raw.Addrlen}
		}, simpleExit[int32]("bind"))
}

// --- accept4 ---

type Accept4Raw struct {
	Fd      int32
	Addr    uintptr
	Addrlen uintptr
	Flags   int32
}

func (Accept4Raw) SyscallName() string { return "accept4" }

type Accept4Entry struct {
	raw        Accept4Raw
	Fd, Flags  int32
}

func (Accept4Entry) SyscallName() string { return "accept4" }
func (e Accept4Entry) Raw() sysc.RawArgs { return e.raw }

type Accept4Exit struct {
	SyscallResult int32
	Addr          remote.Outcome[[]byte]
}

func (Accept4Exit) SyscallName() string { return "accept4" }

func init() {
	register("accept4", sysc.Desc|sysc.Network,
		map[arch.ID]uint64{arch.X86_64: 288, arch.Arm64: 242, arch.RiscV64: 242},
		func(pid int, regs arch.Registers) sysc.RawArgs {
			return Accept4Raw{Fd: int32(argAt(regs, 0)), Addr: uintptr(argAt(regs, 1)), Addrlen: uintptr(argAt(regs, 2)), Flags: int32(argAt(regs, 3))}
		},
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(Accept4Raw)
			return Accept4Entry{raw: raw, Fd: raw.Fd, Flags: raw.Flags}
		},
		func(pid int, r sysc.RawArgs, exit arch.Registers) sysc.ExitArgs {
			raw := r.(Accept4Raw)
			result := int64(exit.Result())
			if result < 0 || raw.Addr == 0 {
				return Accept4Exit{SyscallResult: int32(result)}
			}
			lenOut := remote.ReadFixed[uint32](pid, raw.Addrlen)
			if !lenOut.Ok {
				return Accept4Exit{SyscallResult: int32(result), Addr: remote.Failed[[]byte](lenOut.Err, nil)}
			}
			return Accept4Exit{SyscallResult: int32(result), Addr: remote.ReadCounted[byte](pid, raw.Addr, int(lenOut.Value))}
		})
}

// --- sendto ---

type SendtoRaw struct {
	Fd      int32
	Buf     uintptr
	Length  uint64
	Flags   int32
	Addr    uintptr
	Addrlen uint32
}

func (SendtoRaw) SyscallName() string { return "sendto" }

type SendtoEntry struct {
	raw    SendtoRaw
	Fd     int32
	Buf    remote.Outcome[[]byte]
	Flags  int32
	Addr   remote.Outcome[[]byte]
}

func (SendtoEntry) SyscallName() string { return "sendto" }
func (e SendtoEntry) Raw() sysc.RawArgs { return e.raw }

func init() {
	register("sendto", sysc.Desc|sysc.Network,
		map[arch.ID]uint64{arch.X86_64: 44, arch.Arm64: 206, arch.RiscV64: 206},
		func(pid int, regs arch.Registers) sysc.RawArgs {
			return SendtoRaw{
				Fd: int32(argAt(regs, 0)), Buf: uintptr(argAt(regs, 1)), Length: argAt(regs, 2),
				Flags: int32(argAt(regs, 3)), Addr: uintptr(argAt(regs, 4)), Addrlen: uint32(argAt(regs, 5)),
			}
		},
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(SendtoRaw)
			e := SendtoEntry{raw: raw, Fd: raw.Fd, Buf: remote.ReadCounted[byte](pid, raw.Buf, int(raw.Length)), Flags: raw.Flags}
			if raw.Addr != 0 {
				e.Addr = remote.ReadCounted[byte](pid, raw.Addr, int(raw.Addrlen))
			}
			return e
		}, simpleExit[int64]("sendto"))
}

// --- recvfrom ---

type RecvfromRaw struct {
	Fd      int32
	Buf     uintptr
	Length  uint64
	Flags   int32
	Addr    uintptr
	Addrlen uintptr
}

func (RecvfromRaw) SyscallName() string { return "recvfrom" }

type RecvfromEntry struct {
	raw            RecvfromRaw
	Fd             int32
	Length         uint64
	Flags          int32
}

func (RecvfromEntry) SyscallName() string { return "recvfrom" }
func (e RecvfromEntry) Raw() sysc.RawArgs { return e.raw }

type RecvfromExit struct {
	SyscallResult int64
	Buf           remote.Outcome[[]byte]
	Addr          remote.Outcome[[]byte]
}

func (RecvfromExit) SyscallName() string { return "recvfrom" }

func init() {
	register("recvfrom", sysc.Desc|sysc.Network,
		map[arch.ID]uint64{arch.X86_64: 45, arch.Arm64: 207, arch.RiscV64: 207},
		func(pid int, regs arch.Registers) sysc.RawArgs {
			return RecvfromRaw{
				Fd: int32(argAt(regs, 0)), Buf: uintptr(argAt(regs, 1)), Length: argAt(regs, 2),
				Flags: int32(argAt(regs, 3)), Addr: uintptr(argAt(regs, 4)), Addrlen: uintptr(argAt(regs, 5)),
			}
		},
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(RecvfromRaw)
			return RecvfromEntry{raw: raw, Fd: raw.Fd, Length: raw.Length, Flags: raw.Flags}
		},
		func(pid int, r sysc.RawArgs, exit arch.Registers) sysc.ExitArgs {
			raw := r.(RecvfromRaw)
			result := int64(exit.Result())
			if result < 0 {
				return RecvfromExit{SyscallResult: result}
			}
			out := RecvfromExit{SyscallResult: result, Buf: remote.ReadCounted[byte](pid, raw.Buf, int(result))}
			if raw.Addr != 0 {
				lenOut := remote.ReadFixed[uint32](pid, raw.Addrlen)
				if lenOut.Ok {
					out.Addr = remote.ReadCounted[byte](pid, raw.Addr, int(lenOut.Value))
				} else {
					out.Addr = remote.Failed[[]byte](lenOut.Err, nil)
				}
			}
			return out
		})
}

// --- getsockopt / setsockopt ---

type GetsockoptRaw struct {
	Fd      int32
	Level   int32
	Optname int32
	Optval  uintptr
	Optlen  uintptr
}

func (GetsockoptRaw) SyscallName() string { return "getsockopt" }

type GetsockoptEntry struct {
	raw                       GetsockoptRaw
	Fd, Level, Optname        int32
}

func (GetsockoptEntry) SyscallName() string { return "getsockopt" }
func (e GetsockoptEntry) Raw() sysc.RawArgs { return e.raw }

type GetsockoptExit struct {
	SyscallResult int32
	Optval        remote.Outcome[[]byte]
}

func (GetsockoptExit) SyscallName() string { return "getsockopt" }

func init() {
	register("getsockopt", sysc.Desc|sysc.Network,
		map[arch.ID]uint64{arch.X86_64: 55, arch.Arm64: 209, arch.RiscV64: 209},
		func(pid int, regs arch.Registers) sysc.RawArgs {
			return GetsockoptRaw{
				Fd: int32(argAt(regs, 0)), Level: int32(argAt(regs, 1)), Optname: int32(argAt(regs, 2)),
				Optval: uintptr(argAt(regs, 3)), Optlen: uintptr(argAt(regs, 4)),
			}
		},
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(GetsockoptRaw)
			return GetsockoptEntry{raw: raw, Fd: raw.Fd, Level: raw.Level, Optname: raw.Optname}
		},
		func(pid int, r sysc.RawArgs, exit arch.Registers) sysc.ExitArgs {
			raw := r.(GetsockoptRaw)
			result := int64(exit.Result())
			if result < 0 {
				return GetsockoptExit{SyscallResult: int32(result)}
			}
			lenOut := remote.ReadFixed[uint32](pid, raw.Optlen)
			if !lenOut.Ok {
				return GetsockoptExit{SyscallResult: int32(result), Optval: remote.Failed[[]byte](lenOut.Err, nil)}
			}
			return GetsockoptExit{SyscallResult: int32(result), Optval: remote.ReadCounted[byte](pid, raw.Optval, int(lenOut.Value))}
		})
}

type SetsockoptRaw struct {
	Fd      int32
	Level   int32
	Optname int32
	Optval  uintptr
	Optlen  uint32
}

func (SetsockoptRaw) SyscallName() string { return "setsockopt" }

type SetsockoptEntry struct {
	raw                  SetsockoptRaw
	Fd, Level, Optname   int32
	Optval               remote.Outcome[[]byte]
}

func (SetsockoptEntry) SyscallName() string { return "setsockopt" }
func (e SetsockoptEntry) Raw() sysc.RawArgs { return e.raw }

func init() {
	register("setsockopt", sysc.Desc|sysc.Network,
		map[arch.ID]uint64{arch.X86_64: 54, arch.Arm64: 208, arch.RiscV64: 208},
		func(pid int, regs arch.Registers) sysc.RawArgs {
			return SetsockoptRaw{
				Fd: int32(argAt(regs, 0)), Level: int32(argAt(regs, 1)), Optname: int32(argAt(regs, 2)),
				Optval: uintptr(argAt(regs, 3)), Optlen: uint32(argAt(regs, 4)),
			}
		},
		func(pid int, r sysc.RawArgs) sysc.EntryArgs {
			raw := r.(SetsockoptRaw)
			return SetsockoptEntry{
				raw: raw, Fd: raw.Fd, Level: raw.Level, Optname: raw.Optname,
				Optval: remote.ReadCounted[byte](pid, raw.Optval, int(raw.Optlen)),
			}
		}, simpleExit[int32]("setsockopt"))
}
