// Package ktype holds the fixed-layout (and, for a few records, trailing
// flexible-array) kernel struct definitions the syscall decoder reads out
// of tracee memory. Where golang.org/x/sys/unix already defines a
// bit-exact layout (Stat_t, Timespec, Rusage, ...) this package re-exports
// it instead of redeclaring it; it only adds the structs unix does not
// carry, translated from the kernel UAPI headers the same way
// original_source/src/types.rs did for the Rust implementation this module
// is grounded on.
package ktype

import "golang.org/x/sys/unix"

// Re-exports: these already have a bit-exact Go layout in golang.org/x/sys/unix.
type (
	Stat      = unix.Stat_t
	Statfs    = unix.Statfs_t
	Timespec  = unix.Timespec
	Timeval   = unix.Timeval
	Rusage    = unix.Rusage
	Utsname   = unix.Utsname
	Sysinfo   = unix.Sysinfo_t
	PollFd    = unix.PollFd
	OpenHow   = unix.OpenHow
	Rlimit    = unix.Rlimit
	Dirent64  = unix.Dirent
	Sigaction = unix.Sigaction
	ItimerVal = unix.Itimerval
)

// CapUserHeader matches struct __user_cap_header_struct (linux/capability.h).
type CapUserHeader struct {
	Version uint32
	Pid     int32
}

// CapUserData matches struct __user_cap_data_struct (linux/capability.h).
type CapUserData struct {
	Effective   uint32
	Permitted   uint32
	Inheritable uint32
}

// Timezone matches struct timezone (linux/time.h).
type Timezone struct {
	MinutesWest int32
	DstTime     int32
}

// ItimerSpec matches struct itimerspec (linux/time.h).
type ItimerSpec struct {
	Interval Timespec
	Value    Timespec
}

// SchedParam matches struct sched_param (linux/sched.h).
type SchedParam struct {
	Priority int32
}

// SchedAttr matches struct sched_attr (linux/sched/types.h), the argument
// to sched_setattr/sched_getattr.
type SchedAttr struct {
	Size            uint32
	Policy          uint32
	Flags           uint64
	Nice            int32
	Priority        uint32
	Runtime         uint64
	Deadline        uint64
	Period          uint64
	UtilMin         uint32
	UtilMax         uint32
}

// CloneArgs matches struct clone_args (linux/sched.h), the argument to
// clone3.
type CloneArgs struct {
	Flags      uint64
	Pidfd      uint64
	ChildTid   uint64
	ParentTid  uint64
	ExitSignal uint64
	Stack      uint64
	StackSize  uint64
	Tls        uint64
	SetTid     uint64
	SetTidSize uint64
	Cgroup     uint64
}

// MountAttr matches struct mount_attr (linux/mount.h), the argument to
// mount_setattr.
type MountAttr struct {
	AttrSet   uint64
	AttrClr   uint64
	Propagation uint64
	UserNsFd  uint64
}

// MntIdReq matches struct mnt_id_req (linux/mount.h), the argument to
// statmount/listmount.
type MntIdReq struct {
	Size   uint32
	Spare  uint32
	MntID  uint64
	Param  uint64
}

// Rseq matches struct rseq (linux/rseq.h) used by the rseq(2) syscall. Its
// trailing fields are fixed-size in the kernel ABI as shipped (the
// extensible "flexible" portion lives beyond sizeof(struct rseq) via the
// rseq_len argument, which this module's decode of rseq reports as an
// opaque raw size rather than attempting to interpret kernel-version-
// specific extensions — see DESIGN.md Open Question on variable-sized
// record header sizing).
type Rseq struct {
	CPUID           uint32
	CPUIDStart      uint32
	Flags           uint32
	NodeID          uint32
	MmCid           uint32
	_               [4]byte // padding to match the kernel's __rseq_pad
}

// Cachestat matches struct cachestat (linux/mman.h), cachestat(2)'s output.
type Cachestat struct {
	NrCache           uint64
	NrDirty           uint64
	NrWriteback       uint64
	NrEvicted         uint64
	NrRecentlyEvicted uint64
}

// CachestatRange matches struct cachestat_range (linux/mman.h), cachestat(2)'s input.
type CachestatRange struct {
	Off uint64
	Len uint64
}

// Statmount matches the fixed-header prefix of struct statmount
// (linux/mount.h); the trailing string table is the flexible array whose
// byte length is given by the syscall's size argument. See
// remote.ReadVariableSized.
type Statmount struct {
	Size             uint32
	Spare1           uint32
	MntID            uint64
	MntParentID      uint64
	MntIDOld         uint32
	MntParentIDOld   uint32
	MntAttr          uint64
	MntPropagation   uint64
	MntPeerGroup     uint64
	MntMaster        uint64
	PropagateFrom    uint64
	MntRoot          uint32
	MntPoint         uint32
	MntOptsStart     uint32
	MntOptsEnd       uint32
}

// Ustat matches struct ustat (linux/types.h), ustat(2)'s output.
type Ustat struct {
	TFree  int32
	TInode uint64
	FName  [6]byte
	FPack  [6]byte
}

// Statx matches struct statx (linux/stat.h).
type Statx struct {
	Mask           uint32
	Blksize        uint32
	Attributes     uint64
	Nlink          uint32
	UID            uint32
	GID            uint32
	Mode           uint16
	_              uint16
	Ino            uint64
	Size           uint64
	Blocks         uint64
	AttributesMask uint64
	Atime          StatxTimestamp
	Btime          StatxTimestamp
	Ctime          StatxTimestamp
	Mtime          StatxTimestamp
	RdevMajor      uint32
	RdevMinor      uint32
	DevMajor       uint32
	DevMinor       uint32
	MntID          uint64
	DioMemAlign    uint32
	DioOffsetAlign uint32
}

// StatxTimestamp matches struct statx_timestamp (linux/stat.h).
type StatxTimestamp struct {
	Sec  int64
	Nsec uint32
	_    int32
}
