package syscall

import "github.com/nestybox/go-syscall-inspect/arch"

// Shape names the fixed vocabulary of argument-decoding rules from
// spec.md §4.C.4. internal/gen switches on Shape to choose which remote
// reader primitive a generated field uses.
type Shape int

const (
	ShapeInt        Shape = iota // integer (fd, mode, flag word, size, offset, id, ...): copy raw slot
	ShapeFixed                   // fixed-layout kernel struct: remote.ReadFixed
	ShapePath                    // NUL-terminated path: remote.ReadPath
	ShapeCString                 // NUL-terminated byte string: remote.ReadCString
	ShapeStringArray             // null-terminated pointer array of strings (argv, envp)
	ShapeCounted                 // Seq<T> @ counted_by(sibling)
	ShapePair                    // two-element fixed-size array
	ShapeVarSized                // variable-sized record (sibling gives byte size)
	ShapeOpaqueAddr              // not-yet-implemented / deliberately opaque pointer
)

// ArgSpec describes one argument slot: its name, its raw (register-level)
// type, and — for entry/exit arg lists — how it is decoded.
type ArgSpec struct {
	Name  string
	Shape Shape
	// GoType is the Go type the decoded field takes (e.g. "string",
	// "ktype.Stat", "[]string"). For ShapeInt it is the raw integer type
	// (e.g. "int32", "uint64"); for ShapeCounted/ShapeVarSized/ShapePair
	// it names the *element* type.
	GoType string
	// CountedBy names the sibling raw-arg field supplying a count/size,
	// for ShapeCounted and ShapeVarSized. The sentinel "syscall_result"
	// means the count is the syscall's own result (spec.md's
	// on_success_counted_by(syscall_result), used by read/readlink).
	CountedBy string
	// Nullable means a null raw pointer decodes to "absent" with no read.
	Nullable bool
}

// ResultSpec describes a syscall's return value.
type ResultSpec struct {
	// GoType is "Unit" for syscalls that never return a value (the
	// process-exit family); otherwise a signed or unsigned integer type
	// name. Unit disables the usual error-on-negative check.
	GoType string
}

// TableEntry is one row of the declarative syscall table: the
// single source of truth internal/gen expands into the three generated
// record types plus the dispatch registrations in syscall/decode.
type TableEntry struct {
	Name       string
	Raw        []ArgSpec
	Entry      []ArgSpec
	Result     ResultSpec
	Exit       []ArgSpec
	Categories Category
	// Archs maps each architecture this entry is defined for to its
	// syscall number on that architecture. A syscall whose signature
	// varies across architectures (clone) appears as two TableEntry
	// values with disjoint Archs sets and the same Name.
	Archs map[arch.ID]uint64
}

// Table is the declarative syscall table described in spec.md §4.C.1. It is
// internal/gen's input; the committed output it drives lives in
// syscall/decode. Syscalls not listed here decode as UnknownRaw, per
// spec.md's invariant that an unrecognized number always falls through
// rather than erroring.
//
// This is the representative subset SPEC_FULL.md names: every argument
// shape in Shape's vocabulary and the x86_64 vs arm64/riscv64 clone
// divergence each have at least one entry exercising them. Every Category
// tag except IPC and Stat appears on at least one row.
var Table = []TableEntry{
	{
		Name: "read",
		Raw: []ArgSpec{
			{Name: "fd", Shape: ShapeInt, GoType: "int32"},
			{Name: "buf", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "count", Shape: ShapeInt, GoType: "uint64"},
		},
		Entry: []ArgSpec{
			{Name: "fd", Shape: ShapeInt, GoType: "int32"},
			{Name: "count", Shape: ShapeInt, GoType: "uint64"},
		},
		Result: ResultSpec{GoType: "int64"},
		Exit: []ArgSpec{
			{Name: "buf", Shape: ShapeCounted, GoType: "byte", CountedBy: "syscall_result"},
		},
		Categories: Desc,
		Archs:      map[arch.ID]uint64{arch.X86_64: 0, arch.Arm64: 63, arch.RiscV64: 63},
	},
	{
		Name: "write",
		Raw: []ArgSpec{
			{Name: "fd", Shape: ShapeInt, GoType: "int32"},
			{Name: "buf", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "count", Shape: ShapeInt, GoType: "uint64"},
		},
		Entry: []ArgSpec{
			{Name: "fd", Shape: ShapeInt, GoType: "int32"},
			{Name: "buf", Shape: ShapeCounted, GoType: "byte", CountedBy: "count"},
			{Name: "count", Shape: ShapeInt, GoType: "uint64"},
		},
		Result:     ResultSpec{GoType: "int64"},
		Categories: Desc,
		Archs:      map[arch.ID]uint64{arch.X86_64: 1, arch.Arm64: 64, arch.RiscV64: 64},
	},
	{
		Name: "openat",
		Raw: []ArgSpec{
			{Name: "dirfd", Shape: ShapeInt, GoType: "int32"},
			{Name: "pathname", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "flags", Shape: ShapeInt, GoType: "int32"},
			{Name: "mode", Shape: ShapeInt, GoType: "uint32"},
		},
		Entry: []ArgSpec{
			{Name: "dirfd", Shape: ShapeInt, GoType: "int32"},
			{Name: "pathname", Shape: ShapePath, GoType: "string"},
			{Name: "flags", Shape: ShapeInt, GoType: "int32"},
			{Name: "mode", Shape: ShapeInt, GoType: "uint32"},
		},
		Result:     ResultSpec{GoType: "int32"},
		Categories: Desc | File,
		Archs:      map[arch.ID]uint64{arch.X86_64: 257, arch.Arm64: 56, arch.RiscV64: 56},
	},
	{
		Name: "openat2",
		Raw: []ArgSpec{
			{Name: "dirfd", Shape: ShapeInt, GoType: "int32"},
			{Name: "pathname", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "how", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "size", Shape: ShapeInt, GoType: "uint64"},
		},
		Entry: []ArgSpec{
			{Name: "dirfd", Shape: ShapeInt, GoType: "int32"},
			{Name: "pathname", Shape: ShapePath, GoType: "string"},
			{Name: "how", Shape: ShapeFixed, GoType: "ktype.OpenHow"},
		},
		Result:     ResultSpec{GoType: "int32"},
		Categories: Desc | File,
		Archs:      map[arch.ID]uint64{arch.X86_64: 437, arch.Arm64: 437, arch.RiscV64: 437},
	},
	{
		Name: "close",
		Raw: []ArgSpec{
			{Name: "fd", Shape: ShapeInt, GoType: "int32"},
		},
		Entry: []ArgSpec{
			{Name: "fd", Shape: ShapeInt, GoType: "int32"},
		},
		Result:     ResultSpec{GoType: "int32"},
		Categories: Desc,
		Archs:      map[arch.ID]uint64{arch.X86_64: 3, arch.Arm64: 57, arch.RiscV64: 57},
	},
	{
		Name: "close_range",
		Raw: []ArgSpec{
			{Name: "first", Shape: ShapeInt, GoType: "uint32"},
			{Name: "last", Shape: ShapeInt, GoType: "uint32"},
			{Name: "flags", Shape: ShapeInt, GoType: "uint32"},
		},
		Entry: []ArgSpec{
			{Name: "first", Shape: ShapeInt, GoType: "uint32"},
			{Name: "last", Shape: ShapeInt, GoType: "uint32"},
			{Name: "flags", Shape: ShapeInt, GoType: "uint32"},
		},
		Result:     ResultSpec{GoType: "int32"},
		Categories: Desc,
		Archs:      map[arch.ID]uint64{arch.X86_64: 436, arch.Arm64: 436, arch.RiscV64: 436},
	},
	{
		Name: "fstat",
		Raw: []ArgSpec{
			{Name: "fd", Shape: ShapeInt, GoType: "int32"},
			{Name: "statbuf", Shape: ShapeInt, GoType: "uintptr"},
		},
		Entry: []ArgSpec{
			{Name: "fd", Shape: ShapeInt, GoType: "int32"},
		},
		Result: ResultSpec{GoType: "int32"},
		Exit: []ArgSpec{
			{Name: "statbuf", Shape: ShapeFixed, GoType: "ktype.Stat"},
		},
		Categories: Desc | FStat | StatLike,
		Archs:      map[arch.ID]uint64{arch.X86_64: 5, arch.Arm64: 80, arch.RiscV64: 80},
	},
	{
		Name: "lstat",
		Raw: []ArgSpec{
			{Name: "pathname", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "statbuf", Shape: ShapeInt, GoType: "uintptr"},
		},
		Entry: []ArgSpec{
			{Name: "pathname", Shape: ShapePath, GoType: "string"},
		},
		Result: ResultSpec{GoType: "int32"},
		Exit: []ArgSpec{
			{Name: "statbuf", Shape: ShapeFixed, GoType: "ktype.Stat"},
		},
		Categories: File | LStat | StatLike,
		// lstat(2) was removed from the syscall table on arm64/riscv64 in
		// favor of newfstatat; only x86_64 still has it as a distinct
		// number.
		Archs: map[arch.ID]uint64{arch.X86_64: 6},
	},
	{
		Name: "newfstatat",
		Raw: []ArgSpec{
			{Name: "dirfd", Shape: ShapeInt, GoType: "int32"},
			{Name: "pathname", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "statbuf", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "flags", Shape: ShapeInt, GoType: "int32"},
		},
		Entry: []ArgSpec{
			{Name: "dirfd", Shape: ShapeInt, GoType: "int32"},
			{Name: "pathname", Shape: ShapePath, GoType: "string"},
			{Name: "flags", Shape: ShapeInt, GoType: "int32"},
		},
		Result: ResultSpec{GoType: "int32"},
		Exit: []ArgSpec{
			{Name: "statbuf", Shape: ShapeFixed, GoType: "ktype.Stat"},
		},
		Categories: Desc | File | FStat | StatLike,
		Archs:      map[arch.ID]uint64{arch.X86_64: 262, arch.Arm64: 79, arch.RiscV64: 79},
	},
	{
		Name: "statx",
		Raw: []ArgSpec{
			{Name: "dirfd", Shape: ShapeInt, GoType: "int32"},
			{Name: "pathname", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "flags", Shape: ShapeInt, GoType: "int32"},
			{Name: "mask", Shape: ShapeInt, GoType: "uint32"},
			{Name: "statxbuf", Shape: ShapeInt, GoType: "uintptr"},
		},
		Entry: []ArgSpec{
			{Name: "dirfd", Shape: ShapeInt, GoType: "int32"},
			{Name: "pathname", Shape: ShapePath, GoType: "string"},
			{Name: "flags", Shape: ShapeInt, GoType: "int32"},
			{Name: "mask", Shape: ShapeInt, GoType: "uint32"},
		},
		Result: ResultSpec{GoType: "int32"},
		Exit: []ArgSpec{
			{Name: "statxbuf", Shape: ShapeFixed, GoType: "ktype.Statx"},
		},
		Categories: Desc | File | FStat | StatLike,
		Archs:      map[arch.ID]uint64{arch.X86_64: 332, arch.Arm64: 291, arch.RiscV64: 291},
	},
	{
		Name: "statfs",
		Raw: []ArgSpec{
			{Name: "pathname", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "buf", Shape: ShapeInt, GoType: "uintptr"},
		},
		Entry: []ArgSpec{
			{Name: "pathname", Shape: ShapePath, GoType: "string"},
		},
		Result: ResultSpec{GoType: "int32"},
		Exit: []ArgSpec{
			{Name: "buf", Shape: ShapeFixed, GoType: "ktype.Statfs"},
		},
		Categories: File | StatFs | StatFsLike,
		Archs:      map[arch.ID]uint64{arch.X86_64: 137, arch.Arm64: 43, arch.RiscV64: 43},
	},
	{
		Name: "fstatfs",
		Raw: []ArgSpec{
			{Name: "fd", Shape: ShapeInt, GoType: "int32"},
			{Name: "buf", Shape: ShapeInt, GoType: "uintptr"},
		},
		Entry: []ArgSpec{
			{Name: "fd", Shape: ShapeInt, GoType: "int32"},
		},
		Result: ResultSpec{GoType: "int32"},
		Exit: []ArgSpec{
			{Name: "buf", Shape: ShapeFixed, GoType: "ktype.Statfs"},
		},
		Categories: Desc | FStatFs | StatFsLike,
		Archs:      map[arch.ID]uint64{arch.X86_64: 138, arch.Arm64: 44, arch.RiscV64: 44},
	},
	{
		Name: "getcwd",
		Raw: []ArgSpec{
			{Name: "buf", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "size", Shape: ShapeInt, GoType: "uint64"},
		},
		Entry: []ArgSpec{
			{Name: "size", Shape: ShapeInt, GoType: "uint64"},
		},
		Result: ResultSpec{GoType: "int64"},
		Exit: []ArgSpec{
			{Name: "buf", Shape: ShapePath, GoType: "string"},
		},
		Categories: File,
		Archs:      map[arch.ID]uint64{arch.X86_64: 79, arch.Arm64: 17, arch.RiscV64: 17},
	},
	{
		Name: "chdir",
		Raw: []ArgSpec{
			{Name: "pathname", Shape: ShapeInt, GoType: "uintptr"},
		},
		Entry: []ArgSpec{
			{Name: "pathname", Shape: ShapePath, GoType: "string"},
		},
		Result:     ResultSpec{GoType: "int32"},
		Categories: File,
		Archs:      map[arch.ID]uint64{arch.X86_64: 80, arch.Arm64: 49, arch.RiscV64: 49},
	},
	{
		Name: "mkdirat",
		Raw: []ArgSpec{
			{Name: "dirfd", Shape: ShapeInt, GoType: "int32"},
			{Name: "pathname", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "mode", Shape: ShapeInt, GoType: "uint32"},
		},
		Entry: []ArgSpec{
			{Name: "dirfd", Shape: ShapeInt, GoType: "int32"},
			{Name: "pathname", Shape: ShapePath, GoType: "string"},
			{Name: "mode", Shape: ShapeInt, GoType: "uint32"},
		},
		Result:     ResultSpec{GoType: "int32"},
		Categories: Desc | File,
		Archs:      map[arch.ID]uint64{arch.X86_64: 258, arch.Arm64: 34, arch.RiscV64: 34},
	},
	{
		Name: "unlinkat",
		Raw: []ArgSpec{
			{Name: "dirfd", Shape: ShapeInt, GoType: "int32"},
			{Name: "pathname", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "flags", Shape: ShapeInt, GoType: "int32"},
		},
		Entry: []ArgSpec{
			{Name: "dirfd", Shape: ShapeInt, GoType: "int32"},
			{Name: "pathname", Shape: ShapePath, GoType: "string"},
			{Name: "flags", Shape: ShapeInt, GoType: "int32"},
		},
		Result:     ResultSpec{GoType: "int32"},
		Categories: Desc | File,
		Archs:      map[arch.ID]uint64{arch.X86_64: 263, arch.Arm64: 35, arch.RiscV64: 35},
	},
	{
		Name: "renameat2",
		Raw: []ArgSpec{
			{Name: "olddirfd", Shape: ShapeInt, GoType: "int32"},
			{Name: "oldpath", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "newdirfd", Shape: ShapeInt, GoType: "int32"},
			{Name: "newpath", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "flags", Shape: ShapeInt, GoType: "uint32"},
		},
		Entry: []ArgSpec{
			{Name: "olddirfd", Shape: ShapeInt, GoType: "int32"},
			{Name: "oldpath", Shape: ShapePath, GoType: "string"},
			{Name: "newdirfd", Shape: ShapeInt, GoType: "int32"},
			{Name: "newpath", Shape: ShapePath, GoType: "string"},
			{Name: "flags", Shape: ShapeInt, GoType: "uint32"},
		},
		Result:     ResultSpec{GoType: "int32"},
		Categories: Desc | File,
		Archs:      map[arch.ID]uint64{arch.X86_64: 316, arch.Arm64: 276, arch.RiscV64: 276},
	},
	{
		Name: "symlinkat",
		Raw: []ArgSpec{
			{Name: "target", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "newdirfd", Shape: ShapeInt, GoType: "int32"},
			{Name: "linkpath", Shape: ShapeInt, GoType: "uintptr"},
		},
		Entry: []ArgSpec{
			{Name: "target", Shape: ShapePath, GoType: "string"},
			{Name: "newdirfd", Shape: ShapeInt, GoType: "int32"},
			{Name: "linkpath", Shape: ShapePath, GoType: "string"},
		},
		Result:     ResultSpec{GoType: "int32"},
		Categories: Desc | File,
		Archs:      map[arch.ID]uint64{arch.X86_64: 266, arch.Arm64: 36, arch.RiscV64: 36},
	},
	{
		Name: "readlinkat",
		Raw: []ArgSpec{
			{Name: "dirfd", Shape: ShapeInt, GoType: "int32"},
			{Name: "pathname", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "buf", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "bufsiz", Shape: ShapeInt, GoType: "uint64"},
		},
		Entry: []ArgSpec{
			{Name: "dirfd", Shape: ShapeInt, GoType: "int32"},
			{Name: "pathname", Shape: ShapePath, GoType: "string"},
			{Name: "bufsiz", Shape: ShapeInt, GoType: "uint64"},
		},
		Result: ResultSpec{GoType: "int64"},
		Exit: []ArgSpec{
			{Name: "buf", Shape: ShapeCounted, GoType: "byte", CountedBy: "syscall_result"},
		},
		Categories: Desc | File,
		Archs:      map[arch.ID]uint64{arch.X86_64: 267, arch.Arm64: 78, arch.RiscV64: 78},
	},
	{
		Name: "execve",
		Raw: []ArgSpec{
			{Name: "pathname", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "argv", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "envp", Shape: ShapeInt, GoType: "uintptr"},
		},
		Entry: []ArgSpec{
			{Name: "pathname", Shape: ShapePath, GoType: "string"},
			{Name: "argv", Shape: ShapeStringArray, GoType: "string"},
			{Name: "envp", Shape: ShapeStringArray, GoType: "string"},
		},
		Result:     ResultSpec{GoType: "int32"},
		Categories: File | Process,
		Archs:      map[arch.ID]uint64{arch.X86_64: 59, arch.Arm64: 221, arch.RiscV64: 221},
	},
	{
		Name: "execveat",
		Raw: []ArgSpec{
			{Name: "dirfd", Shape: ShapeInt, GoType: "int32"},
			{Name: "pathname", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "argv", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "envp", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "flags", Shape: ShapeInt, GoType: "int32"},
		},
		Entry: []ArgSpec{
			{Name: "dirfd", Shape: ShapeInt, GoType: "int32"},
			{Name: "pathname", Shape: ShapePath, GoType: "string"},
			{Name: "argv", Shape: ShapeStringArray, GoType: "string"},
			{Name: "envp", Shape: ShapeStringArray, GoType: "string"},
			{Name: "flags", Shape: ShapeInt, GoType: "int32"},
		},
		Result:     ResultSpec{GoType: "int32"},
		Categories: Desc | File | Process,
		Archs:      map[arch.ID]uint64{arch.X86_64: 322, arch.Arm64: 281, arch.RiscV64: 281},
	},
	{
		// clone's argument order diverges across architectures: on
		// x86_64 it is (flags, stack, parent_tid, child_tid, tls); on
		// arm64/riscv64 it is (flags, stack, parent_tid, tls, child_tid).
		// This is the x86_64 variant, per spec.md's end-to-end scenario.
		Name: "clone",
		Raw: []ArgSpec{
			{Name: "flags", Shape: ShapeInt, GoType: "uint64"},
			{Name: "stack", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "parent_tid", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "child_tid", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "tls", Shape: ShapeInt, GoType: "uintptr"},
		},
		Entry: []ArgSpec{
			{Name: "flags", Shape: ShapeInt, GoType: "uint64"},
			{Name: "stack", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "parent_tid", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "child_tid", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "tls", Shape: ShapeInt, GoType: "uintptr"},
		},
		Result:     ResultSpec{GoType: "int32"},
		Categories: Process,
		Archs:      map[arch.ID]uint64{arch.X86_64: 56},
	},
	{
		// arm64/riscv64 variant: child_tid and tls swap slots 3 and 4
		// relative to the x86_64 variant above.
		Name: "clone",
		Raw: []ArgSpec{
			{Name: "flags", Shape: ShapeInt, GoType: "uint64"},
			{Name: "stack", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "parent_tid", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "tls", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "child_tid", Shape: ShapeInt, GoType: "uintptr"},
		},
		Entry: []ArgSpec{
			{Name: "flags", Shape: ShapeInt, GoType: "uint64"},
			{Name: "stack", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "parent_tid", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "tls", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "child_tid", Shape: ShapeInt, GoType: "uintptr"},
		},
		Result:     ResultSpec{GoType: "int32"},
		Categories: Process,
		Archs:      map[arch.ID]uint64{arch.Arm64: 220, arch.RiscV64: 220},
	},
	{
		Name: "clone3",
		Raw: []ArgSpec{
			{Name: "cl_args", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "size", Shape: ShapeInt, GoType: "uint64"},
		},
		Entry: []ArgSpec{
			{Name: "cl_args", Shape: ShapeFixed, GoType: "ktype.CloneArgs"},
		},
		Result:     ResultSpec{GoType: "int32"},
		Categories: Process,
		Archs:      map[arch.ID]uint64{arch.X86_64: 435, arch.Arm64: 435, arch.RiscV64: 435},
	},
	{
		Name: "fork",
		Result:     ResultSpec{GoType: "int32"},
		Categories: Process,
		Archs:      map[arch.ID]uint64{arch.X86_64: 57},
	},
	{
		Name: "vfork",
		Result:     ResultSpec{GoType: "int32"},
		Categories: Process,
		Archs:      map[arch.ID]uint64{arch.X86_64: 58},
	},
	{
		Name: "wait4",
		Raw: []ArgSpec{
			{Name: "pid", Shape: ShapeInt, GoType: "int32"},
			{Name: "wstatus", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "options", Shape: ShapeInt, GoType: "int32"},
			{Name: "rusage", Shape: ShapeInt, GoType: "uintptr"},
		},
		Entry: []ArgSpec{
			{Name: "pid", Shape: ShapeInt, GoType: "int32"},
			{Name: "options", Shape: ShapeInt, GoType: "int32"},
		},
		Result: ResultSpec{GoType: "int32"},
		Exit: []ArgSpec{
			{Name: "wstatus", Shape: ShapeFixed, GoType: "int32"},
			{Name: "rusage", Shape: ShapeFixed, GoType: "ktype.Rusage", Nullable: true},
		},
		Categories: Process,
		Archs:      map[arch.ID]uint64{arch.X86_64: 61, arch.Arm64: 260, arch.RiscV64: 260},
	},
	{
		Name:       "exit",
		Raw:        []ArgSpec{{Name: "status", Shape: ShapeInt, GoType: "int32"}},
		Entry:      []ArgSpec{{Name: "status", Shape: ShapeInt, GoType: "int32"}},
		Result:     ResultSpec{GoType: "Unit"},
		Categories: Process,
		Archs:      map[arch.ID]uint64{arch.X86_64: 60, arch.Arm64: 93, arch.RiscV64: 93},
	},
	{
		Name:       "exit_group",
		Raw:        []ArgSpec{{Name: "status", Shape: ShapeInt, GoType: "int32"}},
		Entry:      []ArgSpec{{Name: "status", Shape: ShapeInt, GoType: "int32"}},
		Result:     ResultSpec{GoType: "Unit"},
		Categories: Process,
		Archs:      map[arch.ID]uint64{arch.X86_64: 231, arch.Arm64: 94, arch.RiscV64: 94},
	},
	{
		Name: "kill",
		Raw: []ArgSpec{
			{Name: "pid", Shape: ShapeInt, GoType: "int32"},
			{Name: "sig", Shape: ShapeInt, GoType: "int32"},
		},
		Entry: []ArgSpec{
			{Name: "pid", Shape: ShapeInt, GoType: "int32"},
			{Name: "sig", Shape: ShapeInt, GoType: "int32"},
		},
		Result:     ResultSpec{GoType: "int32"},
		Categories: Process | Signal,
		Archs:      map[arch.ID]uint64{arch.X86_64: 62, arch.Arm64: 129, arch.RiscV64: 129},
	},
	{
		Name: "tgkill",
		Raw: []ArgSpec{
			{Name: "tgid", Shape: ShapeInt, GoType: "int32"},
			{Name: "tid", Shape: ShapeInt, GoType: "int32"},
			{Name: "sig", Shape: ShapeInt, GoType: "int32"},
		},
		Entry: []ArgSpec{
			{Name: "tgid", Shape: ShapeInt, GoType: "int32"},
			{Name: "tid", Shape: ShapeInt, GoType: "int32"},
			{Name: "sig", Shape: ShapeInt, GoType: "int32"},
		},
		Result:     ResultSpec{GoType: "int32"},
		Categories: Process | Signal,
		Archs:      map[arch.ID]uint64{arch.X86_64: 234, arch.Arm64: 131, arch.RiscV64: 131},
	},
	{
		Name: "rt_sigaction",
		Raw: []ArgSpec{
			{Name: "signum", Shape: ShapeInt, GoType: "int32"},
			{Name: "act", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "oldact", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "sigsetsize", Shape: ShapeInt, GoType: "uint64"},
		},
		Entry: []ArgSpec{
			{Name: "signum", Shape: ShapeInt, GoType: "int32"},
			{Name: "act", Shape: ShapeFixed, GoType: "ktype.Sigaction", Nullable: true},
		},
		Result: ResultSpec{GoType: "int32"},
		Exit: []ArgSpec{
			{Name: "oldact", Shape: ShapeFixed, GoType: "ktype.Sigaction", Nullable: true},
		},
		Categories: Signal,
		Archs:      map[arch.ID]uint64{arch.X86_64: 13, arch.Arm64: 134, arch.RiscV64: 134},
	},
	{
		Name: "rt_sigprocmask",
		Raw: []ArgSpec{
			{Name: "how", Shape: ShapeInt, GoType: "int32"},
			{Name: "set", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "oldset", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "sigsetsize", Shape: ShapeInt, GoType: "uint64"},
		},
		Entry: []ArgSpec{
			{Name: "how", Shape: ShapeInt, GoType: "int32"},
			{Name: "set", Shape: ShapeCounted, GoType: "byte", CountedBy: "sigsetsize", Nullable: true},
		},
		Result: ResultSpec{GoType: "int32"},
		Exit: []ArgSpec{
			{Name: "oldset", Shape: ShapeCounted, GoType: "byte", CountedBy: "sigsetsize", Nullable: true},
		},
		Categories: Signal,
		Archs:      map[arch.ID]uint64{arch.X86_64: 14, arch.Arm64: 135, arch.RiscV64: 135},
	},
	{
		Name:       "rt_sigreturn",
		Result:     ResultSpec{GoType: "int64"},
		Categories: Signal,
		Archs:      map[arch.ID]uint64{arch.X86_64: 15, arch.Arm64: 139, arch.RiscV64: 139},
	},
	{
		Name: "mmap",
		Raw: []ArgSpec{
			{Name: "addr", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "length", Shape: ShapeInt, GoType: "uint64"},
			{Name: "prot", Shape: ShapeInt, GoType: "int32"},
			{Name: "flags", Shape: ShapeInt, GoType: "int32"},
			{Name: "fd", Shape: ShapeInt, GoType: "int32"},
			{Name: "offset", Shape: ShapeInt, GoType: "int64"},
		},
		Entry: []ArgSpec{
			{Name: "addr", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "length", Shape: ShapeInt, GoType: "uint64"},
			{Name: "prot", Shape: ShapeInt, GoType: "int32"},
			{Name: "flags", Shape: ShapeInt, GoType: "int32"},
			{Name: "fd", Shape: ShapeInt, GoType: "int32"},
			{Name: "offset", Shape: ShapeInt, GoType: "int64"},
		},
		Result:     ResultSpec{GoType: "int64"},
		Categories: Memory | Desc,
		Archs:      map[arch.ID]uint64{arch.X86_64: 9, arch.Arm64: 222, arch.RiscV64: 222},
	},
	{
		Name: "munmap",
		Raw: []ArgSpec{
			{Name: "addr", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "length", Shape: ShapeInt, GoType: "uint64"},
		},
		Entry: []ArgSpec{
			{Name: "addr", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "length", Shape: ShapeInt, GoType: "uint64"},
		},
		Result:     ResultSpec{GoType: "int32"},
		Categories: Memory,
		Archs:      map[arch.ID]uint64{arch.X86_64: 11, arch.Arm64: 215, arch.RiscV64: 215},
	},
	{
		Name: "mprotect",
		Raw: []ArgSpec{
			{Name: "addr", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "length", Shape: ShapeInt, GoType: "uint64"},
			{Name: "prot", Shape: ShapeInt, GoType: "int32"},
		},
		Entry: []ArgSpec{
			{Name: "addr", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "length", Shape: ShapeInt, GoType: "uint64"},
			{Name: "prot", Shape: ShapeInt, GoType: "int32"},
		},
		Result:     ResultSpec{GoType: "int32"},
		Categories: Memory,
		Archs:      map[arch.ID]uint64{arch.X86_64: 10, arch.Arm64: 226, arch.RiscV64: 226},
	},
	{
		Name: "brk",
		Raw: []ArgSpec{
			{Name: "addr", Shape: ShapeInt, GoType: "uintptr"},
		},
		Entry: []ArgSpec{
			{Name: "addr", Shape: ShapeInt, GoType: "uintptr"},
		},
		Result:     ResultSpec{GoType: "int64"},
		Categories: Memory,
		Archs:      map[arch.ID]uint64{arch.X86_64: 12, arch.Arm64: 214, arch.RiscV64: 214},
	},
	{
		Name: "socket",
		Raw: []ArgSpec{
			{Name: "domain", Shape: ShapeInt, GoType: "int32"},
			{Name: "typ", Shape: ShapeInt, GoType: "int32"},
			{Name: "protocol", Shape: ShapeInt, GoType: "int32"},
		},
		Entry: []ArgSpec{
			{Name: "domain", Shape: ShapeInt, GoType: "int32"},
			{Name: "typ", Shape: ShapeInt, GoType: "int32"},
			{Name: "protocol", Shape: ShapeInt, GoType: "int32"},
		},
		Result:     ResultSpec{GoType: "int32"},
		Categories: Desc | Network,
		Archs:      map[arch.ID]uint64{arch.X86_64: 41, arch.Arm64: 198, arch.RiscV64: 198},
	},
	{
		Name: "connect",
		Raw: []ArgSpec{
			{Name: "fd", Shape: ShapeInt, GoType: "int32"},
			{Name: "addr", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "addrlen", Shape: ShapeInt, GoType: "uint32"},
		},
		Entry: []ArgSpec{
			{Name: "fd", Shape: ShapeInt, GoType: "int32"},
			{Name: "addr", Shape: ShapeCounted, GoType: "byte", CountedBy: "addrlen"},
			{Name: "addrlen", Shape: ShapeInt, GoType: "uint32"},
		},
		Result:     ResultSpec{GoType: "int32"},
		Categories: Desc | Network,
		Archs:      map[arch.ID]uint64{arch.X86_64: 42, arch.Arm64: 203, arch.RiscV64: 203},
	},
	{
		Name: "bind",
		Raw: []ArgSpec{
			{Name: "fd", Shape: ShapeInt, GoType: "int32"},
			{Name: "addr", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "addrlen", Shape: ShapeInt, GoType: "uint32"},
		},
		Entry: []ArgSpec{
			{Name: "fd", Shape: ShapeInt, GoType: "int32"},
			{Name: "addr", Shape: ShapeCounted, GoType: "byte", CountedBy: "addrlen"},
			{Name: "addrlen", Shape: ShapeInt, GoType: "uint32"},
		},
		Result:     ResultSpec{GoType: "int32"},
		Categories: Desc | Network,
		Archs:      map[arch.ID]uint64{arch.X86_64: 49, arch.Arm64: 200, arch.RiscV64: 200},
	},
	{
		Name: "accept4",
		Raw: []ArgSpec{
			{Name: "fd", Shape: ShapeInt, GoType: "int32"},
			{Name: "addr", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "addrlen", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "flags", Shape: ShapeInt, GoType: "int32"},
		},
		Entry: []ArgSpec{
			{Name: "fd", Shape: ShapeInt, GoType: "int32"},
			{Name: "flags", Shape: ShapeInt, GoType: "int32"},
		},
		Result: ResultSpec{GoType: "int32"},
		Exit: []ArgSpec{
			{Name: "addr", Shape: ShapeCounted, GoType: "byte", CountedBy: "addrlen", Nullable: true},
		},
		Categories: Desc | Network,
		Archs:      map[arch.ID]uint64{arch.X86_64: 288, arch.Arm64: 242, arch.RiscV64: 242},
	},
	{
		Name: "sendto",
		Raw: []ArgSpec{
			{Name: "fd", Shape: ShapeInt, GoType: "int32"},
			{Name: "buf", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "length", Shape: ShapeInt, GoType: "uint64"},
			{Name: "flags", Shape: ShapeInt, GoType: "int32"},
			{Name: "addr", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "addrlen", Shape: ShapeInt, GoType: "uint32"},
		},
		Entry: []ArgSpec{
			{Name: "fd", Shape: ShapeInt, GoType: "int32"},
			{Name: "buf", Shape: ShapeCounted, GoType: "byte", CountedBy: "length"},
			{Name: "flags", Shape: ShapeInt, GoType: "int32"},
			{Name: "addr", Shape: ShapeCounted, GoType: "byte", CountedBy: "addrlen", Nullable: true},
		},
		Result:     ResultSpec{GoType: "int64"},
		Categories: Desc | Network,
		Archs:      map[arch.ID]uint64{arch.X86_64: 44, arch.Arm64: 206, arch.RiscV64: 206},
	},
	{
		Name: "recvfrom",
		Raw: []ArgSpec{
			{Name: "fd", Shape: ShapeInt, GoType: "int32"},
			{Name: "buf", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "length", Shape: ShapeInt, GoType: "uint64"},
			{Name: "flags", Shape: ShapeInt, GoType: "int32"},
			{Name: "addr", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "addrlen", Shape: ShapeInt, GoType: "uintptr"},
		},
		Entry: []ArgSpec{
			{Name: "fd", Shape: ShapeInt, GoType: "int32"},
			{Name: "length", Shape: ShapeInt, GoType: "uint64"},
			{Name: "flags", Shape: ShapeInt, GoType: "int32"},
		},
		Result: ResultSpec{GoType: "int64"},
		Exit: []ArgSpec{
			{Name: "buf", Shape: ShapeCounted, GoType: "byte", CountedBy: "syscall_result"},
			{Name: "addr", Shape: ShapeCounted, GoType: "byte", CountedBy: "addrlen", Nullable: true},
		},
		Categories: Desc | Network,
		Archs:      map[arch.ID]uint64{arch.X86_64: 45, arch.Arm64: 207, arch.RiscV64: 207},
	},
	{
		Name: "getsockopt",
		Raw: []ArgSpec{
			{Name: "fd", Shape: ShapeInt, GoType: "int32"},
			{Name: "level", Shape: ShapeInt, GoType: "int32"},
			{Name: "optname", Shape: ShapeInt, GoType: "int32"},
			{Name: "optval", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "optlen", Shape: ShapeInt, GoType: "uintptr"},
		},
		Entry: []ArgSpec{
			{Name: "fd", Shape: ShapeInt, GoType: "int32"},
			{Name: "level", Shape: ShapeInt, GoType: "int32"},
			{Name: "optname", Shape: ShapeInt, GoType: "int32"},
		},
		Result: ResultSpec{GoType: "int32"},
		Exit: []ArgSpec{
			{Name: "optval", Shape: ShapeCounted, GoType: "byte", CountedBy: "optlen"},
		},
		Categories: Desc | Network,
		Archs:      map[arch.ID]uint64{arch.X86_64: 55, arch.Arm64: 209, arch.RiscV64: 209},
	},
	{
		Name: "setsockopt",
		Raw: []ArgSpec{
			{Name: "fd", Shape: ShapeInt, GoType: "int32"},
			{Name: "level", Shape: ShapeInt, GoType: "int32"},
			{Name: "optname", Shape: ShapeInt, GoType: "int32"},
			{Name: "optval", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "optlen", Shape: ShapeInt, GoType: "uint32"},
		},
		Entry: []ArgSpec{
			{Name: "fd", Shape: ShapeInt, GoType: "int32"},
			{Name: "level", Shape: ShapeInt, GoType: "int32"},
			{Name: "optname", Shape: ShapeInt, GoType: "int32"},
			{Name: "optval", Shape: ShapeCounted, GoType: "byte", CountedBy: "optlen"},
		},
		Result:     ResultSpec{GoType: "int32"},
		Categories: Desc | Network,
		Archs:      map[arch.ID]uint64{arch.X86_64: 54, arch.Arm64: 208, arch.RiscV64: 208},
	},
	{
		Name: "pipe2",
		Raw: []ArgSpec{
			{Name: "pipefd", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "flags", Shape: ShapeInt, GoType: "int32"},
		},
		Entry: []ArgSpec{
			{Name: "flags", Shape: ShapeInt, GoType: "int32"},
		},
		Result: ResultSpec{GoType: "int32"},
		Exit: []ArgSpec{
			{Name: "pipefd", Shape: ShapePair, GoType: "int32"},
		},
		Categories: Desc,
		Archs:      map[arch.ID]uint64{arch.X86_64: 293, arch.Arm64: 59, arch.RiscV64: 59},
	},
	{
		Name: "dup3",
		Raw: []ArgSpec{
			{Name: "oldfd", Shape: ShapeInt, GoType: "int32"},
			{Name: "newfd", Shape: ShapeInt, GoType: "int32"},
			{Name: "flags", Shape: ShapeInt, GoType: "int32"},
		},
		Entry: []ArgSpec{
			{Name: "oldfd", Shape: ShapeInt, GoType: "int32"},
			{Name: "newfd", Shape: ShapeInt, GoType: "int32"},
			{Name: "flags", Shape: ShapeInt, GoType: "int32"},
		},
		Result:     ResultSpec{GoType: "int32"},
		Categories: Desc,
		Archs:      map[arch.ID]uint64{arch.X86_64: 292, arch.Arm64: 24, arch.RiscV64: 24},
	},
	{
		Name: "fcntl",
		Raw: []ArgSpec{
			{Name: "fd", Shape: ShapeInt, GoType: "int32"},
			{Name: "cmd", Shape: ShapeInt, GoType: "int32"},
			{Name: "arg", Shape: ShapeInt, GoType: "uint64"},
		},
		Entry: []ArgSpec{
			{Name: "fd", Shape: ShapeInt, GoType: "int32"},
			{Name: "cmd", Shape: ShapeInt, GoType: "int32"},
			{Name: "arg", Shape: ShapeInt, GoType: "uint64"},
		},
		Result:     ResultSpec{GoType: "int32"},
		Categories: Desc,
		Archs:      map[arch.ID]uint64{arch.X86_64: 72, arch.Arm64: 25, arch.RiscV64: 25},
	},
	{
		Name: "ioctl",
		Raw: []ArgSpec{
			{Name: "fd", Shape: ShapeInt, GoType: "int32"},
			{Name: "request", Shape: ShapeInt, GoType: "uint64"},
			{Name: "arg", Shape: ShapeInt, GoType: "uintptr"},
		},
		Entry: []ArgSpec{
			{Name: "fd", Shape: ShapeInt, GoType: "int32"},
			{Name: "request", Shape: ShapeInt, GoType: "uint64"},
			// ioctl's third argument's shape depends on request, which
			// this decoder does not interpret (spec.md: "does not
			// interpret syscall-specific flag bitfields"); it is
			// reported as an opaque address rather than guessed at.
			{Name: "arg", Shape: ShapeOpaqueAddr, GoType: "uintptr"},
		},
		Result:     ResultSpec{GoType: "int32"},
		Categories: Desc,
		Archs:      map[arch.ID]uint64{arch.X86_64: 16, arch.Arm64: 29, arch.RiscV64: 29},
	},
	{
		Name: "mount",
		Raw: []ArgSpec{
			{Name: "source", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "target", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "fstype", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "flags", Shape: ShapeInt, GoType: "uint64"},
			{Name: "data", Shape: ShapeInt, GoType: "uintptr"},
		},
		Entry: []ArgSpec{
			{Name: "source", Shape: ShapePath, GoType: "string", Nullable: true},
			{Name: "target", Shape: ShapePath, GoType: "string"},
			{Name: "fstype", Shape: ShapeCString, GoType: "[]byte", Nullable: true},
			{Name: "flags", Shape: ShapeInt, GoType: "uint64"},
			{Name: "data", Shape: ShapeOpaqueAddr, GoType: "uintptr"},
		},
		Result:     ResultSpec{GoType: "int32"},
		Categories: File,
		Archs:      map[arch.ID]uint64{arch.X86_64: 165, arch.Arm64: 40, arch.RiscV64: 40},
	},
	{
		Name: "umount2",
		Raw: []ArgSpec{
			{Name: "target", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "flags", Shape: ShapeInt, GoType: "int32"},
		},
		Entry: []ArgSpec{
			{Name: "target", Shape: ShapePath, GoType: "string"},
			{Name: "flags", Shape: ShapeInt, GoType: "int32"},
		},
		Result:     ResultSpec{GoType: "int32"},
		Categories: File,
		Archs:      map[arch.ID]uint64{arch.X86_64: 166, arch.Arm64: 39, arch.RiscV64: 39},
	},
	{
		Name: "pivot_root",
		Raw: []ArgSpec{
			{Name: "newroot", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "putold", Shape: ShapeInt, GoType: "uintptr"},
		},
		Entry: []ArgSpec{
			{Name: "newroot", Shape: ShapePath, GoType: "string"},
			{Name: "putold", Shape: ShapePath, GoType: "string"},
		},
		Result:     ResultSpec{GoType: "int32"},
		Categories: File,
		Archs:      map[arch.ID]uint64{arch.X86_64: 155, arch.Arm64: 41, arch.RiscV64: 41},
	},
	{
		Name: "ptrace",
		Raw: []ArgSpec{
			{Name: "request", Shape: ShapeInt, GoType: "int64"},
			{Name: "pid", Shape: ShapeInt, GoType: "int32"},
			{Name: "addr", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "data", Shape: ShapeInt, GoType: "uintptr"},
		},
		Entry: []ArgSpec{
			{Name: "request", Shape: ShapeInt, GoType: "int64"},
			{Name: "pid", Shape: ShapeInt, GoType: "int32"},
			{Name: "addr", Shape: ShapeOpaqueAddr, GoType: "uintptr"},
			{Name: "data", Shape: ShapeOpaqueAddr, GoType: "uintptr"},
		},
		Result:     ResultSpec{GoType: "int64"},
		Categories: Process,
		Archs:      map[arch.ID]uint64{arch.X86_64: 101, arch.Arm64: 117, arch.RiscV64: 117},
	},
	{
		Name:       "getpid",
		Result:     ResultSpec{GoType: "int32"},
		Categories: Pure | Process,
		Archs:      map[arch.ID]uint64{arch.X86_64: 39, arch.Arm64: 172, arch.RiscV64: 172},
	},
	{
		Name:       "gettid",
		Result:     ResultSpec{GoType: "int32"},
		Categories: Pure | Process,
		Archs:      map[arch.ID]uint64{arch.X86_64: 186, arch.Arm64: 178, arch.RiscV64: 178},
	},
	{
		Name:       "getuid",
		Result:     ResultSpec{GoType: "uint32"},
		Categories: Pure | Creds,
		Archs:      map[arch.ID]uint64{arch.X86_64: 102, arch.Arm64: 174, arch.RiscV64: 174},
	},
	{
		Name:       "geteuid",
		Result:     ResultSpec{GoType: "uint32"},
		Categories: Pure | Creds,
		Archs:      map[arch.ID]uint64{arch.X86_64: 107, arch.Arm64: 175, arch.RiscV64: 175},
	},
	{
		Name:       "getgid",
		Result:     ResultSpec{GoType: "uint32"},
		Categories: Pure | Creds,
		Archs:      map[arch.ID]uint64{arch.X86_64: 104, arch.Arm64: 176, arch.RiscV64: 176},
	},
	{
		Name:       "getegid",
		Result:     ResultSpec{GoType: "uint32"},
		Categories: Pure | Creds,
		Archs:      map[arch.ID]uint64{arch.X86_64: 108, arch.Arm64: 177, arch.RiscV64: 177},
	},
	{
		Name: "clock_gettime",
		Raw: []ArgSpec{
			{Name: "clockid", Shape: ShapeInt, GoType: "int32"},
			{Name: "tp", Shape: ShapeInt, GoType: "uintptr"},
		},
		Entry: []ArgSpec{
			{Name: "clockid", Shape: ShapeInt, GoType: "int32"},
		},
		Result: ResultSpec{GoType: "int32"},
		Exit: []ArgSpec{
			{Name: "tp", Shape: ShapeFixed, GoType: "ktype.Timespec"},
		},
		Categories: Clock,
		Archs:      map[arch.ID]uint64{arch.X86_64: 228, arch.Arm64: 113, arch.RiscV64: 113},
	},
	{
		Name: "nanosleep",
		Raw: []ArgSpec{
			{Name: "req", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "rem", Shape: ShapeInt, GoType: "uintptr"},
		},
		Entry: []ArgSpec{
			{Name: "req", Shape: ShapeFixed, GoType: "ktype.Timespec"},
		},
		Result: ResultSpec{GoType: "int32"},
		Exit: []ArgSpec{
			{Name: "rem", Shape: ShapeFixed, GoType: "ktype.Timespec", Nullable: true},
		},
		Categories: Clock,
		Archs:      map[arch.ID]uint64{arch.X86_64: 35},
	},
	{
		Name: "clock_nanosleep",
		Raw: []ArgSpec{
			{Name: "clockid", Shape: ShapeInt, GoType: "int32"},
			{Name: "flags", Shape: ShapeInt, GoType: "int32"},
			{Name: "request", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "remain", Shape: ShapeInt, GoType: "uintptr"},
		},
		Entry: []ArgSpec{
			{Name: "clockid", Shape: ShapeInt, GoType: "int32"},
			{Name: "flags", Shape: ShapeInt, GoType: "int32"},
			{Name: "request", Shape: ShapeFixed, GoType: "ktype.Timespec"},
		},
		Result: ResultSpec{GoType: "int32"},
		Exit: []ArgSpec{
			{Name: "remain", Shape: ShapeFixed, GoType: "ktype.Timespec", Nullable: true},
		},
		Categories: Clock,
		Archs:      map[arch.ID]uint64{arch.X86_64: 230, arch.Arm64: 115, arch.RiscV64: 115},
	},
	{
		Name: "futex",
		Raw: []ArgSpec{
			{Name: "uaddr", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "op", Shape: ShapeInt, GoType: "int32"},
			{Name: "val", Shape: ShapeInt, GoType: "uint32"},
			{Name: "timeout", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "uaddr2", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "val3", Shape: ShapeInt, GoType: "uint32"},
		},
		Entry: []ArgSpec{
			{Name: "uaddr", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "op", Shape: ShapeInt, GoType: "int32"},
			{Name: "val", Shape: ShapeInt, GoType: "uint32"},
			{Name: "timeout", Shape: ShapeFixed, GoType: "ktype.Timespec", Nullable: true},
		},
		Result:     ResultSpec{GoType: "int32"},
		Categories: Process,
		Archs:      map[arch.ID]uint64{arch.X86_64: 202, arch.Arm64: 98, arch.RiscV64: 98},
	},
	{
		Name: "rseq",
		Raw: []ArgSpec{
			{Name: "rseq", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "rseq_len", Shape: ShapeInt, GoType: "uint32"},
			{Name: "flags", Shape: ShapeInt, GoType: "int32"},
			{Name: "sig", Shape: ShapeInt, GoType: "uint32"},
		},
		Entry: []ArgSpec{
			{Name: "rseq", Shape: ShapeVarSized, GoType: "ktype.Rseq", CountedBy: "rseq_len"},
			{Name: "flags", Shape: ShapeInt, GoType: "int32"},
			{Name: "sig", Shape: ShapeInt, GoType: "uint32"},
		},
		Result:     ResultSpec{GoType: "int32"},
		Categories: Memory,
		Archs:      map[arch.ID]uint64{arch.X86_64: 334, arch.Arm64: 293, arch.RiscV64: 293},
	},
	{
		Name: "prctl",
		Raw: []ArgSpec{
			{Name: "option", Shape: ShapeInt, GoType: "int32"},
			{Name: "arg2", Shape: ShapeInt, GoType: "uint64"},
			{Name: "arg3", Shape: ShapeInt, GoType: "uint64"},
			{Name: "arg4", Shape: ShapeInt, GoType: "uint64"},
			{Name: "arg5", Shape: ShapeInt, GoType: "uint64"},
		},
		Entry: []ArgSpec{
			{Name: "option", Shape: ShapeInt, GoType: "int32"},
			{Name: "arg2", Shape: ShapeInt, GoType: "uint64"},
			{Name: "arg3", Shape: ShapeInt, GoType: "uint64"},
			{Name: "arg4", Shape: ShapeInt, GoType: "uint64"},
			{Name: "arg5", Shape: ShapeInt, GoType: "uint64"},
		},
		Result:     ResultSpec{GoType: "int32"},
		Categories: Process,
		Archs:      map[arch.ID]uint64{arch.X86_64: 157, arch.Arm64: 167, arch.RiscV64: 167},
	},
	{
		Name: "capget",
		Raw: []ArgSpec{
			{Name: "hdrp", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "datap", Shape: ShapeInt, GoType: "uintptr"},
		},
		Entry: []ArgSpec{
			{Name: "hdrp", Shape: ShapeFixed, GoType: "ktype.CapUserHeader"},
		},
		Result: ResultSpec{GoType: "int32"},
		Exit: []ArgSpec{
			{Name: "datap", Shape: ShapeFixed, GoType: "ktype.CapUserData", Nullable: true},
		},
		Categories: Creds,
		Archs:      map[arch.ID]uint64{arch.X86_64: 125, arch.Arm64: 90, arch.RiscV64: 90},
	},
	{
		Name: "capset",
		Raw: []ArgSpec{
			{Name: "hdrp", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "datap", Shape: ShapeInt, GoType: "uintptr"},
		},
		Entry: []ArgSpec{
			{Name: "hdrp", Shape: ShapeFixed, GoType: "ktype.CapUserHeader"},
			{Name: "datap", Shape: ShapeFixed, GoType: "ktype.CapUserData"},
		},
		Result:     ResultSpec{GoType: "int32"},
		Categories: Creds,
		Archs:      map[arch.ID]uint64{arch.X86_64: 126, arch.Arm64: 91, arch.RiscV64: 91},
	},
	{
		Name: "uname",
		Raw: []ArgSpec{
			{Name: "buf", Shape: ShapeInt, GoType: "uintptr"},
		},
		Result: ResultSpec{GoType: "int32"},
		Exit: []ArgSpec{
			{Name: "buf", Shape: ShapeFixed, GoType: "ktype.Utsname"},
		},
		Categories: Pure,
		Archs:      map[arch.ID]uint64{arch.X86_64: 63, arch.Arm64: 160, arch.RiscV64: 160},
	},
	{
		Name: "getrandom",
		Raw: []ArgSpec{
			{Name: "buf", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "buflen", Shape: ShapeInt, GoType: "uint64"},
			{Name: "flags", Shape: ShapeInt, GoType: "uint32"},
		},
		Entry: []ArgSpec{
			{Name: "buflen", Shape: ShapeInt, GoType: "uint64"},
			{Name: "flags", Shape: ShapeInt, GoType: "uint32"},
		},
		Result: ResultSpec{GoType: "int64"},
		Exit: []ArgSpec{
			{Name: "buf", Shape: ShapeCounted, GoType: "byte", CountedBy: "syscall_result"},
		},
		Categories: Memory,
		Archs:      map[arch.ID]uint64{arch.X86_64: 318, arch.Arm64: 278, arch.RiscV64: 278},
	},
	{
		Name: "getdents64",
		Raw: []ArgSpec{
			{Name: "fd", Shape: ShapeInt, GoType: "int32"},
			{Name: "dirp", Shape: ShapeInt, GoType: "uintptr"},
			{Name: "count", Shape: ShapeInt, GoType: "uint32"},
		},
		Entry: []ArgSpec{
			{Name: "fd", Shape: ShapeInt, GoType: "int32"},
			{Name: "count", Shape: ShapeInt, GoType: "uint32"},
		},
		Result: ResultSpec{GoType: "int32"},
		Exit: []ArgSpec{
			{Name: "dirp", Shape: ShapeCounted, GoType: "byte", CountedBy: "syscall_result"},
		},
		Categories: Desc,
		Archs:      map[arch.ID]uint64{arch.X86_64: 217, arch.Arm64: 61, arch.RiscV64: 61},
	},
}
