// Package decode holds the per-syscall record types and dispatch
// registrations generated from syscall/table.go by tools/gensyscalls. Each
// zz_generated_*.go file in this package is committed output, and several
// rows in them were finished by hand where the generator's templates do
// not fit (clone's per-arch types, accept4, getrandom, rt_sigprocmask, the
// shared no-argument getters), so rerunning the generator does not
// reproduce these files exactly. Nothing runs a generator at build time:
// this is ordinary Go source as far as the compiler and every caller is
// concerned.
package decode

import (
	"github.com/nestybox/go-syscall-inspect/arch"
	sysc "github.com/nestybox/go-syscall-inspect/syscall"
)

// argAt reads raw register argument i, for Raw constructors.
func argAt(regs arch.Registers, i int) uint64 { return regs.Arg(i) }

// resultType is the set of Go types syscall/table.go's Result.GoType names
// (besides "Unit", which never reaches an exit decoder: exit/exit_group
// never return, so no exit stop is ever observed for them).
type resultType interface {
	~int32 | ~int64 | ~uint32 | ~uint64
}

// SimpleExit is the ExitArgs for a syscall whose table row declares no
// exit-time pointer output: everything worth keeping past the
// syscall-exit stop is the result itself, typed per the table's
// Result.GoType.
type SimpleExit[T resultType] struct {
	name          string
	SyscallResult T
}

func (e SimpleExit[T]) SyscallName() string { return e.name }

// simpleExit builds the exitDecoder closure for a SimpleExit[T]
// registration: it just casts the exit stop's result register to T.
func simpleExit[T resultType](name string) func(pid int, r sysc.RawArgs, exit arch.Registers) sysc.ExitArgs {
	return func(pid int, r sysc.RawArgs, exit arch.Registers) sysc.ExitArgs {
		return SimpleExit[T]{name: name, SyscallResult: T(int64(exit.Result()))}
	}
}

// register is a thin rename of sysc.Register kept local to this package so
// every generated file's init() reads the same short name.
func register(name string, categories sysc.Category, numbers map[arch.ID]uint64,
	raw func(pid int, regs arch.Registers) sysc.RawArgs,
	entry func(pid int, raw sysc.RawArgs) sysc.EntryArgs,
	exit func(pid int, raw sysc.RawArgs, exit arch.Registers) sysc.ExitArgs) {
	sysc.Register(name, categories, numbers, raw, entry, exit)
}
