package syscall

import (
	"fmt"

	"github.com/nestybox/go-syscall-inspect/arch"
)

// RawArgs is the raw, register-only view of a syscall's arguments: one
// value per argument slot, untyped beyond the machine word. Every
// generated per-syscall Raw type in syscall/decode implements this.
type RawArgs interface {
	// SyscallName returns the table name this record was built from.
	SyscallName() string
}

// EntryArgs is a syscall's arguments after entry-time decoding: pointers
// resolved to their pointed-to values where the table says so. Every
// generated per-syscall Entry type implements this.
type EntryArgs interface {
	SyscallName() string
	// Raw returns the RawArgs this record was decoded from, so a caller
	// that only has an EntryArgs can still recover raw register values.
	Raw() RawArgs
}

// ExitArgs is the subset of a syscall's effects only observable after it
// returns (output parameters written by the kernel on success). Not every
// syscall has one; DecodeExit returns this package's noExitArgs for those
// that don't.
type ExitArgs interface {
	SyscallName() string
}

// Entry is the dispatch-time handle for one table row: the syscall's name,
// its decoded argument list, and its category bitmask.
type Entry struct {
	Name     string
	Args     EntryArgs
	Category Category
}

// Exit is the dispatch-time handle for a syscall's exit-time decode.
type Exit struct {
	Name     string
	Args     ExitArgs
	Category Category
	Result   int64
	Failed   bool
}

// rawDecoder captures the registers at syscall-entry stop into a RawArgs.
type rawDecoder func(pid int, regs arch.Registers) RawArgs

// entryDecoder expands a RawArgs into an EntryArgs, reading tracee memory
// as needed.
type entryDecoder func(pid int, raw RawArgs) EntryArgs

// exitDecoder reads a syscall's output parameters at syscall-exit stop.
// It is handed the RawArgs captured at entry (which already carries every
// pointer argument the syscall took) plus the exit stop's own register
// snapshot, from which it reads the result via Registers.Result() — the
// result lives in a different register per architecture, so the decoder
// never hardcodes rax/x0/a0 itself.
type exitDecoder func(pid int, raw RawArgs, exit arch.Registers) ExitArgs

type registration struct {
	name     string
	category Category
	numbers  map[arch.ID]uint64
	raw      rawDecoder
	entry    entryDecoder
	exit     exitDecoder
}

var (
	byNumber = map[arch.ID]map[uint64]*registration{}
	byName   = map[string]*registration{}
)

// Register adds one table row's dispatch to the registry. It is called
// from syscall/decode's generated init() functions, never directly: the
// generator is the only writer of registration call sites. Panics on a
// duplicate (arch, number) pair, since that can only mean two generated
// files disagree about the table — a generator bug, not a runtime
// condition.
func Register(name string, categories Category, numbers map[arch.ID]uint64, raw rawDecoder, entry entryDecoder, exit exitDecoder) {
	reg := &registration{name: name, category: categories, numbers: numbers, raw: raw, entry: entry, exit: exit}
	byName[name] = reg
	for a, n := range numbers {
		m, ok := byNumber[a]
		if !ok {
			m = map[uint64]*registration{}
			byNumber[a] = m
		}
		if _, dup := m[n]; dup {
			panic(fmt.Sprintf("syscall: duplicate registration for %s number %d on %s", name, n, a))
		}
		m[n] = reg
	}
}

func lookup(a arch.ID, number uint64) *registration {
	m, ok := byNumber[a]
	if !ok {
		return nil
	}
	return m[number]
}

// FromRegisters captures a syscall-entry stop's raw arguments straight
// from the tracee's register set, with no memory access. It is always
// safe to call, including for a syscall number the table does not
// recognize: unrecognized numbers decode to UnknownRaw.
func FromRegisters(pid int, regs arch.Registers) RawArgs {
	reg := lookup(regs.Arch(), regs.SyscallNumber())
	if reg == nil {
		return unknownRaw(regs)
	}
	return reg.raw(pid, regs)
}

// CaptureRawOnEntry captures registers at a syscall-entry stop and decodes
// them straight into a RawArgs, combining arch.Capture and FromRegisters
// into this package's single-call external entry point.
func CaptureRawOnEntry(pid int) (RawArgs, error) {
	regs, err := arch.Capture(pid)
	if err != nil {
		return nil, err
	}
	return FromRegisters(pid, regs), nil
}

// DecodeEntry expands a captured RawArgs into its EntryArgs, reading
// tracee memory for every argument the table marks as pointer-shaped.
// Each read that fails is reflected in the returned record rather than
// aborting the whole decode, per spec.md's partial-decode invariant. Use
// LookupCategory(raw.SyscallName()) for the syscall's category.
func DecodeEntry(raw RawArgs, pid int) EntryArgs {
	reg, ok := byName[raw.SyscallName()]
	if !ok {
		return unknownEntry(raw)
	}
	return reg.entry(pid, raw)
}

// DecodeExit reads a syscall's output parameters at its exit stop, given
// the RawArgs captured at entry and the exit stop's register snapshot (the
// syscall's result is read from it per architecture, not passed directly,
// since the result register differs across instruction sets).
func DecodeExit(raw RawArgs, pid int, exit arch.Registers) ExitArgs {
	reg, ok := byName[raw.SyscallName()]
	if !ok || reg.exit == nil {
		return noExitArgs{name: raw.SyscallName()}
	}
	return reg.exit(pid, raw, exit)
}

// DecodeEntryFull is DecodeEntry plus the category lookup a tracer almost
// always wants alongside it, bundled into the single handle a dispatch loop
// keeps around between a syscall's entry and exit stops.
func DecodeEntryFull(raw RawArgs, pid int) Entry {
	name := raw.SyscallName()
	return Entry{Name: name, Args: DecodeEntry(raw, pid), Category: LookupCategory(name)}
}

// DecodeExitFull is DecodeEntryFull's exit-stop counterpart. Result and
// Failed come from the exit stop's own register snapshot, not from the
// decoded ExitArgs: not every ExitArgs carries a SyscallResult field (decode
// has none to give for a syscall like exit_group that never returns), but
// every syscall-exit ptrace stop has a result register to read.
func DecodeExitFull(raw RawArgs, pid int, exit arch.Registers) Exit {
	name := raw.SyscallName()
	result := int64(exit.Result())
	return Exit{
		Name:     name,
		Args:     DecodeExit(raw, pid, exit),
		Category: LookupCategory(name),
		Result:   result,
		Failed:   result < 0,
	}
}

// LookupCategory returns the category bitmask for a syscall name, or 0 if
// the name is not in the registry (including "unknown").
func LookupCategory(name string) Category {
	reg, ok := byName[name]
	if !ok {
		return 0
	}
	return reg.category
}

// noExitArgs is the ExitArgs DecodeExit returns for a name with no
// registration (including "unknown") or one registered with a nil exit
// decoder (exit, exit_group). Registered syscalls without output
// parameters get decode's SimpleExit instead.
type noExitArgs struct{ name string }

func (e noExitArgs) SyscallName() string { return e.name }
