package syscall

import "github.com/nestybox/go-syscall-inspect/arch"

// UnknownRaw is the fallback RawArgs for a syscall number absent from the
// table: every architecture's ABI gives up to six argument registers, so
// all six are captured verbatim and left for the caller to interpret.
// Per spec.md, this is not an error: an unrecognized number is expected
// and common (new syscalls ship on new kernels faster than decoders for
// them), so it always succeeds.
type UnknownRaw struct {
	Number uint64
	Args   [6]uint64
}

func (UnknownRaw) SyscallName() string { return "unknown" }

// UnknownEntry is the EntryArgs counterpart: unknown syscalls have no
// entry-time decoding, so it just wraps the raw record.
type UnknownEntry struct {
	raw UnknownRaw
}

func (UnknownEntry) SyscallName() string { return "unknown" }
func (e UnknownEntry) Raw() RawArgs      { return e.raw }

// UnknownNumber returns the syscall number an UnknownEntry was captured
// for, read back from its wrapped raw record.
func (e UnknownEntry) UnknownNumber() uint64 { return e.raw.Number }

func unknownRaw(regs arch.Registers) RawArgs {
	var r UnknownRaw
	r.Number = regs.SyscallNumber()
	for i := range r.Args {
		r.Args[i] = regs.Arg(i)
	}
	return r
}

func unknownEntry(raw RawArgs) EntryArgs {
	ur, ok := raw.(UnknownRaw)
	if !ok {
		// A recognized syscall's Raw type reached here only if its table
		// row declares no entry decoder at all; treat it as its own
		// trivial entry wrapper instead of panicking mid-trace.
		return genericEntry{raw: raw}
	}
	return UnknownEntry{raw: ur}
}

// genericEntry is used for a table row whose Entry list is empty (a
// syscall with no arguments worth decoding past raw registers, like
// getpid): EntryArgs with no decoded fields beyond the raw record.
type genericEntry struct {
	raw RawArgs
}

func (e genericEntry) SyscallName() string { return e.raw.SyscallName() }
func (e genericEntry) Raw() RawArgs        { return e.raw }
