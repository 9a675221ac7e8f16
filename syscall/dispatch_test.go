package syscall

import (
	"testing"

	"github.com/nestybox/go-syscall-inspect/arch"
)

// fakeRegisters lets syscall-package tests exercise dispatch without a real
// ptrace stop: it is a plain positional view over a fixed argument array,
// the same shape arch.Registers gives a real capture.
type fakeRegisters struct {
	id     arch.ID
	number uint64
	args   [6]uint64
	result uint64
}

func (r fakeRegisters) Arch() arch.ID         { return r.id }
func (r fakeRegisters) SyscallNumber() uint64 { return r.number }
func (r fakeRegisters) Arg(i int) uint64      { return r.args[i] }
func (r fakeRegisters) Result() uint64        { return r.result }

type testRaw struct{ a uint64 }

func (testRaw) SyscallName() string { return "testcall" }

type testEntry struct{ raw testRaw }

func (testEntry) SyscallName() string { return "testcall" }
func (e testEntry) Raw() RawArgs      { return e.raw }

type testExit struct{ ok bool }

func (testExit) SyscallName() string { return "testcall" }

func TestRegister_DispatchRoundTrip(t *testing.T) {
	const testArch = arch.ID(200) // well outside the real IDs, avoids clashing with decode's registrations
	Register("testcall", Process, map[arch.ID]uint64{testArch: 9001},
		func(pid int, regs arch.Registers) RawArgs { return testRaw{a: regs.Arg(0)} },
		func(pid int, raw RawArgs) EntryArgs { return testEntry{raw: raw.(testRaw)} },
		func(pid int, raw RawArgs, exit arch.Registers) ExitArgs { return testExit{ok: int64(exit.Result()) >= 0} })

	regs := fakeRegisters{id: testArch, number: 9001, args: [6]uint64{42}}

	raw := FromRegisters(1, regs)
	tr, ok := raw.(testRaw)
	if !ok || tr.a != 42 {
		t.Fatalf("FromRegisters = %#v, want testRaw{a: 42}", raw)
	}

	entry := DecodeEntry(raw, 1)
	if cat := LookupCategory(raw.SyscallName()); cat != Process {
		t.Fatalf("category = %v, want Process", cat)
	}
	te, ok := entry.(testEntry)
	if !ok || te.raw.a != 42 {
		t.Fatalf("DecodeEntry = %#v, want testEntry wrapping a=42", entry)
	}

	exitRegs := fakeRegisters{id: testArch, number: 9001, result: 0}
	exit := DecodeExit(raw, 1, exitRegs)
	ex, ok := exit.(testExit)
	if !ok || !ex.ok {
		t.Fatalf("DecodeExit = %#v, want testExit{ok: true}", exit)
	}

	if got := LookupCategory("testcall"); got != Process {
		t.Fatalf("LookupCategory = %v, want Process", got)
	}
}

func TestRegister_DuplicateNumberPanics(t *testing.T) {
	const testArch = arch.ID(201)
	Register("dupfirst", Pure, map[arch.ID]uint64{testArch: 7777}, nil, nil, nil)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic registering a duplicate (arch, number) pair")
		}
	}()
	Register("dupsecond", Pure, map[arch.ID]uint64{testArch: 7777}, nil, nil, nil)
}

func TestFromRegisters_UnknownNumberFallsBack(t *testing.T) {
	regs := fakeRegisters{id: arch.X86_64, number: 0xDEADBEEF, args: [6]uint64{1, 2, 3, 4, 5, 6}}
	raw := FromRegisters(1, regs)
	ur, ok := raw.(UnknownRaw)
	if !ok {
		t.Fatalf("FromRegisters for unregistered number = %#v, want UnknownRaw", raw)
	}
	if ur.Number != 0xDEADBEEF {
		t.Fatalf("UnknownRaw.Number = %d, want 0xDEADBEEF", ur.Number)
	}
	if ur.Args != [6]uint64{1, 2, 3, 4, 5, 6} {
		t.Fatalf("UnknownRaw.Args = %v, want [1 2 3 4 5 6]", ur.Args)
	}

	entry := DecodeEntry(raw, 1)
	if cat := LookupCategory(raw.SyscallName()); cat != 0 {
		t.Fatalf("category for unknown = %v, want 0", cat)
	}
	ue, ok := entry.(UnknownEntry)
	if !ok || ue.UnknownNumber() != 0xDEADBEEF {
		t.Fatalf("DecodeEntry for unknown = %#v", entry)
	}
}
