package syscall

import (
	"testing"

	"github.com/nestybox/go-syscall-inspect/arch"
)

// TestSYSConstants_MatchTable_Amd64 checks the committed SYS_<NAME>
// constants agree with Table's own x86_64 numbers for a few representative
// rows, including geteuid and getegid. Only x86_64 is compared; the arm64
// and riscv64 constants are not checked here.
func TestSYSConstants_MatchTable_Amd64(t *testing.T) {
	want := map[string]uint64{
		"read": SYS_READ, "write": SYS_WRITE, "openat": SYS_OPENAT,
		"getuid": SYS_GETUID, "geteuid": SYS_GETEUID,
		"getgid": SYS_GETGID, "getegid": SYS_GETEGID,
	}
	for _, e := range Table {
		wantNum, ok := want[e.Name]
		if !ok {
			continue
		}
		gotNum, ok := e.Archs[arch.X86_64]
		if !ok {
			continue
		}
		if gotNum != wantNum {
			t.Errorf("table %s x86_64 number = %d, SYS_%s = %d", e.Name, gotNum, e.Name, wantNum)
		}
	}
}
