package syscall

// Category tags group syscalls by subject matter, exposed as a bit-set on
// every decoded record. Kept in sync with strace's sysent.h trace-class
// bits (src/sysent.h in the strace project), per spec.md §4.C.1.
type Category uint32

const (
	Desc Category = 1 << iota
	File
	IPC
	Network
	Process
	Signal
	Memory
	Stat
	LStat
	FStat
	StatLike
	StatFs
	FStatFs
	StatFsLike
	Pure
	Creds
	Clock
)

var categoryNames = []struct {
	bit  Category
	name string
}{
	{Desc, "Desc"}, {File, "File"}, {IPC, "IPC"}, {Network, "Network"},
	{Process, "Process"}, {Signal, "Signal"}, {Memory, "Memory"},
	{Stat, "Stat"}, {LStat, "LStat"}, {FStat, "FStat"}, {StatLike, "StatLike"},
	{StatFs, "StatFs"}, {FStatFs, "FStatFs"}, {StatFsLike, "StatFsLike"},
	{Pure, "Pure"}, {Creds, "Creds"}, {Clock, "Clock"},
}

// Has reports whether c includes every bit set in other.
func (c Category) Has(other Category) bool {
	return c&other == other
}

func (c Category) String() string {
	if c == 0 {
		return "none"
	}
	s := ""
	for _, cn := range categoryNames {
		if c&cn.bit != 0 {
			if s != "" {
				s += "|"
			}
			s += cn.name
		}
	}
	return s
}
