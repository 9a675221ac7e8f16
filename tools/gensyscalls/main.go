// Command gensyscalls regenerates syscall/decode's zz_generated_*.go files
// from syscall/table.go. It is not run as part of any build; its output is
// committed, the same way sysbox-fs commits its generated gRPC stubs
// instead of regenerating them on every build.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nestybox/go-syscall-inspect/arch"
	"github.com/nestybox/go-syscall-inspect/internal/gen"
	"github.com/nestybox/go-syscall-inspect/syscall"
)

func main() {
	outDir := flag.String("out", "syscall/decode", "directory to write generated files into")
	numbersDir := flag.String("numbers-out", "syscall", "directory to write zz_generated_numbers_<goarch>.go into")
	flag.Parse()

	plans := gen.BuildPlans(syscall.Table)

	groups := map[string][]gen.Plan{}
	for _, p := range plans {
		groups[groupFor(p.Entry.Categories)] = append(groups[groupFor(p.Entry.Categories)], p)
	}

	for group, ps := range groups {
		out, err := gen.RenderGroup(ps)
		if err != nil {
			fmt.Fprintf(os.Stderr, "gensyscalls: %s: %v\n", group, err)
			os.Exit(1)
		}
		path := filepath.Join(*outDir, "zz_generated_"+group+".go")
		if err := os.WriteFile(path, out, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "gensyscalls: writing %s: %v\n", path, err)
			os.Exit(1)
		}
	}

	for id, goarch := range map[arch.ID]string{arch.X86_64: "amd64", arch.Arm64: "arm64", arch.RiscV64: "riscv64"} {
		out, err := gen.RenderNumbers(syscall.Table, id, goarch)
		if err != nil {
			fmt.Fprintf(os.Stderr, "gensyscalls: numbers %s: %v\n", goarch, err)
			os.Exit(1)
		}
		path := filepath.Join(*numbersDir, "zz_generated_numbers_"+goarch+".go")
		if err := os.WriteFile(path, out, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "gensyscalls: writing %s: %v\n", path, err)
			os.Exit(1)
		}
	}
}

// groupFor picks the file a table entry's generated type lands in, from
// its Category bits alone. It does not reproduce the checked-in
// zz_generated_*.go layout everywhere: getpid, gettid and uname are
// committed in creds, and openat, close and mount in file, while groupFor
// files them under process or desc.
func groupFor(cats syscall.Category) string {
	switch {
	case cats&syscall.Network != 0:
		return "network"
	case cats&syscall.Process != 0:
		return "process"
	case cats&syscall.Memory != 0:
		return "memory"
	case cats&syscall.Signal != 0:
		return "signal"
	case cats&syscall.Clock != 0:
		return "clock"
	case cats&syscall.Creds != 0:
		return "creds"
	case cats&(syscall.StatLike|syscall.StatFsLike) != 0:
		return "file"
	default:
		return "desc"
	}
}
