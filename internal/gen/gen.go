// Package gen renders syscall/table.go's declarative rows into the
// per-syscall Go source files committed under syscall/decode. It is the
// tool tools/gensyscalls drives; its output is checked in, so this
// package only needs to run when the table changes, not on every build.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"strings"

	"github.com/nestybox/go-syscall-inspect/arch"
	"github.com/nestybox/go-syscall-inspect/syscall"
)

// exporter turns a table name like "close_range" into the generated
// identifier prefix "CloseRange".
func exporter(name string) string {
	parts := strings.Split(name, "_")
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}

// archNumbersLiteral renders a TableEntry's Archs map as Go source for a
// map[arch.ID]uint64 literal, in a stable (sorted) order so repeated runs
// produce byte-identical output.
func archNumbersLiteral(numbers map[arch.ID]uint64) string {
	ids := make([]arch.ID, 0, len(numbers))
	for id := range numbers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	// Go identifiers of the arch.ID constants; id.String() gives the
	// kernel-style name ("x86_64"), which is not an exported identifier.
	idents := map[arch.ID]string{arch.X86_64: "X86_64", arch.Arm64: "Arm64", arch.RiscV64: "RiscV64"}

	var b strings.Builder
	b.WriteString("map[arch.ID]uint64{")
	for i, id := range ids {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "arch.%s: %d", idents[id], numbers[id])
	}
	b.WriteString("}")
	return b.String()
}

// Plan is one table row paired with the exported identifier prefix its
// generated types use. RenderEntry turns a Plan into the Raw/Entry/Exit
// record types and the Register call wiring them into syscall/decode's
// dispatch, for every Shape in table.go's vocabulary that decodes as an
// independent per-field remote.Read*.
type Plan struct {
	Entry  syscall.TableEntry
	Prefix string
}

// BuildPlans pairs every row of syscall.Table with its identifier prefix,
// in table order. It does no grouping: splitting the plans into one
// zz_generated_<group>.go file per group is left to the caller.
func BuildPlans(table []syscall.TableEntry) []Plan {
	plans := make([]Plan, 0, len(table))
	seen := map[string]int{}
	for _, e := range table {
		prefix := exporter(e.Name)
		if n := seen[e.Name]; n > 0 {
			// A name appearing twice (clone's per-arch variants) needs
			// distinct Go identifiers; every row after the first gets a
			// Variant<n> suffix, n counting the earlier rows of that name.
			prefix = fmt.Sprintf("%sVariant%d", prefix, n)
		}
		seen[e.Name]++
		plans = append(plans, Plan{Entry: e, Prefix: prefix})
	}
	return plans
}

// FormatFile runs gofmt over generated source before it is written, the
// same as every other Go code generator in this ecosystem.
func FormatFile(src []byte) ([]byte, error) {
	out, err := format.Source(src)
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return out, nil
}

// RenderHeader writes the package clause and shared imports every
// generated decode file needs.
func RenderHeader(buf *bytes.Buffer, pkg string) {
	fmt.Fprintf(buf, "package %s\n\n", pkg)
	buf.WriteString("import (\n")
	buf.WriteString("\t\"github.com/nestybox/go-syscall-inspect/arch\"\n")
	buf.WriteString("\t\"github.com/nestybox/go-syscall-inspect/remote\"\n")
	buf.WriteString("\t\"github.com/nestybox/go-syscall-inspect/remote/ktype\"\n")
	buf.WriteString("\tsysc \"github.com/nestybox/go-syscall-inspect/syscall\"\n")
	buf.WriteString(")\n\n")
}

// RenderNumbers renders the SYS_<NAME> constants for one architecture's
// GOARCH-suffixed file (syscall/zz_generated_numbers_<goarch>.go), pulling
// each syscall's number for id straight out of its TableEntry.Archs map.
// A table name with more than one row (only clone today) takes id's number
// from the first of its rows whose Archs has id; clone's rows cover
// disjoint architectures, so only one of them ever does.
func RenderNumbers(table []syscall.TableEntry, id arch.ID, goarch string) ([]byte, error) {
	type named struct {
		name   string
		number uint64
	}
	seen := map[string]bool{}
	consts := make([]named, 0, len(table))
	for _, e := range table {
		n, ok := e.Archs[id]
		if !ok || seen[e.Name] {
			continue
		}
		seen[e.Name] = true
		consts = append(consts, named{name: strings.ToUpper(e.Name), number: n})
	}
	sort.Slice(consts, func(i, j int) bool { return consts[i].name < consts[j].name })

	var buf bytes.Buffer
	buf.WriteString("package syscall\n\n")
	fmt.Fprintf(&buf, "// SYS_<NAME> constants for %s, generated from table.go's Archs maps by\n", goarch)
	buf.WriteString("// tools/gensyscalls. Bit-exact with the kernel's per-arch syscall numbering\n")
	buf.WriteString("// for every syscall this module's table carries a row for.\n")
	buf.WriteString("const (\n")
	for _, c := range consts {
		fmt.Fprintf(&buf, "\tSYS_%s uint64 = %d\n", c.name, c.number)
	}
	buf.WriteString(")\n")

	return FormatFile(buf.Bytes())
}

// categoryLiteral renders a Category bitmask as a "sysc.A|sysc.B" source
// expression, reusing Category.String's bit-to-name table so the two never
// drift apart.
func categoryLiteral(c syscall.Category) string {
	if c == 0 {
		return "0"
	}
	names := strings.Split(c.String(), "|")
	for i, n := range names {
		names[i] = "sysc." + n
	}
	return strings.Join(names, "|")
}

// fieldType returns the Go type a decoded ArgSpec takes in an Entry or Exit
// record: ShapeInt fields carry their raw GoType verbatim, every other
// shape reads tracee memory and so is wrapped in remote.Outcome.
func fieldType(a syscall.ArgSpec) string {
	switch a.Shape {
	case syscall.ShapeInt:
		return a.GoType
	case syscall.ShapePath:
		return "remote.Outcome[string]"
	case syscall.ShapeCString:
		return "remote.Outcome[[]byte]"
	case syscall.ShapeFixed:
		return fmt.Sprintf("remote.Outcome[%s]", a.GoType)
	case syscall.ShapeVarSized:
		return fmt.Sprintf("remote.Outcome[*%s]", a.GoType)
	case syscall.ShapeCounted:
		return fmt.Sprintf("remote.Outcome[[]%s]", a.GoType)
	case syscall.ShapePair:
		return fmt.Sprintf("remote.Outcome[[2]%s]", a.GoType)
	case syscall.ShapeStringArray:
		return "remote.Outcome[[]string]"
	case syscall.ShapeOpaqueAddr:
		return "uintptr"
	default:
		return "uintptr"
	}
}

// readsMemory reports whether a reads tracee memory at all, vs. being a
// straight register-value passthrough.
func readsMemory(a syscall.ArgSpec) bool {
	return a.Shape != syscall.ShapeInt && a.Shape != syscall.ShapeOpaqueAddr
}

// readExpr renders the remote.Read* call for a, given the Go expression for
// its pointer argument and (where needed) its count/size sibling.
func readExpr(a syscall.ArgSpec, ptrExpr, countExpr string) string {
	switch a.Shape {
	case syscall.ShapePath:
		return fmt.Sprintf("remote.ReadPath(pid, %s)", ptrExpr)
	case syscall.ShapeCString:
		return fmt.Sprintf("remote.ReadCString(pid, %s)", ptrExpr)
	case syscall.ShapeFixed:
		return fmt.Sprintf("remote.ReadFixed[%s](pid, %s)", a.GoType, ptrExpr)
	case syscall.ShapeCounted:
		return fmt.Sprintf("remote.ReadCounted[%s](pid, %s, int(%s))", a.GoType, ptrExpr, countExpr)
	case syscall.ShapeVarSized:
		return fmt.Sprintf("remote.ReadVariableSized[%s](pid, %s, int(%s))", a.GoType, ptrExpr, countExpr)
	case syscall.ShapePair:
		return fmt.Sprintf("remote.ReadPair[%s](pid, %s)", a.GoType, ptrExpr)
	case syscall.ShapeStringArray:
		return fmt.Sprintf("remote.ReadNullTerminatedPtrArray(pid, %s)", ptrExpr)
	default:
		return ptrExpr
	}
}

// castExpr wraps expr in a conversion to goType, skipping the conversion
// when goType is already argAt's native uint64 result.
func castExpr(goType, expr string) string {
	if goType == "uint64" {
		return expr
	}
	return fmt.Sprintf("%s(%s)", goType, expr)
}

// siblingRaw finds a's CountedBy sibling among raw, returning the Go
// expression for it as seen from inside a raw struct value named "raw".
// The "syscall_result" sentinel has no raw sibling; callers recognize it
// separately and use the exit stop's own result instead.
func siblingRaw(countedBy string, raw []syscall.ArgSpec) string {
	for _, r := range raw {
		if r.Name == countedBy {
			return "raw." + exporter(r.Name)
		}
	}
	return "raw." + exporter(countedBy)
}

// RenderEntry writes one table row's Raw/Entry/Exit record types and the
// Register call wiring them into syscall/decode's dispatch, covering every
// Shape in the table's vocabulary for the common case of independent
// output fields. A handful of rows need more than a field-by-field
// remote.Read* — accept4's truncated-sockaddr bookkeeping, rt_sigaction's
// two Sigaction-shaped arguments sharing one Sigsetsize — and are hand
// overrides layered on top of what this function would produce; see
// DESIGN.md.
func RenderEntry(buf *bytes.Buffer, e syscall.TableEntry, prefix string) {
	fmt.Fprintf(buf, "// --- %s ---\n\n", e.Name)

	// Raw.
	fmt.Fprintf(buf, "type %sRaw struct {\n", prefix)
	for _, a := range e.Raw {
		fmt.Fprintf(buf, "\t%s %s\n", exporter(a.Name), a.GoType)
	}
	buf.WriteString("}\n\n")
	fmt.Fprintf(buf, "func (%sRaw) SyscallName() string { return %q }\n\n", prefix, e.Name)

	// Entry.
	fmt.Fprintf(buf, "type %sEntry struct {\n\traw %sRaw\n", prefix, prefix)
	for _, a := range e.Entry {
		fmt.Fprintf(buf, "\t%s %s\n", exporter(a.Name), fieldType(a))
	}
	buf.WriteString("}\n\n")
	fmt.Fprintf(buf, "func (%sEntry) SyscallName() string { return %q }\n", prefix, e.Name)
	fmt.Fprintf(buf, "func (e %sEntry) Raw() sysc.RawArgs { return e.raw }\n\n", prefix)

	hasExit := e.Result.GoType != "Unit"
	if hasExit && len(e.Exit) > 0 {
		fmt.Fprintf(buf, "type %sExit struct {\n\tSyscallResult %s\n", prefix, e.Result.GoType)
		for _, a := range e.Exit {
			fmt.Fprintf(buf, "\t%s %s\n", exporter(a.Name), fieldType(a))
		}
		buf.WriteString("}\n\n")
		fmt.Fprintf(buf, "func (%sExit) SyscallName() string { return %q }\n\n", prefix, e.Name)
	}

	// Registration.
	buf.WriteString("func init() {\n")
	fmt.Fprintf(buf, "\tregister(%q, %s,\n", e.Name, categoryLiteral(e.Categories))
	buf.WriteString("\t\t" + archNumbersLiteral(e.Archs) + ",\n")

	buf.WriteString("\t\tfunc(pid int, regs arch.Registers) sysc.RawArgs {\n")
	fmt.Fprintf(buf, "\t\t\treturn %sRaw{\n", prefix)
	for i, a := range e.Raw {
		fmt.Fprintf(buf, "\t\t\t\t%s: %s,\n", exporter(a.Name), castExpr(a.GoType, fmt.Sprintf("argAt(regs, %d)", i)))
	}
	buf.WriteString("\t\t\t}\n\t\t},\n")

	buf.WriteString("\t\tfunc(pid int, r sysc.RawArgs) sysc.EntryArgs {\n")
	fmt.Fprintf(buf, "\t\t\traw := r.(%sRaw)\n", prefix)
	var deferred []syscall.ArgSpec
	fmt.Fprintf(buf, "\t\t\te := %sEntry{raw: raw", prefix)
	for _, a := range e.Entry {
		if !readsMemory(a) {
			fmt.Fprintf(buf, ", %s: raw.%s", exporter(a.Name), exporter(a.Name))
			continue
		}
		if a.Nullable {
			deferred = append(deferred, a)
			continue
		}
		count := ""
		if a.CountedBy != "" && a.CountedBy != "syscall_result" {
			count = siblingRaw(a.CountedBy, e.Raw)
		}
		fmt.Fprintf(buf, ", %s: %s", exporter(a.Name), readExpr(a, "raw."+exporter(a.Name), count))
	}
	buf.WriteString("}\n")
	for _, a := range deferred {
		count := ""
		if a.CountedBy != "" && a.CountedBy != "syscall_result" {
			count = siblingRaw(a.CountedBy, e.Raw)
		}
		ptr := "raw." + exporter(a.Name)
		fmt.Fprintf(buf, "\t\t\tif %s != 0 {\n\t\t\t\te.%s = %s\n\t\t\t}\n", ptr, exporter(a.Name), readExpr(a, ptr, count))
	}
	buf.WriteString("\t\t\treturn e\n\t\t},\n")

	switch {
	case !hasExit:
		buf.WriteString("\t\tnil)\n")
	case len(e.Exit) == 0:
		fmt.Fprintf(buf, "\t\tsimpleExit[%s](%q))\n", e.Result.GoType, e.Name)
	default:
		buf.WriteString("\t\tfunc(pid int, r sysc.RawArgs, exit arch.Registers) sysc.ExitArgs {\n")
		fmt.Fprintf(buf, "\t\t\traw := r.(%sRaw)\n", prefix)
		buf.WriteString("\t\t\tresult := int64(exit.Result())\n")
		var guards []string
		guards = append(guards, "result < 0")
		for _, a := range e.Exit {
			if a.Nullable {
				guards = append(guards, fmt.Sprintf("raw.%s == 0", exporter(a.Name)))
			}
		}
		fmt.Fprintf(buf, "\t\t\tif %s {\n\t\t\t\treturn %sExit{SyscallResult: %s}\n\t\t\t}\n",
			strings.Join(guards, " || "), prefix, castExpr(e.Result.GoType, "result"))
		fmt.Fprintf(buf, "\t\t\treturn %sExit{SyscallResult: %s", prefix, castExpr(e.Result.GoType, "result"))
		for _, a := range e.Exit {
			count := "result"
			if a.CountedBy != "" && a.CountedBy != "syscall_result" {
				count = siblingRaw(a.CountedBy, e.Raw)
			}
			fmt.Fprintf(buf, ", %s: %s", exporter(a.Name), readExpr(a, "raw."+exporter(a.Name), count))
		}
		buf.WriteString("}\n\t\t})\n")
	}
	buf.WriteString("}\n\n")
}

// RenderGroup renders a full zz_generated_<group>.go body: the shared
// header plus one RenderEntry block per plan, gofmt'd as a unit so field
// alignment matches what committed files already carry.
func RenderGroup(plans []Plan) ([]byte, error) {
	var buf bytes.Buffer
	RenderHeader(&buf, "decode")
	for _, p := range plans {
		RenderEntry(&buf, p.Entry, p.Prefix)
	}
	return FormatFile(buf.Bytes())
}
