package symtab

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"nikand.dev/go/heap"
	"tlog.app/go/tlog"
	"tlog.app/go/tlog/tlwire"

	"github.com/minic/minic/compiler/ast"
)

type (
	Record struct {
		Name      string
		Type      string
		Size      int // bytes
		Dimension string
		Address   int
		Line      int
	}

	Table struct {
		Records map[string]Record
	}

	// Builder owns the address counter of a single table.
	// Use a new Builder for each table.
	Builder struct {
		next int
		tab  *Table
	}
)

// WordSize is the width assumed for every element regardless of its type.
const WordSize = 4

func Build(ctx context.Context, f *ast.File) *Table {
	return NewBuilder().Build(ctx, f)
}

func NewBuilder() *Builder {
	return &Builder{
		next: 1,
		tab:  &Table{Records: map[string]Record{}},
	}
}

func (b *Builder) Build(ctx context.Context, f *ast.File) *Table {
	if f == nil {
		return b.tab
	}

	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "symtab: build", "decls", len(f.Decls))
	defer tr.Finish()

	for _, d := range f.Decls {
		b.Declare(ctx, d)
	}

	tr.Printw("symbols", "records", len(b.tab.Records), "next_addr", b.next)

	return b.tab
}

// Declare adds d to the table taking the next address.
// A previous record of the same name is replaced.
func (b *Builder) Declare(ctx context.Context, d *ast.Decl) Record {
	r := Record{
		Name:      d.Name,
		Type:      TypeName(d.Type),
		Size:      WordSize,
		Dimension: "1",
		Address:   b.next,
		Line:      d.Line,
	}

	b.next++

	if a, ok := d.Type.(ast.Array); ok && a.Dim != "" {
		if n, ok := dimension(a.Dim); ok {
			r.Dimension = strconv.Itoa(n)
			r.Size = n * WordSize
		}
	}

	if prev, ok := b.tab.Records[r.Name]; ok {
		tlog.SpanFromContext(ctx).V("redeclare").Printw("redeclared", "name", r.Name, "prev", prev, "rec", r)
	}

	b.tab.Records[r.Name] = r

	return r
}

// TypeName describes t the way a C programmer reads it aloud.
func TypeName(t ast.Type) string {
	switch t := t.(type) {
	case ast.Named:
		if len(t.Names) == 0 {
			return "unknown"
		}

		return strings.Join(t.Names, " ")
	case ast.Pointer:
		return "pointer to " + TypeName(t.Elem)
	case ast.Array:
		return "array of " + TypeName(t.Elem)
	case ast.Unknown:
		return "unknown"
	default:
		return "unknown"
	}
}

func dimension(s string) (int, bool) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		n, err = strconv.ParseInt(s, 0, 64)
	}

	if err != nil || n < 0 || n > math.MaxInt/WordSize {
		return 0, false
	}

	return int(n), true
}

func (t *Table) Get(name string) (Record, bool) {
	r, ok := t.Records[name]
	return r, ok
}

func (t *Table) Len() int { return len(t.Records) }

// Sorted returns records in address order.
func (t *Table) Sorted() []Record {
	h := heap.Heap[Record]{Less: byAddress}

	for _, r := range t.Records {
		h.Push(r)
	}

	res := make([]Record, 0, h.Len())

	for h.Len() != 0 {
		res = append(res, h.Pop())
	}

	return res
}

func byAddress(d []Record, i, j int) bool {
	return d[i].Address < d[j].Address
}

func (r Record) SizeText() string { return fmt.Sprintf("%d bytes", r.Size) }

func (r Record) AddressText() string { return fmt.Sprintf("memory[%d]", r.Address) }

func (r Record) TlogAppend(b []byte) []byte {
	var e tlwire.Encoder

	b = e.AppendMap(b, 5)

	b = e.AppendString(b, "name")
	b = e.AppendString(b, r.Name)
	b = e.AppendString(b, "type")
	b = e.AppendString(b, r.Type)
	b = e.AppendKeyInt(b, "size", r.Size)
	b = e.AppendString(b, "dim")
	b = e.AppendString(b, r.Dimension)
	b = e.AppendKeyInt(b, "addr", r.Address)

	return b
}
