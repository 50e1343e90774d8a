package ast

type (
	Node interface {
	}

	Base struct {
		Pos int
		End int
	}

	Ident struct {
		Base `tlog:",embed"`

		Name string
	}

	Int struct {
		Base `tlog:",embed"`

		Text string
	}

	// Text is a raw run of source kept as is.
	Text struct {
		Base `tlog:",embed"`

		Text string
	}

	Neg struct {
		Base `tlog:",embed"`

		X Node
	}

	BinOp struct {
		Base `tlog:",embed"`

		Op    byte
		Left  Node
		Right Node
	}

	// Assign is a single statement line: [types] dest = expr [;].
	Assign struct {
		Base `tlog:",embed"`

		Types []Ident
		Dest  Ident
		Expr  Node
	}
)

// Declaration tree.
type (
	File struct {
		Decls []*Decl
	}

	Decl struct {
		Name string
		Type Type
		Line int
	}

	// Type is one layer of a declarator chain.
	// The set of implementations is closed: Named, Pointer, Array and Unknown.
	Type interface {
		typeLayer()
	}

	Named struct {
		Names []string
	}

	Pointer struct {
		Elem Type
	}

	Array struct {
		Elem Type
		Dim  string // integer literal, empty if absent or not a constant
	}

	Unknown struct {
		Shape string
	}
)

func (Named) typeLayer()   {}
func (Pointer) typeLayer() {}
func (Array) typeLayer()   {}
func (Unknown) typeLayer() {}
