package front

import (
	"github.com/alecthomas/participle"
	"github.com/alecthomas/participle/lexer"
)

// C subset. Only declarations are understood in full,
// statements are kept as opaque token runs.
const lexerRegex = `(\s+|//[^\n]*|/\*(?s:.*?)\*/)` +
	`|(?P<String>"(?:\\.|[^"\\])*")` +
	`|(?P<Char>'(?:\\.|[^'\\])+')` +
	`|(?P<Number>(?:0[xX][0-9a-fA-F]+|\d+(?:\.\d*)?(?:[eE][-+]?\d+)?)[uUlLfF]*)` +
	`|(?P<Ident>[A-Za-z_][A-Za-z0-9_]*)` +
	`|(?P<Ellipsis>\.\.\.)` +
	`|(?P<Group>[(){}\[\]])` +
	`|(?P<Punct>[;,])` +
	`|(?P<Operator>->|\+\+|--|<<=|>>=|<<|>>|&&|\|\||[-+*/%&|^!=<>]=?|[~?:.])`

type (
	unit struct {
		Decls []*declaration `@@*`
	}

	declaration struct {
		Pos lexer.Position

		Specs []*specifier      `@@+`
		Inits []*initDeclarator `( @@ ( "," @@ )* )?`
		Body  *block            `( @@ | ";" )`
	}

	specifier struct {
		Storage   string  `  @("typedef"|"extern"|"static"|"auto"|"register"|"inline")`
		Qualifier string  `| @("const"|"volatile"|"restrict")`
		Type      string  `| @("void"|"char"|"short"|"int"|"long"|"float"|"double"|"signed"|"unsigned"|"_Bool")`
		Tagged    *tagged `| @@`
	}

	tagged struct {
		Kind string `@("struct"|"union"|"enum")`
		Tag  string `@Ident?`
		Body *group `( "{" @@ "}" )?`
	}

	initDeclarator struct {
		Declarator *declarator `@@`
		Init       []*exprItem `( "=" @@+ )?`
	}

	declarator struct {
		Pointers []*pointer  `@@*`
		Name     string      `( @Ident`
		Nested   *declarator `  | "(" @@ ")" )?`
		Suffixes []*suffix   `@@*`
	}

	pointer struct {
		Quals []string `"*" @("const"|"volatile"|"restrict")*`
	}

	suffix struct {
		Array  bool     `  @"["`
		Dim    []string `  @(Ident|Number|Char|String|Operator)* "]"`
		Params []*param `| "(" ( @@ ( "," @@ )* )? ")"`
	}

	param struct {
		Ellipsis   bool         `  @Ellipsis`
		Specs      []*specifier `| @@+`
		Declarator *declarator  `  @@?`
	}

	block struct {
		Items []*item `"{" @@* "}"`
	}

	item struct {
		Decl  *declaration `  @@`
		For   *forStmt     `| @@`
		Block *block       `| @@`
		Stmt  *stmt        `| @@`
	}

	forStmt struct {
		Init *declaration `"for" "(" ( @@`
		Cond []*stmtItem  `          | @@* ";" )`
		Rest []*anyItem   `@@* ")"`
	}

	stmt struct {
		Items []*stmtItem `( @@+ ";"? | ";" )`
	}

	// stmtItem is a statement token. Braces are left for blocks.
	stmtItem struct {
		Token    string `  @(Ident|Number|String|Char|Operator|Ellipsis|",")`
		Parens   *group `| "(" @@ ")"`
		Brackets *group `| "[" @@ "]"`
	}

	// exprItem is an initializer token. Commas and semicolons end it.
	exprItem struct {
		Token    string `  @(Ident|Number|String|Char|Operator|Ellipsis)`
		Parens   *group `| "(" @@ ")"`
		Brackets *group `| "[" @@ "]"`
		Braces   *group `| "{" @@ "}"`
	}

	group struct {
		Items []*anyItem `@@*`
	}

	anyItem struct {
		Token    string `  @(Ident|Number|String|Char|Operator|Ellipsis|Punct)`
		Parens   *group `| "(" @@ ")"`
		Brackets *group `| "[" @@ "]"`
		Braces   *group `| "{" @@ "}"`
	}
)

var parser = participle.MustBuild(&unit{},
	participle.Lexer(lexer.Must(lexer.Regexp(lexerRegex))),
	participle.UseLookahead(2),
)
