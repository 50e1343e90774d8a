package parse

// TypeName is a basic C type keyword.
var TypeName = AnyOf{
	Keyword("int"),
	Keyword("float"),
	Keyword("double"),
	Keyword("char"),
	Keyword("short"),
	Keyword("long"),
	Keyword("signed"),
	Keyword("unsigned"),
}
