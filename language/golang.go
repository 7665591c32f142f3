package language

// Go returns the built-in Go language definition. The selector dot doubles
// as the method-call delimiter, mirroring how the Java definition treats
// member access.
func Go() *Spec {
	return NewBuilder("go").
		SpaceDelimiters("\n", "\r", " ", "\t").
		// ':' is reserved: identifier keys use ':'-prefixed text and must
		// survive rescanning, so ':' and ':=' are not delimiters here.
		Delimiters(
			";", ",",
			"(", ")", "[", "]", "{", "}",
			"\"", "'", "`",
			"+", "-", "*", "/", "%",
			"&", "|", "^", "<<", ">>", "&^",
			"+=", "-=", "*=", "/=", "%=",
			"&=", "|=", "^=", "<<=", ">>=", "&^=",
			"&&", "||", "<-", "++", "--",
			"==", "<", ">", "=", "!", "!=", "<=", ">=", "...",
		).
		MethodCallDelimiters(".").
		Keywords(
			"break", "case", "chan", "const", "continue", "default",
			"defer", "else", "fallthrough", "for", "func", "go",
			"goto", "if", "import", "interface", "map", "package",
			"range", "return", "select", "struct", "switch", "type",
			"var",
		).
		Build()
}
