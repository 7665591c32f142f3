package language

// Java returns the built-in Java language definition: the reserved keywords
// through Java 5, the operator and bracket delimiters, whitespace as spacing
// delimiters, and the member-access dot as the method-call delimiter.
func Java() *Spec {
	return NewBuilder("java").
		SpaceDelimiters("\n", "\r", " ", "\t").
		Delimiters(
			";",
			"(", ")", "[", "]", "{", "}",
			"\"", "'",
			"!", "||", "&&", "?",
			"+", "-", "*", "/", "%", "=", "++", "--",
			"==", "!=", ">", "<", ">=", "<=",
		).
		MethodCallDelimiters(".").
		Keywords(
			"abstract", "assert", "boolean", "break", "byte", "case",
			"catch", "char", "class", "const", "continue", "default",
			"do", "double", "else", "enum", "extends", "final",
			"finally", "float", "for", "goto", "if", "implements",
			"import", "instanceof", "int", "interface", "long", "native",
			"new", "package", "private", "protected", "public", "return",
			"short", "static", "strictfp", "super", "switch", "synchronized",
			"this", "throw", "throws", "transient", "try", "void",
			"volatile", "while",
		).
		Build()
}
