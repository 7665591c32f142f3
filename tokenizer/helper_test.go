package tokenizer

import (
	"io"
	"log/slog"

	"github.com/srcmask/srcmask/language"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// miniSpec builds a small language for scanner tests: keyword "if", a few
// bracket/statement delimiters, and the usual spacing.
func miniSpec(extraDelims ...string) *language.Spec {
	return language.NewBuilder("mini").
		Keywords("if").
		SpaceDelimiters(" ", "\n", "\t").
		Delimiters("(", ")", "{", "}", ";").
		Delimiters(extraDelims...).
		MethodCallDelimiters(".").
		Build()
}
