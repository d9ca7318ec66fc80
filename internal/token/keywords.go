package token

var keywords = map[string]Kind{
	"venti":       KwDeclare,
	"printventi":  KwPrint,
	"async":       KwAsync,
	"await":       KwAwait,
	"if_venti":    KwIf,
	"else_venti":  KwElse,
	"for_venti":   KwFor,
	"while_venti": KwWhile,
	"int":         KwInt,
	"float":       KwFloat,
	"bool":        KwBool,
	"true":        BoolLit,
	"false":       BoolLit,
}

// LookupKeyword returns the keyword kind for ident, if it is one.
// Keywords are case-sensitive: only the lowercase spellings match.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
