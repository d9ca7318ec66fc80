package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident

	// KwDeclare represents the 'venti' declaration keyword.
	KwDeclare // venti
	// KwPrint represents the 'printventi' keyword.
	KwPrint // printventi
	// KwAsync represents the 'async' keyword.
	KwAsync // async
	// KwAwait represents the 'await' keyword.
	KwAwait // await
	// KwIf represents the reserved 'if_venti' keyword.
	KwIf // if_venti
	// KwElse represents the reserved 'else_venti' keyword.
	KwElse // else_venti
	// KwFor represents the reserved 'for_venti' keyword.
	KwFor // for_venti
	// KwWhile represents the reserved 'while_venti' keyword.
	KwWhile // while_venti
	// KwInt represents the reserved 'int' type keyword.
	KwInt // int
	// KwFloat represents the reserved 'float' type keyword.
	KwFloat // float
	// KwBool represents the reserved 'bool' type keyword.
	KwBool // bool

	// IntLit represents the integer literal token.
	IntLit
	// FloatLit represents the float literal token.
	FloatLit
	// BoolLit represents the boolean literal token ('true' or 'false').
	BoolLit
	// StringLit represents the string literal token.
	StringLit

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// Slash represents the slash operator token.
	Slash // /
	// Assign represents the assign operator token.
	Assign // =

	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]
	// Comma represents the comma token.
	Comma // ,
	// Semicolon represents the semicolon token.
	Semicolon // ;
)

var kindNames = map[Kind]string{
	Invalid:   "Invalid",
	EOF:       "EOF",
	Ident:     "Ident",
	KwDeclare: "KwDeclare",
	KwPrint:   "KwPrint",
	KwAsync:   "KwAsync",
	KwAwait:   "KwAwait",
	KwIf:      "KwIf",
	KwElse:    "KwElse",
	KwFor:     "KwFor",
	KwWhile:   "KwWhile",
	KwInt:     "KwInt",
	KwFloat:   "KwFloat",
	KwBool:    "KwBool",
	IntLit:    "IntLit",
	FloatLit:  "FloatLit",
	BoolLit:   "BoolLit",
	StringLit: "StringLit",
	Plus:      "Plus",
	Minus:     "Minus",
	Star:      "Star",
	Slash:     "Slash",
	Assign:    "Assign",
	LParen:    "LParen",
	RParen:    "RParen",
	LBrace:    "LBrace",
	RBrace:    "RBrace",
	LBracket:  "LBracket",
	RBracket:  "RBracket",
	Comma:     "Comma",
	Semicolon: "Semicolon",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}
