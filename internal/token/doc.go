// Package token defines the lexical vocabulary of the venti language:
// token kinds, keyword spellings, and whitespace trivia.
//
// Control-flow keywords (if_venti, else_venti, for_venti, while_venti) and
// primitive type names (int, float, bool) are recognized lexically but the
// grammar never produces AST nodes for them; the parser rejects them where
// they appear.
package token
