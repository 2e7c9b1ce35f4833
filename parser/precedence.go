package parser

// Expression precedence, lowest to highest (spec §4.1, "Parser-order
// precedence", reproduced from original_source/parser.cpp's
// ParseCompExpr -> ParseAddSubExpr -> ParseMulDivModExpr -> ParseCallExpr
// -> ParseTermExpr chain):
//
//	comparison   (>, <, >=, <=, ==)   parseComparison
//	additive     (+, -)               parseAdditive
//	multiplicative (*, /, %)          parseMultiplicative
//	call         (postfix f(...))     parseCall
//	term         (ident, int literal) parseTerm
//
// All binary levels are left-associative. Comparison is non-chaining in
// principle but the grammar treats it as left-associative, same as the
// original source (`a > b > c` parses as `(a>b) > c`).
