package lisp

// tokenType identifies the lexical category of a token, mirroring the
// teacher's TokType enum but generalized to the dialect's richer token
// set (booleans, strings, the quasiquote family).
type tokenType int

const (
	tokenError tokenType = iota
	tokenEOF
	tokenLeftParen
	tokenRightParen
	tokenDot
	tokenQuote
	tokenQuasiquote
	tokenUnquote
	tokenBoolean
	tokenNumber
	tokenString
	tokenIdentifier
)

// token is one lexical unit produced by the Lexer.
type token struct {
	typ    tokenType
	text   string  // Raw text for Identifier/Number; "#t"/"#f" spelling for Boolean.
	number float64 // Populated for tokenNumber.
	str    string  // Decoded payload for tokenString (escapes processed).
	bool   bool    // Decoded payload for tokenBoolean.
}

func (t tokenType) String() string {
	switch t {
	case tokenError:
		return "Error"
	case tokenEOF:
		return "EOF"
	case tokenLeftParen:
		return "LeftParen"
	case tokenRightParen:
		return "RightParen"
	case tokenDot:
		return "Dot"
	case tokenQuote:
		return "Quote"
	case tokenQuasiquote:
		return "Quasiquote"
	case tokenUnquote:
		return "Unquote"
	case tokenBoolean:
		return "BooleanLiteral"
	case tokenNumber:
		return "NumericLiteral"
	case tokenString:
		return "StringLiteral"
	case tokenIdentifier:
		return "Identifier"
	default:
		return "Unknown"
	}
}
