package token

var keywords = map[string]TokenType{
	"null":  TNull,
	"true":  TTrue,
	"false": TFalse,
}

// keywordType returns the keyword token type of an identifier, or
// TIdent.
func keywordType(ident []byte) TokenType {
	if tt, ok := keywords[string(ident)]; ok {
		return tt
	}
	return TIdent
}

// IsKeyword reports whether s is spelled like null, true or false.
func IsKeyword(s string) bool {
	_, ok := keywords[s]
	return ok
}
