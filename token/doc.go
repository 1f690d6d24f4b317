// Package token provides tokenization of quanta text.
//
// [Tokenize] splits a document into a flat slice of [Token]s ending in a
// [TEOF] token. Whitespace and comments produce no tokens but are
// recorded in [Token.SpaceBefore]; newlines are tokens of their own
// since they separate members.
//
// Literals are recognized completely by the tokenizer: numbers carry
// their unit, currency amounts their unit and time literals their
// decoded fields ([TimeLit]). Decoding of number text to a value is left
// to the parser.
//
// Positions are byte offsets into the document, resolved to 1-based
// line and rune column by [PosDoc].
package token
