package shaderdef

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// tokenType represents a type of a token.
type tokenType int

// token types.
const (
	tokEOF       tokenType = iota // End of file
	tokIdent                      // Identifier
	tokNumber                     // Number
	tokString                     // String
	tokRawString                  // Raw string block
	tokLParen                     // Left parenthesis
	tokRParen                     // Right parenthesis
	tokLBracket                   // Left bracket
	tokRBracket                   // Right bracket
	tokColon                      // Colon
	tokComma                      // Comma
)

// token represents a token in the shader definition file.
type token struct {
	Lit  string    // Literal value of the token
	Type tokenType // Type of the token
	Line int       // Line number of the token
	Col  int       // Column number of the token
}

// lexer represents a lexer for the shader definition file.
type lexer struct {
	r   *bufio.Reader // Reader for the input
	pos position      // Position of the current token
	ch  rune          // Current character
	opt ParseOptions  // Options for the lexer
	eof bool          // End of file
}

// position represents a position in the input.
type position struct {
	line int // Line number
	col  int // Column number
}

// newLexer creates a new lexer for the shader definition file.
func newLexer(r io.Reader, opt ParseOptions) *lexer {
	l := &lexer{r: bufio.NewReader(r), opt: opt, pos: position{line: 1, col: 0}}
	l.read()
	if l.ch == 0xFEFF {
		// Skip UTF-8 BOM if present.
		l.read()
	}

	return l
}

// next returns the next token from the shader definition file.
func (l *lexer) next() (token, error) {
	// Tokenization is single-pass; skip whitespace/comments first.
	l.skipWhitespace()
	if l.eof {
		return token{Type: tokEOF, Line: l.pos.line, Col: l.pos.col}, nil
	}

	startLine, startCol := l.pos.line, l.pos.col

	// Tokenize the current character.
	switch l.ch {
	case '(':
		l.read()
		return token{Type: tokLParen, Lit: "(", Line: startLine, Col: startCol}, nil
	case ')':
		l.read()
		return token{Type: tokRParen, Lit: ")", Line: startLine, Col: startCol}, nil
	case '[':
		l.read()
		return token{Type: tokLBracket, Lit: "[", Line: startLine, Col: startCol}, nil
	case ']':
		l.read()
		return token{Type: tokRBracket, Lit: "]", Line: startLine, Col: startCol}, nil
	case ':':
		l.read()
		return token{Type: tokColon, Lit: ":", Line: startLine, Col: startCol}, nil
	case ',':
		l.read()
		return token{Type: tokComma, Lit: ",", Line: startLine, Col: startCol}, nil
	case '"':
		lit, err := l.readString()
		return token{Type: tokString, Lit: lit, Line: startLine, Col: startCol}, err

	default:
		if l.ch == 'r' && (l.peek() == '#' || l.peek() == '"') {
			lit, err := l.readRawString()
			return token{Type: tokRawString, Lit: lit, Line: startLine, Col: startCol}, err
		}

		if isIdentStart(l.ch) {
			lit := l.readIdent()
			return token{Type: tokIdent, Lit: lit, Line: startLine, Col: startCol}, nil
		}

		if isNumberStart(l.ch) {
			lit := l.readNumber()
			if isValidNumber(lit) {
				return token{Type: tokNumber, Lit: lit, Line: startLine, Col: startCol}, nil
			}

			return token{}, l.errorf("invalid number %q", lit)
		}

		return token{}, l.errorf("unexpected character '%c'", l.ch)
	}
}

// read reads the next character from the shader definition file.
func (l *lexer) read() {
	ch, _, err := l.r.ReadRune()
	if err != nil {
		l.eof = true
		l.ch = 0
		return
	}

	if ch == '\n' {
		l.pos.line++
		l.pos.col = 0
	} else {
		l.pos.col++
	}

	l.ch = ch
}

// peek returns the next character from the shader definition file without
// consuming it.
func (l *lexer) peek() rune {
	ch, _, err := l.r.ReadRune()
	if err != nil {
		return 0
	}

	_ = l.r.UnreadRune()
	return ch
}

// skipWhitespace skips whitespace characters.
func (l *lexer) skipWhitespace() {
	for {
		for unicode.IsSpace(l.ch) {
			l.read()
			if l.eof {
				return
			}
		}

		if !l.opt.DisableComments && l.ch == '/' {
			// Support // comments.
			next := l.peek()
			if next == '/' {
				l.read()
				l.read()
				for l.ch != '\n' && !l.eof {
					l.read()
				}
				continue
			}

			// Support /* */ comments.
			if next == '*' {
				l.read()
				l.read()
				for {
					if l.eof {
						return
					}
					if l.ch == '*' && l.peek() == '/' {
						l.read()
						l.read()
						break
					}
					l.read()
				}
				continue
			}
		}
		break
	}
}

// readIdent reads an identifier from the shader definition file.
func (l *lexer) readIdent() string {
	var b strings.Builder
	for isIdentPart(l.ch) {
		b.WriteRune(l.ch)
		l.read()
		if l.eof {
			break
		}
	}

	return b.String()
}

// readNumber reads a numeric literal. Hex digits and '_' separators are part
// of the word; validity is decided afterwards.
func (l *lexer) readNumber() string {
	var b strings.Builder
	for isNumberPart(l.ch) {
		b.WriteRune(l.ch)
		l.read()
		if l.eof {
			break
		}
	}

	return b.String()
}

// readString reads a quoted string from the shader definition file.
func (l *lexer) readString() (string, error) {
	l.read() // consume opening quote
	var b strings.Builder
	for {
		if l.eof {
			return "", l.errorf("unterminated string")
		}

		if l.ch == '"' {
			l.read()
			break
		}

		// Handle escaped characters.
		if l.ch == '\\' {
			next := l.peek()
			if next == '\\' || next == '"' {
				l.read()
				b.WriteRune(l.ch)
				l.read()
				continue
			}
		}
		b.WriteRune(l.ch)
		l.read()
	}

	return b.String(), nil
}

// readRawString reads a r#"..."# raw string block. Shader source blocks use
// this form; the content is passed through verbatim.
func (l *lexer) readRawString() (string, error) {
	l.read() // consume 'r'

	hashes := 0
	for l.ch == '#' {
		hashes++
		l.read()
		if l.eof {
			return "", l.errorf("unterminated raw string")
		}
	}

	if l.ch != '"' {
		return "", l.errorf("expected '\"' after raw string hashes")
	}
	l.read()

	suffix := strings.Repeat("#", hashes)
	var b strings.Builder
	for {
		if l.eof {
			return "", l.errorf("unterminated raw string")
		}

		if l.ch == '"' && l.matchAhead(suffix) {
			l.read()
			for i := 0; i < hashes; i++ {
				l.read()
			}
			break
		}

		b.WriteRune(l.ch)
		l.read()
	}

	return b.String(), nil
}

// matchAhead reports whether the upcoming input (after the current character)
// matches s, without consuming it.
func (l *lexer) matchAhead(s string) bool {
	if s == "" {
		return true
	}

	peek, err := l.r.Peek(len(s))
	if err != nil {
		return false
	}

	return string(peek) == s
}

// errorf formats an error message and returns an error.
func (l *lexer) errorf(format string, args ...any) error {
	return fmt.Errorf("%w at %d:%d: %s", ErrSyntax, l.pos.line, l.pos.col, fmt.Sprintf(format, args...))
}

// isIdentStart checks if a character is a valid start of an identifier.
func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

// isIdentPart checks if a character is a valid part of an identifier.
func isIdentPart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// isNumberStart checks if a character is a valid start of a number.
func isNumberStart(r rune) bool {
	return unicode.IsDigit(r) || r == '-' || r == '+'
}

// isNumberPart checks if a character is a valid part of a numeric literal.
func isNumberPart(r rune) bool {
	return unicode.IsDigit(r) ||
		(r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F') ||
		r == 'x' || r == 'X' || r == '_' || r == '.' || r == '+' || r == '-'
}

// isValidNumber checks if a string is a valid decimal or hex number.
func isValidNumber(s string) bool {
	if s == "" {
		return false
	}

	body := strings.TrimLeft(s, "+-")
	if strings.HasPrefix(body, "0x") || strings.HasPrefix(body, "0X") {
		hex := strings.ReplaceAll(body[2:], "_", "")
		if hex == "" {
			return false
		}
		_, err := strconv.ParseUint(hex, 16, 64)
		return err == nil
	}

	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
