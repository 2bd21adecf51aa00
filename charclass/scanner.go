package charclass

// A Scanner lexes a class body incrementally. It is an index-based
// state machine over rune positions with two states, default and
// escaped, plus an explicit index jump for consuming the end character
// of a range.
//
//	sc := charclass.NewScanner(body, false)
//	for sc.Next() {
//	    tok := sc.Token()
//	    …
//	}
//	if err := sc.Err(); err != nil {
//	    …
//	}
type Scanner struct {
	runes     []rune
	expand    bool // expand ranges into single code points?
	i         int  // current rune position
	escaped   bool
	ch        rune // most recent character, i.e. a potential range start
	tok       Token
	pending   []Token // lexed but not yet delivered
	expanding bool    // a range expansion is in progress
	exCur     rune    // cursor of the active range expansion
	exEnd     rune
	err       error
}

// NewScanner creates a scanner for a class body. With expand set,
// range tokens are expanded into one token per code point.
func NewScanner(body string, expand bool) *Scanner {
	return &Scanner{runes: []rune(body), expand: expand}
}

// Parse lexes a complete class body into tokens.
func Parse(body string, expand bool) ([]Token, error) {
	sc := NewScanner(body, expand)
	var tokens []Token
	for sc.Next() {
		tokens = append(tokens, sc.Token())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return tokens, nil
}

// Next advances the scanner to the next token.
func (sc *Scanner) Next() bool {
	if sc.err != nil {
		return false
	}
	for {
		if sc.expanding {
			sc.tok = Token{sc.exCur, sc.exCur}
			if sc.exCur == sc.exEnd {
				sc.expanding = false
			} else {
				sc.exCur++
			}
			return true
		}
		if len(sc.pending) > 0 {
			sc.tok, sc.pending = sc.pending[0], sc.pending[1:]
			return true
		}
		if sc.i >= len(sc.runes) {
			if sc.escaped { // trailing backslash is literal
				sc.escaped = false
				sc.tok = Token{'\\', '\\'}
				return true
			}
			return false
		}
		sc.step()
		if sc.err != nil {
			return false
		}
	}
}

// Token returns the token the scanner currently points at.
func (sc *Scanner) Token() Token {
	return sc.tok
}

// Err returns the syntax error that stopped the scanner, if any.
func (sc *Scanner) Err() error {
	return sc.err
}

func (sc *Scanner) emit(lo, hi rune) {
	sc.pending = append(sc.pending, Token{lo, hi})
}

// step consumes the character at the current position, adjusting state
// and emitting tokens. Range handling consumes extra positions.
func (sc *Scanner) step() {
	i := sc.i
	r := sc.runes[i]
	last := len(sc.runes) - 1
	switch {
	case i == 0:
		sc.ch = r
		switch {
		case r == '\\':
			sc.escaped = true
		case (r == '[' || r == ']') && last > 0:
			sc.err = &SyntaxError{Ch: r, Pos: 0}
		case sc.expand:
			sc.emit(r, r)
		case last <= 1 || sc.runes[1] != '-':
			// emit unless a range begins right after this character
			sc.emit(r, r)
		}
	case r == '-':
		if sc.escaped || i == last {
			sc.ch = '-'
			sc.escaped = false
			sc.emit('-', '-')
			break
		}
		sc.i++ // jump to the end-of-range character
		end := sc.runes[sc.i]
		if end == '\\' && sc.i < last && isClassMeta(sc.runes[sc.i+1]) {
			sc.i++ // the end of the range is itself escaped
			end = sc.runes[sc.i]
		}
		if sc.ch > end {
			sc.err = &SyntaxError{Lo: sc.ch, Ch: end, Pos: sc.i - 2, IsRange: true}
			break
		}
		if sc.expand {
			// the range start has been emitted on its own already
			sc.exCur, sc.exEnd = sc.ch+1, end
			sc.expanding = sc.exCur <= sc.exEnd
		} else {
			sc.emit(sc.ch, end)
		}
	case isClassLiteral(r):
		sc.escaped = false
		sc.ch = r
		sc.emit(r, r)
	case r == '[' || r == ']':
		if !sc.escaped && last > 0 {
			sc.err = &SyntaxError{Ch: r, Pos: i}
			break
		}
		sc.escaped = false
		sc.ch = r
		sc.emit(r, r)
	case r == '\\':
		if sc.escaped {
			sc.escaped = false
			sc.ch = '\\'
			sc.emit('\\', '\\')
		} else {
			sc.escaped = true
		}
	default:
		if sc.escaped {
			// a backslash not followed by an escapable character is literal
			sc.escaped = false
			sc.emit('\\', '\\')
		}
		sc.ch = r
		sc.emit(r, r)
	}
	sc.i++
}
