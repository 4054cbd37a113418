package regex

import (
	"fmt"
	"strconv"

	"github.com/dekarrin/kleenex/errs"
)

// reserved metasymbols recognized by the parser; anything else is an
// ordinary letter.
const (
	metaUnion   = '|'
	metaLParen  = '('
	metaRParen  = ')'
	metaDot     = '.'
	metaStar    = '*'
	metaPlus    = '+'
	metaQuest   = '?'
	metaLBrace  = '{'
	metaRBrace  = '}'
	metaComma   = ','
)

var epsilonRune = []rune(EpsilonGlyph)[0]

// Parse parses input using the classical Kleene-algebra surface syntax
// (union '|', bare-adjacency concatenation, '*'/'+'/'?'/'{n}'/'{n,m}'/
// '{n,}' repetition, parenthesized grouping, '.' for any symbol, and the
// epsilon glyph for the empty word) into a REG[rune].
//
// If alphabet is non-nil, every letter appearing in input must be a
// member of it or Parse returns an errs.Error whose causes are
// errs.ErrUnknownLetter and an errs.SyntaxError pointing at the letter; if
// alphabet is nil, it is inferred as the set of
// letters that actually appear in input.
func Parse(input string, alphabet []rune) (REG[rune], error) {
	p := &parser{runes: []rune(input)}
	if alphabet != nil {
		p.restrict = true
		_, p.allowed = newAlphaSet(alphabet)
	} else {
		p.allowed = map[rune]bool{}
	}

	result, err := p.parseUnion()
	if err != nil {
		return REG[rune]{}, err
	}
	if p.pos != len(p.runes) {
		return REG[rune]{}, p.errorAt(fmt.Sprintf("unexpected %q", p.runes[p.pos]))
	}

	finalAlphabet := alphabet
	if !p.restrict {
		finalAlphabet = p.seenLetters()
	}
	return rebuildAlphabet(result, finalAlphabet), nil
}

type parser struct {
	runes    []rune
	pos      int
	restrict bool
	allowed  map[rune]bool
	seen     []rune
	seenSet  map[rune]bool
}

func (p *parser) seenLetters() []rune {
	return p.seen
}

func (p *parser) errorAt(msg string) error {
	return errs.New(msg, errs.NewSyntaxError(msg, string(p.runes), 1, p.pos+1))
}

func (p *parser) peek() (rune, bool) {
	if p.pos >= len(p.runes) {
		return 0, false
	}
	return p.runes[p.pos], true
}

func (p *parser) advance() rune {
	r := p.runes[p.pos]
	p.pos++
	return r
}

func (p *parser) parseUnion() (REG[rune], error) {
	first, err := p.parseConcat()
	if err != nil {
		return REG[rune]{}, err
	}
	parts := []REG[rune]{first}
	for {
		r, ok := p.peek()
		if !ok || r != metaUnion {
			break
		}
		p.advance()
		next, err := p.parseConcat()
		if err != nil {
			return REG[rune]{}, err
		}
		parts = append(parts, next)
	}
	if len(parts) == 1 {
		return parts[0], nil
	}
	return Union(parts...), nil
}

func (p *parser) parseConcat() (REG[rune], error) {
	var parts []REG[rune]
	for {
		r, ok := p.peek()
		if !ok || r == metaUnion || r == metaRParen {
			break
		}
		next, err := p.parseQuantified()
		if err != nil {
			return REG[rune]{}, err
		}
		parts = append(parts, next)
	}
	if len(parts) == 0 {
		return REG[rune]{}, p.errorAt("expected an expression")
	}
	if len(parts) == 1 {
		return parts[0], nil
	}
	return Concat(parts...), nil
}

func (p *parser) parseQuantified() (REG[rune], error) {
	atom, err := p.parseAtom()
	if err != nil {
		return REG[rune]{}, err
	}
	for {
		r, ok := p.peek()
		if !ok {
			break
		}
		switch r {
		case metaStar:
			p.advance()
			atom = Repeat(atom, 0, -1)
		case metaPlus:
			p.advance()
			atom = Repeat(atom, 1, -1)
		case metaQuest:
			p.advance()
			atom = Repeat(atom, 0, 1)
		case metaLBrace:
			lo, hi, err := p.parseBoundedRepeat()
			if err != nil {
				return REG[rune]{}, err
			}
			atom = Repeat(atom, lo, hi)
		default:
			return atom, nil
		}
	}
	return atom, nil
}

// parseBoundedRepeat consumes "{n}", "{n,}", or "{n,m}", the pos cursor
// having already been confirmed (by the caller) to be sitting on '{'.
func (p *parser) parseBoundedRepeat() (lo, hi int, err error) {
	p.advance() // consume '{'
	loDigits, ok := p.readDigits()
	if !ok {
		return 0, 0, p.errorAt("expected a number after '{'")
	}
	lo, _ = strconv.Atoi(loDigits)

	r, ok := p.peek()
	if !ok {
		return 0, 0, p.errorAt("unterminated '{'")
	}
	if r == metaRBrace {
		p.advance()
		return lo, lo, nil
	}
	if r != metaComma {
		return 0, 0, p.errorAt(fmt.Sprintf("expected ',' or '}', got %q", r))
	}
	p.advance() // consume ','

	hiDigits, hasHi := p.readDigits()
	r, ok = p.peek()
	if !ok || r != metaRBrace {
		return 0, 0, p.errorAt("expected '}'")
	}
	p.advance()
	if !hasHi {
		return lo, -1, nil
	}
	hi, _ = strconv.Atoi(hiDigits)
	return lo, hi, nil
}

func (p *parser) readDigits() (string, bool) {
	start := p.pos
	for {
		r, ok := p.peek()
		if !ok || r < '0' || r > '9' {
			break
		}
		p.advance()
	}
	if p.pos == start {
		return "", false
	}
	return string(p.runes[start:p.pos]), true
}

func (p *parser) parseAtom() (REG[rune], error) {
	r, ok := p.peek()
	if !ok {
		return REG[rune]{}, p.errorAt("unexpected end of input")
	}

	switch r {
	case metaLParen:
		p.advance()
		inner, err := p.parseUnion()
		if err != nil {
			return REG[rune]{}, err
		}
		closeTok, ok := p.peek()
		if !ok || closeTok != metaRParen {
			return REG[rune]{}, p.errorAt("expected ')'")
		}
		p.advance()
		return inner, nil
	case metaRParen:
		return REG[rune]{}, p.errorAt("unexpected ')'")
	case metaDot:
		p.advance()
		return NewDot[rune](nil), nil
	case epsilonRune:
		p.advance()
		return NewEpsilon[rune](nil), nil
	case metaStar, metaPlus, metaQuest, metaLBrace, metaRBrace, metaComma:
		return REG[rune]{}, p.errorAt(fmt.Sprintf("unexpected %q", r))
	default:
		p.advance()
		if p.restrict && !p.allowed[r] {
			msg := fmt.Sprintf("letter %q is not in the alphabet", r)
			return REG[rune]{}, errs.New(msg, errs.ErrUnknownLetter, errs.NewSyntaxError(msg, string(p.runes), 1, p.pos))
		}
		if p.seenSet == nil {
			p.seenSet = map[rune]bool{}
		}
		if !p.seenSet[r] {
			p.seenSet[r] = true
			p.seen = append(p.seen, r)
		}
		return NewLetter[rune](nil, r), nil
	}
}

// rebuildAlphabet re-stamps every node in r with the final alphabet,
// since individual atoms were built with a nil/partial alphabet during
// parsing (the full alphabet is only known once parsing finishes, for the
// inferred-alphabet case).
func rebuildAlphabet(r REG[rune], alphabet []rune) REG[rune] {
	sorted, set := newAlphaSet(alphabet)
	r.alphabet = sorted
	r.alphaSet = set
	for i := range r.children {
		r.children[i] = rebuildAlphabet(r.children[i], alphabet)
	}
	if r.repeated != nil {
		rebuilt := rebuildAlphabet(*r.repeated, alphabet)
		r.repeated = &rebuilt
	}
	return r
}
