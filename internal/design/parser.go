package design

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/gatewire-labs/gatewire/pkg/hw"
)

// ParseType parses port type syntax into an unbound hardware value.
//
// Grammar:
//
//	type  := ("in" | "out" | "flip")? base
//	base  := "bool"
//	       | "uint" width | "sint" width
//	       | "vec" "<" int "," type ">"
//	       | "{" name ":" type ("," name ":" type)* "}"
//	width := int | "[" hi ":" lo "]"
//
// The range form uint[7:0] declares an 8-bit value; ranges are plain
// syntax parsed eagerly, with hi >= lo >= 0 required.
func ParseType(src string) (hw.Value, error) {
	p := &typeParser{src: src}
	v, err := p.parseType()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.eof() {
		return nil, p.errorf("trailing input %q", p.src[p.pos:])
	}
	return v, nil
}

type typeParser struct {
	src string
	pos int
}

func (p *typeParser) errorf(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("port type %q: offset %d: %s", p.src, p.pos, msg)
}

func (p *typeParser) eof() bool { return p.pos >= len(p.src) }

func (p *typeParser) skipSpace() {
	for !p.eof() && unicode.IsSpace(rune(p.src[p.pos])) {
		p.pos++
	}
}

func (p *typeParser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *typeParser) expect(c byte) error {
	p.skipSpace()
	if p.eof() || p.src[p.pos] != c {
		return p.errorf("expected %q", string(c))
	}
	p.pos++
	return nil
}

func (p *typeParser) ident() string {
	p.skipSpace()
	start := p.pos
	for !p.eof() {
		c := rune(p.src[p.pos])
		if !unicode.IsLetter(c) && c != '_' && !(p.pos > start && unicode.IsDigit(c)) {
			break
		}
		p.pos++
	}
	return p.src[start:p.pos]
}

func (p *typeParser) int() (int, error) {
	p.skipSpace()
	start := p.pos
	for !p.eof() && unicode.IsDigit(rune(p.src[p.pos])) {
		p.pos++
	}
	if p.pos == start {
		return 0, p.errorf("expected integer")
	}
	n, err := strconv.Atoi(p.src[start:p.pos])
	if err != nil {
		return 0, p.errorf("bad integer: %v", err)
	}
	return n, nil
}

func (p *typeParser) parseType() (hw.Value, error) {
	p.skipSpace()
	save := p.pos
	word := p.ident()

	dir := hw.Unspecified
	switch word {
	case "in":
		dir = hw.Input
	case "out":
		dir = hw.Output
	case "flip":
		dir = hw.Flipped
	default:
		p.pos = save
	}

	base, err := p.parseBase()
	if err != nil {
		return nil, err
	}
	if dir == hw.Unspecified {
		return base, nil
	}
	return hw.ApplyDirection(base, dir), nil
}

func (p *typeParser) parseBase() (hw.Value, error) {
	p.skipSpace()
	if p.peek() == '{' {
		return p.parseRecord()
	}

	word := p.ident()
	switch {
	case word == "bool":
		return hw.Bool(), nil
	case word == "vec":
		return p.parseVec()
	case word == "uint" || word == "sint":
		w, err := p.parseWidth()
		if err != nil {
			return nil, err
		}
		if word == "sint" {
			return hw.SInt(w), nil
		}
		return hw.UInt(w), nil
	case strings.HasPrefix(word, "uint") || strings.HasPrefix(word, "sint"):
		// Suffix form: uint8, sint16.
		w, err := strconv.Atoi(word[4:])
		if err != nil || w <= 0 {
			return nil, p.errorf("bad width in %q", word)
		}
		if strings.HasPrefix(word, "sint") {
			return hw.SInt(w), nil
		}
		return hw.UInt(w), nil
	default:
		return nil, p.errorf("unknown type %q", word)
	}
}

// parseWidth accepts the range form [hi:lo] after a bare uint/sint keyword.
func (p *typeParser) parseWidth() (int, error) {
	p.skipSpace()
	if p.peek() != '[' {
		return p.int()
	}
	p.pos++
	hi, err := p.int()
	if err != nil {
		return 0, err
	}
	if err := p.expect(':'); err != nil {
		return 0, err
	}
	lo, err := p.int()
	if err != nil {
		return 0, err
	}
	if err := p.expect(']'); err != nil {
		return 0, err
	}
	if hi < lo {
		return 0, p.errorf("range [%d:%d] is inverted", hi, lo)
	}
	return hi - lo + 1, nil
}

func (p *typeParser) parseVec() (hw.Value, error) {
	if err := p.expect('<'); err != nil {
		return nil, err
	}
	n, err := p.int()
	if err != nil {
		return nil, err
	}
	if err := p.expect(','); err != nil {
		return nil, err
	}
	elem, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if err := p.expect('>'); err != nil {
		return nil, err
	}
	v, err := hw.NewVec(elem, n)
	if err != nil {
		return nil, p.errorf("%v", err)
	}
	return v, nil
}

func (p *typeParser) parseRecord() (hw.Value, error) {
	if err := p.expect('{'); err != nil {
		return nil, err
	}
	var fields []hw.Field
	p.skipSpace()
	if p.peek() == '}' {
		p.pos++
		r, err := hw.NewRecord()
		return r, err
	}
	for {
		name := p.ident()
		if name == "" {
			return nil, p.errorf("expected field name")
		}
		if err := p.expect(':'); err != nil {
			return nil, err
		}
		v, err := p.parseType()
		if err != nil {
			return nil, err
		}
		fields = append(fields, hw.Field{Name: name, Value: v})

		p.skipSpace()
		switch p.peek() {
		case ',':
			p.pos++
		case '}':
			p.pos++
			r, err := hw.NewRecord(fields...)
			if err != nil {
				return nil, p.errorf("%v", err)
			}
			return r, nil
		default:
			return nil, p.errorf("expected ',' or '}'")
		}
	}
}
