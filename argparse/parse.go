package argparse

import (
	"fmt"
	"strings"
)

const endOfOptions = "--"

type parser struct {
	tokens   []string
	table    Table
	pos      int
	res      *Result
	supplied map[int]bool // supplied holds the table indices of options written during the scan.
}

// Parse scans tokens once from left to right, writing matched option values into their bound variables.
// The first token is the program name and is skipped.
//
// Parsing stops at the first error, which will wrap one of the Err* values in this package.
// Variables may have been partially updated when an error is returned, and the [Result] will be nil.
func Parse(tokens []string, table Table) (*Result, error) {
	if tokens == nil {
		return nil, fmt.Errorf("%w: nil tokens", ErrInvalidArguments)
	}
	for _, opt := range table {
		if !opt.hasStorage() {
			return nil, fmt.Errorf("%w: %s has no storage", ErrInvalidArguments, opt.Name())
		}
	}
	p := &parser{tokens: tokens, table: table, pos: 1, res: new(Result), supplied: map[int]bool{}}
	if err := p.run(); err != nil {
		return nil, err
	}
	if err := table.checkRequired(func(i int) bool { return p.supplied[i] }); err != nil {
		return nil, err
	}
	return p.res, nil
}

func (p *parser) run() error {
	for ; p.pos < len(p.tokens); p.pos++ {
		token := p.tokens[p.pos]
		if strings.IndexByte(token, 0) >= 0 {
			return fmt.Errorf("%w at position %d", ErrNullToken, p.pos)
		}
		switch {
		case token == endOfOptions:
			p.res.Positionals = append(p.res.Positionals, p.tokens[p.pos+1:]...)
			return nil
		case strings.HasPrefix(token, "--"):
			if err := p.long(token[2:]); err != nil {
				return err
			}
		case len(token) > 1 && token[0] == '-':
			if err := p.short(token); err != nil {
				return err
			}
		default:
			p.res.Positionals = append(p.res.Positionals, token)
		}
	}
	return nil
}

func (p *parser) long(arg string) error {
	name, value, hasValue := strings.Cut(arg, "=")
	idx := p.table.findLong(name)
	if idx < 0 {
		return fmt.Errorf("%w: --%s", ErrUnknownOption, name)
	}
	opt := p.table[idx]
	if opt.kind == KindFlag {
		if hasValue {
			return fmt.Errorf("%w: --%s", ErrFlagTakesNoValue, name)
		}
		return p.set(idx, "")
	}
	if !hasValue {
		var err error
		if value, err = p.next(opt); err != nil {
			return err
		}
	}
	return p.set(idx, value)
}

// short only considers the first character after the dash.
func (p *parser) short(token string) error {
	name := []rune(token[1:])[0]
	idx := p.table.findShort(name)
	if idx < 0 {
		return fmt.Errorf("%w: -%c", ErrUnknownOption, name)
	}
	opt := p.table[idx]
	if opt.kind == KindFlag {
		return p.set(idx, "")
	}
	value, err := p.next(opt)
	if err != nil {
		return err
	}
	return p.set(idx, value)
}

func (p *parser) set(idx int, value string) error {
	if err := p.table[idx].set(value); err != nil {
		return err
	}
	p.supplied[idx] = true
	return nil
}

// next consumes the token after the current one as a value for opt.
func (p *parser) next(opt Option) (string, error) {
	if p.pos+1 >= len(p.tokens) {
		return "", fmt.Errorf("%w: %s", ErrMissingValue, opt.Name())
	}
	p.pos++
	value := p.tokens[p.pos]
	if strings.IndexByte(value, 0) >= 0 {
		return "", fmt.Errorf("%w at position %d", ErrNullToken, p.pos)
	}
	return value, nil
}
