package main

import (
	"fmt"
	"strings"
)

// signature.go implements spec.md §4.5's builtin argument type language and
// its lock-step checker. A signature is a short string drawn from the
// table in §4.5: lower-case letters (s l h b f p) mean "exactly one of
// that kind"; upper-case means "one or more"; '?' is any single value;
// '*' is any (possibly empty) tail; "(...)" is a sublist whose own
// elements must match the nested spec.

type sigItem struct {
	kind byte // 's','l','h','b','f','p' (lower exact-one), upper one-or-more,
	// '?' any-one, '*' any-tail, '(' sublist (Group holds its inner items)
	group []sigItem
}

func parseSignature(spec string) ([]sigItem, error) {
	items, rest, err := parseSigItems(spec, false)
	if err != nil {
		return nil, err
	}
	if rest != "" {
		return nil, fmt.Errorf("unexpected %q in signature %q", rest, spec)
	}
	return items, nil
}

func parseSigItems(spec string, inGroup bool) ([]sigItem, string, error) {
	var items []sigItem
	for len(spec) > 0 {
		c := spec[0]
		switch c {
		case ')':
			if !inGroup {
				return nil, "", fmt.Errorf("unbalanced ')' in signature")
			}
			return items, spec[1:], nil
		case '(':
			inner, rest, err := parseSigItems(spec[1:], true)
			if err != nil {
				return nil, "", err
			}
			items = append(items, sigItem{kind: '(', group: inner})
			spec = rest
		case 's', 'l', 'h', 'b', 'f', 'p', 'S', 'L', 'H', 'B', 'F', 'P', '?', '*':
			items = append(items, sigItem{kind: c})
			spec = spec[1:]
		default:
			return nil, "", fmt.Errorf("bad signature character %q", c)
		}
	}
	if inGroup {
		return nil, "", fmt.Errorf("missing ')' in signature")
	}
	return items, "", nil
}

func kindOf(c byte) Kind {
	switch c {
	case 's', 'S':
		return KindString
	case 'l', 'L':
		return KindList
	case 'h', 'H':
		return KindHash
	case 'b', 'B':
		return KindBool
	case 'f', 'F':
		return KindFile
	case 'p', 'P':
		return KindProcess
	}
	return KindVoid
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' && c != 0 }

// minArity is the fewest args an item can consume.
func minArity(it sigItem) int {
	switch it.kind {
	case '*':
		return 0
	default:
		return 1
	}
}

// checkSignature walks items and args in lockstep, per spec.md §4.5.
// It returns a nil error on a match, else a typeError describing the
// mismatch kind.
func checkSignature(items []sigItem, args []Value) error {
	pos := 0
	for i, it := range items {
		remainingMin := 0
		for _, later := range items[i+1:] {
			remainingMin += minArity(later)
		}
		budget := len(args) - pos - remainingMin
		switch it.kind {
		case '*':
			pos = len(args) - remainingMin
			if pos < 0 {
				return typeError{errNotEnoughArgs, "not enough arguments"}
			}
		case '?':
			if pos >= len(args) {
				return typeError{errNotEnoughArgs, "not enough arguments"}
			}
			pos++
		case '(':
			if pos >= len(args) {
				return typeError{errNotEnoughArgs, "not enough arguments"}
			}
			if !args[pos].IsList() {
				return typeError{errTypeMismatch, fmt.Sprintf("argument %d should be a list", pos+1)}
			}
			if err := checkSignature(it.group, args[pos].List()); err != nil {
				return err
			}
			pos++
		default:
			want := kindOf(it.kind)
			if isUpper(it.kind) {
				if budget < 1 {
					return typeError{errNotEnoughArgs, "not enough arguments"}
				}
				n := 0
				for pos+n < len(args) && n < budget && args[pos+n].Kind() == want {
					n++
				}
				if n == 0 {
					return typeError{errTypeMismatch, fmt.Sprintf("argument %d should be a %v", pos+1, want)}
				}
				pos += n
			} else {
				if pos >= len(args) {
					return typeError{errNotEnoughArgs, "not enough arguments"}
				}
				if args[pos].Kind() != want {
					return typeError{errTypeMismatch, fmt.Sprintf("argument %d should be a %v, got %v", pos+1, want, args[pos].Kind())}
				}
				pos++
			}
		}
	}
	if pos < len(args) {
		return typeError{errExtraneousArgs, "extraneous arguments"}
	}
	return nil
}

// usageBanner renders "(name <arg1> <arg2> ...) description", the help
// text printed on a type error (spec.md §4.5).
func usageBanner(b *Builtin) string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(b.Name)
	for _, it := range b.sig {
		sb.WriteByte(' ')
		sb.WriteString(sigItemLabel(it))
	}
	sb.WriteByte(')')
	if b.Desc != "" {
		sb.WriteByte(' ')
		sb.WriteString(b.Desc)
	}
	return sb.String()
}

func sigItemLabel(it sigItem) string {
	switch it.kind {
	case '?':
		return "<arg>"
	case '*':
		return "<arg>..."
	case '(':
		parts := make([]string, len(it.group))
		for i, g := range it.group {
			parts[i] = sigItemLabel(g)
		}
		return "(" + strings.Join(parts, " ") + ")"
	default:
		name := kindOf(it.kind).String()
		if isUpper(it.kind) {
			return "<" + name + ">..."
		}
		return "<" + name + ">"
	}
}
