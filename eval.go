package main

// eval.go implements spec.md §4.4, the standalone evaluator used by
// control-flow and quoting-aware builtins (if, while, repeat, filter,
// begin-last, define bodies, alias bodies) to force an already-parsed,
// possibly still-delayed Value into its current value. Unlike the fused
// parser in parse_plain.go (which dispatches eagerly while reading text),
// Eval operates on Value trees that already exist in memory.
//
// Ground rule: a single Eval call only consumes one level of delay. At
// the top call the
// "strength" threshold is computed by scanning left-to-right and rising to
// the highest delay seen so far among the children being reduced; whichever
// child's own delay is above that threshold is kept quoted (returned
// verbatim), while any child at or below it is dispatched as a command and
// its result spliced in. At the top level the threshold has already risen
// to each List child's own delay, so every top-level List is dispatched. Once a nested dispatch begins,
// the threshold is frozen for every level below it -- so a single Eval call
// peels exactly one layer of quoting off whatever was exactly at the
// top-level's own delay, and deeper-still quoting needs its own later Eval.

// Eval forces v: a non-list is returned unchanged; a List, whatever its
// delay, is treated as a one-element sequence and dispatched as a command
// via reduceSeq/evalListCommand below.
func (sh *Shell) Eval(v Value) Value {
	reduced := sh.reduceSeq([]Value{v}, false, 0)
	switch len(reduced) {
	case 0:
		return Void
	case 1:
		return reduced[0]
	default:
		return List(reduced...)
	}
}

// EvalList forces every element of vs, returning the reduced sequence as a
// new slice (vs itself is left unchanged), for when several independent
// quoted expressions must each be run.
func (sh *Shell) EvalList(vs []Value) []Value {
	return sh.reduceSeq(vs, false, 0)
}

func (sh *Shell) reduceSeq(children []Value, dispatch bool, strength int) []Value {
	var ret []Value
	for _, child := range children {
		if child.IsList() {
			flag := child.Delay()
			if !dispatch && strength < flag {
				strength = flag
			}
			if strength < flag {
				ret = append(ret, child)
			} else {
				result := sh.evalListCommand(child.List(), strength)
				ret = spliceValue(ret, result)
			}
		} else {
			ret = append(ret, child)
		}
	}
	return ret
}

func (sh *Shell) evalListCommand(children []Value, strength int) Value {
	reduced := sh.reduceSeq(children, true, strength)
	return sh.Dispatch(reduced)
}

// Force returns v as-is if it is not a List (it already holds whatever a
// prior dispatch computed); if it is a still-quoted List, it forces exactly
// one level via Eval. Control-flow builtins (if/while/and/or/...) use this
// so that both "(if (= a b) ...)" (branches already evaluated eagerly by
// the fused parser) and "(if ~(= a b) ...)" (branches arriving quoted,
// forced on demand) produce the same observable result.
func (sh *Shell) Force(v Value) Value {
	if v.IsList() {
		return sh.Eval(v)
	}
	return v
}
