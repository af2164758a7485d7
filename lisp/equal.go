package lisp

// Bool returns the number 1 if ok is true and 0 otherwise.
func Bool(ok bool) *Num {
	if ok {
		return Int(1)
	}
	return Int(0)
}

// Equal returns true if a and b are structurally equal.  Numbers are equal
// when their values are equal, regardless of whether either is a decimal.
// Closures are equal when they have the same formals, the same body and
// equal captured bindings.
func Equal(a, b LVal) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type() != b.Type() {
		return false
	}
	switch a := a.(type) {
	case *Num:
		return compareNum(a, b.(*Num)) == 0
	case *Str:
		return a.Str == b.(*Str).Str
	case *Sym:
		return a.Name == b.(*Sym).Name
	case *Err:
		return a.Msg == b.(*Err).Msg
	case *Builtin:
		return a.Name == b.(*Builtin).Name
	case *Closure:
		return closureEqual(a, b.(*Closure))
	case *SExpr:
		return cellsEqual(a.Cells, b.(*SExpr).Cells)
	case *QExpr:
		return cellsEqual(a.Cells, b.(*QExpr).Cells)
	}
	return false
}

func cellsEqual(a, b []LVal) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func closureEqual(a, b *Closure) bool {
	if len(a.Formals) != len(b.Formals) {
		return false
	}
	for i := range a.Formals {
		if a.Formals[i] != b.Formals[i] {
			return false
		}
	}
	var abody, bbody []LVal
	if a.Body != nil {
		abody = a.Body.Cells
	}
	if b.Body != nil {
		bbody = b.Body.Cells
	}
	if !cellsEqual(abody, bbody) {
		return false
	}
	return scopeEqual(a.Env, b.Env)
}

func scopeEqual(a, b *LEnv) bool {
	var ascope, bscope map[string]LVal
	if a != nil {
		ascope = a.Scope
	}
	if b != nil {
		bscope = b.Scope
	}
	if len(ascope) != len(bscope) {
		return false
	}
	for k, v := range ascope {
		w, ok := bscope[k]
		if !ok || !Equal(v, w) {
			return false
		}
	}
	return true
}

// compareNum returns -1, 0 or 1 as x is less than, equal to or greater than
// y.
func compareNum(x, y *Num) int {
	if !x.Decimal && !y.Decimal {
		switch {
		case x.Int < y.Int:
			return -1
		case x.Int > y.Int:
			return 1
		}
		return 0
	}
	a, b := x.Float64(), y.Float64()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
