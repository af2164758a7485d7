package solotest

import "testing"

func TestFP(t *testing.T) {
	tests := TestSuite{
		{"function basics", TestSequence{
			{"(fn {x} {x})", "(fn '(x) '(x))", ""},
			{"((fn {x} {x}) 1)", "1", ""},
			{"((fn {x y} {+ x y}) 1 2)", "3", ""},
			{`(\ {x} {* x x})`, "(fn '(x) '(* x x))", ""},
			{`((\ {x} {* x x}) 4)`, "16", ""},
			{"((fn {x} {}) 1)", "()", ""},
			{"(fn {1} {1})", "Error: function 'fn' cannot define non-symbol: got number, expected symbol", ""},
			{"(fn {x})", "Error: function 'fn' passed incorrect number of arguments: got 1, expected 2", ""},
			{"(fn {x} 1)", "Error: function 'fn' passed incorrect type for argument 1: got number, expected q-expr", ""},
		}},
		{"currying", TestSequence{
			{"(def {add} (fn {a b} {+ a b}))", "()", ""},
			{"(add 1)", "(fn '(b) '(+ a b))", ""},
			{"(type (add 1))", `"function"`, ""},
			{"((add 1) 2)", "3", ""},
			{"(add 1 2)", "3", ""},
			{"(def {inc} (add 1))", "()", ""},
			{"(inc 10)", "11", ""},
			{"(inc 20)", "21", ""},
			{"add", "(fn '(a b) '(+ a b))", ""},
			{"(add 1 2 3)", "Error: too many arguments, got 3, expected 2", ""},
			{"(inc 1 2)", "Error: too many arguments, got 2, expected 1", ""},
			{"(def {add3} (fn {a b c} {+ a b c}))", "()", ""},
			{"(((add3 1) 2) 3)", "6", ""},
			{"((add3 1 2) 3)", "6", ""},
			{"((add3 1) 2 3)", "6", ""},
		}},
		{"partial applications are values", TestSequence{
			{"(def {add} (fn {a b} {+ a b}))", "()", ""},
			{"(== (add 1) (add 1))", "1", ""},
			{"(== (add 1) (add 2))", "0", ""},
			{"(== add add)", "1", ""},
			{"(== add (add 1))", "0", ""},
			{"(def {fs} (list (add 1) (add 2)))", "()", ""},
			{"((eval (head fs)) 10)", "11", ""},
		}},
		{"variadic functions", TestSequence{
			{"((fn {& xs} {xs}) 1 2)", "'(1 2)", ""},
			{"((fn {& xs} {xs}) 1)", "'(1)", ""},
			{"((fn {x & xs} {list x xs}) 1 2 3)", "'(1 '(2 3))", ""},
			{"((fn {x & xs} {xs}) 1)", "'()", ""},
			{"((fn {x y & xs} {xs}) 1)", "(fn '(y & xs) '(xs))", ""},
			{"((fn {&} {1}) 1)", "Error: function format invalid: symbol '&' not followed by single symbol", ""},
		}},
		{"higher order functions", TestSequence{
			{"(def {fun} (fn {f xs} {eval (join (list f) xs)}))", "()", ""},
			{"(fun + {1 2 3})", "6", ""},
			{"(def {flip} (fn {f a b} {f b a}))", "()", ""},
			{"(flip - 1 10)", "9", ""},
			{"((flip -) 1 10)", "9", ""},
			{"(def {twice} (fn {f x} {f (f x)}))", "()", ""},
			{"(twice (fn {x} {* x 2}) 3)", "12", ""},
			{"(def {len} (fn {l} {if (== l {}) {0} {+ 1 (len (tail l))}}))", "()", ""},
			{"(len {1 2 3 4})", "4", ""},
			{"(def {fact} (fn {n} {if (<= n 1) {1} {* n (fact (- n 1))}}))", "()", ""},
			{"(fact 10)", "3628800", ""},
			{"(fact 25)", "Error: integer overflow", ""},
		}},
	}
	RunTestSuite(t, tests)
}
