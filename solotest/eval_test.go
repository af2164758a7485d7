package solotest

import (
	"testing"
)

func TestEval(t *testing.T) {
	tests := TestSuite{
		{"atoms", TestSequence{
			{"3", "3", ""},
			{"-3", "-3", ""},
			{"2.5", "2.5", ""},
			{`"abc"`, `"abc"`, ""},
			{`"a\tb"`, `"a\tb"`, ""},
			{"()", "()", ""},
			{"{}", "'()", ""},
			{"{1 2 x}", "'(1 2 x)", ""},
			{"'(1 (+ 1 1))", "'(1 (+ 1 1))", ""},
			{"'x", "'(x)", ""},
			{"+", "<builtin>", ""},
			{"a", "Error: Unbound symbol 'a'", ""},
		}},
		{"fixed points", TestSequence{
			{"(5)", "5", ""},
			{"((5))", "5", ""},
			{`("s")`, `"s"`, ""},
			{`(eval {(error "e")})`, "Error: e", ""},
			{"(1 2)", "Error: S-expression starts with incorrect type: expected function, got number", ""},
			{`("f" 1)`, "Error: S-expression starts with incorrect type: expected function, got string", ""},
		}},
		{"arithmetic", TestSequence{
			{"(+ 1 2)", "3", ""},
			{"(+ 1 2 3 4)", "10", ""},
			{"(- 10 1 2)", "7", ""},
			{"(- 2)", "-2", ""},
			{"(- 2.5)", "-2.5", ""},
			{"(* 2 3 4)", "24", ""},
			{"(/ 7 2)", "3", ""},
			{"(/ -7 2)", "-3", ""},
			{"(/ 7.0 2)", "3.5", ""},
			{"(+ 1 1.5)", "2.5", ""},
			{"(* 2 0.75)", "1.5", ""},
			{"(+ 1.5 1.5)", "3", ""},
			{"(+ 1 (* 2 3))", "7", ""},
			{"(+ 5)", "5", ""},
			{"(/ 1 0)", "Error: division by zero", ""},
			{"(/ 1.5 0)", "Error: division by zero", ""},
			{"(/ 1 0.0)", "Error: division by zero", ""},
			{"(+ 9223372036854775807 1)", "Error: integer overflow", ""},
			{"(- -9223372036854775807 2)", "Error: integer overflow", ""},
			{"(* 4611686018427387904 2)", "Error: integer overflow", ""},
			{"(- (- -9223372036854775807 1))", "Error: integer overflow", ""},
			{"(+ 1 {})", "Error: function '+' passed incorrect type for argument 1: got q-expr, expected number", ""},
			{`(- "a")`, "Error: function '-' passed incorrect type for argument 0: got string, expected number", ""},
		}},
		{"lists", TestSequence{
			{"(list 1 2 3)", "'(1 2 3)", ""},
			{"(list)", "<builtin>", ""},
			{"(head (list 1 2 3))", "'(1)", ""},
			{"(tail (list 1 2 3))", "'(2 3)", ""},
			{"(tail {1})", "'()", ""},
			{"(head {})", "Error: function 'head' passed {}", ""},
			{"(tail {})", "Error: function 'tail' passed {}", ""},
			{"(head {1} {2})", "Error: function 'head' passed incorrect number of arguments: got 2, expected 1", ""},
			{"(head 1)", "Error: function 'head' passed incorrect type for argument 0: got number, expected q-expr", ""},
			{"(join {1 2} {3} {})", "'(1 2 3)", ""},
			{"(join {1} 2)", "Error: function 'join' passed incorrect type for argument 1: got number, expected q-expr", ""},
			{"(eval {+ 1 2})", "3", ""},
			{"(eval (list + 1 2))", "3", ""},
			{"(eval (head {(+ 1 2) (+ 10 20)}))", "3", ""},
			{"(eval {})", "()", ""},
			{"(eval 1)", "Error: function 'eval' passed incorrect type for argument 0: got number, expected q-expr", ""},
		}},
		{"conditionals", TestSequence{
			{"(== (list 1 2) (list 1 2))", "1", ""},
			{"(== (list 1 2) (list 2 1))", "0", ""},
			{"(!= (list 1 2) (list 2 1))", "1", ""},
			{"(== 1 1.0)", "1", ""},
			{`(== "a" "a")`, "1", ""},
			{`(== "a" 'a)`, "0", ""},
			{"(== + +)", "1", ""},
			{"(== + -)", "0", ""},
			{"(== 1)", "Error: function '==' passed incorrect number of arguments: got 1, expected 2", ""},
			{"(> 2 1)", "1", ""},
			{"(< 2 1)", "0", ""},
			{"(>= 1 1)", "1", ""},
			{"(<= 1.5 1)", "0", ""},
			{"(< 1 1.5)", "1", ""},
			{"(> {} 1)", "Error: function '>' passed incorrect type for argument 0: got q-expr, expected number", ""},
			{"(if 1 {+ 1 1} {+ 2 2})", "2", ""},
			{"(if 0 {+ 1 1} {+ 2 2})", "4", ""},
			{"(if 0.0 {1} {2})", "2", ""},
			{"(if (== 1 1) {} {2})", "()", ""},
			{"(if {} {1} {2})", "Error: function 'if' passed incorrect type for argument 0: got q-expr, expected number", ""},
			{"(if 1 {1})", "Error: function 'if' passed incorrect number of arguments: got 2, expected 3", ""},
		}},
		{"types", TestSequence{
			{"(type 1)", `"number"`, ""},
			{"(type 1.5)", `"number"`, ""},
			{`(type "s")`, `"string"`, ""},
			{"(type {})", `"q-expr"`, ""},
			{"(type ())", `"s-expr"`, ""},
			{"(type +)", `"builtin"`, ""},
			{"(type (fn {x} {x}))", `"function"`, ""},
			{`(type (error "e"))`, "Error: e", ""},
			{"(type (head {x}))", `"q-expr"`, ""},
			{"(type 1 2)", "Error: function 'type' passed incorrect number of arguments: got 2, expected 1", ""},
		}},
		{"print", TestSequence{
			{`(print 1 "a")`, "()", "1 \"a\" \n"},
			{"(print {1 x} (fn {a} {a}))", "()", "'(1 x) (fn '(a) '(a)) \n"},
			{"(print (+ 1 (print 2)))", "Error: function '+' passed incorrect type for argument 1: got s-expr, expected number", "2 \n"},
		}},
		{"error precedence", TestSequence{
			{"(+ 1 (/ 1 0) (head (list)))", "Error: division by zero", ""},
			{`(+ (error "first") (print "x") (error "second"))`, "Error: first", "\"x\" \n"},
			{`(error "user message")`, "Error: user message", ""},
			{"(error 1)", "Error: function 'error' passed incorrect type for argument 0: got number, expected string", ""},
		}},
	}
	RunTestSuite(t, tests)
}
