package evaluator_test

import (
	"bytes"
	"testing"

	"github.com/ensemble-lang/ensemble/source/evaluator"
	"github.com/ensemble-lang/ensemble/source/test_helper"
)

func TestSelfEvaluating(t *testing.T) {
	tests := []test_helper.TestItem{
		{Input: `42`, Want: `42`},
		{Input: `-3.5`, Want: `-3.5`},
		{Input: `"foo"`, Want: `"foo"`},
		{Input: `:kw`, Want: `:kw`},
		{Input: `nil`, Want: `nil`},
		{Input: `true`, Want: `true`},
		{Input: `()`, Want: `()`},
		{Input: `[1 (+ 1 1) 3]`, Want: `[1 2 3]`},
		{Input: `{"a" (+ 1 1)}`, Want: `{"a" 2}`},
		{Input: `(quote (+ 1 2))`, Want: `(+ 1 2)`},
		{Input: `'sym`, Want: `sym`},
	}
	test_helper.RunTest(t, "", tests, test_helper.TestValues)
}

func TestDefAndLet(t *testing.T) {
	tests := []test_helper.TestItem{
		{Input: `(def! x 3)`, Want: `3`},
		{Input: `(do (def! x 3) (def! y (+ x 1)) y)`, Want: `4`},
		{Input: `(let* (a 1 b (+ a 1)) b)`, Want: `2`},
		{Input: `(let* [a 1 b 2] (+ a b))`, Want: `3`},
		{Input: `(let* (a 1))`, Want: `nil`},
		{Input: `(do (def! x 1) (let* (x 2) x))`, Want: `2`},
		{Input: `(do (def! x 1) (let* (x 2) x) x)`, Want: `1`},
		{Input: `(let* (x 1) (let* (x 2) x))`, Want: `2`},
		{Input: `(let (x 5) x)`, Want: `5`},
		{Input: `(do (var z 7) z)`, Want: `7`},
	}
	test_helper.RunTest(t, "", tests, test_helper.TestValues)
}

func TestIfAndDo(t *testing.T) {
	tests := []test_helper.TestItem{
		{Input: `(if true 1 2)`, Want: `1`},
		{Input: `(if false 1 2)`, Want: `2`},
		{Input: `(if nil 1 2)`, Want: `2`},
		{Input: `(if 0 1 2)`, Want: `1`},
		{Input: `(if "" 1 2)`, Want: `1`},
		{Input: `(if () 1 2)`, Want: `1`},
		{Input: `(if false 1)`, Want: `nil`},
		{Input: `(do)`, Want: `nil`},
		{Input: `(do 1 2 3)`, Want: `3`},
	}
	test_helper.RunTest(t, "", tests, test_helper.TestValues)
}

func TestFunctions(t *testing.T) {
	tests := []test_helper.TestItem{
		{Input: `(inc 41)`, Want: `42`},
		{Input: `((fn* (a b) (+ a b)) 2 3)`, Want: `5`},
		{Input: `((fn* [a] a) 9)`, Want: `9`},
		{Input: `((fn* (& xs) xs) 1 2 3)`, Want: `(1 2 3)`},
		{Input: `((fn* (a & xs) xs) 1)`, Want: `()`},
		{Input: `(fact 10)`, Want: `3628800`},
		{Input: `(do (def! down (fn* (n) (if (= n 0) 0 (+ 1 (down (- n 1)))))) (down 2000))`, Want: `2000`},
		{Input: `((make-adder 3) 4)`, Want: `7`},
		{Input: `(map inc [1 2 3])`, Want: `(2 3 4)`},
		{Input: `(apply + 1 2 [3 4])`, Want: `10`},
		{Input: `((function (x) (* x x)) 5)`, Want: `25`},
		{Input: `((=> (x) x 6) 5)`, Want: `6`},
		{Input: `(fn? inc)`, Want: `true`},
		{Input: `(fn? unless)`, Want: `false`},
		{Input: `(macro? unless)`, Want: `true`},
		{Input: `(eval (list + 1 2))`, Want: `3`},
		{Input: `(eval (read-string "(inc 1)"))`, Want: `2`},
	}
	test_helper.RunTest(t, "functions.ens", tests, test_helper.TestValues)
}

func TestTailCalls(t *testing.T) {
	tests := []test_helper.TestItem{
		{Input: `(sum-to 10 0)`, Want: `55`},
		{Input: `(even? 1001)`, Want: `false`},
	}
	if !testing.Short() {
		tests = append(tests,
			test_helper.TestItem{Input: `(sum-to 1000000 0)`, Want: `500000500000`},
			test_helper.TestItem{Input: `(even? 100000)`, Want: `true`},
		)
	}
	test_helper.RunTest(t, "functions.ens", tests, test_helper.TestValues)
}

func TestMacros(t *testing.T) {
	tests := []test_helper.TestItem{
		{Input: `(macroexpand '(unless false 7 8))`, Want: `(if false 8 7)`},
		{Input: `(macroexpand (quote (unless true 1 2)))`, Want: `(if true 2 1)`},
		{Input: `(let* (form '(unless false 7 8)) (macroexpand form))`, Want: `(if false 8 7)`},
		{Input: `(macroexpand 1)`, Want: `1`},
		{Input: `(unless false 7 8)`, Want: `7`},
		{Input: `(unless true 7 8)`, Want: `8`},
		{Input: `(macroexpand '(inc 1))`, Want: `(inc 1)`},
		{Input: `(do (defmacro! one (fn* () 1)) (one))`, Want: `1`},
		{Input: `(cond false 1 nil 2 :else 3)`, Want: `3`},
		{Input: `(cond)`, Want: `nil`},
		{Input: `(not false)`, Want: `true`},
		{Input: `(not 0)`, Want: `false`},
	}
	test_helper.RunTest(t, "functions.ens", tests, test_helper.TestValues)
}

func TestQuasiquote(t *testing.T) {
	tests := []test_helper.TestItem{
		{Input: "`(1 ~@(list 2 3) 4)", Want: `(1 2 3 4)`},
		{Input: "(let* (x 7) `(a ~x))", Want: `(a 7)`},
		{Input: "`[1 ~(+ 1 1)]", Want: `[1 2]`},
		{Input: "`()", Want: `()`},
		{Input: "`sym", Want: `sym`},
		{Input: "`{\"a\" x}", Want: `{"a" x}`},
		{Input: "(quasiquoteexpand (a ~b))", Want: `(cons (quote a) (cons b ()))`},
		{Input: "(let* (xs [2 3]) `(1 ~@xs))", Want: `(1 2 3)`},
	}
	test_helper.RunTest(t, "", tests, test_helper.TestValues)
}

func TestAtoms(t *testing.T) {
	tests := []test_helper.TestItem{
		{Input: `(let* (a (atom 1)) (swap! a (fn* (x) (+ x 1))) (deref a))`, Want: `2`},
		{Input: `(let* (a (atom 1)) (swap! a + 10 20))`, Want: `31`},
		{Input: `(do (reset! counter 5) @counter)`, Want: `5`},
		{Input: `(do (swap! counter inc) (swap! counter inc) @counter)`, Want: `2`},
		{Input: `(atom? counter)`, Want: `true`},
	}
	test_helper.RunTest(t, "functions.ens", tests, test_helper.TestValues)
}

func TestTryCatch(t *testing.T) {
	tests := []test_helper.TestItem{
		{Input: `(try* (throw "boom") (catch* e (unwrap e)))`, Want: `"boom"`},
		{Input: `(try* (throw {"code" 42}) (catch* e (get (unwrap e) "code")))`, Want: `42`},
		{Input: `(try* (abc 1 2) (catch* e (unwrap e)))`, Want: `"'abc' not found"`},
		{Input: `(try* (nth [1] 5) (catch* e (error? e)))`, Want: `true`},
		{Input: `(try* 42 (catch* e 0))`, Want: `42`},
		{Input: `(try* 42)`, Want: `42`},
		{Input: `(try (throw 1) (catch e (+ (unwrap e) 1)))`, Want: `2`},
		{Input: `(try* (try* (throw 1) (catch* e (throw e))) (catch* f (unwrap f)))`, Want: `1`},
		{Input: `(try* (cond 1) (catch* e (unwrap e)))`, Want: `"odd number of forms to cond"`},
		{Input: `(do (def! f (fn* (n) (+ 1 (f n)))) (try* (f 100000000) (catch* e :caught)))`, Want: `:caught`},
		{Input: `(do (def! f (fn* (n) (+ 1 (f n)))) (try* (f 1) (catch* e nil)) (+ 1 2))`, Want: `3`},
	}
	test_helper.RunTest(t, "", tests, test_helper.TestValues)
}

func TestErrors(t *testing.T) {
	tests := []test_helper.TestItem{
		{Input: `(abc 1 2)`, Want: `eval/symbol`},
		{Input: `(1 2)`, Want: `eval/apply/func`},
		{Input: `(throw "x")`, Want: `eval/throw`},
		{Input: `((fn* (a) a))`, Want: `eval/apply/arity`},
		{Input: `(let* (a) a)`, Want: `eval/bindings`},
		{Input: `(let* (1 2) 3)`, Want: `eval/form/symbol`},
		{Input: `(def! 1 2)`, Want: `eval/form/symbol`},
		{Input: `(if)`, Want: `eval/form/args`},
		{Input: `(fn* (a & b c) a)`, Want: `eval/params`},
		{Input: `(try* 1 (finally 2))`, Want: `eval/catch`},
		{Input: `(+ 1 "a")`, Want: `built/type`},
		{Input: `(count 1 2)`, Want: `built/arity`},
		{Input: `(nth [1] 5)`, Want: `built/index`},
		{Input: `(do (def! f (fn* (n) (+ 1 (f n)))) (f 1))`, Want: `eval/depth`},
		{Input: `(1 2`, Want: `read/eof/seq`},
		{Input: `)`, Want: `read/unexpected`},
		{Input: `(try* (1 2 (catch* e e))`, Want: `read/eof/seq`},
	}
	test_helper.RunTest(t, "", tests, test_helper.TestErrors)
}

func TestPrintingGoesToOut(t *testing.T) {
	var out bytes.Buffer
	env := evaluator.NewEnvironment(&out)
	got, e := evaluator.Rep(`(do (prn "a" 1) (println "a" 1))`, env)
	if e != nil {
		t.Fatalf("Test failed with error %v.", e)
	}
	if got != "nil" {
		t.Fatalf(`Test failed | Wanted : nil | Got : %s.`, got)
	}
	if out.String() != "\"a\" 1\na 1\n" {
		t.Fatalf(`Test failed | Wanted : %q | Got : %q.`, "\"a\" 1\na 1\n", out.String())
	}
}
