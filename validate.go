package paperdoll

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// ExprValidator compiles a boolean expression over the variable `text` into a
// [Validator] for ValidatableText options, e.g.
//
//	v, err := paperdoll.ExprValidator(`text matches "^[0-9]*$"`)
//
// Compilation failure is a construction problem and fails with
// [ConstructionError]. A runtime evaluation error marks the text invalid
// rather than aborting anything, matching the non-fatal validation contract.
func ExprValidator(expression string) (Validator, error) {
	if expression == "" {
		return nil, constructErrorf("Validator", "expression must not be empty")
	}
	program, err := expr.Compile(expression,
		expr.Env(map[string]any{"text": ""}),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &ConstructionError{
			Component: "Validator",
			Reason:    "compile expression " + expression,
			Err:       err,
		}
	}
	return func(text string) bool {
		ok, err := runBool(program, text)
		if err != nil {
			debugf("validator %q failed: %v", expression, err)
			return false
		}
		return ok
	}, nil
}

func runBool(program *vm.Program, text string) (bool, error) {
	out, err := expr.Run(program, map[string]any{"text": text})
	if err != nil {
		return false, err
	}
	ok, _ := out.(bool)
	return ok, nil
}
