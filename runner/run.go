package runner

import "github.com/ovum-lang/oiljit/databuffer"

// Run marshals data.Frame's locals into a flat argv, invokes fn, and
// unmarshals the DataBuffer's Result cell according to data.ResultType.
// This is the Runner half of spec.md §4.5's "ExecMem + Runner" stage; the
// oiljit package's JitExecutor.Run wraps this with the NotCompiled check
// and returns the Value to its caller. Neither function pushes the Value
// onto a VM machine stack.
func Run(fn *CompiledFn, data PassedExecutionData) (Value, error) {
	if data.Frame == nil {
		return Value{}, &RunError{Kind: EmptyFrame}
	}
	locals := data.Frame.Locals()
	argv := make([]uint64, len(locals))
	for i, v := range locals {
		argv[i] = v.Bits()
	}

	db := &databuffer.DataBuffer{}
	fn.Invoke(db, argv)

	return UnmarshalResult(db.Result, data.ResultType), nil
}
