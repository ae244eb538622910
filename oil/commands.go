package oil

// Arity classifies how many literal operands a command consumes from the
// token stream immediately following its identifier, and of what kind.
type Arity uint8

const (
	// ArityZero commands consume only their identifier.
	ArityZero Arity = iota
	// ArityNumeric commands consume one numeric literal (int or float
	// lexeme; the lowerer parses the exact representation per-command).
	ArityNumeric
	// ArityString commands consume one string literal.
	ArityString
	// ArityIdent commands consume one identifier/offset literal: a local
	// index, a field/static name, a call target, or a branch label.
	ArityIdent
)

// Vocabulary is the closed set of recognized OIL command names, mapped to
// their arity class. This is the external wire format of OIL (spec.md §6):
// any name absent from this table is rejected with a *ParseError of Kind
// UnknownCommand.
var Vocabulary = map[string]Arity{
	// Stack.
	"PushNull":     ArityZero,
	"Pop":          ArityZero,
	"Dup":          ArityZero,
	"Swap":         ArityZero,
	"IsNull":       ArityZero,
	"Unwrap":       ArityZero,
	"NullCoalesce": ArityZero,

	// Literal pushes and the one non-stack numeric op (Rotate).
	"PushInt":    ArityNumeric,
	"PushFloat":  ArityNumeric,
	"PushBool":   ArityNumeric,
	"PushChar":   ArityNumeric,
	"PushByte":   ArityNumeric,
	"Rotate":     ArityNumeric,
	"PushString": ArityString,

	// Integer arithmetic, comparisons, bitwise, shifts.
	"IntAdd":          ArityZero,
	"IntSubtract":     ArityZero,
	"IntMultiply":     ArityZero,
	"IntDivide":       ArityZero,
	"IntModulo":       ArityZero,
	"IntNegate":       ArityZero,
	"IntIncrement":    ArityZero,
	"IntDecrement":    ArityZero,
	"IntEqual":        ArityZero,
	"IntNotEqual":     ArityZero,
	"IntLessThan":     ArityZero,
	"IntLessEqual":    ArityZero,
	"IntGreaterThan":  ArityZero,
	"IntGreaterEqual": ArityZero,
	"IntAnd":          ArityZero,
	"IntOr":           ArityZero,
	"IntXor":          ArityZero,
	"IntNot":          ArityZero,
	"IntLeftShift":    ArityZero,
	"IntRightShift":   ArityZero,

	// Float arithmetic and comparisons.
	"FloatAdd":          ArityZero,
	"FloatSubtract":     ArityZero,
	"FloatMultiply":     ArityZero,
	"FloatDivide":       ArityZero,
	"FloatNegate":       ArityZero,
	"FloatEqual":        ArityZero,
	"FloatNotEqual":     ArityZero,
	"FloatLessThan":     ArityZero,
	"FloatLessEqual":    ArityZero,
	"FloatGreaterThan":  ArityZero,
	"FloatGreaterEqual": ArityZero,
	"FloatSqrt":         ArityZero,

	// Byte arithmetic and comparisons.
	"ByteAdd":          ArityZero,
	"ByteSubtract":     ArityZero,
	"ByteMultiply":     ArityZero,
	"ByteDivide":       ArityZero,
	"ByteModulo":       ArityZero,
	"ByteEqual":        ArityZero,
	"ByteNotEqual":     ArityZero,
	"ByteLessThan":     ArityZero,
	"ByteLessEqual":    ArityZero,
	"ByteGreaterThan":  ArityZero,
	"ByteGreaterEqual": ArityZero,

	// Boolean logic.
	"BoolAnd":    ArityZero,
	"BoolOr":     ArityZero,
	"BoolXor":    ArityZero,
	"BoolNot":    ArityZero,
	"BoolToByte": ArityZero,
	"BoolEqual":  ArityZero,

	// Input/output (trampoline).
	"Print":     ArityZero,
	"PrintLine": ArityZero,
	"ReadLine":  ArityZero,

	// String operations (trampoline).
	"StringConcat":    ArityZero,
	"StringLength":    ArityZero,
	"StringEqual":     ArityZero,
	"StringCompare":   ArityZero,
	"StringToUpper":   ArityZero,
	"StringToLower":   ArityZero,
	"StringCharAt":    ArityZero,
	"StringSubstring": ArityZero,

	// Conversions (trampoline, except the pure-register ones the lowerer
	// can still expand inline; kept trampoline-routed for a uniform rule).
	"IntToFloat":    ArityZero,
	"FloatToInt":    ArityZero,
	"IntToByte":     ArityZero,
	"ByteToInt":     ArityZero,
	"IntToString":   ArityZero,
	"FloatToString": ArityZero,
	"StringToInt":   ArityZero,
	"StringToFloat": ArityZero,

	// Filesystem (trampoline).
	"FileExists":          ArityZero,
	"FileDelete":          ArityZero,
	"FileRead":            ArityZero,
	"FileWrite":           ArityZero,
	"FileAppend":          ArityZero,
	"DirCreate":           ArityZero,
	"DirDelete":           ArityZero,
	"DirList":             ArityZero,
	"DirExists":           ArityZero,
	"GetCurrentDirectory": ArityZero,
	"ChangeDirectory":     ArityZero,

	// Time (trampoline).
	"GetCurrentTime": ArityZero,
	"Sleep":          ArityZero,

	// Process (trampoline).
	"ProcessExit":         ArityZero,
	"GetCommandLineArgs":  ArityZero,

	// OS (trampoline).
	"GetEnvironmentVariable": ArityZero,
	"SetEnvironmentVariable": ArityZero,
	"GetPlatformName":        ArityZero,

	// Random (trampoline).
	"RandomInt":   ArityZero,
	"RandomFloat": ArityZero,
	"SeedRandom":  ArityZero,

	// Memory (trampoline).
	"Allocate": ArityZero,
	"Free":     ArityZero,
	"MemCopy":  ArityZero,
	"MemSet":   ArityZero,

	// Locals, statics, fields: offset/identifier argument.
	"LoadLocal":  ArityIdent,
	"SaveLocal":  ArityIdent,
	"LoadStatic": ArityIdent,
	"SaveStatic": ArityIdent,
	"GetField":   ArityIdent,
	"SetField":   ArityIdent,

	// Call variants and reflection-ish ops: identifier argument, routed
	// through the trampoline (see SPEC_FULL.md §C.2).
	"Call":            ArityIdent,
	"CallVirtual":     ArityIdent,
	"CallConstructor": ArityIdent,
	"GetVTable":       ArityIdent,
	"SetVTable":       ArityIdent,
	"SafeCall":        ArityIdent,
	"IsType":          ArityIdent,
	"SizeOf":          ArityIdent,

	// Branches: identifier argument naming a label.
	"Jump":        ArityIdent,
	"JumpIfTrue":  ArityIdent,
	"JumpIfFalse": ArityIdent,
	"Label":       ArityIdent,
}
