package lower

// OpCode is the closed enumeration of complex-operation codes passed to
// the host trampoline (spec.md §6's wire contract: "a 64-bit operation
// code drawn from a closed enumeration"). The original source
// (AsmComplexOperationManager.hpp) only defines FLOAT_SQRT/PRINT/
// PRINT_LINE; SPEC_FULL.md §C finishes the set so every OIL command that
// needs host help has a documented code instead of being left unlowered.
type OpCode uint64

const (
	OpFloatSqrt OpCode = iota + 1
	OpPrint
	OpPrintLine
	OpReadLine
	OpPushString

	OpStringConcat
	OpStringLength
	OpStringEqual
	OpStringCompare
	OpStringToUpper
	OpStringToLower
	OpStringCharAt
	OpStringSubstring

	OpIntToFloat
	OpFloatToInt
	OpIntToByte
	OpByteToInt
	OpIntToString
	OpFloatToString
	OpStringToInt
	OpStringToFloat

	OpFileExists
	OpFileDelete
	OpFileRead
	OpFileWrite
	OpFileAppend
	OpDirCreate
	OpDirDelete
	OpDirList
	OpDirExists
	OpGetCurrentDirectory
	OpChangeDirectory

	OpGetCurrentTime
	OpSleep

	OpProcessExit
	OpGetCommandLineArgs

	OpGetEnvironmentVariable
	OpSetEnvironmentVariable
	OpGetPlatformName

	OpRandomInt
	OpRandomFloat
	OpSeedRandom

	OpAllocate
	OpFree
	OpMemCopy
	OpMemSet

	OpCall
	OpCallVirtual
	OpCallConstructor
	OpVTableGet
	OpVTableSet
	OpSafeCall
	OpIsType
	OpSizeOf
	OpUnwrap

	OpLoadStatic
	OpSaveStatic
	OpGetField
	OpSetField
)

// opCodeNames mirrors trampolineOps for diagnostics; String() must not be
// derived from trampolineOps directly since multiple OIL command names
// never map 1:1 back (none currently collide, but keeping the table
// separate avoids an iteration-order-dependent reverse lookup).
var opCodeNames = map[OpCode]string{
	OpFloatSqrt: "FloatSqrt", OpPrint: "Print", OpPrintLine: "PrintLine",
	OpReadLine: "ReadLine", OpPushString: "PushString",

	OpStringConcat: "StringConcat", OpStringLength: "StringLength",
	OpStringEqual: "StringEqual", OpStringCompare: "StringCompare",
	OpStringToUpper: "StringToUpper", OpStringToLower: "StringToLower",
	OpStringCharAt: "StringCharAt", OpStringSubstring: "StringSubstring",

	OpIntToFloat: "IntToFloat", OpFloatToInt: "FloatToInt",
	OpIntToByte: "IntToByte", OpByteToInt: "ByteToInt",
	OpIntToString: "IntToString", OpFloatToString: "FloatToString",
	OpStringToInt: "StringToInt", OpStringToFloat: "StringToFloat",

	OpFileExists: "FileExists", OpFileDelete: "FileDelete",
	OpFileRead: "FileRead", OpFileWrite: "FileWrite", OpFileAppend: "FileAppend",
	OpDirCreate: "DirCreate", OpDirDelete: "DirDelete", OpDirList: "DirList",
	OpDirExists: "DirExists", OpGetCurrentDirectory: "GetCurrentDirectory",
	OpChangeDirectory: "ChangeDirectory",

	OpGetCurrentTime: "GetCurrentTime", OpSleep: "Sleep",

	OpProcessExit: "ProcessExit", OpGetCommandLineArgs: "GetCommandLineArgs",

	OpGetEnvironmentVariable: "GetEnvironmentVariable",
	OpSetEnvironmentVariable: "SetEnvironmentVariable",
	OpGetPlatformName:        "GetPlatformName",

	OpRandomInt: "RandomInt", OpRandomFloat: "RandomFloat", OpSeedRandom: "SeedRandom",

	OpAllocate: "Allocate", OpFree: "Free", OpMemCopy: "MemCopy", OpMemSet: "MemSet",

	OpCall: "Call", OpCallVirtual: "CallVirtual", OpCallConstructor: "CallConstructor",
	OpVTableGet: "GetVTable", OpVTableSet: "SetVTable", OpSafeCall: "SafeCall",
	OpIsType: "IsType", OpSizeOf: "SizeOf", OpUnwrap: "Unwrap",

	OpLoadStatic: "LoadStatic", OpSaveStatic: "SaveStatic",
	OpGetField: "GetField", OpSetField: "SetField",
}

// String renders an OpCode as the OIL command name it was lowered from,
// for diagnostics in hostops and lowerer error messages.
func (c OpCode) String() string {
	if name, ok := opCodeNames[c]; ok {
		return name
	}
	return "OpCode(unknown)"
}

// identArgOps is the subset of trampolineOps whose single literal argument
// is an identifier/offset (spec.md §4.1's ArityIdent class), plus
// PushString with its ArityString literal, rather than being consumed
// purely from the hardware stack. Their interned
// string-table index is pushed before the trampoline call so the host
// manager can read it back via the RSP it receives (SPEC_FULL.md §C.2).
var identArgOps = map[string]bool{
	"Call": true, "CallVirtual": true, "CallConstructor": true,
	"GetVTable": true, "SetVTable": true, "SafeCall": true,
	"IsType": true, "SizeOf": true,
	"LoadStatic": true, "SaveStatic": true,
	"GetField": true, "SetField": true,
	"PushString": true,
}

// trampolineOps maps every OIL command routed through the trampoline to
// its operation code. Commands absent from this map and from the inline
// registry in lower.go are unsupported and rejected by Lower.
var trampolineOps = map[string]OpCode{
	"FloatSqrt": OpFloatSqrt,
	"Print":     OpPrint,
	"PrintLine": OpPrintLine,
	"ReadLine":  OpReadLine,
	"PushString": OpPushString,

	"StringConcat":    OpStringConcat,
	"StringLength":    OpStringLength,
	"StringEqual":     OpStringEqual,
	"StringCompare":   OpStringCompare,
	"StringToUpper":   OpStringToUpper,
	"StringToLower":   OpStringToLower,
	"StringCharAt":    OpStringCharAt,
	"StringSubstring": OpStringSubstring,

	"IntToFloat":    OpIntToFloat,
	"FloatToInt":    OpFloatToInt,
	"IntToByte":     OpIntToByte,
	"ByteToInt":     OpByteToInt,
	"IntToString":   OpIntToString,
	"FloatToString": OpFloatToString,
	"StringToInt":   OpStringToInt,
	"StringToFloat": OpStringToFloat,

	"FileExists":          OpFileExists,
	"FileDelete":          OpFileDelete,
	"FileRead":            OpFileRead,
	"FileWrite":           OpFileWrite,
	"FileAppend":          OpFileAppend,
	"DirCreate":           OpDirCreate,
	"DirDelete":           OpDirDelete,
	"DirList":             OpDirList,
	"DirExists":           OpDirExists,
	"GetCurrentDirectory": OpGetCurrentDirectory,
	"ChangeDirectory":     OpChangeDirectory,

	"GetCurrentTime": OpGetCurrentTime,
	"Sleep":          OpSleep,

	"ProcessExit":        OpProcessExit,
	"GetCommandLineArgs": OpGetCommandLineArgs,

	"GetEnvironmentVariable": OpGetEnvironmentVariable,
	"SetEnvironmentVariable": OpSetEnvironmentVariable,
	"GetPlatformName":        OpGetPlatformName,

	"RandomInt":   OpRandomInt,
	"RandomFloat": OpRandomFloat,
	"SeedRandom":  OpSeedRandom,

	"Allocate": OpAllocate,
	"Free":     OpFree,
	"MemCopy":  OpMemCopy,
	"MemSet":   OpMemSet,

	"Call":            OpCall,
	"CallVirtual":     OpCallVirtual,
	"CallConstructor": OpCallConstructor,
	"GetVTable":       OpVTableGet,
	"SetVTable":       OpVTableSet,
	"SafeCall":        OpSafeCall,
	"IsType":          OpIsType,
	"SizeOf":          OpSizeOf,
	"Unwrap":          OpUnwrap,

	"LoadStatic": OpLoadStatic,
	"SaveStatic": OpSaveStatic,
	"GetField":   OpGetField,
	"SetField":   OpSetField,
}
