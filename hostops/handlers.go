package hostops

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ovum-lang/oiljit/internal/platform"
	"github.com/ovum-lang/oiljit/lower"
)

// buildHandlers wires every lower.OpCode to a concrete Go implementation.
// Grouped in the same order as SPEC_FULL.md §C lists them: I/O, strings,
// conversions, filesystem, time, process, OS, random, memory, then the
// call/vtable/reflection family that SPEC_FULL.md §C.2 ratifies as
// trampoline-routed rather than left unlowered.
func buildHandlers(m *Manager) map[lower.OpCode]func(StackAccess) error {
	h := map[lower.OpCode]func(StackAccess) error{}

	h[lower.OpFloatSqrt] = func(a StackAccess) error {
		v := floatFromBits(a.PopUint64())
		a.PushUint64(floatBits(math.Sqrt(v)))
		return nil
	}
	h[lower.OpPrint] = func(a StackAccess) error {
		_, err := m.Stdout.WriteString(a.PopString())
		return err
	}
	h[lower.OpPrintLine] = func(a StackAccess) error {
		_, err := m.Stdout.WriteString(a.PopString() + "\n")
		return err
	}
	h[lower.OpReadLine] = func(a StackAccess) error {
		line, err := m.Stdin.ReadLine()
		if err != nil {
			return err
		}
		a.PushString(line)
		return nil
	}
	h[lower.OpPushString] = func(a StackAccess) error {
		return m.pushInternedString(a, a.PopUint64())
	}

	// String operations.
	h[lower.OpStringConcat] = func(a StackAccess) error {
		rhs, lhs := a.PopString(), a.PopString()
		a.PushString(lhs + rhs)
		return nil
	}
	h[lower.OpStringLength] = func(a StackAccess) error {
		a.PushUint64(uint64(len(a.PopString())))
		return nil
	}
	h[lower.OpStringEqual] = func(a StackAccess) error {
		rhs, lhs := a.PopString(), a.PopString()
		a.PushUint64(boolToUint64(lhs == rhs))
		return nil
	}
	h[lower.OpStringCompare] = func(a StackAccess) error {
		rhs, lhs := a.PopString(), a.PopString()
		a.PushUint64(uint64(int64(strings.Compare(lhs, rhs))))
		return nil
	}
	h[lower.OpStringToUpper] = func(a StackAccess) error {
		a.PushString(strings.ToUpper(a.PopString()))
		return nil
	}
	h[lower.OpStringToLower] = func(a StackAccess) error {
		a.PushString(strings.ToLower(a.PopString()))
		return nil
	}
	h[lower.OpStringCharAt] = func(a StackAccess) error {
		idx := a.PopUint64()
		s := a.PopString()
		runes := []rune(s)
		if idx >= uint64(len(runes)) {
			return fmt.Errorf("hostops: StringCharAt index %d out of range for length %d", idx, len(runes))
		}
		a.PushUint64(uint64(runes[idx]))
		return nil
	}
	h[lower.OpStringSubstring] = func(a StackAccess) error {
		length := a.PopUint64()
		start := a.PopUint64()
		runes := []rune(a.PopString())
		end := start + length
		if start > uint64(len(runes)) || end > uint64(len(runes)) {
			return fmt.Errorf("hostops: StringSubstring range [%d,%d) out of bounds for length %d", start, end, len(runes))
		}
		a.PushString(string(runes[start:end]))
		return nil
	}

	// Conversions.
	h[lower.OpIntToFloat] = func(a StackAccess) error {
		a.PushUint64(floatBits(float64(int64(a.PopUint64()))))
		return nil
	}
	h[lower.OpFloatToInt] = func(a StackAccess) error {
		a.PushUint64(uint64(int64(floatFromBits(a.PopUint64()))))
		return nil
	}
	h[lower.OpIntToByte] = func(a StackAccess) error {
		a.PushUint64(uint64(byte(a.PopUint64())))
		return nil
	}
	h[lower.OpByteToInt] = func(a StackAccess) error {
		a.PushUint64(a.PopUint64() & 0xFF)
		return nil
	}
	h[lower.OpIntToString] = func(a StackAccess) error {
		a.PushString(strconv.FormatInt(int64(a.PopUint64()), 10))
		return nil
	}
	h[lower.OpFloatToString] = func(a StackAccess) error {
		a.PushString(strconv.FormatFloat(floatFromBits(a.PopUint64()), 'g', -1, 64))
		return nil
	}
	h[lower.OpStringToInt] = func(a StackAccess) error {
		v, err := strconv.ParseInt(a.PopString(), 10, 64)
		if err != nil {
			return fmt.Errorf("hostops: StringToInt: %w", err)
		}
		a.PushUint64(uint64(v))
		return nil
	}
	h[lower.OpStringToFloat] = func(a StackAccess) error {
		v, err := strconv.ParseFloat(a.PopString(), 64)
		if err != nil {
			return fmt.Errorf("hostops: StringToFloat: %w", err)
		}
		a.PushUint64(floatBits(v))
		return nil
	}

	// Filesystem.
	h[lower.OpFileExists] = func(a StackAccess) error {
		a.PushUint64(boolToUint64(platform.Exists(a.PopString())))
		return nil
	}
	h[lower.OpFileDelete] = func(a StackAccess) error { return platform.DeleteFile(a.PopString()) }
	h[lower.OpFileRead] = func(a StackAccess) error {
		contents, err := platform.ReadFile(a.PopString())
		if err != nil {
			return err
		}
		a.PushString(contents)
		return nil
	}
	h[lower.OpFileWrite] = func(a StackAccess) error {
		contents, path := a.PopString(), a.PopString()
		return platform.WriteFile(path, contents)
	}
	h[lower.OpFileAppend] = func(a StackAccess) error {
		contents, path := a.PopString(), a.PopString()
		return platform.AppendFile(path, contents)
	}
	h[lower.OpDirCreate] = func(a StackAccess) error { return platform.MkdirAll(a.PopString()) }
	h[lower.OpDirDelete] = func(a StackAccess) error { return platform.RemoveDir(a.PopString()) }
	h[lower.OpDirList] = func(a StackAccess) error {
		entries, err := platform.ListDir(a.PopString())
		if err != nil {
			return err
		}
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name
		}
		a.PushString(strings.Join(names, "\n"))
		return nil
	}
	h[lower.OpDirExists] = func(a StackAccess) error {
		a.PushUint64(boolToUint64(platform.Exists(a.PopString())))
		return nil
	}
	h[lower.OpGetCurrentDirectory] = func(a StackAccess) error {
		wd, err := platform.Getwd()
		if err != nil {
			return err
		}
		a.PushString(wd)
		return nil
	}
	h[lower.OpChangeDirectory] = func(a StackAccess) error { return platform.Chdir(a.PopString()) }

	// Time.
	h[lower.OpGetCurrentTime] = func(a StackAccess) error {
		a.PushUint64(uint64(time.Now().UnixNano()))
		return nil
	}
	h[lower.OpSleep] = func(a StackAccess) error {
		time.Sleep(time.Duration(a.PopUint64()) * time.Millisecond)
		return nil
	}

	// Process.
	h[lower.OpProcessExit] = func(a StackAccess) error {
		os.Exit(int(int64(a.PopUint64())))
		return nil
	}
	h[lower.OpGetCommandLineArgs] = func(a StackAccess) error {
		a.PushString(strings.Join(m.Args, "\x00"))
		return nil
	}

	// OS.
	h[lower.OpGetEnvironmentVariable] = func(a StackAccess) error {
		a.PushString(os.Getenv(a.PopString()))
		return nil
	}
	h[lower.OpSetEnvironmentVariable] = func(a StackAccess) error {
		value, key := a.PopString(), a.PopString()
		return os.Setenv(key, value)
	}
	h[lower.OpGetPlatformName] = func(a StackAccess) error {
		a.PushString(currentPlatformName())
		return nil
	}

	// Random.
	h[lower.OpRandomInt] = func(a StackAccess) error {
		hi, lo := int64(a.PopUint64()), int64(a.PopUint64())
		if hi <= lo {
			return fmt.Errorf("hostops: RandomInt bounds [%d,%d) are empty", lo, hi)
		}
		a.PushUint64(uint64(lo + m.Rand.Int63n(hi-lo)))
		return nil
	}
	h[lower.OpRandomFloat] = func(a StackAccess) error {
		a.PushUint64(floatBits(m.Rand.Float64()))
		return nil
	}
	h[lower.OpSeedRandom] = func(a StackAccess) error {
		m.reseed(int64(a.PopUint64()))
		return nil
	}

	// Memory. Allocate/Free operate on a host-owned arena rather than raw
	// mmap: the OIL commands only ever need opaque handles round-tripped
	// back through MemCopy/MemSet, not real pointer arithmetic visible to
	// the generated code.
	arena := newArena()
	h[lower.OpAllocate] = func(a StackAccess) error {
		a.PushUint64(arena.allocate(a.PopUint64()))
		return nil
	}
	h[lower.OpFree] = func(a StackAccess) error { return arena.free(a.PopUint64()) }
	h[lower.OpMemCopy] = func(a StackAccess) error {
		// Pushed left-to-right as (src, dst, length); popped in reverse.
		length, dst, src := a.PopUint64(), a.PopUint64(), a.PopUint64()
		return arena.copy(dst, src, length)
	}
	h[lower.OpMemSet] = func(a StackAccess) error {
		// Pushed left-to-right as (dst, value, length); popped in reverse.
		length, value, dst := a.PopUint64(), a.PopUint64(), a.PopUint64()
		return arena.set(dst, byte(value), length)
	}

	// Call/vtable/reflection family (SPEC_FULL.md §C.2): the object model
	// these operate against belongs to the host VM, which is an external
	// collaborator per spec.md §1. These handlers resolve the interned
	// name/offset argument and report it as an unimplemented dispatch
	// rather than silently no-opping, so a host VM wiring its own object
	// model in gets an obvious seam to replace.
	for _, op := range []lower.OpCode{
		lower.OpCall, lower.OpCallVirtual, lower.OpCallConstructor,
		lower.OpVTableGet, lower.OpVTableSet, lower.OpSafeCall,
		lower.OpIsType, lower.OpSizeOf,
		lower.OpLoadStatic, lower.OpSaveStatic, lower.OpGetField, lower.OpSetField,
	} {
		op := op
		h[op] = func(a StackAccess) error {
			idx := a.PopUint64()
			name := "<unknown>"
			if int(idx) < len(m.Names) {
				name = m.Names[idx]
			}
			return fmt.Errorf("hostops: %s: no host object model bound for %q", op, name)
		}
	}
	// Unwrap carries no identifier argument (it isn't in identArgOps): it
	// operates purely on the value already on the stack, so it gets the
	// same "no host object model" report without trying to read a name
	// index that was never pushed.
	h[lower.OpUnwrap] = func(a StackAccess) error {
		return fmt.Errorf("hostops: %s: no host object model bound", lower.OpUnwrap)
	}

	return h
}

func (m *Manager) pushInternedString(a StackAccess, idx uint64) error {
	if int(idx) >= len(m.Names) {
		return fmt.Errorf("hostops: interned name index %d out of range (have %d)", idx, len(m.Names))
	}
	a.PushString(m.Names[idx])
	return nil
}

func (m *Manager) reseed(seed int64) { m.Rand.Seed(seed) }

