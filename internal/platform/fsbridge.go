package platform

import (
	"os"
	"sort"
)

// Dirent is one entry of a directory listing returned by ListDir. This is
// a deliberately small adaptation of the teacher's WASI-oriented Dirent
// (internal/platform/dir.go upstream carries an Ino and a full fs.FileMode
// for wasi-filesystem parity); the OpDirList trampoline call only ever
// needs a name and whether the entry is itself a directory.
type Dirent struct {
	Name  string
	IsDir bool
}

// Exists reports whether path names an existing file or directory,
// backing both the OpFileExists and OpDirExists trampoline operations.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ReadFile, WriteFile, AppendFile and DeleteFile back the OpFileRead/
// OpFileWrite/OpFileAppend/OpFileDelete trampoline operations directly
// against the standard library; there is no WASI fd table to maintain
// here, unlike the teacher's File abstraction, since the OIL VM never
// holds a file descriptor open across OIL instructions.
func ReadFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	return string(b), err
}

func WriteFile(path, contents string) error {
	return os.WriteFile(path, []byte(contents), 0o644)
}

func AppendFile(path, contents string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteString(contents)
	return err
}

func DeleteFile(path string) error {
	return os.Remove(path)
}

// MkdirAll and RemoveDir back OpDirCreate/OpDirDelete.
func MkdirAll(path string) error {
	return os.MkdirAll(path, 0o755)
}

func RemoveDir(path string) error {
	return os.RemoveAll(path)
}

// ListDir backs OpDirList, returning entries sorted by name so the
// trampoline's result is reproducible across platforms, matching the
// stable ordering wazero's own readdir wrapper (dir.go upstream) imposes
// for sys/wasi directory iteration.
func ListDir(path string) ([]Dirent, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	out := make([]Dirent, len(entries))
	for i, e := range entries {
		out[i] = Dirent{Name: e.Name(), IsDir: e.IsDir()}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Getwd and Chdir back OpGetCurrentDirectory/OpChangeDirectory.
func Getwd() (string, error) { return os.Getwd() }
func Chdir(path string) error { return os.Chdir(path) }
