//go:build unix

package director

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/sys/unix"
)

// All of these must fail: a successful exec would replace the test binary.

func TestExecvpNotFound(t *testing.T) {
	empty := t.TempDir()
	tests := []struct {
		name string
		file string
		env  []string
	}{
		{name: "empty command", file: "", env: []string{"PATH=" + empty}},
		{name: "empty search path dir", file: "no-such-binary-xyz", env: []string{"PATH=" + empty}},
		{name: "several dirs", file: "no-such-binary-xyz", env: []string{"PATH=" + empty + ":" + empty + "/sub:"}},
		{name: "missing path with slash", file: empty + "/no-such-binary-xyz", env: nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := execvp(tc.file, []string{tc.file}, tc.env)
			if !errors.Is(err, unix.ENOENT) {
				t.Errorf("want ENOENT, got %v", err)
			}
		})
	}
}

func TestExecvpPermissionDenied(t *testing.T) {
	denied := t.TempDir()
	if err := os.WriteFile(filepath.Join(denied, "tool"), []byte("#!/bin/sh\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	empty := t.TempDir()

	// An EACCES candidate is remembered while later entries are searched.
	env := []string{"PATH=" + denied + ":" + empty}
	if err := execvp("tool", []string{"tool"}, env); !errors.Is(err, unix.EACCES) {
		t.Errorf("want EACCES, got %v", err)
	}
	if err := execvp(denied+"/tool", []string{"tool"}, env); !errors.Is(err, unix.EACCES) {
		t.Errorf("want EACCES, got %v", err)
	}
}

func TestExecvpNameTooLong(t *testing.T) {
	name := strings.Repeat("x", nameMax+1)
	err := execvp(name, []string{name}, []string{"PATH=" + t.TempDir()})
	if !errors.Is(err, unix.ENAMETOOLONG) {
		t.Errorf("want ENAMETOOLONG, got %v", err)
	}
}

func TestGetenv(t *testing.T) {
	env := []string{"HOME=/root", "PATH=", "PATH=/second", "EMPTYNAME", "X=a=b"}
	tests := []struct {
		key       string
		want      string
		wantFound bool
	}{
		{key: "HOME", want: "/root", wantFound: true},
		{key: "PATH", want: "", wantFound: true},
		{key: "X", want: "a=b", wantFound: true},
		{key: "EMPTYNAME", wantFound: false},
		{key: "MISSING", wantFound: false},
	}
	for _, tc := range tests {
		got, ok := getenv(env, tc.key)
		if got != tc.want || ok != tc.wantFound {
			t.Errorf("%s: want (%q, %v), got (%q, %v)", tc.key, tc.want, tc.wantFound, got, ok)
		}
	}
}

func TestRunExecFailure(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	}()

	dir := t.TempDir()
	inv := &Invocation{Dir: dir, Command: "no-such-binary-xyz", Argv: []string{"no-such-binary-xyz"}}
	err = Run(inv, []string{"PATH=" + dir})

	var execErr *ExecError
	if !errors.As(err, &execErr) {
		t.Fatalf("want *ExecError, got %T (%v)", err, err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("want an fs.ErrNotExist error, got %v", err)
	}
	if want := "exec: no-such-binary-xyz: no such file or directory"; err.Error() != want {
		t.Errorf("want %q, got %q", want, err.Error())
	}
}
