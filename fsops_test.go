package pathdsl

import (
	"testing"

	"gotest.tools/v3/assert"
	"gotest.tools/v3/fs"
)

func TestWriteReadFile(t *testing.T) {
	testDir := fs.NewDir(t, "fsops-test")
	defer testDir.Remove()

	p := Path(FromString(testDir.Path()), "nested", "out.txt")
	assert.NilError(t, p.EnsureDir())
	assert.NilError(t, p.WriteFile([]byte("hello"), 0644))

	content, err := p.ReadFile()
	assert.NilError(t, err)
	assert.Equal(t, "hello", string(content))

	assert.Assert(t, p.Exists())
	assert.Assert(t, p.FileExists())
	assert.Assert(t, !p.DirExists())
	assert.Assert(t, p.Dir().DirExists())
}

func TestEnsureDirReplacesFile(t *testing.T) {
	testDir := fs.NewDir(t, "fsops-ensure",
		fs.WithFile("blocker", ""))
	defer testDir.Remove()

	p := FromString(testDir.Join("blocker", "child.txt"))
	assert.NilError(t, p.EnsureDir())
	assert.Assert(t, p.Dir().DirExists())
}

func TestRenameRemove(t *testing.T) {
	testDir := fs.NewDir(t, "fsops-rename")
	defer testDir.Remove()

	src := FromString(testDir.Join("src.txt"))
	dst := FromString(testDir.Join("dst.txt"))

	assert.NilError(t, src.WriteFile([]byte("x"), 0644))
	assert.NilError(t, src.Rename(dst))
	assert.Assert(t, !src.Exists())
	assert.Assert(t, dst.FileExists())

	assert.NilError(t, dst.Remove())
	assert.Assert(t, !dst.Exists())
}

func TestMkdirAll(t *testing.T) {
	testDir := fs.NewDir(t, "fsops-mkdir")
	defer testDir.Remove()

	p := Path(FromString(testDir.Path()), "a", "b", "c")
	assert.NilError(t, p.MkdirAll(0755))
	assert.Assert(t, p.DirExists())
}
