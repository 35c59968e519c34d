package pathdsl

import (
	"io/fs"
	"os"
	"path/filepath"
)

// _dirPermissions are the default permission bits we apply to directories.
const _dirPermissions = os.ModeDir | 0775

// Open implements os.Open for the path.
func (p *PathBuf) Open() (*os.File, error) {
	return os.Open(p.String())
}

// OpenFile implements os.OpenFile for the path.
func (p *PathBuf) OpenFile(flags int, mode os.FileMode) (*os.File, error) {
	return os.OpenFile(p.String(), flags, mode)
}

// Create implements os.Create for the path.
func (p *PathBuf) Create() (*os.File, error) {
	return os.Create(p.String())
}

// Stat implements os.Stat for the path.
func (p *PathBuf) Stat() (fs.FileInfo, error) {
	return os.Stat(p.String())
}

// Lstat implements os.Lstat for the path.
func (p *PathBuf) Lstat() (fs.FileInfo, error) {
	return os.Lstat(p.String())
}

// Exists returns true if the path exists.
func (p *PathBuf) Exists() bool {
	_, err := p.Lstat()
	return err == nil
}

// DirExists returns true if the path exists and is a directory.
func (p *PathBuf) DirExists() bool {
	info, err := p.Lstat()
	return err == nil && info.IsDir()
}

// FileExists returns true if the path exists and is a file.
func (p *PathBuf) FileExists() bool {
	info, err := p.Lstat()
	return err == nil && !info.IsDir()
}

// ReadFile reads the contents of the file at the path.
func (p *PathBuf) ReadFile() ([]byte, error) {
	return os.ReadFile(p.String())
}

// WriteFile writes contents to the file at the path.
func (p *PathBuf) WriteFile(contents []byte, mode os.FileMode) error {
	return os.WriteFile(p.String(), contents, mode)
}

// Mkdir implements os.Mkdir for the path.
func (p *PathBuf) Mkdir(perm os.FileMode) error {
	return os.Mkdir(p.String(), perm)
}

// MkdirAll implements os.MkdirAll for the path.
func (p *PathBuf) MkdirAll(perm os.FileMode) error {
	return os.MkdirAll(p.String(), perm)
}

// EnsureDir ensures that the directory containing this file exists.
func (p *PathBuf) EnsureDir() error {
	dir := p.Dir()
	err := os.MkdirAll(dir.String(), _dirPermissions)
	if err != nil && dir.FileExists() {
		// It looks like this is a file and not a directory. Attempt to
		// remove it; this can happen when a path that used to name a
		// file now needs to be a directory.
		if err2 := dir.Remove(); err2 == nil {
			err = os.MkdirAll(dir.String(), _dirPermissions)
		} else {
			return err
		}
	}
	return err
}

// Remove removes the file or (empty) directory at the path.
func (p *PathBuf) Remove() error {
	return os.Remove(p.String())
}

// RemoveAll implements os.RemoveAll for the path.
func (p *PathBuf) RemoveAll() error {
	return os.RemoveAll(p.String())
}

// Rename implements os.Rename from the path to dest.
func (p *PathBuf) Rename(dest *PathBuf) error {
	return os.Rename(p.String(), dest.String())
}

// Symlink implements os.Symlink(target, p) for the path.
func (p *PathBuf) Symlink(target string) error {
	return os.Symlink(target, p.String())
}

// Readlink implements os.Readlink for the path.
func (p *PathBuf) Readlink() (string, error) {
	return os.Readlink(p.String())
}

// EvalSymlinks implements filepath.EvalSymlinks for the path.
func (p *PathBuf) EvalSymlinks() (*PathBuf, error) {
	result, err := filepath.EvalSymlinks(p.String())
	if err != nil {
		return nil, err
	}
	return FromString(result), nil
}
