package zfile

import (
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

func DoesFileExist(fpath string) bool {
	_, err := os.Stat(fpath)
	return err == nil
}

func DoesFileNotExist(fpath string) bool { // not same as !DoesFileExist...
	_, err := os.Stat(fpath)
	return os.IsNotExist(err)
}

func RemovedExtension(spath string) string {
	return strings.TrimSuffix(spath, filepath.Ext(spath))
}

func Split(spath string) (dir, name, stub, ext string) {
	dir, name = filepath.Split(spath)
	ext = filepath.Ext(name)
	stub = strings.TrimSuffix(name, ext)
	return
}

func ChangedExtension(spath, ext string) string {
	return RemovedExtension(spath) + ext
}

// ExpandTildeInFilepath replaces a leading ~ with the user's home directory
func ExpandTildeInFilepath(fpath string) string {
	if !strings.HasPrefix(fpath, "~") {
		return fpath
	}
	usr, err := user.Current()
	if err != nil {
		return fpath
	}
	return usr.HomeDir + fpath[1:]
}

// WriteAtomically calls write with a temporary file next to fpath, which is renamed to fpath if write succeeds.
func WriteAtomically(fpath string, write func(w io.Writer) error) error {
	temp := fpath + ".temp"
	file, err := os.Create(temp)
	if err != nil {
		return errors.Wrapf(err, "create %s", temp)
	}
	err = write(file)
	cerr := file.Close()
	if err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(temp)
		return err
	}
	return os.Rename(temp, fpath)
}
