package zjson

import (
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/torlangballe/zchart/zlog"
)

// UnmarshalFromFile decodes the json in fpath into to.
// With allowNoFile, a missing file leaves to as-is and returns nil.
func UnmarshalFromFile(to any, fpath string, allowNoFile bool) error {
	file, err := os.Open(fpath)
	if err != nil {
		if allowNoFile && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	defer file.Close()
	return Unmarshal(to, file)
}

func Unmarshal(to any, r io.Reader) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(to)
	if err != nil {
		return zlog.Wrap(err, "decode json")
	}
	return nil
}

// MarshalToFile marshals from into a json byte stream that is written to fpath.
// It happens atomically using a temporary file that is renamed.
func MarshalToFile(from any, fpath string) error {
	temp := fpath + ".temp"
	file, err := os.Create(temp)
	if err != nil {
		return err
	}
	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	err = encoder.Encode(from)
	file.Close()
	if err != nil {
		os.Remove(temp)
		return zlog.Error(err, "marshal", fpath)
	}
	return os.Rename(temp, fpath)
}
