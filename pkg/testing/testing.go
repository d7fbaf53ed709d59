package testing

import (
	"os"
	"path"
	"runtime"
)

// Tests run with the package directory as cwd, which breaks anything
// resolving paths relative to the repo root (.env, logs dir). Importing
// this package for side effects moves cwd to the root first.
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}
