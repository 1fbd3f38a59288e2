package spec

import "errors"

// ErrSpecFile marks any failure to load or validate a spec file: missing
// file, malformed TOML, missing required field, or a main entry that does
// not exist. Always fatal to the whole run.
var ErrSpecFile = errors.New("spec file error")
