package pattern

import "errors"

var errBadFnResult = errors.New("pattern: Fn callback returned an unsupported type")
