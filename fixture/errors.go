// SPDX-License-Identifier: MIT
// Package: matsets/fixture
//
// errors.go — sentinel errors for the fixture package. Filesystem failures
// are returned as the underlying *fs.PathError (match with errors.Is against
// fs.ErrNotExist / fs.ErrPermission); numeric and shape failures reuse the
// matrix sentinels (matrix.ErrNaNInf, matrix.ErrBadShape).

package fixture

import "errors"

// ErrNotArray indicates the document's top level is not a JSON array.
var ErrNotArray = errors.New("fixture: document is not an array")

// ErrTrailingData indicates bytes other than whitespace after the document.
var ErrTrailingData = errors.New("fixture: trailing data after document")

const (
	methodEncode   = "Encode"
	methodDecode   = "Decode"
	methodSave     = "Save"
	methodLoad     = "Load"
	methodDescribe = "Describe"
)
