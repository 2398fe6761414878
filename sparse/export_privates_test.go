// SPDX-License-Identifier: MIT

package sparse

// Test-Bridge (white-box) for private helpers.
//
// Purpose:
//   - Expose unexported helpers to sparse_test ONLY (the _test.go suffix keeps
//     them out of production builds).

var (
	// ExportedParseIndex exposes parseIndex for decode-boundary tests.
	ExportedParseIndex = parseIndex

	// ExportedBoundingBox exposes (*Matrix).boundingBox.
	ExportedBoundingBox = (*Matrix).boundingBox
)

// PanicTransposeShapeInvalid_TestOnly exports the panic message to avoid magic strings.
const PanicTransposeShapeInvalid_TestOnly = panicTransposeShapeInvalid

// PanicMaxDenseCellsInvalid_TestOnly exports the panic message to avoid magic strings.
const PanicMaxDenseCellsInvalid_TestOnly = panicMaxDenseCellsInvalid
