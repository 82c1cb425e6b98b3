// Package errs define custom error types and utilities.
//
// Its purpose is to create specific error structures
// (FieldErrors for form submissions, HTTPError for API responses)
// so that clients always receive the same response envelope:
//
//	{ "errors": {...}, "message": "...", "success": false }
package errs
