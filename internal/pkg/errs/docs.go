// Package errs provides the standardized error types shared across the
// application. Each error kind follows the same pattern: a sentinel error
// variable, a struct carrying details, constructors with and without a cause,
// and Error/Unwrap methods so errors.Is can classify failures.
//
// The transport layer relies on these kinds to map failures onto stable HTTP
// status codes; business code never branches on message text.
package errs
