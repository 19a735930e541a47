// predicates.go — classification helpers over arbitrary error chains.
//
// All of them use errors.As, so they see an *Exception anywhere in a chain,
// including inside Join results and fmt.Errorf("%w") wrappers.
package xgxdiag

import "errors"

// AsException returns the first *Exception in err's chain.
func AsException(err error) (*Exception, bool) {
	var e *Exception
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// NatureOf returns the nature of the first Exception in err's chain.
// ok is false when there is none.
func NatureOf(err error) (n Nature, ok bool) {
	e, ok := AsException(err)
	if !ok {
		return 0, false
	}
	return e.Nature, true
}

// IsOsError reports whether err's chain holds an os_error Exception.
func IsOsError(err error) bool {
	n, ok := NatureOf(err)
	return ok && n == NatureOsError
}

// IsPermanent reports whether err's chain holds an Exception that retrying
// will not fix.
func IsPermanent(err error) bool {
	e, ok := AsException(err)
	return ok && e.Durability == DurabilityPermanent
}
