package report

import "errors"

// ErrConfiguration marks errors the caller must fix before retrying: an
// unresolvable metric identifier or a non-positive sigma. Every
// configuration failure wraps this sentinel.
var ErrConfiguration = errors.New("configuration error")

// ErrProcessing marks transform or validation failures. The publish call
// that hit one leaves no artifacts behind.
var ErrProcessing = errors.New("processing error")

// ErrWrite marks artifact write failures. The whole publish call may be
// retried; re-running overwrites both artifacts.
var ErrWrite = errors.New("write error")
