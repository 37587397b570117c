// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

// Status - lifecycle state of a transaction
type Status int

// possible states
const (
	New = Status(iota)
	Invalid
	Included
	Conflicted
	Committed
	Held
	Removed
	Obsolete
	Incomplete
)

// String - lower case name, "unknown" if out of range
func (status Status) String() string {
	switch status {
	case New:
		return "new"
	case Invalid:
		return "invalid"
	case Included:
		return "included"
	case Conflicted:
		return "conflicted"
	case Committed:
		return "committed"
	case Held:
		return "held"
	case Removed:
		return "removed"
	case Obsolete:
		return "obsolete"
	case Incomplete:
		return "incomplete"
	default:
		return "unknown"
	}
}

// MarshalText - convert status to text
func (status Status) MarshalText() ([]byte, error) {
	return []byte(status.String()), nil
}

// IsTerminal - no change is possible from this status
func (status Status) IsTerminal() bool {
	return Invalid == status || Removed == status
}

// persisted single character codes
const (
	codeNew        = 'N'
	codeIncluded   = 'I'
	codeConflicted = 'C'
	codeCommitted  = 'V'
	codeHeld       = 'H'
	codeUnknown    = 'U'
)

// Code - the persisted code, 'U' for statuses without one
func (status Status) Code() byte {
	switch status {
	case New:
		return codeNew
	case Included:
		return codeIncluded
	case Conflicted:
		return codeConflicted
	case Committed:
		return codeCommitted
	case Held:
		return codeHeld
	default:
		return codeUnknown
	}
}

// StatusFromCode - status for a persisted code
//
// second result is false for a code that was never written
func StatusFromCode(code byte) (Status, bool) {
	switch code {
	case codeNew:
		return New, true
	case codeIncluded:
		return Included, true
	case codeConflicted:
		return Conflicted, true
	case codeCommitted:
		return Committed, true
	case codeHeld:
		return Held, true
	case codeUnknown:
		return Invalid, true
	default:
		return Invalid, false
	}
}
