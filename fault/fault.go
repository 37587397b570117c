// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ConflictError GenericError
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised       = ExistsError("already initialised")
	ErrBothSidesValid           = ConflictError("transaction valid in both ledgers")
	ErrCannotDecodeAccount      = InvalidError("cannot decode account")
	ErrChecksumMismatch         = InvalidError("checksum mismatch")
	ErrConfigurationNotTable    = InvalidError("configuration must return a table")
	ErrDatabaseIsNotSet         = ProcessError("database is not set")
	ErrDuplicateKey             = ExistsError("duplicate key")
	ErrEmptyDiffEntry           = ConflictError("difference entry has neither side")
	ErrFieldOrder               = RecordError("field out of order")
	ErrIncompatibleVersion      = ProcessError("incompatible database version")
	ErrInvalidAmount            = RecordError("invalid amount")
	ErrInvalidCurrency          = InvalidError("invalid currency")
	ErrInvalidKeyLength         = LengthError("invalid key length")
	ErrInvalidKeyType           = InvalidError("invalid key type")
	ErrInvalidLoggerChannel     = ProcessError("invalid logger channel")
	ErrInvalidPathElement       = RecordError("invalid path element")
	ErrInvalidPublicKey         = InvalidError("invalid public key")
	ErrInvalidStructPointer     = InvalidError("invalid struct pointer")
	ErrKindMismatch             = InvalidError("operation does not match transaction kind")
	ErrLedgerEntryInvalid       = ConflictError("ledger entry is not a valid transaction")
	ErrLedgerEntryMismatch      = ConflictError("ledger entry does not match its key")
	ErrMalformedEncoding        = RecordError("malformed encoding")
	ErrMissingField             = RecordError("missing required field")
	ErrNonCanonicalEncoding     = RecordError("non-canonical encoding")
	ErrNotAccountId             = LengthError("not an account id")
	ErrNotInitialised           = ProcessError("not initialised")
	ErrNotPublicKey             = InvalidError("not a public key")
	ErrNotTransactionId         = InvalidError("not a transaction id")
	ErrPrivateKeyInvalid        = InvalidError("private key is invalid")
	ErrRecordTooLong            = LengthError("record too long")
	ErrSignatureInvalid         = InvalidError("signature is invalid")
	ErrStatusIsTerminal         = ProcessError("status cannot change from terminal state")
	ErrTruncatedRecord          = RecordError("truncated record")
	ErrTransactionNotFound      = NotFoundError("transaction not found")
	ErrUnknownField             = RecordError("unknown field")
	ErrUnknownTransactionKind   = RecordError("unknown transaction kind")
	ErrWrongFieldType           = InvalidError("wrong field type")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ConflictError) Error() string { return string(e) }
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrConflict(e error) bool { _, ok := e.(ConflictError); return ok }
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
