package aerr

import "errors"

// ParseError reports that rule or schedule text could not be matched against
// the grammar of either supported language.
type ParseError struct {
	*Error
	Text string // the text that failed to parse
}

// NewParseError wraps a Newf-style message as a ParseError over the given text.
func NewParseError(text string, format string, a ...interface{}) *ParseError {
	return &ParseError{Error: Newf(format, a...), Text: text}
}

// InvalidRuleError reports that a rule parsed successfully but failed
// semantic validation (out-of-range fields, impossible windows, a recurring
// rule whose horizon scan never produces an occurrence).
type InvalidRuleError struct {
	*Error
	RuleIndex int // index of the offending rule within its Schedule, or -1
}

// NewInvalidRuleError wraps a Newf-style message as an InvalidRuleError.
func NewInvalidRuleError(ruleIndex int, format string, a ...interface{}) *InvalidRuleError {
	return &InvalidRuleError{Error: Newf(format, a...), RuleIndex: ruleIndex}
}

// NoOccurrenceError reports that next_occurrence found no candidate instant
// for a Schedule within its probe budget.
type NoOccurrenceError struct {
	*Error
}

// NewNoOccurrenceError wraps a Newf-style message as a NoOccurrenceError.
func NewNoOccurrenceError(format string, a ...interface{}) *NoOccurrenceError {
	return &NoOccurrenceError{Error: Newf(format, a...)}
}

// UnsupportedFeatureError reports a rule that names a feature this module
// reserves a field for but cannot evaluate without caller-supplied
// configuration, e.g. a holiday exception with no Provider wired in.
type UnsupportedFeatureError struct {
	*Error
	Feature string
}

// NewUnsupportedFeatureError wraps a Newf-style message as an UnsupportedFeatureError.
func NewUnsupportedFeatureError(feature string, format string, a ...interface{}) *UnsupportedFeatureError {
	return &UnsupportedFeatureError{Error: Newf(format, a...), Feature: feature}
}

// AsParseError reports whether err is (or wraps) a *ParseError.
func AsParseError(err error) (*ParseError, bool) {
	var pe *ParseError
	return pe, errors.As(err, &pe)
}

// AsInvalidRuleError reports whether err is (or wraps) an *InvalidRuleError.
func AsInvalidRuleError(err error) (*InvalidRuleError, bool) {
	var ire *InvalidRuleError
	return ire, errors.As(err, &ire)
}

// AsNoOccurrenceError reports whether err is (or wraps) a *NoOccurrenceError.
func AsNoOccurrenceError(err error) (*NoOccurrenceError, bool) {
	var noe *NoOccurrenceError
	return noe, errors.As(err, &noe)
}

// AsUnsupportedFeatureError reports whether err is (or wraps) an *UnsupportedFeatureError.
func AsUnsupportedFeatureError(err error) (*UnsupportedFeatureError, bool) {
	var ufe *UnsupportedFeatureError
	return ufe, errors.As(err, &ufe)
}
