package client

import "resume-folio/dto"

// OutcomeKind is the closed set of results a gateway call can produce.
// Every caller handles the same six cases.
type OutcomeKind int

const (
	// OutcomeInvalid is the zero value. No call produces it, so a zero
	// Outcome read without checking the accompanying error never passes
	// for a success.
	OutcomeInvalid OutcomeKind = iota

	// OutcomeSuccess carries a payload (site code or deploy URL).
	OutcomeSuccess

	// OutcomeMalformedBody means the transport succeeded but the body did
	// not parse as the expected JSON shape.
	OutcomeMalformedBody

	// OutcomeEmptyContent means a well-formed generation response carried
	// no markup, stylesheet, or script at all.
	OutcomeEmptyContent

	// OutcomeServerError is a non-2xx status; Detail holds the server's
	// detail message when it sent one.
	OutcomeServerError

	// OutcomeTimeout means the request deadline expired and the call was
	// cancelled.
	OutcomeTimeout

	// OutcomeConnectionFailure is any other transport-level failure.
	OutcomeConnectionFailure
)

// Outcome is the result of one gateway call.
type Outcome struct {
	Kind   OutcomeKind
	Site   dto.SiteCode // set on generation success
	URL    string       // set on deploy success
	Detail string       // server detail or error text
}

// Message renders the user-visible message for the outcome, one distinct
// message per failure cause.
func (o Outcome) Message() string {
	switch o.Kind {
	case OutcomeSuccess:
		return "success"
	case OutcomeMalformedBody:
		return "invalid response format from the server"
	case OutcomeEmptyContent:
		return "no code was generated - try a different resume"
	case OutcomeServerError:
		if o.Detail != "" {
			return o.Detail
		}
		return "the server reported an error"
	case OutcomeTimeout:
		return "the request timed out - the server may be overloaded"
	case OutcomeConnectionFailure:
		return "could not reach the server - is the gateway running?"
	default:
		return "no result"
	}
}

// Ok reports whether the outcome is a success.
func (o Outcome) Ok() bool { return o.Kind == OutcomeSuccess }
