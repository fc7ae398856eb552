package scan

import (
	"context"
	"errors"
	"net"

	"github.com/aws/smithy-go"
)

// deniedCodes are the structured error codes the provider uses to reject a
// call at the authorization layer. These are the primary negative signal.
var deniedCodes = map[string]struct{}{
	"AccessDenied":                 {},
	"AccessDeniedException":        {},
	"AuthorizationError":           {},
	"UnauthorizedAccess":           {},
	"UnauthorizedOperation":        {},
	"Client.UnauthorizedOperation": {},
}

// validationCodes indicate the request never reached the authorization
// check: malformed or missing parameters, or no usable credentials on the
// call. Frequent and expected for operations without an override rule.
var validationCodes = map[string]struct{}{
	"ValidationError":             {},
	"ValidationException":         {},
	"MissingParameter":            {},
	"MissingRequiredParameter":    {},
	"InvalidParameterValue":       {},
	"InvalidParameterCombination": {},
	"MissingAuthenticationToken":  {},
	"InvalidClientTokenId":        {},
	"UnrecognizedClientException": {},
	"SerializationException":      {},
	"InvalidRequestException":     {},
	"MalformedQueryString":        {},
	"IncompleteSignature":         {},
	"InvalidParameter":            {},
	"InvalidInput":                {},
	"RequestExpired":              {},
	"InvalidAction":               {},
	"OptInRequired":               {},
	"MissingAction":               {},
}

// throttleCodes feed pool concurrency feedback; they also classify as
// Errored since the call was never judged.
var throttleCodes = map[string]struct{}{
	"Throttling":               {},
	"ThrottlingException":      {},
	"ThrottledException":       {},
	"RequestLimitExceeded":     {},
	"TooManyRequestsException": {},
}

// Classification is the verdict of the pure outcome classifier.
type Classification struct {
	Outcome Outcome
	// Code is the structured provider error code, if one was present.
	Code string
	// Dropped marks a transient network failure: the probe is excluded from
	// the aggregate entirely instead of counting as an outcome.
	Dropped bool
	// Throttled marks provider rate limiting, used as pool feedback.
	Throttled bool
	// Unrecognized marks an error kind outside the modeled taxonomy.
	Unrecognized bool
}

// Classify maps an invocation error to an outcome. It is a pure function of
// the error value so it can be tested without any network call.
//
// The ordering mirrors the provider's own semantics: a nil error succeeded;
// argument/credential problems never reached authorization (Errored); a
// structured error with a denied code failed authorization (Failed); any
// other structured code means authorization passed and the call broke later
// for an unrelated reason, which still proves the permission (Succeeded).
// Transient network failures are dropped. Error kinds outside the modeled
// taxonomy classify as Errored; callers are expected to log them.
func Classify(err error) Classification {
	if err == nil {
		return Classification{Outcome: Succeeded}
	}

	var missing *MissingArgsError
	if errors.As(err, &missing) {
		return Classification{Outcome: Errored}
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.ErrorCode()
		if _, ok := deniedCodes[code]; ok {
			return Classification{Outcome: Failed, Code: code}
		}
		if _, throttled := throttleCodes[code]; throttled {
			return Classification{Outcome: Errored, Code: code, Throttled: true}
		}
		if _, ok := validationCodes[code]; ok {
			return Classification{Outcome: Errored, Code: code}
		}
		// Authorization errors always surface before business errors, so any
		// other structured code proves the call was authorized.
		return Classification{Outcome: Succeeded, Code: code}
	}

	if isTransient(err) {
		return Classification{Dropped: true}
	}

	// Outside the modeled taxonomy. Treated as Errored rather than
	// propagated so one odd SDK error cannot sink a whole service scan.
	return Classification{Outcome: Errored, Unrecognized: true}
}

func isTransient(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}
