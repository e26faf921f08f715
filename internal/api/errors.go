package api

import (
	"errors"

	"connectrpc.com/connect"
	"google.golang.org/genproto/googleapis/rpc/errdetails"

	"github.com/at-ishikawa/hskquiz/internal/message"
	"github.com/at-ishikawa/hskquiz/internal/quiz"
	"github.com/at-ishikawa/hskquiz/internal/vocabulary"
)

// ErrSessionNotFound is returned for a session id the server does not know, including expired ones.
var ErrSessionNotFound = errors.New("session not found")

const errorDomain = "hskquiz"

type errorReason struct {
	err    error
	reason string
	code   connect.Code
}

var errorReasons = []errorReason{
	{err: ErrSessionNotFound, reason: "SESSION_NOT_FOUND", code: connect.CodeNotFound},
	{err: quiz.ErrInvalidSettings, reason: "INVALID_SETTINGS", code: connect.CodeInvalidArgument},
	{err: quiz.ErrUnknownMode, reason: "UNKNOWN_MODE", code: connect.CodeInvalidArgument},
	{err: vocabulary.ErrUnknownLevel, reason: "UNKNOWN_LEVEL", code: connect.CodeInvalidArgument},
	{err: message.ErrUnsupportedLanguage, reason: "UNSUPPORTED_LANGUAGE", code: connect.CodeInvalidArgument},
	{err: quiz.ErrEmptyQuiz, reason: "EMPTY_QUIZ", code: connect.CodeFailedPrecondition},
	{err: quiz.ErrNoActiveSession, reason: "NO_ACTIVE_SESSION", code: connect.CodeFailedPrecondition},
	{err: quiz.ErrActionNotAllowed, reason: "ACTION_NOT_ALLOWED", code: connect.CodeFailedPrecondition},
	{err: quiz.ErrAtEnd, reason: "AT_END", code: connect.CodeFailedPrecondition},
	{err: quiz.ErrNotAnswered, reason: "NOT_ANSWERED", code: connect.CodeFailedPrecondition},
}

// ToConnectError maps a domain error to a Connect error carrying a google.rpc.ErrorInfo detail,
// and a google.rpc.BadRequest detail for rejected settings.
func ToConnectError(err error) *connect.Error {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr
	}

	for _, r := range errorReasons {
		if !errors.Is(err, r.err) {
			continue
		}
		connectErr = connect.NewError(r.code, err)
		if detail, detailErr := connect.NewErrorDetail(&errdetails.ErrorInfo{
			Reason: r.reason,
			Domain: errorDomain,
		}); detailErr == nil {
			connectErr.AddDetail(detail)
		}

		var validationErr *quiz.ValidationError
		if errors.As(err, &validationErr) {
			var fieldViolations []*errdetails.BadRequest_FieldViolation
			for _, v := range validationErr.Violations {
				fieldViolations = append(fieldViolations, &errdetails.BadRequest_FieldViolation{
					Field:       v.Field,
					Description: v.Description,
				})
			}
			if detail, detailErr := connect.NewErrorDetail(&errdetails.BadRequest{
				FieldViolations: fieldViolations,
			}); detailErr == nil {
				connectErr.AddDetail(detail)
			}
		}
		return connectErr
	}
	return connect.NewError(connect.CodeInternal, err)
}

// FromConnectError restores the domain error from the details added by ToConnectError,
// so that errors.Is and errors.As work on the client side.
func FromConnectError(err error) error {
	var connectErr *connect.Error
	if !errors.As(err, &connectErr) {
		return err
	}

	var reason string
	var violations []quiz.FieldViolation
	for _, detail := range connectErr.Details() {
		value, valueErr := detail.Value()
		if valueErr != nil {
			continue
		}
		switch v := value.(type) {
		case *errdetails.ErrorInfo:
			if v.GetDomain() == errorDomain {
				reason = v.GetReason()
			}
		case *errdetails.BadRequest:
			for _, fv := range v.GetFieldViolations() {
				violations = append(violations, quiz.FieldViolation{
					Field:       fv.GetField(),
					Description: fv.GetDescription(),
				})
			}
		}
	}

	if len(violations) > 0 {
		return &quiz.ValidationError{Violations: violations}
	}
	for _, r := range errorReasons {
		if r.reason == reason {
			return &remoteError{sentinel: r.err, connectErr: connectErr}
		}
	}
	return err
}

// remoteError keeps the server message while matching the sentinel with errors.Is.
type remoteError struct {
	sentinel   error
	connectErr *connect.Error
}

func (e *remoteError) Error() string {
	return e.connectErr.Message()
}

func (e *remoteError) Unwrap() []error {
	return []error{e.sentinel, e.connectErr}
}
