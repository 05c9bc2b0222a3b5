// Package validation decodes JSON request bodies and checks them against the
// validator tags declared on the payload types. Failures come back as *Error,
// which carries per-field details for a 422 response.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report json names so details line up with what the client sent.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// FieldError describes one problem with the request.
// Loc is the path to the offending value, e.g. ["body", "content"].
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, strings.Join(f.Loc, ".")+" "+f.Msg)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func NewError(loc []string, msg, typ string) *Error {
	return &Error{Fields: []FieldError{{Loc: loc, Msg: msg, Type: typ}}}
}

// Struct runs the validator tags on v. Tag failures come back as *Error.
func Struct(v any) error {
	if err := validate.Struct(v); err != nil {
		return translate(err)
	}
	return nil
}

// MaxBodyBytes caps how much of a request body Decode reads.
const MaxBodyBytes = 1 << 20

// ErrBodyTooLarge is returned by Decode when the body exceeds MaxBodyBytes.
var ErrBodyTooLarge = errors.New("request body too large")

// Decode reads the request body as exactly one JSON value into payload.
func Decode(w http.ResponseWriter, r *http.Request, payload any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err := dec.Decode(payload); err != nil {
		return decodeError(err)
	}

	// Anything after the first value makes the body malformed.
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return ErrBodyTooLarge
		}
		return NewError([]string{"body"}, "malformed JSON", "json_invalid")
	}
	return nil
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	var maxErr *http.MaxBytesError

	switch {
	case errors.As(err, &maxErr):
		return ErrBodyTooLarge
	case errors.Is(err, io.EOF):
		return NewError([]string{"body"}, "field required", "missing")
	case errors.As(err, &typeErr):
		loc := []string{"body"}
		if typeErr.Field != "" {
			loc = append(loc, strings.Split(typeErr.Field, ".")...)
		}
		return NewError(loc, fmt.Sprintf("must be a valid %s", typeErr.Type.Kind()), "type_error")
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return NewError([]string{"body"}, "malformed JSON", "json_invalid")
	default:
		return NewError([]string{"body"}, err.Error(), "json_invalid")
	}
}

func translate(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &Error{}
	for _, fe := range verrs {
		var msg string
		switch fe.Tag() {
		case "required":
			msg = "field required"
		case "max":
			if fe.Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", fe.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", fe.Param())
			}
		case "min":
			if fe.Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", fe.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", fe.Param())
			}
		default:
			if fe.Param() != "" {
				msg = fmt.Sprintf("failed %s:%s", fe.Tag(), fe.Param())
			} else {
				msg = "failed " + fe.Tag()
			}
		}

		out.Fields = append(out.Fields, FieldError{
			Loc:  []string{"body", fe.Field()},
			Msg:  msg,
			Type: fe.Tag(),
		})
	}
	return out
}
