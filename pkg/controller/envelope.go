package controller

import (
	"casino/pkg/logger"
	"casino/pkg/serrors"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-faster/jx"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var validate = newValidator() //nolint: gochecknoglobals

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields by their JSON names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

const (
	statusSuccess = "success"
	statusError   = "error"
)

func writeEnvelope(w http.ResponseWriter, code int, fill func(e *jx.Encoder)) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	e.Obj(fill)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write(e.Bytes())
}

// WriteData writes {"status":"success","data":<data>}.
func WriteData(w http.ResponseWriter, code int, data any) {
	raw, err := json.Marshal(data)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "internal error")

		return
	}

	writeEnvelope(w, code, func(e *jx.Encoder) {
		e.Field("status", func(e *jx.Encoder) { e.Str(statusSuccess) })
		e.Field("data", func(e *jx.Encoder) { e.Raw(raw) })
	})
}

// WriteMessage writes {"status":"success","message":<msg>}.
func WriteMessage(w http.ResponseWriter, code int, msg string) {
	writeEnvelope(w, code, func(e *jx.Encoder) {
		e.Field("status", func(e *jx.Encoder) { e.Str(statusSuccess) })
		e.Field("message", func(e *jx.Encoder) { e.Str(msg) })
	})
}

// WriteError writes {"status":"error","message":<msg>}.
func WriteError(w http.ResponseWriter, code int, msg string) {
	writeEnvelope(w, code, func(e *jx.Encoder) {
		e.Field("status", func(e *jx.Encoder) { e.Str(statusError) })
		e.Field("message", func(e *jx.Encoder) { e.Str(msg) })
	})
}

// WriteServiceError maps err to its HTTP status and public message. Server
// side failures are logged with the full error.
func WriteServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	code := serrors.Status(err)
	if code >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
	}

	WriteError(w, code, serrors.PublicMessage(err))
}

// DecodeJSON reads a JSON body into dst, rejecting unknown fields.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	return nil
}

// Bind decodes the JSON body into dst and validates it with its `validate`
// struct tags. Failures are ErrBadRequest naming the first offending field.
func Bind(r *http.Request, dst any) error {
	if err := DecodeJSON(r, dst); err != nil {
		return err
	}

	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return serrors.Wrap(serrors.ErrBadRequest, err, "%s", describeFieldError(verrs[0]))
		}

		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	return nil
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
