package server

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

const maxBodyBytes = 1 << 20

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report JSON field names in validation errors.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type errorResponse struct {
	Error errorDetail `json:"error"`
}

func respondJSON(w http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"code":"INTERNAL_SERVER_ERROR","message":"failed to encode response"}}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(body)
}

func respondError(w http.ResponseWriter, code int, errCode, msg string) {
	respondJSON(w, code, errorResponse{Error: errorDetail{Code: errCode, Message: msg}})
}

// errEmptyBody is returned by decode for a request without a body.
var errEmptyBody = errors.New("request body is empty")

// decode reads a JSON body into dst and validates it. It writes the error
// response itself and reports whether the handler should continue. When
// optional is set an empty body leaves dst at its zero value.
func decode(w http.ResponseWriter, r *http.Request, dst any, optional bool) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			if optional {
				return true
			}
			err = errEmptyBody
		}
		respondError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return false
	}

	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			respondJSON(w, http.StatusBadRequest, validationResponse(verrs))
			return false
		}
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return false
	}
	return true
}

func validationResponse(errs validator.ValidationErrors) errorResponse {
	fields := make([]string, 0, len(errs))
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field())
		if e.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s must satisfy %s=%s", e.Field(), e.Tag(), e.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s is %s", e.Field(), e.Tag()))
		}
	}
	return errorResponse{Error: errorDetail{
		Code:    "VALIDATION_ERROR",
		Message: strings.Join(msgs, "; "),
		Field:   strings.Join(fields, ","),
	}}
}
