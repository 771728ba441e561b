package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mywallet/backend/internal/models"
	"github.com/tidwall/gjson"
)

// ErrorResponse represents error response structure
type ErrorResponse struct {
	Error string `json:"error"` // Error message
}

// ValidationHelper provides shared validation functionality
type ValidationHelper struct {
	validator *validator.Validate
}

// NewValidationHelper creates a new validation helper. Field names in
// validation errors are the JSON keys, not the Go field names.
func NewValidationHelper() *ValidationHelper {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &ValidationHelper{
		validator: v,
	}
}

// SignUpRequest represents the sign-up request payload
// @Description Sign-up request structure
type SignUpRequest struct {
	Name     string `json:"name" validate:"required,alphanum,min=2,max=14" example:"ana"` // Display name
	Email    string `json:"email" validate:"required,email" example:"a@x.com"`            // User email address
	Password string `json:"password" example:"p1"`                                        // User password, may be empty
}

// SignInRequest represents the sign-in request payload
// @Description Sign-in request structure
type SignInRequest struct {
	Email    string `json:"email" example:"a@x.com"`
	Password string `json:"password" example:"p1"`
}

// EntryRequest documents the create/update entry payload
// @Description Entry payload structure
type EntryRequest struct {
	Value *float64 `json:"value" validate:"required" example:"50"`                   // Amount
	Text  string   `json:"text" validate:"required" example:"salary"`                // Description
	Type  string   `json:"type" validate:"required,oneof=entry out" example:"entry"` // entry or out
}

var (
	signUpKeys = []string{"name", "email", "password"}
	entryKeys  = []string{"value", "text", "type"}
)

// payloadCheck accumulates messages per key so they come out in key order.
type payloadCheck struct {
	keys     []string
	present  map[string]bool
	typeErr  map[string]bool
	messages map[string][]string
	unknown  []string
}

func newPayloadCheck(doc gjson.Result, keys []string) *payloadCheck {
	pc := &payloadCheck{
		keys:     keys,
		present:  make(map[string]bool),
		typeErr:  make(map[string]bool),
		messages: make(map[string][]string),
	}

	known := make(map[string]bool, len(keys))
	for _, k := range keys {
		known[k] = true
	}

	doc.ForEach(func(key, _ gjson.Result) bool {
		if known[key.String()] {
			pc.present[key.String()] = true
		} else {
			pc.unknown = append(pc.unknown, key.String())
		}
		return true
	})
	sort.Strings(pc.unknown)
	return pc
}

func (pc *payloadCheck) fail(key, format string, args ...any) {
	pc.messages[key] = append(pc.messages[key], fmt.Sprintf(format, args...))
}

func (pc *payloadCheck) typeMismatch(key, format string, args ...any) {
	pc.typeErr[key] = true
	pc.fail(key, format, args...)
}

func (pc *payloadCheck) addRuleErrors(err error) {
	if err == nil {
		return
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		pc.fail("", "%s", err.Error())
		return
	}
	for _, fe := range verrs {
		key := fe.Field()
		if pc.typeErr[key] {
			continue
		}
		pc.fail(key, "%s", describeRule(fe, pc.present[key]))
	}
}

func (pc *payloadCheck) result() error {
	var out []string
	for _, k := range pc.keys {
		out = append(out, pc.messages[k]...)
	}
	out = append(out, pc.messages[""]...)
	for _, k := range pc.unknown {
		out = append(out, fmt.Sprintf("%q is not allowed", k))
	}
	if len(out) == 0 {
		return nil
	}
	return &ValidationError{Messages: out}
}

func describeRule(fe validator.FieldError, present bool) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		if present {
			return fmt.Sprintf("%q is not allowed to be empty", field)
		}
		return fmt.Sprintf("%q is required", field)
	case "email":
		return fmt.Sprintf("%q must be a valid email", field)
	case "alphanum":
		return fmt.Sprintf("%q must only contain alpha-numeric characters", field)
	case "min":
		return fmt.Sprintf("%q length must be at least %s characters long", field, fe.Param())
	case "max":
		return fmt.Sprintf("%q length must be less than or equal to %s characters long", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%q must be one of [%s]", field, strings.Join(strings.Fields(fe.Param()), ", "))
	}
	return fmt.Sprintf("%q failed on the '%s' rule", field, fe.Tag())
}

func parseObject(body []byte) (gjson.Result, error) {
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, ErrMalformedBody
	}
	doc := gjson.ParseBytes(body)
	if !doc.IsObject() {
		return doc, &ValidationError{Messages: []string{`"value" must be of type object`}}
	}
	return doc, nil
}

func readString(pc *payloadCheck, doc gjson.Result, key string) string {
	v := doc.Get(key)
	if !v.Exists() {
		return ""
	}
	if v.Type != gjson.String {
		pc.typeMismatch(key, "%q must be a string", key)
		return ""
	}
	return v.Str
}

// ValidateSignUp checks a raw sign-up body and reports all violations at once.
func (vh *ValidationHelper) ValidateSignUp(body []byte) (SignUpRequest, error) {
	doc, err := parseObject(body)
	if err != nil {
		return SignUpRequest{}, err
	}

	pc := newPayloadCheck(doc, signUpKeys)
	req := SignUpRequest{
		Name:     readString(pc, doc, "name"),
		Email:    readString(pc, doc, "email"),
		Password: readString(pc, doc, "password"),
	}
	pc.addRuleErrors(vh.validator.Struct(&req))
	if !pc.present["password"] {
		pc.fail("password", `"password" is required`)
	}

	if err := pc.result(); err != nil {
		return SignUpRequest{}, err
	}
	return req, nil
}

// finiteValue rejects amounts that overflowed to an infinity while parsing.
func finiteValue(pc *payloadCheck, n float64) *float64 {
	if math.IsInf(n, 0) {
		pc.typeMismatch("value", `"value" cannot be infinity`)
		return nil
	}
	return &n
}

// ValidateEntry checks a raw entry body and reports all violations at once.
// Numeric strings are accepted for value and converted.
func (vh *ValidationHelper) ValidateEntry(body []byte) (models.EntryInput, error) {
	doc, err := parseObject(body)
	if err != nil {
		return models.EntryInput{}, err
	}

	pc := newPayloadCheck(doc, entryKeys)
	var req EntryRequest

	if v := doc.Get("value"); v.Exists() {
		switch v.Type {
		case gjson.Number:
			req.Value = finiteValue(pc, v.Float())
		case gjson.String:
			n, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64)
			if (err != nil && !errors.Is(err, strconv.ErrRange)) || math.IsNaN(n) {
				pc.typeMismatch("value", `"value" must be a number`)
			} else {
				req.Value = finiteValue(pc, n)
			}
		default:
			pc.typeMismatch("value", `"value" must be a number`)
		}
	}

	req.Text = readString(pc, doc, "text")

	if v := doc.Get("type"); v.Exists() {
		if v.Type != gjson.String || v.Str == "" {
			pc.typeMismatch("type", `"type" must be one of [entry, out]`)
		} else {
			req.Type = v.Str
		}
	}

	pc.addRuleErrors(vh.validator.Struct(&req))

	if err := pc.result(); err != nil {
		return models.EntryInput{}, err
	}
	return models.EntryInput{
		Value: *req.Value,
		Text:  req.Text,
		Type:  models.Direction(req.Type),
	}, nil
}

// SendErrorResponse sends a JSON error response
func SendErrorResponse(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// SendValidationErrors sends 422 with the bare list of messages.
func SendValidationErrors(w http.ResponseWriter, verr *ValidationError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	json.NewEncoder(w).Encode(verr.Messages)
}

// SendStatus sends a status code with its text as the message.
func SendStatus(w http.ResponseWriter, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"message": http.StatusText(statusCode)})
}
