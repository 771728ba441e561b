package services

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mywallet/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validationMessages(t *testing.T, err error) []string {
	t.Helper()
	verr, ok := err.(*ValidationError)
	require.True(t, ok, "expected *ValidationError, got %T", err)
	return verr.Messages
}

func TestValidationHelper_ValidateEntry(t *testing.T) {
	vh := NewValidationHelper()

	t.Run("valid credit", func(t *testing.T) {
		in, err := vh.ValidateEntry([]byte(`{"value":50,"text":"salary","type":"entry"}`))
		require.NoError(t, err)
		assert.Equal(t, models.EntryInput{Value: 50, Text: "salary", Type: models.DirectionIn}, in)
	})

	t.Run("numeric string is converted", func(t *testing.T) {
		in, err := vh.ValidateEntry([]byte(`{"value":"12.5","text":"lunch","type":"out"}`))
		require.NoError(t, err)
		assert.Equal(t, 12.5, in.Value)
		assert.Equal(t, models.DirectionOut, in.Type)
	})

	t.Run("zero and negative amounts are numbers", func(t *testing.T) {
		_, err := vh.ValidateEntry([]byte(`{"value":0,"text":"x","type":"out"}`))
		assert.NoError(t, err)
		_, err = vh.ValidateEntry([]byte(`{"value":-3,"text":"x","type":"out"}`))
		assert.NoError(t, err)
	})

	t.Run("empty object reports every field", func(t *testing.T) {
		_, err := vh.ValidateEntry([]byte(`{}`))
		assert.Equal(t, []string{
			`"value" is required`,
			`"text" is required`,
			`"type" is required`,
		}, validationMessages(t, err))
	})

	t.Run("wrong types", func(t *testing.T) {
		_, err := vh.ValidateEntry([]byte(`{"value":"abc","text":5,"type":"income"}`))
		assert.Equal(t, []string{
			`"value" must be a number`,
			`"text" must be a string`,
			`"type" must be one of [entry, out]`,
		}, validationMessages(t, err))
	})

	t.Run("null and empty values", func(t *testing.T) {
		_, err := vh.ValidateEntry([]byte(`{"value":null,"text":"","type":""}`))
		assert.Equal(t, []string{
			`"value" must be a number`,
			`"text" is not allowed to be empty`,
			`"type" must be one of [entry, out]`,
		}, validationMessages(t, err))
	})

	t.Run("unknown keys are rejected after field errors", func(t *testing.T) {
		_, err := vh.ValidateEntry([]byte(`{"value":1,"text":"a","type":"out","zeta":1,"alpha":2}`))
		assert.Equal(t, []string{
			`"alpha" is not allowed`,
			`"zeta" is not allowed`,
		}, validationMessages(t, err))
	})

	t.Run("amounts must be finite", func(t *testing.T) {
		_, err := vh.ValidateEntry([]byte(`{"value":1e400,"text":"huge","type":"entry"}`))
		assert.Equal(t, []string{`"value" cannot be infinity`}, validationMessages(t, err))

		_, err = vh.ValidateEntry([]byte(`{"value":-1e400,"text":"huge","type":"out"}`))
		assert.Equal(t, []string{`"value" cannot be infinity`}, validationMessages(t, err))

		_, err = vh.ValidateEntry([]byte(`{"value":"1e400","text":"huge","type":"entry"}`))
		assert.Equal(t, []string{`"value" cannot be infinity`}, validationMessages(t, err))

		_, err = vh.ValidateEntry([]byte(`{"value":"NaN","text":"huge","type":"entry"}`))
		assert.Equal(t, []string{`"value" must be a number`}, validationMessages(t, err))
	})

	t.Run("largest finite amount is accepted", func(t *testing.T) {
		in, err := vh.ValidateEntry([]byte(`{"value":1.7976931348623157e308,"text":"max","type":"entry"}`))
		require.NoError(t, err)
		assert.Equal(t, math.MaxFloat64, in.Value)
	})

	t.Run("non object body", func(t *testing.T) {
		_, err := vh.ValidateEntry([]byte(`[1,2]`))
		assert.Equal(t, []string{`"value" must be of type object`}, validationMessages(t, err))
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := vh.ValidateEntry([]byte(`{"value":`))
		assert.ErrorIs(t, err, ErrMalformedBody)
	})
}

func TestValidationHelper_ValidateSignUp(t *testing.T) {
	vh := NewValidationHelper()

	t.Run("valid", func(t *testing.T) {
		req, err := vh.ValidateSignUp([]byte(`{"name":"ana","email":"a@x.com","password":"p1"}`))
		require.NoError(t, err)
		assert.Equal(t, SignUpRequest{Name: "ana", Email: "a@x.com", Password: "p1"}, req)
	})

	t.Run("all violations at once", func(t *testing.T) {
		_, err := vh.ValidateSignUp([]byte(`{"name":"a","email":"nope"}`))
		assert.Equal(t, []string{
			`"name" length must be at least 2 characters long`,
			`"email" must be a valid email`,
			`"password" is required`,
		}, validationMessages(t, err))
	})

	t.Run("empty password is allowed", func(t *testing.T) {
		req, err := vh.ValidateSignUp([]byte(`{"name":"ana","email":"a@x.com","password":""}`))
		require.NoError(t, err)
		assert.Equal(t, "", req.Password)
	})

	t.Run("password must be a string", func(t *testing.T) {
		_, err := vh.ValidateSignUp([]byte(`{"name":"ana","email":"a@x.com","password":123}`))
		assert.Equal(t, []string{`"password" must be a string`}, validationMessages(t, err))
	})

	t.Run("name rules", func(t *testing.T) {
		_, err := vh.ValidateSignUp([]byte(`{"name":"ana maria","email":"a@x.com","password":"p"}`))
		assert.Equal(t, []string{`"name" must only contain alpha-numeric characters`}, validationMessages(t, err))

		_, err = vh.ValidateSignUp([]byte(`{"name":"abcdefghijklmno","email":"a@x.com","password":"p"}`))
		assert.Equal(t, []string{`"name" length must be less than or equal to 14 characters long`}, validationMessages(t, err))
	})

	t.Run("type mismatch", func(t *testing.T) {
		_, err := vh.ValidateSignUp([]byte(`{"name":42,"email":"a@x.com","password":"p"}`))
		assert.Equal(t, []string{`"name" must be a string`}, validationMessages(t, err))
	})
}

func TestSendErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()

	SendErrorResponse(w, "Something went wrong", http.StatusInternalServerError)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var response ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Something went wrong", response.Error)
}

func TestSendValidationErrors(t *testing.T) {
	w := httptest.NewRecorder()

	SendValidationErrors(w, &ValidationError{Messages: []string{`"value" is required`, `"text" is required`}})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var messages []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &messages))
	assert.Equal(t, []string{`"value" is required`, `"text" is required`}, messages)
}

func TestSendStatus(t *testing.T) {
	w := httptest.NewRecorder()

	SendStatus(w, http.StatusCreated)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"message":"Created"}`, w.Body.String())
}
