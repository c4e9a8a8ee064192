package models

import (
	stderrors "errors"

	"goplots/internal/errors"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// DecodePayload decodes a JSON body into p, enforces its binding tags and then
// its shape rules. Malformed JSON is a DECODE_ERROR, a failed binding tag a
// VALIDATION_ERROR; shape problems keep the SHAPE_MISMATCH code from Validate.
func DecodePayload(body []byte, p Payload) error {
	if err := binding.JSON.BindBody(body, p); err != nil {
		var invalid validator.ValidationErrors
		if stderrors.As(err, &invalid) {
			return errors.ValidationError(err.Error())
		}
		return errors.DecodeError(err.Error())
	}
	return p.Validate()
}

// DecodeValues decodes the raw convenience body: a non-empty JSON array of numbers.
func DecodeValues(body []byte) ([]float64, error) {
	var values []float64
	if err := binding.JSON.BindBody(body, &values); err != nil || len(values) == 0 {
		return nil, errors.EmptyInput("expected non-empty array of numbers")
	}
	return values, nil
}
