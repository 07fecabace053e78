package lib

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/careerbuilder24/e-commerce-project/structs"
)

func jsonRequest(t *testing.T, body string) *http.Request {
	t.Helper()
	r, err := http.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	r.Header.Set("Content-Type", "application/json")
	return r
}

func TestExtractAndValidateBody(t *testing.T) {
	r := jsonRequest(t, `{"email":"user@example.com","password":"hunter22","name":"Some User"}`)

	body, err := ExtractAndValidateBody[structs.RegisterRequest](r)
	if err != nil {
		t.Fatalf("ExtractAndValidateBody: %v", err)
	}
	if body.Email != "user@example.com" {
		t.Errorf("email = %q", body.Email)
	}
}

func TestExtractAndValidateBodyValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing email", `{"password":"hunter22","name":"Some User"}`},
		{"short password", `{"email":"user@example.com","password":"abc","name":"Some User"}`},
		{"bad email", `{"email":"nope","password":"hunter22","name":"Some User"}`},
		{"missing name", `{"email":"user@example.com","password":"hunter22"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := jsonRequest(t, tt.body)
			_, err := ExtractAndValidateBody[structs.RegisterRequest](r)
			if err == nil {
				t.Fatal("expected validation error")
			}

			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if len(ve.Errors) == 0 {
				t.Error("validation error has no field errors")
			}
		})
	}
}

func TestExtractAndValidateBodyUsesJSONFieldNames(t *testing.T) {
	r := jsonRequest(t, `{"store_description":"Plants and pots"}`)

	_, err := ExtractAndValidateBody[structs.CreateVendorRequest](r)
	if err == nil {
		t.Fatal("expected validation error for missing store_name")
	}

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if len(ve.Errors) != 1 || ve.Errors[0].Field != "store_name" {
		t.Errorf("field errors = %+v, want one error on store_name", ve.Errors)
	}
	if ve.Errors[0].Message != "is required" {
		t.Errorf("message = %q", ve.Errors[0].Message)
	}
}

func TestExtractAndValidateBodyUnknownField(t *testing.T) {
	r := jsonRequest(t, `{"email":"user@example.com","password":"hunter22","name":"Some User","role":"admin"}`)

	if _, err := ExtractAndValidateBody[structs.RegisterRequest](r); err == nil {
		t.Error("unknown field should be rejected")
	}
}

func TestExtractAndValidateBodyMalformedJSON(t *testing.T) {
	r := jsonRequest(t, `{"email":`)

	if _, err := ExtractAndValidateBody[structs.RegisterRequest](r); err == nil {
		t.Error("malformed JSON should be rejected")
	}
}

func TestExtractAndValidateBodyPartialUpdate(t *testing.T) {
	// Partial update bodies may set any subset of fields.
	r := jsonRequest(t, `{"store_name":"New Name"}`)

	body, err := ExtractAndValidateBody[structs.UpdateVendorRequest](r)
	if err != nil {
		t.Fatalf("ExtractAndValidateBody: %v", err)
	}
	if body.StoreName == nil || *body.StoreName != "New Name" {
		t.Error("store_name not decoded")
	}
	if body.ContactEmail != nil {
		t.Error("unset field should stay nil")
	}
}
