package validator

import (
	"errors"
	"strings"
	"testing"

	"pmshub/pkg/logger"
	"pmshub/pkg/model"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: logger.ERROR, Format: logger.TEXT})
}

func validConnection() *model.Connection {
	return &model.Connection{
		Name:          "Main Hotel Opera PMS",
		Type:          model.VendorOpera,
		APIEndpoint:   "https://api.opera.example.com/v1",
		AuthType:      model.AuthAPIKey,
		SyncFrequency: model.SyncHourly,
	}
}

func TestValidateAcceptsValidConnection(t *testing.T) {
	v := NewConnectionValidator(testLogger())
	if err := v.Validate(validConnection()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateRejectsInvalidConnections(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*model.Connection)
		wantField string
	}{
		{"missing name", func(c *model.Connection) { c.Name = "" }, "Name"},
		{"name too short", func(c *model.Connection) { c.Name = "A" }, "Name"},
		{"name too long", func(c *model.Connection) { c.Name = strings.Repeat("x", 101) }, "Name"},
		{"unknown vendor type", func(c *model.Connection) { c.Type = "winhotel" }, "Type"},
		{"missing endpoint", func(c *model.Connection) { c.APIEndpoint = "" }, "APIEndpoint"},
		{"relative endpoint", func(c *model.Connection) { c.APIEndpoint = "api.example.com/v1" }, "APIEndpoint"},
		{"ftp endpoint", func(c *model.Connection) { c.APIEndpoint = "ftp://api.example.com" }, "APIEndpoint"},
		{"unknown auth type", func(c *model.Connection) { c.AuthType = "kerberos" }, "AuthType"},
		{"unknown sync frequency", func(c *model.Connection) { c.SyncFrequency = "weekly" }, "SyncFrequency"},
		{"invalid status", func(c *model.Connection) { c.Status = "sleeping" }, "Status"},
	}

	v := NewConnectionValidator(testLogger())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := validConnection()
			tt.mutate(conn)

			err := v.Validate(conn)
			if err == nil {
				t.Fatal("expected validation error")
			}

			var validationErrs ValidationErrors
			if !errors.As(err, &validationErrs) {
				t.Fatalf("expected ValidationErrors, got %T", err)
			}
			found := false
			for _, ve := range validationErrs {
				if ve.Field == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("expected error on field %s, got %v", tt.wantField, validationErrs)
			}
		})
	}
}

func TestValidateAllowsEmptyOptionalStatus(t *testing.T) {
	v := NewConnectionValidator(testLogger())
	conn := validConnection()
	conn.Status = ""
	if err := v.Validate(conn); err != nil {
		t.Errorf("empty status should be allowed, got %v", err)
	}
}
