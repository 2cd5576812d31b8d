// Package validation checks user form drafts before they are submitted.
package validation

import (
	"regexp"
	"sort"
	"strings"

	"github.com/carlosebw/crudify/internal/model"
)

// Field names used as keys in Errors.
const (
	FieldName   = "name"
	FieldEmail  = "email"
	FieldPhone  = "phone"
	FieldStatus = "status"
)

// Messages reported for failing fields.
const (
	MsgNameRequired  = "name is required"
	MsgEmailRequired = "email is required"
	MsgEmailInvalid  = "invalid email format"
	MsgPhoneRequired = "phone is required"
)

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// Errors maps a field name to a human-readable message.
type Errors map[string]string

// Valid reports whether no field failed.
func (e Errors) Valid() bool {
	return len(e) == 0
}

// Fields returns the failing field names in sorted order.
func (e Errors) Fields() []string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// Validate checks every field of the draft independently and returns the
// failures. Status is not checked here.
func Validate(d model.Draft) Errors {
	errs := Errors{}

	if strings.TrimSpace(d.Name) == "" {
		errs[FieldName] = MsgNameRequired
	}

	if strings.TrimSpace(d.Email) == "" {
		errs[FieldEmail] = MsgEmailRequired
	} else if !emailPattern.MatchString(d.Email) {
		errs[FieldEmail] = MsgEmailInvalid
	}

	if strings.TrimSpace(d.Phone) == "" {
		errs[FieldPhone] = MsgPhoneRequired
	}

	return errs
}
