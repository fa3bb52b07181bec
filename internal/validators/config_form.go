package validators

import (
	"context"
	"slices"
	"strconv"
	"strings"

	"github.com/MKhiriev/dingus-admin/models"
)

const (
	FieldWildApricotAccountID = "wild_apricot_account_id"

	maxAccountIDLength = 10
)

type ConfigFormValidator struct{}

func NewConfigFormValidator() Validator {
	return &ConfigFormValidator{}
}

func (v *ConfigFormValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ConfigForm:
		return v.validateConfigForm(ctx, value, fields...)
	case *models.ConfigForm:
		return v.validateConfigForm(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ConfigFormValidator) validateConfigForm(_ context.Context, form models.ConfigForm, fields ...string) error {
	if len(fields) > 0 && !slices.Contains(fields, FieldWildApricotAccountID) {
		return nil
	}

	if form.WildApricotAccountID <= 0 || len(strconv.Itoa(form.WildApricotAccountID)) > maxAccountIDLength {
		return ErrInvalidAccountID
	}

	return nil
}

// ParseAccountID converts raw form input into an account id. The input must
// be a positive base-10 integer of at most ten characters.
func ParseAccountID(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || len(raw) > maxAccountIDLength {
		return 0, ErrInvalidAccountID
	}

	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, ErrInvalidAccountID
	}

	return id, nil
}
