package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"desa-profil-backend/pkg/apperr"
)

type nipHolder struct {
	NIP *string `json:"nip" validate:"omitempty,nip"`
}

type postalHolder struct {
	PostalCode string `json:"postal_code" validate:"required,len=5,numeric"`
}

type contentHolder struct {
	Content string `json:"content" validate:"required,strippedmin=100"`
}

func strPtr(s string) *string { return &s }

func TestNIPRule(t *testing.T) {
	t.Run("absent passes", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(&nipHolder{}))
	})

	t.Run("empty string passes", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(&nipHolder{NIP: strPtr("")}))
	})

	t.Run("eighteen digits passes", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(&nipHolder{NIP: strPtr("198503172010011001")}))
	})

	t.Run("too short fails with field name", func(t *testing.T) {
		err := ValidateStruct(&nipHolder{NIP: strPtr("12345")})
		require.Error(t, err)
		var ve *apperr.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "nip", ve.Field)
		assert.Contains(t, ve.Message, "18 digits")
	})

	t.Run("letters fail", func(t *testing.T) {
		err := ValidateStruct(&nipHolder{NIP: strPtr("19850317201001100a")})
		assert.Error(t, err)
	})
}

func TestPostalCodeRule(t *testing.T) {
	t.Run("five digits passes", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(&postalHolder{PostalCode: "65152"}))
	})

	t.Run("four digits fails", func(t *testing.T) {
		err := ValidateStruct(&postalHolder{PostalCode: "6515"})
		require.Error(t, err)
		var ve *apperr.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "postal_code", ve.Field)
	})

	t.Run("letters fail", func(t *testing.T) {
		assert.Error(t, ValidateStruct(&postalHolder{PostalCode: "6515a"}))
	})
}

func TestStrippedMinRule(t *testing.T) {
	t.Run("plain text under minimum fails", func(t *testing.T) {
		err := ValidateStruct(&contentHolder{Content: strings.Repeat("x", 99)})
		require.Error(t, err)
		var ve *apperr.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "content", ve.Field)
	})

	t.Run("tags do not count toward the minimum", func(t *testing.T) {
		// 99 visible characters wrapped in markup that pushes the raw string
		// well past 100.
		html := "<p><strong><em>" + strings.Repeat("x", 99) + "</em></strong></p>"
		assert.Error(t, ValidateStruct(&contentHolder{Content: html}))
	})

	t.Run("hundred stripped characters passes", func(t *testing.T) {
		html := "<p>" + strings.Repeat("x", 100) + "</p>"
		assert.NoError(t, ValidateStruct(&contentHolder{Content: html}))
	})
}
