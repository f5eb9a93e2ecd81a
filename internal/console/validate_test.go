package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAcceptsCompleteForm(t *testing.T) {
	errs := gadgetSchema().Validate(validGadgetForm(), categoryRefs())
	assert.Empty(t, errs)
}

func TestValidateRequiredFields(t *testing.T) {
	schema := gadgetSchema()
	for _, blank := range []any{"", "   ", "\t\n", nil} {
		form := validGadgetForm()
		form["nome"] = blank
		form["codigo"] = blank
		form["email"] = blank

		errs := schema.Validate(form, categoryRefs())
		assert.Equal(t, "Nome é obrigatório", errs["nome"], "input %q", blank)
		assert.Equal(t, "Código é obrigatório", errs["codigo"], "input %q", blank)
		assert.Equal(t, "Email é obrigatório", errs["email"], "input %q", blank)
	}
}

func TestValidateMissingKeysAreBlank(t *testing.T) {
	errs := gadgetSchema().Validate(Form{}, categoryRefs())
	assert.Contains(t, errs, "nome")
	assert.Contains(t, errs, "categoriaId")
	assert.Equal(t, "Data é obrigatória", errs["emitidoEm"])
}

func TestValidateReportsEveryFailingField(t *testing.T) {
	form := Form{
		"nome":        "",
		"codigo":      "12",
		"email":       "sem-arroba",
		"preco":       float64(0),
		"estoque":     float64(-1),
		"categoriaId": "",
		"emitidoEm":   "ontem",
	}
	errs := gadgetSchema().Validate(form, categoryRefs())
	assert.Equal(t, FieldErrors{
		"nome":        "Nome é obrigatório",
		"codigo":      "Código deve conter 3 dígitos",
		"email":       "Email inválido",
		"preco":       "Preço deve ser maior que zero",
		"estoque":     "Estoque não pode ser negativo",
		"categoriaId": "Categoria é obrigatória",
		"emitidoEm":   "Emitido em inválido",
	}, errs)
}

func TestValidateTaxIDCountsDigitsOnly(t *testing.T) {
	schema := gadgetSchema()
	tests := []struct {
		code  string
		valid bool
	}{
		{"123", true},
		{"1.2-3", true},
		{" 1 2 3 ", true},
		{"12", false},
		{"1234", false},
		{"abc", false},
		{"١٢٣", false},
	}
	for _, tt := range tests {
		form := validGadgetForm()
		form["codigo"] = tt.code
		errs := schema.Validate(form, categoryRefs())
		if tt.valid {
			assert.NotContains(t, errs, "codigo", tt.code)
		} else {
			assert.Equal(t, "Código deve conter 3 dígitos", errs["codigo"], tt.code)
		}
	}
}

func TestValidateEmailShape(t *testing.T) {
	schema := gadgetSchema()
	for email, valid := range map[string]bool{
		"a@b.com":        true,
		"loja@pesca.com": true,
		"a@b":            false,
		"a b@c.com":      false,
		"@b.com":         false,
		"a@@b.com":       false,
	} {
		form := validGadgetForm()
		form["email"] = email
		_, failed := schema.Validate(form, categoryRefs())["email"]
		assert.Equal(t, !valid, failed, email)
	}
}

func TestValidateNumbers(t *testing.T) {
	schema := gadgetSchema()
	for _, price := range []any{float64(0), float64(-5), "abc", "1,2,3"} {
		form := validGadgetForm()
		form["preco"] = price
		assert.Equal(t, "Preço deve ser maior que zero", schema.Validate(form, categoryRefs())["preco"], "price %v", price)
	}
	form := validGadgetForm()
	form["preco"] = 0.01
	assert.NotContains(t, schema.Validate(form, categoryRefs()), "preco")

	form = validGadgetForm()
	form["estoque"] = float64(0)
	assert.NotContains(t, schema.Validate(form, categoryRefs()), "estoque")
}

func TestValidateReferenceMustBeLoaded(t *testing.T) {
	schema := gadgetSchema()
	form := validGadgetForm()
	form["categoriaId"] = "C9"
	assert.Equal(t, "Categoria não encontrada", schema.Validate(form, categoryRefs())["categoriaId"])
	assert.Equal(t, "Categoria não encontrada", schema.Validate(validGadgetForm(), Refs{})["categoriaId"])
}

func TestValidateDateTimeLayouts(t *testing.T) {
	schema := gadgetSchema()
	for _, value := range []string{
		"2026-10-19T10:00",
		"2026-10-19T10:00:30",
		"2026-10-19T10:00:30.123",
		"2026-10-19T10:00:30Z",
		"2026-10-19T10:00:30-03:00",
	} {
		form := validGadgetForm()
		form["emitidoEm"] = value
		assert.NotContains(t, schema.Validate(form, categoryRefs()), "emitidoEm", value)
	}
}

func TestCoerce(t *testing.T) {
	number := Field{Kind: KindNumber}
	assert.Equal(t, 12.5, Coerce(number, "12.5"))
	assert.Equal(t, 12.5, Coerce(number, "12,5"))
	assert.Equal(t, 1234.5, Coerce(number, "1.234,5"))
	assert.Equal(t, float64(0), Coerce(number, " "))
	assert.Equal(t, "abc", Coerce(number, "abc"))
	assert.Equal(t, "NaN", Coerce(number, "NaN"))
	assert.Equal(t, " texto ", Coerce(Field{Kind: KindText}, " texto "))
}

func TestPayloadHoldsDeclaredFieldsOnly(t *testing.T) {
	form := validGadgetForm()
	form["id"] = "G1"
	form["modal"] = "edit"
	form["preco"] = "7,5"

	payload := gadgetSchema().Payload(form)
	assert.NotContains(t, payload, "id")
	assert.NotContains(t, payload, "modal")
	assert.Equal(t, 7.5, payload["preco"])
	assert.Equal(t, "Molinete", payload["nome"])
	assert.Len(t, payload, 7)
}

func TestFormatValue(t *testing.T) {
	dt := Field{Kind: KindDateTime}
	assert.Equal(t, "2026-10-19T10:00", FormatValue(dt, "2026-10-19T10:00:30.000Z"))
	assert.Equal(t, "2026-10-19", FormatValue(dt, "2026-10-19"))
	assert.Equal(t, "12.5", FormatValue(Field{Kind: KindNumber}, 12.5))
	assert.Equal(t, "", FormatValue(Field{Kind: KindText}, nil))
}
