package configurator

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/configurador-api/internal/domain"
	"github.com/jhoicas/configurador-api/internal/domain/entity"
)

const (
	codeSeparator        = "-"
	descriptionDelimiter = " with "
	descriptionSeparator = " | "
	notSelected          = "Not selected"
)

// SelectedOption par especificación/opción resuelto, en orden de declaración.
type SelectedOption struct {
	Specification string
	Option        entity.SpecificationOption
}

// Result artefacto final de una configuración.
type Result struct {
	Model       entity.ModelRef
	Code        string
	Description string
	Price       decimal.Decimal
	Selections  []SelectedOption
}

// Generate valida que cada especificación declarada tenga una opción válida y compone
// código, descripción y precio. Es una función pura de (modelo, selección).
func Generate(model entity.ResolvedModel, selected map[string]string) (*Result, error) {
	var missing []string
	selections := make([]SelectedOption, 0, len(model.Specifications))
	for _, spec := range model.Specifications {
		value, present := selected[spec.Name]
		opt, ok := spec.Option(value)
		if !present || !ok {
			missing = append(missing, spec.Name)
			continue
		}
		selections = append(selections, SelectedOption{Specification: spec.Name, Option: opt})
	}
	if len(missing) > 0 {
		return nil, &domain.GenerationError{Kind: domain.MissingSpecifications, Specs: missing}
	}

	segments := make([]string, 0, len(selections)+1)
	segments = append(segments, model.BaseCode)
	price := model.BasePrice
	for _, s := range selections {
		if s.Option.Code == "" {
			return nil, &domain.GenerationError{Kind: domain.EmptyOptionCode, Specs: []string{s.Specification}}
		}
		segments = append(segments, s.Option.Code)
		price = price.Add(s.Option.PriceDelta)
	}

	return &Result{
		Model:       model.Ref,
		Code:        strings.Join(segments, codeSeparator),
		Description: Describe(model, selected),
		Price:       price,
		Selections:  selections,
	}, nil
}

// Describe compone la descripción legible: nombre del modelo, " with ", y cada
// especificación con la etiqueta de la opción elegida, separadas por " | ".
// Una especificación sin selección se muestra como "<nombre>: Not selected".
func Describe(model entity.ResolvedModel, selected map[string]string) string {
	if len(model.Specifications) == 0 {
		return model.DisplayName
	}
	pairs := make([]string, 0, len(model.Specifications))
	for _, spec := range model.Specifications {
		label := notSelected
		if value, present := selected[spec.Name]; present {
			if opt, ok := spec.Option(value); ok {
				label = opt.Label
			}
		}
		pairs = append(pairs, strings.ToLower(spec.Name)+": "+label)
	}
	return model.DisplayName + descriptionDelimiter + strings.Join(pairs, descriptionSeparator)
}
