package usecase

import (
	"github.com/jhoicas/configurador-api/internal/application/dto"
	"github.com/jhoicas/configurador-api/internal/domain/configurator"
	"github.com/jhoicas/configurador-api/internal/domain/entity"
)

func toFilterResponse(f *entity.Filter) *dto.FilterResponse {
	return &dto.FilterResponse{
		ID:         f.ID,
		Name:       f.Name,
		TypeID:     f.TypeID,
		Predefined: f.Predefined,
		CreatedAt:  f.CreatedAt,
	}
}

func toCustomProductResponse(p *entity.CustomProduct) *dto.CustomProductResponse {
	filterIDs := p.FilterIDs
	if filterIDs == nil {
		filterIDs = []string{}
	}
	return &dto.CustomProductResponse{
		ID:             p.ID,
		Code:           p.Code,
		TypeID:         p.TypeID,
		CategoryID:     p.CategoryID,
		Name:           p.Name,
		Description:    p.Description,
		BasePrice:      p.BasePrice,
		Specifications: toSpecificationDTOs(p.Specifications),
		FilterIDs:      filterIDs,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func toModelResponse(m entity.ResolvedModel) dto.ModelResponse {
	tags := m.Tags
	if tags == nil {
		tags = []string{}
	}
	return dto.ModelResponse{
		Ref:            m.Ref.String(),
		Kind:           string(m.Ref.Kind),
		TypeID:         m.TypeID,
		BaseCode:       m.BaseCode,
		Name:           m.DisplayName,
		Description:    m.Description,
		BasePrice:      m.BasePrice,
		Specifications: toSpecificationDTOs(m.Specifications),
		Tags:           tags,
	}
}

func toSpecificationDTO(s entity.Specification) dto.SpecificationDTO {
	opts := make([]dto.SpecificationOptionDTO, 0, len(s.Options))
	for _, o := range s.Options {
		opts = append(opts, dto.SpecificationOptionDTO{
			Value:      o.Value,
			Code:       o.Code,
			Label:      o.Label,
			PriceDelta: o.PriceDelta,
		})
	}
	return dto.SpecificationDTO{Name: s.Name, Options: opts}
}

func toSpecificationDTOs(specs []entity.Specification) []dto.SpecificationDTO {
	out := make([]dto.SpecificationDTO, 0, len(specs))
	for _, s := range specs {
		out = append(out, toSpecificationDTO(s))
	}
	return out
}

func toGenerationResponse(r *configurator.Result) *dto.GenerationResponse {
	if r == nil {
		return nil
	}
	sel := make([]dto.SelectedOptionDTO, 0, len(r.Selections))
	for _, s := range r.Selections {
		sel = append(sel, dto.SelectedOptionDTO{
			Specification: s.Specification,
			Value:         s.Option.Value,
			Code:          s.Option.Code,
			Label:         s.Option.Label,
		})
	}
	return &dto.GenerationResponse{
		Model:       r.Model.String(),
		Code:        r.Code,
		Description: r.Description,
		Price:       r.Price,
		Selections:  sel,
	}
}

func toExportRows(rows []configurator.ExportRow) []dto.ExportRow {
	out := make([]dto.ExportRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ExportRow{
			Code:        r.Code,
			Name:        r.Name,
			TypeName:    r.TypeName,
			Description: r.Description,
			SpecsText:   r.SpecsText,
			Custom:      r.Custom,
		})
	}
	return out
}
