package dto

import "github.com/transit-network/internal/domain"

type CompanyRequest struct {
	Name string `json:"name" validate:"required,notblank,max=255"`
}

type CompanyResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func NewCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{ID: c.ID, Name: c.Name}
}

func NewCompanyResponses(companies []*domain.Company) []CompanyResponse {
	result := make([]CompanyResponse, 0, len(companies))
	for _, c := range companies {
		result = append(result, NewCompanyResponse(c))
	}
	return result
}
