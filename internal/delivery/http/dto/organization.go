package dto

import "talent-align/internal/domain/organization"

type OrganizationTreeResponse struct {
	organization.Organization
	Ancestors []string `json:"ancestors"`
	Children  []string `json:"children"`
}
