package usecase

import (
	"context"
	"strings"

	"talent-align/internal/domain/organization"
)

type OrganizationNode struct {
	Organization organization.Organization
	// Ancestors is nearest first.
	Ancestors []string
	Children  []string
}

type OrganizationUsecase interface {
	ListOrganizations(ctx context.Context) ([]organization.Organization, error)
	GetTree(ctx context.Context, orgID string) (OrganizationNode, error)
}

type Organizations struct {
	hierarchy *organization.Hierarchy
}

func NewOrganizationUsecase(h *organization.Hierarchy) *Organizations {
	return &Organizations{hierarchy: h}
}

func (u *Organizations) ListOrganizations(context.Context) ([]organization.Organization, error) {
	return u.hierarchy.All(), nil
}

func (u *Organizations) GetTree(_ context.Context, orgID string) (OrganizationNode, error) {
	orgID = strings.TrimSpace(orgID)
	org, ok := u.hierarchy.Find(orgID)
	if !ok {
		return OrganizationNode{}, ErrOrganizationNotFound
	}

	children := make([]string, 0)
	for _, c := range u.hierarchy.Children(orgID) {
		children = append(children, c.ID)
	}
	ancestors := u.hierarchy.Ancestors(orgID)
	if ancestors == nil {
		ancestors = []string{}
	}
	return OrganizationNode{Organization: org, Ancestors: ancestors, Children: children}, nil
}
