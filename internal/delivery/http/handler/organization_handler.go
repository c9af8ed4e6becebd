package handler

import (
	"github.com/gofiber/fiber/v3"

	"talent-align/internal/delivery/http/dto"
	"talent-align/internal/delivery/http/response"
	"talent-align/internal/usecase"
)

type OrganizationHandler struct {
	uc usecase.OrganizationUsecase
}

func NewOrganizationHandler(uc usecase.OrganizationUsecase) *OrganizationHandler {
	return &OrganizationHandler{uc: uc}
}

func (h *OrganizationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/organizations")
	grp.Get("/", h.List)
	grp.Get("/:id/tree", h.Tree)
}

func (h *OrganizationHandler) List(c fiber.Ctx) error {
	orgs, err := h.uc.ListOrganizations(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, orgs)
}

func (h *OrganizationHandler) Tree(c fiber.Ctx) error {
	node, err := h.uc.GetTree(c.Context(), c.Params("id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.OrganizationTreeResponse{
		Organization: node.Organization,
		Ancestors:    node.Ancestors,
		Children:     node.Children,
	})
}
