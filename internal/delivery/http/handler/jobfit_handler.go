package handler

import (
	"github.com/gofiber/fiber/v3"

	"talent-align/internal/delivery/http/response"
	"talent-align/internal/usecase"
)

type JobFitHandler struct {
	uc usecase.JobFitUsecase
}

func NewJobFitHandler(uc usecase.JobFitUsecase) *JobFitHandler {
	return &JobFitHandler{uc: uc}
}

func (h *JobFitHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/mock/:resource", h.GetResource)
}

func (h *JobFitHandler) GetResource(c fiber.Ctx) error {
	payload, err := h.uc.GetResource(c.Context(), c.Params("resource"), c.Query("org_id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, payload)
}
