package handler

import (
	"github.com/gofiber/fiber/v3"

	"talent-align/internal/delivery/http/dto"
	"talent-align/internal/delivery/http/response"
	"talent-align/internal/domain/action"
	"talent-align/internal/usecase"
)

type ActionHandler struct {
	uc usecase.ActionUsecase
}

func NewActionHandler(uc usecase.ActionUsecase) *ActionHandler {
	return &ActionHandler{uc: uc}
}

func (h *ActionHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/actions", h.List)
	r.Post("/action/update", h.Update)
	r.Post("/action/generate", h.Generate)
	r.Post("/simulate/jobfit", h.Simulate)
}

func (h *ActionHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListActions(c.Context(), c.Query("org_id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *ActionHandler) Update(c fiber.Ctx) error {
	var req dto.UpdateActionRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	if err := validateRequest(req, response.CodeMissingActionID, "Action id is required"); err != nil {
		return err
	}

	patch := action.Patch{
		Assignee:        req.Assignee,
		DueDate:         req.DueDate,
		Progress:        req.Progress,
		Title:           req.Title,
		ExpectedImpact:  req.ExpectedImpact,
		Effort:          req.Effort,
		ExecutionMethod: req.ExecutionMethod,
	}
	if req.Status != nil {
		st := action.Status(*req.Status)
		patch.Status = &st
	}

	updated, err := h.uc.UpdateAction(c.Context(), usecase.UpdateActionInput{ActionID: req.ID, Patch: patch})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, updated)
}

func (h *ActionHandler) Generate(c fiber.Ctx) error {
	var req dto.GenerateActionRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	if err := validateRequest(req, response.CodeMissingFields, "Missing required fields"); err != nil {
		return err
	}

	out, err := h.uc.GenerateAction(c.Context(), usecase.GenerateActionInput{
		ObjectType: req.ObjectType,
		ObjectID:   req.ObjectID,
		ActionType: req.ActionType,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.GenerateActionResponse{
		ActionID:       out.ActionID,
		ExpectedImpact: out.ExpectedImpact,
	})
}

func (h *ActionHandler) Simulate(c fiber.Ctx) error {
	var req dto.SimulateJobFitRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	if err := validateRequest(req, response.CodeMissingFields, "Missing required fields"); err != nil {
		return err
	}

	sim, err := h.uc.SimulateJobFit(c.Context(), usecase.SimulateInput{
		OrgID:    req.OrgID,
		Employee: req.Employee,
		Role:     req.Role,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.SimulateJobFitResponse{
		Match:       sim.Match,
		Performance: sim.Performance,
		Risk:        sim.Risk,
		Reason:      sim.Reason,
	})
}
