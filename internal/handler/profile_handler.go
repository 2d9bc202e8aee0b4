package handler

import (
	"net/http"

	"github.com/Eursukkul/hustle-events/internal/dto"
	"github.com/Eursukkul/hustle-events/internal/service"
	"github.com/labstack/echo/v4"
)

type ProfileHandler struct {
	profiles service.ProfileService
	editor   service.ProfileEditor
}

func NewProfileHandler(profiles service.ProfileService, editor service.ProfileEditor) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, editor: editor}
}

func (h *ProfileHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/:id", h.GetProfile)
	g.PUT("/:id", h.UpdateProfile)
	g.GET("/:id/events", h.ListMemberships)

	g.POST("/:id/draft", h.BeginEdit)
	g.GET("/:id/draft", h.CurrentDraft)
	g.PATCH("/:id/draft", h.EditDraft)
	g.DELETE("/:id/draft", h.CancelEdit)
	g.POST("/:id/draft/submit", h.SubmitEdit)
}

func (h *ProfileHandler) GetProfile(c echo.Context) error {
	profile, notice, err := h.profiles.GetProfile(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ToProfileResponse(profile, notice))
}

func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	var req dto.ProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, notice, err := h.profiles.UpdateProfile(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ToProfileResponse(profile, notice))
}

func (h *ProfileHandler) ListMemberships(c echo.Context) error {
	list, err := h.profiles.ListMemberships(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	resp := make([]dto.MembershipResponse, len(list))
	for i := range list {
		resp[i] = dto.ToMembershipResponse(&list[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) BeginEdit(c echo.Context) error {
	d, err := h.editor.Begin(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, d)
}

func (h *ProfileHandler) CurrentDraft(c echo.Context) error {
	d, err := h.editor.Current(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, d)
}

func (h *ProfileHandler) EditDraft(c echo.Context) error {
	var patch dto.DraftPatchRequest
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	d, err := h.editor.Edit(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, d)
}

func (h *ProfileHandler) CancelEdit(c echo.Context) error {
	if err := h.editor.Cancel(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ProfileHandler) SubmitEdit(c echo.Context) error {
	res, err := h.editor.Submit(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.ToProfileResponse(res.Profile, res.Notice))
}
