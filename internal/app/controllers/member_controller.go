package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wmad/library-backend/internal/app/models/dto"
	"github.com/wmad/library-backend/internal/app/services"
	"github.com/wmad/library-backend/internal/middleware"
	"github.com/wmad/library-backend/internal/pkg/logger"
	"github.com/wmad/library-backend/internal/pkg/validation"
)

// MemberController handles member-related operations
type MemberController struct {
	memberService services.MemberService
}

// NewMemberController creates a new MemberController
func NewMemberController(memberService services.MemberService) *MemberController {
	return &MemberController{
		memberService: memberService,
	}
}

// readMemberPayload decodes and validates the body. Any missing or
// mistyped field yields 400 "Invalid member data".
func readMemberPayload(ctx *gin.Context) (*dto.MemberRequest, bool) {
	raw, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		middleware.AbortWithError(ctx, http.StatusBadRequest, dto.ErrorCodeValidationFailed, services.InvalidMemberDataMessage)
		return nil, false
	}

	req, err := validation.ParseMemberPayload(raw)
	if err != nil {
		logger.Debug().Err(err).Msg("Member payload rejected")
		middleware.AbortWithError(ctx, http.StatusBadRequest, dto.ErrorCodeValidationFailed, services.InvalidMemberDataMessage)
		return nil, false
	}
	return req, true
}

// CreateMember handles member registration
// @Summary Create a new member
// @Description Registers a library member. The member code is generated by the server.
// @Tags members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.MemberRequest true "Member information"
// @Success 201 {object} models.Member "Member created"
// @Failure 400 {object} dto.ErrorResponse "Invalid member data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.ErrorResponse "Could not generate a unique code"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/members [post]
func (c *MemberController) CreateMember(ctx *gin.Context) {
	req, ok := readMemberPayload(ctx)
	if !ok {
		return
	}

	member, err := c.memberService.CreateMember(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, member)
}

// GetAllMembers lists members
// @Summary List members
// @Tags members
// @Produce json
// @Success 200 {array} models.Member
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/members [get]
func (c *MemberController) GetAllMembers(ctx *gin.Context) {
	members, err := c.memberService.GetAllMembers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, members)
}

// GetMemberByID retrieves a member by ID
// @Summary Get member details
// @Tags members
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID" Format(int64)
// @Success 200 {object} models.Member
// @Failure 400 {object} dto.ErrorResponse "Invalid member ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Member not found"
// @Router /api/members/{id} [get]
func (c *MemberController) GetMemberByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "member")
	if !ok {
		return
	}

	member, err := c.memberService.GetMemberByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, member)
}

// GetMemberByCode retrieves a member by the code printed on the card
// @Summary Get member by code
// @Description The code is matched case-insensitively
// @Tags members
// @Produce json
// @Security BearerAuth
// @Param code path string true "Member code"
// @Success 200 {object} models.Member
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Member not found"
// @Router /api/members/code/{code} [get]
func (c *MemberController) GetMemberByCode(ctx *gin.Context) {
	member, err := c.memberService.GetMemberByCode(ctx.Request.Context(), ctx.Param("code"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, member)
}

// UpdateMember replaces a member's details
// @Summary Update a member
// @Description Every field is required; the member code never changes
// @Tags members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID" Format(int64)
// @Param request body dto.MemberRequest true "Member information"
// @Success 200 {object} models.Member
// @Failure 400 {object} dto.ErrorResponse "Invalid member data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Member not found"
// @Router /api/members/{id} [put]
func (c *MemberController) UpdateMember(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "member")
	if !ok {
		return
	}

	req, ok := readMemberPayload(ctx)
	if !ok {
		return
	}

	member, err := c.memberService.UpdateMember(ctx.Request.Context(), id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, member)
}

// DeleteMember removes a member
// @Summary Delete a member
// @Tags members
// @Security BearerAuth
// @Param id path int true "Member ID" Format(int64)
// @Success 204 "Member deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid member ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Member not found"
// @Failure 409 {object} dto.ErrorResponse "Member has book issues"
// @Router /api/members/{id} [delete]
func (c *MemberController) DeleteMember(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "member")
	if !ok {
		return
	}

	if err := c.memberService.DeleteMember(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
