package controllers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"membership-http-service/internal/app/middleware"
	"membership-http-service/internal/domain/models"
	"membership-http-service/internal/domain/services"
	"membership-http-service/internal/domain/services/container"
	"membership-http-service/internal/error/code"
	"membership-http-service/internal/error/response"
	"membership-http-service/internal/error/validation"
)

// dateOfBirthLayout is the wire format for date_of_birth.
const dateOfBirthLayout = "2006-01-02"

// InterfaceMemberController defines the member controller interface
type InterfaceMemberController interface {
	GetMembers()
	CreateMember()
	GetMember()
	UpdateMember()
	DeleteMember()
}

// MemberController handles member requests
type MemberController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewMemberController creates a new member controller
func NewMemberController(ctx *gin.Context, container *container.ServiceContainer) *MemberController {
	return &MemberController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateMemberRequest is the member creation payload
type CreateMemberRequest struct {
	FullName         string `json:"full_name" example:"Ada Obi"`
	CodeID           string `json:"code_id" binding:"required" example:"MEM-0001"`
	Email            string `json:"email" binding:"required,email" example:"ada@example.com"`
	Phone            string `json:"phone" binding:"required" example:"08012345678"`
	Whatsapp         string `json:"whatsapp" example:"08012345678"`
	Address          string `json:"address" example:"12 Marina Road, Lagos"`
	Occupation       string `json:"occupation" example:"Trader"`
	DateOfBirth      string `json:"date_of_birth" example:"1990-04-17"`
	Stage            string `json:"stage" example:"1"`
	BankName         string `json:"bank_name" example:"GTB"`
	BankAccountNo    string `json:"bank_account_no" example:"0123456789"`
	NoReferrals      int    `json:"no_referrals" example:"0"`
	ReferralPhone    string `json:"referral_phone" example:"08098765432"`
	ReferralCodeID   string `json:"referral_code_id" example:"MEM-0002"`
	NextOfKinName    string `json:"next_of_kin_name" example:"Chidi Obi"`
	NextOfKinPhone   string `json:"next_of_kin_phone" example:"08011122233"`
	NextOfKinEmail   string `json:"next_of_kin_email" binding:"omitempty,email" example:"chidi@example.com"`
	NextOfKinAddress string `json:"next_of_kin_address" example:"4 Aba Road, Enugu"`
}

// UpdateMemberRequest is the partial or full member update payload
type UpdateMemberRequest struct {
	FullName         *string `json:"full_name"`
	CodeID           *string `json:"code_id"`
	Email            *string `json:"email"`
	Phone            *string `json:"phone"`
	Whatsapp         *string `json:"whatsapp"`
	Address          *string `json:"address"`
	Occupation       *string `json:"occupation"`
	DateOfBirth      *string `json:"date_of_birth"`
	Stage            *string `json:"stage"`
	BankName         *string `json:"bank_name"`
	BankAccountNo    *string `json:"bank_account_no"`
	NoReferrals      *int    `json:"no_referrals"`
	ReferralPhone    *string `json:"referral_phone"`
	ReferralCodeID   *string `json:"referral_code_id"`
	NextOfKinName    *string `json:"next_of_kin_name"`
	NextOfKinPhone   *string `json:"next_of_kin_phone"`
	NextOfKinEmail   *string `json:"next_of_kin_email"`
	NextOfKinAddress *string `json:"next_of_kin_address"`
}

// HandleMemberFunc returns a Gin handler dispatching to the member controller
func HandleMemberFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewMemberController(ctx, container)

		switch method {
		case "getMembers":
			controller.GetMembers()
		case "createMember":
			controller.CreateMember()
		case "getMember":
			controller.GetMember()
		case "updateMember":
			controller.UpdateMember()
		case "deleteMember":
			controller.DeleteMember()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}

// 1. GetMembers lists all members
// @Summary      List members
// @Description  Returns all members ordered by registration date, most recent first
// @Tags         Member
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /members [get]
func (c *MemberController) GetMembers() {
	memberService := c.Container.GetService("member").(services.InterfaceMemberService)
	members, err := memberService.GetAllMembers()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to list members: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, members)
}

// 2. CreateMember creates a new member
// @Summary      Create member
// @Description  Validates and persists a new member record
// @Tags         Member
// @Accept       json
// @Produce      json
// @Param        request body CreateMemberRequest true "Member payload"
// @Security     BearerAuth
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /members [post]
func (c *MemberController) CreateMember() {
	var req CreateMemberRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrValidation, bindErrors(err))
		return
	}

	member := &models.Member{
		FullName:         req.FullName,
		CodeID:           req.CodeID,
		Email:            req.Email,
		Phone:            req.Phone,
		Whatsapp:         req.Whatsapp,
		Address:          req.Address,
		Occupation:       req.Occupation,
		Stage:            req.Stage,
		BankName:         req.BankName,
		BankAccountNo:    req.BankAccountNo,
		NoReferrals:      req.NoReferrals,
		ReferralPhone:    req.ReferralPhone,
		ReferralCodeID:   req.ReferralCodeID,
		NextOfKinName:    req.NextOfKinName,
		NextOfKinPhone:   req.NextOfKinPhone,
		NextOfKinEmail:   req.NextOfKinEmail,
		NextOfKinAddress: req.NextOfKinAddress,
	}

	if req.DateOfBirth != "" {
		dob, err := time.Parse(dateOfBirthLayout, req.DateOfBirth)
		if err != nil {
			response.Fail(c.Ctx, code.ErrValidation, validation.Errors{
				"date_of_birth": "enter a valid date in YYYY-MM-DD format",
			})
			return
		}
		member.DateOfBirth = &dob
	}

	memberService := c.Container.GetService("member").(services.InterfaceMemberService)
	if err := memberService.CreateMember(member); err != nil {
		if verrs, ok := validation.AsErrors(err); ok {
			response.Fail(c.Ctx, code.ErrValidation, verrs)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to create member: "+err.Error(), nil)
		return
	}

	middleware.InvalidateCache()
	response.Created(c.Ctx, member)
}

// 3. GetMember returns one member by code_id
// @Summary      Get member
// @Description  Returns the member with the given code id
// @Tags         Member
// @Accept       json
// @Produce      json
// @Param        code_id path string true "Member code id"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /member/{code_id} [get]
func (c *MemberController) GetMember() {
	codeID := c.Ctx.Param("code_id")

	memberService := c.Container.GetService("member").(services.InterfaceMemberService)
	member, err := memberService.GetMemberByCodeID(codeID)
	if err != nil {
		if errors.Is(err, services.ErrMemberNotFound) {
			response.Fail(c.Ctx, code.ErrMemberNotFound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to fetch member: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, member)
}

// 4. UpdateMember applies a partial or full update by code_id
// @Summary      Update member
// @Description  Updates the member with the given code id; PUT and PATCH both accept partial payloads
// @Tags         Member
// @Accept       json
// @Produce      json
// @Param        code_id path string true "Member code id"
// @Param        request body UpdateMemberRequest true "Fields to update"
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /member/{code_id} [put]
func (c *MemberController) UpdateMember() {
	codeID := c.Ctx.Param("code_id")

	var req UpdateMemberRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrValidation, bindErrors(err))
		return
	}

	updates, verrs := req.toUpdates()
	if verrs.HasErrors() {
		response.Fail(c.Ctx, code.ErrValidation, verrs)
		return
	}

	memberService := c.Container.GetService("member").(services.InterfaceMemberService)
	member, err := memberService.UpdateMember(codeID, updates)
	if err != nil {
		if errors.Is(err, services.ErrMemberNotFound) {
			response.Fail(c.Ctx, code.ErrMemberNotFound, nil)
			return
		}
		if verrs, ok := validation.AsErrors(err); ok {
			response.Fail(c.Ctx, code.ErrValidation, verrs)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to update member: "+err.Error(), nil)
		return
	}

	middleware.InvalidateCache()
	response.Success(c.Ctx, member)
}

// 5. DeleteMember removes a member by code_id
// @Summary      Delete member
// @Description  Removes the member with the given code id
// @Tags         Member
// @Accept       json
// @Produce      json
// @Param        code_id path string true "Member code id"
// @Security     BearerAuth
// @Success      204  "No Content"
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /member/{code_id} [delete]
func (c *MemberController) DeleteMember() {
	codeID := c.Ctx.Param("code_id")

	memberService := c.Container.GetService("member").(services.InterfaceMemberService)
	if err := memberService.DeleteMember(codeID); err != nil {
		if errors.Is(err, services.ErrMemberNotFound) {
			response.Fail(c.Ctx, code.ErrMemberNotFound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "failed to delete member: "+err.Error(), nil)
		return
	}

	middleware.InvalidateCache()
	response.NoContent(c.Ctx)
}

// toUpdates converts the set fields into a column update map
func (r *UpdateMemberRequest) toUpdates() (map[string]interface{}, validation.Errors) {
	updates := map[string]interface{}{}
	verrs := validation.Errors{}

	if r.FullName != nil {
		updates["full_name"] = *r.FullName
	}
	if r.CodeID != nil {
		updates["code_id"] = *r.CodeID
	}
	if r.Email != nil {
		updates["email"] = *r.Email
	}
	if r.Phone != nil {
		updates["phone"] = *r.Phone
	}
	if r.Whatsapp != nil {
		updates["whatsapp"] = *r.Whatsapp
	}
	if r.Address != nil {
		updates["address"] = *r.Address
	}
	if r.Occupation != nil {
		updates["occupation"] = *r.Occupation
	}
	if r.DateOfBirth != nil {
		if *r.DateOfBirth == "" {
			updates["date_of_birth"] = nil
		} else {
			dob, err := time.Parse(dateOfBirthLayout, *r.DateOfBirth)
			if err != nil {
				verrs.Add("date_of_birth", "enter a valid date in YYYY-MM-DD format")
			} else {
				updates["date_of_birth"] = dob
			}
		}
	}
	if r.Stage != nil {
		updates["stage"] = *r.Stage
	}
	if r.BankName != nil {
		updates["bank_name"] = *r.BankName
	}
	if r.BankAccountNo != nil {
		updates["bank_account_no"] = *r.BankAccountNo
	}
	if r.NoReferrals != nil {
		updates["no_referrals"] = *r.NoReferrals
	}
	if r.ReferralPhone != nil {
		updates["referral_phone"] = *r.ReferralPhone
	}
	if r.ReferralCodeID != nil {
		updates["referral_code_id"] = *r.ReferralCodeID
	}
	if r.NextOfKinName != nil {
		updates["next_of_kin_name"] = *r.NextOfKinName
	}
	if r.NextOfKinPhone != nil {
		updates["next_of_kin_phone"] = *r.NextOfKinPhone
	}
	if r.NextOfKinEmail != nil {
		updates["next_of_kin_email"] = *r.NextOfKinEmail
	}
	if r.NextOfKinAddress != nil {
		updates["next_of_kin_address"] = *r.NextOfKinAddress
	}

	return updates, verrs
}
