package router

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"storefront/pkg/account"
	"storefront/pkg/global"
	"storefront/pkg/models"
)

func (h *Handler) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, global.SuccessResponse(h.Account.Get()))
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data",
			global.FieldError("request", err.Error(), "validation_error")))
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(h.Account.Update(req)))
}

func (h *Handler) ChangePassword(c *gin.Context) {
	var req models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data",
			global.FieldError("request", err.Error(), "validation_error")))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(h.Account.PasswordHash()), []byte(req.CurrentPassword)); err != nil {
		c.JSON(http.StatusUnauthorized, global.ErrorResponse("Current password is incorrect",
			global.FieldError("current_password", "The current password does not match", "invalid_credentials")))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to process password", nil))
		return
	}
	h.Account.SetPasswordHash(string(hashed))

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]string{"message": "Password updated"}))
}

func (h *Handler) AddProfileAddress(c *gin.Context) {
	var address models.Address
	if err := c.ShouldBindJSON(&address); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid address data",
			global.FieldError("address", err.Error(), "validation_error")))
		return
	}
	c.JSON(http.StatusCreated, global.SuccessResponse(h.Account.AddAddress(address)))
}

func (h *Handler) UpdateProfileAddress(c *gin.Context) {
	index, ok := parseAddressIndex(c)
	if !ok {
		return
	}

	var address models.Address
	if err := c.ShouldBindJSON(&address); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid address data",
			global.FieldError("address", err.Error(), "validation_error")))
		return
	}

	updated, err := h.Account.UpdateAddress(index, address)
	if err != nil {
		respondAddressError(c, err)
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(updated))
}

func (h *Handler) DeleteProfileAddress(c *gin.Context) {
	index, ok := parseAddressIndex(c)
	if !ok {
		return
	}

	updated, err := h.Account.DeleteAddress(index)
	if err != nil {
		respondAddressError(c, err)
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(updated))
}

func parseAddressIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("addressId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid address ID",
			global.FieldError("addressId", "Must be a valid integer index", "invalid_format")))
		return 0, false
	}
	return index, true
}

func respondAddressError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, account.ErrAddressNotFound):
		c.JSON(http.StatusNotFound, global.ErrorResponse("Address not found",
			global.FieldError("addressId", "No address exists at this index", "not_found")))
	case errors.Is(err, account.ErrCannotDeleteLastAddr):
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Cannot delete last address",
			global.FieldError("addressId", "The account must keep at least one address", "invalid_operation")))
	default:
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to update address", nil))
	}
}
