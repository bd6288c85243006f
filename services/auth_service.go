package services

import (
	"errors"
	"time"

	"github.com/rishabhc286/Vital-x/config"
	"github.com/rishabhc286/Vital-x/models"
	"github.com/rishabhc286/Vital-x/utils"
)

// LoginResult distinguishes a finished login from one waiting on an MFA code.
type LoginResult struct {
	Token       string `json:"token,omitempty"`
	MFARequired bool   `json:"mfa_required"`
}

func RegisterUser(email, password, fullName string) error {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:    email,
		Password: hashedPassword,
		FullName: fullName,
		Disabled: false,
	}

	result := config.DB.Create(&user)
	return result.Error
}

// AuthenticateUser checks credentials. When the account has MFA enabled it
// emails a code and returns MFARequired instead of a token.
func AuthenticateUser(email, password string) (*LoginResult, error) {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return nil, errors.New("user not found or disabled")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, errors.New("incorrect password")
	}

	if user.MFAEnabled {
		code := utils.GenerateNumericCode(6)
		user.MFACode = code
		if err := config.DB.Save(&user).Error; err != nil {
			return nil, err
		}
		if err := utils.SendMFAEmail(user.Email, code); err != nil {
			return nil, err
		}
		return &LoginResult{MFARequired: true}, nil
	}

	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token}, nil
}

// VerifyMFA exchanges a valid emailed code for a session token. The code is
// single use.
func VerifyMFA(email, code string) (string, error) {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return "", errors.New("user not found or disabled")
	}

	if user.MFACode == "" || user.MFACode != code {
		return "", errors.New("invalid verification code")
	}

	user.MFACode = ""
	if err := config.DB.Save(&user).Error; err != nil {
		return "", err
	}

	return utils.GenerateJWT(user.ID, user.Email)
}

// ForgotPassword issues a reset code valid for one hour. Unknown emails
// return nil so the endpoint does not leak which accounts exist.
func ForgotPassword(email string) error {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return nil
	}

	token := utils.GenerateRandomToken(8)
	user.ResetToken = token
	user.ResetTokenExp = time.Now().Add(time.Hour)
	if err := config.DB.Save(&user).Error; err != nil {
		return err
	}

	return utils.SendResetEmail(user.Email, token)
}

// ResetPassword validates the emailed code and sets the new password.
func ResetPassword(email, token, newPassword string) error {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return errors.New("user not found or disabled")
	}

	if user.ResetToken == "" || user.ResetToken != token {
		return errors.New("invalid reset code")
	}
	if time.Now().After(user.ResetTokenExp) {
		return errors.New("reset code expired")
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	user.ResetToken = ""
	user.ResetTokenExp = time.Time{}

	return config.DB.Save(&user).Error
}
