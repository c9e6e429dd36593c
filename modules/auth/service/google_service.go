package service

import (
	"context"
	"encoding/json"
	"fmt"

	"familyhub/core/constants"
	"familyhub/core/errors"
	"familyhub/core/logger"
	"familyhub/core/utils"
	"familyhub/modules/auth/dto"
	userEntity "familyhub/modules/user/entity"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

type googleUserInfo struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// GoogleAuthURL returns the consent page URL the client should redirect to.
func (s *AuthService) GoogleAuthURL() *dto.GoogleAuthURLResponse {
	state := utils.GenerateRandomString(24)
	return &dto.GoogleAuthURLResponse{URL: s.oauth.AuthCodeURL(state)}
}

// GoogleLogin exchanges the authorization code, fetches the Google profile
// and finds or creates the matching user.
func (s *AuthService) GoogleLogin(ctx context.Context, req *dto.GoogleLoginRequest) (*dto.AuthResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	token, err := s.oauth.Exchange(ctx, req.Code)
	if err != nil {
		logger.Error("AuthService:GoogleLogin:Exchange:Error:", err)
		return nil, errors.NewAppError(errors.ErrUnauthorized, "google code exchange failed", err)
	}

	client := s.oauth.Client(ctx, token)
	resp, err := client.Get(googleUserInfoURL)
	if err != nil {
		logger.Error("AuthService:GoogleLogin:UserInfo:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to fetch google profile", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, errors.NewAppError(errors.ErrInternalServer, fmt.Sprintf("google userinfo returned status %d", resp.StatusCode), nil)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to decode google profile", err)
	}
	if info.Email == "" {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "google profile has no email", nil)
	}

	user, appErr := s.findOrCreateGoogleUser(ctx, &info)
	if appErr != nil {
		return nil, appErr
	}
	return s.issueToken(user)
}

func (s *AuthService) findOrCreateGoogleUser(ctx context.Context, info *googleUserInfo) (*userEntity.User, *errors.AppError) {
	user, err := s.users.GetByGoogleID(ctx, info.ID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get user failed", err)
	}
	if user != nil {
		return user, nil
	}

	// Link an existing password account with the same email.
	user, err = s.users.GetByEmail(ctx, info.Email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get user failed", err)
	}
	if user != nil {
		user.GoogleID = &info.ID
		if user.AvatarURL == nil && info.Picture != "" {
			user.AvatarURL = &info.Picture
		}
		if err := s.users.Update(ctx, user); err != nil {
			return nil, errors.NewAppError(errors.ErrUpdateFailed, "link google account failed", err)
		}
		return user, nil
	}

	user = &userEntity.User{
		Email:    info.Email,
		Name:     info.Name,
		GoogleID: &info.ID,
	}
	if info.Picture != "" {
		user.AvatarURL = &info.Picture
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "create google user failed", err)
	}
	return user, nil
}
