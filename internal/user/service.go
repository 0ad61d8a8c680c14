package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/oauth2"

	"github.com/1Kunalvats9/teen-titans-backend/internal/auth"
	"github.com/1Kunalvats9/teen-titans-backend/internal/config"
)

const userInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

var ErrUserNotFound = errors.New("user not found")

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type UserService interface {
	GoogleLogin(ctx context.Context, code string) (*User, *TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, error)
	GetByID(ctx context.Context, id string) (*User, error)
	UpdatePersona(ctx context.Context, userID, persona string) (*User, error)
}

type userService struct {
	repo        UserRepository
	oauthConfig *oauth2.Config
}

func NewService(repo UserRepository, oauthConfig *oauth2.Config) UserService {
	return &userService{
		repo:        repo,
		oauthConfig: oauthConfig,
	}
}

func (s *userService) GoogleLogin(ctx context.Context, code string) (*User, *TokenPair, error) {
	log := config.WithContext(ctx)

	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		log.WithError(err).Error("Failed to exchange Google authorization code")
		return nil, nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	info, err := s.fetchUserInfo(ctx, token)
	if err != nil {
		log.WithError(err).Error("Failed to fetch Google user info")
		return nil, nil, err
	}

	u, err := s.repo.GetByGoogleID(info.ID)
	if err != nil {
		return nil, nil, err
	}

	if u == nil {
		u = &User{
			GoogleID:  info.ID,
			Email:     info.Email,
			Name:      info.Name,
			AvatarURL: info.Picture,
		}
		if token.RefreshToken != "" {
			encrypted, err := config.Encrypt(token.RefreshToken)
			if err != nil {
				return nil, nil, err
			}
			u.EncryptedGoogleRefreshToken = encrypted
		}
		if err := s.repo.Create(u); err != nil {
			log.WithError(err).Error("Failed to create user")
			return nil, nil, err
		}
		log.Infof("Created new user %s", u.ID)
	} else {
		u.Name = info.Name
		u.AvatarURL = info.Picture
		if token.RefreshToken != "" {
			encrypted, err := config.Encrypt(token.RefreshToken)
			if err != nil {
				return nil, nil, err
			}
			u.EncryptedGoogleRefreshToken = encrypted
		}
		if err := s.repo.Update(u); err != nil {
			log.WithError(err).Error("Failed to update user on login")
			return nil, nil, err
		}
	}

	pair, err := s.issueTokens(u)
	if err != nil {
		return nil, nil, err
	}
	return u, pair, nil
}

func (s *userService) fetchUserInfo(ctx context.Context, token *oauth2.Token) (*googleUserInfo, error) {
	client := s.oauthConfig.Client(ctx, token)
	resp, err := client.Get(userInfoURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("user info request returned status %d", resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode user info: %w", err)
	}
	return &info, nil
}

func (s *userService) issueTokens(u *User) (*TokenPair, error) {
	access, err := auth.GenerateJWT(u.ID.String(), "learner", auth.AccessTokenDuration)
	if err != nil {
		return nil, err
	}
	refresh, err := auth.GenerateJWT(u.ID.String(), "learner", auth.RefreshTokenDuration)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *userService) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	claims, err := auth.ValidateJWT(refreshToken)
	if err != nil {
		return "", err
	}

	u, err := s.repo.GetByID(claims.UserID)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrUserNotFound
	}

	return auth.GenerateJWT(u.ID.String(), claims.Role, auth.AccessTokenDuration)
}

func (s *userService) GetByID(ctx context.Context, id string) (*User, error) {
	u, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *userService) UpdatePersona(ctx context.Context, userID, persona string) (*User, error) {
	log := config.WithContext(ctx)

	u, err := s.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	u.Persona = persona
	if err := s.repo.Update(u); err != nil {
		log.WithError(err).Error("Failed to update user persona")
		return nil, err
	}

	log.Infof("Updated persona for user %s", userID)
	return u, nil
}
