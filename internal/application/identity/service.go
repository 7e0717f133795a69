package identity

import (
	"context"
	"time"

	"github.com/batchtrack/backend/internal/domain/identity"
	"github.com/batchtrack/backend/internal/domain/shared"
	"github.com/batchtrack/backend/internal/infrastructure/auth"
)

// Service provides authentication and account management
type Service struct {
	users      identity.UserRepository
	jwt        *auth.JWTService
	revocation auth.RevocationList
}

// NewService creates a new identity Service
func NewService(users identity.UserRepository, jwt *auth.JWTService, revocation auth.RevocationList) *Service {
	return &Service{users: users, jwt: jwt, revocation: revocation}
}

// Login authenticates credentials and issues a token pair. A bad username
// and a bad password return the same error so the endpoint does not leak
// which accounts exist.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, shared.ErrUnauthorized
	}
	if !user.IsActive() || !user.CheckPassword(req.Password) {
		return nil, shared.ErrUnauthorized
	}

	tokens, err := s.jwt.GenerateTokenPair(user.ID, user.Username, string(user.Role))
	if err != nil {
		return nil, err
	}

	user.RecordLogin(time.Now())
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}

	return &LoginResponse{User: toUserResponse(user), Tokens: tokens}, nil
}

// Logout revokes the presented access token for its remaining lifetime.
func (s *Service) Logout(ctx context.Context, claims *auth.Claims) error {
	return s.revocation.Revoke(ctx, claims.ID, claims.RemainingTTL())
}

// Refresh exchanges a valid refresh token for a fresh pair and revokes the
// used refresh token so it cannot be replayed.
func (s *Service) Refresh(ctx context.Context, req RefreshRequest) (*LoginResponse, error) {
	claims, err := s.jwt.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, shared.ErrUnauthorized
	}
	revoked, err := s.revocation.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, shared.ErrUnauthorized
	}

	userID, err := claims.UserID()
	if err != nil {
		return nil, shared.ErrUnauthorized
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, shared.ErrUnauthorized
	}
	if !user.IsActive() {
		return nil, shared.ErrUnauthorized
	}

	tokens, err := s.jwt.GenerateTokenPair(user.ID, user.Username, string(user.Role))
	if err != nil {
		return nil, err
	}
	if err := s.revocation.Revoke(ctx, claims.ID, claims.RemainingTTL()); err != nil {
		return nil, err
	}

	return &LoginResponse{User: toUserResponse(user), Tokens: tokens}, nil
}

// GetUser retrieves one account
func (s *Service) GetUser(ctx context.Context, id uint) (*UserResponse, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// ListUsers retrieves a page of accounts
func (s *Service) ListUsers(ctx context.Context, filter shared.Filter) (*shared.Paginated[UserResponse], error) {
	total, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.users.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	page := shared.NewPaginated(toUserResponses(users), total, filter.Offset, filter.Limit)
	return &page, nil
}

// CreateUser registers a new account
func (s *Service) CreateUser(ctx context.Context, req CreateUserRequest) (*UserResponse, error) {
	user, err := identity.NewUser(req.Username, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	user.FullName = req.FullName
	user.Department = req.Department
	if req.Role != "" {
		user.Role = identity.UserRole(req.Role)
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// UpdateUser applies a partial account update
func (s *Service) UpdateUser(ctx context.Context, id uint, req UpdateUserRequest) (*UserResponse, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Password != nil {
		if err := user.SetPassword(*req.Password); err != nil {
			return nil, err
		}
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Role != nil {
		user.Role = identity.UserRole(*req.Role)
	}
	if req.Department != nil {
		user.Department = *req.Department
	}
	if req.Status != nil {
		user.Status = identity.UserStatus(*req.Status)
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// DeleteUser removes an account
func (s *Service) DeleteUser(ctx context.Context, id uint) error {
	return s.users.Delete(ctx, id)
}
