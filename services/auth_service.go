package services

import (
	"context"
	"net/http"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/careerbuilder24/e-commerce-project/database"
	"github.com/careerbuilder24/e-commerce-project/lib"
	"github.com/careerbuilder24/e-commerce-project/structs"
	"github.com/careerbuilder24/e-commerce-project/structs/tables"
	"github.com/google/uuid"
)

type AuthService struct {
	logger       *gecho.Logger
	cfg          *structs.Config
	db           *database.DB
	cacheService *CacheService
}

func NewAuthService(cfg *structs.Config, logger *gecho.Logger, db *database.DB, cacheService *CacheService) *AuthService {
	return &AuthService{
		logger:       logger,
		cfg:          cfg,
		db:           db,
		cacheService: cacheService,
	}
}

func (as *AuthService) Register(ctx context.Context, req *structs.RegisterRequest) (*tables.User, error) {
	passwordHash, err := lib.HashPassword(req.Password, lib.DefaultArgonParams)
	if err != nil {
		as.logger.Error("Failed to hash password", gecho.Field("error", err))
		return nil, err
	}

	user := &tables.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: passwordHash,
	}
	user, err = database.Query[tables.User](as.db).Insert(ctx, user)
	if err != nil {
		mappedErr := lib.MapPgError(err)

		if lib.IsUniqueViolation(mappedErr) {
			as.logger.Warn("Registration failed - duplicate email", gecho.Field("email", req.Email))
		} else {
			as.logger.Error("Database error during registration",
				gecho.Field("error", mappedErr),
				gecho.Field("email", req.Email),
			)
		}

		return nil, mappedErr
	}

	as.logger.Debug("User registered", gecho.Field("user_id", user.ID))

	user.PasswordHash = ""
	return user, nil
}

func (as *AuthService) Login(ctx context.Context, req *structs.LoginRequest) (*tables.User, error) {
	user, err := database.Query[tables.User](as.db).Where("email", req.Email).First(ctx)
	if err != nil {
		mappedErr := lib.MapPgError(err)

		if !lib.IsNotFound(mappedErr) {
			as.logger.Error("Unexpected database error during login",
				gecho.Field("error", mappedErr),
			)
		}

		// Always return invalid credentials (don't leak user existence)
		return nil, lib.ErrInvalidCredentials
	}

	if user == nil {
		as.logger.Debug("User not found during login attempt", gecho.Field("identifier", req.Email))
		return nil, lib.ErrInvalidCredentials
	}

	valid, err := lib.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		as.logger.Error("Failed to verify password hash",
			gecho.Field("error", err),
			gecho.Field("user_id", user.ID),
		)
		return nil, err
	}
	if !valid {
		as.logger.Debug("Invalid password attempt", gecho.Field("user_id", user.ID))
		return nil, lib.ErrInvalidCredentials
	}

	user.PasswordHash = ""

	if cacheErr := as.cacheService.SetUserInCache(user); cacheErr != nil {
		as.logger.Warn("Failed to cache user after login", gecho.Field("error", cacheErr), gecho.Field("user_id", user.ID))
	}

	return user, nil
}

// IssueSessionToken signs a session token for the user and sets the cookie.
func (as *AuthService) IssueSessionToken(user *tables.User, w http.ResponseWriter) error {
	token, claims, err := lib.SignSessionToken(user, as.cfg.Auth.SessionSecret, as.cfg.Auth.SessionExpiry)
	if err != nil {
		as.logger.Error("Failed to sign session token", gecho.Field("error", err), gecho.Field("user_id", user.ID))
		return err
	}

	lib.SetSessionCookie(token, claims.Exp, w)
	return nil
}

// CurrentUser resolves the session cookie on the request to a user. A missing
// or invalid session yields (nil, nil), callers decide whether that is an
// error for their endpoint.
func (as *AuthService) CurrentUser(r *http.Request) (*tables.User, error) {
	claims, err := lib.ExtractSessionClaims(r, as.cfg.Auth.SessionSecret)
	if err != nil {
		// No cookie or an unparseable token is an anonymous request.
		return nil, nil
	}

	if time.Now().After(claims.Exp) {
		return nil, nil
	}

	blacklisted, err := as.cacheService.IsSessionBlacklisted(claims.Jti)
	if err != nil {
		as.logger.Warn("Failed to check session blacklist", gecho.Field("error", err), gecho.Field("jti", claims.Jti))
	} else if blacklisted {
		return nil, nil
	}

	user, err := as.GetUserByID(r.Context(), claims.Sub)
	if err != nil {
		if lib.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// RevokeSession blacklists the session on the request and returns its claims.
func (as *AuthService) RevokeSession(r *http.Request) (*structs.SessionClaims, error) {
	claims, err := lib.ExtractSessionClaims(r, as.cfg.Auth.SessionSecret)
	if err != nil {
		return nil, lib.ErrInvalidToken
	}

	if err := as.cacheService.BlacklistSession(claims.Jti, claims.Exp); err != nil {
		as.logger.Error("Failed to blacklist session", gecho.Field("error", err), gecho.Field("jti", claims.Jti))
		return nil, err
	}

	if err := as.cacheService.DeleteUserFromCache(claims.Sub); err != nil {
		as.logger.Warn("Failed to drop cached user on logout", gecho.Field("error", err), gecho.Field("user_id", claims.Sub))
	}

	return claims, nil
}

func (as *AuthService) GetUserByID(ctx context.Context, userID uuid.UUID) (*tables.User, error) {
	cachedUser, err := as.cacheService.GetUserFromCache(userID)
	if err != nil {
		as.logger.Warn("Failed to get user from cache", gecho.Field("error", err), gecho.Field("user_id", userID))
	} else if cachedUser != nil {
		return cachedUser, nil
	}

	user, err := database.Query[tables.User](as.db).Where("id", userID).First(ctx)
	if err != nil {
		as.logger.Error("Failed to find user by ID", gecho.Field("error", err), gecho.Field("user_id", userID))
		return nil, lib.MapPgError(err)
	}
	if user == nil {
		return nil, lib.ErrNotFound
	}

	user.PasswordHash = ""

	go func() {
		if err := as.cacheService.SetUserInCache(user); err != nil {
			as.logger.Warn("Failed to cache user after DB fetch", gecho.Field("error", err), gecho.Field("user_id", userID))
		}
	}()

	return user, nil
}
