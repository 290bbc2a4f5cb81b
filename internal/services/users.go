package mbiri

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	events "github.com/loktioncode/mbiri-api/internal/events"
	interf "github.com/loktioncode/mbiri-api/internal/interfaces"
	model "github.com/loktioncode/mbiri-api/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// UserService owns registration, login, token handling and profile updates.
type UserService struct {
	logger *zap.Logger
	users  interf.UserStorage
	secret []byte
	events *events.Publisher
}

func NewUserService(logger *zap.Logger, users interf.UserStorage, publisher *events.Publisher) (*UserService, error) {
	secret := os.Getenv("MBIRI_JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("env MBIRI_JWT_SECRET is not set")
	}
	return &UserService{logger, users, []byte(secret), publisher}, nil
}

func (u *UserService) Register(ctx context.Context, in model.UserCreate) (model.User, error) {
	if in.Email == "" || in.Username == "" || in.Password == "" {
		return model.User{}, fmt.Errorf("email, username and password are required: %w", model.ErrInvalidArgument)
	}
	if in.UserType != model.RoleCreator && in.UserType != model.RoleViewer {
		return model.User{}, fmt.Errorf("user_type must be creator or viewer: %w", model.ErrInvalidArgument)
	}

	_, err := u.users.GetUserByEmail(ctx, in.Email)
	if err == nil {
		return model.User{}, fmt.Errorf("email already registered: %w", model.ErrAlreadyExists)
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.User{}, err
	}
	_, err = u.users.GetUserByUsername(ctx, in.Username)
	if err == nil {
		return model.User{}, fmt.Errorf("username already taken: %w", model.ErrAlreadyExists)
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, err
	}
	user := model.User{
		Email:          in.Email,
		Username:       in.Username,
		HashedPassword: string(hash),
		UserType:       in.UserType,
		Points:         0,
		CreatedAt:      time.Now().UTC(),
	}
	id, err := u.users.CreateUser(ctx, user)
	if err != nil {
		return model.User{}, err
	}
	user.ID = id

	u.events.Publish(events.SubjectUserRegistered, "user_registered", id.Hex(), map[string]any{
		"user_type": user.UserType,
	})
	return user, nil
}

// Login verifies the credentials and issues an access token.
func (u *UserService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := u.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return "", fmt.Errorf("incorrect email or password: %w", model.ErrInvalidCredentials)
		}
		return "", err
	}
	err = bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password))
	if err != nil {
		return "", fmt.Errorf("incorrect email or password: %w", model.ErrInvalidCredentials)
	}
	return u.CreateAccessToken(user)
}

type Claims struct {
	jwt.RegisteredClaims
	UserType string `json:"type"`
}

func (u *UserService) CreateAccessToken(user model.User) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.Hex(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
		UserType: user.UserType,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.secret)
}

// ParseToken validates a bearer token and returns the user id and role.
func (u *UserService) ParseToken(token string) (userID, userType string, err error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return u.secret, nil
	})
	if err != nil {
		return "", "", fmt.Errorf("could not validate credentials: %w", model.ErrInvalidCredentials)
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return "", "", fmt.Errorf("could not validate credentials: %w", model.ErrInvalidCredentials)
	}
	return claims.Subject, claims.UserType, nil
}

func (u *UserService) GetUser(ctx context.Context, userID string) (model.User, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return model.User{}, fmt.Errorf("user %w", model.ErrNotFound)
	}
	return u.users.GetUser(ctx, id)
}

// UpdateMe changes the caller's profile; the password is re-hashed here.
func (u *UserService) UpdateMe(ctx context.Context, userID string, in model.UserUpdate) (model.User, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return model.User{}, fmt.Errorf("user %w", model.ErrNotFound)
	}
	patch := model.UserPatch{
		Email:    in.Email,
		Username: in.Username,
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return model.User{}, err
		}
		patch.HashedPassword = string(hash)
	}
	return u.users.UpdateUser(ctx, id, patch)
}

func (u *UserService) Log(err error) {
	u.logger.Error("Users",
		zap.String("service", "UserService"),
		zap.Error(err),
	)
}
