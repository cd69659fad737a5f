package services

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/rpupo63/portfolio-cms-backend/errs"
	"github.com/rpupo63/portfolio-cms-backend/models"
)

// bcryptCost matches the adaptive hashing cost the credential store has
// always used; changing it would invalidate nothing but slow new hashes.
const bcryptCost = 10

// UserStore is the slice of the credential store the auth service needs.
// *database.UserRepo satisfies it.
type UserStore interface {
	Add(user *models.User) error
	FindByUsername(username string) (*models.User, error)
	FindByID(id uuid.UUID) (*models.User, error)
}

// AuthService implements registration and credential verification.
type AuthService struct {
	users UserStore
}

func NewAuthService(users UserStore) *AuthService {
	return &AuthService{users: users}
}

// Register creates a new user with a salted bcrypt hash. Password mismatch
// and duplicate usernames both come back as 422s; the hash never leaves
// this function.
func (s *AuthService) Register(username, password, confirm string) (*models.User, error) {
	if username == "" {
		return nil, errs.NewMissingRequiredFieldError("userName")
	}
	if password == "" {
		return nil, errs.NewMissingRequiredFieldError("password")
	}
	if password != confirm {
		return nil, errs.NewUnprocessableError("passwords do not match")
	}

	existing, err := s.users.FindByUsername(username)
	if err != nil && !errs.IsNotFound(err) {
		return nil, errs.NewDatabaseError("find", "user", err)
	}
	if existing != nil {
		return nil, errs.NewUnprocessableError("username already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, errs.NewInternalErrorWithCause("hashing password", err)
	}

	user := &models.User{
		Username: username,
		Password: string(hash),
	}
	if err := s.users.Add(user); err != nil {
		return nil, errs.NewDatabaseError("create", "user", err)
	}

	return user, nil
}

// Login verifies credentials against the stored hash. Unknown usernames and
// wrong passwords produce the same 401; the bcrypt compare is constant-time.
func (s *AuthService) Login(username, password string) (*models.User, error) {
	user, err := s.users.FindByUsername(username)
	if errs.IsNotFound(err) {
		return nil, errs.NewUnauthorizedError("invalid username or password")
	}
	if err != nil {
		return nil, errs.NewDatabaseError("find", "user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, errs.NewUnauthorizedError("invalid username or password")
	}

	return user, nil
}
