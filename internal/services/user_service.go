package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Prabhat-16/Careerion-Backend/internal/auth"
	"github.com/Prabhat-16/Careerion-Backend/internal/models"
	"github.com/Prabhat-16/Careerion-Backend/internal/repository"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is enforced at signup only; existing hashes are never
// re-validated.
const MinPasswordLength = 6

var (
	ErrEmailExists = errors.New("User with this email already exists")
	// ErrInvalidCredentials is shared between unknown-email and bad-password
	// so responses cannot be used for account enumeration.
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrWeakPassword       = fmt.Errorf("Password must be at least %d characters", MinPasswordLength)
	ErrUserNotFound       = errors.New("User not found")
)

// ProfileUpdate is the allow-listed field set a user may change on their own
// record. Anything outside this set (role, email, password) needs the admin
// routes.
type ProfileUpdate struct {
	EducationLevel  *string
	FieldOfStudy    *string
	Institution     *string
	CompletionYear  *string
	CurrentStatus   *string
	WorkExperience  *string
	Skills          []string
	Interests       []string
	CareerGoals     *string
	WorkEnvironment *string
	Location        *string
	SalaryRange     *string
	WillingRelocate *bool
}

// UserService handles credential issuance and profile storage.
type UserService struct {
	users  repository.UserStore
	tokens *auth.TokenService
	google auth.GoogleVerifier
	log    *logrus.Logger
}

func NewUserService(users repository.UserStore, tokens *auth.TokenService, google auth.GoogleVerifier, log *logrus.Logger) *UserService {
	return &UserService{users: users, tokens: tokens, google: google, log: log}
}

// Signup creates a user with a hashed password and issues a session token.
func (s *UserService) Signup(name, email, password string) (*models.User, string, error) {
	if len(password) < MinPasswordLength {
		return nil, "", ErrWeakPassword
	}
	if _, err := s.users.FindByEmail(email); err == nil {
		return nil, "", ErrEmailExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     models.RoleUser,
	}
	if err := s.users.Create(user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			// Lost the race with a concurrent signup; same answer.
			return nil, "", ErrEmailExists
		}
		return nil, "", err
	}

	token, err := s.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", err
	}

	s.log.WithField("email", user.Email).Info("user registered")
	return user, token, nil
}

// Login verifies credentials and issues a session token.
func (s *UserService) Login(email, password string) (*models.User, string, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", err
	}

	s.log.WithField("email", user.Email).Info("user logged in")
	return user, token, nil
}

// GoogleLogin verifies an opaque Google token and logs in or provisions the
// matching local account.
func (s *UserService) GoogleLogin(ctx context.Context, token string) (*models.User, string, error) {
	profile, err := s.google.Verify(ctx, token)
	if err != nil {
		return nil, "", err
	}

	user, err := s.users.FindByEmail(profile.Email)
	if errors.Is(err, repository.ErrNotFound) {
		user, err = s.provisionGoogleUser(profile)
	}
	if err != nil {
		return nil, "", err
	}

	if profile.AvatarURL != "" && user.AvatarURL != profile.AvatarURL {
		user.AvatarURL = profile.AvatarURL
		if err := s.users.Update(user); err != nil {
			s.log.WithError(err).Warn("failed to update avatar url")
		}
	}

	sessionToken, err := s.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", err
	}

	s.log.WithField("email", user.Email).Info("user logged in via google")
	return user, sessionToken, nil
}

// provisionGoogleUser creates an account with a random password hash: the
// schema requires one, but the account stays unlogin-able via password.
func (s *UserService) provisionGoogleUser(profile *auth.GoogleProfile) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash placeholder password: %w", err)
	}

	name := profile.Name
	if name == "" {
		name = profile.Email
	}
	user := &models.User{
		Name:      name,
		Email:     profile.Email,
		Password:  string(hashed),
		Role:      models.RoleUser,
		AvatarURL: profile.AvatarURL,
	}
	if err := s.users.Create(user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return s.users.FindByEmail(profile.Email)
		}
		return nil, err
	}
	return user, nil
}

// Get returns a user record for /api/auth/me and profile reads.
func (s *UserService) Get(userID uint) (*models.User, error) {
	user, err := s.users.FindByID(userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return user, err
}

// UpdateProfile applies the allow-listed profile fields and recomputes
// ProfileComplete.
func (s *UserService) UpdateProfile(userID uint, update ProfileUpdate) (*models.User, error) {
	user, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	p := &user.Profile
	setString(&p.EducationLevel, update.EducationLevel)
	setString(&p.FieldOfStudy, update.FieldOfStudy)
	setString(&p.Institution, update.Institution)
	setString(&p.CompletionYear, update.CompletionYear)
	setString(&p.CurrentStatus, update.CurrentStatus)
	setString(&p.WorkExperience, update.WorkExperience)
	if update.Skills != nil {
		p.Skills = update.Skills
	}
	if update.Interests != nil {
		p.Interests = update.Interests
	}
	setString(&p.CareerGoals, update.CareerGoals)
	setString(&p.WorkEnvironment, update.WorkEnvironment)
	setString(&p.Location, update.Location)
	setString(&p.SalaryRange, update.SalaryRange)
	if update.WillingRelocate != nil {
		p.WillingRelocate = *update.WillingRelocate
	}
	user.ProfileComplete = user.HasProfile()

	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
