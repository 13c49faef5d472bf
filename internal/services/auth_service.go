package services

import (
	"errors"

	"autobroker/internal/domain"
	"autobroker/internal/repos"

	"golang.org/x/crypto/bcrypt"
)

var ErrBadCreds = errors.New("invalid email or password")

// AuthService authenticates staff accounts against cookie sessions.
type AuthService struct {
	Staff *repos.StaffRepo
}

func (s *AuthService) Login(sid, email, password string) (*domain.Staff, error) {
	st, err := s.Staff.ByEmail(email)
	if err != nil {
		return nil, ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(st.Hash), []byte(password)) != nil {
		return nil, ErrBadCreds
	}
	if err := s.Staff.BindSession(sid, st.ID); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *AuthService) Logout(sid string) error {
	return s.Staff.UnbindSession(sid)
}

func (s *AuthService) CurrentStaff(sid string) (*domain.Staff, error) {
	return s.Staff.SessionStaff(sid)
}
