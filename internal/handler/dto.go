package handler

import (
	"github.com/msomdec/daily-log/internal/domain"
)

// UserDTO is the public JSON representation of a user. It never carries the
// password hash.
type UserDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}

// WorkLogDTO is the JSON representation of a work log entry.
type WorkLogDTO struct {
	ID        string `json:"id"`
	OwnerID   string `json:"ownerId"`
	Date      string `json:"date"`
	Work      string `json:"work"`
	IsHoliday bool   `json:"isHoliday"`
}

func toWorkLogDTO(l *domain.WorkLog) WorkLogDTO {
	return WorkLogDTO{
		ID:        l.ID,
		OwnerID:   l.OwnerID,
		Date:      l.Date.Format(domain.DateLayout),
		Work:      l.Work,
		IsHoliday: l.IsHoliday,
	}
}

func toWorkLogDTOs(logs []domain.WorkLog) []WorkLogDTO {
	dtos := make([]WorkLogDTO, len(logs))
	for i := range logs {
		dtos[i] = toWorkLogDTO(&logs[i])
	}
	return dtos
}

type signupRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,max=254"`
	Password string `json:"password" validate:"required,max=72"`
}

// loginRequest carries no validate tags: missing fields fail as bad
// credentials, the same as a wrong password.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

// workLogRequest is the body of create and update. The owner is never part
// of it; unknown fields such as ownerId are rejected by the decoder.
type workLogRequest struct {
	Date      string `json:"date" validate:"required"`
	Work      string `json:"work" validate:"required,max=10000"`
	IsHoliday bool   `json:"isHoliday"`
}

type messageResponse struct {
	Message string `json:"message"`
}
