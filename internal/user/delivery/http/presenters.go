package http

import (
	"todo-ai-chatbot/internal/model"
	"todo-ai-chatbot/internal/user"
	"todo-ai-chatbot/pkg/response"
	"todo-ai-chatbot/pkg/scope"
)

type registerReq struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
}

func (r registerReq) toInput() user.RegisterInput {
	return user.RegisterInput{Email: r.Email, Password: r.Password, Name: r.Name}
}

type loginReq struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) toInput() user.LoginInput {
	return user.LoginInput{Email: r.Email, Password: r.Password}
}

type refreshReq struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type userResp struct {
	ID        string            `json:"id"`
	Email     string            `json:"email"`
	Name      string            `json:"name"`
	IsActive  bool              `json:"is_active"`
	CreatedAt response.DateTime `json:"created_at"`
}

func newUserResp(u model.User) userResp {
	return userResp{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		IsActive:  u.IsActive,
		CreatedAt: response.DateTime(u.CreatedAt),
	}
}

type authResp struct {
	User userResp `json:"user"`
	scope.TokenPair
}

func (h *handler) newAuthResp(out user.AuthOutput) authResp {
	return authResp{User: newUserResp(out.User), TokenPair: out.Tokens}
}
