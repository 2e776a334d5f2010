package httpadapter

import (
	"context"
	"log/slog"

	"vyaparkendra/contexts/identity-access/identity-service/application"
	"vyaparkendra/contexts/identity-access/identity-service/ports"
	httptransport "vyaparkendra/contexts/identity-access/identity-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) RegisterHandler(ctx context.Context, body httptransport.RegisterRequest) (httptransport.RegisterResponse, error) {
	user, err := h.Service.Register(ctx, ports.RegisterInput{
		Name:     body.Name,
		Email:    body.Email,
		Password: body.Password,
		Role:     body.Role,
		Tenant:   body.Tenant,
	})
	if err != nil {
		return httptransport.RegisterResponse{}, err
	}
	return httptransport.RegisterResponse{
		Status:  "success",
		Message: "User registered successfully",
		UserID:  user.UserID,
	}, nil
}

func (h Handler) LoginHandler(ctx context.Context, body httptransport.LoginRequest) (httptransport.LoginResponse, error) {
	result, err := h.Service.Login(ctx, body.Email, body.Password)
	if err != nil {
		return httptransport.LoginResponse{}, err
	}
	return httptransport.LoginResponse{
		AccessToken: result.AccessToken,
		TokenType:   "bearer",
		Role:        string(result.Role),
		Tenant:      result.Tenant,
	}, nil
}

func (h Handler) ApproveMitraHandler(ctx context.Context, mitraID string) (httptransport.ApproveMitraResponse, error) {
	if err := h.Service.ApproveMitra(ctx, mitraID); err != nil {
		return httptransport.ApproveMitraResponse{}, err
	}
	return httptransport.ApproveMitraResponse{
		Status:  "success",
		Message: "Mitra KYC approved",
	}, nil
}
