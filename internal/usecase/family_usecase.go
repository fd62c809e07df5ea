package usecase

import (
	"context"

	"fitfamily/internal/domain/entity"
)

// FamilyOutput returns a created family's details, join code included.
type FamilyOutput struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	JoinCode string `json:"joinCode"`
}

// JoinFamilyOutput returns the joined family and the requester's new role.
type JoinFamilyOutput struct {
	FamilyID   string `json:"familyId"`
	FamilyName string `json:"familyName"`
	Role       string `json:"role"`
}

// MyFamilyOutput returns the requester's current family details.
type MyFamilyOutput struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	JoinCode string `json:"joinCode"`
	MyRole   string `json:"myRole"`
}

// FamilyUsecase defines the interface for family management operations.
// The requester is resolved once at the request boundary and passed in
// explicitly; usecases never pull identity out of ambient state.
type FamilyUsecase interface {
	CreateFamily(ctx context.Context, name string, requester *entity.User) (*FamilyOutput, error)
	JoinFamily(ctx context.Context, joinCode string, requester *entity.User) (*JoinFamilyOutput, error)
	GetMyFamily(ctx context.Context, requester *entity.User) (*MyFamilyOutput, error)

	// JoinCodeQR renders the requester's family join code as a PNG QR image.
	JoinCodeQR(ctx context.Context, requester *entity.User) ([]byte, error)
}
