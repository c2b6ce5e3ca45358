package commands

import (
	reqdto "parking-facility/internal/handler/dto/request"
	"parking-facility/internal/pkg/config"
	"parking-facility/internal/pkg/errs"
	"parking-facility/internal/pkg/jwt"
	"parking-facility/internal/pkg/password"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type LoginResult struct {
	Operator string
	Token    string
}

type AuthCommands interface {
	Login(req reqdto.LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	staff      config.StaffConfig
	jwtService *jwt.Service
}

func NewAuthCommands(staff config.StaffConfig, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		staff:      staff,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(req reqdto.LoginRequest) (*LoginResult, error) {
	if req.Operator != a.staff.OperatorName {
		return nil, ErrInvalidCredentials
	}
	if err := password.ComparePassword(a.staff.OperatorPasswordHash, req.Password); err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	token, err := a.jwtService.GenerateToken(req.Operator, jwt.RoleOperator)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		Operator: req.Operator,
		Token:    token,
	}, nil
}
