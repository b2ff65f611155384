package api

import (
	"time"

	"github.com/limbo/discipline-tracker/pkg/entity"
	jwtservice "github.com/limbo/discipline-tracker/pkg/jwt_service"
)

type JWTServiceI interface {
	GenerateToken(user *entity.User) (string, error)
	ParseToken(tokenString string) (*jwtservice.Claims, error)
	TTL() time.Duration
}
