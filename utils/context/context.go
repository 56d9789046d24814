package context

import (
	"context"
	"strconv"

	"github.com/Anukhusdevlopers/scrap-pickup-backend/constant"
	"github.com/Anukhusdevlopers/scrap-pickup-backend/model"
)

func GetClaims(ctx context.Context) (*model.SessionClaims, bool) {
	v := ctx.Value(constant.ClaimsKey)
	if v == nil {
		return nil, false
	}
	claims, ok := v.(*model.SessionClaims)
	return claims, ok
}

func GetAuthToken(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.AuthTokenKey)
	if v == nil {
		return "", false
	}
	token, ok := v.(string)
	return token, ok
}

// GetUserID parses the numeric user id out of the session claims.
func GetUserID(ctx context.Context) (uint64, bool) {
	claims, ok := GetClaims(ctx)
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseUint(claims.UserID, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
