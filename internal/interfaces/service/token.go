// Package service
package service

import "errors"

var (
	// ErrTokenInvalid 令牌签名错误、格式错误或已过期
	ErrTokenInvalid = errors.New("invalid or expired token")
)

type TokenServiceInterface interface {
	// IssueToken 为用户签发新的登录令牌, 每次签发的令牌都不相同
	IssueToken(uid string) (token string, err error)
	// VerifyToken 校验令牌签名与有效期, 失败时返回 ErrTokenInvalid
	VerifyToken(token string) (claims *Claims, err error)
}
