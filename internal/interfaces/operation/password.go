// Package operation
package operation

import "golang.org/x/crypto/bcrypt"

// EncodePassword 使用bcrypt编码明文密码
func EncodePassword(password string, cost int) (string, error) {
	encodePassword, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", ErrPasswordEncode
	}
	return string(encodePassword), nil
}

// VerifyPassword 校验明文密码与已编码的密码是否一致
func VerifyPassword(encodePassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encodePassword), []byte(password)) == nil
}
