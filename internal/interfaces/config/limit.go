// Package config
package config

import (
	"errors"
	"fmt"
	"github.com/half-nothing/flylog/internal/interfaces/log"
	"time"
)

type HttpServerLimit struct {
	RateLimit         int           `json:"rate_limit"`
	RateLimitWindow   string        `json:"rate_limit_window"`
	RateLimitDuration time.Duration `json:"-"`
	NameLengthMin     int           `json:"name_length_min"`
	NameLengthMax     int           `json:"name_length_max"`
	EmailLengthMin    int           `json:"email_length_min"`
	EmailLengthMax    int           `json:"email_length_max"`
	PasswordLengthMin int           `json:"password_length_min"`
	PasswordLengthMax int           `json:"password_length_max"`
	CommentLengthMax  int           `json:"comment_length_max"`
}

func defaultHttpServerLimit() *HttpServerLimit {
	return &HttpServerLimit{
		RateLimit:         120,
		RateLimitWindow:   "1m",
		NameLengthMin:     1,
		NameLengthMax:     64,
		EmailLengthMin:    4,
		EmailLengthMax:    128,
		PasswordLengthMin: 6,
		PasswordLengthMax: 64,
		CommentLengthMax:  2048,
	}
}

func checkLengthRange(field string, min, max, limit int) *ValidResult {
	if min <= 0 {
		return ValidFail(fmt.Errorf("invalid json field http_server.limits.%s_length_min, value must larger than 0", field))
	}
	if max <= 0 {
		return ValidFail(fmt.Errorf("invalid json field http_server.limits.%s_length_max, value must larger than 0", field))
	}
	if max > limit {
		return ValidFail(fmt.Errorf("invalid json field http_server.limits.%s_length_max, value must less than %d", field, limit))
	}
	if min >= max {
		return ValidFail(fmt.Errorf("invalid json field http_server.limits.%s_length_min, value must less than http_server.limits.%s_length_max", field, field))
	}
	return ValidPass()
}

func (config *HttpServerLimit) checkValid(_ log.LoggerInterface) *ValidResult {
	if duration, err := time.ParseDuration(config.RateLimitWindow); err != nil {
		return ValidFailWith(errors.New("invalid json field http_server.limits.rate_limit_window"), err)
	} else {
		config.RateLimitDuration = duration
	}

	if result := checkLengthRange("name", config.NameLengthMin, config.NameLengthMax, 128); result.IsFail() {
		return result
	}
	if result := checkLengthRange("email", config.EmailLengthMin, config.EmailLengthMax, 256); result.IsFail() {
		return result
	}
	if result := checkLengthRange("password", config.PasswordLengthMin, config.PasswordLengthMax, 72); result.IsFail() {
		return result
	}
	if config.CommentLengthMax <= 0 {
		return ValidFail(errors.New("invalid json field http_server.limits.comment_length_max, value must larger than 0"))
	}

	return ValidPass()
}
