package member

import (
	"regexp"
	"strings"
)

var usernameRegex = regexp.MustCompile(`^[a-z0-9._-]{3,40}$`)

type Username string

func NewUsername(s string) (Username, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if !usernameRegex.MatchString(s) {
		return Username(""), ErrInvalidUsername
	}
	return Username(s), nil
}

func (u Username) String() string {
	return string(u)
}
