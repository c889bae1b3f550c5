package config

import (
	"net/url"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	sshGitPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+:[a-zA-Z0-9._/~-]+$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("git_url", func(fl validator.FieldLevel) bool {
			urlStr := fl.Field().String()
			if urlStr == "" {
				return true
			}
			if strings.TrimSpace(urlStr) == "" {
				return false
			}

			if parsedURL, err := url.Parse(urlStr); err == nil {
				switch strings.ToLower(parsedURL.Scheme) {
				case "http", "https", "ssh", "git":
					if parsedURL.Host != "" {
						return true
					}
				case "file":
					return parsedURL.Path != ""
				}
			}

			if sshGitPattern.MatchString(urlStr) {
				return true
			}

			return isValidFilePath(urlStr)
		})

		validateInst = v
	})

	return validateInst
}

// isValidFilePath performs syntactic validation of file paths without filesystem access.
func isValidFilePath(path string) bool {
	if path == "" || strings.Contains(path, "\x00") {
		return false
	}

	if strings.HasPrefix(path, "/") {
		return !strings.Contains(path, "/../") && !strings.HasSuffix(path, "/..")
	}

	return strings.HasPrefix(path, "./") || strings.HasPrefix(path, "../")
}
