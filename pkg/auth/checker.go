package auth

import (
	"fmt"
	"os/user"
	"slices"

	"golang.org/x/crypto/bcrypt"

	"github.com/gp4par/gp4par/pkg/util"
)

// Config names who may publish: by username (superuser or publisher group),
// or by presenting the shared secret whose bcrypt hash is SecretHash.
type Config struct {
	SuperUsers []string `json:"super_users,omitempty"`
	Publishers []string `json:"publishers,omitempty"`
	SecretHash string   `json:"secret_hash,omitempty"`
}

// Checker validates whether a user may publish to the net-cache
type Checker struct {
	config      Config
	currentUser string
}

// NewChecker creates a permission checker for the given config
func NewChecker(config Config) *Checker {
	username := "unknown"
	if u, err := user.Current(); err == nil {
		username = u.Username
	}

	return &Checker{
		config:      config,
		currentUser: username,
	}
}

// SetUser overrides the current user (for testing or an explicit --user flag)
func (c *Checker) SetUser(username string) {
	c.currentUser = username
}

// CurrentUser returns the current username
func (c *Checker) CurrentUser() string {
	return c.currentUser
}

// IsSuperUser returns true if the current user is a superuser
func (c *Checker) IsSuperUser() bool {
	return c.isSuperUser(c.currentUser)
}

func (c *Checker) isSuperUser(username string) bool {
	return slices.Contains(c.config.SuperUsers, username)
}

// Check verifies the current user may publish, either by group membership
// or by presenting the shared secret. secret may be empty if the caller has
// no secret to offer.
func (c *Checker) Check(secret string) error {
	return c.CheckUser(c.currentUser, secret)
}

// CheckUser verifies a specific user may publish
func (c *Checker) CheckUser(username, secret string) error {
	if c.isSuperUser(username) {
		return nil
	}

	if slices.Contains(c.config.Publishers, username) {
		return nil
	}

	if c.config.SecretHash != "" && secret != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(c.config.SecretHash), []byte(secret)); err == nil {
			return nil
		}
	}

	return &PermissionError{User: username, Permission: PermPublish}
}

// HashSecret produces a bcrypt hash suitable for Config.SecretHash
func HashSecret(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing secret: %w", err)
	}
	return string(hash), nil
}

// PermissionError represents a permission denial
type PermissionError struct {
	User       string
	Permission Permission
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission denied: user '%s' does not have '%s' permission", e.User, e.Permission)
}

func (e *PermissionError) Unwrap() error {
	return util.ErrPermissionDenied
}
