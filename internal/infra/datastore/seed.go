package datastore

import (
	"time"

	"decor-rental/internal/domain/content"
	"decor-rental/internal/domain/settings"
	"decor-rental/internal/domain/site"
	"decor-rental/internal/domain/user"
	"decor-rental/internal/pkg/clock"
	"decor-rental/internal/pkg/config"
	"decor-rental/internal/pkg/password"

	"github.com/google/uuid"
)

// InitialDataset builds the document written into an empty backend: default
// settings and content plus one Super Admin who must change the password on first login.
func InitialDataset(siteName string, admin config.AdminConfig, clk clock.Clock) (*site.Dataset, error) {
	email, err := user.NewEmail(admin.Email)
	if err != nil {
		return nil, err
	}
	if _, err := user.NewPassword(admin.Password); err != nil {
		return nil, err
	}
	hash, err := password.HashPassword(admin.Password)
	if err != nil {
		return nil, err
	}

	owner := user.NewUser(uuid.NewString(), admin.Name, email, hash, user.RoleSuperAdmin, clk.Now().UTC().Format(time.RFC3339))

	ds := &site.Dataset{
		Users:    []user.User{*owner},
		Content:  content.Default(siteName),
		Settings: settings.Default(siteName),
	}
	ds.Normalize()
	return ds, nil
}
