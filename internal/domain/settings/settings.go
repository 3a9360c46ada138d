package settings

import (
	"errors"
	"strings"
)

var ErrEmptySiteName = errors.New("site name is required")

type Settings struct {
	SiteName        string `json:"siteName"`
	Currency        string `json:"currency"`
	ContactEmail    string `json:"contactEmail"`
	ContactPhone    string `json:"contactPhone"`
	LowStockAlerts  bool   `json:"lowStockAlerts"`
	MaintenanceMode bool   `json:"maintenanceMode"`
}

func Default(siteName string) Settings {
	return Settings{
		SiteName:       siteName,
		Currency:       "GHS",
		LowStockAlerts: true,
	}
}

func (s Settings) Validate() error {
	if strings.TrimSpace(s.SiteName) == "" {
		return ErrEmptySiteName
	}
	return nil
}
