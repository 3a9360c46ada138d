package request

import (
	"decor-rental/internal/domain/settings"

	"github.com/jinzhu/copier"
)

type SettingsRequest struct {
	SiteName        string `json:"siteName" binding:"required,max=200"`
	Currency        string `json:"currency" binding:"required,len=3"`
	ContactEmail    string `json:"contactEmail" binding:"omitempty,email"`
	ContactPhone    string `json:"contactPhone" binding:"max=50"`
	LowStockAlerts  bool   `json:"lowStockAlerts"`
	MaintenanceMode bool   `json:"maintenanceMode"`
}

func (r *SettingsRequest) ToDomain() (settings.Settings, error) {
	var s settings.Settings
	if err := copier.Copy(&s, r); err != nil {
		return settings.Settings{}, err
	}
	return s, nil
}
