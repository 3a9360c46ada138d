package queries

import (
	"decor-rental/internal/domain/inventory"
	"decor-rental/internal/domain/message"
	"decor-rental/internal/domain/sales"
	"decor-rental/internal/domain/user"
)

// UserView is a user without credentials.
type UserView struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         user.Role `json:"role"`
	IsFirstLogin bool      `json:"isFirstLogin"`
	LastLogin    *string   `json:"lastLogin,omitempty"`
	CreatedAt    string    `json:"createdAt"`
}

func NewUserView(u user.User) UserView {
	return UserView{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Role:         u.Role,
		IsFirstLogin: u.IsFirstLogin,
		LastLogin:    u.LastLogin,
		CreatedAt:    u.CreatedAt,
	}
}

// ItemView adds the computed stock badge to an inventory item.
type ItemView struct {
	inventory.Item
	StockStatus  inventory.StockStatus `json:"stockStatus"`
	PrimaryImage string                `json:"primaryImage"`
}

func NewItemView(it inventory.Item) ItemView {
	return ItemView{Item: it, StockStatus: it.StockStatus(), PrimaryImage: it.PrimaryImage()}
}

type MessageList struct {
	Messages []message.Message `json:"messages"`
	Unread   int               `json:"unread"`
}

type SalesReport struct {
	sales.Report
	Inventory inventory.Stats `json:"inventory"`
}

type BackupFile struct {
	FileName    string
	ContentType string
	Data        []byte
}
