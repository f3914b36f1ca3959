package dto

import "time"

// ============ Common envelope ============

// APIResponse is the {success, message|data} envelope every endpoint uses.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ============ Users / auth ============

type RegisterRequest struct {
	FullName    string `json:"fullname" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	Phone       string `json:"phone"`
	CompanyName string `json:"companyName"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Country     string `json:"country"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	FullName    string `json:"fullname"`
	Password    string `json:"password" binding:"omitempty,min=6"`
	Phone       string `json:"phone"`
	CompanyName string `json:"companyName"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Country     string `json:"country"`
}

type UserResponse struct {
	ID          uint   `json:"id"`
	FullName    string `json:"fullname"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	CompanyName string `json:"companyName,omitempty"`
	Role        string `json:"role"`
}

type LoginResponse struct {
	UserID    uint         `json:"userId"`
	Token     string       `json:"token"`
	TokenType string       `json:"tokenType"`
	ExpiresIn int          `json:"expiresIn"`
	User      UserResponse `json:"user"`
}

// ============ Domain pricing ============

type PricingResponse struct {
	ID            uint    `json:"id"`
	TLD           string  `json:"tld"`
	Price         float64 `json:"price"`
	RenewalPrice  float64 `json:"renewalPrice"`
	TransferPrice float64 `json:"transferPrice"`
	Duration      string  `json:"duration"`
}

type CreatePricingRequest struct {
	TLD           string  `json:"tld" binding:"required"`
	Price         float64 `json:"price" binding:"required,gt=0"`
	RenewalPrice  float64 `json:"renewalPrice" binding:"required,gt=0"`
	TransferPrice float64 `json:"transferPrice" binding:"required,gt=0"`
	Duration      string  `json:"duration"`
}

type UpdatePricingRequest struct {
	Price         float64 `json:"price" binding:"omitempty,gt=0"`
	RenewalPrice  float64 `json:"renewalPrice" binding:"omitempty,gt=0"`
	TransferPrice float64 `json:"transferPrice" binding:"omitempty,gt=0"`
	Duration      string  `json:"duration"`
}

// ============ Domains ============

type DomainResponse struct {
	ID               uint       `json:"id"`
	Name             string     `json:"name"`
	Status           string     `json:"status"`
	RegistrationDate *time.Time `json:"registrationDate,omitempty"`
	ExpiryDate       *time.Time `json:"expiryDate,omitempty"`
	Price            float64    `json:"price"`
}

// ============ Checkout ============

type CheckoutItem struct {
	ID           string  `json:"id" binding:"required"`
	Type         string  `json:"type" binding:"required,oneof=domain service hosting"`
	Title        string  `json:"title" binding:"required"`
	Subtitle     string  `json:"subtitle"`
	Price        float64 `json:"price" binding:"required,gt=0"`
	Options      string  `json:"options"`
	RenewalPrice float64 `json:"renewalPrice"`
	ReferenceID  uint    `json:"referenceId"`
}

type CheckoutRequest struct {
	ExistingCustomer bool           `json:"existingCustomer"`
	Email            string         `json:"email" binding:"required,email"`
	Password         string         `json:"password" binding:"required"`
	FullName         string         `json:"fullname"`
	Phone            string         `json:"phone"`
	CompanyName      string         `json:"companyName"`
	Address          string         `json:"address"`
	City             string         `json:"city"`
	Country          string         `json:"country"`
	WaafiNumber      string         `json:"waafiNumber" binding:"required"`
	Items            []CheckoutItem `json:"items" binding:"required,min=1,dive"`
}

// ============ Transactions ============

type TransactionResponse struct {
	ID                 uint       `json:"id"`
	Type               string     `json:"type"`
	Amount             float64    `json:"amount"`
	Status             string     `json:"status"`
	PaymentReferenceID string     `json:"paymentReferenceId,omitempty"`
	PaymentMethod      string     `json:"paymentMethod"`
	Description        string     `json:"description"`
	CreatedAt          time.Time  `json:"createdAt"`
	CompletedAt        *time.Time `json:"completedAt,omitempty"`
}

// ============ Services catalog ============

type ServicePackageInput struct {
	PackageTitle string   `json:"packageTitle" binding:"required"`
	Price        float64  `json:"price" binding:"required,gt=0"`
	Features     []string `json:"features"`
}

type CreateServiceRequest struct {
	ServiceTitle string                `json:"serviceTitle" binding:"required"`
	ServiceIcon  string                `json:"serviceIcon"`
	Packages     []ServicePackageInput `json:"packages" binding:"dive"`
}

// ============ Hosting packages ============

type HostingPackageRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"desc"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	Features    []string `json:"features"`
}

// ============ Blogs ============

type BlogRequest struct {
	Title   string `json:"title" binding:"required"`
	Slug    string `json:"slug" binding:"required"`
	Content string `json:"content"`
	Author  string `json:"author"`
}

type BlogResponse struct {
	ID         uint      `json:"id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	Content    string    `json:"content"`
	Author     string    `json:"author"`
	CoverImage string    `json:"coverImage,omitempty"`
	CoverURL   string    `json:"coverUrl,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ============ Menus / permissions ============

type MenuRequest struct {
	Title     string `json:"title" binding:"required"`
	Path      string `json:"path"`
	SortOrder int    `json:"sortOrder"`
	SubMenus  []struct {
		Title string `json:"title" binding:"required"`
		Path  string `json:"path"`
	} `json:"subMenus" binding:"dive"`
}

type SubMenuAccessInput struct {
	SubMenuID uint `json:"subMenuId" binding:"required"`
}

type MenuAccessInput struct {
	MenuID   uint                 `json:"menuId" binding:"required"`
	SubMenus []SubMenuAccessInput `json:"subMenus" binding:"dive"`
}

type UpsertPermissionRequest struct {
	MenusAccess []MenuAccessInput `json:"menusAccess" binding:"required,dive"`
}
