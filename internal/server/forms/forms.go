// Package forms holds the local drafts collected by the HTML forms and their
// validation rules. Validation failures never reach the network: the handler
// re-renders the form with an inline message instead.
package forms

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"c4inventario/internal/domain/models"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoginForm is the credentials draft from the login screen.
type LoginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// RegisterForm is the self-registration draft from the login screen.
type RegisterForm struct {
	Username        string `form:"username" validate:"required"`
	Email           string `form:"email" validate:"omitempty,email"`
	Password        string `form:"password" validate:"required,min=6"`
	ConfirmPassword string `form:"confirmPassword" validate:"required,eqfield=Password"`
}

// ProductForm is the add/edit product draft. ProductID is assigned by the
// backend on create and required on edit.
type ProductForm struct {
	ProductID      string  `form:"productId"`
	Name           string  `form:"name" validate:"required"`
	Brand          string  `form:"brand"`
	Model          string  `form:"model"`
	SerialNumber   string  `form:"serialNumber"`
	Description    string  `form:"description"`
	Category       string  `form:"category"`
	Status         string  `form:"status" validate:"required"`
	Quantity       int     `form:"quantity" validate:"min=0"`
	Price          float64 `form:"price" validate:"min=0"`
	Location       string  `form:"location"`
	PurchaseDate   string  `form:"purchaseDate" validate:"omitempty,datetime=2006-01-02"`
	WarrantyExpiry string  `form:"warrantyExpiry" validate:"omitempty,datetime=2006-01-02"`
	Notes          string  `form:"notes"`
}

// ToProduct maps the draft onto the wire model.
func (f ProductForm) ToProduct() models.Product {
	return models.Product{
		ProductID:      strings.TrimSpace(f.ProductID),
		Name:           strings.TrimSpace(f.Name),
		Brand:          strings.TrimSpace(f.Brand),
		Model:          strings.TrimSpace(f.Model),
		SerialNumber:   strings.TrimSpace(f.SerialNumber),
		Description:    f.Description,
		Category:       f.Category,
		Status:         f.Status,
		Quantity:       f.Quantity,
		Price:          f.Price,
		Location:       strings.TrimSpace(f.Location),
		PurchaseDate:   f.PurchaseDate,
		WarrantyExpiry: f.WarrantyExpiry,
		Notes:          f.Notes,
	}
}

// NewUserForm is the create-account draft on the settings screen.
type NewUserForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required,min=4"`
	Role     string `form:"role" validate:"required,oneof=ADMIN USER"`
}

// EditUserForm is the edit-account draft. An empty password means "keep the
// current one", so the length rule only applies when it is set.
type EditUserForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"omitempty,min=4"`
	Role     string `form:"role" validate:"required,oneof=ADMIN USER"`
}

// Validate runs the struct rules and returns a user-facing message for the
// first violation.
func Validate(form interface{}) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return errors.New(message(verrs[0]))
	}
	return err
}

func message(fe validator.FieldError) string {
	field := fieldLabel(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "eqfield":
		return "passwords do not match"
	case "email":
		return "email address is not valid"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "datetime":
		return fmt.Sprintf("%s must be a date (YYYY-MM-DD)", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func fieldLabel(name string) string {
	switch name {
	case "ProductID":
		return "product ID"
	case "SerialNumber":
		return "serial number"
	case "ConfirmPassword":
		return "password confirmation"
	case "PurchaseDate":
		return "purchase date"
	case "WarrantyExpiry":
		return "warranty expiry"
	default:
		return strings.ToLower(name)
	}
}
