package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"c4inventario/internal/domain/models"
)

func TestLoginFormValidation(t *testing.T) {
	assert.NoError(t, Validate(LoginForm{Username: "alice", Password: "x"}))
	assert.EqualError(t, Validate(LoginForm{Password: "x"}), "username is required")
	assert.EqualError(t, Validate(LoginForm{Username: "alice"}), "password is required")
}

func TestRegisterFormValidation(t *testing.T) {
	valid := RegisterForm{Username: "alice", Password: "secret1", ConfirmPassword: "secret1"}
	assert.NoError(t, Validate(valid))

	short := valid
	short.Password = "abc"
	short.ConfirmPassword = "abc"
	assert.EqualError(t, Validate(short), "password must be at least 6 characters")

	mismatch := valid
	mismatch.ConfirmPassword = "different"
	assert.EqualError(t, Validate(mismatch), "passwords do not match")

	badEmail := valid
	badEmail.Email = "not-an-email"
	assert.EqualError(t, Validate(badEmail), "email address is not valid")
}

func TestProductFormValidation(t *testing.T) {
	valid := ProductForm{Name: "Laptop", Status: models.StatusWarehouse, Quantity: 1}
	assert.NoError(t, Validate(valid))

	assert.EqualError(t, Validate(ProductForm{Status: models.StatusWarehouse}), "name is required")

	badDate := valid
	badDate.PurchaseDate = "31/08/2026"
	assert.EqualError(t, Validate(badDate), "purchase date must be a date (YYYY-MM-DD)")

	negative := valid
	negative.Quantity = -1
	assert.Error(t, Validate(negative))
}

func TestProductFormToProductTrimsFields(t *testing.T) {
	form := ProductForm{
		ProductID: "  C4-001 ",
		Name:      " Laptop ",
		Status:    models.StatusWarehouse,
		Quantity:  2,
		Price:     99.5,
	}

	product := form.ToProduct()
	assert.Equal(t, "C4-001", product.ProductID)
	assert.Equal(t, "Laptop", product.Name)
	assert.Equal(t, 2, product.Quantity)
	assert.InDelta(t, 99.5, product.Price, 0.001)
}

func TestUserFormValidation(t *testing.T) {
	t.Run("create requires a 4+ character password", func(t *testing.T) {
		assert.NoError(t, Validate(NewUserForm{Username: "bob", Password: "abcd", Role: models.RoleUser}))
		assert.EqualError(t,
			Validate(NewUserForm{Username: "bob", Password: "abc", Role: models.RoleUser}),
			"password must be at least 4 characters")
		assert.Error(t, Validate(NewUserForm{Username: "bob", Password: "abcd", Role: "ROOT"}))
	})

	t.Run("edit allows an empty password", func(t *testing.T) {
		require.NoError(t, Validate(EditUserForm{Username: "bob", Role: models.RoleAdmin}))
		assert.EqualError(t,
			Validate(EditUserForm{Username: "bob", Password: "abc", Role: models.RoleAdmin}),
			"password must be at least 4 characters")
	})
}
