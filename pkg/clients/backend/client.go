package backend

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"c4inventario/internal/config"
	"c4inventario/internal/domain/models"
)

// Client exposes the inventory REST API operations used by the frontend.
type Client interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Register(ctx context.Context, req RegisterRequest) error

	ListProducts(ctx context.Context, token string) ([]models.Product, error)
	GetProduct(ctx context.Context, token string, id int64) (*models.Product, error)
	CreateProduct(ctx context.Context, token string, product models.Product) (*models.Product, error)
	UpdateProduct(ctx context.Context, token string, id int64, product models.Product) (*models.Product, error)
	DeleteProduct(ctx context.Context, token string, id int64) error

	ListMovements(ctx context.Context, token string) ([]models.Movement, error)

	ListUsers(ctx context.Context, token string) ([]models.User, error)
	CreateUser(ctx context.Context, token string, user models.User) (*models.User, error)
	UpdateUser(ctx context.Context, token string, id int64, user models.User) (*models.User, error)
	DeleteUser(ctx context.Context, token string, id int64) error
}

// APIClient is a resty-backed implementation of Client.
type APIClient struct {
	httpClient *resty.Client
}

// NewClient builds a backend API client from the provided configuration.
func NewClient(cfg config.BackendConfig) *APIClient {
	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(cfg.Timeout)

	return &APIClient{httpClient: restyClient}
}

// APIError carries the backend's error payload so handlers can surface the
// backend-provided message, falling back to a generic one otherwise.
type APIError struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend error: status=%d, message=%s", e.Status, e.Message)
}

// LoginResult mirrors the login endpoint response.
type LoginResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user,omitempty"`
}

// RegisterRequest is the account self-registration payload.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email,omitempty"`
}

// Login exchanges credentials for a bearer token.
func (c *APIClient) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	result := new(LoginResult)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(map[string]string{"username": username, "password": password}).
		SetResult(result).
		SetError(&APIError{}).
		Post("/auth/login")
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	return result, nil
}

// Register creates a new account through the backend's self-registration
// endpoint.
func (c *APIClient) Register(ctx context.Context, req RegisterRequest) error {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(req).
		SetError(&APIError{}).
		Post("/auth/register")
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return checkStatus(resp)
}

// ListProducts fetches the full product list.
func (c *APIClient) ListProducts(ctx context.Context, token string) ([]models.Product, error) {
	products := []models.Product{}

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&products).
		SetError(&APIError{}).
		Get("/products")
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	return products, nil
}

// GetProduct fetches one product by its numeric id.
func (c *APIClient) GetProduct(ctx context.Context, token string, id int64) (*models.Product, error) {
	product := new(models.Product)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(product).
		SetError(&APIError{}).
		Get(fmt.Sprintf("/products/%d", id))
	if err != nil {
		return nil, fmt.Errorf("get product %d: %w", id, err)
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	return product, nil
}

// CreateProduct submits a new product.
func (c *APIClient) CreateProduct(ctx context.Context, token string, product models.Product) (*models.Product, error) {
	created := new(models.Product)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(product).
		SetResult(created).
		SetError(&APIError{}).
		Post("/products")
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	return created, nil
}

// UpdateProduct replaces a product by id.
func (c *APIClient) UpdateProduct(ctx context.Context, token string, id int64, product models.Product) (*models.Product, error) {
	updated := new(models.Product)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(product).
		SetResult(updated).
		SetError(&APIError{}).
		Put(fmt.Sprintf("/products/%d", id))
	if err != nil {
		return nil, fmt.Errorf("update product %d: %w", id, err)
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteProduct removes a product by id.
func (c *APIClient) DeleteProduct(ctx context.Context, token string, id int64) error {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetError(&APIError{}).
		Delete(fmt.Sprintf("/products/%d", id))
	if err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	return checkStatus(resp)
}

// ListMovements fetches the movement history. Callers are expected to treat
// failures as an empty history and fall back to synthesized movements.
func (c *APIClient) ListMovements(ctx context.Context, token string) ([]models.Movement, error) {
	movements := []models.Movement{}

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&movements).
		SetError(&APIError{}).
		Get("/movements")
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	return movements, nil
}

// ListUsers fetches every account.
func (c *APIClient) ListUsers(ctx context.Context, token string) ([]models.User, error) {
	users := []models.User{}

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&users).
		SetError(&APIError{}).
		Get("/users")
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	return users, nil
}

// CreateUser registers a new account from the settings screen.
func (c *APIClient) CreateUser(ctx context.Context, token string, user models.User) (*models.User, error) {
	created := new(models.User)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(user).
		SetResult(created).
		SetError(&APIError{}).
		Post("/users")
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	return created, nil
}

// UpdateUser updates an account. An empty Password leaves it unchanged.
func (c *APIClient) UpdateUser(ctx context.Context, token string, id int64, user models.User) (*models.User, error) {
	updated := new(models.User)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(user).
		SetResult(updated).
		SetError(&APIError{}).
		Put(fmt.Sprintf("/users/%d", id))
	if err != nil {
		return nil, fmt.Errorf("update user %d: %w", id, err)
	}
	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteUser removes an account by id.
func (c *APIClient) DeleteUser(ctx context.Context, token string, id int64) error {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetError(&APIError{}).
		Delete(fmt.Sprintf("/users/%d", id))
	if err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	return checkStatus(resp)
}

func checkStatus(resp *resty.Response) error {
	if resp.StatusCode() < http.StatusBadRequest {
		return nil
	}

	apiErr, ok := resp.Error().(*APIError)
	if !ok || apiErr == nil {
		apiErr = &APIError{}
	}
	apiErr.Status = resp.StatusCode()
	return apiErr
}
