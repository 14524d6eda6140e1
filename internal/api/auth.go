package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"easywords/internal/domain"

	"go.uber.org/zap"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login exchanges username and password for an access/refresh token pair
func (c *Client) Login(ctx context.Context, username, password string) (domain.Credentials, error) {
	var creds domain.Credentials
	err := c.DoJSON(ctx, http.MethodPost, "/token/", credentialsRequest{
		Username: username,
		Password: password,
	}, "", &creds)
	if err != nil {
		return domain.Credentials{}, err
	}
	return creds, nil
}

// Register creates a new account. It does not go through Do: the endpoint
// needs no token and reports failures under "error" instead of "detail".
func (c *Client) Register(ctx context.Context, username, password string) error {
	data, err := json.Marshal(credentialsRequest{Username: username, Password: password})
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/register/", bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errBody struct {
			Error string `json:"error"`
		}
		message := DefaultRegisterErrorMessage
		if err := json.NewDecoder(resp.Body).Decode(&errBody); err == nil && errBody.Error != "" {
			message = errBody.Error
		}

		c.logger.Warn("Registration failed",
			zap.String("username", username),
			zap.Int("status", resp.StatusCode),
			zap.String("error", message),
		)
		return &Error{Message: message, StatusCode: resp.StatusCode}
	}

	return nil
}
