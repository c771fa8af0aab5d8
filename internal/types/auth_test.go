package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func failedTags(t *testing.T, err error) map[string]string {
	t.Helper()
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = fe.Tag()
	}
	return out
}

func TestAuthRequests_Validation(t *testing.T) {
	validate := validator.New()

	tests := []struct {
		name    string
		request any
		want    map[string]string
	}{
		{
			name:    "signup ok",
			request: CreateUserRequest{Name: "Renée Okafor", Email: "renee@example.com", Password: "secret1"},
		},
		{
			name:    "signup empty",
			request: CreateUserRequest{},
			want:    map[string]string{"Name": "required", "Email": "required", "Password": "required"},
		},
		{
			name:    "signup bad email and short password",
			request: CreateUserRequest{Name: "Sam", Email: "sam-at-example", Password: "12345"},
			want:    map[string]string{"Email": "email", "Password": "min"},
		},
		{
			name:    "login ok with any password length",
			request: LoginRequest{Email: "sam@example.com", Password: "x"},
		},
		{
			name:    "login missing password",
			request: LoginRequest{Email: "sam@example.com"},
			want:    map[string]string{"Password": "required"},
		},
		{
			name:    "password change ok",
			request: UpdatePasswordRequest{CurrentPassword: "old", NewPassword: "newer1"},
		},
		{
			name:    "password change too short",
			request: UpdatePasswordRequest{CurrentPassword: "old", NewPassword: "new"},
			want:    map[string]string{"NewPassword": "min"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, failedTags(t, validate.Struct(tt.request)))
		})
	}
}

func TestLoginResponse_JSON(t *testing.T) {
	id := uuid.MustParse("7b0f6a7e-4f1c-4c55-9a55-0c4c2e0d9a11")
	created := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)

	data, err := json.Marshal(LoginResponse{
		User: &User{
			ID:          id,
			Name:        "Renée Okafor",
			Email:       "renee@example.com",
			PasswordSet: true,
			CreatedAt:   created,
			UpdatedAt:   created,
		},
		Token: "tok",
	})
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "tok", got["token"])

	user := got["user"].(map[string]any)
	assert.Equal(t, id.String(), user["id"])
	assert.Equal(t, true, user["password_set"])
	assert.Equal(t, "2025-03-01T09:30:00Z", user["created_at"])
	assert.NotContains(t, user, "password")
	assert.NotContains(t, user, "password_hash")
}
