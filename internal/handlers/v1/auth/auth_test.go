package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"

	"github.com/mehmetgencv/expense-tracker/internal/service"
)

type stubDirectory struct {
	users map[string]*service.User
}

func (d *stubDirectory) Resolve(ctx context.Context, token string) (*service.User, error) {
	user, ok := d.users[token]
	if !ok {
		return nil, service.ErrUnauthorized
	}
	return user, nil
}

type whoamiOutput struct {
	Body struct {
		Username string `json:"username"`
	}
}

// newTestAPI wires the middleware in front of a probe endpoint that
// echoes the resolved caller.
func newTestAPI(t *testing.T, directory Directory) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(NewMiddleware(api, directory))
	huma.Register(api, huma.Operation{
		OperationID: "whoami",
		Method:      http.MethodGet,
		Path:        "/v1/whoami",
	}, func(ctx context.Context, input *struct{}) (*whoamiOutput, error) {
		caller, ok := CallerFromContext(ctx)
		if !ok {
			return nil, huma.NewError(http.StatusInternalServerError, "caller missing from context")
		}
		out := &whoamiOutput{}
		out.Body.Username = caller.Username
		return out, nil
	})
	return api
}

func TestMiddleware_ResolvesCaller(t *testing.T) {
	alice := &service.User{ID: uuid.Must(uuid.NewV4()), Username: "alice"}
	api := newTestAPI(t, &stubDirectory{users: map[string]*service.User{"token-abc": alice}})

	resp := api.Get("/v1/whoami", "Authorization: Bearer token-abc")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body struct {
		Username string `json:"username"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "alice", body.Username)
}

func TestMiddleware_MissingHeader(t *testing.T) {
	api := newTestAPI(t, &stubDirectory{users: map[string]*service.User{}})

	resp := api.Get("/v1/whoami")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestMiddleware_UnknownToken(t *testing.T) {
	api := newTestAPI(t, &stubDirectory{users: map[string]*service.User{}})

	resp := api.Get("/v1/whoami", "Authorization: Bearer bogus")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestCallerFromContext_Absent(t *testing.T) {
	caller, ok := CallerFromContext(context.Background())

	assert.False(t, ok)
	assert.Nil(t, caller)
}
