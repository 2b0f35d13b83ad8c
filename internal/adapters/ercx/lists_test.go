package ercx

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/ercx-tools/ercx-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listID = domain.ListID("228856f0-7e27-47cf-aea6-978e814f7f1b")

func TestCreateListReturnsAssignedID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/token-lists", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"My token list","description":"watching"}`, string(body))

		w.WriteHeader(http.StatusCreated)
		_, _ = fmt.Fprintf(w, `{"id":"%s"}`, listID)
	})

	id, err := client.CreateList(context.Background(), "My token list", "watching")
	require.NoError(t, err)
	assert.Equal(t, listID, id)
}

func TestCreateListFailsWithoutID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = fmt.Fprint(w, `{"name":"My token list"}`)
	})

	_, err := client.CreateList(context.Background(), "My token list", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no id")
}

func TestAddTokenSendsChainIDAsNumber(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/token-lists/"+listID.String()+"/tokens", r.URL.Path)

		var body map[string]json.RawMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "11155111", string(body["network"]))

		_, _ = fmt.Fprint(w, `true`)
	})

	err := client.AddToken(context.Background(), listID, domain.NetworkSepolia, tetherAddress)
	require.NoError(t, err)
}

func TestRemoveTokenUsesDeleteWithBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/token-lists/"+listID.String()+"/tokens", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, fmt.Sprintf(`{"address":"%s","network":1}`, tetherAddress), string(body))

		_, _ = fmt.Fprint(w, `true`)
	})

	err := client.RemoveToken(context.Background(), listID, domain.NetworkMainnet, tetherAddress)
	require.NoError(t, err)
}

func TestShareListSendsUserAndPermission(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/token-lists/"+listID.String()+"/users", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"userId":"101185369","permission":"WRITE"}`, string(body))

		_, _ = fmt.Fprint(w, `{}`)
	})

	err := client.ShareList(context.Background(), listID, "101185369", domain.PermissionWrite)
	require.NoError(t, err)
}

func TestUnshareListDeletesUserPath(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/token-lists/"+listID.String()+"/users/101185369", r.URL.Path)
		_, _ = fmt.Fprint(w, `{}`)
	})

	err := client.UnshareList(context.Background(), listID, "101185369")
	require.NoError(t, err)
}

func TestListReadEndpoints(t *testing.T) {
	tests := []struct {
		name string
		path string
		call func(c *Client) error
	}{
		{
			name: "info",
			path: "/token-lists/" + listID.String(),
			call: func(c *Client) error {
				_, err := c.ListInfo(context.Background(), listID)
				return err
			},
		},
		{
			name: "tokens",
			path: "/token-lists/" + listID.String() + "/tokens",
			call: func(c *Client) error {
				_, err := c.ListTokens(context.Background(), listID)
				return err
			},
		},
		{
			name: "users",
			path: "/token-lists/" + listID.String() + "/users",
			call: func(c *Client) error {
				_, err := c.ListUsers(context.Background(), listID)
				return err
			},
		},
		{
			name: "tokens count",
			path: "/token-lists/" + listID.String() + "/tokens-count",
			call: func(c *Client) error {
				_, err := c.ListTokensCount(context.Background(), listID)
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, tt.path, r.URL.Path)
				_, _ = fmt.Fprint(w, `{}`)
			})

			require.NoError(t, tt.call(client))
		})
	}
}
