package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFriendRequestLifecycle(t *testing.T) {
	_, app := newTestServer(t, nil)

	aliceToken, aliceID := signupUser(t, app, "alice")
	bobToken, bobID := signupUser(t, app, "bob")

	t.Run("cannot befriend yourself", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost,
			fmt.Sprintf("/api/friends/requests/%d", aliceID), aliceToken, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("cannot befriend an unknown user", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/friends/requests/9999", aliceToken, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("send request", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodPost,
			fmt.Sprintf("/api/friends/requests/%d", bobID), aliceToken, nil)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.EqualValues(t, aliceID, body["requester_id"])
		assert.EqualValues(t, bobID, body["recipient_id"])
		assert.Equal(t, false, body["is_accepted"])
	})

	t.Run("duplicate request conflicts", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost,
			fmt.Sprintf("/api/friends/requests/%d", bobID), aliceToken, nil)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("reverse request also conflicts", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost,
			fmt.Sprintf("/api/friends/requests/%d", aliceID), bobToken, nil)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("recipient sees the pending request", func(t *testing.T) {
		resp, senders := doJSONList(t, app, http.MethodGet, "/api/friends/requests", bobToken)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Len(t, senders, 1)
		assert.Equal(t, "alice", senders[0]["username"])
	})

	t.Run("requester cannot accept their own request", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost,
			fmt.Sprintf("/api/friends/requests/%d/accept", bobID), aliceToken, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("pending request is not a friendship yet", func(t *testing.T) {
		resp, friends := doJSONList(t, app, http.MethodGet, "/api/friends", aliceToken)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Empty(t, friends)
	})

	t.Run("recipient accepts", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodPost,
			fmt.Sprintf("/api/friends/requests/%d/accept", aliceID), bobToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, true, body["is_accepted"])
	})

	t.Run("accepting again is NotFound", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost,
			fmt.Sprintf("/api/friends/requests/%d/accept", aliceID), bobToken, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("both sides list each other", func(t *testing.T) {
		resp, friends := doJSONList(t, app, http.MethodGet, "/api/friends", aliceToken)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Len(t, friends, 1)
		assert.Equal(t, "bob", friends[0]["username"])

		resp, friends = doJSONList(t, app, http.MethodGet, "/api/friends", bobToken)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Len(t, friends, 1)
		assert.Equal(t, "alice", friends[0]["username"])
	})

	t.Run("new request after acceptance conflicts", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost,
			fmt.Sprintf("/api/friends/requests/%d", bobID), aliceToken, nil)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("remove friendship", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodDelete,
			fmt.Sprintf("/api/friends/%d", aliceID), bobToken, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		resp, friends := doJSONList(t, app, http.MethodGet, "/api/friends", aliceToken)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Empty(t, friends)
	})

	t.Run("removing again is NotFound", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodDelete,
			fmt.Sprintf("/api/friends/%d", aliceID), bobToken, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestRemovePendingRequest(t *testing.T) {
	_, app := newTestServer(t, nil)

	aliceToken, aliceID := signupUser(t, app, "alice")
	bobToken, bobID := signupUser(t, app, "bob")

	resp, _ := doJSON(t, app, http.MethodPost,
		fmt.Sprintf("/api/friends/requests/%d", bobID), aliceToken, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// The recipient rejects by removing the pending relationship.
	resp, _ = doJSON(t, app, http.MethodDelete,
		fmt.Sprintf("/api/friends/%d", aliceID), bobToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// A fresh request is possible afterwards.
	resp, _ = doJSON(t, app, http.MethodPost,
		fmt.Sprintf("/api/friends/requests/%d", bobID), aliceToken, nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestFriendRoutesBadParams(t *testing.T) {
	_, app := newTestServer(t, nil)
	token, _ := signupUser(t, app, "alice")

	resp, _ := doJSON(t, app, http.MethodPost, "/api/friends/requests/abc", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodDelete, "/api/friends/0", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
