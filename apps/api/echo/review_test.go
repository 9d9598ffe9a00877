package echoapi

import (
	"net/http"
	"testing"
	"time"

	"github.com/educircle/backend/core"
	"github.com/educircle/backend/core/review"
)

func Test_reviewApi_reviewCreate(t *testing.T) {
	env := setup(t)

	named := core.Identity{Email: "jane@test.cd", Name: "Jane Doe", Photo: "https://test.cd/jane.png"}
	nameless := core.Identity{Email: "anon@test.cd"}
	namedToken := env.authToken(named)
	namelessToken := env.authToken(nameless)

	tests := []httpTest{
		{
			name: "Auth required", wantCode: http.StatusUnauthorized,
			wantData: marchallObj(t, errMissingTokenBody),
		},
		{
			name: "Empty body", token: namedToken, body: []byte("{}"), wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{
				"message": "this field is required",
				"rating":  "this field is required",
			}),
		},
		{
			name:  "Rating capped at 5", token: namedToken, wantCode: http.StatusBadRequest,
			body:     marchallObj(t, review.NewReview{Message: "great", Rating: 9}),
			wantData: marchallObj(t, map[string]string{"rating": "rating must be 5 or less"}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodPost, "/reviews", tt.token, tt.body)
			env.server.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}

	t.Run("Reviewer details come from the token", func(t *testing.T) {
		body := marchallObj(t, review.NewReview{Message: "great platform", Rating: 5})
		req, rec := newAuthRequest(http.MethodPost, "/reviews", namedToken, body)
		env.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("failed! code = %v; wantCode %v; body %v", rec.Code, http.StatusCreated, rec.Body.String())
		}

		var r review.Review
		decodeBody(t, rec, &r)
		if r.UserEmail != named.Email || r.UserName != named.Name || r.UserPhoto != named.Photo {
			t.Errorf("reviewer not taken from the token: %+v", r)
		}
		if r.CreatedAt.IsZero() {
			t.Error("expected createdAt to be stamped")
		}
	})

	t.Run("Name falls back to the email's local part", func(t *testing.T) {
		body := marchallObj(t, review.NewReview{Message: "pretty good", Rating: 4})
		req, rec := newAuthRequest(http.MethodPost, "/reviews", namelessToken, body)
		env.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("failed! code = %v; wantCode %v; body %v", rec.Code, http.StatusCreated, rec.Body.String())
		}

		var r review.Review
		decodeBody(t, rec, &r)
		if r.UserName != "anon" {
			t.Errorf("userName = %v; want anon", r.UserName)
		}
	})
}

func Test_reviewApi_reviewQuery(t *testing.T) {
	env := setup(t)

	t.Run("Empty", func(t *testing.T) {
		tt := httpTest{wantCode: http.StatusOK, wantData: marchallList(t)}
		req, rec := newRequest(http.MethodGet, "/reviews")
		env.server.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})

	base := time.Now().UTC().Truncate(time.Second)
	r1 := createReview(t, env.reviewRepo, "a@test.cd", "ok", 3, base.Add(1*time.Minute))
	r2 := createReview(t, env.reviewRepo, "b@test.cd", "good", 4, base.Add(2*time.Minute))
	r3 := createReview(t, env.reviewRepo, "c@test.cd", "great", 5, base.Add(3*time.Minute))

	t.Run("Newest first", func(t *testing.T) {
		tt := httpTest{wantCode: http.StatusOK, wantData: marchallList(t, r3, r2, r1)}
		req, rec := newRequest(http.MethodGet, "/reviews")
		env.server.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})
}

func Test_reviewApi_bookmarks(t *testing.T) {
	env := setup(t)

	user := core.Identity{Email: "user@test.cd"}
	token := env.authToken(user)
	otherToken := env.authToken(core.Identity{Email: "other@test.cd"})

	t.Run("Auth required", func(t *testing.T) {
		for _, method := range []string{http.MethodGet, http.MethodPost} {
			tt := httpTest{wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingTokenBody)}
			req, rec := newRequest(method, "/bookmarks")
			env.server.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		}
	})

	t.Run("assignmentId is required", func(t *testing.T) {
		tt := httpTest{
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"assignmentId": "this field is required"}),
		}
		req, rec := newAuthRequest(http.MethodPost, "/bookmarks", token, []byte("{}"))
		env.server.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})

	var b review.Bookmark
	t.Run("Bookmarked", func(t *testing.T) {
		body := marchallObj(t, review.NewBookmark{AssignmentID: "a1"})
		req, rec := newAuthRequest(http.MethodPost, "/bookmarks", token, body)
		env.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("failed! code = %v; wantCode %v; body %v", rec.Code, http.StatusCreated, rec.Body.String())
		}
		decodeBody(t, rec, &b)
		if b.UserEmail != user.Email || b.AssignmentID != "a1" {
			t.Errorf("bookmark not recorded for the caller: %+v", b)
		}
	})

	t.Run("Bookmarking twice conflicts", func(t *testing.T) {
		body := marchallObj(t, review.NewBookmark{AssignmentID: "a1"})
		tt := httpTest{
			wantCode: http.StatusConflict,
			wantData: marchallObj(t, httpErr{Error: "assignment already bookmarked"}),
		}
		req, rec := newAuthRequest(http.MethodPost, "/bookmarks", token, body)
		env.server.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)

		// still exactly one
		tt = httpTest{wantCode: http.StatusOK, wantData: marchallList(t, b)}
		req, rec = newAuthRequest(http.MethodGet, "/bookmarks", token)
		env.server.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})

	t.Run("Scoped to the caller", func(t *testing.T) {
		tt := httpTest{wantCode: http.StatusOK, wantData: marchallList(t)}
		req, rec := newAuthRequest(http.MethodGet, "/bookmarks", otherToken)
		env.server.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})

	t.Run("Removing an absent bookmark is not an error", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodDelete, "/bookmarks/unknown", token)
		env.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusNoContent {
			t.Errorf("failed! code = %v; wantCode %v", rec.Code, http.StatusNoContent)
		}
	})

	t.Run("Removed", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodDelete, "/bookmarks/a1", token)
		env.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusNoContent {
			t.Fatalf("failed! code = %v; wantCode %v", rec.Code, http.StatusNoContent)
		}

		tt := httpTest{wantCode: http.StatusOK, wantData: marchallList(t)}
		req, rec = newAuthRequest(http.MethodGet, "/bookmarks", token)
		env.server.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)
	})
}
