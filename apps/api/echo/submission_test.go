package echoapi

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/educircle/backend/core"
	"github.com/educircle/backend/core/submission"
)

func Test_submissionApi_submissionCreate(t *testing.T) {
	env := setup(t)

	student := core.Identity{Email: "student@test.cd", Name: "Student"}
	token := env.authToken(student)

	tests := []httpTest{
		{
			name: "Auth required", wantCode: http.StatusUnauthorized,
			wantData: marchallObj(t, errMissingTokenBody),
		},
		{
			name: "Empty body", token: token, body: []byte("{}"), wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{
				"assignmentId": "this field is required",
				"studentEmail": "this field is required",
			}),
		},
		{
			name:  "Invalid email", token: token, wantCode: http.StatusBadRequest,
			body: marchallObj(t, submission.NewSubmission{
				AssignmentID: "60a000000000000000000000", StudentEmail: "nope",
			}),
			wantData: marchallObj(t, map[string]string{
				"studentEmail": "studentEmail must be a valid email address",
			}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodPost, "/submissions", tt.token, tt.body)
			env.server.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}

	t.Run("Created pending", func(t *testing.T) {
		body := marchallObj(t, submission.NewSubmission{
			AssignmentID: "60a000000000000000000000", StudentEmail: student.Email,
		})
		req, rec := newAuthRequest(http.MethodPost, "/submissions", token, body)
		env.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("failed! code = %v; wantCode %v; body %v", rec.Code, http.StatusCreated, rec.Body.String())
		}

		var s submission.Submission
		decodeBody(t, rec, &s)
		if s.ID.IsZero() {
			t.Error("expected a generated id")
		}
		if s.Status != submission.StatusPending {
			t.Errorf("status = %v; want %v", s.Status, submission.StatusPending)
		}
		if s.SubmittedAt.IsZero() {
			t.Error("expected submittedAt to be stamped")
		}
		if s.MarkedAt != nil {
			t.Errorf("markedAt = %v; want nil", s.MarkedAt)
		}
	})
}

func Test_submissionApi_submissionQuery(t *testing.T) {
	env := setup(t)

	student := core.Identity{Email: "student@test.cd"}
	token := env.authToken(student)

	base := time.Now().UTC().Truncate(time.Second)
	s1 := createSubmission(t, env.submissionRepo, "a1", student.Email, base.Add(1*time.Minute))
	s2 := createSubmission(t, env.submissionRepo, "a2", student.Email, base.Add(2*time.Minute))
	createSubmission(t, env.submissionRepo, "a1", "other@test.cd", base.Add(3*time.Minute))

	graded, err := env.submissionRepo.GradeSubmission(
		context.Background(), s1.ID.Hex(),
		submission.GradeSubmission{ObtainedMarks: 8, Feedback: "good", MarkedBy: "peer@test.cd"},
		base.Add(4*time.Minute),
	)
	if err != nil {
		t.Fatalf("GradeSubmission(): %v", err)
	}

	tests := []httpTest{
		{
			name: "Auth required", path: "/submissions?email=" + student.Email,
			wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingTokenBody),
		},
		{
			name: "Callers may only list their own submissions", path: "/submissions?email=other@test.cd", token: token,
			wantCode: http.StatusForbidden, wantData: marchallObj(t, httpErr{Error: "email does not match the authenticated user"}),
		},
		{
			name: "Own submissions, newest first", path: "/submissions?email=" + student.Email, token: token,
			wantCode: http.StatusOK, wantData: marchallList(t, s2, graded),
		},
		{
			name: "Status filter", path: "/submissions?email=" + student.Email + "&status=completed", token: token,
			wantCode: http.StatusOK, wantData: marchallList(t, graded),
		},
		{
			name: "No filters returns everything", path: "/submissions", token: token,
			wantCode: http.StatusOK,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodGet, tt.path, tt.token)
			env.server.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_submissionApi_submissionGrade(t *testing.T) {
	env := setup(t)

	s := createSubmission(t, env.submissionRepo, "a1", "student@test.cd", time.Now().UTC())
	path := "/submissions/" + s.ID.Hex()

	tests := []httpTest{
		{
			name: "Not found", path: "/submissions/60a000000000000000000000",
			body:     marchallObj(t, submission.GradeSubmission{ObtainedMarks: 8, MarkedBy: "peer@test.cd"}),
			wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "submission not found"}),
		},
		{
			name: "markedBy is required", path: path, body: []byte("{}"), wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"markedBy": "this field is required"}),
		},
		{
			name: "Students may not grade themselves", path: path,
			body:     marchallObj(t, submission.GradeSubmission{ObtainedMarks: 8, MarkedBy: s.StudentEmail}),
			wantCode: http.StatusForbidden, wantData: marchallObj(t, httpErr{Error: "students may not grade their own submission"}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodPatch, tt.path, tt.body)
			env.server.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}

	t.Run("Denied self-grade leaves the submission pending", func(t *testing.T) {
		got, err := env.submissionRepo.GetSubmissionByID(context.Background(), s.ID.Hex())
		if err != nil {
			t.Fatalf("GetSubmissionByID(): %v", err)
		}
		if got.Status != submission.StatusPending {
			t.Errorf("status = %v; want %v", got.Status, submission.StatusPending)
		}
	})

	t.Run("Graded by a peer", func(t *testing.T) {
		body := marchallObj(t, submission.GradeSubmission{ObtainedMarks: 8, Feedback: "good", MarkedBy: "Peer@test.cd"})
		req, rec := newRequest(http.MethodPatch, path, body)
		env.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("failed! code = %v; wantCode %v; body %v", rec.Code, http.StatusOK, rec.Body.String())
		}

		var graded submission.Submission
		decodeBody(t, rec, &graded)
		if graded.Status != submission.StatusCompleted {
			t.Errorf("status = %v; want %v", graded.Status, submission.StatusCompleted)
		}
		if graded.ObtainedMarks != 8 || graded.Feedback != "good" {
			t.Errorf("grade not recorded: %+v", graded)
		}
		if graded.MarkedBy != "peer@test.cd" { // lowered
			t.Errorf("markedBy = %v; want peer@test.cd", graded.MarkedBy)
		}
		if graded.MarkedAt == nil || graded.MarkedAt.IsZero() {
			t.Error("expected markedAt to be stamped")
		}

		// the student is notified
		sent := env.mailSvc.Sent()
		if len(sent) != 1 {
			t.Fatalf("len(sent) = %v; want 1", len(sent))
		}
		if to := sent[0].To[0].Address; to != s.StudentEmail {
			t.Errorf("mail to = %v; want %v", to, s.StudentEmail)
		}
		if sent[0].Subject != "Your submission has been graded" {
			t.Errorf("mail subject = %v", sent[0].Subject)
		}
	})

	t.Run("Re-grading overwrites", func(t *testing.T) {
		body := marchallObj(t, submission.GradeSubmission{ObtainedMarks: 9, Feedback: "even better", MarkedBy: "peer2@test.cd"})
		req, rec := newRequest(http.MethodPatch, path, body)
		env.server.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("failed! code = %v; wantCode %v; body %v", rec.Code, http.StatusOK, rec.Body.String())
		}

		var graded submission.Submission
		decodeBody(t, rec, &graded)
		if graded.ObtainedMarks != 9 || graded.MarkedBy != "peer2@test.cd" {
			t.Errorf("re-grade not recorded: %+v", graded)
		}
		if graded.Status != submission.StatusCompleted {
			t.Errorf("status = %v; want %v", graded.Status, submission.StatusCompleted)
		}
	})
}
