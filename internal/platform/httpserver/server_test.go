package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	bulletinservice "agora/contexts/civic-communication/bulletin-service"
	agendaservice "agora/contexts/meeting-governance/agenda-service"
	meetingservice "agora/contexts/meeting-governance/meeting-service"
	votingservice "agora/contexts/meeting-governance/voting-service"
	votingports "agora/contexts/meeting-governance/voting-service/ports"
)

func newTestServer() *Server {
	agenda := agendaservice.NewInMemoryModule(nil, nil)
	voting := votingservice.NewInMemoryModule(nil, nil)
	meetings := meetingservice.NewInMemoryModule(nil)
	bulletin := bulletinservice.NewInMemoryModule(nil)
	return New(agenda, voting, meetings, bulletin, nil, ":0")
}

func doJSON(t *testing.T, server *Server, method, path, userID string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-Id", userID)
	}
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	return rr
}

func TestMutatingEndpointsRequireCallerIdentity(t *testing.T) {
	server := newTestServer()

	rr := doJSON(t, server, http.MethodPost, "/committees", "", map[string]any{"name": "Finance"})
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, server, http.MethodPost, "/meetings/1/vote", "", map[string]any{"vote": "for"})
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestCommitteeMeetingFlow(t *testing.T) {
	server := newTestServer()

	rr := doJSON(t, server, http.MethodPost, "/committees", "1", map[string]any{"name": "Finance"})
	if rr.Code != http.StatusCreated {
		t.Fatalf("create committee: expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, server, http.MethodPost, "/meetings", "1", map[string]any{
		"committee_id": 1,
		"title":        "Budget session",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("create meeting: expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, server, http.MethodPost, "/meetings", "1", map[string]any{
		"committee_id": 99,
		"title":        "Ghost session",
	})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("unknown committee: expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, server, http.MethodPut, "/meetings/1/status", "1", map[string]any{"status": "completed"})
	if rr.Code != http.StatusConflict {
		t.Fatalf("invalid transition: expected 409, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestBallotEndpoints(t *testing.T) {
	server := newTestServer()
	server.voting.Store.SetMeeting(votingports.MeetingProjection{MeetingID: 1, Status: "in_progress"})

	rr := doJSON(t, server, http.MethodPost, "/meetings/99/vote", "10", map[string]any{"vote": "for"})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("unknown meeting: expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}

	for _, cast := range []struct {
		user string
		vote string
	}{
		{user: "10", vote: "for"},
		{user: "11", vote: "for"},
		{user: "12", vote: "against"},
	} {
		rr = doJSON(t, server, http.MethodPost, "/meetings/1/vote", cast.user, map[string]any{"vote": cast.vote})
		if rr.Code != http.StatusOK {
			t.Fatalf("cast by %s: expected 200, got %d body=%s", cast.user, rr.Code, rr.Body.String())
		}
	}

	rr = doJSON(t, server, http.MethodGet, "/meetings/1/votes/tally", "", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("tally: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var tally struct {
		Counts      map[string]int `json:"counts"`
		TotalVoters int            `json:"total_voters"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &tally); err != nil {
		t.Fatalf("decode tally: %v", err)
	}
	if tally.Counts["for"] != 2 || tally.Counts["against"] != 1 || tally.TotalVoters != 3 {
		t.Fatalf("unexpected tally: %+v", tally)
	}
}

func TestVoteResultEndpoints(t *testing.T) {
	server := newTestServer()
	server.voting.Store.SetMeeting(votingports.MeetingProjection{MeetingID: 1, Status: "in_progress"})
	server.voting.Store.SetAgendaItem(votingports.AgendaItemProjection{ItemID: 7, MeetingID: 1})

	rr := doJSON(t, server, http.MethodGet, "/agenda-items/7/result", "", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("empty result: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	var optional struct {
		HasResult bool `json:"has_result"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &optional); err != nil {
		t.Fatalf("decode optional result: %v", err)
	}
	if optional.HasResult {
		t.Fatalf("expected has_result false before recording")
	}

	rr = doJSON(t, server, http.MethodPost, "/agenda-items/7/result", "3", map[string]any{
		"votes_for":     5,
		"votes_against": 2,
		"votes_abstain": 1,
		"total_votes":   8,
		"result":        "approved",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("record result: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, server, http.MethodPost, "/agenda-items/99/result", "3", map[string]any{
		"votes_for": 1,
		"result":    "approved",
	})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("unknown item: expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestBulletinEndpoints(t *testing.T) {
	server := newTestServer()

	rr := doJSON(t, server, http.MethodPost, "/announcements", "1", map[string]any{
		"title":   "Road closure",
		"content": "Main street closed Friday.",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("publish: expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, server, http.MethodPost, "/tasks", "1", map[string]any{"title": "Publish minutes"})
	if rr.Code != http.StatusCreated {
		t.Fatalf("create task: expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, server, http.MethodPut, "/tasks/1/status", "1", map[string]any{"status": "in_progress"})
	if rr.Code != http.StatusOK {
		t.Fatalf("task status: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
}
