package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string     `json:"message"`
	UserID  flexibleID `json:"user_id"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type playerPayload struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Position  string `json:"position"`
	IsPitcher bool   `json:"is_pitcher"`
}

type teamPayload struct {
	Name    string
	Players []playerPayload
}

// teamsPayload is the team-name keyed roster object. Key order on the wire
// is roster order, so it is decoded token by token instead of into a map.
type teamsPayload []teamPayload

func (t *teamsPayload) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*t = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("teams: expected object, got %v", tok)
	}

	out := make(teamsPayload, 0)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("teams: expected team name, got %v", keyTok)
		}
		var players []playerPayload
		if err := dec.Decode(&players); err != nil {
			return fmt.Errorf("teams: roster %q: %w", name, err)
		}
		out = append(out, teamPayload{Name: name, Players: players})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*t = out
	return nil
}

type resultPayload struct {
	HomeTeam  string `json:"home_team"`
	AwayTeam  string `json:"away_team"`
	HomeScore int    `json:"home_score"`
	AwayScore int    `json:"away_score"`
	Result    string `json:"result"`
}

type orderPayload struct {
	Batters []int `json:"batters"`
	Pitcher int   `json:"pitcher"`
}

type gameStateResponse struct {
	Teams        teamsPayload    `json:"teams"`
	Schedule     []resultPayload `json:"schedule"`
	CurrentOrder *orderPayload   `json:"current_order"`
}

// flexibleID accepts either a JSON string or number.
type flexibleID string

func (f *flexibleID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("user_id: %w", err)
	}
	if _, err := strconv.ParseFloat(n.String(), 64); err != nil {
		return fmt.Errorf("user_id: %w", err)
	}
	*f = flexibleID(n.String())
	return nil
}
