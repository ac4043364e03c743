package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/superhelt/wow-raid-planner/pkg/core/bench"
	"github.com/superhelt/wow-raid-planner/pkg/core/model"
	"github.com/superhelt/wow-raid-planner/pkg/core/planner"
	"github.com/superhelt/wow-raid-planner/pkg/core/services"
)

type playerDTO struct {
	Name   string       `json:"name"`
	Class  model.Class  `json:"class"`
	Roles  []model.Role `json:"roles"`
	Active bool         `json:"active"`
}

type signupDTO struct {
	Time    time.Time        `json:"time"`
	Player  string           `json:"player"`
	Class   model.Class      `json:"class"`
	Type    model.SignupType `json:"type"`
	Comment string           `json:"comment,omitempty"`
}

type assignmentDTO struct {
	Player string     `json:"player"`
	Role   model.Role `json:"role"`
}

type encounterDTO struct {
	Boss        model.Boss      `json:"boss"`
	Assignments []assignmentDTO `json:"assignments"`
}

type eventDTO struct {
	Time    time.Time       `json:"time"`
	Player  string          `json:"player"`
	Type    model.EventType `json:"type"`
	Comment string          `json:"comment,omitempty"`
}

type raidDTO struct {
	Date        string         `json:"date"`
	FinalizedAt *time.Time     `json:"finalizedAt,omitempty"`
	Signups     []signupDTO    `json:"signups"`
	Encounters  []encounterDTO `json:"encounters"`
	Events      []eventDTO     `json:"events"`
}

type raidSummaryDTO struct {
	Date      string `json:"date"`
	Finalized bool   `json:"finalized"`
	Signups   int    `json:"signups"`
}

func toPlayerDTO(p model.Player) playerDTO {
	return playerDTO{Name: p.Name, Class: p.Class, Roles: p.Roles, Active: p.Active}
}

func toRaidDTO(raid *model.Raid) raidDTO {
	dto := raidDTO{
		Date:        raid.Start.Format(model.DateFormat),
		FinalizedAt: raid.FinalizedAt,
		Signups:     []signupDTO{},
		Encounters:  []encounterDTO{},
		Events:      []eventDTO{},
	}
	for _, signup := range raid.Signups {
		dto.Signups = append(dto.Signups, signupDTO{
			Time:    signup.Time,
			Player:  signup.Player.Name,
			Class:   signup.Player.Class,
			Type:    signup.Type,
			Comment: signup.Comment,
		})
	}
	for _, encounter := range raid.Encounters {
		enc := encounterDTO{Boss: encounter.Boss, Assignments: []assignmentDTO{}}
		for _, assignment := range encounter.Assignments {
			enc.Assignments = append(enc.Assignments, assignmentDTO{
				Player: assignment.Player.Name,
				Role:   assignment.Role,
			})
		}
		dto.Encounters = append(dto.Encounters, enc)
	}
	for _, event := range raid.Events {
		dto.Events = append(dto.Events, eventDTO{
			Time:    event.Time,
			Player:  event.Player.Name,
			Type:    event.Type,
			Comment: event.Comment,
		})
	}
	return dto
}

func raidDate(r *http.Request) (time.Time, error) {
	date, err := time.Parse(model.DateFormat, chi.URLParam(r, "date"))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid raid date, expected YYYY-MM-DD", model.ErrValidation)
	}
	return date, nil
}

func (s *Server) handleListPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := s.database.GetPlayers(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}

	dtos := make([]playerDTO, 0, len(players))
	for _, player := range players {
		dtos = append(dtos, toPlayerDTO(player))
	}
	s.writeJSON(w, http.StatusOK, dtos)
}

func (s *Server) handleListRaids(w http.ResponseWriter, r *http.Request) {
	raids, err := s.database.GetRaids(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}

	summaries := make([]raidSummaryDTO, 0, len(raids))
	for _, raid := range raids {
		summaries = append(summaries, raidSummaryDTO{
			Date:      raid.Start.Format(model.DateFormat),
			Finalized: raid.IsFinalized(),
			Signups:   len(raid.Signups),
		})
	}
	s.writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleGetRaid(w http.ResponseWriter, r *http.Request) {
	date, err := raidDate(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	raid, err := s.database.GetRaid(r.Context(), date)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toRaidDTO(raid))
}

type signupEntry struct {
	Player  string           `json:"player"`
	Type    model.SignupType `json:"type"`
	Comment string           `json:"comment,omitempty"`
}

type signupResultDTO struct {
	Player string `json:"player"`
	Status int    `json:"status"`
	Error  string `json:"error,omitempty"`
}

func (s *Server) handleAddSignups(w http.ResponseWriter, r *http.Request) {
	date, err := raidDate(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	var entries []signupEntry
	if err := json.NewDecoder(r.Body).Decode(&entries); err != nil {
		s.writeError(w, fmt.Errorf("%w: malformed signup body", model.ErrValidation))
		return
	}

	requests := make([]services.SignupRequest, 0, len(entries))
	for _, entry := range entries {
		requests = append(requests, services.SignupRequest{
			Player:  entry.Player,
			Type:    entry.Type,
			Comment: entry.Comment,
		})
	}

	results, err := services.AddSignups(r.Context(), s.database, s.database, s.logger, date, requests)
	if err != nil {
		s.writeError(w, err)
		return
	}

	dtos := make([]signupResultDTO, 0, len(results))
	for _, result := range results {
		dto := signupResultDTO{Player: result.Player, Status: http.StatusOK}
		if result.Err != nil {
			dto.Status = statusForError(result.Err)
			dto.Error = result.Err.Error()
		}
		dtos = append(dtos, dto)
	}
	s.writeJSON(w, http.StatusMultiStatus, dtos)
}

func (s *Server) handleRemoveSignup(w http.ResponseWriter, r *http.Request) {
	date, err := raidDate(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	if err := services.RemoveSignup(r.Context(), s.database, s.logger, date, chi.URLParam(r, "player")); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, nil)
}

type encounterRequest struct {
	Boss model.Boss `json:"boss"`
}

func (s *Server) handleAddEncounter(w http.ResponseWriter, r *http.Request) {
	date, err := raidDate(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	var req encounterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, fmt.Errorf("%w: malformed encounter body", model.ErrValidation))
		return
	}

	if err := services.AddEncounter(r.Context(), s.database, s.logger, date, req.Boss); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, nil)
}

func (s *Server) handleDeleteEncounter(w http.ResponseWriter, r *http.Request) {
	date, err := raidDate(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	boss := model.Boss(chi.URLParam(r, "boss"))
	if err := services.DeleteEncounter(r.Context(), s.database, s.logger, date, boss); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, nil)
}

type assignRequest struct {
	Role model.Role `json:"role"`
}

func (s *Server) handleAssignPlayer(w http.ResponseWriter, r *http.Request) {
	date, err := raidDate(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	var req assignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, fmt.Errorf("%w: malformed assignment body", model.ErrValidation))
		return
	}

	boss := model.Boss(chi.URLParam(r, "boss"))
	player := chi.URLParam(r, "player")
	if err := services.AssignPlayer(r.Context(), s.database, s.logger, date, boss, player, req.Role); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, nil)
}

func (s *Server) handleRemovePlayer(w http.ResponseWriter, r *http.Request) {
	date, err := raidDate(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	boss := model.Boss(chi.URLParam(r, "boss"))
	player := chi.URLParam(r, "player")
	if err := services.RemovePlayer(r.Context(), s.database, s.logger, date, boss, player); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, nil)
}

type benchStatDTO struct {
	Player   string `json:"player"`
	Today    int    `json:"today"`
	TwoWeeks int    `json:"twoWeeks"`
	Month    int    `json:"month"`
	Total    int    `json:"total"`
}

func (s *Server) handleBench(w http.ResponseWriter, r *http.Request) {
	date, err := raidDate(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	raid, err := s.database.GetRaid(r.Context(), date)
	if err != nil {
		s.writeError(w, err)
		return
	}
	raids, err := s.database.GetRaids(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}

	stats := bench.Compute(raids, raid, s.now())
	dtos := make([]benchStatDTO, 0, len(stats))
	for _, stat := range stats {
		dtos = append(dtos, benchStatDTO{
			Player:   stat.Player.Name,
			Today:    stat.Today,
			TwoWeeks: stat.TwoWeeks,
			Month:    stat.Month,
			Total:    stat.Total,
		})
	}
	s.writeJSON(w, http.StatusOK, dtos)
}

type suggestionDTO struct {
	Boss  model.Boss              `json:"boss"`
	Roles map[model.Role][]string `json:"roles"`
	Bench []string                `json:"bench"`
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	date, err := raidDate(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	targets, err := targetsFromQuery(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	raid, err := s.database.GetRaid(r.Context(), date)
	if err != nil {
		s.writeError(w, err)
		return
	}
	raids, err := s.database.GetRaids(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}

	boss := model.Boss(chi.URLParam(r, "boss"))
	suggestion, err := planner.Suggest(raids, raid, boss, targets)
	if err != nil {
		s.writeError(w, err)
		return
	}

	dto := suggestionDTO{Boss: suggestion.Boss, Roles: map[model.Role][]string{}, Bench: []string{}}
	for role, players := range suggestion.Roles {
		names := make([]string, 0, len(players))
		for _, player := range players {
			names = append(names, player.Name)
		}
		dto.Roles[role] = names
	}
	for _, player := range suggestion.Bench {
		dto.Bench = append(dto.Bench, player.Name)
	}
	s.writeJSON(w, http.StatusOK, dto)
}

// targetsFromQuery reads per-role headcounts from query parameters, keyed by
// the lowercased role name. Roles without a parameter default to zero.
func targetsFromQuery(r *http.Request) (planner.Targets, error) {
	targets := planner.Targets{}
	query := r.URL.Query()
	for _, role := range model.Roles() {
		raw := query.Get(strings.ToLower(string(role)))
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: invalid target for role %s", model.ErrValidation, role)
		}
		targets[role] = n
	}
	return targets, nil
}

func (s *Server) handleFinalize(w http.ResponseWriter, r *http.Request) {
	date, err := raidDate(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	if err := services.FinalizeRaid(r.Context(), s.database, s.logger, date, s.now()); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, nil)
}

func (s *Server) handleReopen(w http.ResponseWriter, r *http.Request) {
	date, err := raidDate(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	if err := services.ReopenRaid(r.Context(), s.database, s.logger, date); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, nil)
}

type eventRequest struct {
	Player  string          `json:"player"`
	Type    model.EventType `json:"type"`
	Comment string          `json:"comment,omitempty"`
}

func (s *Server) handleAddEvent(w http.ResponseWriter, r *http.Request) {
	date, err := raidDate(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, fmt.Errorf("%w: malformed event body", model.ErrValidation))
		return
	}

	if err := services.AddEvent(r.Context(), s.database, s.database, s.logger, date, req.Player, req.Type, req.Comment); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, nil)
}

func (s *Server) handleRemoveEvent(w http.ResponseWriter, r *http.Request) {
	date, err := raidDate(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	eventTime, err := time.Parse(time.RFC3339Nano, chi.URLParam(r, "time"))
	if err != nil {
		s.writeError(w, fmt.Errorf("%w: invalid event timestamp, expected RFC 3339", model.ErrValidation))
		return
	}

	if err := services.RemoveEvent(r.Context(), s.database, s.logger, date, eventTime); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, nil)
}
