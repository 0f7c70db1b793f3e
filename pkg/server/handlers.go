package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/notjagan/pokeanalytics/pkg/enrich"
	"github.com/notjagan/pokeanalytics/pkg/model"
	"github.com/notjagan/pokeanalytics/pkg/model/sprite"
	"github.com/notjagan/pokeanalytics/pkg/team"
	"go.uber.org/zap"
)

var errBadRequest = errors.New("bad request")

type pokemonSummary struct {
	Number int           `json:"pokedex_number"`
	Name   string        `json:"name"`
	Types  []model.Type  `json:"types"`
	Sprite sprite.Sprite `json:"sprite"`
}

type abilityView struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type pokemonDetail struct {
	Record    *model.Pokemon       `json:"record"`
	Details   enrich.Details       `json:"details"`
	Sprite    sprite.Sprite        `json:"sprite"`
	Defense   model.DefenseProfile `json:"defense"`
	Abilities []abilityView        `json:"abilities"`
}

type pageView struct {
	Pokemon    []pokemonSummary `json:"pokemon"`
	Page       int              `json:"page"`
	PerPage    int              `json:"per_page"`
	TotalPages int              `json:"total_pages"`
	Count      int              `json:"count"`
}

type rosterView struct {
	Owner    string           `json:"owner"`
	Members  []pokemonSummary `json:"members"`
	Size     int              `json:"size"`
	Capacity int              `json:"capacity"`
	Changed  *bool            `json:"changed,omitempty"`
}

type typesView struct {
	Types []model.Type            `json:"types"`
	Chart map[string][]model.Type `json:"chart"`
}

// language prefers an explicit ?lang= over the Accept-Language header.
func (srv *Server) language(r *http.Request) model.Language {
	if lang := r.URL.Query().Get("lang"); lang != "" {
		return model.MatchLanguage(lang)
	}
	if accept := r.Header.Get("Accept-Language"); accept != "" {
		return model.MatchLanguage(accept)
	}

	return srv.opts.DefaultLanguage
}

func (srv *Server) summarize(pokemon *model.Pokemon, lang model.Language) pokemonSummary {
	return pokemonSummary{
		Number: pokemon.Number,
		Name:   srv.enricher.Details(pokemon, lang).Name,
		Types:  pokemon.Types(),
		Sprite: srv.enricher.Sprite(pokemon),
	}
}

func (srv *Server) summarizeAll(pokemon []*model.Pokemon, lang model.Language) []pokemonSummary {
	summaries := make([]pokemonSummary, len(pokemon))
	for i, p := range pokemon {
		summaries[i] = srv.summarize(p, lang)
	}

	return summaries
}

func queryInt(r *http.Request, key string, fallback int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("query parameter %q must be an integer: %w", key, errBadRequest)
	}

	return n, nil
}

func pathNumber(r *http.Request) (int, error) {
	n, err := strconv.Atoi(mux.Vars(r)["number"])
	if err != nil {
		return 0, fmt.Errorf("invalid pokedex number: %w", errBadRequest)
	}

	return n, nil
}

func (srv *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"pokemon": srv.dex.Len(),
	})
}

func (srv *Server) handleTypes(w http.ResponseWriter, _ *http.Request) {
	view := typesView{
		Types: model.TypeValues(),
		Chart: make(map[string][]model.Type),
	}
	for _, typ := range model.TypeValues() {
		targets := srv.teams.Chart.SuperEffectiveAgainst(typ)
		if targets == nil {
			targets = []model.Type{}
		}
		view.Chart[typ.String()] = targets
	}

	writeJSON(w, http.StatusOK, view)
}

func (srv *Server) handleBrowse(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page", 1)
	if err != nil {
		srv.fail(w, r, err)
		return
	}
	perPage, err := queryInt(r, "per_page", DefaultPerPage)
	if err != nil {
		srv.fail(w, r, err)
		return
	}
	if perPage < 1 || perPage > MaxPerPage {
		srv.fail(w, r, fmt.Errorf("per_page must be between 1 and %d: %w", MaxPerPage, errBadRequest))
		return
	}

	result := srv.dex.Browse(r.URL.Query().Get("q"), page, perPage)
	for _, p := range result.Pokemon {
		srv.enricher.Request(p)
	}

	writeJSON(w, http.StatusOK, pageView{
		Pokemon:    srv.summarizeAll(result.Pokemon, srv.language(r)),
		Page:       result.Page,
		PerPage:    perPage,
		TotalPages: result.TotalPages,
		Count:      result.Count,
	})
}

func (srv *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", DefaultLimit)
	if err != nil {
		srv.fail(w, r, err)
		return
	}
	if limit < 1 || limit > MaxPerPage {
		srv.fail(w, r, fmt.Errorf("limit must be between 1 and %d: %w", MaxPerPage, errBadRequest))
		return
	}

	results := srv.dex.Search(r.URL.Query().Get("q"), limit)
	writeJSON(w, http.StatusOK, srv.summarizeAll(results, srv.language(r)))
}

func (srv *Server) handlePokemon(w http.ResponseWriter, r *http.Request) {
	number, err := pathNumber(r)
	if err != nil {
		srv.fail(w, r, err)
		return
	}
	pokemon, err := srv.dex.ByNumber(number)
	if err != nil {
		srv.fail(w, r, err)
		return
	}

	lang := srv.language(r)
	srv.enricher.Fetch(r.Context(), pokemon)

	abilities := make([]abilityView, len(pokemon.Abilities))
	for i, name := range pokemon.Abilities {
		abilities[i] = abilityView{
			Name:        name,
			Description: srv.enricher.AbilityDescription(r.Context(), name, lang),
		}
	}

	writeJSON(w, http.StatusOK, pokemonDetail{
		Record:    pokemon,
		Details:   srv.enricher.Details(pokemon, lang),
		Sprite:    srv.enricher.Sprite(pokemon),
		Defense:   pokemon.DefenseProfile(),
		Abilities: abilities,
	})
}

func (srv *Server) writeRoster(w http.ResponseWriter, r *http.Request, owner string, roster team.Roster, changed *bool) {
	members := roster.Members()
	if srv.opts.PrefetchTeam {
		err := srv.enricher.Prefetch(r.Context(), members)
		if err != nil {
			srv.logger.Debug("serving roster without enrichment", zap.String("owner", owner), zap.Error(err))
		}
	}

	writeJSON(w, http.StatusOK, rosterView{
		Owner:    owner,
		Members:  srv.summarizeAll(members, srv.language(r)),
		Size:     roster.Len(),
		Capacity: team.MaxSize,
		Changed:  changed,
	})
}

func (srv *Server) handleNewTeam(w http.ResponseWriter, r *http.Request) {
	owner := uuid.NewString()
	roster, err := srv.teams.Roster(r.Context(), owner)
	if err != nil {
		srv.fail(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/teams/"+owner)
	writeJSON(w, http.StatusCreated, rosterView{
		Owner:    owner,
		Members:  srv.summarizeAll(roster.Members(), srv.language(r)),
		Capacity: team.MaxSize,
	})
}

func (srv *Server) handleTeam(w http.ResponseWriter, r *http.Request) {
	owner := mux.Vars(r)["owner"]
	roster, err := srv.teams.Roster(r.Context(), owner)
	if err != nil {
		srv.fail(w, r, err)
		return
	}

	srv.writeRoster(w, r, owner, roster, nil)
}

type addMemberRequest struct {
	Number int `json:"number"`
}

func (srv *Server) handleAddMember(w http.ResponseWriter, r *http.Request) {
	owner := mux.Vars(r)["owner"]

	var req addMemberRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		srv.fail(w, r, fmt.Errorf("invalid JSON body: %w", errBadRequest))
		return
	}

	roster, changed, err := srv.teams.Add(r.Context(), owner, req.Number)
	if err != nil {
		srv.fail(w, r, err)
		return
	}

	srv.writeRoster(w, r, owner, roster, &changed)
}

func (srv *Server) handleRemoveMember(w http.ResponseWriter, r *http.Request) {
	owner := mux.Vars(r)["owner"]
	number, err := pathNumber(r)
	if err != nil {
		srv.fail(w, r, err)
		return
	}

	roster, changed, err := srv.teams.Remove(r.Context(), owner, number)
	if err != nil {
		srv.fail(w, r, err)
		return
	}

	srv.writeRoster(w, r, owner, roster, &changed)
}

func (srv *Server) handleClearTeam(w http.ResponseWriter, r *http.Request) {
	owner := mux.Vars(r)["owner"]
	roster, err := srv.teams.Clear(r.Context(), owner)
	if err != nil {
		srv.fail(w, r, err)
		return
	}

	srv.writeRoster(w, r, owner, roster, nil)
}

func (srv *Server) handleRandomTeam(w http.ResponseWriter, r *http.Request) {
	owner := mux.Vars(r)["owner"]
	roster, changed, err := srv.teams.Random(r.Context(), owner)
	if err != nil {
		srv.fail(w, r, err)
		return
	}

	srv.writeRoster(w, r, owner, roster, &changed)
}

func (srv *Server) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	owner := mux.Vars(r)["owner"]
	analysis, err := srv.teams.Analyze(r.Context(), owner)
	if err != nil {
		srv.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, analysis)
}
