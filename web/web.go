package web

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/bcspragu/sidereal"
	"github.com/bcspragu/sidereal/rules"
	"github.com/gorilla/mux"
	"github.com/gorilla/securecookie"
)

const editionCookie = "Edition"

type Srv struct {
	sc  *securecookie.SecureCookie
	mux *mux.Router
}

// New returns an initialized server. The given SecureCookie signs the edition
// preference cookie.
func New(sc *securecookie.SecureCookie) *Srv {
	s := &Srv{sc: sc}
	s.mux = s.initMux()
	return s
}

func (s *Srv) initMux() *mux.Router {
	m := mux.NewRouter()
	// All factions.
	m.HandleFunc("/api/factions", s.serveFactions).Methods("GET")
	// One faction.
	m.HandleFunc("/api/faction/{id}", s.serveFaction).Methods("GET")
	// Remember which edition the user is playing.
	m.HandleFunc("/api/edition", s.serveSetEdition).Methods("POST")
	// Tech sharing bonuses for a player count.
	m.HandleFunc("/api/sharing/{players}", s.serveSharing).Methods("GET")

	return m
}

func (s *Srv) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

type jsFaction struct {
	ID        sidereal.FactionID   `json:"id"`
	Edition   sidereal.FactionType `json:"edition"`
	Name      string               `json:"name"`
	Common    string               `json:"common"`
	Base      string               `json:"base"`
	Expansion string               `json:"expansion"`
	Shorthand string               `json:"shorthand"`
}

func toJSFaction(id sidereal.FactionID, ed sidereal.FactionType) *jsFaction {
	n := sidereal.Names(id)
	return &jsFaction{
		ID:        id,
		Edition:   ed,
		Name:      n.FullName(ed),
		Common:    n.Common,
		Base:      n.Base,
		Expansion: n.Expansion,
		Shorthand: n.Shorthand,
	}
}

func (s *Srv) serveFactions(w http.ResponseWriter, r *http.Request) {
	ed, err := s.edition(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var out []*jsFaction
	for _, id := range sidereal.AllFactions() {
		out = append(out, toJSFaction(id, ed))
	}

	jsonResp(w, out)
}

func (s *Srv) serveFaction(w http.ResponseWriter, r *http.Request) {
	id, err := sidereal.ParseFactionID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	ed, err := s.edition(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	jsonResp(w, toJSFaction(id, ed))
}

func (s *Srv) serveSetEdition(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Edition sidereal.FactionType `json:"edition"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	encoded, err := s.sc.Encode(editionCookie, req.Edition)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:  editionCookie,
		Value: encoded,
		Path:  "/",
	})

	jsonResp(w, struct {
		Edition sidereal.FactionType `json:"edition"`
	}{req.Edition})
}

func (s *Srv) serveSharing(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.Atoi(mux.Vars(r)["players"])
	if err != nil {
		http.Error(w, "Player count must be a number", http.StatusBadRequest)
		return
	}

	bonuses, err := rules.SharingBonuses(rules.PlayerCount(n))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	jsonResp(w, bonuses)
}

// edition picks which edition's names to show. An explicit ?edition= wins,
// then the cookie, then the base game.
func (s *Srv) edition(r *http.Request) (sidereal.FactionType, error) {
	if q := r.URL.Query().Get("edition"); q != "" {
		return sidereal.ParseFactionType(q)
	}

	c, err := r.Cookie(editionCookie)
	if err != nil {
		return sidereal.Base, nil
	}

	var ed sidereal.FactionType
	if err := s.sc.Decode(editionCookie, c.Value, &ed); err != nil {
		// If we can't parse it, it's probably from an old key, so ignore it.
		return sidereal.Base, nil
	}
	return ed, nil
}

func jsonResp(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("jsonResp: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
