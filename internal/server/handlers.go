package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/percal/percal/pkg/calendar"
	"github.com/percal/percal/pkg/catalog"
)

func (s *Server) handleEras(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(s.Catalog.Eras())
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	era, err := catalog.ParseEra(r.URL.Query().Get("era"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	categories, err := s.Catalog.Categories(era)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	json.NewEncoder(w).Encode(categories)
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if on := q.Get("on"); on != "" {
		d, err := calendar.ParseDate(on)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(s.Catalog.EventsOn(d))
		return
	}

	if q.Get("era") == "" {
		json.NewEncoder(w).Encode(s.Catalog.AllEvents())
		return
	}

	era, err := catalog.ParseEra(q.Get("era"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if category := q.Get("category"); category != "" {
		events, err := s.Catalog.EventsIn(era, category)
		if err != nil {
			var unknown *catalog.UnknownCategoryError
			if errors.As(err, &unknown) {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(events)
		return
	}

	events, err := s.Catalog.EventsInEra(era)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	json.NewEncoder(w).Encode(events)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	results, err := s.Catalog.Search(r.URL.Query().Get("q"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	json.NewEncoder(w).Encode(results)
}

func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	year, err := strconv.Atoi(q.Get("year"))
	if err != nil {
		http.Error(w, "year must be an integer", http.StatusBadRequest)
		return
	}
	month, err := strconv.Atoi(q.Get("month"))
	if err != nil {
		http.Error(w, "month must be an integer", http.StatusBadRequest)
		return
	}
	if err := calendar.ValidateYear(year); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := calendar.ValidateDay(year, month, 1); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var highlighted *calendar.Date
	if h := q.Get("highlight"); h != "" {
		d, err := calendar.ParseDate(h)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		highlighted = &d
	}

	today := calendar.DateOf(time.Now())
	json.NewEncoder(w).Encode(calendar.RenderMonthWith(year, month, &today, highlighted))
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(s.Catalog.Stats())
}
