package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/percal/percal/pkg/calendar"
	"github.com/percal/percal/pkg/catalog"
)

func testServer(t *testing.T, user, pass string) *httptest.Server {
	t.Helper()
	c, err := catalog.New(catalog.RawData{Eras: []catalog.RawEra{
		{Era: "Past", Categories: []catalog.RawCategory{
			{Name: "Space Exploration", Events: []catalog.RawEvent{
				{Date: "1969-07-20", Title: "Moon Landing", Description: "Armstrong and Aldrin walk on the Moon"},
			}},
		}},
		{Era: "Present", Categories: []catalog.RawCategory{
			{Name: "World Events", Events: []catalog.RawEvent{
				{Date: "2020-03-11", Title: "COVID-19 Pandemic", Description: "WHO declares a global pandemic"},
			}},
		}},
	}})
	if err != nil {
		t.Fatal(err)
	}
	ts := httptest.NewServer(New(c, user, pass).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string, out any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if out != nil && resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decoding %s: %v", url, err)
		}
	}
	return resp
}

func TestEras(t *testing.T) {
	ts := testServer(t, "", "")
	var eras []catalog.Era
	get(t, ts.URL+"/api/eras", &eras)
	if len(eras) != 3 || eras[0] != catalog.EraPast || eras[2] != catalog.EraFuture {
		t.Errorf("/api/eras = %v", eras)
	}
}

func TestCategories(t *testing.T) {
	ts := testServer(t, "", "")

	var cats []string
	get(t, ts.URL+"/api/categories?era=past", &cats)
	if len(cats) != 1 || cats[0] != "Space Exploration" {
		t.Errorf("/api/categories?era=past = %v", cats)
	}

	resp := get(t, ts.URL+"/api/categories?era=medieval", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("bad era status = %d, want 400", resp.StatusCode)
	}
}

func TestEvents(t *testing.T) {
	ts := testServer(t, "", "")

	var all []catalog.Event
	get(t, ts.URL+"/api/events", &all)
	if len(all) != 2 {
		t.Errorf("/api/events returned %d events, want 2", len(all))
	}

	var past []catalog.Event
	get(t, ts.URL+"/api/events?era=Past", &past)
	if len(past) != 1 || past[0].Title != "Moon Landing" {
		t.Errorf("/api/events?era=Past = %v", past)
	}

	var byCat []catalog.Event
	get(t, ts.URL+"/api/events?era=Past&category=Space+Exploration", &byCat)
	if len(byCat) != 1 || byCat[0].Title != "Moon Landing" {
		t.Errorf("/api/events by category = %v", byCat)
	}

	resp := get(t, ts.URL+"/api/events?era=Past&category=Gardening", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown category status = %d, want 404", resp.StatusCode)
	}

	var onDate []catalog.Event
	get(t, ts.URL+"/api/events?on=1969-07-20", &onDate)
	if len(onDate) != 1 || onDate[0].Title != "Moon Landing" {
		t.Errorf("/api/events?on= = %v", onDate)
	}

	resp = get(t, ts.URL+"/api/events?on=1969-7-20", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("malformed date status = %d, want 400", resp.StatusCode)
	}
}

func TestSearch(t *testing.T) {
	ts := testServer(t, "", "")

	var results []catalog.Event
	get(t, ts.URL+"/api/search?q=pandemic", &results)
	if len(results) != 1 || results[0].Title != "COVID-19 Pandemic" {
		t.Errorf("/api/search?q=pandemic = %v", results)
	}

	resp := get(t, ts.URL+"/api/search?q=", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("empty keyword status = %d, want 400", resp.StatusCode)
	}
}

func TestCalendar(t *testing.T) {
	ts := testServer(t, "", "")

	var grid calendar.MonthGrid
	get(t, ts.URL+"/api/calendar?year=2021&month=2&highlight=2021-02-14", &grid)
	if grid.Year != 2021 || grid.Month != 2 {
		t.Errorf("grid for %d-%d, want 2021-2", grid.Year, grid.Month)
	}
	if len(grid.Weeks) != 4 {
		t.Errorf("February 2021 has %d weeks, want 4", len(grid.Weeks))
	}
	marked := 0
	for _, week := range grid.Weeks {
		for _, cell := range week {
			if cell.Highlighted {
				marked++
				if cell.Day != 14 {
					t.Errorf("highlight on day %d, want 14", cell.Day)
				}
			}
		}
	}
	if marked != 1 {
		t.Errorf("%d highlighted cells, want 1", marked)
	}

	for _, bad := range []string{
		"/api/calendar?year=2021",
		"/api/calendar?year=abc&month=2",
		"/api/calendar?year=1499&month=1",
		"/api/calendar?year=2021&month=13",
		"/api/calendar?year=2021&month=2&highlight=2021-2-14",
	} {
		resp := get(t, ts.URL+bad, nil)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s status = %d, want 400", bad, resp.StatusCode)
		}
	}
}

func TestStats(t *testing.T) {
	ts := testServer(t, "", "")
	var stats []catalog.EraStats
	get(t, ts.URL+"/api/stats", &stats)
	if len(stats) != 3 || stats[0].Events != 1 || stats[2].Events != 0 {
		t.Errorf("/api/stats = %v", stats)
	}
}

func TestBasicAuth(t *testing.T) {
	ts := testServer(t, "admin", "secret")

	resp := get(t, ts.URL+"/api/eras", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unauthenticated status = %d, want 401", resp.StatusCode)
	}

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/api/eras", nil)
	req.SetBasicAuth("admin", "wrong")
	resp2, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp2.Body.Close()
	if resp2.StatusCode != http.StatusUnauthorized {
		t.Errorf("wrong password status = %d, want 401", resp2.StatusCode)
	}

	req.SetBasicAuth("admin", "secret")
	resp3, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp3.Body.Close()
	if resp3.StatusCode != http.StatusOK {
		t.Errorf("authenticated status = %d, want 200", resp3.StatusCode)
	}
}
