package spacex

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"spacex-scraper/utils"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, utils.NewLogger())
}

func TestLaunchesDecodesListing(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/launches/past", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"rocket": "r1", "payloads": ["p1"], "launchpad": "l1",
			 "cores": [{"core": "c1", "flight": 2}],
			 "flight_number": 7, "date_utc": "2018-05-11T00:00:00.000Z"}
		]`))
	}))

	launches, err := client.Launches()
	require.NoError(t, err)
	require.Len(t, launches, 1)

	l := launches[0]
	require.Equal(t, 7, l.FlightNumber)
	require.Equal(t, "r1", l.Rocket)
	require.Equal(t, []string{"p1"}, l.Payloads)
	require.Len(t, l.Cores, 1)
	require.NotNil(t, l.Cores[0].CoreID)
	require.Equal(t, "c1", *l.Cores[0].CoreID)
}

func TestLaunchesErrorsOnServerFailure(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.Launches()
	require.Error(t, err)
}

func TestLaunchesErrorsOnBadJSON(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))

	_, err := client.Launches()
	require.Error(t, err)
}

func TestLookupsAreAbsentNotErrors(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	require.Nil(t, client.Rocket("missing"))
	require.Nil(t, client.Payload("missing"))
	require.Nil(t, client.Launchpad("missing"))
	require.Nil(t, client.Core("missing"))
}

func TestLookupsSkipEmptyIDs(t *testing.T) {
	var hits atomic.Int64
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
	}))

	require.Nil(t, client.Rocket(""))
	require.Nil(t, client.Payload(""))
	require.Nil(t, client.Launchpad(""))
	require.Nil(t, client.Core(""))
	require.EqualValues(t, 0, hits.Load())
}

func TestLookupDecodesDetailFields(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/rockets/r1":
			_, _ = w.Write([]byte(`{"name": "Falcon 9"}`))
		case "/payloads/p1":
			_, _ = w.Write([]byte(`{"mass_kg": 362, "orbit": "ISS"}`))
		case "/launchpads/l1":
			_, _ = w.Write([]byte(`{"name": "Kwajalein Atoll", "longitude": 167.74, "latitude": 9.04}`))
		case "/cores/c1":
			_, _ = w.Write([]byte(`{"block": null, "reuse_count": 0, "serial": "Merlin1A"}`))
		default:
			http.NotFound(w, r)
		}
	}))

	rocket := client.Rocket("r1")
	require.NotNil(t, rocket)
	require.Equal(t, "Falcon 9", *rocket.Name)

	payload := client.Payload("p1")
	require.NotNil(t, payload)
	require.Equal(t, 362.0, *payload.MassKg)
	require.Equal(t, "ISS", *payload.Orbit)

	pad := client.Launchpad("l1")
	require.NotNil(t, pad)
	require.Equal(t, "Kwajalein Atoll", *pad.Name)
	require.Equal(t, 167.74, *pad.Longitude)

	core := client.Core("c1")
	require.NotNil(t, core)
	require.Nil(t, core.Block)
	require.Equal(t, 0, *core.ReuseCount)
	require.Equal(t, "Merlin1A", *core.Serial)
}

func TestRepeatedLookupsHitNetworkOnce(t *testing.T) {
	var hits atomic.Int64
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`{"name": "Falcon 9"}`))
	}))

	for i := 0; i < 5; i++ {
		require.NotNil(t, client.Rocket("r1"))
	}
	require.EqualValues(t, 1, hits.Load())
}

func TestFailedLookupsAreNotCached(t *testing.T) {
	var hits atomic.Int64
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	require.Nil(t, client.Rocket("r1"))
	require.Nil(t, client.Rocket("r1"))
	require.EqualValues(t, 2, hits.Load())
}
