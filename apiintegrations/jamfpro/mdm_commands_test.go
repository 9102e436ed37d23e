// apiintegrations/jamfpro/mdm_commands_test.go
package jamfpro

import (
	"net/http"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMDMCommands_ByUUIDs(t *testing.T) {
	var query url.Values
	mux := http.NewServeMux()
	mux.HandleFunc(uriMDMCommands, func(w http.ResponseWriter, r *http.Request) {
		if !requireBearer(w, r) {
			return
		}
		query = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"totalCount": 2, "results": [{"uuid": "aaa"}, {"uuid": "bbb"}]}`))
	})

	client := startResourceServer(t, mux)

	uuids := []string{"aaa", "bbb"}
	record, err := client.GetMDMCommands(uuids, "")
	require.NoError(t, err)
	assert.JSONEq(t, `{"totalCount": 2, "results": [{"uuid": "aaa"}, {"uuid": "bbb"}]}`, string(record))

	assert.Equal(t, uuids, query["uuids"])
	assert.False(t, query.Has("client-management-id"))
}

func TestGetMDMCommands_ByClientManagementID(t *testing.T) {
	var query url.Values
	mux := http.NewServeMux()
	mux.HandleFunc(uriMDMCommands, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"totalCount": 0, "results": []}`))
	})

	client := startResourceServer(t, mux)

	_, err := client.GetMDMCommands(nil, "df1bca9b-8c92-44f4-9557-2ebc5cfcf2f1")
	require.NoError(t, err)

	assert.Equal(t, "df1bca9b-8c92-44f4-9557-2ebc5cfcf2f1", query.Get("client-management-id"))
	assert.False(t, query.Has("uuids"))
}

func TestGetMDMCommands_UUIDsWinOverClientManagementID(t *testing.T) {
	var query url.Values
	mux := http.NewServeMux()
	mux.HandleFunc(uriMDMCommands, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"totalCount": 1, "results": [{"uuid": "aaa"}]}`))
	})

	client := startResourceServer(t, mux)

	_, err := client.GetMDMCommands([]string{"aaa"}, "df1bca9b-8c92-44f4-9557-2ebc5cfcf2f1")
	require.NoError(t, err)

	assert.Equal(t, []string{"aaa"}, query["uuids"])
	assert.False(t, query.Has("client-management-id"))
}

func TestGetMDMCommands_MissingParameters(t *testing.T) {
	var hits atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc(uriMDMCommands, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	})

	client := startResourceServer(t, mux)

	_, err := client.GetMDMCommands(nil, "")

	var missing *MissingParametersError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"uuids", "client-management-id"}, missing.Parameters)
	assert.Equal(t, int64(0), hits.Load())
}
