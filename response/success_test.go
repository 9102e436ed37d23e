// response/success_test.go
package response

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deploymenttheory/go-api-client-jamfpro/logger"
	"github.com/stretchr/testify/assert"
)

func successResponse(method string, statusCode int, contentType, body string) *http.Response {
	header := http.Header{}
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	return &http.Response{
		StatusCode: statusCode,
		Header:     header,
		Body:       io.NopCloser(strings.NewReader(body)),
		Request:    httptest.NewRequest(method, "http://example.com/api/v1/categories", nil),
	}
}

func TestHandleAPISuccessResponse_JSON(t *testing.T) {
	var out struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	resp := successResponse("GET", http.StatusOK, "application/json; charset=utf-8", `{"id": "1", "name": "Operations"}`)
	err := HandleAPISuccessResponse(resp, &out, logger.NewNopLogger())

	assert.NoError(t, err)
	assert.Equal(t, "1", out.ID)
	assert.Equal(t, "Operations", out.Name)
}

func TestHandleAPISuccessResponse_MalformedJSON(t *testing.T) {
	var out map[string]any

	resp := successResponse("GET", http.StatusOK, "application/json", `{"id": "1",`)
	err := HandleAPISuccessResponse(resp, &out, logger.NewNopLogger())

	assert.Error(t, err)
}

func TestHandleAPISuccessResponse_XML(t *testing.T) {
	var out struct {
		ID   string `xml:"id"`
		Name string `xml:"name"`
	}

	resp := successResponse("GET", http.StatusOK, "application/xml", `<category><id>1</id><name>Operations</name></category>`)
	err := HandleAPISuccessResponse(resp, &out, logger.NewNopLogger())

	assert.NoError(t, err)
	assert.Equal(t, "1", out.ID)
	assert.Equal(t, "Operations", out.Name)
}

func TestHandleAPISuccessResponse_NoContent(t *testing.T) {
	var out map[string]any

	resp := successResponse("POST", http.StatusNoContent, "", "")
	err := HandleAPISuccessResponse(resp, &out, logger.NewNopLogger())

	assert.NoError(t, err)
	assert.Empty(t, out)
}

func TestHandleAPISuccessResponse_EmptyBody(t *testing.T) {
	var out map[string]any

	resp := successResponse("GET", http.StatusOK, "application/json", "")
	err := HandleAPISuccessResponse(resp, &out, logger.NewNopLogger())

	assert.NoError(t, err)
	assert.Empty(t, out)
}

func TestHandleAPISuccessResponse_NilOutput(t *testing.T) {
	resp := successResponse("POST", http.StatusCreated, "application/json", `{"id": "1"}`)
	err := HandleAPISuccessResponse(resp, nil, logger.NewNopLogger())

	assert.NoError(t, err)
}

func TestHandleAPISuccessResponse_UnexpectedMIMEType(t *testing.T) {
	var out map[string]any

	resp := successResponse("GET", http.StatusOK, "application/pdf", "%PDF-1.4")
	err := HandleAPISuccessResponse(resp, &out, logger.NewNopLogger())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected MIME type")
}

func TestHandleAPISuccessResponse_BinaryToByteSlice(t *testing.T) {
	var out []byte

	resp := successResponse("GET", http.StatusOK, "application/octet-stream", "binary-payload")
	resp.Header.Set("Content-Disposition", `attachment; filename="export.bin"`)
	err := HandleAPISuccessResponse(resp, &out, logger.NewNopLogger())

	assert.NoError(t, err)
	assert.Equal(t, []byte("binary-payload"), out)
}

func TestHandleAPISuccessResponse_BinaryToWriter(t *testing.T) {
	var buf bytes.Buffer

	resp := successResponse("GET", http.StatusOK, "application/octet-stream", "streamed-payload")
	err := HandleAPISuccessResponse(resp, &buf, logger.NewNopLogger())

	assert.NoError(t, err)
	assert.Equal(t, "streamed-payload", buf.String())
}

func TestSuccessfulDeleteRequest(t *testing.T) {
	resp := successResponse("DELETE", http.StatusNoContent, "", "")
	err := HandleAPISuccessResponse(resp, nil, logger.NewNopLogger())

	assert.NoError(t, err)
}

func TestSuccessfulDeleteRequest_Failure(t *testing.T) {
	resp := successResponse("DELETE", http.StatusBadRequest, "", "")
	err := HandleAPISuccessResponse(resp, nil, logger.NewNopLogger())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DELETE request failed")
}
